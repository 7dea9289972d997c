package notification_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	appnotification "github.com/xiebiao/bookstore-rest/internal/application/notification"
	"github.com/xiebiao/bookstore-rest/internal/domain/notification"
	"github.com/xiebiao/bookstore-rest/internal/domain/notification/mocks"
	"github.com/xiebiao/bookstore-rest/internal/domain/order"
	apperrors "github.com/xiebiao/bookstore-rest/pkg/errors"
)

func TestSendOrderConfirmationUseCase(t *testing.T) {
	ctx := context.Background()
	event := order.PlacedEvent{
		TrackingNumber: "trk-1",
		CustomerEmail:  "jane@example.com",
		CustomerName:   "Jane Doe",
		TotalQuantity:  2,
		TotalPrice:     "19.98",
		Items:          []order.PlacedItem{{BookID: "b1", Quantity: 2, UnitPrice: "9.99"}},
	}

	t.Run("发送确认邮件", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mailer := mocks.NewMockMailer(ctrl)
		mailer.EXPECT().Send(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, msg notification.Message) error {
			assert.Equal(t, notification.KindOrderConfirmation, msg.Kind)
			assert.Equal(t, "jane@example.com", msg.To)
			assert.Contains(t, msg.Subject, "trk-1")
			assert.Contains(t, msg.Body, "b1 x2 @ 9.99")
			assert.Contains(t, msg.Body, "19.98")
			return nil
		})

		require.NoError(t, appnotification.NewSendOrderConfirmationUseCase(mailer).Execute(ctx, event))
	})

	t.Run("发送失败", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mailer := mocks.NewMockMailer(ctrl)
		mailer.EXPECT().Send(ctx, gomock.Any()).Return(apperrors.ErrMailError)

		assert.ErrorIs(t, appnotification.NewSendOrderConfirmationUseCase(mailer).Execute(ctx, event), apperrors.ErrMailError)
	})
}
