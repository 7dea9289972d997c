package mail

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomail "github.com/wneessen/go-mail"

	"github.com/xiebiao/bookstore-rest/internal/domain/notification"
	"github.com/xiebiao/bookstore-rest/pkg/circuitbreaker"
	apperrors "github.com/xiebiao/bookstore-rest/pkg/errors"
)

func TestSMTPMailer_Send(t *testing.T) {
	ctx := context.Background()
	welcome := notification.Welcome("ann@example.com", "Ann Lee")

	t.Run("发送成功", func(t *testing.T) {
		var sent *gomail.Msg
		m := newMailer("no-reply@bookstore.local", func(_ context.Context, msg *gomail.Msg) error {
			sent = msg
			return nil
		})

		require.NoError(t, m.Send(ctx, welcome))
		require.NotNil(t, sent)
		assert.Equal(t, []string{welcome.Subject}, sent.GetGenHeader(gomail.HeaderSubject))
		require.Len(t, sent.GetTo(), 1)
		assert.Equal(t, "ann@example.com", sent.GetTo()[0].Address)
	})

	t.Run("发送失败返回邮件错误", func(t *testing.T) {
		smtpErr := errors.New("connection refused")
		m := newMailer("no-reply@bookstore.local", func(context.Context, *gomail.Msg) error {
			return smtpErr
		})

		err := m.Send(ctx, welcome)
		require.Error(t, err)
		assert.ErrorIs(t, err, smtpErr)
		assert.Equal(t, apperrors.ErrCodeMailError, apperrors.GetAppError(err).Code)
	})

	t.Run("连续失败后熔断", func(t *testing.T) {
		calls := 0
		m := newMailer("no-reply@bookstore.local", func(context.Context, *gomail.Msg) error {
			calls++
			return errors.New("timeout")
		})

		for i := 0; i < 5; i++ {
			_ = m.Send(ctx, welcome)
		}
		err := m.Send(ctx, welcome)
		assert.ErrorIs(t, err, circuitbreaker.ErrOpenState)
		assert.Equal(t, 5, calls)
	})

	t.Run("收件人地址无效", func(t *testing.T) {
		m := newMailer("no-reply@bookstore.local", func(context.Context, *gomail.Msg) error {
			t.Fatal("不应该发送")
			return nil
		})
		err := m.Send(ctx, notification.Message{Kind: notification.KindWelcome, To: "not an address"})
		require.Error(t, err)
	})
}

func TestTLSPolicy(t *testing.T) {
	assert.Equal(t, gomail.TLSMandatory, tlsPolicy("mandatory"))
	assert.Equal(t, gomail.NoTLS, tlsPolicy("none"))
	assert.Equal(t, gomail.TLSOpportunistic, tlsPolicy(""))
}
