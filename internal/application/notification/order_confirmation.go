package notification

import (
	"context"

	"github.com/xiebiao/bookstore-rest/internal/domain/notification"
	"github.com/xiebiao/bookstore-rest/internal/domain/order"
)

// SendOrderConfirmationUseCase 消费order.placed事件，发送订单确认邮件
// 由cmd/notifier调用，不在下单事务内
type SendOrderConfirmationUseCase struct {
	mailer notification.Mailer
}

// NewSendOrderConfirmationUseCase 创建订单确认邮件用例
func NewSendOrderConfirmationUseCase(mailer notification.Mailer) *SendOrderConfirmationUseCase {
	return &SendOrderConfirmationUseCase{mailer: mailer}
}

// Execute 发送失败返回error，由消费者决定是否重新入队
func (uc *SendOrderConfirmationUseCase) Execute(ctx context.Context, event order.PlacedEvent) error {
	lines := make([]notification.OrderLine, len(event.Items))
	for i, item := range event.Items {
		lines[i] = notification.OrderLine{
			BookID:    item.BookID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		}
	}
	msg := notification.OrderConfirmation(event.CustomerEmail, event.CustomerName, event.TrackingNumber, event.TotalPrice, lines)
	return uc.mailer.Send(ctx, msg)
}
