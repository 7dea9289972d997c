package order

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/xiebiao/bookstore-rest/internal/domain/book"
	"github.com/xiebiao/bookstore-rest/internal/domain/order"
	"github.com/xiebiao/bookstore-rest/internal/domain/transaction"
	apperrors "github.com/xiebiao/bookstore-rest/pkg/errors"
	"github.com/xiebiao/bookstore-rest/pkg/logger"
	"github.com/xiebiao/bookstore-rest/pkg/metrics"
	"github.com/xiebiao/bookstore-rest/pkg/tracing"
)

const tracerName = "bookstore/checkout"

// PlaceOrderUseCase 下单用例
// 涉及:事务处理、并发控制、业务规则校验
type PlaceOrderUseCase struct {
	orderRepo order.Repository
	bookRepo  book.Repository
	txManager transaction.Manager
	publisher order.EventPublisher
}

// NewPlaceOrderUseCase 创建下单用例
func NewPlaceOrderUseCase(
	orderRepo order.Repository,
	bookRepo book.Repository,
	txManager transaction.Manager,
	publisher order.EventPublisher,
) *PlaceOrderUseCase {
	return &PlaceOrderUseCase{
		orderRepo: orderRepo,
		bookRepo:  bookRepo,
		txManager: txManager,
		publisher: publisher,
	}
}

// Execute 执行下单用例
//
// 防止超卖:
//  1. SELECT FOR UPDATE 锁定库存行
//  2. 判断图书是否上架、库存是否充足
//  3. 扣减库存
//  4. 建立订单、明细、地址、客户的关联并保存
//  5. COMMIT释放锁
//
// 任何一步失败整个事务回滚。事务提交后发布order.placed事件，发布失败只记录日志。
func (uc *PlaceOrderUseCase) Execute(ctx context.Context, purchase order.Purchase) (confirmation *order.PurchaseConfirmation, err error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "PlaceOrder")
	start := time.Now()
	defer func() {
		metrics.ObserveHistogram(metrics.CheckoutDuration, time.Since(start).Seconds())
		if err != nil {
			metrics.IncCounterVec(metrics.OrdersFailedTotal, map[string]string{"reason": failureReason(err)})
		}
		tracing.EndSpan(span, err)
	}()

	if err := validatePurchase(purchase); err != nil {
		return nil, err
	}

	o := purchase.Order
	var customer *order.Customer
	err = uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		o.TrackingNumber = order.NewTrackingNumber()

		if err := uc.reserveStock(txCtx, purchase.Items); err != nil {
			return err
		}

		for _, item := range purchase.Items {
			o.AddItem(item)
		}
		o.SetAddresses(purchase.ShippingAddress, purchase.BillingAddress)

		c, err := uc.resolveCustomer(txCtx, purchase.Customer)
		if err != nil {
			return err
		}
		c.AddOrder(o)
		customer = c

		return uc.orderRepo.Save(txCtx, c, o)
	})
	if err != nil {
		return nil, err
	}

	span.SetAttributes(
		attribute.String("order.tracking_number", o.TrackingNumber),
		attribute.Int("order.items", len(o.Items)),
	)
	metrics.IncCounter(metrics.OrdersPlacedTotal)
	metrics.AddCounter(metrics.OrderItemsTotal, float64(o.TotalQuantity))

	if pubErr := uc.publisher.PublishOrderPlaced(ctx, order.NewPlacedEvent(customer, o)); pubErr != nil {
		logger.L().Warn("发布下单事件失败",
			zap.String("tracking_number", o.TrackingNumber),
			zap.Error(pubErr),
		)
	}

	return &order.PurchaseConfirmation{TrackingNumber: o.TrackingNumber}, nil
}

// reserveStock 锁定并扣减库存
// 同一本书出现在多个明细中时合并数量，只锁一次
func (uc *PlaceOrderUseCase) reserveStock(ctx context.Context, items []*order.OrderItem) error {
	quantities := make(map[string]int, len(items))
	bookIDs := make([]string, 0, len(items))
	for _, item := range items {
		if _, ok := quantities[item.BookID]; !ok {
			bookIDs = append(bookIDs, item.BookID)
		}
		quantities[item.BookID] += item.Quantity
	}

	for _, id := range bookIDs {
		// SELECT * FROM books WHERE id = ? FOR UPDATE
		b, err := uc.bookRepo.LockByID(ctx, id)
		if err != nil {
			return err
		}
		if !b.Active {
			return book.ErrBookInactive
		}

		// 必须在锁定后检查,否则可能并发扣减导致超卖
		if err := b.DecrStock(quantities[id]); err != nil {
			return err
		}
		if err := uc.bookRepo.UpdateStock(ctx, id, -quantities[id]); err != nil {
			return err
		}
	}
	return nil
}

// resolveCustomer 同一邮箱的客户复用已有记录
func (uc *PlaceOrderUseCase) resolveCustomer(ctx context.Context, c *order.Customer) (*order.Customer, error) {
	existing, err := uc.orderRepo.FindCustomerByEmail(ctx, c.Email)
	if errors.Is(err, order.ErrCustomerNotFound) {
		return c, nil
	}
	if err != nil {
		return nil, err
	}
	return existing, nil
}

func validatePurchase(p order.Purchase) error {
	if p.Customer == nil || p.Order == nil || p.ShippingAddress == nil || p.BillingAddress == nil {
		return order.ErrIncompletePurchase
	}
	if len(p.Items) == 0 {
		return order.ErrInvalidOrderItems
	}
	for _, item := range p.Items {
		if item.Quantity <= 0 {
			return order.ErrInvalidQuantity
		}
		// 单价与图书定价同一规则
		if err := book.ValidatePrice(item.UnitPrice, decimal.NullDecimal{}); err != nil {
			return err
		}
	}
	return order.ValidateTotalPrice(p.Order.TotalPrice)
}

// failureReason 下单失败指标的reason标签
func failureReason(err error) string {
	switch {
	case errors.Is(err, book.ErrInsufficientStock):
		return "stock"
	case errors.Is(err, book.ErrBookInactive):
		return "inactive"
	case errors.Is(err, book.ErrBookNotFound):
		return "not_found"
	case apperrors.IsAppError(err) && apperrors.GetAppError(err).HTTPStatus() == 400:
		return "validation"
	default:
		return "internal"
	}
}
