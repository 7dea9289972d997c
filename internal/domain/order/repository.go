package order

import (
	"context"
)

//go:generate mockgen -destination=mocks/repository.go -package=mocks . Repository,EventPublisher

// Repository 订单仓储接口(依赖倒置原则)
// 设计要点:
// 1. 由domain层定义接口,infrastructure层实现
// 2. 通过context传递事务，Save的所有写入与库存扣减在同一事务
type Repository interface {
	// FindCustomerByEmail 不存在返回ErrCustomerNotFound
	FindCustomerByEmail(ctx context.Context, email string) (*Customer, error)

	// Save 保存客户（新客户才插入）、地址、订单和订单明细
	Save(ctx context.Context, customer *Customer, o *Order) error

	// FindByTrackingNumber 根据订单号查找订单(包含订单明细)
	FindByTrackingNumber(ctx context.Context, trackingNumber string) (*Order, error)
}
