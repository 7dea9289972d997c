package mysql

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/xiebiao/bookstore-rest/internal/domain/order"
	apperrors "github.com/xiebiao/bookstore-rest/pkg/errors"
)

// orderRepository 订单仓储实现(MySQL)
// 1. Customer、Address、Order、OrderItem一起保存，必须在事务中调用
// 2. 查询时使用Preload预加载明细,避免N+1问题
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository 创建订单仓储
func NewOrderRepository(db *gorm.DB) order.Repository {
	return &orderRepository{db: db}
}

// FindCustomerByEmail 按邮箱查找已有客户
func (r *orderRepository) FindCustomerByEmail(ctx context.Context, email string) (*order.Customer, error) {
	var model CustomerModel
	if err := conn(ctx, r.db).Where("email = ?", email).First(&model).Error; err != nil {
		if isNotFound(err) {
			return nil, order.ErrCustomerNotFound
		}
		return nil, apperrors.Wrap(err, "查询客户失败")
	}
	return toCustomerEntity(&model), nil
}

// Save 保存一次下单的全部实体
// 写入顺序: 客户(已存在则跳过) → 地址 → 订单(包含明细)
func (r *orderRepository) Save(ctx context.Context, c *order.Customer, o *order.Order) error {
	db := conn(ctx, r.db)

	customer := &CustomerModel{
		ID:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Email:     c.Email,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
	result := db.Clauses(clause.OnConflict{DoNothing: true}).Omit("Orders").Create(customer)
	if result.Error != nil {
		return apperrors.Wrap(result.Error, "保存客户失败")
	}
	if result.RowsAffected == 0 {
		// 邮箱已被占用(可能是并发事务刚插入的客户)，订单挂到已有客户下
		if err := r.relinkCustomer(db, c, o); err != nil {
			return err
		}
	}

	addresses := make([]*AddressModel, 0, 2)
	for _, a := range []*order.Address{o.ShippingAddress, o.BillingAddress} {
		if a == nil {
			return order.ErrIncompletePurchase
		}
		addresses = append(addresses, toAddressModel(a))
	}
	if addresses[0].ID == addresses[1].ID {
		addresses = addresses[:1]
	}
	if err := db.Create(addresses).Error; err != nil {
		return apperrors.Wrap(err, "保存地址失败")
	}

	model := toOrderModel(o)
	if err := db.Omit("Customer", "ShippingAddress", "BillingAddress").Create(model).Error; err != nil {
		if isDuplicateError(err) {
			return apperrors.ErrDuplicateEntry.WithMessage("订单号重复")
		}
		return apperrors.Wrap(err, "创建订单失败")
	}

	o.CreatedAt = model.CreatedAt
	o.UpdatedAt = model.UpdatedAt
	return nil
}

// relinkCustomer 按邮箱重新加载客户并改写订单的CustomerID
// 使用共享锁读取最新提交的数据，一致性快照里看不到并发事务插入的行
func (r *orderRepository) relinkCustomer(db *gorm.DB, c *order.Customer, o *order.Order) error {
	var existing CustomerModel
	err := db.Clauses(clause.Locking{Strength: "SHARE"}).Where("email = ?", c.Email).First(&existing).Error
	if err != nil {
		return apperrors.Wrap(err, "查询客户失败")
	}
	c.ID = existing.ID
	o.CustomerID = existing.ID
	return nil
}

// FindByTrackingNumber 根据订单号查找订单（包含明细、客户和地址）
func (r *orderRepository) FindByTrackingNumber(ctx context.Context, trackingNumber string) (*order.Order, error) {
	var model OrderModel
	err := conn(ctx, r.db).
		Preload("Items").
		Preload("Customer").
		Preload("ShippingAddress").
		Preload("BillingAddress").
		Where("tracking_number = ?", trackingNumber).
		First(&model).Error
	if err != nil {
		if isNotFound(err) {
			return nil, order.ErrOrderNotFound
		}
		return nil, apperrors.Wrap(err, "查询订单失败")
	}
	return toOrderEntity(&model), nil
}

// =========================================
// 辅助函数:模型转换
// =========================================

func toOrderModel(o *order.Order) *OrderModel {
	items := make([]OrderItemModel, len(o.Items))
	for i, item := range o.Items {
		items[i] = OrderItemModel{
			ID:        item.ID,
			OrderID:   o.ID,
			BookID:    item.BookID,
			ImageURL:  item.ImageURL,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
		}
	}
	return &OrderModel{
		ID:                o.ID,
		TrackingNumber:    o.TrackingNumber,
		TotalQuantity:     o.TotalQuantity,
		TotalPrice:        o.TotalPrice,
		CustomerID:        o.CustomerID,
		ShippingAddressID: o.ShippingAddressID,
		BillingAddressID:  o.BillingAddressID,
		Items:             items,
		CreatedAt:         o.CreatedAt,
		UpdatedAt:         o.UpdatedAt,
	}
}

func toOrderEntity(model *OrderModel) *order.Order {
	o := &order.Order{
		ID:                model.ID,
		TrackingNumber:    model.TrackingNumber,
		TotalQuantity:     model.TotalQuantity,
		TotalPrice:        model.TotalPrice,
		Items:             make([]*order.OrderItem, 0, len(model.Items)),
		ShippingAddressID: model.ShippingAddressID,
		BillingAddressID:  model.BillingAddressID,
		CreatedAt:         model.CreatedAt,
		UpdatedAt:         model.UpdatedAt,
	}
	for _, item := range model.Items {
		o.AddItem(&order.OrderItem{
			ID:        item.ID,
			BookID:    item.BookID,
			ImageURL:  item.ImageURL,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
		})
	}
	if model.ShippingAddress != nil {
		o.ShippingAddress = toAddressEntity(model.ShippingAddress)
	}
	if model.BillingAddress != nil {
		o.BillingAddress = toAddressEntity(model.BillingAddress)
	}
	if model.Customer != nil {
		toCustomerEntity(model.Customer).AddOrder(o)
	} else {
		o.CustomerID = model.CustomerID
	}
	return o
}

func toCustomerEntity(model *CustomerModel) *order.Customer {
	return &order.Customer{
		ID:        model.ID,
		FirstName: model.FirstName,
		LastName:  model.LastName,
		Email:     model.Email,
		Orders:    []*order.Order{},
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

func toAddressModel(a *order.Address) *AddressModel {
	return &AddressModel{
		ID:      a.ID,
		Street:  a.Street,
		City:    a.City,
		State:   a.State,
		Country: a.Country,
		ZipCode: a.ZipCode,
	}
}

func toAddressEntity(model *AddressModel) *order.Address {
	return &order.Address{
		ID:      model.ID,
		Street:  model.Street,
		City:    model.City,
		State:   model.State,
		Country: model.Country,
		ZipCode: model.ZipCode,
	}
}
