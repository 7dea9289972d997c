package order

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MaxTotalPrice 订单总金额上限（数据库列为decimal(10,2)）
var MaxTotalPrice = decimal.RequireFromString("99999999.99")

// Address 收货/账单地址
type Address struct {
	ID      string
	Street  string
	City    string
	State   string
	Country string
	ZipCode string
}

// NewAddress 创建地址(工厂方法)
func NewAddress(street, city, state, country, zipCode string) *Address {
	return &Address{
		ID:      uuid.NewString(),
		Street:  street,
		City:    city,
		State:   state,
		Country: country,
		ZipCode: zipCode,
	}
}

// Customer 下单客户（按邮箱识别，与登录用户无关）
// 设计说明:
// 1. Orders是读缓存，外键在订单一侧（order.CustomerID）
// 2. 与订单的双向关联只能通过AddOrder建立
type Customer struct {
	ID        string
	FirstName string
	LastName  string
	Email     string
	Orders    []*Order
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewCustomer 创建客户(工厂方法)
func NewCustomer(firstName, lastName, email string) *Customer {
	now := time.Now()
	return &Customer{
		ID:        uuid.NewString(),
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Orders:    []*Order{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// AddOrder 建立客户与订单的双向关联
func (c *Customer) AddOrder(o *Order) {
	o.CustomerID = c.ID
	o.Customer = c
	c.Orders = append(c.Orders, o)
}

// Order 订单实体(聚合根)
// 设计说明:
// 1. Order是聚合根,OrderItem是子实体
// 2. TrackingNumber是面向客户的订单号（UUID v4）
// 3. 总数量、总金额由调用方计算后传入
type Order struct {
	ID                string
	TrackingNumber    string
	TotalQuantity     int
	TotalPrice        decimal.Decimal
	Items             []*OrderItem
	CustomerID        string
	Customer          *Customer
	ShippingAddressID string
	ShippingAddress   *Address
	BillingAddressID  string
	BillingAddress    *Address
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// ValidateTotalPrice 总金额非负、不超过列范围且最多两位小数
func ValidateTotalPrice(total decimal.Decimal) error {
	if total.IsNegative() || total.GreaterThan(MaxTotalPrice) || !total.Round(2).Equal(total) {
		return ErrInvalidTotalPrice
	}
	return nil
}

// NewOrder 创建订单(工厂方法)
func NewOrder(totalQuantity int, totalPrice decimal.Decimal) *Order {
	now := time.Now()
	return &Order{
		ID:            uuid.NewString(),
		TotalQuantity: totalQuantity,
		TotalPrice:    totalPrice,
		Items:         []*OrderItem{},
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// AddItem 建立订单与明细的双向关联
func (o *Order) AddItem(item *OrderItem) {
	item.OrderID = o.ID
	o.Items = append(o.Items, item)
}

// SetAddresses 设置收货地址和账单地址
func (o *Order) SetAddresses(shipping, billing *Address) {
	o.ShippingAddress = shipping
	o.ShippingAddressID = shipping.ID
	o.BillingAddress = billing
	o.BillingAddressID = billing.ID
}

// OrderItem 订单明细项
// 设计说明:
// 1. 不是独立聚合根,必须通过Order访问
// 2. UnitPrice记录下单时的单价(历史价格快照)
// 3. 只保存BookID(避免跨聚合引用)
type OrderItem struct {
	ID        string
	OrderID   string
	BookID    string
	ImageURL  string
	UnitPrice decimal.Decimal
	Quantity  int
}

// NewOrderItem 创建订单明细(工厂方法)
func NewOrderItem(bookID, imageURL string, unitPrice decimal.Decimal, quantity int) *OrderItem {
	return &OrderItem{
		ID:        uuid.NewString(),
		BookID:    bookID,
		ImageURL:  imageURL,
		UnitPrice: unitPrice,
		Quantity:  quantity,
	}
}

// Subtotal 明细小计
func (i *OrderItem) Subtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Purchase 一次下单请求的全部实体（字段级校验由接口层完成）
type Purchase struct {
	Customer        *Customer
	ShippingAddress *Address
	BillingAddress  *Address
	Order           *Order
	Items           []*OrderItem
}

// PurchaseConfirmation 下单结果，只包含订单号
type PurchaseConfirmation struct {
	TrackingNumber string
}

// NewTrackingNumber 生成订单号
// 设计要点:全局唯一、不可预测(防止恶意遍历)
func NewTrackingNumber() string {
	return uuid.NewString()
}
