package order

import (
	"context"
	"time"

	"github.com/xiebiao/bookstore-rest/internal/domain/order"
)

// GetOrderUseCase 按订单号查询订单
type GetOrderUseCase struct {
	orderRepo order.Repository
}

// NewGetOrderUseCase 创建订单查询用例
func NewGetOrderUseCase(orderRepo order.Repository) *GetOrderUseCase {
	return &GetOrderUseCase{orderRepo: orderRepo}
}

// OrderView 订单详情DTO
type OrderView struct {
	TrackingNumber  string      `json:"trackingNumber"`
	TotalQuantity   int         `json:"totalQuantity"`
	TotalPrice      string      `json:"totalPrice"`
	CustomerEmail   string      `json:"customerEmail,omitempty"`
	ShippingAddress AddressView `json:"shippingAddress"`
	BillingAddress  AddressView `json:"billingAddress"`
	Items           []ItemView  `json:"items"`
	CreatedAt       string      `json:"createdAt"`
}

// AddressView 地址DTO
type AddressView struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	Country string `json:"country"`
	ZipCode string `json:"zipCode"`
}

// ItemView 订单明细DTO
type ItemView struct {
	BookID    string `json:"bookId"`
	ImageURL  string `json:"imageUrl"`
	UnitPrice string `json:"unitPrice"`
	Quantity  int    `json:"quantity"`
	Subtotal  string `json:"subtotal"`
}

// Execute 订单不存在返回ErrOrderNotFound
func (uc *GetOrderUseCase) Execute(ctx context.Context, trackingNumber string) (*OrderView, error) {
	o, err := uc.orderRepo.FindByTrackingNumber(ctx, trackingNumber)
	if err != nil {
		return nil, err
	}

	view := &OrderView{
		TrackingNumber:  o.TrackingNumber,
		TotalQuantity:   o.TotalQuantity,
		TotalPrice:      o.TotalPrice.StringFixed(2),
		ShippingAddress: toAddressView(o.ShippingAddress),
		BillingAddress:  toAddressView(o.BillingAddress),
		Items:           make([]ItemView, len(o.Items)),
		CreatedAt:       o.CreatedAt.Format(time.RFC3339),
	}
	if o.Customer != nil {
		view.CustomerEmail = o.Customer.Email
	}
	for i, item := range o.Items {
		view.Items[i] = ItemView{
			BookID:    item.BookID,
			ImageURL:  item.ImageURL,
			UnitPrice: item.UnitPrice.StringFixed(2),
			Quantity:  item.Quantity,
			Subtotal:  item.Subtotal().StringFixed(2),
		}
	}
	return view, nil
}

func toAddressView(a *order.Address) AddressView {
	if a == nil {
		return AddressView{}
	}
	return AddressView{
		Street:  a.Street,
		City:    a.City,
		State:   a.State,
		Country: a.Country,
		ZipCode: a.ZipCode,
	}
}
