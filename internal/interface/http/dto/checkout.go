package dto

import "github.com/shopspring/decimal"

// PurchaseRequest 下单请求
// 单价、总价由客户端计算后提交
type PurchaseRequest struct {
	Customer        CustomerRequest    `json:"customer"`
	ShippingAddress AddressRequest     `json:"shippingAddress"`
	BillingAddress  AddressRequest     `json:"billingAddress"`
	Order           OrderRequest       `json:"order"`
	OrderItems      []OrderItemRequest `json:"orderItems" binding:"required,min=1,dive"`
}

// CustomerRequest 下单客户
type CustomerRequest struct {
	FirstName string `json:"firstName" binding:"required,max=100" example:"Jane"`
	LastName  string `json:"lastName" binding:"required,max=100" example:"Doe"`
	Email     string `json:"email" binding:"required,email" example:"jane@example.com"`
}

// AddressRequest 地址
type AddressRequest struct {
	Street  string `json:"street" binding:"required,max=255" example:"1 Main St"`
	City    string `json:"city" binding:"required,max=100" example:"Springfield"`
	State   string `json:"state" binding:"max=100" example:"IL"`
	Country string `json:"country" binding:"required,max=100" example:"US"`
	ZipCode string `json:"zipCode" binding:"required,max=20" example:"62701"`
}

// OrderRequest 订单汇总
type OrderRequest struct {
	TotalQuantity int             `json:"totalQuantity" binding:"required,min=1" example:"2"`
	TotalPrice    decimal.Decimal `json:"totalPrice" swaggertype:"string" example:"19.98"`
}

// OrderItemRequest 订单明细
type OrderItemRequest struct {
	BookID    string          `json:"bookId" binding:"required,uuid" example:"5f0c8a7e-2b7c-4b9a-9a53-0f7f2c1f8f10"`
	ImageURL  string          `json:"imageUrl" binding:"max=500" example:"https://example.com/cover.jpg"`
	UnitPrice decimal.Decimal `json:"unitPrice" swaggertype:"string" example:"9.99"`
	Quantity  int             `json:"quantity" binding:"required,min=1" example:"2"`
}

// PurchaseResponse 下单响应，只返回订单号
type PurchaseResponse struct {
	OrderTrackingNumber string `json:"orderTrackingNumber" example:"0b6d3c1e-7c1a-4a4e-9a53-1d2f3c4b5a69"`
}
