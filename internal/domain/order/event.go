package order

import (
	"context"
	"time"
)

// RoutingKeyOrderPlaced 下单成功事件的路由键
const RoutingKeyOrderPlaced = "order.placed"

// PlacedEvent 下单成功事件（事务提交后发布）
type PlacedEvent struct {
	TrackingNumber string       `json:"trackingNumber"`
	CustomerEmail  string       `json:"customerEmail"`
	CustomerName   string       `json:"customerName"`
	TotalQuantity  int          `json:"totalQuantity"`
	TotalPrice     string       `json:"totalPrice"`
	Items          []PlacedItem `json:"items"`
	PlacedAt       time.Time    `json:"placedAt"`
}

// PlacedItem 事件中的明细
type PlacedItem struct {
	BookID    string `json:"bookId"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unitPrice"`
}

// NewPlacedEvent 根据已保存的订单构造事件
func NewPlacedEvent(c *Customer, o *Order) PlacedEvent {
	items := make([]PlacedItem, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, PlacedItem{
			BookID:    item.BookID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice.StringFixed(2),
		})
	}
	return PlacedEvent{
		TrackingNumber: o.TrackingNumber,
		CustomerEmail:  c.Email,
		CustomerName:   c.FirstName + " " + c.LastName,
		TotalQuantity:  o.TotalQuantity,
		TotalPrice:     o.TotalPrice.StringFixed(2),
		Items:          items,
		PlacedAt:       o.CreatedAt,
	}
}

// EventPublisher 订单事件发布者
type EventPublisher interface {
	PublishOrderPlaced(ctx context.Context, event PlacedEvent) error
}
