package handler

import (
	"github.com/gin-gonic/gin"

	apporder "github.com/xiebiao/bookstore-rest/internal/application/order"
	"github.com/xiebiao/bookstore-rest/internal/domain/order"
	"github.com/xiebiao/bookstore-rest/internal/interface/http/dto"
	"github.com/xiebiao/bookstore-rest/pkg/response"
)

// CheckoutHandler 结算HTTP处理器
type CheckoutHandler struct {
	placeOrderUseCase *apporder.PlaceOrderUseCase
	getOrderUseCase   *apporder.GetOrderUseCase
}

// NewCheckoutHandler 创建结算处理器
func NewCheckoutHandler(placeOrderUseCase *apporder.PlaceOrderUseCase, getOrderUseCase *apporder.GetOrderUseCase) *CheckoutHandler {
	return &CheckoutHandler{
		placeOrderUseCase: placeOrderUseCase,
		getOrderUseCase:   getOrderUseCase,
	}
}

// Purchase 下单
// @Summary      下单
// @Description  扣减库存并保存订单（单个事务），成功后返回订单号
// @Tags         结算
// @Accept       json
// @Produce      json
// @Param        request body dto.PurchaseRequest true "下单信息"
// @Success      201 {object} response.Response{data=dto.PurchaseResponse}
// @Failure      400 {object} response.Response "参数错误、库存不足或图书已下架"
// @Failure      404 {object} response.Response "图书不存在"
// @Router       /api/v1/checkout/purchase [post]
func (h *CheckoutHandler) Purchase(c *gin.Context) {
	var req dto.PurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	confirmation, err := h.placeOrderUseCase.Execute(c.Request.Context(), toPurchase(req))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto.PurchaseResponse{OrderTrackingNumber: confirmation.TrackingNumber})
}

// GetOrder 订单详情
// @Summary      订单详情
// @Tags         结算
// @Produce      json
// @Param        trackingNumber path string true "订单号"
// @Success      200 {object} response.Response{data=apporder.OrderView}
// @Failure      404 {object} response.Response "订单不存在"
// @Router       /api/v1/checkout/orders/{trackingNumber} [get]
func (h *CheckoutHandler) GetOrder(c *gin.Context) {
	result, err := h.getOrderUseCase.Execute(c.Request.Context(), c.Param("trackingNumber"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// toPurchase HTTP请求 -> 领域实体
func toPurchase(req dto.PurchaseRequest) order.Purchase {
	items := make([]*order.OrderItem, 0, len(req.OrderItems))
	for _, it := range req.OrderItems {
		items = append(items, order.NewOrderItem(it.BookID, it.ImageURL, it.UnitPrice, it.Quantity))
	}

	return order.Purchase{
		Customer:        order.NewCustomer(req.Customer.FirstName, req.Customer.LastName, req.Customer.Email),
		ShippingAddress: toAddress(req.ShippingAddress),
		BillingAddress:  toAddress(req.BillingAddress),
		Order:           order.NewOrder(req.Order.TotalQuantity, req.Order.TotalPrice),
		Items:           items,
	}
}

func toAddress(a dto.AddressRequest) *order.Address {
	return order.NewAddress(a.Street, a.City, a.State, a.Country, a.ZipCode)
}
