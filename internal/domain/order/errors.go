package order

import (
	apperrors "github.com/xiebiao/bookstore-rest/pkg/errors"
)

// 订单领域错误定义
var (
	// ErrOrderNotFound 订单不存在
	ErrOrderNotFound = apperrors.ErrOrderNotFound

	// ErrCustomerNotFound 客户不存在（下单时据此决定新建客户）
	ErrCustomerNotFound = apperrors.New(apperrors.ErrCodeNotFound, "客户不存在")

	// ErrInvalidOrderItems 订单明细不合法
	ErrInvalidOrderItems = apperrors.New(apperrors.ErrCodeInvalidParams, "订单明细不能为空")

	// ErrInvalidQuantity 购买数量不合法
	ErrInvalidQuantity = apperrors.New(apperrors.ErrCodeInvalidParams, "购买数量必须大于0")

	// ErrInvalidTotalPrice 订单总金额不合法
	ErrInvalidTotalPrice = apperrors.New(apperrors.ErrCodeInvalidPrice, "订单总金额必须在0到99999999.99之间")

	// ErrIncompletePurchase 缺少客户、订单或地址
	ErrIncompletePurchase = apperrors.New(apperrors.ErrCodeInvalidParams, "下单信息不完整")
)
