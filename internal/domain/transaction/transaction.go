// Package transaction 事务边界抽象
//
// 应用层只依赖Manager接口，mysql.TxManager是唯一的生产实现。
// fn内所有Repository调用通过ctx拿到同一个事务连接。
package transaction

import "context"

// Manager 事务管理器
type Manager interface {
	// Transaction fn返回error时回滚，返回nil时提交
	Transaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// Func 函数适配器，测试中可以直接用Func(func(ctx, fn) error { return fn(ctx) })
type Func func(ctx context.Context, fn func(ctx context.Context) error) error

// Transaction 实现Manager
func (f Func) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return f(ctx, fn)
}

// Passthrough 不开启事务直接执行fn（单元测试用）
var Passthrough Manager = Func(func(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
})
