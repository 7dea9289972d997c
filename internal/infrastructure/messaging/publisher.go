// Package messaging 订单事件的发布与消费（RabbitMQ）
package messaging

import (
	"context"
	"encoding/json"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/xiebiao/bookstore-rest/internal/domain/order"
	"github.com/xiebiao/bookstore-rest/internal/infrastructure/config"
	"github.com/xiebiao/bookstore-rest/pkg/logger"
	"github.com/xiebiao/bookstore-rest/pkg/mq"
	"github.com/xiebiao/bookstore-rest/pkg/tracing"
)

const tracerName = "bookstore/messaging"

// publisher mq.Publisher的最小接口
type publisher interface {
	Publish(ctx context.Context, routingKey string, message interface{}) error
}

// OrderEventPublisher 把下单事件发布到RabbitMQ
type OrderEventPublisher struct {
	publisher publisher
}

var _ order.EventPublisher = (*OrderEventPublisher)(nil)

// NewOrderEventPublisher 创建订单事件发布者
func NewOrderEventPublisher(p *mq.Publisher) *OrderEventPublisher {
	return &OrderEventPublisher{publisher: p}
}

// PublishOrderPlaced 发布order.placed事件
func (p *OrderEventPublisher) PublishOrderPlaced(ctx context.Context, event order.PlacedEvent) (err error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "PublishOrderPlaced",
		trace.WithSpanKind(trace.SpanKindProducer),
		trace.WithAttributes(attribute.String("order.tracking_number", event.TrackingNumber)),
	)
	defer func() { tracing.EndSpan(span, err) }()

	return p.publisher.Publish(ctx, order.RoutingKeyOrderPlaced, event)
}

// LogPublisher 未启用消息队列时使用，只记录日志
type LogPublisher struct{}

var _ order.EventPublisher = LogPublisher{}

// PublishOrderPlaced 记录事件
func (LogPublisher) PublishOrderPlaced(_ context.Context, event order.PlacedEvent) error {
	logger.L().Info("消息队列未启用，跳过订单事件",
		zap.String("routing_key", order.RoutingKeyOrderPlaced),
		zap.String("tracking_number", event.TrackingNumber),
	)
	return nil
}

// OrderPlacedHandler 把order.placed消息交给fn处理
// 消息体无法解析时返回错误，由mq.Disposition决定是否重投
func OrderPlacedHandler(fn func(ctx context.Context, event order.PlacedEvent) error) mq.Handler {
	return func(ctx context.Context, routingKey string, body []byte) error {
		if routingKey != order.RoutingKeyOrderPlaced {
			logger.L().Warn("忽略未知路由键的消息", zap.String("routing_key", routingKey))
			return nil
		}
		var event order.PlacedEvent
		if err := json.Unmarshal(body, &event); err != nil {
			return fmt.Errorf("解析订单事件失败: %w", err)
		}
		return fn(ctx, event)
	}
}

// ProvideEventPublisher wire provider
// mq.enabled=false时退化为LogPublisher，不连接RabbitMQ
func ProvideEventPublisher(cfg *config.Config) (order.EventPublisher, func(), error) {
	if !cfg.MQ.Enabled {
		return LogPublisher{}, func() {}, nil
	}

	p, err := mq.NewPublisher(cfg.MQ.URL, cfg.MQ.Exchange, cfg.MQ.ExchangeType)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		if err := p.Close(); err != nil {
			logger.L().Warn("关闭消息发布者失败", zap.Error(err))
		}
	}
	return NewOrderEventPublisher(p), cleanup, nil
}
