// Package mq RabbitMQ消息发布与消费
//
// 消息格式统一为JSON，Exchange使用topic类型，路由键形如order.placed。
//
// 消费失败的处理：
//   - 首次失败：Nack并重新入队
//   - 重投后再次失败：Nack不入队（队列配置了死信交换机时进入死信队列），避免毒消息无限循环
package mq

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"github.com/xiebiao/bookstore-rest/pkg/logger"
	"github.com/xiebiao/bookstore-rest/pkg/metrics"
)

// Publisher 消息发布者
type Publisher struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
}

// NewPublisher 连接RabbitMQ并声明Exchange
func NewPublisher(url, exchange, exchangeType string) (*Publisher, error) {
	conn, channel, err := dial(url, exchange, exchangeType)
	if err != nil {
		return nil, err
	}

	logger.L().Info("消息发布者已创建", zap.String("exchange", exchange), zap.String("type", exchangeType))
	return &Publisher{conn: conn, channel: channel, exchange: exchange}, nil
}

// Publish 发布JSON消息（持久化）
func (p *Publisher) Publish(ctx context.Context, routingKey string, message interface{}) error {
	msg, err := Encode(message)
	if err != nil {
		return err
	}

	err = p.channel.PublishWithContext(ctx, p.exchange, routingKey, false, false, msg)
	metrics.IncCounterVec(metrics.MessagesPublishedTotal, map[string]string{
		"exchange":    p.exchange,
		"routing_key": routingKey,
		"result":      metrics.Result(err),
	})
	if err != nil {
		return fmt.Errorf("发布消息失败: %w", err)
	}

	logger.L().Debug("消息已发布",
		zap.String("routing_key", routingKey),
		zap.String("message_id", msg.MessageId),
	)
	return nil
}

// Close 关闭Channel和连接
func (p *Publisher) Close() error {
	return closeAll(p.channel, p.conn)
}

// Encode 把消息编码为持久化的amqp.Publishing
func Encode(message interface{}) (amqp.Publishing, error) {
	body, err := json.Marshal(message)
	if err != nil {
		return amqp.Publishing{}, fmt.Errorf("消息序列化失败: %w", err)
	}
	return amqp.Publishing{
		ContentType:  "application/json",
		MessageId:    uuid.NewString(),
		Body:         body,
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now(),
	}, nil
}

// Handler 消息处理函数，返回error表示处理失败
type Handler func(ctx context.Context, routingKey string, body []byte) error

// Consumer 消息消费者
type Consumer struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	queue    string
	prefetch int
}

// NewConsumer 声明Exchange和持久化Queue，并按routingKeys绑定（支持*和#通配符）
func NewConsumer(url, exchange, exchangeType, queue string, routingKeys []string, prefetch int) (*Consumer, error) {
	conn, channel, err := dial(url, exchange, exchangeType)
	if err != nil {
		return nil, err
	}

	q, err := channel.QueueDeclare(queue, true, false, false, false, nil)
	if err != nil {
		_ = closeAll(channel, conn)
		return nil, fmt.Errorf("声明Queue失败: %w", err)
	}

	for _, key := range routingKeys {
		if err := channel.QueueBind(q.Name, key, exchange, false, nil); err != nil {
			_ = closeAll(channel, conn)
			return nil, fmt.Errorf("绑定Queue失败: %w", err)
		}
	}

	if prefetch < 1 {
		prefetch = 1
	}

	logger.L().Info("消息消费者已创建", zap.String("queue", q.Name), zap.Strings("routing_keys", routingKeys))
	return &Consumer{conn: conn, channel: channel, queue: q.Name, prefetch: prefetch}, nil
}

// Consume 阻塞消费直到ctx取消，手动确认
func (c *Consumer) Consume(ctx context.Context, handler Handler) error {
	if err := c.channel.Qos(c.prefetch, 0, false); err != nil {
		return fmt.Errorf("设置Qos失败: %w", err)
	}

	msgs, err := c.channel.Consume(c.queue, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("开始消费失败: %w", err)
	}

	log := logger.L().With(zap.String("queue", c.queue))
	log.Info("开始消费消息")

	for {
		select {
		case <-ctx.Done():
			log.Info("消费者退出")
			return nil
		case msg, ok := <-msgs:
			if !ok {
				return errors.New("消息Channel已关闭")
			}
			c.handle(ctx, log, msg, handler)
		}
	}
}

func (c *Consumer) handle(ctx context.Context, log *zap.Logger, msg amqp.Delivery, handler Handler) {
	start := time.Now()
	err := handler(ctx, msg.RoutingKey, msg.Body)
	metrics.ObserveHistogram(metrics.MessageProcessingDuration, time.Since(start).Seconds())
	metrics.IncCounterVec(metrics.MessagesConsumedTotal, map[string]string{"queue": c.queue, "result": metrics.Result(err)})

	fields := []zap.Field{zap.String("routing_key", msg.RoutingKey), zap.String("message_id", msg.MessageId)}
	switch Disposition(err, msg.Redelivered) {
	case Ack:
		if ackErr := msg.Ack(false); ackErr != nil {
			log.Warn("确认消息失败", append(fields, zap.Error(ackErr))...)
		}
	case Requeue:
		log.Warn("消息处理失败，重新入队", append(fields, zap.Error(err))...)
		_ = msg.Nack(false, true)
	case Reject:
		log.Error("消息重投后仍处理失败，丢弃", append(fields, zap.Error(err))...)
		_ = msg.Nack(false, false)
	}
}

// Close 关闭Channel和连接
func (c *Consumer) Close() error {
	return closeAll(c.channel, c.conn)
}

// Outcome 消息处理后的确认方式
type Outcome int

const (
	Ack Outcome = iota
	Requeue
	Reject
)

// Disposition 根据处理结果和是否重投决定确认方式
func Disposition(err error, redelivered bool) Outcome {
	switch {
	case err == nil:
		return Ack
	case redelivered:
		return Reject
	default:
		return Requeue
	}
}

func dial(url, exchange, exchangeType string) (*amqp.Connection, *amqp.Channel, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, nil, fmt.Errorf("连接RabbitMQ失败: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, nil, fmt.Errorf("创建Channel失败: %w", err)
	}

	if err := channel.ExchangeDeclare(exchange, exchangeType, true, false, false, false, nil); err != nil {
		_ = closeAll(channel, conn)
		return nil, nil, fmt.Errorf("声明Exchange失败: %w", err)
	}
	return conn, channel, nil
}

func closeAll(channel *amqp.Channel, conn *amqp.Connection) error {
	var errs []error
	if channel != nil {
		if err := channel.Close(); err != nil && !errors.Is(err, amqp.ErrClosed) {
			errs = append(errs, err)
		}
	}
	if conn != nil {
		if err := conn.Close(); err != nil && !errors.Is(err, amqp.ErrClosed) {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
