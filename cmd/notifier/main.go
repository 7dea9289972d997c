// notifier 消费order.placed事件，发送订单确认邮件
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	appnotification "github.com/xiebiao/bookstore-rest/internal/application/notification"
	"github.com/xiebiao/bookstore-rest/internal/domain/order"
	"github.com/xiebiao/bookstore-rest/internal/infrastructure/config"
	"github.com/xiebiao/bookstore-rest/internal/infrastructure/mail"
	"github.com/xiebiao/bookstore-rest/internal/infrastructure/messaging"
	"github.com/xiebiao/bookstore-rest/pkg/logger"
	"github.com/xiebiao/bookstore-rest/pkg/metrics"
	"github.com/xiebiao/bookstore-rest/pkg/mq"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	zl, err := logger.New(logger.Options{
		Level:        cfg.Log.Level,
		Format:       cfg.Log.Format,
		Output:       cfg.Log.Output,
		EnableCaller: cfg.Log.EnableCaller,
	})
	if err != nil {
		log.Fatalf("初始化日志失败: %v", err)
	}
	logger.ReplaceGlobals(zl)
	defer func() { _ = zl.Sync() }()

	if !cfg.MQ.Enabled {
		zl.Fatal("消息队列未启用（mq.enabled=false），通知服务无事可做")
	}
	if cfg.Metrics.Enabled {
		metrics.InitMetrics()
	}

	mailer, err := mail.NewSMTPMailer(cfg)
	if err != nil {
		zl.Fatal("初始化邮件发送失败", zap.Error(err))
	}

	consumer, err := mq.NewConsumer(
		cfg.MQ.URL,
		cfg.MQ.Exchange,
		cfg.MQ.ExchangeType,
		cfg.MQ.Queue,
		[]string{order.RoutingKeyOrderPlaced},
		cfg.MQ.Prefetch,
	)
	if err != nil {
		zl.Fatal("创建消息消费者失败", zap.Error(err))
	}
	defer func() {
		if err := consumer.Close(); err != nil {
			zl.Warn("关闭消息消费者失败", zap.Error(err))
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sendConfirmation := appnotification.NewSendOrderConfirmationUseCase(mailer)
	if err := consumer.Consume(ctx, messaging.OrderPlacedHandler(sendConfirmation.Execute)); err != nil {
		zl.Error("消费消息失败", zap.Error(err))
	}
	zl.Info("通知服务已退出")
}
