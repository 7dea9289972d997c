// Package mail SMTP邮件发送
package mail

import (
	"context"
	"errors"
	"fmt"

	gomail "github.com/wneessen/go-mail"
	"go.uber.org/zap"

	"github.com/xiebiao/bookstore-rest/internal/domain/notification"
	"github.com/xiebiao/bookstore-rest/internal/infrastructure/config"
	"github.com/xiebiao/bookstore-rest/pkg/circuitbreaker"
	apperrors "github.com/xiebiao/bookstore-rest/pkg/errors"
	"github.com/xiebiao/bookstore-rest/pkg/logger"
	"github.com/xiebiao/bookstore-rest/pkg/metrics"
)

// sendFunc 实际投递邮件（测试中替换）
type sendFunc func(ctx context.Context, msg *gomail.Msg) error

// SMTPMailer 基于go-mail的邮件发送
// 1. 同步发送，失败直接返回（调用方决定是否回滚事务）
// 2. 熔断器保护SMTP服务器：连续失败后快速失败，不再等待连接超时
type SMTPMailer struct {
	from    string
	send    sendFunc
	breaker *circuitbreaker.CircuitBreaker
}

var _ notification.Mailer = (*SMTPMailer)(nil)

// NewSMTPMailer 创建SMTP邮件发送器
// 只创建客户端，不会立即连接SMTP服务器
func NewSMTPMailer(cfg *config.Config) (*SMTPMailer, error) {
	opts := []gomail.Option{
		gomail.WithPort(cfg.Mail.Port),
		gomail.WithTLSPolicy(tlsPolicy(cfg.Mail.TLS)),
		gomail.WithTimeout(cfg.Mail.Timeout),
	}
	if cfg.Mail.Username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(cfg.Mail.Username),
			gomail.WithPassword(cfg.Mail.Password),
		)
	}

	client, err := gomail.NewClient(cfg.Mail.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("创建SMTP客户端失败: %w", err)
	}

	return newMailer(cfg.Mail.From, func(ctx context.Context, msg *gomail.Msg) error {
		return client.DialAndSendWithContext(ctx, msg)
	}), nil
}

func newMailer(from string, send sendFunc) *SMTPMailer {
	cb := circuitbreaker.New("smtp", circuitbreaker.DefaultConfig())
	cb.OnStateChange(func(name string, from, to circuitbreaker.State) {
		logger.L().Warn("熔断器状态变化",
			zap.String("name", name),
			zap.String("from", from.String()),
			zap.String("to", to.String()),
		)
	})
	return &SMTPMailer{from: from, send: send, breaker: cb}
}

// Send 发送一封纯文本邮件
func (m *SMTPMailer) Send(ctx context.Context, msg notification.Message) error {
	built, err := buildMessage(m.from, msg)
	if err != nil {
		metrics.IncCounterVec(metrics.MailsSentTotal, map[string]string{"kind": string(msg.Kind), "result": "failure"})
		return &apperrors.AppError{Code: apperrors.ErrCodeMailError, Message: "邮件内容不合法", Err: err}
	}

	err = m.breaker.Execute(ctx, func(ctx context.Context) error {
		return m.send(ctx, built)
	})
	metrics.IncCounterVec(metrics.MailsSentTotal, map[string]string{"kind": string(msg.Kind), "result": metrics.Result(err)})
	if err != nil {
		logger.L().Error("邮件发送失败",
			zap.String("kind", string(msg.Kind)),
			zap.String("to", msg.To),
			zap.Bool("circuit_open", errors.Is(err, circuitbreaker.ErrOpenState)),
			zap.Error(err),
		)
		return &apperrors.AppError{Code: apperrors.ErrCodeMailError, Message: apperrors.ErrMailError.Message, Err: err}
	}

	logger.L().Info("邮件已发送", zap.String("kind", string(msg.Kind)), zap.String("to", msg.To))
	return nil
}

// buildMessage 领域消息 → go-mail消息
func buildMessage(from string, msg notification.Message) (*gomail.Msg, error) {
	m := gomail.NewMsg()
	if err := m.From(from); err != nil {
		return nil, fmt.Errorf("发件人地址无效: %w", err)
	}
	if err := m.To(msg.To); err != nil {
		return nil, fmt.Errorf("收件人地址无效: %w", err)
	}
	m.Subject(msg.Subject)
	m.SetBodyString(gomail.TypeTextPlain, msg.Body)
	return m, nil
}

func tlsPolicy(s string) gomail.TLSPolicy {
	switch s {
	case "mandatory":
		return gomail.TLSMandatory
	case "none":
		return gomail.NoTLS
	default:
		return gomail.TLSOpportunistic
	}
}
