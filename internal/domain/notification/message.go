// Package notification 邮件通知
//
// 领域层只负责组装邮件内容，发送由infrastructure/mail实现Mailer接口。
package notification

import (
	"context"
	"fmt"
	"strings"
)

//go:generate mockgen -destination=mocks/mailer.go -package=mocks . Mailer

// Kind 邮件类型（同时用作metrics标签）
type Kind string

const (
	KindWelcome           Kind = "welcome"
	KindGoodbye           Kind = "goodbye"
	KindOrderConfirmation Kind = "order_confirmation"
)

// Message 一封纯文本邮件
type Message struct {
	Kind    Kind
	To      string
	Subject string
	Body    string
}

// Mailer 邮件发送接口
// 同步发送，失败直接返回错误（不排队、不重试）
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// Welcome 注册欢迎邮件
func Welcome(email, displayName string) Message {
	return Message{
		Kind:    KindWelcome,
		To:      email,
		Subject: "Welcome to Bookstore",
		Body: fmt.Sprintf("Hello %s,\n\nyour account has been created. You can now rate and comment on books.\n",
			strings.TrimSpace(displayName)),
	}
}

// Goodbye 注销账户邮件
func Goodbye(email, displayName string) Message {
	return Message{
		Kind:    KindGoodbye,
		To:      email,
		Subject: "Your Bookstore account has been closed",
		Body: fmt.Sprintf("Hello %s,\n\nyour account and all of your comments and ratings have been deleted.\n",
			strings.TrimSpace(displayName)),
	}
}

// OrderLine 确认邮件中的一行明细
type OrderLine struct {
	BookID    string
	Quantity  int
	UnitPrice string
}

// OrderConfirmation 下单确认邮件（notifier消费order.placed事件后发送）
func OrderConfirmation(email, displayName, trackingNumber, totalPrice string, lines []OrderLine) Message {
	var b strings.Builder
	fmt.Fprintf(&b, "Hello %s,\n\nthank you for your order.\n\n", strings.TrimSpace(displayName))
	fmt.Fprintf(&b, "Tracking number: %s\n\n", trackingNumber)
	for _, line := range lines {
		fmt.Fprintf(&b, "  %s x%d @ %s\n", line.BookID, line.Quantity, line.UnitPrice)
	}
	fmt.Fprintf(&b, "\nTotal: %s\n", totalPrice)

	return Message{
		Kind:    KindOrderConfirmation,
		To:      email,
		Subject: "Order confirmation " + trackingNumber,
		Body:    b.String(),
	}
}
