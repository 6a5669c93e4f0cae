package contracts

import (
	"context"
	"creapar-service/internal/pkg/dto/requests"
)

// Notifier delivers one outbound message and reports whether it was accepted.
type Notifier interface {
	Send(ctx context.Context, destination, message string) bool
}

// NotificationDispatcher queues messages for asynchronous delivery. Enqueue
// never blocks and returns false when the message was dropped.
type NotificationDispatcher interface {
	Enqueue(destination, message string) bool
}

type WhatsAppService interface {
	SendWhatsAppMessage(ctx context.Context, request *requests.WhatsAppMessage) error
}
