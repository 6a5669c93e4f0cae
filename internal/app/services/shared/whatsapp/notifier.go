package whatsapp

import (
	"context"
	"creapar-service/internal/app/contracts"
	"creapar-service/internal/pkg/dto/requests"
)

type whatsAppNotifier struct {
	service contracts.WhatsAppService
}

// NewNotifier adapts a WhatsAppService to the Notifier contract.
func NewNotifier(service contracts.WhatsAppService) contracts.Notifier {
	return &whatsAppNotifier{service: service}
}

func (n *whatsAppNotifier) Send(ctx context.Context, destination, message string) bool {
	err := n.service.SendWhatsAppMessage(ctx, &requests.WhatsAppMessage{
		To:      destination,
		Message: message,
	})
	return err == nil
}

type noopNotifier struct{}

// NewNoopNotifier accepts and discards every message. It stands in when no
// broker is configured.
func NewNoopNotifier() contracts.Notifier {
	return noopNotifier{}
}

func (noopNotifier) Send(context.Context, string, string) bool {
	return true
}
