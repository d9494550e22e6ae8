package queue

import (
	"context"
	"fmt"

	"github.com/rakshalokam/storefront-api/internal/logging"
	"github.com/rakshalokam/storefront-api/internal/usecase"
)

// OrderPlacedHandler turns an order.placed event into the store's WhatsApp
// order notification. Actual delivery is manual (the store owner's phone);
// the handler composes and records the message.
type OrderPlacedHandler struct {
	// WhatsAppNumber is digits only, e.g. "919876543210". Empty disables
	// notification composition.
	WhatsAppNumber string
}

func NewOrderPlacedHandler(whatsAppNumber string) *OrderPlacedHandler {
	return &OrderPlacedHandler{WhatsAppNumber: whatsAppNumber}
}

// HandleOrderPlaced is intended to be used with the JSON adapter
// (queue.JSONHandler[usecase.OrderPlacedMsg]).
func (h *OrderPlacedHandler) HandleOrderPlaced(ctx context.Context, msg usecase.OrderPlacedMsg) error {
	l := logging.FromCtx(ctx)
	if h.WhatsAppNumber == "" {
		l.Info("order placed (whatsapp notification disabled)", "order_code", msg.OrderCode)
		return nil
	}

	text := fmt.Sprintf("New order %s: %d %s", msg.OrderCode, msg.TotalWithTax, msg.CurrencyCode)
	if msg.CustomerName != "" {
		text += " from " + msg.CustomerName
	}

	l.Info("order placed",
		"order_code", msg.OrderCode,
		"whatsapp", "https://wa.me/"+h.WhatsAppNumber,
		"message", text,
	)
	return nil
}
