package kafka

import (
	"context"

	"github.com/rakshalokam/storefront-api/internal/usecase"
)

// OrderStateChangedHandler keeps the order-state cache in step with the
// backend so the confirmation page sees settlement without re-querying.
type OrderStateChangedHandler struct {
	Cache usecase.OrderStateCache
}

func NewOrderStateChangedHandler(cache usecase.OrderStateCache) *OrderStateChangedHandler {
	return &OrderStateChangedHandler{Cache: cache}
}

func (h *OrderStateChangedHandler) Handle(ctx context.Context, ev usecase.OrderStateChangedMsg) error {
	if ev.OrderCode == "" || ev.State == "" {
		// poison-safe: drop rather than retry forever
		return nil
	}
	return h.Cache.SetOrderState(ctx, ev.OrderCode, ev.State)
}
