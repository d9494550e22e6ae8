package usecase

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	domain "github.com/rakshalokam/storefront-api/internal/entity"
	"github.com/rakshalokam/storefront-api/internal/logging"
)

// PaymentFailure is a user-facing checkout failure: the message is shown
// verbatim to the customer (HTTP 400), unlike transport errors which stay
// internal.
type PaymentFailure struct {
	Message string
}

func (e *PaymentFailure) Error() string { return e.Message }

type ApplyPaymentInput struct {
	Method   string
	Metadata string // opaque blob from the gateway's client-side handler
	Nonce    string // braintree fallback when no metadata was posted
}

type ApplyPaymentOutput struct {
	OrderCode  string
	RedirectTo string
}

// ApplyPayment submits a completed gateway interaction to the backend:
// transition to ArrangingPayment when available, then addPaymentToOrder.
// Nothing is retried; a failed attempt is terminal and the customer may
// re-invoke the flow.
type ApplyPayment struct {
	gw     CommerceGateway
	events OrderEvents // optional
}

func NewApplyPayment(gw CommerceGateway, events OrderEvents) *ApplyPayment {
	return &ApplyPayment{gw: gw, events: events}
}

func (uc *ApplyPayment) Execute(ctx context.Context, in ApplyPaymentInput) (ApplyPaymentOutput, error) {
	states, err := uc.gw.NextOrderStates(ctx)
	if err != nil {
		return ApplyPaymentOutput{}, err
	}
	if containsState(states, domain.StateArrangingPayment) {
		res, err := uc.gw.TransitionOrderToState(ctx, domain.StateArrangingPayment)
		if err != nil {
			return ApplyPaymentOutput{}, err
		}
		if res.Order == nil {
			msg := "Unable to transition order to ArrangingPayment"
			if res.Err != nil && res.Err.Message != "" {
				msg = res.Err.Message
			}
			return ApplyPaymentOutput{}, &PaymentFailure{Message: msg}
		}
	}

	metadata := ParsePaymentMetadata(in.Metadata, in.Nonce)

	res, err := uc.gw.AddPaymentToOrder(ctx, in.Method, metadata)
	if err != nil {
		return ApplyPaymentOutput{}, err
	}
	if res.Order == nil {
		msg := "Payment could not be added to order"
		if res.Err != nil && res.Err.Message != "" {
			msg = res.Err.Message
		}
		return ApplyPaymentOutput{}, &PaymentFailure{Message: msg}
	}

	uc.publishPlaced(ctx, res.Order)

	return ApplyPaymentOutput{
		OrderCode:  res.Order.Code,
		RedirectTo: "/checkout/confirmation/" + res.Order.Code,
	}, nil
}

// publishPlaced is best effort: a broker outage must not fail a checkout
// that the backend already accepted.
func (uc *ApplyPayment) publishPlaced(ctx context.Context, order *domain.Order) {
	if uc.events == nil {
		return
	}
	msg := OrderPlacedMsg{
		OrderID:      order.ID,
		OrderCode:    order.Code,
		TotalWithTax: order.TotalWithTax,
		CurrencyCode: order.CurrencyCode,
		PlacedAt:     time.Now().UTC(),
	}
	if order.Customer != nil {
		msg.CustomerName = strings.TrimSpace(order.Customer.FirstName + " " + order.Customer.LastName)
	}
	if order.ShippingAddress != nil {
		msg.CustomerPhone = order.ShippingAddress.PhoneNumber
	}
	if err := uc.events.PublishOrderPlaced(ctx, msg); err != nil {
		logging.FromCtx(ctx).Warn("order.placed publish failed", "order_code", order.Code, "error", err)
	}
}

// ParsePaymentMetadata interprets the gateway's posted metadata. A blob
// that looks like JSON ("{"/"[" prefix) is parsed; malformed JSON degrades
// to the raw trimmed string rather than failing the request. An empty blob
// with a nonce becomes {"nonce": nonce}.
func ParsePaymentMetadata(raw, nonce string) any {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		if nonce != "" {
			return map[string]any{"nonce": nonce}
		}
		return map[string]any{}
	}
	if strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[") {
		var v any
		if err := json.Unmarshal([]byte(trimmed), &v); err == nil {
			return v
		}
	}
	return trimmed
}

// PaymentErrorMessage filters a carried-over error result down to the
// checkout error codes customers may act on; anything else is suppressed.
func PaymentErrorMessage(res *ErrorResult) string {
	if res == nil || res.Code == "" {
		return ""
	}
	switch res.Code {
	case CodeOrderPaymentStateError,
		CodeIneligiblePaymentMethod,
		CodePaymentFailedError,
		CodePaymentDeclinedError,
		CodeOrderStateTransitionError,
		CodeNoActiveOrderError:
		return res.Message
	}
	return ""
}
