package usecase

import (
	"strings"

	domain "github.com/rakshalokam/storefront-api/internal/entity"
)

// GatewayKind identifies which payment integration a method code belongs to.
type GatewayKind int

const (
	GatewayOther GatewayKind = iota
	GatewayRazorpay
	GatewayBraintree
)

// ClassifyPaymentMethod maps a payment method code to its gateway by
// substring containment: any code containing "razorpay" (or "braintree")
// is treated as that gateway. The loose match is intentional and mirrors
// the storefront convention; a code like "non-razorpay-backup" would be
// misclassified, which is accepted as-is.
func ClassifyPaymentMethod(code string) GatewayKind {
	switch {
	case strings.Contains(code, "braintree"):
		return GatewayBraintree
	case strings.Contains(code, "razorpay"):
		return GatewayRazorpay
	default:
		return GatewayOther
	}
}

func hasGateway(methods []domain.PaymentMethod, kind GatewayKind) bool {
	for _, m := range methods {
		if ClassifyPaymentMethod(m.Code) == kind {
			return true
		}
	}
	return false
}
