package usecase

import (
	"context"
	"sync"

	domain "github.com/rakshalokam/storefront-api/internal/entity"
)

const razorpayKeyMissingMsg = "RAZORPAY_KEY_ID is not set"

// RazorpayPrep is the Razorpay branch of a payment-page render: either a
// usable session (order id + key id) or an error string, never both.
type RazorpayPrep struct {
	OrderID string
	KeyID   string
	Err     string
}

// BraintreePrep mirrors RazorpayPrep for the Braintree drop-in.
type BraintreePrep struct {
	ClientToken string
	Err         string
}

type PaymentPrepOutput struct {
	Methods []domain.PaymentMethod
	// Razorpay/Braintree are nil when no eligible method matches that gateway.
	Razorpay  *RazorpayPrep
	Braintree *BraintreePrep
}

// PreparePayment readies the payment page: it enumerates the eligible
// payment methods and, for each gateway that needs a pre-created remote
// session, performs the order-state transition and session-generation
// calls. Each gateway branch captures its own failures; one gateway's
// error never aborts another's preparation.
type PreparePayment struct {
	gw            CommerceGateway
	razorpayKeyID string
}

func NewPreparePayment(gw CommerceGateway, razorpayKeyID string) *PreparePayment {
	return &PreparePayment{gw: gw, razorpayKeyID: razorpayKeyID}
}

// Execute assumes the caller already verified the active-order precondition
// (order non-nil, active, at least one line) and redirected otherwise.
func (uc *PreparePayment) Execute(ctx context.Context, order *domain.Order) (PaymentPrepOutput, error) {
	methods, err := uc.gw.EligiblePaymentMethods(ctx)
	if err != nil {
		return PaymentPrepOutput{}, err
	}

	out := PaymentPrepOutput{Methods: methods}

	// The two branches are independent and the ArrangingPayment transition
	// is idempotent on the backend, so they may run concurrently.
	var wg sync.WaitGroup
	if hasGateway(methods, GatewayRazorpay) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			out.Razorpay = uc.prepareRazorpay(ctx, order)
		}()
	}
	if hasGateway(methods, GatewayBraintree) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			out.Braintree = uc.prepareBraintree(ctx)
		}()
	}
	wg.Wait()

	return out, nil
}

func (uc *PreparePayment) prepareRazorpay(ctx context.Context, order *domain.Order) *RazorpayPrep {
	prep := &RazorpayPrep{}

	states, err := uc.gw.NextOrderStates(ctx)
	if err != nil {
		prep.Err = err.Error()
		return prep
	}
	if containsState(states, domain.StateArrangingPayment) {
		res, err := uc.gw.TransitionOrderToState(ctx, domain.StateArrangingPayment)
		if err != nil {
			prep.Err = err.Error()
			return prep
		}
		if res.Order == nil {
			msg := "Unable to transition order to ArrangingPayment"
			if res.Err != nil && res.Err.Message != "" {
				msg = res.Err.Message
			}
			prep.Err = msg
			return prep
		}
	}

	if order == nil || order.ID == "" {
		prep.Err = "No active order found"
		return prep
	}

	idRes, err := uc.gw.GenerateRazorpayOrderID(ctx, order.ID)
	if err != nil {
		prep.Err = err.Error()
		return prep
	}
	if idRes.Err != nil {
		prep.Err = idRes.Err.Message
	} else {
		prep.OrderID = idRes.RazorpayOrderID
	}

	// A missing local key id is indistinguishable from a gateway error for
	// the customer, and overrides any prior success.
	prep.KeyID = uc.razorpayKeyID
	if uc.razorpayKeyID == "" {
		prep.Err = razorpayKeyMissingMsg
	}
	return prep
}

// prepareBraintree requests the client token without transitioning the
// order first; the transition happens on payment application instead.
func (uc *PreparePayment) prepareBraintree(ctx context.Context) *BraintreePrep {
	prep := &BraintreePrep{}
	token, err := uc.gw.GenerateBraintreeClientToken(ctx)
	if err != nil {
		prep.Err = err.Error()
		return prep
	}
	prep.ClientToken = token
	return prep
}

func containsState(states []string, s domain.OrderState) bool {
	for _, st := range states {
		if st == string(s) {
			return true
		}
	}
	return false
}
