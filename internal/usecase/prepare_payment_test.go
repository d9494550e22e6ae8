package usecase

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/rakshalokam/storefront-api/internal/entity"
)

func razorpayMethod() domain.PaymentMethod {
	return domain.PaymentMethod{ID: "1", Code: "online-payment-razorpay", Name: "Razorpay", IsEligible: true}
}

func braintreeMethod() domain.PaymentMethod {
	return domain.PaymentMethod{ID: "2", Code: "braintree-payment", Name: "Braintree", IsEligible: true}
}

func testOrder() *domain.Order {
	return &domain.Order{
		ID:     "42",
		Code:   "ABCDEF",
		State:  domain.StateAddingItems,
		Active: true,
		Lines:  []domain.OrderLine{{ID: "l1", Quantity: 1}},
	}
}

func TestPreparePayment_RazorpayHappyPath(t *testing.T) {
	gw := &fakeGateway{
		paymentMethods: func(ctx context.Context) ([]domain.PaymentMethod, error) {
			return []domain.PaymentMethod{razorpayMethod()}, nil
		},
		nextStates: func(ctx context.Context) ([]string, error) {
			return []string{"ArrangingPayment", "Cancelled"}, nil
		},
		transition: func(ctx context.Context, state domain.OrderState) (OrderResult, error) {
			assert.Equal(t, domain.StateArrangingPayment, state)
			return OrderResult{Order: testOrder()}, nil
		},
		razorpayOrderID: func(ctx context.Context, orderID string) (RazorpayOrderIDResult, error) {
			assert.Equal(t, "42", orderID)
			return RazorpayOrderIDResult{RazorpayOrderID: "order_rzp123"}, nil
		},
	}

	uc := NewPreparePayment(gw, "rzp_test_key")
	out, err := uc.Execute(context.Background(), testOrder())
	require.NoError(t, err)

	require.NotNil(t, out.Razorpay)
	assert.Nil(t, out.Braintree)
	assert.Equal(t, "order_rzp123", out.Razorpay.OrderID)
	assert.Equal(t, "rzp_test_key", out.Razorpay.KeyID)
	assert.Empty(t, out.Razorpay.Err)
}

func TestPreparePayment_SkipsTransitionWhenAlreadyArranging(t *testing.T) {
	var transitions atomic.Int32
	gw := &fakeGateway{
		paymentMethods: func(ctx context.Context) ([]domain.PaymentMethod, error) {
			return []domain.PaymentMethod{razorpayMethod()}, nil
		},
		nextStates: func(ctx context.Context) ([]string, error) {
			// ArrangingPayment is absent once the order already sits there.
			return []string{"PaymentAuthorized", "Cancelled"}, nil
		},
		transition: func(ctx context.Context, state domain.OrderState) (OrderResult, error) {
			transitions.Add(1)
			return OrderResult{Order: testOrder()}, nil
		},
		razorpayOrderID: func(ctx context.Context, orderID string) (RazorpayOrderIDResult, error) {
			return RazorpayOrderIDResult{RazorpayOrderID: "order_rzp456"}, nil
		},
	}

	uc := NewPreparePayment(gw, "rzp_test_key")
	out, err := uc.Execute(context.Background(), testOrder())
	require.NoError(t, err)

	assert.Equal(t, int32(0), transitions.Load(), "no transition should be requested")
	require.NotNil(t, out.Razorpay)
	assert.Equal(t, "order_rzp456", out.Razorpay.OrderID)
}

func TestPreparePayment_MissingKeyOverridesSuccess(t *testing.T) {
	gw := &fakeGateway{
		paymentMethods: func(ctx context.Context) ([]domain.PaymentMethod, error) {
			return []domain.PaymentMethod{razorpayMethod()}, nil
		},
		nextStates: func(ctx context.Context) ([]string, error) {
			return []string{"PaymentAuthorized"}, nil
		},
		razorpayOrderID: func(ctx context.Context, orderID string) (RazorpayOrderIDResult, error) {
			return RazorpayOrderIDResult{RazorpayOrderID: "order_rzp789"}, nil
		},
	}

	uc := NewPreparePayment(gw, "")
	out, err := uc.Execute(context.Background(), testOrder())
	require.NoError(t, err)

	require.NotNil(t, out.Razorpay)
	// The session was generated, but an unusable key makes the branch fail.
	assert.Equal(t, "order_rzp789", out.Razorpay.OrderID)
	assert.Equal(t, "RAZORPAY_KEY_ID is not set", out.Razorpay.Err)
	assert.Empty(t, out.Razorpay.KeyID)
}

func TestPreparePayment_TransitionRefusedByBackend(t *testing.T) {
	gw := &fakeGateway{
		paymentMethods: func(ctx context.Context) ([]domain.PaymentMethod, error) {
			return []domain.PaymentMethod{razorpayMethod()}, nil
		},
		nextStates: func(ctx context.Context) ([]string, error) {
			return []string{"ArrangingPayment"}, nil
		},
		transition: func(ctx context.Context, state domain.OrderState) (OrderResult, error) {
			return OrderResult{Err: &ErrorResult{
				Code:    CodeOrderStateTransitionError,
				Message: "Cannot transition Order from AddingItems to ArrangingPayment",
			}}, nil
		},
	}

	uc := NewPreparePayment(gw, "rzp_test_key")
	out, err := uc.Execute(context.Background(), testOrder())
	require.NoError(t, err)

	require.NotNil(t, out.Razorpay)
	assert.Equal(t, "Cannot transition Order from AddingItems to ArrangingPayment", out.Razorpay.Err)
	assert.Empty(t, out.Razorpay.OrderID)
}

func TestPreparePayment_NoActiveOrder(t *testing.T) {
	gw := &fakeGateway{
		paymentMethods: func(ctx context.Context) ([]domain.PaymentMethod, error) {
			return []domain.PaymentMethod{razorpayMethod()}, nil
		},
		nextStates: func(ctx context.Context) ([]string, error) {
			return []string{"PaymentAuthorized"}, nil
		},
	}

	uc := NewPreparePayment(gw, "rzp_test_key")
	out, err := uc.Execute(context.Background(), nil)
	require.NoError(t, err)

	require.NotNil(t, out.Razorpay)
	assert.Equal(t, "No active order found", out.Razorpay.Err)
}

func TestPreparePayment_GatewayFailuresAreIsolated(t *testing.T) {
	gw := &fakeGateway{
		paymentMethods: func(ctx context.Context) ([]domain.PaymentMethod, error) {
			return []domain.PaymentMethod{razorpayMethod(), braintreeMethod()}, nil
		},
		nextStates: func(ctx context.Context) ([]string, error) {
			return []string{"PaymentAuthorized"}, nil
		},
		razorpayOrderID: func(ctx context.Context, orderID string) (RazorpayOrderIDResult, error) {
			return RazorpayOrderIDResult{RazorpayOrderID: "order_rzp999"}, nil
		},
		braintreeToken: func(ctx context.Context) (string, error) {
			return "", errors.New("braintree unreachable")
		},
	}

	uc := NewPreparePayment(gw, "rzp_test_key")
	out, err := uc.Execute(context.Background(), testOrder())
	require.NoError(t, err)

	require.NotNil(t, out.Razorpay)
	require.NotNil(t, out.Braintree)
	assert.Equal(t, "order_rzp999", out.Razorpay.OrderID)
	assert.Empty(t, out.Razorpay.Err)
	assert.Equal(t, "braintree unreachable", out.Braintree.Err)
	assert.Empty(t, out.Braintree.ClientToken)
}

func TestPreparePayment_BraintreeNeverTransitions(t *testing.T) {
	var transitions atomic.Int32
	gw := &fakeGateway{
		paymentMethods: func(ctx context.Context) ([]domain.PaymentMethod, error) {
			return []domain.PaymentMethod{braintreeMethod()}, nil
		},
		transition: func(ctx context.Context, state domain.OrderState) (OrderResult, error) {
			transitions.Add(1)
			return OrderResult{Order: testOrder()}, nil
		},
		braintreeToken: func(ctx context.Context) (string, error) {
			return "bt-client-token", nil
		},
	}

	uc := NewPreparePayment(gw, "rzp_test_key")
	out, err := uc.Execute(context.Background(), testOrder())
	require.NoError(t, err)

	assert.Nil(t, out.Razorpay)
	require.NotNil(t, out.Braintree)
	assert.Equal(t, "bt-client-token", out.Braintree.ClientToken)
	assert.Equal(t, int32(0), transitions.Load())
}

func TestPreparePayment_NoGatewayMethods(t *testing.T) {
	gw := &fakeGateway{
		paymentMethods: func(ctx context.Context) ([]domain.PaymentMethod, error) {
			return []domain.PaymentMethod{{ID: "9", Code: "cash-on-delivery", Name: "COD", IsEligible: true}}, nil
		},
	}

	uc := NewPreparePayment(gw, "rzp_test_key")
	out, err := uc.Execute(context.Background(), testOrder())
	require.NoError(t, err)

	assert.Len(t, out.Methods, 1)
	assert.Nil(t, out.Razorpay)
	assert.Nil(t, out.Braintree)
}
