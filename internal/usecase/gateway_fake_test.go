package usecase

import (
	"context"
	"errors"

	domain "github.com/rakshalokam/storefront-api/internal/entity"
)

// fakeGateway lets each test stub exactly the calls it cares about; any
// stubbed-out call fails loudly instead of returning a zero value.
type fakeGateway struct {
	activeOrder     func(ctx context.Context) (*domain.Order, error)
	orderByCode     func(ctx context.Context, code string) (*domain.Order, error)
	paymentMethods  func(ctx context.Context) ([]domain.PaymentMethod, error)
	nextStates      func(ctx context.Context) ([]string, error)
	transition      func(ctx context.Context, state domain.OrderState) (OrderResult, error)
	razorpayOrderID func(ctx context.Context, orderID string) (RazorpayOrderIDResult, error)
	braintreeToken  func(ctx context.Context) (string, error)
	addPayment      func(ctx context.Context, method string, metadata any) (OrderResult, error)
	countries       func(ctx context.Context) ([]domain.Country, error)
	shippingMethods func(ctx context.Context) ([]domain.ShippingMethod, error)
	activeCustomer  func(ctx context.Context) (*CustomerDetail, error)
	setAddress      func(ctx context.Context, addr domain.OrderAddress) (OrderResult, error)
	setMethod       func(ctx context.Context, id string) (OrderResult, error)
	collections     func(ctx context.Context, take int) ([]domain.Collection, error)
}

var errNotStubbed = errors.New("not stubbed")

func (f *fakeGateway) ActiveOrder(ctx context.Context) (*domain.Order, error) {
	if f.activeOrder == nil {
		return nil, errNotStubbed
	}
	return f.activeOrder(ctx)
}

func (f *fakeGateway) OrderByCode(ctx context.Context, code string) (*domain.Order, error) {
	if f.orderByCode == nil {
		return nil, errNotStubbed
	}
	return f.orderByCode(ctx, code)
}

func (f *fakeGateway) EligiblePaymentMethods(ctx context.Context) ([]domain.PaymentMethod, error) {
	if f.paymentMethods == nil {
		return nil, errNotStubbed
	}
	return f.paymentMethods(ctx)
}

func (f *fakeGateway) NextOrderStates(ctx context.Context) ([]string, error) {
	if f.nextStates == nil {
		return nil, errNotStubbed
	}
	return f.nextStates(ctx)
}

func (f *fakeGateway) TransitionOrderToState(ctx context.Context, state domain.OrderState) (OrderResult, error) {
	if f.transition == nil {
		return OrderResult{}, errNotStubbed
	}
	return f.transition(ctx, state)
}

func (f *fakeGateway) GenerateRazorpayOrderID(ctx context.Context, orderID string) (RazorpayOrderIDResult, error) {
	if f.razorpayOrderID == nil {
		return RazorpayOrderIDResult{}, errNotStubbed
	}
	return f.razorpayOrderID(ctx, orderID)
}

func (f *fakeGateway) GenerateBraintreeClientToken(ctx context.Context) (string, error) {
	if f.braintreeToken == nil {
		return "", errNotStubbed
	}
	return f.braintreeToken(ctx)
}

func (f *fakeGateway) AddPaymentToOrder(ctx context.Context, method string, metadata any) (OrderResult, error) {
	if f.addPayment == nil {
		return OrderResult{}, errNotStubbed
	}
	return f.addPayment(ctx, method, metadata)
}

func (f *fakeGateway) AvailableCountries(ctx context.Context) ([]domain.Country, error) {
	if f.countries == nil {
		return nil, errNotStubbed
	}
	return f.countries(ctx)
}

func (f *fakeGateway) EligibleShippingMethods(ctx context.Context) ([]domain.ShippingMethod, error) {
	if f.shippingMethods == nil {
		return nil, errNotStubbed
	}
	return f.shippingMethods(ctx)
}

func (f *fakeGateway) ActiveCustomer(ctx context.Context) (*CustomerDetail, error) {
	if f.activeCustomer == nil {
		return nil, errNotStubbed
	}
	return f.activeCustomer(ctx)
}

func (f *fakeGateway) SetOrderShippingAddress(ctx context.Context, addr domain.OrderAddress) (OrderResult, error) {
	if f.setAddress == nil {
		return OrderResult{}, errNotStubbed
	}
	return f.setAddress(ctx, addr)
}

func (f *fakeGateway) SetOrderShippingMethod(ctx context.Context, id string) (OrderResult, error) {
	if f.setMethod == nil {
		return OrderResult{}, errNotStubbed
	}
	return f.setMethod(ctx, id)
}

func (f *fakeGateway) Collections(ctx context.Context, take int) ([]domain.Collection, error) {
	if f.collections == nil {
		return nil, errNotStubbed
	}
	return f.collections(ctx, take)
}
