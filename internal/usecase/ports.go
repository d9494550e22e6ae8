package usecase

import (
	"context"

	domain "github.com/rakshalokam/storefront-api/internal/entity"
)

// ErrorResult is the backend's structured error branch of a union result
// (errorCode + message). Codes follow the backend's SCREAMING_SNAKE enum.
type ErrorResult struct {
	Code    string
	Message string
}

// Checkout-related backend error codes surfaced to customers.
const (
	CodeOrderPaymentStateError      = "ORDER_PAYMENT_STATE_ERROR"
	CodeIneligiblePaymentMethod     = "INELIGIBLE_PAYMENT_METHOD_ERROR"
	CodePaymentFailedError          = "PAYMENT_FAILED_ERROR"
	CodePaymentDeclinedError        = "PAYMENT_DECLINED_ERROR"
	CodeOrderStateTransitionError   = "ORDER_STATE_TRANSITION_ERROR"
	CodeNoActiveOrderError          = "NO_ACTIVE_ORDER_ERROR"
	CodeRazorpayOrderIDGeneration   = "RAZORPAY_ORDER_ID_GENERATION_ERROR"
)

// OrderResult is the Order | ErrorResult union returned by mutating order
// operations. Exactly one field is non-nil.
type OrderResult struct {
	Order *domain.Order
	Err   *ErrorResult
}

// RazorpayOrderIDResult is the RazorpayOrderIdSuccess | error union from
// the backend's Razorpay plugin. Exactly one field is meaningfully set.
type RazorpayOrderIDResult struct {
	RazorpayOrderID string
	Err             *ErrorResult
}

type CustomerDetail struct {
	Customer  domain.Customer
	Addresses []domain.OrderAddress
}

// CommerceGateway is the port to the commerce backend's shop API.
// Implementations forward the request session from ctx on every call.
type CommerceGateway interface {
	ActiveOrder(ctx context.Context) (*domain.Order, error)
	OrderByCode(ctx context.Context, code string) (*domain.Order, error)
	EligiblePaymentMethods(ctx context.Context) ([]domain.PaymentMethod, error)
	NextOrderStates(ctx context.Context) ([]string, error)
	TransitionOrderToState(ctx context.Context, state domain.OrderState) (OrderResult, error)
	GenerateRazorpayOrderID(ctx context.Context, orderID string) (RazorpayOrderIDResult, error)
	GenerateBraintreeClientToken(ctx context.Context) (string, error)
	AddPaymentToOrder(ctx context.Context, method string, metadata any) (OrderResult, error)

	AvailableCountries(ctx context.Context) ([]domain.Country, error)
	EligibleShippingMethods(ctx context.Context) ([]domain.ShippingMethod, error)
	ActiveCustomer(ctx context.Context) (*CustomerDetail, error)
	SetOrderShippingAddress(ctx context.Context, addr domain.OrderAddress) (OrderResult, error)
	SetOrderShippingMethod(ctx context.Context, shippingMethodID string) (OrderResult, error)

	Collections(ctx context.Context, take int) ([]domain.Collection, error)
}

type ReviewRepo interface {
	ListByProductSlug(ctx context.Context, slug string) ([]domain.Review, error)
	GetByID(ctx context.Context, id string) (*domain.Review, error)
	Add(ctx context.Context, r *domain.Review) error
}

// OrderStateCache caches the last observed order state by order code, fed
// by backend events and read by the confirmation page.
type OrderStateCache interface {
	SetOrderState(ctx context.Context, orderCode, state string) error
	GetOrderState(ctx context.Context, orderCode string) (string, bool, error)
}

type CollectionCache interface {
	GetCollections(ctx context.Context) ([]domain.Collection, bool, error)
	SetCollections(ctx context.Context, cols []domain.Collection) error
}

// OrderEvents publishes storefront order events to the message broker.
type OrderEvents interface {
	PublishOrderPlaced(ctx context.Context, msg OrderPlacedMsg) error
}

// EventDedup guards against webhook redelivery. TryLock returns false when
// the scope/key pair was already seen within the store's TTL.
type EventDedup interface {
	TryLock(ctx context.Context, scope, key string) (bool, error)
}
