package domain

// OrderState mirrors the commerce backend's order lifecycle. The
// authoritative state machine lives in the backend; the storefront only
// observes states and requests transitions.
type OrderState string

const (
	StateAddingItems       OrderState = "AddingItems"
	StateArrangingPayment  OrderState = "ArrangingPayment"
	StatePaymentAuthorized OrderState = "PaymentAuthorized"
	StatePaymentSettled    OrderState = "PaymentSettled"
)

type OrderLine struct {
	ID               string
	ProductName      string
	Quantity         int
	LinePriceWithTax int64
}

type Customer struct {
	FirstName    string
	LastName     string
	EmailAddress string
}

type OrderAddress struct {
	FullName    string
	StreetLine1 string
	StreetLine2 string
	City        string
	Province    string
	PostalCode  string
	CountryCode string
	PhoneNumber string
}

// Order is a read-only, possibly stale snapshot of the customer's order
// as returned by the backend for the current session.
type Order struct {
	ID              string
	Code            string
	State           OrderState
	Active          bool
	CurrencyCode    string
	TotalWithTax    int64
	Lines           []OrderLine
	Customer        *Customer
	ShippingAddress *OrderAddress
}

type PaymentMethod struct {
	ID                 string
	Code               string
	Name               string
	Description        string
	IsEligible         bool
	EligibilityMessage string
}

type ShippingMethod struct {
	ID           string
	Name         string
	Description  string
	Price        int64
	PriceWithTax int64
}

type Country struct {
	ID   string
	Name string
	Code string
}

type Collection struct {
	ID           string
	Name         string
	Slug         string
	PreviewImage string
}
