package commerce

import (
	domain "github.com/rakshalokam/storefront-api/internal/entity"
	"github.com/rakshalokam/storefront-api/internal/usecase"
)

// orderDetail is the shared selection set for order-returning operations.
const orderDetail = `
	id
	code
	state
	active
	currencyCode
	totalWithTax
	lines {
		id
		quantity
		linePriceWithTax
		productVariant {
			name
		}
	}
	customer {
		firstName
		lastName
		emailAddress
	}
	shippingAddress {
		fullName
		streetLine1
		streetLine2
		city
		province
		postalCode
		countryCode
		phoneNumber
	}
`

type orderPayload struct {
	ID           string `json:"id"`
	Code         string `json:"code"`
	State        string `json:"state"`
	Active       bool   `json:"active"`
	CurrencyCode string `json:"currencyCode"`
	TotalWithTax int64  `json:"totalWithTax"`
	Lines        []struct {
		ID               string `json:"id"`
		Quantity         int    `json:"quantity"`
		LinePriceWithTax int64  `json:"linePriceWithTax"`
		ProductVariant   struct {
			Name string `json:"name"`
		} `json:"productVariant"`
	} `json:"lines"`
	Customer *struct {
		FirstName    string `json:"firstName"`
		LastName     string `json:"lastName"`
		EmailAddress string `json:"emailAddress"`
	} `json:"customer"`
	ShippingAddress *addressPayload `json:"shippingAddress"`
}

type addressPayload struct {
	FullName    string `json:"fullName"`
	StreetLine1 string `json:"streetLine1"`
	StreetLine2 string `json:"streetLine2"`
	City        string `json:"city"`
	Province    string `json:"province"`
	PostalCode  string `json:"postalCode"`
	CountryCode string `json:"countryCode"`
	PhoneNumber string `json:"phoneNumber"`
}

func (p *orderPayload) toDomain() *domain.Order {
	if p == nil {
		return nil
	}
	o := &domain.Order{
		ID:           p.ID,
		Code:         p.Code,
		State:        domain.OrderState(p.State),
		Active:       p.Active,
		CurrencyCode: p.CurrencyCode,
		TotalWithTax: p.TotalWithTax,
	}
	for _, l := range p.Lines {
		o.Lines = append(o.Lines, domain.OrderLine{
			ID:               l.ID,
			ProductName:      l.ProductVariant.Name,
			Quantity:         l.Quantity,
			LinePriceWithTax: l.LinePriceWithTax,
		})
	}
	if p.Customer != nil {
		o.Customer = &domain.Customer{
			FirstName:    p.Customer.FirstName,
			LastName:     p.Customer.LastName,
			EmailAddress: p.Customer.EmailAddress,
		}
	}
	if p.ShippingAddress != nil {
		a := p.ShippingAddress.toDomain()
		o.ShippingAddress = &a
	}
	return o
}

func (p *addressPayload) toDomain() domain.OrderAddress {
	return domain.OrderAddress{
		FullName:    p.FullName,
		StreetLine1: p.StreetLine1,
		StreetLine2: p.StreetLine2,
		City:        p.City,
		Province:    p.Province,
		PostalCode:  p.PostalCode,
		CountryCode: p.CountryCode,
		PhoneNumber: p.PhoneNumber,
	}
}

// orderOrErrorPayload decodes the Order | ErrorResult union. The backend
// discriminates with __typename; business code only ever sees the tagged
// usecase.OrderResult.
type orderOrErrorPayload struct {
	Typename string `json:"__typename"`
	orderPayload
	ErrorCode string `json:"errorCode"`
	Message   string `json:"message"`
}

func (p *orderOrErrorPayload) toResult() usecase.OrderResult {
	if p == nil {
		return usecase.OrderResult{Err: &usecase.ErrorResult{Message: "empty response"}}
	}
	if p.Typename == "Order" {
		return usecase.OrderResult{Order: p.orderPayload.toDomain()}
	}
	return usecase.OrderResult{Err: &usecase.ErrorResult{Code: p.ErrorCode, Message: p.Message}}
}
