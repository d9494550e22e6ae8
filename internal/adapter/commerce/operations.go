package commerce

import (
	"context"
	"fmt"

	"github.com/machinebox/graphql"
	domain "github.com/rakshalokam/storefront-api/internal/entity"
	"github.com/rakshalokam/storefront-api/internal/usecase"
)

func (c *Client) ActiveOrder(ctx context.Context) (*domain.Order, error) {
	req := graphql.NewRequest(`query activeOrder { activeOrder {` + orderDetail + `} }`)
	var resp struct {
		ActiveOrder *orderPayload `json:"activeOrder"`
	}
	if err := c.run(ctx, req, &resp); err != nil {
		return nil, fmt.Errorf("activeOrder: %w", err)
	}
	return resp.ActiveOrder.toDomain(), nil
}

func (c *Client) OrderByCode(ctx context.Context, code string) (*domain.Order, error) {
	req := graphql.NewRequest(`query orderByCode($code: String!) { orderByCode(code: $code) {` + orderDetail + `} }`)
	req.Var("code", code)
	var resp struct {
		OrderByCode *orderPayload `json:"orderByCode"`
	}
	if err := c.run(ctx, req, &resp); err != nil {
		return nil, fmt.Errorf("orderByCode: %w", err)
	}
	return resp.OrderByCode.toDomain(), nil
}

func (c *Client) EligiblePaymentMethods(ctx context.Context) ([]domain.PaymentMethod, error) {
	req := graphql.NewRequest(`query eligiblePaymentMethods {
		eligiblePaymentMethods {
			id
			code
			name
			description
			eligibilityMessage
			isEligible
		}
	}`)
	var resp struct {
		EligiblePaymentMethods []struct {
			ID                 string `json:"id"`
			Code               string `json:"code"`
			Name               string `json:"name"`
			Description        string `json:"description"`
			EligibilityMessage string `json:"eligibilityMessage"`
			IsEligible         bool   `json:"isEligible"`
		} `json:"eligiblePaymentMethods"`
	}
	if err := c.run(ctx, req, &resp); err != nil {
		return nil, fmt.Errorf("eligiblePaymentMethods: %w", err)
	}
	out := make([]domain.PaymentMethod, 0, len(resp.EligiblePaymentMethods))
	for _, m := range resp.EligiblePaymentMethods {
		out = append(out, domain.PaymentMethod{
			ID:                 m.ID,
			Code:               m.Code,
			Name:               m.Name,
			Description:        m.Description,
			EligibilityMessage: m.EligibilityMessage,
			IsEligible:         m.IsEligible,
		})
	}
	return out, nil
}

func (c *Client) NextOrderStates(ctx context.Context) ([]string, error) {
	req := graphql.NewRequest(`query nextOrderStates { nextOrderStates }`)
	var resp struct {
		NextOrderStates []string `json:"nextOrderStates"`
	}
	if err := c.run(ctx, req, &resp); err != nil {
		return nil, fmt.Errorf("nextOrderStates: %w", err)
	}
	return resp.NextOrderStates, nil
}

func (c *Client) TransitionOrderToState(ctx context.Context, state domain.OrderState) (usecase.OrderResult, error) {
	req := graphql.NewRequest(`mutation transitionOrderToState($state: String!) {
		transitionOrderToState(state: $state) {
			__typename
			... on Order {` + orderDetail + `}
			... on ErrorResult {
				errorCode
				message
			}
		}
	}`)
	req.Var("state", string(state))
	var resp struct {
		TransitionOrderToState *orderOrErrorPayload `json:"transitionOrderToState"`
	}
	if err := c.run(ctx, req, &resp); err != nil {
		return usecase.OrderResult{}, fmt.Errorf("transitionOrderToState: %w", err)
	}
	return resp.TransitionOrderToState.toResult(), nil
}

func (c *Client) GenerateRazorpayOrderID(ctx context.Context, orderID string) (usecase.RazorpayOrderIDResult, error) {
	req := graphql.NewRequest(`mutation generateRazorpayOrderId($orderId: ID!) {
		generateRazorpayOrderId(orderId: $orderId) {
			__typename
			... on RazorpayOrderIdSuccess {
				razorpayOrderId
			}
			... on RazorpayOrderIdGenerationError {
				errorCode
				message
			}
		}
	}`)
	req.Var("orderId", orderID)
	var resp struct {
		GenerateRazorpayOrderID struct {
			Typename        string `json:"__typename"`
			RazorpayOrderID string `json:"razorpayOrderId"`
			ErrorCode       string `json:"errorCode"`
			Message         string `json:"message"`
		} `json:"generateRazorpayOrderId"`
	}
	if err := c.run(ctx, req, &resp); err != nil {
		return usecase.RazorpayOrderIDResult{}, fmt.Errorf("generateRazorpayOrderId: %w", err)
	}
	r := resp.GenerateRazorpayOrderID
	if r.Typename == "RazorpayOrderIdSuccess" {
		return usecase.RazorpayOrderIDResult{RazorpayOrderID: r.RazorpayOrderID}, nil
	}
	return usecase.RazorpayOrderIDResult{Err: &usecase.ErrorResult{Code: r.ErrorCode, Message: r.Message}}, nil
}

func (c *Client) GenerateBraintreeClientToken(ctx context.Context) (string, error) {
	req := graphql.NewRequest(`query generateBraintreeClientToken { generateBraintreeClientToken }`)
	var resp struct {
		GenerateBraintreeClientToken string `json:"generateBraintreeClientToken"`
	}
	if err := c.run(ctx, req, &resp); err != nil {
		return "", fmt.Errorf("generateBraintreeClientToken: %w", err)
	}
	return resp.GenerateBraintreeClientToken, nil
}

func (c *Client) AddPaymentToOrder(ctx context.Context, method string, metadata any) (usecase.OrderResult, error) {
	req := graphql.NewRequest(`mutation addPaymentToOrder($input: PaymentInput!) {
		addPaymentToOrder(input: $input) {
			__typename
			... on Order {` + orderDetail + `}
			... on ErrorResult {
				errorCode
				message
			}
		}
	}`)
	req.Var("input", map[string]any{
		"method":   method,
		"metadata": metadata,
	})
	var resp struct {
		AddPaymentToOrder *orderOrErrorPayload `json:"addPaymentToOrder"`
	}
	if err := c.run(ctx, req, &resp); err != nil {
		return usecase.OrderResult{}, fmt.Errorf("addPaymentToOrder: %w", err)
	}
	return resp.AddPaymentToOrder.toResult(), nil
}

func (c *Client) AvailableCountries(ctx context.Context) ([]domain.Country, error) {
	req := graphql.NewRequest(`query availableCountries {
		availableCountries {
			id
			name
			code
		}
	}`)
	var resp struct {
		AvailableCountries []domain.Country `json:"availableCountries"`
	}
	if err := c.run(ctx, req, &resp); err != nil {
		return nil, fmt.Errorf("availableCountries: %w", err)
	}
	return resp.AvailableCountries, nil
}

func (c *Client) EligibleShippingMethods(ctx context.Context) ([]domain.ShippingMethod, error) {
	req := graphql.NewRequest(`query eligibleShippingMethods {
		eligibleShippingMethods {
			id
			name
			description
			price
			priceWithTax
		}
	}`)
	var resp struct {
		EligibleShippingMethods []struct {
			ID           string `json:"id"`
			Name         string `json:"name"`
			Description  string `json:"description"`
			Price        int64  `json:"price"`
			PriceWithTax int64  `json:"priceWithTax"`
		} `json:"eligibleShippingMethods"`
	}
	if err := c.run(ctx, req, &resp); err != nil {
		return nil, fmt.Errorf("eligibleShippingMethods: %w", err)
	}
	out := make([]domain.ShippingMethod, 0, len(resp.EligibleShippingMethods))
	for _, m := range resp.EligibleShippingMethods {
		out = append(out, domain.ShippingMethod{
			ID:           m.ID,
			Name:         m.Name,
			Description:  m.Description,
			Price:        m.Price,
			PriceWithTax: m.PriceWithTax,
		})
	}
	return out, nil
}

func (c *Client) ActiveCustomer(ctx context.Context) (*usecase.CustomerDetail, error) {
	req := graphql.NewRequest(`query activeCustomer {
		activeCustomer {
			firstName
			lastName
			emailAddress
			addresses {
				fullName
				streetLine1
				streetLine2
				city
				province
				postalCode
				country { code }
				phoneNumber
			}
		}
	}`)
	var resp struct {
		ActiveCustomer *struct {
			FirstName    string `json:"firstName"`
			LastName     string `json:"lastName"`
			EmailAddress string `json:"emailAddress"`
			Addresses    []struct {
				FullName    string `json:"fullName"`
				StreetLine1 string `json:"streetLine1"`
				StreetLine2 string `json:"streetLine2"`
				City        string `json:"city"`
				Province    string `json:"province"`
				PostalCode  string `json:"postalCode"`
				Country     struct {
					Code string `json:"code"`
				} `json:"country"`
				PhoneNumber string `json:"phoneNumber"`
			} `json:"addresses"`
		} `json:"activeCustomer"`
	}
	if err := c.run(ctx, req, &resp); err != nil {
		return nil, fmt.Errorf("activeCustomer: %w", err)
	}
	if resp.ActiveCustomer == nil {
		return nil, nil
	}
	detail := &usecase.CustomerDetail{
		Customer: domain.Customer{
			FirstName:    resp.ActiveCustomer.FirstName,
			LastName:     resp.ActiveCustomer.LastName,
			EmailAddress: resp.ActiveCustomer.EmailAddress,
		},
	}
	for _, a := range resp.ActiveCustomer.Addresses {
		detail.Addresses = append(detail.Addresses, domain.OrderAddress{
			FullName:    a.FullName,
			StreetLine1: a.StreetLine1,
			StreetLine2: a.StreetLine2,
			City:        a.City,
			Province:    a.Province,
			PostalCode:  a.PostalCode,
			CountryCode: a.Country.Code,
			PhoneNumber: a.PhoneNumber,
		})
	}
	return detail, nil
}

func (c *Client) SetOrderShippingAddress(ctx context.Context, addr domain.OrderAddress) (usecase.OrderResult, error) {
	req := graphql.NewRequest(`mutation setOrderShippingAddress($input: CreateAddressInput!) {
		setOrderShippingAddress(input: $input) {
			__typename
			... on Order {` + orderDetail + `}
			... on ErrorResult {
				errorCode
				message
			}
		}
	}`)
	req.Var("input", map[string]any{
		"fullName":    addr.FullName,
		"streetLine1": addr.StreetLine1,
		"streetLine2": addr.StreetLine2,
		"city":        addr.City,
		"province":    addr.Province,
		"postalCode":  addr.PostalCode,
		"countryCode": addr.CountryCode,
		"phoneNumber": addr.PhoneNumber,
	})
	var resp struct {
		SetOrderShippingAddress *orderOrErrorPayload `json:"setOrderShippingAddress"`
	}
	if err := c.run(ctx, req, &resp); err != nil {
		return usecase.OrderResult{}, fmt.Errorf("setOrderShippingAddress: %w", err)
	}
	return resp.SetOrderShippingAddress.toResult(), nil
}

func (c *Client) SetOrderShippingMethod(ctx context.Context, shippingMethodID string) (usecase.OrderResult, error) {
	req := graphql.NewRequest(`mutation setOrderShippingMethod($id: [ID!]!) {
		setOrderShippingMethod(shippingMethodId: $id) {
			__typename
			... on Order {` + orderDetail + `}
			... on ErrorResult {
				errorCode
				message
			}
		}
	}`)
	req.Var("id", []string{shippingMethodID})
	var resp struct {
		SetOrderShippingMethod *orderOrErrorPayload `json:"setOrderShippingMethod"`
	}
	if err := c.run(ctx, req, &resp); err != nil {
		return usecase.OrderResult{}, fmt.Errorf("setOrderShippingMethod: %w", err)
	}
	return resp.SetOrderShippingMethod.toResult(), nil
}

func (c *Client) Collections(ctx context.Context, take int) ([]domain.Collection, error) {
	req := graphql.NewRequest(`query collections($take: Int) {
		collections(options: { take: $take }) {
			items {
				id
				name
				slug
				featuredAsset {
					preview
				}
			}
		}
	}`)
	req.Var("take", take)
	var resp struct {
		Collections struct {
			Items []struct {
				ID            string `json:"id"`
				Name          string `json:"name"`
				Slug          string `json:"slug"`
				FeaturedAsset *struct {
					Preview string `json:"preview"`
				} `json:"featuredAsset"`
			} `json:"items"`
		} `json:"collections"`
	}
	if err := c.run(ctx, req, &resp); err != nil {
		return nil, fmt.Errorf("collections: %w", err)
	}
	out := make([]domain.Collection, 0, len(resp.Collections.Items))
	for _, it := range resp.Collections.Items {
		col := domain.Collection{ID: it.ID, Name: it.Name, Slug: it.Slug}
		if it.FeaturedAsset != nil {
			col.PreviewImage = it.FeaturedAsset.Preview
		}
		out = append(out, col)
	}
	return out, nil
}
