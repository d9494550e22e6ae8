package usecase

import (
	"context"

	domain "github.com/rakshalokam/storefront-api/internal/entity"
	"golang.org/x/sync/errgroup"
)

type ShippingPage struct {
	AvailableCountries      []domain.Country
	EligibleShippingMethods []domain.ShippingMethod
	Customer                *CustomerDetail
}

type SetShippingInput struct {
	Address          domain.OrderAddress
	ShippingMethodID string
}

// ShippingStep serves the first checkout page: the address form inputs and
// the shipping method list, then applies the customer's choice.
type ShippingStep struct {
	gw CommerceGateway
}

func NewShippingStep(gw CommerceGateway) *ShippingStep {
	return &ShippingStep{gw: gw}
}

// Page fetches the three independent reads concurrently.
func (uc *ShippingStep) Page(ctx context.Context) (ShippingPage, error) {
	var page ShippingPage
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		countries, err := uc.gw.AvailableCountries(gctx)
		page.AvailableCountries = countries
		return err
	})
	g.Go(func() error {
		methods, err := uc.gw.EligibleShippingMethods(gctx)
		page.EligibleShippingMethods = methods
		return err
	})
	g.Go(func() error {
		customer, err := uc.gw.ActiveCustomer(gctx)
		page.Customer = customer
		return err
	})
	if err := g.Wait(); err != nil {
		return ShippingPage{}, err
	}
	return page, nil
}

// Set applies the shipping address, then the shipping method when one was
// chosen. Backend error results surface as PaymentFailure so the handler
// can return the message to the form.
func (uc *ShippingStep) Set(ctx context.Context, in SetShippingInput) error {
	res, err := uc.gw.SetOrderShippingAddress(ctx, in.Address)
	if err != nil {
		return err
	}
	if res.Order == nil {
		msg := "Unable to set shipping address"
		if res.Err != nil && res.Err.Message != "" {
			msg = res.Err.Message
		}
		return &PaymentFailure{Message: msg}
	}

	if in.ShippingMethodID == "" {
		return nil
	}
	res, err = uc.gw.SetOrderShippingMethod(ctx, in.ShippingMethodID)
	if err != nil {
		return err
	}
	if res.Order == nil {
		msg := "Unable to set shipping method"
		if res.Err != nil && res.Err.Message != "" {
			msg = res.Err.Message
		}
		return &PaymentFailure{Message: msg}
	}
	return nil
}
