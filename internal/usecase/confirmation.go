package usecase

import (
	"context"
	"errors"

	domain "github.com/rakshalokam/storefront-api/internal/entity"
)

var ErrOrderNotFound = errors.New("order not found")

type ConfirmationPage struct {
	Order *domain.Order
	// CachedState is the last state observed via backend events, which may
	// be fresher than the order snapshot (e.g. settlement after redirect).
	CachedState string
}

type Confirmation struct {
	gw    CommerceGateway
	cache OrderStateCache // optional
}

func NewConfirmation(gw CommerceGateway, cache OrderStateCache) *Confirmation {
	return &Confirmation{gw: gw, cache: cache}
}

func (uc *Confirmation) ByCode(ctx context.Context, code string) (ConfirmationPage, error) {
	order, err := uc.gw.OrderByCode(ctx, code)
	if err != nil {
		return ConfirmationPage{}, err
	}
	if order == nil {
		return ConfirmationPage{}, ErrOrderNotFound
	}
	page := ConfirmationPage{Order: order}
	if uc.cache != nil {
		if state, ok, err := uc.cache.GetOrderState(ctx, code); err == nil && ok {
			page.CachedState = state
		}
	}
	return page, nil
}
