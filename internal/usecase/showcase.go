package usecase

import (
	"context"
	"fmt"
	"math"

	domain "github.com/rakshalokam/storefront-api/internal/entity"
	"github.com/rakshalokam/storefront-api/internal/logging"
)

const showcaseCollectionTake = 20

// ShowcaseProduct is a homepage card synthesized from a collection: the
// catalog owns no marketing attributes, so price points, badges and rating
// figures are derived deterministically from the collection's position.
type ShowcaseProduct struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Slug          string  `json:"slug"`
	Image         string  `json:"image,omitempty"`
	DiscountLabel string  `json:"discountLabel"`
	SharkFav      bool    `json:"sharkFav"`
	NewArrival    bool    `json:"newArrival"`
	Rating        float64 `json:"rating"`
	Reviews       int     `json:"reviews"`
	Price         int64   `json:"price"`
	OldPrice      int64   `json:"oldPrice"`
}

type HomePage struct {
	Collections []domain.Collection `json:"collections"`
	Products    []ShowcaseProduct   `json:"products"`
}

// Showcase builds the homepage: the collection list (cached) and the
// synthesized product cards.
type Showcase struct {
	gw    CommerceGateway
	cache CollectionCache // optional
}

func NewShowcase(gw CommerceGateway, cache CollectionCache) *Showcase {
	return &Showcase{gw: gw, cache: cache}
}

func (uc *Showcase) Execute(ctx context.Context) (HomePage, error) {
	cols, err := uc.collections(ctx)
	if err != nil {
		return HomePage{}, err
	}
	products := make([]ShowcaseProduct, len(cols))
	for i, c := range cols {
		products[i] = SynthesizeProduct(c, i)
	}
	return HomePage{Collections: cols, Products: products}, nil
}

func (uc *Showcase) collections(ctx context.Context) ([]domain.Collection, error) {
	if uc.cache != nil {
		if cols, ok, err := uc.cache.GetCollections(ctx); err == nil && ok {
			return cols, nil
		}
	}
	cols, err := uc.gw.Collections(ctx, showcaseCollectionTake)
	if err != nil {
		return nil, err
	}
	if uc.cache != nil {
		if err := uc.cache.SetCollections(ctx, cols); err != nil {
			logging.FromCtx(ctx).Warn("collections cache write failed", "error", err)
		}
	}
	return cols, nil
}

// SynthesizeProduct derives a showcase card from a collection and its
// index in the listing.
func SynthesizeProduct(c domain.Collection, index int) ShowcaseProduct {
	price := int64(499 + (index%5)*100)
	discount := int64(25 + (index%7)*5)
	oldPrice := int64(math.Round(float64(price*100) / float64(100-discount)))

	label := fmt.Sprintf("%d%% off", discount)
	if index%4 == 0 {
		label = "Up to 40% off"
	}

	return ShowcaseProduct{
		ID:            c.ID,
		Name:          c.Name,
		Slug:          c.Slug,
		Image:         c.PreviewImage,
		DiscountLabel: label,
		SharkFav:      index%3 == 0,
		NewArrival:    index%5 == 0,
		Rating:        float64(4 + index%2),
		Reviews:       32 + index*21,
		Price:         price,
		OldPrice:      oldPrice,
	}
}
