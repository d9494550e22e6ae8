package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/rakshalokam/storefront-api/internal/entity"
)

func TestSynthesizeProduct(t *testing.T) {
	col := domain.Collection{ID: "c1", Name: "Bottles", Slug: "bottles", PreviewImage: "img.jpg"}

	p := SynthesizeProduct(col, 0)
	assert.Equal(t, "c1", p.ID)
	assert.Equal(t, "bottles", p.Slug)
	assert.Equal(t, int64(499), p.Price)
	// 25% off at index 0: 499 / 0.75 rounded
	assert.Equal(t, int64(665), p.OldPrice)
	assert.Equal(t, "Up to 40% off", p.DiscountLabel)
	assert.True(t, p.SharkFav)
	assert.True(t, p.NewArrival)
	assert.Equal(t, float64(4), p.Rating)
	assert.Equal(t, 32, p.Reviews)

	p = SynthesizeProduct(col, 1)
	assert.Equal(t, int64(599), p.Price)
	assert.Equal(t, "30% off", p.DiscountLabel)
	assert.False(t, p.SharkFav)
	assert.False(t, p.NewArrival)
	assert.Equal(t, float64(5), p.Rating)
	assert.Equal(t, 53, p.Reviews)
}

type memCollectionCache struct {
	cols []domain.Collection
	set  int
}

func (m *memCollectionCache) GetCollections(ctx context.Context) ([]domain.Collection, bool, error) {
	return m.cols, m.cols != nil, nil
}

func (m *memCollectionCache) SetCollections(ctx context.Context, cols []domain.Collection) error {
	m.cols = cols
	m.set++
	return nil
}

func TestShowcase_FillsCacheOnMiss(t *testing.T) {
	backendCols := []domain.Collection{{ID: "1", Name: "A", Slug: "a"}, {ID: "2", Name: "B", Slug: "b"}}
	calls := 0
	gw := &fakeGateway{
		collections: func(ctx context.Context, take int) ([]domain.Collection, error) {
			calls++
			assert.Equal(t, 20, take)
			return backendCols, nil
		},
	}
	cache := &memCollectionCache{}

	uc := NewShowcase(gw, cache)
	page, err := uc.Execute(context.Background())
	require.NoError(t, err)
	require.Len(t, page.Products, 2)
	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, cache.set)

	// second read served from cache
	_, err = uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}
