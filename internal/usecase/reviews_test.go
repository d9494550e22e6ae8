package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/rakshalokam/storefront-api/internal/entity"
)

type memReviewRepo struct {
	reviews []domain.Review
}

func (m *memReviewRepo) ListByProductSlug(ctx context.Context, slug string) ([]domain.Review, error) {
	var out []domain.Review
	for _, r := range m.reviews {
		if r.ProductSlug == slug {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *memReviewRepo) GetByID(ctx context.Context, id string) (*domain.Review, error) {
	for _, r := range m.reviews {
		if r.ID == id {
			return &r, nil
		}
	}
	return nil, nil
}

func (m *memReviewRepo) Add(ctx context.Context, r *domain.Review) error {
	m.reviews = append(m.reviews, *r)
	return nil
}

func TestSummarizeRatings(t *testing.T) {
	reviews := []domain.Review{
		{Rating: 5},
		{Rating: 5},
		{Rating: 4.4}, // rounds to 4
		{Rating: 3.5}, // rounds to 4
		{Rating: 1},
	}

	avg, bands := SummarizeRatings(reviews)
	assert.InDelta(t, 3.78, avg, 0.001)

	require.Len(t, bands, 5)
	assert.Equal(t, RatingBand{Stars: 5, Count: 2, Percentage: 40}, bands[0])
	assert.Equal(t, RatingBand{Stars: 4, Count: 2, Percentage: 40}, bands[1])
	assert.Equal(t, RatingBand{Stars: 3, Count: 0, Percentage: 0}, bands[2])
	assert.Equal(t, RatingBand{Stars: 2, Count: 0, Percentage: 0}, bands[3])
	assert.Equal(t, RatingBand{Stars: 1, Count: 1, Percentage: 20}, bands[4])
}

func TestSummarizeRatings_Empty(t *testing.T) {
	avg, bands := SummarizeRatings(nil)
	assert.Zero(t, avg)
	require.Len(t, bands, 5)
	for _, b := range bands {
		assert.Zero(t, b.Count)
		assert.Zero(t, b.Percentage)
	}
}

func TestReviews_AddAndFetch(t *testing.T) {
	repo := &memReviewRepo{}
	uc := NewReviews(repo)

	r, err := uc.Add(context.Background(), AddReviewInput{
		ProductSlug: "steel-bottle",
		Title:       "Sturdy",
		Rating:      5,
		Content:     "Survived a trek.",
		Author:      "Asha",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, r.ID)
	assert.False(t, r.CreatedAt.IsZero())

	page, err := uc.ForProduct(context.Background(), "steel-bottle")
	require.NoError(t, err)
	require.Len(t, page.Reviews, 1)
	assert.Equal(t, float64(5), page.AverageRating)
	assert.Equal(t, 1, page.Breakdown[0].Count)
}

func TestReviews_AddRejectsInvalid(t *testing.T) {
	uc := NewReviews(&memReviewRepo{})

	_, err := uc.Add(context.Background(), AddReviewInput{
		ProductSlug: "steel-bottle",
		Title:       "Bad rating",
		Rating:      6,
		Author:      "Asha",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidReview)

	_, err = uc.Add(context.Background(), AddReviewInput{
		ProductSlug: "",
		Title:       "No slug",
		Rating:      4,
		Author:      "Asha",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidReview)
}
