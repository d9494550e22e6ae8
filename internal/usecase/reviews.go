package usecase

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"
	domain "github.com/rakshalokam/storefront-api/internal/entity"
)

const maxStars = 5

// RatingBand is one row of the per-star breakdown (5 stars down to 1).
type RatingBand struct {
	Stars      int     `json:"stars"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

type ReviewPage struct {
	Reviews       []domain.Review `json:"reviews"`
	AverageRating float64         `json:"averageRating"`
	Breakdown     []RatingBand    `json:"breakdown"`
}

type AddReviewInput struct {
	ProductSlug string
	Title       string
	Rating      float64
	Content     string
	Author      string
}

type Reviews struct {
	repo ReviewRepo
}

func NewReviews(repo ReviewRepo) *Reviews {
	return &Reviews{repo: repo}
}

func (uc *Reviews) ForProduct(ctx context.Context, slug string) (ReviewPage, error) {
	reviews, err := uc.repo.ListByProductSlug(ctx, slug)
	if err != nil {
		return ReviewPage{}, err
	}
	avg, bands := SummarizeRatings(reviews)
	return ReviewPage{Reviews: reviews, AverageRating: avg, Breakdown: bands}, nil
}

func (uc *Reviews) Add(ctx context.Context, in AddReviewInput) (*domain.Review, error) {
	r := &domain.Review{
		ID:          uuid.NewString(),
		ProductSlug: in.ProductSlug,
		Title:       in.Title,
		Rating:      in.Rating,
		Content:     in.Content,
		Author:      in.Author,
		CreatedAt:   time.Now().UTC(),
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	if err := uc.repo.Add(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

// SummarizeRatings computes the average rating and the 5..1 star
// breakdown: each review counts toward the band its rating rounds to.
func SummarizeRatings(reviews []domain.Review) (float64, []RatingBand) {
	var sum float64
	for _, r := range reviews {
		sum += r.Rating
	}
	avg := 0.0
	if len(reviews) > 0 {
		avg = sum / float64(len(reviews))
	}

	bands := make([]RatingBand, maxStars)
	for i := range bands {
		stars := maxStars - i
		count := 0
		for _, r := range reviews {
			if int(math.Round(r.Rating)) == stars {
				count++
			}
		}
		pct := 0.0
		if len(reviews) > 0 {
			pct = float64(count) / float64(len(reviews)) * 100
		}
		bands[i] = RatingBand{Stars: stars, Count: count, Percentage: pct}
	}
	return avg, bands
}
