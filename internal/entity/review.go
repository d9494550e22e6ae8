package domain

import (
	"errors"
	"time"
)

var ErrInvalidReview = errors.New("invalid review")

// Review is a storefront-local product review. Reviews never live in the
// commerce backend; they are keyed by product slug.
type Review struct {
	ID          string
	ProductSlug string
	Title       string
	Rating      float64 // 1..5, may be fractional
	Content     string
	Author      string
	CreatedAt   time.Time
}

func (r *Review) Validate() error {
	if r.ProductSlug == "" || r.Title == "" || r.Author == "" {
		return ErrInvalidReview
	}
	if r.Rating < 1 || r.Rating > 5 {
		return ErrInvalidReview
	}
	return nil
}
