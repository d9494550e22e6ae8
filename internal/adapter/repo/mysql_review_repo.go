package repo

import (
	"context"
	"database/sql"
	"errors"

	domain "github.com/rakshalokam/storefront-api/internal/entity"
	"github.com/rakshalokam/storefront-api/internal/usecase"
)

type MySQLReviewRepo struct{ db *sql.DB }

func NewMySQLReviewRepo(db *sql.DB) *MySQLReviewRepo { return &MySQLReviewRepo{db: db} }

func (r *MySQLReviewRepo) Add(ctx context.Context, rev *domain.Review) error {
	_, err := r.db.ExecContext(ctx, `
INSERT INTO product_reviews (id,product_slug,title,rating,content,author,created_at)
VALUES (?,?,?,?,?,?,?)
`, rev.ID, rev.ProductSlug, rev.Title, rev.Rating, rev.Content, rev.Author, rev.CreatedAt)
	return err
}

func (r *MySQLReviewRepo) ListByProductSlug(ctx context.Context, slug string) ([]domain.Review, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id,product_slug,title,rating,content,author,created_at
FROM product_reviews WHERE product_slug=? ORDER BY created_at DESC`, slug)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Review
	for rows.Next() {
		var rev domain.Review
		if err := rows.Scan(&rev.ID, &rev.ProductSlug, &rev.Title, &rev.Rating, &rev.Content, &rev.Author, &rev.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, rev)
	}
	return out, rows.Err()
}

func (r *MySQLReviewRepo) GetByID(ctx context.Context, id string) (*domain.Review, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT id,product_slug,title,rating,content,author,created_at
FROM product_reviews WHERE id=?`, id)
	var rev domain.Review
	if err := row.Scan(&rev.ID, &rev.ProductSlug, &rev.Title, &rev.Rating, &rev.Content, &rev.Author, &rev.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &rev, nil
}

var _ usecase.ReviewRepo = (*MySQLReviewRepo)(nil)
