package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	domain "github.com/rakshalokam/storefront-api/internal/entity"
	"github.com/rakshalokam/storefront-api/internal/logging"
	"github.com/rakshalokam/storefront-api/internal/usecase"
)

type StorefrontHandler struct {
	showcase *usecase.Showcase
	reviews  *usecase.Reviews
	query    usecase.ReviewRepo
}

func NewStorefrontHandler(showcase *usecase.Showcase, reviews *usecase.Reviews, query usecase.ReviewRepo) *StorefrontHandler {
	return &StorefrontHandler{showcase: showcase, reviews: reviews, query: query}
}

// Home handler: GET /home
func (h *StorefrontHandler) Home(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	page, err := h.showcase.Execute(ctx)
	if err != nil {
		logging.From(c).Error("homepage fetch failed", "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "commerce backend unavailable"})
		return
	}

	collections := make([]gin.H, len(page.Collections))
	for i, col := range page.Collections {
		collections[i] = gin.H{
			"id":           col.ID,
			"name":         col.Name,
			"slug":         col.Slug,
			"previewImage": col.PreviewImage,
		}
	}
	c.JSON(http.StatusOK, gin.H{
		"collections": collections,
		"products":    page.Products,
	})
}

// ProductReviews handler: GET /products/:slug/reviews
func (h *StorefrontHandler) ProductReviews(c *gin.Context) {
	slug := c.Param("slug")

	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	page, err := h.reviews.ForProduct(ctx, slug)
	if err != nil {
		logging.From(c).Error("reviews fetch failed", "slug", slug, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server_error"})
		return
	}
	c.JSON(http.StatusOK, page)
}

type addReviewReq struct {
	ProductSlug string  `json:"productSlug" binding:"required"`
	Title       string  `json:"title" binding:"required"`
	Rating      float64 `json:"rating" binding:"required"`
	Content     string  `json:"content"`
	Author      string  `json:"author" binding:"required"`
}

// AddReview handler: POST /v1/reviews (ops-only, JWT guarded)
func (h *StorefrontHandler) AddReview(c *gin.Context) {
	var req addReviewReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	review, err := h.reviews.Add(ctx, usecase.AddReviewInput{
		ProductSlug: req.ProductSlug,
		Title:       req.Title,
		Rating:      req.Rating,
		Content:     req.Content,
		Author:      req.Author,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidReview) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logging.From(c).Error("review insert failed", "slug", req.ProductSlug, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server_error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": review.ID})
}

// GetReview handler: GET /v1/reviews/:id (ops-only, JWT guarded)
func (h *StorefrontHandler) GetReview(c *gin.Context) {
	id := c.Param("id")

	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	rev, err := h.query.GetByID(ctx, id)
	if err != nil || rev == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not_found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"id":          rev.ID,
		"productSlug": rev.ProductSlug,
		"title":       rev.Title,
		"rating":      rev.Rating,
		"content":     rev.Content,
		"author":      rev.Author,
		"createdAt":   rev.CreatedAt,
	})
}
