package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	domain "github.com/rakshalokam/storefront-api/internal/entity"
	"github.com/rakshalokam/storefront-api/internal/logging"
	"github.com/rakshalokam/storefront-api/internal/security"
	"github.com/rakshalokam/storefront-api/internal/usecase"
)

const webhookBodyLimit = 64 * 1024

type WebhookHandler struct {
	verifier security.SignatureVerifier
	dedup    usecase.EventDedup
	cache    usecase.OrderStateCache
}

func NewWebhookHandler(verifier security.SignatureVerifier, dedup usecase.EventDedup, cache usecase.OrderStateCache) *WebhookHandler {
	return &WebhookHandler{verifier: verifier, dedup: dedup, cache: cache}
}

// razorpayEvent is the subset of the webhook envelope we consume.
type razorpayEvent struct {
	Event   string `json:"event"`
	Payload struct {
		Payment struct {
			Entity struct {
				ID      string `json:"id"`
				OrderID string `json:"order_id"`
				Notes   struct {
					OrderCode string `json:"orderCode"`
				} `json:"notes"`
			} `json:"entity"`
		} `json:"payment"`
	} `json:"payload"`
}

// Razorpay handler: POST /webhooks/razorpay
// Verifies the body signature, drops redeliveries, and records the order
// state implied by the event. Always 200 on events we don't consume, so
// the gateway stops retrying them.
func (h *WebhookHandler) Razorpay(c *gin.Context) {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, webhookBodyLimit))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request"})
		return
	}

	sig := c.GetHeader("X-Razorpay-Signature")
	if err := h.verifier.VerifyWebhook(body, sig); err != nil {
		logging.From(c).Warn("webhook signature rejected", "error", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid signature"})
		return
	}

	var ev razorpayEvent
	if err := json.Unmarshal(body, &ev); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request"})
		return
	}

	var state domain.OrderState
	switch ev.Event {
	case "payment.captured":
		state = domain.StatePaymentSettled
	case "payment.authorized":
		state = domain.StatePaymentAuthorized
	default:
		c.JSON(http.StatusOK, gin.H{"status": "ignored"})
		return
	}

	orderCode := ev.Payload.Payment.Entity.Notes.OrderCode
	if orderCode == "" {
		logging.From(c).Warn("webhook event without orderCode note", "event", ev.Event, "payment_id", ev.Payload.Payment.Entity.ID)
		c.JSON(http.StatusOK, gin.H{"status": "ignored"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	// Razorpay redelivers until it sees a 2xx; the event id makes the
	// cache write happen once.
	eventID := c.GetHeader("X-Razorpay-Event-Id")
	if eventID != "" && h.dedup != nil {
		fresh, err := h.dedup.TryLock(ctx, "razorpay-webhook", eventID)
		if err != nil {
			logging.From(c).Warn("webhook dedup check failed", "event_id", eventID, "error", err)
		} else if !fresh {
			c.JSON(http.StatusOK, gin.H{"status": "duplicate"})
			return
		}
	}

	if err := h.cache.SetOrderState(ctx, orderCode, string(state)); err != nil {
		logging.From(c).Error("order state cache write failed", "order_code", orderCode, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server_error"})
		return
	}

	logging.From(c).Info("webhook processed", "event", ev.Event, "order_code", orderCode, "state", string(state))
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
