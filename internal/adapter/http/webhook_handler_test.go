package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rakshalokam/storefront-api/internal/security"
)

type stubVerifier struct {
	reject bool
}

func (v *stubVerifier) VerifyWebhook(body []byte, signature string) error {
	if v.reject {
		return security.ErrInvalidSignature
	}
	return nil
}

func (v *stubVerifier) VerifyPayment(orderID, paymentID, signature string) error { return nil }

type stubDedup struct {
	seen map[string]bool
}

func (d *stubDedup) TryLock(ctx context.Context, scope, key string) (bool, error) {
	k := scope + ":" + key
	if d.seen[k] {
		return false, nil
	}
	if d.seen == nil {
		d.seen = map[string]bool{}
	}
	d.seen[k] = true
	return true, nil
}

type stubStateCache struct {
	states map[string]string
}

func (c *stubStateCache) SetOrderState(ctx context.Context, code, state string) error {
	if c.states == nil {
		c.states = map[string]string{}
	}
	c.states[code] = state
	return nil
}

func (c *stubStateCache) GetOrderState(ctx context.Context, code string) (string, bool, error) {
	s, ok := c.states[code]
	return s, ok, nil
}

const capturedEvent = `{
	"event": "payment.captured",
	"payload": {"payment": {"entity": {"id": "pay_1", "order_id": "order_rzp1", "notes": {"orderCode": "ABCDEF"}}}}
}`

func newWebhookRouter(v security.SignatureVerifier, d *stubDedup, c *stubStateCache) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/webhooks/razorpay", NewWebhookHandler(v, d, c).Razorpay)
	return r
}

func postWebhook(r *gin.Engine, body, eventID string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/webhooks/razorpay", strings.NewReader(body))
	req.Header.Set("X-Razorpay-Signature", "sig")
	if eventID != "" {
		req.Header.Set("X-Razorpay-Event-Id", eventID)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestWebhook_CapturedSetsSettledState(t *testing.T) {
	cache := &stubStateCache{}
	r := newWebhookRouter(&stubVerifier{}, &stubDedup{}, cache)

	w := postWebhook(r, capturedEvent, "evt_1")
	require.Equal(t, http.StatusOK, w.Code)

	state, ok, err := cache.GetOrderState(context.Background(), "ABCDEF")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "PaymentSettled", state)
}

func TestWebhook_AuthorizedSetsAuthorizedState(t *testing.T) {
	cache := &stubStateCache{}
	r := newWebhookRouter(&stubVerifier{}, &stubDedup{}, cache)

	body := strings.Replace(capturedEvent, "payment.captured", "payment.authorized", 1)
	w := postWebhook(r, body, "evt_2")
	require.Equal(t, http.StatusOK, w.Code)

	state, _, _ := cache.GetOrderState(context.Background(), "ABCDEF")
	assert.Equal(t, "PaymentAuthorized", state)
}

func TestWebhook_RejectsBadSignature(t *testing.T) {
	cache := &stubStateCache{}
	r := newWebhookRouter(&stubVerifier{reject: true}, &stubDedup{}, cache)

	w := postWebhook(r, capturedEvent, "evt_3")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, cache.states)
}

func TestWebhook_DuplicateDeliveryIsDropped(t *testing.T) {
	cache := &stubStateCache{}
	dedup := &stubDedup{}
	r := newWebhookRouter(&stubVerifier{}, dedup, cache)

	w := postWebhook(r, capturedEvent, "evt_4")
	require.Equal(t, http.StatusOK, w.Code)

	// overwrite so a second write would be visible
	cache.states["ABCDEF"] = "marker"

	w = postWebhook(r, capturedEvent, "evt_4")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "marker", cache.states["ABCDEF"])
	assert.Contains(t, w.Body.String(), "duplicate")
}

func TestWebhook_IgnoresUnknownEvents(t *testing.T) {
	cache := &stubStateCache{}
	r := newWebhookRouter(&stubVerifier{}, &stubDedup{}, cache)

	body := strings.Replace(capturedEvent, "payment.captured", "refund.processed", 1)
	w := postWebhook(r, body, "evt_5")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ignored")
	assert.Empty(t, cache.states)
}
