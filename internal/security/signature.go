package security

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"

	"github.com/razorpay/razorpay-go/utils"
)

var ErrInvalidSignature = errors.New("invalid signature")

// SignatureVerifier checks Razorpay HMAC signatures: the webhook body
// signature and the per-payment signature posted by the checkout widget.
type SignatureVerifier interface {
	VerifyWebhook(body []byte, signature string) error
	VerifyPayment(razorpayOrderID, razorpayPaymentID, signature string) error
}

type razorpaySignatures struct {
	keySecret     string
	webhookSecret string
}

func NewRazorpaySignatures(keySecret, webhookSecret string) SignatureVerifier {
	return &razorpaySignatures{keySecret: keySecret, webhookSecret: webhookSecret}
}

func (s *razorpaySignatures) VerifyWebhook(body []byte, signature string) error {
	if s.webhookSecret == "" {
		return errors.New("webhook secret not configured")
	}
	if !utils.VerifyWebhookSignature(string(body), signature, s.webhookSecret) {
		return ErrInvalidSignature
	}
	return nil
}

// VerifyPayment checks HMAC-SHA256(order_id + "|" + payment_id, key secret)
// against the signature returned by the checkout widget.
func (s *razorpaySignatures) VerifyPayment(razorpayOrderID, razorpayPaymentID, signature string) error {
	if s.keySecret == "" {
		return errors.New("key secret not configured")
	}
	mac := hmac.New(sha256.New, []byte(s.keySecret))
	mac.Write([]byte(razorpayOrderID + "|" + razorpayPaymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	if !hmac.Equal([]byte(expected), []byte(signature)) {
		return ErrInvalidSignature
	}
	return nil
}
