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

type CheckoutHandler struct {
	gw           usecase.CommerceGateway
	prepare      *usecase.PreparePayment
	apply        *usecase.ApplyPayment
	shipping     *usecase.ShippingStep
	confirmation *usecase.Confirmation
}

func NewCheckoutHandler(
	gw usecase.CommerceGateway,
	prepare *usecase.PreparePayment,
	apply *usecase.ApplyPayment,
	shipping *usecase.ShippingStep,
	confirmation *usecase.Confirmation,
) *CheckoutHandler {
	return &CheckoutHandler{
		gw:           gw,
		prepare:      prepare,
		apply:        apply,
		shipping:     shipping,
		confirmation: confirmation,
	}
}

type paymentMethodResp struct {
	ID                 string `json:"id"`
	Code               string `json:"code"`
	Name               string `json:"name"`
	Description        string `json:"description"`
	IsEligible         bool   `json:"isEligible"`
	EligibilityMessage string `json:"eligibilityMessage,omitempty"`
}

type paymentPageResp struct {
	EligiblePaymentMethods []paymentMethodResp `json:"eligiblePaymentMethods"`
	RazorpayOrderID        string              `json:"razorpayOrderId,omitempty"`
	RazorpayKeyID          string              `json:"razorpayKeyId,omitempty"`
	RazorpayError          string              `json:"razorpayError,omitempty"`
	BrainTreeKey           string              `json:"brainTreeKey,omitempty"`
	BrainTreeError         string              `json:"brainTreeError,omitempty"`
	Error                  string              `json:"error,omitempty"`
}

// PaymentPage handler: GET /checkout/payment
// A session without a usable order (no order, inactive, or empty) is sent
// back to the shop root instead of an error page.
func (h *CheckoutHandler) PaymentPage(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	order, err := h.gw.ActiveOrder(ctx)
	if err != nil {
		logging.From(c).Error("active order fetch failed", "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "commerce backend unavailable"})
		return
	}
	if order == nil || !order.Active || len(order.Lines) == 0 {
		c.Redirect(http.StatusFound, "/")
		return
	}

	out, err := h.prepare.Execute(ctx, order)
	if err != nil {
		logging.From(c).Error("payment preparation failed", "order_code", order.Code, "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "commerce backend unavailable"})
		return
	}

	resp := paymentPageResp{
		EligiblePaymentMethods: make([]paymentMethodResp, len(out.Methods)),
	}
	for i, m := range out.Methods {
		resp.EligiblePaymentMethods[i] = paymentMethodResp{
			ID:                 m.ID,
			Code:               m.Code,
			Name:               m.Name,
			Description:        m.Description,
			IsEligible:         m.IsEligible,
			EligibilityMessage: m.EligibilityMessage,
		}
	}
	if out.Razorpay != nil {
		resp.RazorpayOrderID = out.Razorpay.OrderID
		resp.RazorpayKeyID = out.Razorpay.KeyID
		resp.RazorpayError = out.Razorpay.Err
	}
	if out.Braintree != nil {
		resp.BrainTreeKey = out.Braintree.ClientToken
		resp.BrainTreeError = out.Braintree.Err
	}

	// An error carried over from a failed payment attempt (redirect back to
	// the payment page) surfaces when its code is one customers act on.
	if code := c.Query("errorCode"); code != "" {
		resp.Error = usecase.PaymentErrorMessage(&usecase.ErrorResult{
			Code:    code,
			Message: c.Query("errorMessage"),
		})
	}

	c.JSON(http.StatusOK, resp)
}

// ApplyPayment handler: POST /checkout/payment (form)
// Accepts: paymentMethodCode, paymentMetadata, paymentNonce
func (h *CheckoutHandler) ApplyPayment(c *gin.Context) {
	method := c.PostForm("paymentMethodCode")
	if method == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "paymentMethodCode is required"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	out, err := h.apply.Execute(ctx, usecase.ApplyPaymentInput{
		Method:   method,
		Metadata: c.PostForm("paymentMetadata"),
		Nonce:    c.PostForm("paymentNonce"),
	})
	if err != nil {
		var pf *usecase.PaymentFailure
		if errors.As(err, &pf) {
			c.JSON(http.StatusBadRequest, gin.H{"error": pf.Message})
			return
		}
		logging.From(c).Error("payment application failed", "method", method, "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "commerce backend unavailable"})
		return
	}

	c.Redirect(http.StatusFound, out.RedirectTo)
}

type shippingMethodResp struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	Price        int64  `json:"price"`
	PriceWithTax int64  `json:"priceWithTax"`
}

type countryResp struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Code string `json:"code"`
}

// ShippingPage handler: GET /checkout/shipping
func (h *CheckoutHandler) ShippingPage(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	page, err := h.shipping.Page(ctx)
	if err != nil {
		logging.From(c).Error("shipping page fetch failed", "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "commerce backend unavailable"})
		return
	}

	countries := make([]countryResp, len(page.AvailableCountries))
	for i, co := range page.AvailableCountries {
		countries[i] = countryResp{ID: co.ID, Name: co.Name, Code: co.Code}
	}
	methods := make([]shippingMethodResp, len(page.EligibleShippingMethods))
	for i, m := range page.EligibleShippingMethods {
		methods[i] = shippingMethodResp{
			ID:           m.ID,
			Name:         m.Name,
			Description:  m.Description,
			Price:        m.Price,
			PriceWithTax: m.PriceWithTax,
		}
	}

	resp := gin.H{
		"availableCountries":      countries,
		"eligibleShippingMethods": methods,
	}
	if page.Customer != nil {
		addrs := make([]gin.H, len(page.Customer.Addresses))
		for i, a := range page.Customer.Addresses {
			addrs[i] = gin.H{
				"fullName":    a.FullName,
				"streetLine1": a.StreetLine1,
				"streetLine2": a.StreetLine2,
				"city":        a.City,
				"province":    a.Province,
				"postalCode":  a.PostalCode,
				"countryCode": a.CountryCode,
				"phoneNumber": a.PhoneNumber,
			}
		}
		resp["activeCustomer"] = gin.H{
			"firstName": page.Customer.Customer.FirstName,
			"lastName":  page.Customer.Customer.LastName,
			"email":     page.Customer.Customer.EmailAddress,
			"addresses": addrs,
		}
	}
	c.JSON(http.StatusOK, resp)
}

// SetShipping handler: POST /checkout/shipping (form)
func (h *CheckoutHandler) SetShipping(c *gin.Context) {
	addr := domain.OrderAddress{
		FullName:    c.PostForm("fullName"),
		StreetLine1: c.PostForm("streetLine1"),
		StreetLine2: c.PostForm("streetLine2"),
		City:        c.PostForm("city"),
		Province:    c.PostForm("province"),
		PostalCode:  c.PostForm("postalCode"),
		CountryCode: c.PostForm("countryCode"),
		PhoneNumber: c.PostForm("phoneNumber"),
	}
	if addr.StreetLine1 == "" || addr.CountryCode == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "streetLine1 and countryCode are required"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	err := h.shipping.Set(ctx, usecase.SetShippingInput{
		Address:          addr,
		ShippingMethodID: c.PostForm("shippingMethodId"),
	})
	if err != nil {
		var pf *usecase.PaymentFailure
		if errors.As(err, &pf) {
			c.JSON(http.StatusBadRequest, gin.H{"error": pf.Message})
			return
		}
		logging.From(c).Error("set shipping failed", "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "commerce backend unavailable"})
		return
	}

	c.Redirect(http.StatusFound, "/checkout/payment")
}

// Confirmation handler: GET /checkout/confirmation/:code
func (h *CheckoutHandler) Confirmation(c *gin.Context) {
	code := c.Param("code")

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	page, err := h.confirmation.ByCode(ctx, code)
	if err != nil {
		if errors.Is(err, usecase.ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not_found"})
			return
		}
		logging.From(c).Error("confirmation fetch failed", "order_code", code, "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "commerce backend unavailable"})
		return
	}

	order := page.Order
	resp := gin.H{
		"code":         order.Code,
		"state":        string(order.State),
		"currencyCode": order.CurrencyCode,
		"totalWithTax": order.TotalWithTax,
	}
	if page.CachedState != "" {
		resp["settledState"] = page.CachedState
	}
	if order.Customer != nil {
		resp["customer"] = gin.H{
			"firstName": order.Customer.FirstName,
			"lastName":  order.Customer.LastName,
			"email":     order.Customer.EmailAddress,
		}
	}
	lines := make([]gin.H, len(order.Lines))
	for i, l := range order.Lines {
		lines[i] = gin.H{
			"id":               l.ID,
			"quantity":         l.Quantity,
			"linePriceWithTax": l.LinePriceWithTax,
			"productName":      l.ProductName,
		}
	}
	resp["lines"] = lines

	c.JSON(http.StatusOK, resp)
}
