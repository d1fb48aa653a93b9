package gateway

import (
	"context"
	"net/http"

	"tatya/models"
)

// The payment endpoints answer with bare JSON objects rather than the
// usual envelope, matching the provider integration on the backend.

// CreatePaymentOrder opens a provider order for the payable amount of
// a created booking.
func (c *Client) CreatePaymentOrder(ctx context.Context, bookingID int64, amount float64) (*models.PaymentOrder, error) {
	body := map[string]interface{}{
		"bookingId": bookingID,
		"amount":    amount,
	}
	var order models.PaymentOrder
	if err := c.doRaw(ctx, http.MethodPost, "/payment/create-order", body, &order, "Failed to create payment order"); err != nil {
		return nil, err
	}
	return &order, nil
}

// VerifyPayment submits the widget-issued identifiers for server-side
// signature verification. Only a verified payment marks the booking
// paid.
func (c *Client) VerifyPayment(ctx context.Context, orderID, paymentID, signature string) error {
	body := map[string]string{
		"razorpay_order_id":   orderID,
		"razorpay_payment_id": paymentID,
		"razorpay_signature":  signature,
	}
	var result struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	if err := c.doRaw(ctx, http.MethodPost, "/payment/verify", body, &result, "Payment verification failed"); err != nil {
		return err
	}
	if !result.Success {
		msg := result.Message
		if msg == "" {
			msg = "Payment verification failed"
		}
		return &APIError{Message: msg}
	}
	return nil
}

// PaymentKey fetches the provider's publishable key for the checkout
// widget.
func (c *Client) PaymentKey(ctx context.Context) (string, error) {
	var result struct {
		KeyID string `json:"keyId"`
	}
	if err := c.doRaw(ctx, http.MethodGet, "/payment/key", nil, &result, "Payment key not configured"); err != nil {
		return "", err
	}
	return result.KeyID, nil
}
