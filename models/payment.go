package models

// PaymentOrder is the provider order the backend creates for a booking.
type PaymentOrder struct {
	OrderID string  `json:"orderId"`
	Amount  float64 `json:"amount"`
}

// PaymentIntent tracks one checkout attempt against a booking.
// PaymentID and Signature arrive from the checkout widget callback;
// verification must succeed before the booking counts as paid.
type PaymentIntent struct {
	BookingID int64   `json:"bookingId"`
	OrderID   string  `json:"orderId"`
	Amount    float64 `json:"amount"`
	PaymentID string  `json:"paymentId,omitempty"`
	Signature string  `json:"signature,omitempty"`
	Verified  bool    `json:"verified"`
}
