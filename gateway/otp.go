package gateway

import (
	"context"
	"net/http"
)

type otpRequest struct {
	PhoneNumber string `json:"phoneNumber"`
	OTPCode     string `json:"otpCode,omitempty"`
}

// GenerateOTP asks the backend to issue a one-time code for phone.
func (c *Client) GenerateOTP(ctx context.Context, phone string) error {
	return c.do(ctx, http.MethodPost, "/otp/generate",
		otpRequest{PhoneNumber: phone}, nil, "Failed to generate OTP")
}

// VerifyOTP checks the entered code against the issued one. A
// mismatch or expired code surfaces as *APIError.
func (c *Client) VerifyOTP(ctx context.Context, phone, code string) error {
	return c.do(ctx, http.MethodPost, "/otp/verify",
		otpRequest{PhoneNumber: phone, OTPCode: code}, nil, "Failed to verify OTP")
}
