package gateway

import (
	"context"
	"fmt"
	"net/http"

	"tatya/models"
)

// CreateBooking persists the assembled draft and returns the backend
// record. The returned BookingID gates the checkout stage.
func (c *Client) CreateBooking(ctx context.Context, draft models.BookingDraft) (*models.Booking, error) {
	var booking models.Booking
	if err := c.do(ctx, http.MethodPost, "/bookings", draft, &booking, "Failed to create booking"); err != nil {
		return nil, err
	}
	return &booking, nil
}

// UpdateBooking overwrites an existing booking with the given draft.
func (c *Client) UpdateBooking(ctx context.Context, bookingID int64, draft models.BookingDraft) (*models.Booking, error) {
	var booking models.Booking
	path := fmt.Sprintf("/bookings/%d", bookingID)
	if err := c.do(ctx, http.MethodPut, path, draft, &booking, "Failed to update booking"); err != nil {
		return nil, err
	}
	return &booking, nil
}

// BookingsByCustomer lists a customer's bookings.
func (c *Client) BookingsByCustomer(ctx context.Context, customerID int64) ([]models.Booking, error) {
	var bookings []models.Booking
	path := fmt.Sprintf("/bookings/customer/%d", customerID)
	if err := c.do(ctx, http.MethodGet, path, nil, &bookings, "Failed to fetch bookings"); err != nil {
		return nil, err
	}
	return bookings, nil
}
