package gateway

import (
	"context"
	"fmt"
	"net/http"

	"tatya/models"
)

// AvailableDates lists the service dates a drone can be booked on,
// as YYYY-MM-DD strings in backend order.
func (c *Client) AvailableDates(ctx context.Context, droneID int64) ([]string, error) {
	var dates []string
	path := fmt.Sprintf("/availability/drone/%d/dates", droneID)
	if err := c.do(ctx, http.MethodGet, path, nil, &dates, "Failed to fetch available dates"); err != nil {
		return nil, err
	}
	return dates, nil
}

// AvailableSlotsByDate lists the open time windows of a drone on date.
func (c *Client) AvailableSlotsByDate(ctx context.Context, droneID int64, date string) ([]models.AvailableSlot, error) {
	var slots []models.AvailableSlot
	path := fmt.Sprintf("/availability/drone/%d/date/%s/slots", droneID, date)
	if err := c.do(ctx, http.MethodGet, path, nil, &slots, "Failed to fetch available slots"); err != nil {
		return nil, err
	}
	return slots, nil
}
