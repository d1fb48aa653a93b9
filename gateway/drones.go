package gateway

import (
	"context"
	"fmt"
	"net/http"

	"tatya/models"
)

// AvailableDronesWithSpecifications lists every bookable drone with
// its spray configurations and vendor attached.
func (c *Client) AvailableDronesWithSpecifications(ctx context.Context) ([]models.Drone, error) {
	var drones []models.Drone
	err := c.do(ctx, http.MethodGet, "/drones/available/with-specifications",
		nil, &drones, "Failed to fetch available drones")
	if err != nil {
		return nil, err
	}
	return drones, nil
}

// DroneWithSpecifications fetches a single drone with specifications.
func (c *Client) DroneWithSpecifications(ctx context.Context, droneID int64) (*models.Drone, error) {
	var drone models.Drone
	path := fmt.Sprintf("/drones/%d/with-specifications", droneID)
	if err := c.do(ctx, http.MethodGet, path, nil, &drone, "Failed to fetch drone"); err != nil {
		return nil, err
	}
	return &drone, nil
}

// DronesByVendor lists a vendor's drones.
func (c *Client) DronesByVendor(ctx context.Context, vendorID int64) ([]models.Drone, error) {
	var drones []models.Drone
	path := fmt.Sprintf("/drones/vendor/%d", vendorID)
	if err := c.do(ctx, http.MethodGet, path, nil, &drones, "Failed to fetch vendor drones"); err != nil {
		return nil, err
	}
	return drones, nil
}
