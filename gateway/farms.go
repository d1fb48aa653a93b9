package gateway

import (
	"context"
	"fmt"
	"net/http"

	"tatya/models"
)

// The farm and cluster endpoints answer with bare entity JSON, not the
// envelope.

// AddFarm saves a field plot under the customer's account.
func (c *Client) AddFarm(ctx context.Context, userID int64, farm models.Farm) (*models.Farm, error) {
	var saved models.Farm
	path := fmt.Sprintf("/farms?userId=%d", userID)
	if err := c.doRaw(ctx, http.MethodPost, path, farm, &saved, "Failed to save farm"); err != nil {
		return nil, err
	}
	return &saved, nil
}

// FarmsByUser lists a customer's saved farms.
func (c *Client) FarmsByUser(ctx context.Context, userID int64) ([]models.Farm, error) {
	var farms []models.Farm
	path := fmt.Sprintf("/farms/user/%d", userID)
	if err := c.doRaw(ctx, http.MethodGet, path, nil, &farms, "Failed to fetch farms"); err != nil {
		return nil, err
	}
	return farms, nil
}

// Farms lists every saved farm.
func (c *Client) Farms(ctx context.Context) ([]models.Farm, error) {
	var farms []models.Farm
	if err := c.doRaw(ctx, http.MethodGet, "/farms", nil, &farms, "Failed to fetch farms"); err != nil {
		return nil, err
	}
	return farms, nil
}

// ActiveClusters lists the clusters open for nearby browsing.
func (c *Client) ActiveClusters(ctx context.Context) ([]models.Cluster, error) {
	var clusters []models.Cluster
	if err := c.doRaw(ctx, http.MethodGet, "/clusters/active", nil, &clusters, "Failed to fetch active clusters"); err != nil {
		return nil, err
	}
	return clusters, nil
}

// Clusters lists every cluster for the management view.
func (c *Client) Clusters(ctx context.Context) ([]models.Cluster, error) {
	var clusters []models.Cluster
	if err := c.doRaw(ctx, http.MethodGet, "/clusters", nil, &clusters, "Failed to fetch clusters"); err != nil {
		return nil, err
	}
	return clusters, nil
}

// GenerateClusters asks the backend to regroup saved farms into
// service clusters.
func (c *Client) GenerateClusters(ctx context.Context) ([]models.Cluster, error) {
	var clusters []models.Cluster
	if err := c.doRaw(ctx, http.MethodPost, "/clusters/generate", nil, &clusters, "Failed to generate clusters"); err != nil {
		return nil, err
	}
	return clusters, nil
}
