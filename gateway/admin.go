package gateway

import (
	"context"
	"fmt"
	"net/http"

	"tatya/models"
)

// Thin admin console client. List/approve/stat calls only; the
// console screens themselves live elsewhere.

func (c *Client) AdminDashboardStats(ctx context.Context) (*models.AdminDashboardStats, error) {
	var stats models.AdminDashboardStats
	if err := c.do(ctx, http.MethodGet, "/admin/dashboard/stats", nil, &stats, "Failed to fetch dashboard stats"); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (c *Client) AdminVendors(ctx context.Context) ([]models.AdminVendorRow, error) {
	var vendors []models.AdminVendorRow
	if err := c.do(ctx, http.MethodGet, "/admin/vendors", nil, &vendors, "Failed to fetch vendors"); err != nil {
		return nil, err
	}
	return vendors, nil
}

func (c *Client) AdminPendingVendors(ctx context.Context) ([]models.AdminVendorRow, error) {
	var vendors []models.AdminVendorRow
	if err := c.do(ctx, http.MethodGet, "/admin/vendors/pending", nil, &vendors, "Failed to fetch pending vendors"); err != nil {
		return nil, err
	}
	return vendors, nil
}

// AdminApproveRejectVendor resolves a pending vendor review. action
// is VERIFIED or REJECTED.
func (c *Client) AdminApproveRejectVendor(ctx context.Context, vendorID int64, action string) error {
	body := map[string]interface{}{
		"vendorId": vendorID,
		"action":   action,
	}
	return c.do(ctx, http.MethodPost, "/admin/vendors/approve-reject", body, nil, "Failed to update vendor status")
}

func (c *Client) AdminUsers(ctx context.Context) ([]models.AdminUserRow, error) {
	var users []models.AdminUserRow
	if err := c.do(ctx, http.MethodGet, "/admin/users", nil, &users, "Failed to fetch users"); err != nil {
		return nil, err
	}
	return users, nil
}

// AdminFinanceStats returns the revenue/booking counters for the
// finance view.
func (c *Client) AdminFinanceStats(ctx context.Context) (*models.AdminDashboardStats, error) {
	var stats models.AdminDashboardStats
	if err := c.do(ctx, http.MethodGet, "/admin/finance/stats", nil, &stats, "Failed to fetch finance stats"); err != nil {
		return nil, err
	}
	return &stats, nil
}

// AdminExportVendorsExcel downloads the vendors-and-drones workbook.
func (c *Client) AdminExportVendorsExcel(ctx context.Context) ([]byte, error) {
	return c.download(ctx, "/admin/vendors/export/excel", "Failed to export vendors")
}

// AdminExportUsersExcel downloads the users workbook.
func (c *Client) AdminExportUsersExcel(ctx context.Context) ([]byte, error) {
	return c.download(ctx, "/admin/users/export/excel", "Failed to export users")
}

func (c *Client) AdminDeactivateVendor(ctx context.Context, vendorID int64) error {
	path := fmt.Sprintf("/admin/vendors/%d/deactivate", vendorID)
	return c.do(ctx, http.MethodPut, path, nil, nil, "Failed to deactivate vendor")
}

func (c *Client) AdminReactivateVendor(ctx context.Context, vendorID int64) error {
	path := fmt.Sprintf("/admin/vendors/%d/reactivate", vendorID)
	return c.do(ctx, http.MethodPut, path, nil, nil, "Failed to reactivate vendor")
}
