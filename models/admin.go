package models

// AdminDashboardStats aggregates the console's headline numbers.
type AdminDashboardStats struct {
	TotalOrders     int64   `json:"totalOrders"`
	ActiveVendors   int64   `json:"activeVendors"`
	TotalVendors    int64   `json:"totalVendors"`
	ActiveUsers     int64   `json:"activeUsers"`
	TotalUsers      int64   `json:"totalUsers"`
	FinanceToday    float64 `json:"financeToday"`
	TotalCollection float64 `json:"totalCollection"`
}

// AdminVendorRow is one row of the vendor management table.
type AdminVendorRow struct {
	VendorID      int64   `json:"vendorId"`
	Name          string  `json:"name"`
	Business      string  `json:"business,omitempty"`
	Email         string  `json:"email,omitempty"`
	Phone         string  `json:"phone,omitempty"`
	Status        string  `json:"status,omitempty"`
	Approval      string  `json:"approval,omitempty"`
	RatingAvg     float64 `json:"ratingAvg,omitempty"`
	TotalDrones   int64   `json:"totalDrones,omitempty"`
	TotalBookings int64   `json:"totalBookings,omitempty"`
}

// AdminUserRow is one row of the user management table.
type AdminUserRow struct {
	ID       int64  `json:"id"`
	Phone    string `json:"phone"`
	Location string `json:"location,omitempty"`
	Status   string `json:"status,omitempty"`
}
