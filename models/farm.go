package models

// Farm is one of a customer's saved field plots, reusable across
// bookings instead of re-picking the location each time.
type Farm struct {
	FarmID      int64   `json:"id,omitempty"`
	Name        string  `json:"name" validate:"required"`
	Latitude    float64 `json:"latitude" validate:"required"`
	Longitude   float64 `json:"longitude" validate:"required"`
	AreaAcres   float64 `json:"areaAcres,omitempty"`
	MapImageURL string  `json:"mapImageUrl,omitempty"`
	CreatedAt   string  `json:"createdAt,omitempty"`
	UpdatedAt   string  `json:"updatedAt,omitempty"`
}

// Cluster groups nearby farms into one vendor service window so a
// single deployment covers several plots.
type Cluster struct {
	ClusterID       int64   `json:"id"`
	Name            string  `json:"name"`
	Vendor          *Vendor `json:"vendor,omitempty"`
	StartDate       string  `json:"startDate,omitempty"`
	EndDate         string  `json:"endDate,omitempty"`
	Status          string  `json:"status"`
	Priority        int     `json:"priority,omitempty"`
	CenterLatitude  float64 `json:"centerLatitude,omitempty"`
	CenterLongitude float64 `json:"centerLongitude,omitempty"`
	Farms           []Farm  `json:"farms,omitempty"`
}

// Cluster statuses as the backend reports them.
const (
	ClusterPending   = "PENDING"
	ClusterActive    = "ACTIVE"
	ClusterCompleted = "COMPLETED"
	ClusterCancelled = "CANCELLED"
)
