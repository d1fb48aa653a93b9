package models

// Unit is the billing unit of a booking.
type Unit string

const (
	UnitAcre Unit = "Acre"
	UnitHour Unit = "Hour"
	UnitDay  Unit = "Day"
)

// Valid reports whether u is one of the three billing units.
func (u Unit) Valid() bool {
	return u == UnitAcre || u == UnitHour || u == UnitDay
}

// BookingDraft is the client-held booking being assembled by the
// funnel. BookingID stays zero until the create call succeeds.
type BookingDraft struct {
	CustomerID    int64   `json:"customerId,omitempty"`
	DroneID       int64   `json:"droneId"`
	SpecID        int64   `json:"specificationId,omitempty"`
	ServiceDate   string  `json:"serviceDate"`
	StartTime     string  `json:"startTime,omitempty"`
	EndTime       string  `json:"endTime,omitempty"`
	LocationLat   float64 `json:"locationLat"`
	LocationLong  float64 `json:"locationLong"`
	FarmAreaAcres float64 `json:"farmAreaAcres,omitempty"`
	Quantity      int     `json:"quantity"`
	Unit          Unit    `json:"unit"`
	PricePerUnit  float64 `json:"pricePerUnit"`
	TotalCost     float64 `json:"totalCost"`

	BookingID int64 `json:"bookingId,omitempty"`
}

// Booking is the backend's persisted booking record.
type Booking struct {
	BookingID   int64   `json:"bookingId"`
	ServiceDate string  `json:"serviceDate"`
	StartTime   string  `json:"startTime,omitempty"`
	EndTime     string  `json:"endTime,omitempty"`
	Status      string  `json:"status,omitempty"`
	TotalCost   float64 `json:"totalCost"`
	Drone       *Drone  `json:"drone,omitempty"`
}

// CheckoutSummary is the payable breakdown shown before payment.
// Delivery and travel fees are always waived; the struck-through
// originals are kept for display.
type CheckoutSummary struct {
	ItemTotal         float64 `json:"itemTotal"`
	DeliveryFee       float64 `json:"deliveryFee"`
	DeliveryFeeWaived bool    `json:"deliveryFeeWaived"`
	TravelCost        float64 `json:"travelCost"`
	TravelCostWaived  bool    `json:"travelCostWaived"`
	GSTRate           float64 `json:"gstRate"`
	GSTAmount         float64 `json:"gstAmount"`
	TotalPayable      float64 `json:"totalPayable"`
}
