package models

// Drone is a vendor's machine as the backend exposes it, including the
// onboarding-supplied technical and logistics fields.
type Drone struct {
	DroneID    int64   `json:"droneId"`
	Vendor     *Vendor `json:"vendor,omitempty"`
	DroneModel string  `json:"droneModel,omitempty"`
	DroneName  string  `json:"droneName,omitempty"`
	DroneType  string  `json:"droneType,omitempty"`

	// Equipment basics (onboarding step 1).
	EquipmentType string `json:"equipmentType,omitempty"`
	Brand         string `json:"brand,omitempty"`
	ModelName     string `json:"modelName,omitempty"`
	YearOfMake    int    `json:"yearOfMake,omitempty"`
	SerialNo      string `json:"serialNo,omitempty"`

	// Technical details (step 2).
	TankSizeLiters         float64 `json:"tankSizeLiters,omitempty"`
	SprayWidthMeters       float64 `json:"sprayWidthMeters,omitempty"`
	BatteryCapacityMah     int     `json:"batteryCapacityMah,omitempty"`
	BatteryCount           int     `json:"batteryCount,omitempty"`
	FlightTimeMinutes      int     `json:"flightTimeMinutes,omitempty"`
	BatterySwapTimeMinutes int     `json:"batterySwapTimeMinutes,omitempty"`
	UIN                    string  `json:"uin,omitempty"`
	UAOP                   string  `json:"uaop,omitempty"`
	PilotLicense           string  `json:"pilotLicense,omitempty"`
	ReturnToHome           bool    `json:"returnToHome,omitempty"`
	TerrainFollowing       bool    `json:"terrainFollowing,omitempty"`

	// Capacity and coverage (step 3).
	MaxAcresPerDay    int     `json:"maxAcresPerDay,omitempty"`
	MinBookingAcres   int     `json:"minBookingAcres,omitempty"`
	ServiceRadiusKm   float64 `json:"serviceRadiusKm,omitempty"`
	OperationalMonths string  `json:"operationalMonths,omitempty"`
	OperationalDays   string  `json:"operationalDays,omitempty"`
	LeadTimeDays      int     `json:"leadTimeDays,omitempty"`

	// Location and logistics (step 4).
	BaseLocation           string `json:"baseLocation,omitempty"`
	Coordinates            string `json:"coordinates,omitempty"`
	ServiceAreas           string `json:"serviceAreas,omitempty"`
	HasChargingFacility    bool   `json:"hasChargingFacility,omitempty"`
	NumberOfSpareBatteries int    `json:"numberOfSpareBatteries,omitempty"`
	DroneWarehouse         string `json:"droneWarehouse,omitempty"`

	// Availability and SLA (step 5).
	SLAReachTimeHours  int    `json:"slaReachTimeHours,omitempty"`
	TimeBatches        string `json:"timeBatches,omitempty"`
	AvailabilityStatus string `json:"availabilityStatus,omitempty"`

	Status       string  `json:"status,omitempty"`
	PricePerHour float64 `json:"pricePerHour,omitempty"`
	PricePerAcre float64 `json:"pricePerAcre,omitempty"`
	Notes        string  `json:"notes,omitempty"`

	Specifications []DroneSpecification `json:"specifications,omitempty"`
}

// DroneSpecification is one selectable spray configuration of a drone.
type DroneSpecification struct {
	SpecID      int64   `json:"specId"`
	OptionSet   int     `json:"optionSet,omitempty"`
	TankSize    float64 `json:"tankSize,omitempty"`
	SprayWidth  float64 `json:"sprayWidth,omitempty"`
	IsAvailable bool    `json:"isAvailable,omitempty"`
}

// Vendor is the backend's vendor record, trimmed to what the client reads.
type Vendor struct {
	VendorID  int64       `json:"vendorId"`
	User      *VendorUser `json:"user,omitempty"`
	KYCStatus string      `json:"kycStatus,omitempty"`
}

// VendorUser carries the display identity of a vendor's operator.
type VendorUser struct {
	FullName    string `json:"fullName,omitempty"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
}

// AvailableSlot is one bookable time window on a service date.
type AvailableSlot struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}
