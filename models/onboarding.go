package models

// Onboarding step payloads. Field sets mirror the backend's step
// endpoints; each step is an idempotent upsert keyed by VendorID.
// Validation tags are enforced client-side before any network call.

// EquipmentStep is step 1: equipment basics. The save response
// assigns the vendor's drone record and returns its id.
type EquipmentStep struct {
	VendorID      int64    `json:"vendorId" validate:"required"`
	EquipmentType string   `json:"equipmentType" validate:"required"`
	Brand         string   `json:"brand" validate:"required"`
	ModelName     string   `json:"modelName" validate:"required"`
	YearOfMake    int      `json:"yearOfMake" validate:"required,gte=1990"`
	SerialNo      string   `json:"serialNo,omitempty"`
	ImageURLs     []string `json:"imageUrls,omitempty"`
	DocumentURLs  []string `json:"documentUrls,omitempty"`
}

// DroneSpecStep is step 2: drone-specific technical details.
type DroneSpecStep struct {
	VendorID          int64   `json:"vendorId" validate:"required"`
	DroneName         string  `json:"droneName" validate:"required"`
	DroneType         string  `json:"droneType" validate:"required"`
	TankSize          float64 `json:"tankSize" validate:"required,gt=0"`
	SprayWidth        float64 `json:"sprayWidth" validate:"required,gt=0"`
	BatteryCapacity   int     `json:"batteryCapacity" validate:"required,gt=0"`
	NumberOfBatteries int     `json:"numberOfBatteries" validate:"required,gte=1"`
	FlightTime        int     `json:"flightTime" validate:"required,gt=0"`
	BatterySwapTime   int     `json:"batterySwapTime" validate:"gte=0"`
	UIN               string  `json:"uin,omitempty"`
	UAOP              string  `json:"uaop,omitempty"`
	PilotLicense      string  `json:"pilotLicense,omitempty"`
	ReturnToHome      bool    `json:"returnToHome"`
	TerrainFollowing  bool    `json:"terrainFollowing"`
}

// CapacityStep is step 3: capacity and coverage.
type CapacityStep struct {
	VendorID          int64    `json:"vendorId" validate:"required"`
	MaxAcresPerDay    int      `json:"maxAcresPerDay" validate:"required,gte=1"`
	MinBookingAcres   int      `json:"minBookingAcres" validate:"required,gte=1"`
	ServiceRadius     float64  `json:"serviceRadius" validate:"required,gt=0"`
	OperationalMonths []string `json:"operationalMonths" validate:"required,min=1"`
	OperationalDays   []string `json:"operationalDays" validate:"required,min=1"`
	LeadTime          int      `json:"leadTime" validate:"gte=0"`
}

// LogisticsStep is step 4: base location and logistics.
type LogisticsStep struct {
	VendorID               int64  `json:"vendorId" validate:"required"`
	BaseLocation           string `json:"baseLocation" validate:"required"`
	Coordinates            string `json:"coordinates,omitempty"`
	ServiceAreas           string `json:"serviceAreas" validate:"required"`
	HasChargingFacility    bool   `json:"hasChargingFacility"`
	NumberOfSpareBatteries int    `json:"numberOfSpareBatteries" validate:"gte=0"`
	DroneWarehouse         string `json:"droneWarehouse,omitempty"`
}

// AvailabilityStep is step 5: availability window and SLA.
type AvailabilityStep struct {
	VendorID           int64    `json:"vendorId" validate:"required"`
	StartDate          string   `json:"startDate" validate:"required"`
	EndDate            string   `json:"endDate" validate:"required"`
	SLAReachTime       int      `json:"slaReachTime" validate:"required,gte=1"`
	TimeBatches        []string `json:"timeBatches" validate:"required,min=1"`
	AvailabilityStatus string   `json:"availabilityStatus" validate:"required"`
}

// PayoutStep is step 6: bank account details. Terminal step; success
// submits the vendor for review.
type PayoutStep struct {
	VendorID          int64  `json:"vendorId" validate:"required"`
	AccountHolderName string `json:"accountHolderName" validate:"required"`
	AccountNumber     string `json:"accountNumber" validate:"required,numeric,min=9,max=18"`
	BankIFSCCode      string `json:"bankIfscCode" validate:"required,len=11"`
	BankName          string `json:"bankName" validate:"required"`
	UPIID             string `json:"upiId,omitempty"`
}

// BankAccount is the payout record the backend returns for step 6 and
// re-entry pre-fill.
type BankAccount struct {
	AccountHolderName string `json:"accountHolderName"`
	AccountNumber     string `json:"accountNumber"`
	BankIFSCCode      string `json:"bankIfscCode"`
	BankName          string `json:"bankName"`
	UPIID             string `json:"upiId,omitempty"`
}

// OnboardingData is everything the backend has saved for a vendor so
// far, used to pre-fill steps on (re)entry.
type OnboardingData struct {
	Drone       *Drone       `json:"drone,omitempty"`
	BankAccount *BankAccount `json:"bankAccount,omitempty"`
}
