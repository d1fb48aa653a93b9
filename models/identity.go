package models

// VendorRegistration is the sign-up payload of the vendor entry flow.
type VendorRegistration struct {
	FullName    string `json:"fullName" validate:"required"`
	Email       string `json:"email,omitempty" validate:"omitempty,email"`
	PhoneNumber string `json:"phoneNumber" validate:"required,len=10,numeric"`
	VendorType  string `json:"vendorType" validate:"required"`
}

// VendorIdentity is the backend's view of a vendor account, returned
// by register and verify-and-login.
type VendorIdentity struct {
	VendorID       int64  `json:"vendorId"`
	UserID         int64  `json:"userId"`
	FullName       string `json:"fullName"`
	Email          string `json:"email,omitempty"`
	Phone          string `json:"phone"`
	VendorType     string `json:"vendorType,omitempty"`
	VerifiedStatus string `json:"verifiedStatus,omitempty"`
	UserStatus     string `json:"userStatus,omitempty"`
}
