package gateway

import (
	"context"
	"fmt"
	"net/http"

	"tatya/models"
)

// Onboarding step saves. Each is an idempotent upsert keyed by the
// vendorId inside the payload; resubmitting a step overwrites that
// step's values only. Steps 1-5 answer with the vendor's drone record,
// step 6 with the bank account.

func (c *Client) SaveEquipmentStep(ctx context.Context, step models.EquipmentStep) (*models.Drone, error) {
	return c.saveDroneStep(ctx, "/vendors/onboarding/step1", step, "Failed to save equipment details")
}

func (c *Client) SaveDroneSpecStep(ctx context.Context, step models.DroneSpecStep) (*models.Drone, error) {
	return c.saveDroneStep(ctx, "/vendors/onboarding/step2", step, "Failed to save drone details")
}

func (c *Client) SaveCapacityStep(ctx context.Context, step models.CapacityStep) (*models.Drone, error) {
	return c.saveDroneStep(ctx, "/vendors/onboarding/step3", step, "Failed to save capacity details")
}

func (c *Client) SaveLogisticsStep(ctx context.Context, step models.LogisticsStep) (*models.Drone, error) {
	return c.saveDroneStep(ctx, "/vendors/onboarding/step4", step, "Failed to save location details")
}

func (c *Client) SaveAvailabilityStep(ctx context.Context, step models.AvailabilityStep) (*models.Drone, error) {
	return c.saveDroneStep(ctx, "/vendors/onboarding/step5", step, "Failed to save availability details")
}

func (c *Client) SavePayoutStep(ctx context.Context, step models.PayoutStep) (*models.BankAccount, error) {
	var account models.BankAccount
	if err := c.do(ctx, http.MethodPost, "/vendors/onboarding/step6", step, &account, "Failed to save payout details"); err != nil {
		return nil, err
	}
	return &account, nil
}

func (c *Client) saveDroneStep(ctx context.Context, path string, step interface{}, fallbackMsg string) (*models.Drone, error) {
	var drone models.Drone
	if err := c.do(ctx, http.MethodPost, path, step, &drone, fallbackMsg); err != nil {
		return nil, err
	}
	return &drone, nil
}

// OnboardingData fetches everything saved for a vendor so far, used
// to pre-fill steps on (re)entry.
func (c *Client) OnboardingData(ctx context.Context, vendorID int64) (*models.OnboardingData, error) {
	var data models.OnboardingData
	path := fmt.Sprintf("/vendors/onboarding/%d/data", vendorID)
	if err := c.do(ctx, http.MethodGet, path, nil, &data, "Failed to fetch onboarding data"); err != nil {
		return nil, err
	}
	return &data, nil
}

// RegisterVendor creates a vendor account during sign-up; the
// returned VendorID keys every subsequent onboarding step.
func (c *Client) RegisterVendor(ctx context.Context, reg models.VendorRegistration) (*models.VendorIdentity, error) {
	var vendor models.VendorIdentity
	if err := c.do(ctx, http.MethodPost, "/vendors/register", reg, &vendor, "Failed to register vendor"); err != nil {
		return nil, err
	}
	return &vendor, nil
}

// VendorVerifyAndLogin exchanges a verified OTP for the vendor account
// tied to phone.
func (c *Client) VendorVerifyAndLogin(ctx context.Context, phone, code string) (*models.VendorIdentity, error) {
	body := map[string]string{"phoneNumber": phone, "otpCode": code}
	var vendor models.VendorIdentity
	if err := c.do(ctx, http.MethodPost, "/vendors/verify-and-login", body, &vendor, "Failed to verify OTP"); err != nil {
		return nil, err
	}
	return &vendor, nil
}

// Vendor fetches a vendor account by id.
func (c *Client) Vendor(ctx context.Context, vendorID int64) (*models.VendorIdentity, error) {
	var vendor models.VendorIdentity
	path := fmt.Sprintf("/vendors/%d", vendorID)
	if err := c.do(ctx, http.MethodGet, path, nil, &vendor, "Vendor not found"); err != nil {
		return nil, err
	}
	return &vendor, nil
}

// VendorProfile fetches the full vendor record, including KYC status
// and the operator's display identity.
func (c *Client) VendorProfile(ctx context.Context, vendorID int64) (*models.Vendor, error) {
	var vendor models.Vendor
	path := fmt.Sprintf("/vendors/%d/profile", vendorID)
	if err := c.do(ctx, http.MethodGet, path, nil, &vendor, "Vendor profile not found"); err != nil {
		return nil, err
	}
	return &vendor, nil
}

// VendorByPhone looks up an existing vendor account by phone number.
func (c *Client) VendorByPhone(ctx context.Context, phone string) (*models.VendorIdentity, error) {
	var vendor models.VendorIdentity
	path := fmt.Sprintf("/vendors/phone/%s", phone)
	if err := c.do(ctx, http.MethodGet, path, nil, &vendor, "Vendor not found"); err != nil {
		return nil, err
	}
	return &vendor, nil
}
