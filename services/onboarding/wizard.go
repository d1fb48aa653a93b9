// Package onboarding runs the six-step vendor registration wizard.
// Every step is validated client-side, saved server-side as an
// idempotent upsert keyed by vendorId, and rehydrated from the
// backend's saved data on (re)entry. Steps 2-6 are unreachable until
// step 1 has produced a vendorId.
package onboarding

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"tatya/models"
	"tatya/services/media"
	"tatya/store"
	"tatya/utils"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// Step numbers the wizard's ordered stages.
type Step int

const (
	StepEquipment Step = iota + 1
	StepDroneSpec
	StepCapacity
	StepLogistics
	StepAvailability
	StepPayout
)

func (s Step) String() string {
	switch s {
	case StepEquipment:
		return "Equipment Basics"
	case StepDroneSpec:
		return "Drone-Specific Details"
	case StepCapacity:
		return "Capacity & Coverage"
	case StepLogistics:
		return "Location & Logistics"
	case StepAvailability:
		return "Availability & SLA"
	case StepPayout:
		return "Payouts"
	}
	return "Unknown"
}

var (
	// ErrVendorRequired blocks steps 2-6 until sign-up assigned a vendorId.
	ErrVendorRequired = errors.New("vendor registration incomplete: complete the first step before continuing")
	// ErrSaveInFlight blocks resubmission while a save is outstanding.
	ErrSaveInFlight = errors.New("a save is already in progress")
)

// ValidationError reports the fields that failed the client-side
// required checks; no network call was made.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("please fill the required fields: %s", strings.Join(e.Fields, ", "))
}

// API is the slice of the gateway the wizard calls.
type API interface {
	RegisterVendor(ctx context.Context, reg models.VendorRegistration) (*models.VendorIdentity, error)
	VendorVerifyAndLogin(ctx context.Context, phone, code string) (*models.VendorIdentity, error)
	SaveEquipmentStep(ctx context.Context, step models.EquipmentStep) (*models.Drone, error)
	SaveDroneSpecStep(ctx context.Context, step models.DroneSpecStep) (*models.Drone, error)
	SaveCapacityStep(ctx context.Context, step models.CapacityStep) (*models.Drone, error)
	SaveLogisticsStep(ctx context.Context, step models.LogisticsStep) (*models.Drone, error)
	SaveAvailabilityStep(ctx context.Context, step models.AvailabilityStep) (*models.Drone, error)
	SavePayoutStep(ctx context.Context, step models.PayoutStep) (*models.BankAccount, error)
	OnboardingData(ctx context.Context, vendorID int64) (*models.OnboardingData, error)
}

// Wizard drives one vendor's onboarding.
type Wizard struct {
	api      API
	session  *store.Session
	validate *validator.Validate
	logger   *zap.Logger

	saveInFlight bool
	submitted    bool
}

func NewWizard(api API, session *store.Session) *Wizard {
	return &Wizard{
		api:      api,
		session:  session,
		validate: validator.New(),
		logger:   utils.GetLogger(),
	}
}

// Submitted reports whether step 6 completed and the vendor is under review.
func (w *Wizard) Submitted() bool { return w.submitted }

// SignUp creates the vendor account; the returned VendorID keys every
// subsequent step and is persisted for resume.
func (w *Wizard) SignUp(ctx context.Context, reg models.VendorRegistration) (*models.VendorIdentity, error) {
	if err := w.check(reg); err != nil {
		return nil, err
	}
	vendor, err := w.api.RegisterVendor(ctx, reg)
	if err != nil {
		return nil, err
	}
	return vendor, w.adopt(ctx, vendor)
}

// LoginWithOTP resumes onboarding for an existing vendor account once
// their phone has been verified.
func (w *Wizard) LoginWithOTP(ctx context.Context, phone, code string) (*models.VendorIdentity, error) {
	vendor, err := w.api.VendorVerifyAndLogin(ctx, phone, code)
	if err != nil {
		return nil, err
	}
	return vendor, w.adopt(ctx, vendor)
}

func (w *Wizard) adopt(ctx context.Context, vendor *models.VendorIdentity) error {
	if err := w.session.SetVendorID(ctx, vendor.VendorID); err != nil {
		return fmt.Errorf("failed to persist vendor id: %w", err)
	}
	return nil
}

// EnterStep gates entry and fetches the saved onboarding data so the
// step can pre-fill from server truth, not accumulated client state.
// Step 1 on a brand-new vendor has nothing to fetch yet.
func (w *Wizard) EnterStep(ctx context.Context, step Step) (*models.OnboardingData, error) {
	vendorID, ok := w.session.VendorID(ctx)
	if !ok {
		return nil, ErrVendorRequired
	}
	if step == StepEquipment {
		if data, err := w.api.OnboardingData(ctx, vendorID); err == nil {
			return data, nil
		}
		// First entry: no saved data is fine.
		return &models.OnboardingData{}, nil
	}
	return w.api.OnboardingData(ctx, vendorID)
}

// AttachMedia uploads step-1 images and documents and puts their
// delivery URLs on the payload. Upload failures leave the step intact
// so it can be saved without media or retried.
func (w *Wizard) AttachMedia(ctx context.Context, uploader media.Uploader, step *models.EquipmentStep, imagePaths, documentPaths []string) error {
	for _, path := range imagePaths {
		url, err := uploader.UploadFile(ctx, path, "vendor-equipment/images")
		if err != nil {
			return fmt.Errorf("failed to upload image: %w", err)
		}
		step.ImageURLs = append(step.ImageURLs, url)
	}
	for _, path := range documentPaths {
		url, err := uploader.UploadFile(ctx, path, "vendor-equipment/documents")
		if err != nil {
			return fmt.Errorf("failed to upload document: %w", err)
		}
		step.DocumentURLs = append(step.DocumentURLs, url)
	}
	return nil
}

// SaveEquipment is step 1. Success stores the drone id the backend
// assigned for this vendor.
func (w *Wizard) SaveEquipment(ctx context.Context, step models.EquipmentStep) (*models.Drone, error) {
	vendorID, ok := w.session.VendorID(ctx)
	if !ok {
		return nil, ErrVendorRequired
	}
	step.VendorID = vendorID
	if err := w.beginSave(step); err != nil {
		return nil, err
	}
	defer w.endSave()

	drone, err := w.api.SaveEquipmentStep(ctx, step)
	if err != nil {
		return nil, err
	}
	if err := w.session.SetOnboardingDroneID(ctx, drone.DroneID); err != nil {
		w.logger.Error("Failed to persist onboarding drone id", zap.Error(err))
	}
	w.logger.Info("Onboarding step saved", zap.Int64("vendorId", vendorID), zap.Stringer("step", StepEquipment))
	return drone, nil
}

func (w *Wizard) SaveDroneSpec(ctx context.Context, step models.DroneSpecStep) (*models.Drone, error) {
	vendorID, err := w.requireVendor(ctx)
	if err != nil {
		return nil, err
	}
	step.VendorID = vendorID
	if err := w.beginSave(step); err != nil {
		return nil, err
	}
	defer w.endSave()
	return w.saveLogged(vendorID, StepDroneSpec)(w.api.SaveDroneSpecStep(ctx, step))
}

func (w *Wizard) SaveCapacity(ctx context.Context, step models.CapacityStep) (*models.Drone, error) {
	vendorID, err := w.requireVendor(ctx)
	if err != nil {
		return nil, err
	}
	step.VendorID = vendorID
	if err := w.beginSave(step); err != nil {
		return nil, err
	}
	defer w.endSave()
	return w.saveLogged(vendorID, StepCapacity)(w.api.SaveCapacityStep(ctx, step))
}

func (w *Wizard) SaveLogistics(ctx context.Context, step models.LogisticsStep) (*models.Drone, error) {
	vendorID, err := w.requireVendor(ctx)
	if err != nil {
		return nil, err
	}
	step.VendorID = vendorID
	if err := w.beginSave(step); err != nil {
		return nil, err
	}
	defer w.endSave()
	return w.saveLogged(vendorID, StepLogistics)(w.api.SaveLogisticsStep(ctx, step))
}

func (w *Wizard) SaveAvailability(ctx context.Context, step models.AvailabilityStep) (*models.Drone, error) {
	vendorID, err := w.requireVendor(ctx)
	if err != nil {
		return nil, err
	}
	step.VendorID = vendorID
	if err := w.beginSave(step); err != nil {
		return nil, err
	}
	defer w.endSave()
	return w.saveLogged(vendorID, StepAvailability)(w.api.SaveAvailabilityStep(ctx, step))
}

// SavePayout is the terminal step: success submits the vendor for
// review and clears the persisted wizard progress.
func (w *Wizard) SavePayout(ctx context.Context, step models.PayoutStep) (*models.BankAccount, error) {
	vendorID, err := w.requireVendor(ctx)
	if err != nil {
		return nil, err
	}
	step.VendorID = vendorID
	if err := w.beginSave(step); err != nil {
		return nil, err
	}
	defer w.endSave()

	account, err := w.api.SavePayoutStep(ctx, step)
	if err != nil {
		return nil, err
	}
	w.submitted = true
	if err := w.session.ClearOnboarding(ctx); err != nil {
		w.logger.Error("Failed to clear onboarding progress", zap.Error(err))
	}
	w.logger.Info("Vendor submitted for review", zap.Int64("vendorId", vendorID))
	return account, nil
}

// requireVendor gates steps 2-6 on the persisted vendorId.
func (w *Wizard) requireVendor(ctx context.Context) (int64, error) {
	vendorID, ok := w.session.VendorID(ctx)
	if !ok {
		return 0, ErrVendorRequired
	}
	return vendorID, nil
}

// beginSave validates the payload and takes the single-flight save
// slot. Validation failures never reach the network; entered values
// stay with the caller for retry.
func (w *Wizard) beginSave(payload interface{}) error {
	if w.saveInFlight {
		return ErrSaveInFlight
	}
	if err := w.check(payload); err != nil {
		return err
	}
	w.saveInFlight = true
	return nil
}

func (w *Wizard) endSave() {
	w.saveInFlight = false
}

func (w *Wizard) check(payload interface{}) error {
	err := w.validate.Struct(payload)
	if err == nil {
		return nil
	}
	var invalid validator.ValidationErrors
	if errors.As(err, &invalid) {
		fields := make([]string, 0, len(invalid))
		for _, fe := range invalid {
			fields = append(fields, fe.Field())
		}
		return &ValidationError{Fields: fields}
	}
	return err
}

func (w *Wizard) saveLogged(vendorID int64, step Step) func(*models.Drone, error) (*models.Drone, error) {
	return func(drone *models.Drone, err error) (*models.Drone, error) {
		if err != nil {
			return nil, err
		}
		w.logger.Info("Onboarding step saved", zap.Int64("vendorId", vendorID), zap.Stringer("step", step))
		return drone, nil
	}
}
