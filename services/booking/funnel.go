// Package booking orchestrates the customer funnel: location and
// drone selection, date/quantity selection, booking creation, checkout
// and payment. Each stage reads and writes the progress store so a
// restarted client resumes where it left off; advancement is gated on
// the previous stage's backend response.
package booking

import (
	"context"

	"tatya/models"
	"tatya/services/payment"
	"tatya/store"
	"tatya/utils"

	"go.uber.org/zap"
)

// maxVisibleDates caps the availability list offered to the user.
const maxVisibleDates = 7

// Stage is the funnel's position.
type Stage int

const (
	StageSelecting  Stage = iota // picking location and drone
	StageScheduling              // picking unit, quantity, date
	StageBooked                  // booking created, bookingId assigned
	StagePaying                  // payment order open, widget active
	StagePaid                    // payment verified
)

func (s Stage) String() string {
	switch s {
	case StageSelecting:
		return "Selecting"
	case StageScheduling:
		return "Scheduling"
	case StageBooked:
		return "Booked"
	case StagePaying:
		return "Paying"
	case StagePaid:
		return "Paid"
	}
	return "Unknown"
}

// API is the slice of the gateway the funnel calls.
type API interface {
	AvailableDronesWithSpecifications(ctx context.Context) ([]models.Drone, error)
	DroneWithSpecifications(ctx context.Context, droneID int64) (*models.Drone, error)
	AvailableDates(ctx context.Context, droneID int64) ([]string, error)
	AvailableSlotsByDate(ctx context.Context, droneID int64, date string) ([]models.AvailableSlot, error)
	CreateBooking(ctx context.Context, draft models.BookingDraft) (*models.Booking, error)
	CreatePaymentOrder(ctx context.Context, bookingID int64, amount float64) (*models.PaymentOrder, error)
	VerifyPayment(ctx context.Context, orderID, paymentID, signature string) error
	PaymentKey(ctx context.Context) (string, error)
}

// Funnel drives one booking from selection to verified payment.
type Funnel struct {
	stage Stage

	location       *models.ConfirmedLocation
	drone          *models.Drone
	availableDates []string
	draft          models.BookingDraft
	intent         *models.PaymentIntent

	api     API
	session *store.Session
	logger  *zap.Logger

	payInFlight bool
}

func NewFunnel(api API, session *store.Session) *Funnel {
	return &Funnel{
		api:     api,
		session: session,
		logger:  utils.GetLogger(),
	}
}

func (f *Funnel) Stage() Stage                 { return f.stage }
func (f *Funnel) Draft() models.BookingDraft   { return f.draft }
func (f *Funnel) SelectedDrone() *models.Drone { return f.drone }

// AvailableDrones lists the bookable fleet for the selection screen.
func (f *Funnel) AvailableDrones(ctx context.Context) ([]models.Drone, error) {
	return f.api.AvailableDronesWithSpecifications(ctx)
}

// SetLocation records the confirmed service location and mirrors it
// into the store.
func (f *Funnel) SetLocation(ctx context.Context, loc models.ConfirmedLocation) error {
	f.location = &loc
	if err := f.session.SetConfirmedLocation(ctx, loc); err != nil {
		f.logger.Error("Failed to persist confirmed location", zap.Error(err))
	}
	return nil
}

// Location returns the in-memory location, falling back to the store
// after a restart. Returns nil when neither has one.
func (f *Funnel) Location(ctx context.Context) *models.ConfirmedLocation {
	if f.location != nil {
		return f.location
	}
	if loc, ok := f.session.ConfirmedLocation(ctx); ok {
		f.location = loc
	}
	return f.location
}

// SelectDrone fetches the drone with its specifications and records
// the selection.
func (f *Funnel) SelectDrone(ctx context.Context, droneID int64) (*models.Drone, error) {
	drone, err := f.api.DroneWithSpecifications(ctx, droneID)
	if err != nil {
		return nil, err
	}
	f.drone = drone
	if err := f.session.SetSelectedDroneID(ctx, droneID); err != nil {
		f.logger.Error("Failed to persist drone selection", zap.Error(err))
	}
	return drone, nil
}

// LoadAvailableDates fetches the drone's open dates, capped to the
// first entries the backend returned.
func (f *Funnel) LoadAvailableDates(ctx context.Context) ([]string, error) {
	if f.drone == nil {
		return nil, errNoDrone
	}
	dates, err := f.api.AvailableDates(ctx, f.drone.DroneID)
	if err != nil {
		return nil, err
	}
	if len(dates) > maxVisibleDates {
		dates = dates[:maxVisibleDates]
	}
	f.availableDates = dates
	return dates, nil
}

// SlotsForDate lists the open time windows of the selected drone on
// one of its available dates.
func (f *Funnel) SlotsForDate(ctx context.Context, date string) ([]models.AvailableSlot, error) {
	if f.drone == nil {
		return nil, errNoDrone
	}
	return f.api.AvailableSlotsByDate(ctx, f.drone.DroneID, date)
}

// SetSchedule fixes unit, quantity and date, derives the price, and
// mirrors the draft into the store. Both a location and a drone must
// already be selected; a missing one blocks with an inline error.
func (f *Funnel) SetSchedule(ctx context.Context, date string, quantity int, unit models.Unit, farmAreaAcres float64) error {
	loc := f.Location(ctx)
	if loc == nil {
		return errNoLocation
	}
	if f.drone == nil {
		return errNoDrone
	}
	if !unit.Valid() {
		return errBadUnit
	}
	if quantity < 1 {
		return errBadQuantity
	}
	if !f.dateIsAvailable(date) {
		return errDateNotOpen
	}

	pricePerUnit := UnitPrice(f.drone, unit)
	f.draft = models.BookingDraft{
		DroneID:       f.drone.DroneID,
		ServiceDate:   date,
		LocationLat:   loc.Coordinates.Lat,
		LocationLong:  loc.Coordinates.Lng,
		FarmAreaAcres: farmAreaAcres,
		Quantity:      quantity,
		Unit:          unit,
		PricePerUnit:  pricePerUnit,
		TotalCost:     TotalCost(quantity, pricePerUnit),
	}
	if spec := pickSpecification(f.drone); spec != nil {
		f.draft.SpecID = spec.SpecID
	}
	if customerID, ok := f.session.CustomerID(ctx); ok {
		f.draft.CustomerID = customerID
	}

	f.stage = StageScheduling
	if err := f.session.SetBookingDraft(ctx, f.draft); err != nil {
		f.logger.Error("Failed to persist booking draft", zap.Error(err))
	}
	return nil
}

// ConfirmBooking sends the draft to the backend. The derived total is
// recomputed first so a drifted draft can never be submitted. Success
// assigns the bookingId that gates checkout.
func (f *Funnel) ConfirmBooking(ctx context.Context) (*models.Booking, error) {
	if f.stage != StageScheduling {
		if _, ok := f.resumeDraft(ctx); !ok {
			return nil, errDateNotOpen
		}
	}
	// A draft that already carries a bookingId was created; submitting
	// it again would duplicate the booking.
	if f.draft.BookingID != 0 {
		return nil, errAlreadyBooked
	}
	if f.draft.TotalCost != TotalCost(f.draft.Quantity, f.draft.PricePerUnit) {
		f.draft.TotalCost = TotalCost(f.draft.Quantity, f.draft.PricePerUnit)
	}

	booking, err := f.api.CreateBooking(ctx, f.draft)
	if err != nil {
		return nil, err
	}

	f.draft.BookingID = booking.BookingID
	f.stage = StageBooked
	if err := f.session.SetBookingDraft(ctx, f.draft); err != nil {
		f.logger.Error("Failed to persist created booking", zap.Error(err))
	}
	f.logger.Info("Booking created", zap.Int64("bookingId", booking.BookingID))
	return booking, nil
}

// EnterCheckout computes the payable summary. Reaching checkout
// without a created booking (direct navigation, stale store) blocks
// payment; the caller returns the user to the booking step.
func (f *Funnel) EnterCheckout(ctx context.Context) (*models.CheckoutSummary, error) {
	if f.draft.BookingID == 0 {
		if draft, ok := f.resumeDraft(ctx); !ok || draft.BookingID == 0 {
			return nil, errNoBookingID
		}
	}
	summary := Checkout(f.draft.TotalCost)
	return &summary, nil
}

// Pay opens a payment order for the payable amount and hands it to
// the checkout widget. Only a verified success marks the booking
// paid; failure or dismissal returns to checkout with the bookingId
// intact and no automatic retry.
func (f *Funnel) Pay(ctx context.Context, collector payment.Collector) (*models.PaymentIntent, error) {
	if f.payInFlight {
		return nil, newFlowError("paymentInFlight", "A payment attempt is already in progress.")
	}
	if f.stage == StagePaid {
		return nil, errAlreadyPaid
	}
	summary, err := f.EnterCheckout(ctx)
	if err != nil {
		return nil, err
	}

	f.payInFlight = true
	defer func() { f.payInFlight = false }()

	keyID, err := f.api.PaymentKey(ctx)
	if err != nil {
		return nil, err
	}
	order, err := f.api.CreatePaymentOrder(ctx, f.draft.BookingID, summary.TotalPayable)
	if err != nil {
		return nil, err
	}

	f.stage = StagePaying
	f.intent = &models.PaymentIntent{
		BookingID: f.draft.BookingID,
		OrderID:   order.OrderID,
		Amount:    order.Amount,
	}

	result := collector.Collect(order.OrderID, toMinorUnits(summary.TotalPayable), keyID)
	switch result.Outcome {
	case payment.OutcomeSuccess:
		if err := f.api.VerifyPayment(ctx, order.OrderID, result.PaymentID, result.Signature); err != nil {
			// Unverified success is still an unpaid booking.
			f.stage = StageBooked
			return f.intent, err
		}
		f.intent.PaymentID = result.PaymentID
		f.intent.Signature = result.Signature
		f.intent.Verified = true
		f.stage = StagePaid
		if err := f.session.ClearBookingFlow(ctx); err != nil {
			f.logger.Error("Failed to clear booking flow state", zap.Error(err))
		}
		f.logger.Info("Payment verified", zap.Int64("bookingId", f.intent.BookingID))
		return f.intent, nil

	case payment.OutcomeFailure:
		f.stage = StageBooked
		f.logger.Warn("Payment failed",
			zap.Int64("bookingId", f.intent.BookingID),
			zap.String("code", result.Code))
		return f.intent, newFlowError("paymentFailed", failureMessage(result))

	default: // dismissed
		f.stage = StageBooked
		return f.intent, nil
	}
}

// Reset abandons the in-memory flow and clears its persisted state.
func (f *Funnel) Reset(ctx context.Context) error {
	f.stage = StageSelecting
	f.location = nil
	f.drone = nil
	f.availableDates = nil
	f.draft = models.BookingDraft{}
	f.intent = nil
	return f.session.ClearBookingFlow(ctx)
}

// resumeDraft reloads a persisted draft after a restart.
func (f *Funnel) resumeDraft(ctx context.Context) (*models.BookingDraft, bool) {
	draft, ok := f.session.BookingDraft(ctx)
	if !ok {
		return nil, false
	}
	f.draft = *draft
	if draft.BookingID != 0 {
		f.stage = StageBooked
	} else {
		f.stage = StageScheduling
	}
	return draft, true
}

func (f *Funnel) dateIsAvailable(date string) bool {
	for _, d := range f.availableDates {
		if d == date {
			return true
		}
	}
	return false
}

// pickSpecification prefers the first available spray configuration.
func pickSpecification(drone *models.Drone) *models.DroneSpecification {
	if drone == nil || len(drone.Specifications) == 0 {
		return nil
	}
	for i := range drone.Specifications {
		if drone.Specifications[i].IsAvailable {
			return &drone.Specifications[i]
		}
	}
	return &drone.Specifications[0]
}

func toMinorUnits(amount float64) int64 {
	return int64(amount*100 + 0.5)
}

func failureMessage(r payment.Result) string {
	if r.Description != "" {
		return r.Description
	}
	return "Payment failed. Please try again."
}
