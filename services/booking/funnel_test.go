package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"tatya/models"
	"tatya/services/payment"
	"tatya/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAPI struct {
	drone        *models.Drone
	dates        []string
	slots        []models.AvailableSlot
	createErr    error
	verifyErr    error
	createdDraft *models.BookingDraft
	orderAmount  float64
	createCalls  int
	verifyCalls  int
}

func (f *fakeAPI) AvailableDronesWithSpecifications(ctx context.Context) ([]models.Drone, error) {
	return []models.Drone{*f.drone}, nil
}

func (f *fakeAPI) DroneWithSpecifications(ctx context.Context, droneID int64) (*models.Drone, error) {
	return f.drone, nil
}

func (f *fakeAPI) AvailableDates(ctx context.Context, droneID int64) ([]string, error) {
	return f.dates, nil
}

func (f *fakeAPI) AvailableSlotsByDate(ctx context.Context, droneID int64, date string) ([]models.AvailableSlot, error) {
	return f.slots, nil
}

func (f *fakeAPI) CreateBooking(ctx context.Context, draft models.BookingDraft) (*models.Booking, error) {
	f.createCalls++
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.createdDraft = &draft
	return &models.Booking{BookingID: 99, ServiceDate: draft.ServiceDate, TotalCost: draft.TotalCost}, nil
}

func (f *fakeAPI) CreatePaymentOrder(ctx context.Context, bookingID int64, amount float64) (*models.PaymentOrder, error) {
	f.orderAmount = amount
	return &models.PaymentOrder{OrderID: "order_test", Amount: amount}, nil
}

func (f *fakeAPI) VerifyPayment(ctx context.Context, orderID, paymentID, signature string) error {
	f.verifyCalls++
	return f.verifyErr
}

func (f *fakeAPI) PaymentKey(ctx context.Context) (string, error) {
	return "rzp_test_key", nil
}

type fakeCollector struct {
	result payment.Result
}

func (f *fakeCollector) Collect(orderID string, amountMinorUnits int64, keyID string) payment.Result {
	return f.result
}

func testDrone() *models.Drone {
	return &models.Drone{
		DroneID:      3,
		PricePerAcre: 0, // falls back to the default rate
		Specifications: []models.DroneSpecification{
			{SpecID: 11, IsAvailable: false},
			{SpecID: 12, IsAvailable: true},
		},
	}
}

func testLocation() models.ConfirmedLocation {
	return models.ConfirmedLocation{
		Coordinates: models.Coordinates{Lat: 19.0760, Lng: 72.8777},
		Address:     "Mumbai",
		Timestamp:   time.Now().UTC(),
	}
}

func newTestFunnel(api API) (*Funnel, *store.Session) {
	session := store.NewSession(store.NewMemoryStore())
	return NewFunnel(api, session), session
}

func scheduleBooking(t *testing.T, ctx context.Context, f *Funnel) {
	t.Helper()
	require.NoError(t, f.SetLocation(ctx, testLocation()))
	_, err := f.SelectDrone(ctx, 3)
	require.NoError(t, err)
	_, err = f.LoadAvailableDates(ctx)
	require.NoError(t, err)
	require.NoError(t, f.SetSchedule(ctx, "2026-09-01", 3, models.UnitAcre, 3))
}

func TestScheduleGatesOnLocationAndDrone(t *testing.T) {
	ctx := context.Background()
	api := &fakeAPI{drone: testDrone(), dates: []string{"2026-09-01"}}
	f, _ := newTestFunnel(api)

	err := f.SetSchedule(ctx, "2026-09-01", 3, models.UnitAcre, 3)
	assert.ErrorIs(t, err, errNoLocation)

	require.NoError(t, f.SetLocation(ctx, testLocation()))
	err = f.SetSchedule(ctx, "2026-09-01", 3, models.UnitAcre, 3)
	assert.ErrorIs(t, err, errNoDrone)
}

func TestScheduleValidatesInputs(t *testing.T) {
	ctx := context.Background()
	api := &fakeAPI{drone: testDrone(), dates: []string{"2026-09-01"}}
	f, _ := newTestFunnel(api)

	require.NoError(t, f.SetLocation(ctx, testLocation()))
	_, err := f.SelectDrone(ctx, 3)
	require.NoError(t, err)
	_, err = f.LoadAvailableDates(ctx)
	require.NoError(t, err)

	assert.ErrorIs(t, f.SetSchedule(ctx, "2026-09-01", 3, "Fortnight", 3), errBadUnit)
	assert.ErrorIs(t, f.SetSchedule(ctx, "2026-09-01", 0, models.UnitAcre, 3), errBadQuantity)
	assert.ErrorIs(t, f.SetSchedule(ctx, "2026-12-25", 3, models.UnitAcre, 3), errDateNotOpen)
}

func TestAvailableDatesCapped(t *testing.T) {
	ctx := context.Background()
	dates := []string{"d1", "d2", "d3", "d4", "d5", "d6", "d7", "d8", "d9"}
	api := &fakeAPI{drone: testDrone(), dates: dates}
	f, _ := newTestFunnel(api)

	_, err := f.SelectDrone(ctx, 3)
	require.NoError(t, err)
	visible, err := f.LoadAvailableDates(ctx)
	require.NoError(t, err)
	assert.Len(t, visible, maxVisibleDates)
	assert.Equal(t, dates[:maxVisibleDates], visible)
}

func TestConfirmBookingRecomputesTotal(t *testing.T) {
	ctx := context.Background()
	api := &fakeAPI{drone: testDrone(), dates: []string{"2026-09-01"}}
	f, session := newTestFunnel(api)

	scheduleBooking(t, ctx, f)

	// Simulate a drifted draft written by an older run.
	draft := f.Draft()
	draft.TotalCost = 1
	require.NoError(t, session.SetBookingDraft(ctx, draft))
	f.draft = draft

	booking, err := f.ConfirmBooking(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(99), booking.BookingID)
	require.NotNil(t, api.createdDraft)
	assert.Equal(t, 1200.0, api.createdDraft.TotalCost)
	assert.Equal(t, int64(12), api.createdDraft.SpecID)

	// The assigned booking id is persisted for resume.
	persisted, ok := session.BookingDraft(ctx)
	require.True(t, ok)
	assert.Equal(t, int64(99), persisted.BookingID)
	assert.Equal(t, StageBooked, f.Stage())
}

func TestConfirmBookingTwiceDoesNotDuplicate(t *testing.T) {
	ctx := context.Background()
	api := &fakeAPI{drone: testDrone(), dates: []string{"2026-09-01"}}
	f, _ := newTestFunnel(api)

	scheduleBooking(t, ctx, f)
	booking, err := f.ConfirmBooking(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(99), booking.BookingID)

	_, err = f.ConfirmBooking(ctx)
	assert.ErrorIs(t, err, errAlreadyBooked)
	assert.Equal(t, 1, api.createCalls)
	assert.Equal(t, StageBooked, f.Stage())
}

func TestConfirmBookingRejectsResumedCreatedDraft(t *testing.T) {
	ctx := context.Background()
	api := &fakeAPI{drone: testDrone(), dates: []string{"2026-09-01"}}
	session := store.NewSession(store.NewMemoryStore())

	// A previous run already created this booking.
	require.NoError(t, session.SetBookingDraft(ctx, models.BookingDraft{
		DroneID: 3, ServiceDate: "2026-09-01", Quantity: 3,
		Unit: models.UnitAcre, PricePerUnit: 400, TotalCost: 1200,
		BookingID: 99,
	}))

	f := NewFunnel(api, session)
	_, err := f.ConfirmBooking(ctx)
	assert.ErrorIs(t, err, errAlreadyBooked)
	assert.Zero(t, api.createCalls)
}

func TestCheckoutBlockedWithoutBookingID(t *testing.T) {
	ctx := context.Background()
	api := &fakeAPI{drone: testDrone(), dates: []string{"2026-09-01"}}
	f, _ := newTestFunnel(api)

	_, err := f.EnterCheckout(ctx)
	assert.ErrorIs(t, err, errNoBookingID)
}

func TestCheckoutBlockedOnStaleDraftWithoutBookingID(t *testing.T) {
	ctx := context.Background()
	api := &fakeAPI{drone: testDrone(), dates: []string{"2026-09-01"}}
	session := store.NewSession(store.NewMemoryStore())

	// A previous run persisted a draft but never created the booking.
	require.NoError(t, session.SetBookingDraft(ctx, models.BookingDraft{
		DroneID: 3, ServiceDate: "2026-09-01", Quantity: 3,
		Unit: models.UnitAcre, PricePerUnit: 400, TotalCost: 1200,
	}))

	f := NewFunnel(api, session)
	_, err := f.EnterCheckout(ctx)
	assert.ErrorIs(t, err, errNoBookingID)
}

func TestCheckoutResumesCreatedBookingFromStore(t *testing.T) {
	ctx := context.Background()
	api := &fakeAPI{drone: testDrone(), dates: []string{"2026-09-01"}}
	session := store.NewSession(store.NewMemoryStore())

	require.NoError(t, session.SetBookingDraft(ctx, models.BookingDraft{
		DroneID: 3, ServiceDate: "2026-09-01", Quantity: 3,
		Unit: models.UnitAcre, PricePerUnit: 400, TotalCost: 1200,
		BookingID: 99,
	}))

	f := NewFunnel(api, session)
	summary, err := f.EnterCheckout(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1200.0, summary.ItemTotal)
	assert.Equal(t, 216.0, summary.GSTAmount)
	assert.Equal(t, 1416.0, summary.TotalPayable)
	assert.Equal(t, StageBooked, f.Stage())
}

func TestPayVerifiedSuccessMarksPaidAndClearsStore(t *testing.T) {
	ctx := context.Background()
	api := &fakeAPI{drone: testDrone(), dates: []string{"2026-09-01"}}
	f, session := newTestFunnel(api)

	scheduleBooking(t, ctx, f)
	_, err := f.ConfirmBooking(ctx)
	require.NoError(t, err)

	collector := &fakeCollector{result: payment.Result{
		Outcome:   payment.OutcomeSuccess,
		PaymentID: "pay_1",
		Signature: "sig_1",
	}}
	intent, err := f.Pay(ctx, collector)
	require.NoError(t, err)
	assert.True(t, intent.Verified)
	assert.Equal(t, StagePaid, f.Stage())
	assert.Equal(t, 1416.0, api.orderAmount)
	assert.Equal(t, 1, api.verifyCalls)

	_, ok := session.BookingDraft(ctx)
	assert.False(t, ok)
}

func TestPayUnverifiedSuccessStaysUnpaid(t *testing.T) {
	ctx := context.Background()
	api := &fakeAPI{
		drone:     testDrone(),
		dates:     []string{"2026-09-01"},
		verifyErr: errors.New("signature mismatch"),
	}
	f, _ := newTestFunnel(api)

	scheduleBooking(t, ctx, f)
	_, err := f.ConfirmBooking(ctx)
	require.NoError(t, err)

	collector := &fakeCollector{result: payment.Result{
		Outcome:   payment.OutcomeSuccess,
		PaymentID: "pay_1",
		Signature: "sig_bad",
	}}
	intent, err := f.Pay(ctx, collector)
	require.Error(t, err)
	assert.False(t, intent.Verified)
	assert.Equal(t, StageBooked, f.Stage())
}

func TestPayFailureReturnsToBookedWithFlowError(t *testing.T) {
	ctx := context.Background()
	api := &fakeAPI{drone: testDrone(), dates: []string{"2026-09-01"}}
	f, _ := newTestFunnel(api)

	scheduleBooking(t, ctx, f)
	_, err := f.ConfirmBooking(ctx)
	require.NoError(t, err)

	collector := &fakeCollector{result: payment.Result{
		Outcome:     payment.OutcomeFailure,
		Code:        "BAD_REQUEST_ERROR",
		Description: "Card declined",
	}}
	_, err = f.Pay(ctx, collector)
	require.Error(t, err)

	var flowErr *FlowError
	require.True(t, errors.As(err, &flowErr))
	assert.Equal(t, "paymentFailed", flowErr.Code)
	assert.Equal(t, "Card declined", flowErr.Message)
	assert.Equal(t, StageBooked, f.Stage())
	assert.Zero(t, api.verifyCalls)
}

func TestPayDismissedIsNotAnError(t *testing.T) {
	ctx := context.Background()
	api := &fakeAPI{drone: testDrone(), dates: []string{"2026-09-01"}}
	f, _ := newTestFunnel(api)

	scheduleBooking(t, ctx, f)
	_, err := f.ConfirmBooking(ctx)
	require.NoError(t, err)

	collector := &fakeCollector{result: payment.Result{Outcome: payment.OutcomeDismissed}}
	intent, err := f.Pay(ctx, collector)
	require.NoError(t, err)
	assert.False(t, intent.Verified)
	assert.Equal(t, StageBooked, f.Stage())

	// The booking survives; a later attempt can pay it.
	assert.Equal(t, int64(99), f.Draft().BookingID)
}

func TestPayRejectedAfterPaid(t *testing.T) {
	ctx := context.Background()
	api := &fakeAPI{drone: testDrone(), dates: []string{"2026-09-01"}}
	f, _ := newTestFunnel(api)

	scheduleBooking(t, ctx, f)
	_, err := f.ConfirmBooking(ctx)
	require.NoError(t, err)

	collector := &fakeCollector{result: payment.Result{
		Outcome: payment.OutcomeSuccess, PaymentID: "pay_1", Signature: "sig_1",
	}}
	_, err = f.Pay(ctx, collector)
	require.NoError(t, err)

	_, err = f.Pay(ctx, collector)
	assert.ErrorIs(t, err, errAlreadyPaid)
}

func TestResetClearsFlow(t *testing.T) {
	ctx := context.Background()
	api := &fakeAPI{drone: testDrone(), dates: []string{"2026-09-01"}}
	f, session := newTestFunnel(api)

	scheduleBooking(t, ctx, f)
	require.NoError(t, f.Reset(ctx))

	assert.Equal(t, StageSelecting, f.Stage())
	assert.Nil(t, f.SelectedDrone())
	_, ok := session.BookingDraft(ctx)
	assert.False(t, ok)
}
