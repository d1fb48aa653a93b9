package booking

import "fmt"

// FlowError is an inline, user-displayable error that blocks
// advancement at the current funnel stage without corrupting state.
type FlowError struct {
	Code    string
	Message string
}

func (e *FlowError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func newFlowError(code, msg string) error {
	return &FlowError{Code: code, Message: msg}
}

var (
	errNoLocation    = newFlowError("locationMissing", "Location is missing. Please go back and select a location.")
	errNoDrone       = newFlowError("droneMissing", "Please select a drone before continuing.")
	errNoBookingID   = newFlowError("bookingMissing", "No booking found. Please complete the booking step first.")
	errDateNotOpen   = newFlowError("dateUnavailable", "Please select an available date.")
	errBadQuantity   = newFlowError("invalidQuantity", "Quantity must be at least 1.")
	errBadUnit       = newFlowError("invalidUnit", "Unit must be Acre, Hour or Day.")
	errAlreadyBooked = newFlowError("alreadyBooked", "This booking is already confirmed. Continue to checkout.")
	errAlreadyPaid   = newFlowError("alreadyPaid", "This booking is already paid.")
)
