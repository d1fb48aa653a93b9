// Package payment models the third-party checkout widget boundary.
// The widget's success/failure/dismiss callbacks collapse into a
// single Result with exactly three variants, so exactly one terminal
// action happens per checkout attempt.
package payment

// Outcome tags the three ways a checkout attempt can end.
type Outcome int

const (
	// OutcomeSuccess: the widget collected payment and returned
	// provider identifiers; server-side verification must still pass.
	OutcomeSuccess Outcome = iota
	// OutcomeFailure: the provider reported a failed payment.
	OutcomeFailure
	// OutcomeDismissed: the user closed the widget without paying.
	OutcomeDismissed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeFailure:
		return "failure"
	case OutcomeDismissed:
		return "dismissed"
	}
	return "unknown"
}

// Result is the widget's terminal answer for one checkout attempt.
type Result struct {
	Outcome Outcome

	// Set on success.
	PaymentID string
	Signature string

	// Set on failure.
	Code        string
	Description string
}

// Collector hands an opened provider order to the checkout widget and
// blocks until it reaches a terminal outcome.
type Collector interface {
	Collect(orderID string, amountMinorUnits int64, keyID string) Result
}
