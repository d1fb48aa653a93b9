// Package store is the client's cross-page memory: a flat key->string
// persistence layer surviving process restarts (Redis) or scoped to
// one run (memory). Semantics are last-write-wins with no expiry;
// values live until explicitly removed. Flow code never touches a
// backend directly — it goes through Session.
package store

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get for absent keys.
var ErrNotFound = errors.New("key not found")

// Store is the narrow persistence capability set.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

// Logical keys. Kept flat to match the persisted layout.
const (
	KeyPhone             = "phoneNumber"
	KeyAuthToken         = "authToken"
	KeyCustomerID        = "customerId"
	KeyVendorID          = "vendorId"
	KeyOnboardingDroneID = "onboardingDroneId"
	KeySelectedDroneID   = "selectedDroneId"
	KeyConfirmedLocation = "confirmedLocation"
	KeyBookingDraft      = "bookingData"
)
