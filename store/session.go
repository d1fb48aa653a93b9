package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"tatya/models"
	"tatya/utils"
)

// Session is the typed wrapper flows read and write. Readers should
// prefer live in-memory flow state and fall back to Session only when
// that state is absent (a fresh process, a resumed flow).
type Session struct {
	store Store
}

func NewSession(s Store) *Session {
	return &Session{store: s}
}

// --- identity ---

func (s *Session) SetPhone(ctx context.Context, phone string) error {
	return s.store.Set(ctx, KeyPhone, phone)
}

func (s *Session) Phone(ctx context.Context) (string, bool) {
	return s.getString(ctx, KeyPhone)
}

// SetAuthToken stores a backend-issued token for reuse across runs.
// A numeric sub claim doubles as the customer id, so flows that only
// have the token still learn who is logged in.
func (s *Session) SetAuthToken(ctx context.Context, token string) error {
	if err := s.store.Set(ctx, KeyAuthToken, token); err != nil {
		return err
	}
	if sub, err := utils.ExtractSubject(token); err == nil {
		if id, err := strconv.ParseInt(sub, 10, 64); err == nil {
			return s.SetCustomerID(ctx, id)
		}
	}
	return nil
}

// AuthToken returns the stored token, treating an expired one as
// absent so callers re-authenticate instead of presenting it.
func (s *Session) AuthToken(ctx context.Context) (string, bool) {
	token, ok := s.getString(ctx, KeyAuthToken)
	if !ok {
		return "", false
	}
	if err := utils.CheckTokenFreshness(token); err != nil {
		return "", false
	}
	return token, true
}

func (s *Session) SetCustomerID(ctx context.Context, id int64) error {
	return s.store.Set(ctx, KeyCustomerID, strconv.FormatInt(id, 10))
}

func (s *Session) CustomerID(ctx context.Context) (int64, bool) {
	return s.getInt64(ctx, KeyCustomerID)
}

// --- vendor onboarding ---

func (s *Session) SetVendorID(ctx context.Context, id int64) error {
	return s.store.Set(ctx, KeyVendorID, strconv.FormatInt(id, 10))
}

func (s *Session) VendorID(ctx context.Context) (int64, bool) {
	return s.getInt64(ctx, KeyVendorID)
}

func (s *Session) SetOnboardingDroneID(ctx context.Context, id int64) error {
	return s.store.Set(ctx, KeyOnboardingDroneID, strconv.FormatInt(id, 10))
}

func (s *Session) OnboardingDroneID(ctx context.Context) (int64, bool) {
	return s.getInt64(ctx, KeyOnboardingDroneID)
}

// --- booking flow ---

func (s *Session) SetSelectedDroneID(ctx context.Context, id int64) error {
	return s.store.Set(ctx, KeySelectedDroneID, strconv.FormatInt(id, 10))
}

func (s *Session) SelectedDroneID(ctx context.Context) (int64, bool) {
	return s.getInt64(ctx, KeySelectedDroneID)
}

func (s *Session) SetConfirmedLocation(ctx context.Context, loc models.ConfirmedLocation) error {
	return s.setJSON(ctx, KeyConfirmedLocation, loc)
}

func (s *Session) ConfirmedLocation(ctx context.Context) (*models.ConfirmedLocation, bool) {
	var loc models.ConfirmedLocation
	if !s.getJSON(ctx, KeyConfirmedLocation, &loc) {
		return nil, false
	}
	return &loc, true
}

func (s *Session) SetBookingDraft(ctx context.Context, draft models.BookingDraft) error {
	return s.setJSON(ctx, KeyBookingDraft, draft)
}

func (s *Session) BookingDraft(ctx context.Context) (*models.BookingDraft, bool) {
	var draft models.BookingDraft
	if !s.getJSON(ctx, KeyBookingDraft, &draft) {
		return nil, false
	}
	return &draft, true
}

// --- key-group clears ---

// ClearBookingFlow removes booking-funnel state after a paid booking
// or an abandoned flow reset.
func (s *Session) ClearBookingFlow(ctx context.Context) error {
	for _, key := range []string{KeySelectedDroneID, KeyConfirmedLocation, KeyBookingDraft} {
		if err := s.store.Remove(ctx, key); err != nil {
			return err
		}
	}
	return nil
}

// ClearOnboarding removes wizard progress after step-6 submission.
func (s *Session) ClearOnboarding(ctx context.Context) error {
	for _, key := range []string{KeyVendorID, KeyOnboardingDroneID} {
		if err := s.store.Remove(ctx, key); err != nil {
			return err
		}
	}
	return nil
}

// ClearIdentity removes authenticated identity markers on logout.
func (s *Session) ClearIdentity(ctx context.Context) error {
	for _, key := range []string{KeyPhone, KeyAuthToken, KeyCustomerID} {
		if err := s.store.Remove(ctx, key); err != nil {
			return err
		}
	}
	return nil
}

// --- helpers ---

func (s *Session) getString(ctx context.Context, key string) (string, bool) {
	value, err := s.store.Get(ctx, key)
	if err != nil {
		return "", false
	}
	return value, true
}

func (s *Session) getInt64(ctx context.Context, key string) (int64, bool) {
	raw, ok := s.getString(ctx, key)
	if !ok {
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

func (s *Session) setJSON(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", key, err)
	}
	return s.store.Set(ctx, key, string(data))
}

func (s *Session) getJSON(ctx context.Context, key string, out interface{}) bool {
	raw, ok := s.getString(ctx, key)
	if !ok {
		return false
	}
	// A corrupt entry is treated as absent rather than fatal.
	return json.Unmarshal([]byte(raw), out) == nil
}
