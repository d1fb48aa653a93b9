// Package otp drives phone-based authentication as an explicit state
// machine: collect a phone number, request a one-time code, collect
// four digits with auto-advance and auto-submit, verify. Both the
// login entry and the vendor onboarding entry run this machine against
// the real backend verification service.
package otp

import (
	"context"
	"errors"
	"regexp"

	"tatya/store"
	"tatya/utils"

	"go.uber.org/zap"
)

// State is the machine's position in the verification flow.
type State int

const (
	StateIdle State = iota
	StateSending
	StateAwaitingCode
	StateVerifying
	StateVerified
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateSending:
		return "Sending"
	case StateAwaitingCode:
		return "AwaitingCode"
	case StateVerifying:
		return "Verifying"
	case StateVerified:
		return "Verified"
	}
	return "Unknown"
}

const codeLength = 4

var (
	// ErrInvalidPhone rejects a requestCode locally; no network call is made.
	ErrInvalidPhone = errors.New("phone number must be exactly 10 digits")
	// ErrNotAwaitingCode rejects digit entry outside AwaitingCode.
	ErrNotAwaitingCode = errors.New("no code has been requested")
	// ErrVerifyInFlight rejects input while a verify attempt is outstanding.
	ErrVerifyInFlight = errors.New("verification already in progress")
)

var (
	phonePattern = regexp.MustCompile(`^\d{10}$`)
	pastePattern = regexp.MustCompile(`^\d{4}$`)
	digitPattern = regexp.MustCompile(`^\d$`)
)

// Verifier is the slice of the gateway the machine needs.
type Verifier interface {
	GenerateOTP(ctx context.Context, phone string) error
	VerifyOTP(ctx context.Context, phone, code string) error
}

// Machine holds the verification flow for one phone identity.
type Machine struct {
	state   State
	phone   string
	digits  [codeLength]string
	focus   int
	message string

	verifier Verifier
	session  *store.Session
	logger   *zap.Logger
}

func NewMachine(verifier Verifier, session *store.Session) *Machine {
	return &Machine{
		verifier: verifier,
		session:  session,
		logger:   utils.GetLogger(),
	}
}

func (m *Machine) State() State    { return m.state }
func (m *Machine) Phone() string   { return m.phone }
func (m *Machine) Focus() int      { return m.focus }
func (m *Machine) Message() string { return m.message }

// Digits returns a copy of the four entry cells.
func (m *Machine) Digits() [codeLength]string { return m.digits }

// Code is the concatenation of the entered digits.
func (m *Machine) Code() string {
	return m.digits[0] + m.digits[1] + m.digits[2] + m.digits[3]
}

// RequestCode transitions Idle -> Sending -> AwaitingCode. A phone
// that is not exactly 10 digits is rejected locally before any
// network call. On backend failure the machine returns to Idle with
// the backend message retained for display.
func (m *Machine) RequestCode(ctx context.Context, phone string) error {
	if m.state == StateVerifying {
		return ErrVerifyInFlight
	}
	if !phonePattern.MatchString(phone) {
		return ErrInvalidPhone
	}

	m.phone = phone
	m.state = StateSending
	if err := m.verifier.GenerateOTP(ctx, phone); err != nil {
		m.state = StateIdle
		m.message = err.Error()
		m.logger.Warn("OTP generate failed", zap.String("phone", phone), zap.Error(err))
		return err
	}

	m.state = StateAwaitingCode
	m.clearDigits()
	m.message = ""
	return nil
}

// EnterDigit places a single digit in the focused cell and advances
// focus. Entering the fourth digit auto-submits verification.
// Non-digit input is ignored.
func (m *Machine) EnterDigit(ctx context.Context, digit string) error {
	if m.state == StateVerifying {
		return ErrVerifyInFlight
	}
	if m.state != StateAwaitingCode {
		return ErrNotAwaitingCode
	}
	if !digitPattern.MatchString(digit) {
		return nil
	}

	m.digits[m.focus] = digit
	if m.focus < codeLength-1 {
		m.focus++
	}

	if m.allDigitsEntered() {
		return m.verify(ctx)
	}
	return nil
}

// Backspace clears the focused cell, or retreats focus over an
// already-empty cell.
func (m *Machine) Backspace() error {
	if m.state == StateVerifying {
		return ErrVerifyInFlight
	}
	if m.state != StateAwaitingCode {
		return ErrNotAwaitingCode
	}
	if m.digits[m.focus] == "" {
		if m.focus > 0 {
			m.focus--
			m.digits[m.focus] = ""
		}
		return nil
	}
	m.digits[m.focus] = ""
	return nil
}

// Paste fills all four cells from a pasted string and immediately
// triggers verification. Anything but exactly four digits is a no-op.
func (m *Machine) Paste(ctx context.Context, pasted string) error {
	if m.state == StateVerifying {
		return ErrVerifyInFlight
	}
	if m.state != StateAwaitingCode {
		return ErrNotAwaitingCode
	}
	if !pastePattern.MatchString(pasted) {
		return nil
	}
	for i := 0; i < codeLength; i++ {
		m.digits[i] = string(pasted[i])
	}
	m.focus = codeLength - 1
	return m.verify(ctx)
}

// Resend re-enters Sending from AwaitingCode, preserving the phone
// number and clearing entered digits.
func (m *Machine) Resend(ctx context.Context) error {
	if m.state == StateVerifying {
		return ErrVerifyInFlight
	}
	if m.state != StateAwaitingCode {
		return ErrNotAwaitingCode
	}
	m.clearDigits()
	return m.RequestCode(ctx, m.phone)
}

// ChangeNumber returns to Idle from any non-verifying state, clearing
// phone and digits.
func (m *Machine) ChangeNumber() error {
	if m.state == StateVerifying {
		return ErrVerifyInFlight
	}
	m.phone = ""
	m.clearDigits()
	m.message = ""
	m.state = StateIdle
	return nil
}

// verify submits the entered code. Only one attempt may be in flight;
// the Verifying state blocks all digit input for its duration. A
// mismatch clears the digits and resets focus to the first cell.
func (m *Machine) verify(ctx context.Context) error {
	m.state = StateVerifying
	if err := m.verifier.VerifyOTP(ctx, m.phone, m.Code()); err != nil {
		m.state = StateAwaitingCode
		m.clearDigits()
		m.message = err.Error()
		m.logger.Warn("OTP verify failed", zap.String("phone", m.phone), zap.Error(err))
		return err
	}

	m.state = StateVerified
	m.message = ""
	if err := m.session.SetPhone(ctx, m.phone); err != nil {
		m.logger.Error("Failed to persist verified phone", zap.Error(err))
	}
	return nil
}

func (m *Machine) allDigitsEntered() bool {
	for _, d := range m.digits {
		if d == "" {
			return false
		}
	}
	return len(m.Code()) == codeLength
}

func (m *Machine) clearDigits() {
	for i := range m.digits {
		m.digits[i] = ""
	}
	m.focus = 0
}
