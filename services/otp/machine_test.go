package otp

import (
	"context"
	"errors"
	"testing"

	"tatya/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeVerifier struct {
	generateCalls int
	verifyCalls   int
	generateErr   error
	expectedCode  string
	lastPhone     string
	lastCode      string
}

func (f *fakeVerifier) GenerateOTP(ctx context.Context, phone string) error {
	f.generateCalls++
	f.lastPhone = phone
	return f.generateErr
}

func (f *fakeVerifier) VerifyOTP(ctx context.Context, phone, code string) error {
	f.verifyCalls++
	f.lastPhone = phone
	f.lastCode = code
	if code != f.expectedCode {
		return errors.New("Invalid OTP code")
	}
	return nil
}

func newTestMachine(verifier *fakeVerifier) (*Machine, *store.Session) {
	session := store.NewSession(store.NewMemoryStore())
	return NewMachine(verifier, session), session
}

func TestInvalidPhoneNeverReachesNetwork(t *testing.T) {
	ctx := context.Background()
	verifier := &fakeVerifier{}
	m, _ := newTestMachine(verifier)

	for _, phone := range []string{"", "12345", "98765432101", "98765abcde", "+919876543210"} {
		err := m.RequestCode(ctx, phone)
		assert.ErrorIs(t, err, ErrInvalidPhone, "phone %q", phone)
	}
	assert.Zero(t, verifier.generateCalls)
	assert.Equal(t, StateIdle, m.State())
}

func TestRequestCodeTransitionsToAwaitingCode(t *testing.T) {
	ctx := context.Background()
	verifier := &fakeVerifier{}
	m, _ := newTestMachine(verifier)

	require.NoError(t, m.RequestCode(ctx, "9876543210"))
	assert.Equal(t, StateAwaitingCode, m.State())
	assert.Equal(t, "9876543210", m.Phone())
	assert.Equal(t, 1, verifier.generateCalls)
}

func TestGenerateFailureReturnsToIdleWithMessage(t *testing.T) {
	ctx := context.Background()
	verifier := &fakeVerifier{generateErr: errors.New("Too many requests")}
	m, _ := newTestMachine(verifier)

	err := m.RequestCode(ctx, "9876543210")
	require.Error(t, err)
	assert.Equal(t, StateIdle, m.State())
	assert.Equal(t, "Too many requests", m.Message())
}

func TestFourthDigitAutoSubmits(t *testing.T) {
	ctx := context.Background()
	verifier := &fakeVerifier{expectedCode: "1234"}
	m, session := newTestMachine(verifier)

	require.NoError(t, m.RequestCode(ctx, "9876543210"))
	require.NoError(t, m.EnterDigit(ctx, "1"))
	require.NoError(t, m.EnterDigit(ctx, "2"))
	require.NoError(t, m.EnterDigit(ctx, "3"))
	assert.Zero(t, verifier.verifyCalls)

	require.NoError(t, m.EnterDigit(ctx, "4"))
	assert.Equal(t, 1, verifier.verifyCalls)
	assert.Equal(t, "1234", verifier.lastCode)
	assert.Equal(t, StateVerified, m.State())

	phone, ok := session.Phone(ctx)
	require.True(t, ok)
	assert.Equal(t, "9876543210", phone)
}

func TestNonDigitInputIgnored(t *testing.T) {
	ctx := context.Background()
	verifier := &fakeVerifier{expectedCode: "1234"}
	m, _ := newTestMachine(verifier)

	require.NoError(t, m.RequestCode(ctx, "9876543210"))
	require.NoError(t, m.EnterDigit(ctx, "x"))
	require.NoError(t, m.EnterDigit(ctx, ""))
	assert.Equal(t, [4]string{"", "", "", ""}, m.Digits())
	assert.Equal(t, 0, m.Focus())
}

func TestMismatchClearsDigitsAndStaysAwaiting(t *testing.T) {
	ctx := context.Background()
	verifier := &fakeVerifier{expectedCode: "1234"}
	m, _ := newTestMachine(verifier)

	require.NoError(t, m.RequestCode(ctx, "9876543210"))
	err := m.Paste(ctx, "9999")
	require.Error(t, err)
	assert.Equal(t, StateAwaitingCode, m.State())
	assert.Equal(t, [4]string{"", "", "", ""}, m.Digits())
	assert.Equal(t, 0, m.Focus())
	assert.Equal(t, "Invalid OTP code", m.Message())

	// A fresh attempt succeeds.
	require.NoError(t, m.Paste(ctx, "1234"))
	assert.Equal(t, StateVerified, m.State())
}

func TestPasteRequiresExactlyFourDigits(t *testing.T) {
	ctx := context.Background()
	verifier := &fakeVerifier{expectedCode: "1234"}
	m, _ := newTestMachine(verifier)

	require.NoError(t, m.RequestCode(ctx, "9876543210"))
	for _, pasted := range []string{"123", "12345", "12a4", ""} {
		require.NoError(t, m.Paste(ctx, pasted), "pasted %q", pasted)
	}
	assert.Zero(t, verifier.verifyCalls)
	assert.Equal(t, StateAwaitingCode, m.State())
}

func TestBackspaceRetreatsOverEmptyCell(t *testing.T) {
	ctx := context.Background()
	verifier := &fakeVerifier{expectedCode: "1234"}
	m, _ := newTestMachine(verifier)

	require.NoError(t, m.RequestCode(ctx, "9876543210"))
	require.NoError(t, m.EnterDigit(ctx, "1"))
	require.NoError(t, m.EnterDigit(ctx, "2"))

	// Focused cell is empty; backspace moves back and clears.
	require.NoError(t, m.Backspace())
	assert.Equal(t, [4]string{"1", "", "", ""}, m.Digits())
	assert.Equal(t, 1, m.Focus())

	require.NoError(t, m.Backspace())
	assert.Equal(t, [4]string{"", "", "", ""}, m.Digits())
	assert.Equal(t, 0, m.Focus())
}

func TestResendKeepsPhoneAndClearsDigits(t *testing.T) {
	ctx := context.Background()
	verifier := &fakeVerifier{expectedCode: "1234"}
	m, _ := newTestMachine(verifier)

	require.NoError(t, m.RequestCode(ctx, "9876543210"))
	require.NoError(t, m.EnterDigit(ctx, "1"))
	require.NoError(t, m.Resend(ctx))

	assert.Equal(t, 2, verifier.generateCalls)
	assert.Equal(t, "9876543210", m.Phone())
	assert.Equal(t, [4]string{"", "", "", ""}, m.Digits())
	assert.Equal(t, StateAwaitingCode, m.State())
}

func TestChangeNumberReturnsToIdle(t *testing.T) {
	ctx := context.Background()
	verifier := &fakeVerifier{}
	m, _ := newTestMachine(verifier)

	require.NoError(t, m.RequestCode(ctx, "9876543210"))
	require.NoError(t, m.ChangeNumber())
	assert.Equal(t, StateIdle, m.State())
	assert.Empty(t, m.Phone())
}

func TestDigitEntryRejectedBeforeRequest(t *testing.T) {
	ctx := context.Background()
	m, _ := newTestMachine(&fakeVerifier{})

	assert.ErrorIs(t, m.EnterDigit(ctx, "1"), ErrNotAwaitingCode)
	assert.ErrorIs(t, m.Backspace(), ErrNotAwaitingCode)
	assert.ErrorIs(t, m.Paste(ctx, "1234"), ErrNotAwaitingCode)
	assert.ErrorIs(t, m.Resend(ctx), ErrNotAwaitingCode)
}
