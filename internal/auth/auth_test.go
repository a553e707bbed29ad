package auth

import (
	"context"
	"errors"
	"testing"

	gokeyring "github.com/zalando/go-keyring"
	"golang.org/x/crypto/bcrypt"

	"github.com/julianstephens/doseprompt/internal/constants"
	apperrors "github.com/julianstephens/doseprompt/internal/errors"
)

func newTestPlatform(t *testing.T) *KeyringPlatform {
	t.Helper()
	// Use mock keyring for testing
	gokeyring.MockInit()
	p := NewKeyringPlatform()
	p.cost = bcrypt.MinCost
	return p
}

func TestPromptLabel(t *testing.T) {
	tests := []struct {
		name string
		caps Capabilities
		want string
	}{
		{"hardware and enrolled", Capabilities{HasHardware: true, IsEnrolled: true}, constants.BiometricPrompt},
		{"hardware not enrolled", Capabilities{HasHardware: true}, constants.PINPrompt},
		{"no hardware", Capabilities{IsEnrolled: true}, constants.PINPrompt},
		{"nothing", Capabilities{}, constants.PINPrompt},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PromptLabel(tt.caps); got != tt.want {
				t.Errorf("PromptLabel() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNewRequest(t *testing.T) {
	req := NewRequest(Capabilities{}, "1234")
	if req.PromptMessage != constants.PINPrompt {
		t.Errorf("PromptMessage = %q", req.PromptMessage)
	}
	if req.FallbackLabel != constants.FallbackLabel || req.CancelLabel != constants.CancelLabel {
		t.Errorf("labels = %q/%q", req.FallbackLabel, req.CancelLabel)
	}
	if req.Secret != "1234" {
		t.Errorf("Secret = %q", req.Secret)
	}
}

func TestOutcomeMessage(t *testing.T) {
	if got := OutcomeMessage(ResultFailed); got != "Authentication failed. Please try again." {
		t.Errorf("failed message = %q", got)
	}
	if got := OutcomeMessage(ResultCancelled); got != "Authentication cancelled." {
		t.Errorf("cancelled message = %q", got)
	}
	if got := OutcomeMessage(ResultSucceeded); got != "" {
		t.Errorf("succeeded message = %q", got)
	}
}

func TestValidatePIN(t *testing.T) {
	tests := []struct {
		pin     string
		wantErr bool
	}{
		{"1234", false},
		{"12345678", false},
		{"123", true},
		{"123456789", true},
		{"12a4", true},
		{"", true},
	}

	for _, tt := range tests {
		t.Run(tt.pin, func(t *testing.T) {
			err := ValidatePIN(tt.pin)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidatePIN(%q) error = %v, wantErr %v", tt.pin, err, tt.wantErr)
			}
			if err != nil && !apperrors.IsValidation(err) {
				t.Errorf("expected a validation error, got %T", err)
			}
		})
	}
}

func TestCapabilitiesBeforeAndAfterEnroll(t *testing.T) {
	p := newTestPlatform(t)
	ctx := context.Background()

	caps, err := p.Capabilities(ctx)
	if err != nil {
		t.Fatalf("Capabilities() failed: %v", err)
	}
	if caps.HasHardware || caps.IsEnrolled {
		t.Errorf("Capabilities() = %+v before enrollment", caps)
	}

	if err := p.Enroll(ctx, "2468"); err != nil {
		t.Fatalf("Enroll() failed: %v", err)
	}

	caps, err = p.Capabilities(ctx)
	if err != nil {
		t.Fatalf("Capabilities() failed: %v", err)
	}
	if caps.HasHardware || !caps.IsEnrolled {
		t.Errorf("Capabilities() = %+v after enrollment", caps)
	}
	if PromptLabel(caps) != constants.PINPrompt {
		t.Errorf("keyring platform should prompt for a PIN, got %q", PromptLabel(caps))
	}
}

func TestAuthenticate(t *testing.T) {
	p := newTestPlatform(t)
	ctx := context.Background()

	if err := p.Enroll(ctx, "2468"); err != nil {
		t.Fatalf("Enroll() failed: %v", err)
	}

	tests := []struct {
		name   string
		secret string
		want   Result
	}{
		{"right PIN", "2468", ResultSucceeded},
		{"wrong PIN", "1357", ResultFailed},
		{"empty PIN", "", ResultFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := p.Authenticate(ctx, NewRequest(Capabilities{}, tt.secret))
			if err != nil {
				t.Fatalf("Authenticate() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Authenticate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAuthenticateCancelledContext(t *testing.T) {
	p := newTestPlatform(t)
	if err := p.Enroll(context.Background(), "2468"); err != nil {
		t.Fatalf("Enroll() failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	got, err := p.Authenticate(ctx, NewRequest(Capabilities{}, "2468"))
	if err != nil {
		t.Fatalf("Authenticate() error = %v", err)
	}
	if got != ResultCancelled {
		t.Errorf("Authenticate() = %v, want %v", got, ResultCancelled)
	}
}

func TestAuthenticateNotEnrolled(t *testing.T) {
	p := newTestPlatform(t)
	_ = p.Clear(context.Background())

	got, err := p.Authenticate(context.Background(), NewRequest(Capabilities{}, "2468"))
	if got != ResultFailed {
		t.Errorf("Authenticate() = %v, want %v", got, ResultFailed)
	}
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Authenticate() error = %v, want %v", err, ErrNotFound)
	}
}

func TestEnrollRejectsInvalidPIN(t *testing.T) {
	p := newTestPlatform(t)
	ctx := context.Background()

	if err := p.Enroll(ctx, "12"); !apperrors.IsValidation(err) {
		t.Fatalf("Enroll(\"12\") error = %v, want validation error", err)
	}
	enrolled, err := p.Enrolled(ctx)
	if err != nil {
		t.Fatalf("Enrolled() failed: %v", err)
	}
	if enrolled {
		t.Error("invalid PIN was enrolled")
	}
}

func TestEnrollReplacesPIN(t *testing.T) {
	p := newTestPlatform(t)
	ctx := context.Background()

	if err := p.Enroll(ctx, "1111"); err != nil {
		t.Fatalf("Enroll() failed: %v", err)
	}
	if err := p.Enroll(ctx, "2222"); err != nil {
		t.Fatalf("Enroll() failed: %v", err)
	}

	if got, _ := p.Authenticate(ctx, NewRequest(Capabilities{}, "1111")); got != ResultFailed {
		t.Errorf("old PIN: Authenticate() = %v, want %v", got, ResultFailed)
	}
	if got, _ := p.Authenticate(ctx, NewRequest(Capabilities{}, "2222")); got != ResultSucceeded {
		t.Errorf("new PIN: Authenticate() = %v, want %v", got, ResultSucceeded)
	}
}

func TestClear(t *testing.T) {
	p := newTestPlatform(t)
	ctx := context.Background()

	if err := p.Enroll(ctx, "2468"); err != nil {
		t.Fatalf("Enroll() failed: %v", err)
	}
	if err := p.Clear(ctx); err != nil {
		t.Fatalf("Clear() failed: %v", err)
	}
	if err := p.Clear(ctx); err != ErrNotFound {
		t.Errorf("second Clear() error = %v, want %v", err, ErrNotFound)
	}

	enrolled, err := p.Enrolled(ctx)
	if err != nil {
		t.Fatalf("Enrolled() failed: %v", err)
	}
	if enrolled {
		t.Error("PIN still enrolled after Clear()")
	}
}
