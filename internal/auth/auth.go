package auth

import (
	"context"

	"github.com/julianstephens/doseprompt/internal/constants"
)

// Result is the terminal outcome of one authentication attempt
type Result int

const (
	ResultSucceeded Result = iota
	ResultFailed
	ResultCancelled
)

func (r Result) String() string {
	switch r {
	case ResultSucceeded:
		return "succeeded"
	case ResultFailed:
		return "failed"
	case ResultCancelled:
		return "cancelled"
	}
	return "unknown"
}

// Capabilities describes what the platform can offer for authentication
type Capabilities struct {
	HasHardware bool
	IsEnrolled  bool
}

// Biometric reports whether a biometric prompt can be shown
func (c Capabilities) Biometric() bool {
	return c.HasHardware && c.IsEnrolled
}

// Request carries the prompt text and the secret the user entered, if any
type Request struct {
	PromptMessage string
	FallbackLabel string
	CancelLabel   string
	Secret        string
}

// Platform is the device capability used to gate entry into the app
type Platform interface {
	Capabilities(ctx context.Context) (Capabilities, error)
	Authenticate(ctx context.Context, req Request) (Result, error)
}

// PromptLabel picks the prompt shown on the auth screen
func PromptLabel(caps Capabilities) string {
	if caps.Biometric() {
		return constants.BiometricPrompt
	}
	return constants.PINPrompt
}

// NewRequest builds a request with the standard labels for caps
func NewRequest(caps Capabilities, secret string) Request {
	return Request{
		PromptMessage: PromptLabel(caps),
		FallbackLabel: constants.FallbackLabel,
		CancelLabel:   constants.CancelLabel,
		Secret:        secret,
	}
}

// OutcomeMessage is the inline message for a non-successful result
func OutcomeMessage(r Result) string {
	switch r {
	case ResultFailed:
		return constants.AuthFailedMessage
	case ResultCancelled:
		return constants.AuthCancelledMessage
	}
	return ""
}

// Enroller is implemented by platforms that can create a credential on first run
type Enroller interface {
	Enroll(ctx context.Context, pin string) error
}
