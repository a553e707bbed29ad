package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"
	"golang.org/x/crypto/bcrypt"

	"github.com/julianstephens/doseprompt/internal/constants"
	apperrors "github.com/julianstephens/doseprompt/internal/errors"
	"github.com/julianstephens/doseprompt/internal/logger"
)

var (
	// ErrNotFound is returned when no PIN has been enrolled
	ErrNotFound = errors.New("PIN not found in keyring")
	// ErrKeyringUnavailable is returned when the OS keyring is not available
	ErrKeyringUnavailable = errors.New("OS keyring is not available")
)

// KeyringPlatform authenticates against a bcrypt PIN hash kept in the OS
// keyring. Terminals have no biometric hardware, so HasHardware is always false.
type KeyringPlatform struct {
	service string
	user    string
	cost    int
}

func NewKeyringPlatform() *KeyringPlatform {
	return &KeyringPlatform{
		service: constants.AppName,
		user:    constants.DefaultKeyringUser,
		cost:    bcrypt.DefaultCost,
	}
}

func (p *KeyringPlatform) Capabilities(ctx context.Context) (Capabilities, error) {
	enrolled, err := p.Enrolled(ctx)
	if err != nil {
		return Capabilities{}, err
	}
	return Capabilities{HasHardware: false, IsEnrolled: enrolled}, nil
}

func (p *KeyringPlatform) Authenticate(ctx context.Context, req Request) (Result, error) {
	if ctx.Err() != nil {
		return ResultCancelled, nil
	}

	hash, err := p.hash()
	if err != nil {
		return ResultFailed, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(req.Secret)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			logger.Debug("PIN mismatch")
			return ResultFailed, nil
		}
		return ResultFailed, fmt.Errorf("failed to verify PIN: %w", err)
	}

	// bcrypt is slow; the user may have backed out while it ran
	if ctx.Err() != nil {
		return ResultCancelled, nil
	}
	return ResultSucceeded, nil
}

// Enrolled reports whether a PIN hash is stored
func (p *KeyringPlatform) Enrolled(ctx context.Context) (bool, error) {
	_, err := p.hash()
	if err == nil {
		return true, nil
	}
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	return false, err
}

// Enroll stores a hash of pin, replacing any existing one
func (p *KeyringPlatform) Enroll(ctx context.Context, pin string) error {
	if err := ValidatePIN(pin); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(pin), p.cost)
	if err != nil {
		return fmt.Errorf("failed to hash PIN: %w", err)
	}
	if err := keyring.Set(p.service, p.user, string(hash)); err != nil {
		return fmt.Errorf("failed to store PIN in keyring: %w", err)
	}
	logger.Info("PIN enrolled")
	return nil
}

// Clear removes the stored PIN hash
func (p *KeyringPlatform) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := keyring.Delete(p.service, p.user); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete PIN from keyring: %w", err)
	}
	logger.Info("PIN cleared")
	return nil
}

func (p *KeyringPlatform) hash() (string, error) {
	hash, err := keyring.Get(p.service, p.user)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("%w: %v", ErrKeyringUnavailable, err)
	}
	return hash, nil
}

// ValidatePIN checks that pin is MinPINLength to MaxPINLength digits
func ValidatePIN(pin string) error {
	if len(pin) < constants.MinPINLength || len(pin) > constants.MaxPINLength {
		return apperrors.NewValidation("Invalid PIN",
			fmt.Sprintf("PIN must be %d to %d digits.", constants.MinPINLength, constants.MaxPINLength))
	}
	for _, r := range pin {
		if r < '0' || r > '9' {
			return apperrors.NewValidation("Invalid PIN", "PIN may only contain digits.")
		}
	}
	return nil
}
