package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/doseprompt/internal/auth"
	"github.com/julianstephens/doseprompt/internal/constants"
)

type PinCmd struct {
	Set    PinSetCmd    `cmd:"" help:"Create or replace the unlock PIN."`
	Clear  PinClearCmd  `cmd:"" help:"Remove the unlock PIN."`
	Status PinStatusCmd `cmd:"" help:"Show keyring and PIN status."`
}

// PinSetCmd stores a bcrypt hash of a new PIN in the OS keyring
type PinSetCmd struct {
	PIN string `help:"New PIN, 4 to 8 digits (prompted when omitted)." env:"DOSEPROMPT_PIN"`
}

func (cmd *PinSetCmd) Run(ctx *Context) error {
	pin := cmd.PIN
	if pin == "" {
		if !isTerminal(os.Stdin.Fd()) {
			return errors.New("no PIN given; pass --pin or run in a terminal")
		}
		var err error
		if pin, err = promptNewPIN(); err != nil {
			return err
		}
	}

	if err := ctx.Platform.Enroll(ctx.base(), pin); err != nil {
		return fmt.Errorf("failed to set PIN: %w", err)
	}

	fmt.Fprintln(ctx.out(), "✓ PIN stored in OS keyring")
	return nil
}

func promptNewPIN() (string, error) {
	var pin, confirm string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("New PIN").
				Description(fmt.Sprintf("%d to %d digits", constants.MinPINLength, constants.MaxPINLength)).
				EchoMode(huh.EchoModePassword).
				Value(&pin).
				Validate(auth.ValidatePIN),
			huh.NewInput().
				Title("Confirm PIN").
				EchoMode(huh.EchoModePassword).
				Value(&confirm).
				Validate(func(s string) error {
					if s != pin {
						return errors.New("PINs do not match")
					}
					return nil
				}),
		),
	).WithTheme(huh.ThemeDracula())

	if err := form.Run(); err != nil {
		return "", fmt.Errorf("PIN entry cancelled: %w", err)
	}
	return pin, nil
}

// PinClearCmd removes the stored PIN hash
type PinClearCmd struct {
	Yes bool `short:"y" help:"Do not ask for confirmation."`
}

func (cmd *PinClearCmd) Run(ctx *Context) error {
	if !cmd.Yes {
		confirmed := false
		err := huh.NewConfirm().
			Title("Remove the stored PIN?").
			Affirmative("Remove").
			Negative("Cancel").
			Value(&confirmed).
			Run()
		if err != nil {
			return fmt.Errorf("confirmation failed: %w", err)
		}
		if !confirmed {
			fmt.Fprintln(ctx.out(), "PIN kept")
			return nil
		}
	}

	if err := ctx.Platform.Clear(ctx.base()); err != nil {
		if errors.Is(err, auth.ErrNotFound) {
			return errors.New("no PIN is set")
		}
		return fmt.Errorf("failed to clear PIN: %w", err)
	}

	fmt.Fprintln(ctx.out(), "✓ PIN removed from OS keyring")
	return nil
}

// PinStatusCmd checks the availability of the OS keyring and whether a PIN is set
type PinStatusCmd struct{}

func (cmd *PinStatusCmd) Run(ctx *Context) error {
	w := ctx.out()
	enrolled, err := ctx.Platform.Enrolled(ctx.base())
	if err != nil {
		if errors.Is(err, auth.ErrKeyringUnavailable) {
			fmt.Fprintln(w, "❌ OS keyring is not available on this system")
			return errors.New("keyring unavailable")
		}
		return fmt.Errorf("failed to read PIN status: %w", err)
	}

	fmt.Fprintln(w, "✓ OS keyring is available")
	if enrolled {
		fmt.Fprintln(w, "✓ A PIN is set")
	} else {
		fmt.Fprintf(w, "ℹ No PIN set. Use '%s pin set' to create one\n", constants.AppName)
	}
	return nil
}
