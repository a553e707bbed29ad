package constants

import "time"

// Screen identifies a navigable screen of the TUI
type Screen int

const (
	AppName            = "doseprompt"
	DisplayName        = "DosePrompt"
	Tagline            = "Your medicine dose reminder"
	DefaultKeyringUser = "pin-hash"
	DefaultConfigDir   = "~/.config/doseprompt"
	DefaultConfigFile  = "~/.config/doseprompt/config.json"
	Version            = "v0.1.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// MonthTitleFormat renders a month heading such as "February 2024"
	MonthTitleFormat = "January 2006"
)

const (
	ScreenSplash Screen = iota
	ScreenAuth
	ScreenHome
	ScreenMoodTracker
	ScreenShoppingList
	ScreenSetReminders
)

// SplashDelay is how long the splash screen stays up before moving on to the auth gate
const SplashDelay = 2 * time.Second

var screenNames = map[Screen]string{
	ScreenSplash:       "splash",
	ScreenAuth:         "auth",
	ScreenHome:         "home",
	ScreenMoodTracker:  "mood_tracker",
	ScreenShoppingList: "shopping_list",
	ScreenSetReminders: "set_reminders",
}

func (s Screen) String() string {
	if name, ok := screenNames[s]; ok {
		return name
	}
	return "unknown"
}
