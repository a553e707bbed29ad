package constants

const (
	// Store backends
	StoreMemory = "memory"
	StoreSQLite = "sqlite"

	// DefaultSQLiteDSN keeps the SQLite store in memory so entries end with the process
	DefaultSQLiteDSN = ":memory:"

	// Home dashboard
	DefaultDailyDoses = 10

	// PIN enrollment bounds (digits)
	MinPINLength = 4
	MaxPINLength = 8

	// Energy scale
	MinEnergy = 1
	MaxEnergy = 5

	// Shopping list labels
	CustomMedicationID    = "custom"
	CustomMedicationLabel = "Custom medication"
	UnselectedLabel       = "Select medication"
	DropdownPlaceholder   = "Select"

	// User-facing messages
	MissingSelectionTitle   = "Missing selection"
	MissingSelectionMessage = "Please select both mood and energy before saving."
	SavedTitle              = "Saved"
	SavedMessage            = "Mood and energy saved for the selected date."
	AuthFailedMessage       = "Authentication failed. Please try again."
	AuthCancelledMessage    = "Authentication cancelled."
	BiometricPrompt         = "Use Touch ID / Face ID"
	PINPrompt               = "Enter your PIN"
	FallbackLabel           = "Use PIN"
	CancelLabel             = "Cancel"
)

// DefaultMedications is the catalog offered by the shopping list dropdown
var DefaultMedications = []string{"Aspirin", "Ibuprofen", "Metformin"}

func init() {
	if MinPINLength > MaxPINLength {
		panic("MinPINLength must not exceed MaxPINLength")
	}
	if MinEnergy > MaxEnergy {
		panic("MinEnergy must not exceed MaxEnergy")
	}
}
