// Package shopping implements the medication shopping list: an ordered set
// of rows, each with its own check, dropdown and custom-entry state.
package shopping

import (
	"github.com/google/uuid"

	"github.com/julianstephens/doseprompt/internal/constants"
	"github.com/julianstephens/doseprompt/internal/models"
)

// Selection is what a row's dropdown currently holds: NoneSelected,
// MedicationSelection or CustomSelection.
type Selection interface {
	// Label is the row label for this selection
	Label() string
	// OptionLabel is the dropdown button text for this selection
	OptionLabel() string
	// Committed reports whether the dropdown is locked
	Committed() bool
}

type NoneSelected struct{}

func (NoneSelected) Label() string       { return constants.UnselectedLabel }
func (NoneSelected) OptionLabel() string { return constants.DropdownPlaceholder }
func (NoneSelected) Committed() bool     { return false }

type MedicationSelection struct {
	Medication models.Medication
}

func (s MedicationSelection) Label() string       { return s.Medication.Name }
func (s MedicationSelection) OptionLabel() string { return s.Medication.Name }
func (MedicationSelection) Committed() bool       { return true }

// CustomSelection is a free-text medication. It stays editable until Done.
type CustomSelection struct {
	Text string
	Done bool
}

func (s CustomSelection) Label() string {
	if s.Text == "" {
		return constants.CustomMedicationLabel
	}
	return s.Text
}

func (CustomSelection) OptionLabel() string { return constants.CustomMedicationLabel }
func (s CustomSelection) Committed() bool   { return s.Done }

// Row is one shopping list line. Lock and edit state are derived from the
// selection so a row cannot be both locked and editing.
type Row struct {
	id           string
	checked      bool
	selection    Selection
	dropdownOpen bool
}

func newRow() *Row {
	return &Row{
		id:        uuid.New().String(),
		selection: NoneSelected{},
	}
}

func (r *Row) ID() string            { return r.id }
func (r *Row) Checked() bool         { return r.checked }
func (r *Row) Selection() Selection  { return r.selection }
func (r *Row) DropdownOpen() bool    { return r.dropdownOpen }
func (r *Row) Label() string         { return r.selection.Label() }
func (r *Row) DropdownLabel() string { return r.selection.OptionLabel() }
func (r *Row) DropdownLocked() bool  { return r.selection.Committed() }

// EditingCustom reports whether the inline custom-text editor is open.
func (r *Row) EditingCustom() bool {
	c, ok := r.selection.(CustomSelection)
	return ok && !c.Done
}

// CustomText returns the pending or confirmed custom text.
func (r *Row) CustomText() string {
	if c, ok := r.selection.(CustomSelection); ok {
		return c.Text
	}
	return ""
}

// ToggleDropdown flips the dropdown open or closed. Locked rows ignore it.
func (r *Row) ToggleDropdown() {
	if r.DropdownLocked() {
		return
	}
	r.dropdownOpen = !r.dropdownOpen
}

// SelectMedication commits a catalog medication and locks the dropdown.
func (r *Row) SelectMedication(med models.Medication) {
	if r.DropdownLocked() {
		return
	}
	r.selection = MedicationSelection{Medication: med}
	r.dropdownOpen = false
	r.checked = true
}

// SelectCustom opens the inline editor with empty text. The dropdown stays
// unlocked until ConfirmCustom.
func (r *Row) SelectCustom() {
	if r.DropdownLocked() {
		return
	}
	r.selection = CustomSelection{}
	r.dropdownOpen = false
	r.checked = true
}

// EditCustomText updates the pending custom label while the editor is open.
func (r *Row) EditCustomText(text string) {
	if !r.EditingCustom() {
		return
	}
	r.selection = CustomSelection{Text: text}
}

// ConfirmCustom closes the editor and locks the dropdown.
func (r *Row) ConfirmCustom() {
	c, ok := r.selection.(CustomSelection)
	if !ok || c.Done {
		return
	}
	r.selection = CustomSelection{Text: c.Text, Done: true}
	r.checked = true
}

// ToggleCheck flips the checkbox regardless of lock state.
func (r *Row) ToggleCheck() {
	r.checked = !r.checked
}
