package shopping

import (
	"testing"

	"github.com/julianstephens/doseprompt/internal/constants"
	"github.com/julianstephens/doseprompt/internal/models"
)

func newTestList() *List {
	return NewList(models.NewCatalog(constants.DefaultMedications))
}

func firstRow(t *testing.T, l *List) *Row {
	t.Helper()
	rows := l.Rows()
	if len(rows) == 0 {
		t.Fatal("list has no rows")
	}
	return rows[0]
}

func TestNewListHasOneUnselectedRow(t *testing.T) {
	l := newTestList()
	if l.Len() != 1 {
		t.Fatalf("expected 1 initial row, got %d", l.Len())
	}

	r := firstRow(t, l)
	if r.Checked() || r.DropdownOpen() || r.DropdownLocked() || r.EditingCustom() {
		t.Errorf("initial row not pristine: %+v", r)
	}
	if r.Label() != "Select medication" {
		t.Errorf("Label() = %q", r.Label())
	}
	if r.DropdownLabel() != "Select" {
		t.Errorf("DropdownLabel() = %q", r.DropdownLabel())
	}
	if _, ok := r.Selection().(NoneSelected); !ok {
		t.Errorf("Selection() = %T, want NoneSelected", r.Selection())
	}
}

func TestSelectMedicationLocksDropdown(t *testing.T) {
	l := newTestList()
	r := firstRow(t, l)

	l.ToggleDropdown(r.ID())
	if !r.DropdownOpen() {
		t.Fatal("dropdown did not open")
	}

	l.SelectMedication(r.ID(), "2")
	if r.Label() != "Ibuprofen" {
		t.Errorf("Label() = %q, want Ibuprofen", r.Label())
	}
	if !r.Checked() || !r.DropdownLocked() || r.DropdownOpen() {
		t.Errorf("after select: checked=%v locked=%v open=%v", r.Checked(), r.DropdownLocked(), r.DropdownOpen())
	}

	l.ToggleDropdown(r.ID())
	if r.DropdownOpen() {
		t.Error("locked dropdown opened on toggle")
	}

	l.SelectMedication(r.ID(), "1")
	if r.Label() != "Ibuprofen" {
		t.Errorf("locked row changed selection to %q", r.Label())
	}
	l.SelectCustom(r.ID())
	if r.EditingCustom() {
		t.Error("locked row entered custom editing")
	}
}

func TestSelectUnknownMedicationIsNoop(t *testing.T) {
	l := newTestList()
	r := firstRow(t, l)

	l.SelectMedication(r.ID(), "42")
	if r.Checked() || r.DropdownLocked() || r.Label() != "Select medication" {
		t.Errorf("unknown medication changed the row: %+v", r)
	}
}

func TestCustomEntryFlow(t *testing.T) {
	l := newTestList()
	r := firstRow(t, l)

	l.Select(r.ID(), constants.CustomMedicationID)
	if !r.EditingCustom() {
		t.Fatal("custom selection did not open the editor")
	}
	if r.DropdownLocked() {
		t.Error("dropdown locked before Done")
	}
	if !r.Checked() {
		t.Error("custom selection did not check the row")
	}
	if r.Label() != "Custom medication" {
		t.Errorf("empty custom label = %q", r.Label())
	}
	if r.DropdownLabel() != "Custom medication" {
		t.Errorf("DropdownLabel() = %q", r.DropdownLabel())
	}

	l.EditCustomText(r.ID(), "Vitamin")
	if r.Label() != "Vitamin" {
		t.Errorf("label does not mirror pending text: %q", r.Label())
	}
	l.EditCustomText(r.ID(), "Vitamin D")
	l.ConfirmCustom(r.ID())

	if r.Label() != "Vitamin D" {
		t.Errorf("Label() = %q, want Vitamin D", r.Label())
	}
	if !r.DropdownLocked() {
		t.Error("dropdown not locked after Done")
	}
	if r.EditingCustom() {
		t.Error("editor still open after Done")
	}
	if !r.Checked() {
		t.Error("row unchecked after Done")
	}

	l.EditCustomText(r.ID(), "changed")
	if r.Label() != "Vitamin D" {
		t.Errorf("confirmed custom text changed to %q", r.Label())
	}
}

func TestSwitchFromCustomToMedicationBeforeDone(t *testing.T) {
	l := newTestList()
	r := firstRow(t, l)

	l.SelectCustom(r.ID())
	l.EditCustomText(r.ID(), "Zinc")
	l.ToggleDropdown(r.ID())
	if !r.DropdownOpen() {
		t.Fatal("dropdown should still toggle while editing custom text")
	}
	l.SelectMedication(r.ID(), "3")

	if r.EditingCustom() {
		t.Error("editor still open after picking a catalog medication")
	}
	if r.Label() != "Metformin" || !r.DropdownLocked() {
		t.Errorf("label=%q locked=%v", r.Label(), r.DropdownLocked())
	}
	if r.CustomText() != "" {
		t.Errorf("custom text kept: %q", r.CustomText())
	}
}

func TestToggleCheckIgnoresLock(t *testing.T) {
	l := newTestList()
	r := firstRow(t, l)

	l.SelectMedication(r.ID(), "1")
	l.ToggleCheck(r.ID())
	if r.Checked() {
		t.Error("toggle did not uncheck a locked row")
	}
	l.ToggleCheck(r.ID())
	if !r.Checked() {
		t.Error("toggle did not re-check a locked row")
	}
}

func TestConfirmCustomWithoutEditingIsNoop(t *testing.T) {
	l := newTestList()
	r := firstRow(t, l)

	l.ConfirmCustom(r.ID())
	if r.DropdownLocked() || r.Checked() {
		t.Error("Done on an unselected row changed state")
	}
}

func TestAddAppendsRows(t *testing.T) {
	l := newTestList()
	first := firstRow(t, l).ID()

	second := l.Add()
	third := l.Add()

	rows := l.Rows()
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	got := []string{rows[0].ID(), rows[1].ID(), rows[2].ID()}
	want := []string{first, second, third}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("row %d = %s, want %s", i, got[i], want[i])
		}
	}
	if second == third || first == second {
		t.Error("row ids are not unique")
	}
	if rows[2].Checked() {
		t.Error("new row should start unchecked")
	}
}

func TestDeleteRequiresConfirmation(t *testing.T) {
	l := newTestList()
	l.Add()
	target := l.Rows()[1]
	l.SelectMedication(target.ID(), "1")

	prompt, ok := l.RequestDelete(target.ID())
	if !ok {
		t.Fatal("RequestDelete() rejected a known row")
	}
	if prompt != `Remove "Aspirin" from the shopping list?` {
		t.Errorf("prompt = %q", prompt)
	}

	l.CancelDelete()
	if l.Len() != 2 {
		t.Fatalf("cancel changed row count to %d", l.Len())
	}
	if _, ok := l.Row(target.ID()); !ok {
		t.Fatal("cancel removed the row")
	}
	if _, pending := l.PendingDelete(); pending {
		t.Error("pending delete survived cancel")
	}
	if l.ConfirmDelete() {
		t.Error("ConfirmDelete() removed a row without a pending request")
	}

	l.RequestDelete(target.ID())
	if !l.ConfirmDelete() {
		t.Fatal("ConfirmDelete() did not remove the row")
	}
	if l.Len() != 1 {
		t.Errorf("expected 1 row after delete, got %d", l.Len())
	}
	if _, ok := l.Row(target.ID()); ok {
		t.Error("deleted row still present")
	}
}

func TestUnknownRowIsNoop(t *testing.T) {
	l := newTestList()
	l.ToggleCheck("missing")
	l.ToggleDropdown("missing")
	l.Select("missing", "1")
	l.EditCustomText("missing", "x")
	l.ConfirmCustom("missing")
	if _, ok := l.RequestDelete("missing"); ok {
		t.Error("RequestDelete() accepted an unknown row")
	}
	if l.Len() != 1 {
		t.Errorf("row count changed to %d", l.Len())
	}
}

func TestOptions(t *testing.T) {
	opts := newTestList().Options()
	want := []Option{
		{Label: "Aspirin", Value: "1"},
		{Label: "Ibuprofen", Value: "2"},
		{Label: "Metformin", Value: "3"},
		{Label: "Custom medication", Value: "custom"},
	}
	if len(opts) != len(want) {
		t.Fatalf("got %d options, want %d", len(opts), len(want))
	}
	for i := range want {
		if opts[i] != want[i] {
			t.Errorf("option %d = %+v, want %+v", i, opts[i], want[i])
		}
	}
}
