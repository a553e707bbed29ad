// Package calendar builds month matrices: 7-column grids of day slots with
// leading and trailing padding, weeks starting on Sunday.
package calendar

import (
	"fmt"
	"time"

	"github.com/julianstephens/doseprompt/internal/constants"
)

// WeekdayHeaders are the column titles of a month matrix
var WeekdayHeaders = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// Date is a civil calendar date with no time-of-day or location.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate returns the date for year/month/day, normalizing overflow the way
// time.Date does.
func NewDate(year int, month time.Month, day int) Date {
	return FromTime(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// FromTime returns the calendar date of t in t's location.
func FromTime(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// ParseISO parses a YYYY-MM-DD string.
func ParseISO(s string) (Date, error) {
	t, err := time.Parse(constants.DateFormat, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q, use YYYY-MM-DD: %w", s, err)
	}
	return FromTime(t), nil
}

// Time returns midnight UTC of d.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// ISO formats d as YYYY-MM-DD. It is the key used for mood entries.
func (d Date) ISO() string {
	return d.Time().Format(constants.DateFormat)
}

func (d Date) String() string { return d.ISO() }

func (d Date) Weekday() time.Weekday {
	return d.Time().Weekday()
}

// AddDays returns d shifted by n days.
func (d Date) AddDays(n int) Date {
	return FromTime(d.Time().AddDate(0, 0, n))
}

func (d Date) IsZero() bool {
	return d == Date{}
}

// MonthIndex returns the zero-based month of d.
func (d Date) MonthIndex() int {
	return int(d.Month) - 1
}

// DateCell is one slot of a month matrix: empty padding or a date.
type DateCell struct {
	date  Date
	valid bool
}

// Date returns the wrapped date and whether the cell holds one.
func (c DateCell) Date() (Date, bool) {
	return c.date, c.valid
}

func (c DateCell) IsEmpty() bool {
	return !c.valid
}

// Week is one row of a month matrix, Sunday first.
type Week [7]DateCell

// Matrix is an ordered sequence of weeks.
type Matrix []Week

// BuildMonthMatrix returns the weeks of the month identified by year and a
// zero-based month index. Slots before the 1st and after the last day are
// empty. Indices outside 0..11 roll into the adjacent years.
func BuildMonthMatrix(year, monthIdx int) Matrix {
	first := FirstOfMonth(year, monthIdx)
	daysInMonth := DaysIn(first.Year, first.MonthIndex())

	startOffset := int(first.Weekday()) // Sunday == 0
	rows := (startOffset + daysInMonth + 6) / 7

	weeks := make(Matrix, rows)
	for day := 1; day <= daysInMonth; day++ {
		cellIdx := startOffset + day - 1
		weeks[cellIdx/7][cellIdx%7] = DateCell{
			date:  Date{Year: first.Year, Month: first.Month, Day: day},
			valid: true,
		}
	}
	return weeks
}

// Dates returns the non-empty cells of m in order.
func (m Matrix) Dates() []Date {
	var dates []Date
	for _, week := range m {
		for _, cell := range week {
			if d, ok := cell.Date(); ok {
				dates = append(dates, d)
			}
		}
	}
	return dates
}

// Locate returns the week and column holding d, or ok=false.
func (m Matrix) Locate(d Date) (week, col int, ok bool) {
	for wi, w := range m {
		for ci, cell := range w {
			if cd, valid := cell.Date(); valid && cd == d {
				return wi, ci, true
			}
		}
	}
	return 0, 0, false
}

// FirstOfMonth returns the 1st of the (normalized) month.
func FirstOfMonth(year, monthIdx int) Date {
	return NewDate(year, time.Month(monthIdx+1), 1)
}

// DaysIn returns the number of days in the month.
func DaysIn(year, monthIdx int) int {
	first := time.Date(year, time.Month(monthIdx+1), 1, 0, 0, 0, 0, time.UTC)
	return first.AddDate(0, 1, -1).Day()
}

// ShiftMonth moves a (year, monthIdx) cursor by delta months.
func ShiftMonth(year, monthIdx, delta int) (int, int) {
	first := FirstOfMonth(year, monthIdx+delta)
	return first.Year, first.MonthIndex()
}

// Title renders the month heading, e.g. "February 2024".
func Title(year, monthIdx int) string {
	return FirstOfMonth(year, monthIdx).Time().Format(constants.MonthTitleFormat)
}
