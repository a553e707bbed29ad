package cli

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/julianstephens/doseprompt/internal/calendar"
	apperrors "github.com/julianstephens/doseprompt/internal/errors"
)

// CalendarCmd prints the month matrix the mood tracker picker uses
type CalendarCmd struct {
	Year  int `arg:"" optional:"" help:"Year (defaults to the current year)."`
	Month int `arg:"" optional:"" help:"Month 1-12 (defaults to the current month)."`
}

func (cmd *CalendarCmd) Run(ctx *Context) error {
	year, monthIdx, err := cmd.resolve(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintln(ctx.out(), RenderMonth(year, monthIdx, calendar.FromTime(ctx.now())))
	return nil
}

func (cmd *CalendarCmd) resolve(ctx *Context) (int, int, error) {
	today := ctx.now()
	year, month := cmd.Year, cmd.Month
	if year == 0 {
		year = today.Year()
	}
	if month == 0 {
		month = int(today.Month())
	}
	if month < 1 || month > 12 {
		return 0, 0, apperrors.NewValidation("Invalid month", fmt.Sprintf("month must be between 1 and 12, got %d", month))
	}
	if year < 1 {
		return 0, 0, apperrors.NewValidation("Invalid year", fmt.Sprintf("year must be positive, got %d", year))
	}
	return year, month - 1, nil
}

// RenderMonth lays out one month as a table with a weekday header. today is
// marked with an asterisk when it falls in the month.
func RenderMonth(year, monthIdx int, today calendar.Date) string {
	titleColor := color.New(color.FgHiWhite, color.Bold)
	headerColor := color.New(color.FgCyan)

	table := uitable.New()
	table.Separator = "  "

	header := make([]interface{}, len(calendar.WeekdayHeaders))
	for i, h := range calendar.WeekdayHeaders {
		header[i] = h
	}
	table.AddRow(header...)

	for _, week := range calendar.BuildMonthMatrix(year, monthIdx) {
		row := make([]interface{}, len(week))
		for i, cell := range week {
			d, ok := cell.Date()
			switch {
			case !ok:
				row[i] = ""
			case d == today:
				row[i] = fmt.Sprintf("%d*", d.Day)
			default:
				row[i] = d.Day
			}
		}
		table.AddRow(row...)
	}

	lines := strings.Split(table.String(), "\n")
	lines[0] = headerColor.Sprint(lines[0])

	var b strings.Builder
	b.WriteString(titleColor.Sprint(calendar.Title(year, monthIdx)))
	b.WriteString("\n")
	b.WriteString(strings.Join(lines, "\n"))
	return b.String()
}
