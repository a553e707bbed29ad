package models

import "math"

// DoseProgress tracks how many of today's doses have been taken
type DoseProgress struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
}

// Percent returns completion in [0, 100].
func (p DoseProgress) Percent() float64 {
	if p.Total <= 0 {
		return 0
	}
	pct := float64(p.Completed) / float64(p.Total) * 100
	return math.Max(0, math.Min(100, pct))
}

// Fraction returns completion in [0, 1], as the progress bar expects.
func (p DoseProgress) Fraction() float64 {
	return p.Percent() / 100
}

// RoundedPercent is the whole-number percentage shown to the user.
func (p DoseProgress) RoundedPercent() int {
	return int(math.Round(p.Percent()))
}
