package raffle

import (
	"errors"

	"fundraiser/internal/domain/calendar"
)

// Domain errors
var (
	ErrBadWinningDay = errors.New("winning day is outside the month")
)

// Winner marks the single drawn day for one month. Any valid calendar
// day is eligible whether or not it was claimed: every day's number is
// a ticket count in the drawing.
type Winner struct {
	Year  int
	Month int // 1-12
	Day   int
}

// Validate checks if the Winner has valid data.
// PRE: Winner struct is populated
// POST: Returns nil if Day names a real day of (Year, Month)
func (w *Winner) Validate() error {
	if !calendar.ValidDate(w.Year, w.Month, w.Day) {
		return ErrBadWinningDay
	}
	return nil
}

// DayFor looks up the winning day for (year, month) in a snapshot of
// winners. Returns 0 when the month is undrawn.
func DayFor(winners []Winner, year, month int) int {
	for _, w := range winners {
		if w.Year == year && w.Month == month {
			return w.Day
		}
	}
	return 0
}
