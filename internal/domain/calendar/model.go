package calendar

import (
	"fmt"
	"time"
)

// Cell is one slot in a 7-wide month grid. Day of 0 marks a blank
// padding cell before the 1st or after the last day of the month.
type Cell struct {
	Day int
}

// IsBlank returns true if the cell is a padding slot.
// INVARIANT: Cell fields are not mutated
func (c Cell) IsBlank() bool {
	return c.Day == 0
}

var monthNames = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// MonthName returns the English name for a month 1-12, or "" out of range.
func MonthName(month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return monthNames[month-1]
}

// DaysInMonth returns the number of days in the given month, computed
// from calendar arithmetic so leap Februaries come out right.
// PRE: month is 1-12
// POST: Returns 28-31, or 0 for an invalid month
func DaysInMonth(year, month int) int {
	if month < 1 || month > 12 {
		return 0
	}
	// Day 0 of the next month normalizes to the last day of this one.
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// ValidDate reports whether (year, month, day) names a real calendar day.
func ValidDate(year, month, day int) bool {
	return day >= 1 && day <= DaysInMonth(year, month)
}

// BuildCells expands a (year, month) into a Sunday-start grid: leading
// blanks for the weekday offset of the 1st, one cell per day, trailing
// blanks padding to a multiple of 7.
// PRE: month is 1-12
// POST: len(result) % 7 == 0; non-blank cells == DaysInMonth(year, month)
// INVARIANT: Pure, same inputs always yield the same grid
func BuildCells(year, month int) []Cell {
	days := DaysInMonth(year, month)
	if days == 0 {
		return nil
	}
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	offset := int(first.Weekday()) // 0 = Sunday

	cells := make([]Cell, 0, offset+days+6)
	for i := 0; i < offset; i++ {
		cells = append(cells, Cell{})
	}
	for d := 1; d <= days; d++ {
		cells = append(cells, Cell{Day: d})
	}
	for len(cells)%7 != 0 {
		cells = append(cells, Cell{})
	}
	return cells
}

// DateLabel formats a claim date for display, e.g. "June 12, 2025".
func DateLabel(year, month, day int) string {
	return fmt.Sprintf("%s %d, %d", MonthName(month), day, year)
}

// ShortLabel formats a date without the year, e.g. "June 12".
func ShortLabel(month, day int) string {
	return fmt.Sprintf("%s %d", MonthName(month), day)
}
