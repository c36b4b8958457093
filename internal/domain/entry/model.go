package entry

import (
	"errors"
	"sort"
	"strings"
	"time"

	"fundraiser/internal/domain/calendar"
	"fundraiser/internal/domain/payment"
)

// Domain errors
var (
	ErrDateClaimed    = errors.New("that date is already claimed")
	ErrEntryNotFound  = errors.New("entry not found")
	ErrEmptySupporter = errors.New("supporter name cannot be empty")
	ErrNoPlayer       = errors.New("a player must be selected")
	ErrBadDate        = errors.New("not a valid calendar date")
	ErrBadAmount      = errors.New("payment amount cannot be negative")
)

// Entry is one claimed calendar date: a supporter sponsoring a player
// for that day. (Year, Month, Day) is the claim key, unique across all
// live entries. The amount owed is always the day number and is derived,
// never stored.
type Entry struct {
	ID            string
	Year          int
	Month         int // 1-12
	Day           int // validated against the month's real day count
	PlayerID      string
	SupporterName string
	Note          string
	Phone         string // access-gate secret only, never shown publicly
	PaymentMethod payment.Method
	PaymentAmount float64
	CreatedAt     time.Time
}

// Owed returns the dollar amount (and raffle ticket count) for this
// entry: the calendar day number.
// INVARIANT: Entry fields are not mutated
func (e *Entry) Owed() int {
	return e.Day
}

// PaymentState derives the tri-state payment status for this entry.
func (e *Entry) PaymentState() payment.State {
	return payment.Resolve(e.Day, e.PaymentMethod, e.PaymentAmount)
}

// Validate checks if the Entry has valid data.
// PRE: Entry struct is populated
// POST: Returns nil if valid, error otherwise
func (e *Entry) Validate() error {
	if !calendar.ValidDate(e.Year, e.Month, e.Day) {
		return ErrBadDate
	}
	if strings.TrimSpace(e.SupporterName) == "" {
		return ErrEmptySupporter
	}
	if e.PlayerID == "" {
		return ErrNoPlayer
	}
	if e.PaymentAmount < 0 {
		return ErrBadAmount
	}
	if !e.PaymentMethod.Valid() {
		e.PaymentMethod = payment.MethodUnpaid
	}
	return nil
}

// SameDate reports whether the entry occupies the given claim key.
func (e *Entry) SameDate(year, month, day int) bool {
	return e.Year == year && e.Month == month && e.Day == day
}

// Patch carries the fields an edit may change. The claim key, ID and
// CreatedAt are deliberately absent: moving an entry to another date is
// an explicit clear-then-claim, never an edit.
type Patch struct {
	PlayerID      *string
	SupporterName *string
	Note          *string
	Phone         *string
	PaymentMethod *payment.Method
	PaymentAmount *float64
}

// Apply overlays the patch onto the entry.
// POST: Only fields present in the patch change; claim key is untouched
func (e *Entry) Apply(p Patch) {
	if p.PlayerID != nil {
		e.PlayerID = *p.PlayerID
	}
	if p.SupporterName != nil {
		e.SupporterName = *p.SupporterName
	}
	if p.Note != nil {
		e.Note = *p.Note
	}
	if p.Phone != nil {
		e.Phone = *p.Phone
	}
	if p.PaymentMethod != nil {
		e.PaymentMethod = payment.ParseMethod(string(*p.PaymentMethod))
	}
	if p.PaymentAmount != nil {
		e.PaymentAmount = *p.PaymentAmount
	}
}

// SortByDate orders entries by (year, month, day) ascending, stable on ties.
func SortByDate(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.Year != b.Year {
			return a.Year < b.Year
		}
		if a.Month != b.Month {
			return a.Month < b.Month
		}
		return a.Day < b.Day
	})
}
