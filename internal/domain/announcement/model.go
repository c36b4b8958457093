package announcement

import (
	"errors"
	"strings"
	"time"
)

// Domain errors
var (
	ErrEmptyBody = errors.New("announcement body cannot be empty")
)

// DefaultID is the single announcement row. The app shows one
// "how it works" block; history is not kept.
const DefaultID = "default"

// Announcement is the coach-editable markdown shown above the calendar.
type Announcement struct {
	ID        string
	Markdown  string
	UpdatedAt time.Time
}

// Validate checks if the Announcement has valid data.
// POST: Returns nil if valid, error otherwise
func (a *Announcement) Validate() error {
	if strings.TrimSpace(a.Markdown) == "" {
		return ErrEmptyBody
	}
	return nil
}
