package player

import (
	"errors"
	"fmt"
	"strings"
)

// Domain errors
var (
	ErrPlayerNotFound = errors.New("player not found")
	ErrEmptyName      = errors.New("player name cannot be empty")
)

// Player is roster reference data: externally supplied, read-only for a
// season. PIN is the built-in summary secret; a coach-set override in
// the pin store supersedes it.
type Player struct {
	ID        string
	FirstName string
	LastName  string
	Number    int
	PIN       string // optional 4-digit default PIN
}

// Validate checks if the Player has valid data.
// POST: Returns nil if valid, error otherwise
func (p *Player) Validate() error {
	if strings.TrimSpace(p.FirstName) == "" && strings.TrimSpace(p.LastName) == "" {
		return ErrEmptyName
	}
	return nil
}

// FullName returns "First Last".
func (p *Player) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

// DisplayName returns the roster label, e.g. "Avery Brooks #7".
func (p *Player) DisplayName() string {
	return fmt.Sprintf("%s #%d", p.FullName(), p.Number)
}

// NameByID resolves a player name from a roster snapshot, falling back
// to "Unknown" for a dangling reference.
func NameByID(roster []Player, id string) string {
	for i := range roster {
		if roster[i].ID == id {
			return roster[i].FullName()
		}
	}
	return "Unknown"
}

// ByID finds a player in a roster snapshot.
func ByID(roster []Player, id string) (Player, bool) {
	for i := range roster {
		if roster[i].ID == id {
			return roster[i], true
		}
	}
	return Player{}, false
}
