package access

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Domain errors. ErrNoPinConfigured is distinct from ErrPinMismatch so
// callers can render a "contact the coaches" message instead of a retry
// prompt.
var (
	ErrBadPassphrase   = errors.New("incorrect passphrase")
	ErrPinMismatch     = errors.New("incorrect PIN")
	ErrNoPinConfigured = errors.New("no PIN has been set for this player yet")
	ErrBadPinFormat    = errors.New("PIN must be exactly 4 digits")
)

// Gate holds the admin passphrase hash. Player/supporter checks are
// stateless; unlocked status lives in the caller's session and is never
// persisted here.
type Gate struct {
	adminHash []byte
}

// NewGate hashes the shared admin passphrase with bcrypt.
// PRE: passphrase is non-empty
func NewGate(passphrase string) (*Gate, error) {
	if passphrase == "" {
		return nil, errors.New("admin passphrase cannot be empty")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(passphrase), 12)
	if err != nil {
		return nil, err
	}
	return &Gate{adminHash: hash}, nil
}

// CheckAdmin compares a candidate passphrase against the stored hash.
// POST: Returns nil on match, ErrBadPassphrase otherwise
func (g *Gate) CheckAdmin(passphrase string) error {
	if err := bcrypt.CompareHashAndPassword(g.adminHash, []byte(passphrase)); err != nil {
		return ErrBadPassphrase
	}
	return nil
}

// NormalizePIN strips whitespace and enforces the 4-digit format.
// POST: Returns the cleaned PIN or ErrBadPinFormat
func NormalizePIN(s string) (string, error) {
	s = strings.TrimSpace(s)
	if len(s) != 4 {
		return "", ErrBadPinFormat
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return "", ErrBadPinFormat
		}
	}
	return s, nil
}

// EffectivePIN returns the coach-set override when present, else the
// player's built-in PIN. Empty means no PIN is configured.
func EffectivePIN(override, builtin string) string {
	if override != "" {
		return override
	}
	return builtin
}

// CheckPlayerPIN authorizes the family summary view for one player.
// POST: nil on match; ErrNoPinConfigured when no PIN exists; ErrPinMismatch otherwise
func CheckPlayerPIN(effective, input string) error {
	if effective == "" {
		return ErrNoPinConfigured
	}
	if strings.TrimSpace(input) != effective {
		return ErrPinMismatch
	}
	return nil
}

// LastFourDigits extracts the last four digits of a phone string,
// ignoring formatting. Returns "" when fewer than four digits exist.
func LastFourDigits(phone string) string {
	digits := make([]rune, 0, len(phone))
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits = append(digits, r)
		}
	}
	if len(digits) < 4 {
		return ""
	}
	return string(digits[len(digits)-4:])
}

// CheckSupporterSecret authorizes a supporter detail view. The code may
// be the relevant player's effective PIN or the last four digits of any
// phone number on the supporter's entries; family members may know
// either secret.
// POST: nil on any match; ErrNoPinConfigured when no secret exists at all
func CheckSupporterSecret(effectivePIN string, phones []string, code string) error {
	code = strings.TrimSpace(code)
	if effectivePIN != "" && code == effectivePIN {
		return nil
	}
	anySecret := effectivePIN != ""
	for _, p := range phones {
		last4 := LastFourDigits(p)
		if last4 == "" {
			continue
		}
		anySecret = true
		if code == last4 {
			return nil
		}
	}
	if !anySecret {
		return ErrNoPinConfigured
	}
	return ErrPinMismatch
}
