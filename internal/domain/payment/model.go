package payment

import "fmt"

// Method is a closed set of payment channels. Anything unrecognized is
// treated as unpaid rather than carried through as a raw string.
type Method string

const (
	MethodUnpaid Method = "unpaid"
	MethodZelle  Method = "zelle"
	MethodVenmo  Method = "venmo"
)

// ParseMethod maps a stored string onto the closed Method set.
// POST: Returns MethodZelle, MethodVenmo, or MethodUnpaid
func ParseMethod(s string) Method {
	switch Method(s) {
	case MethodZelle:
		return MethodZelle
	case MethodVenmo:
		return MethodVenmo
	default:
		return MethodUnpaid
	}
}

// Valid reports whether m is one of the three recognized values.
func (m Method) Valid() bool {
	return m == MethodUnpaid || m == MethodZelle || m == MethodVenmo
}

// State is the derived payment status of a single entry. Owed is always
// the claimed day number; it is computed here and never stored.
type State struct {
	Owed        int
	Amount      float64
	Method      Method
	IsPaid      bool
	IsFullyPaid bool
	Label       string
}

// Resolve derives the payment state for one entry.
// PRE: owed is the entry's day number
// POST: IsFullyPaid implies IsPaid; Amount == 0 implies !IsPaid
// INVARIANT: Pure, no I/O, no cross-entry state
func Resolve(owed int, method Method, amount float64) State {
	m := ParseMethod(string(method))
	if amount < 0 {
		amount = 0
	}

	isPaid := m != MethodUnpaid && amount > 0
	isFullyPaid := isPaid && amount >= float64(owed)

	var label string
	switch {
	case !isPaid:
		label = "Unpaid"
	case isFullyPaid:
		label = fmt.Sprintf("Paid via %s (full $%v)", m, amount)
	default:
		label = fmt.Sprintf("Paid via %s (partial $%v of $%d)", m, amount, owed)
	}

	return State{
		Owed:        owed,
		Amount:      amount,
		Method:      m,
		IsPaid:      isPaid,
		IsFullyPaid: isFullyPaid,
		Label:       label,
	}
}

// QuickTogglePatch computes the admin quick-checkbox write for one
// channel: if the entry is already fully paid via that channel the
// toggle reverts it to unpaid, otherwise it marks the full owed amount
// paid via the channel in one step.
// PRE: method is MethodZelle or MethodVenmo
// POST: Returned pair is either (MethodUnpaid, 0) or (method, owed)
func QuickTogglePatch(owed int, current Method, currentAmount float64, method Method) (Method, float64) {
	state := Resolve(owed, current, currentAmount)
	if state.IsFullyPaid && state.Method == method {
		return MethodUnpaid, 0
	}
	return method, float64(owed)
}
