package orchestrators

import (
	"context"
	"errors"
	"log/slog"

	entryDomain "fundraiser/internal/domain/entry"
	"fundraiser/internal/domain/payment"
)

// ErrBadChannel rejects quick-toggling anything but a real payment channel.
var ErrBadChannel = errors.New("quick mark requires a payment channel")

// QuickMarkPaidInput carries input for the quick payment toggle.
type QuickMarkPaidInput struct {
	ID      string
	Channel payment.Method
}

// QuickMarkPaidDeps holds dependencies for QuickMarkPaid.
type QuickMarkPaidDeps struct {
	EntryStore EntryStore
}

// ExecuteQuickMarkPaid applies the admin quick-checkbox toggle: mark an
// entry fully paid via one channel in a single step, or revert it to
// unpaid when that channel was already fully paid.
// POST: Entry's method/amount are either (channel, owed) or (unpaid, 0)
func ExecuteQuickMarkPaid(ctx context.Context, input QuickMarkPaidInput, deps QuickMarkPaidDeps) (entryDomain.Entry, error) {
	channel := payment.ParseMethod(string(input.Channel))
	if channel == payment.MethodUnpaid {
		return entryDomain.Entry{}, ErrBadChannel
	}

	e, err := deps.EntryStore.GetByID(ctx, input.ID)
	if err != nil {
		return entryDomain.Entry{}, err
	}

	e.PaymentMethod, e.PaymentAmount = payment.QuickTogglePatch(e.Owed(), e.PaymentMethod, e.PaymentAmount, channel)

	if err := deps.EntryStore.Update(ctx, e); err != nil {
		return entryDomain.Entry{}, err
	}

	slog.Info("payment_event", "event", "quick_toggled",
		"entry_id", e.ID, "method", e.PaymentMethod, "amount", e.PaymentAmount)
	return e, nil
}
