package orchestrators

import (
	"context"
	"log/slog"

	"fundraiser/internal/domain/calendar"
)

// ClearDayDeps holds dependencies for ClearDay.
type ClearDayDeps struct {
	EntryStore EntryStore
}

// ExecuteClearDay deletes an entry, freeing its calendar day for a new
// claim.
// POST: Entry is removed; entry.ErrEntryNotFound if missing
func ExecuteClearDay(ctx context.Context, id string, deps ClearDayDeps) error {
	e, err := deps.EntryStore.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := deps.EntryStore.Delete(ctx, id); err != nil {
		return err
	}
	slog.Info("claim_event", "event", "day_cleared",
		"entry_id", id, "date", calendar.DateLabel(e.Year, e.Month, e.Day))
	return nil
}
