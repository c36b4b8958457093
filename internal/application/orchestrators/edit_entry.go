package orchestrators

import (
	"context"
	"log/slog"

	entryDomain "fundraiser/internal/domain/entry"
	playerDomain "fundraiser/internal/domain/player"
)

// EditEntryInput carries input for the edit orchestrator. The patch
// cannot express a claim-key change: moving an entry to another date is
// an explicit clear-then-claim.
type EditEntryInput struct {
	ID    string
	Patch entryDomain.Patch
}

// EditEntryDeps holds dependencies for EditEntry.
type EditEntryDeps struct {
	EntryStore  EntryStore
	PlayerStore PlayerLookupStore
}

// ExecuteEditEntry applies a field patch to an existing entry.
// POST: Returns the updated entry; entry.ErrEntryNotFound if missing
// INVARIANT: ID, CreatedAt and the claim key never change
func ExecuteEditEntry(ctx context.Context, input EditEntryInput, deps EditEntryDeps) (entryDomain.Entry, error) {
	e, err := deps.EntryStore.GetByID(ctx, input.ID)
	if err != nil {
		return entryDomain.Entry{}, err
	}

	e.Apply(input.Patch)
	if err := e.Validate(); err != nil {
		return entryDomain.Entry{}, err
	}
	if input.Patch.PlayerID != nil {
		if _, err := deps.PlayerStore.GetByID(ctx, e.PlayerID); err != nil {
			return entryDomain.Entry{}, playerDomain.ErrPlayerNotFound
		}
	}

	if err := deps.EntryStore.Update(ctx, e); err != nil {
		return entryDomain.Entry{}, err
	}

	slog.Info("claim_event", "event", "entry_edited", "entry_id", e.ID)
	return e, nil
}
