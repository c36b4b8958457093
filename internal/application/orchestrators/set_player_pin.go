package orchestrators

import (
	"context"
	"log/slog"

	"fundraiser/internal/domain/access"
	playerDomain "fundraiser/internal/domain/player"
)

// PinStore defines the PIN override persistence interface.
type PinStore interface {
	Set(ctx context.Context, playerID, pin string) error
	Remove(ctx context.Context, playerID string) error
}

// SetPlayerPinInput carries input for the PIN override orchestrator.
// An empty PIN removes the override, falling back to the built-in PIN.
type SetPlayerPinInput struct {
	PlayerID string
	PIN      string
}

// SetPlayerPinDeps holds dependencies for SetPlayerPin.
type SetPlayerPinDeps struct {
	PinStore    PinStore
	PlayerStore PlayerLookupStore
}

// ExecuteSetPlayerPin upserts or removes a coach-set PIN override.
// POST: Override saved (4-digit validated) or removed when PIN is empty
func ExecuteSetPlayerPin(ctx context.Context, input SetPlayerPinInput, deps SetPlayerPinDeps) error {
	if _, err := deps.PlayerStore.GetByID(ctx, input.PlayerID); err != nil {
		return playerDomain.ErrPlayerNotFound
	}

	if input.PIN == "" {
		if err := deps.PinStore.Remove(ctx, input.PlayerID); err != nil {
			return err
		}
		slog.Info("access_event", "event", "pin_override_removed", "player_id", input.PlayerID)
		return nil
	}

	pin, err := access.NormalizePIN(input.PIN)
	if err != nil {
		return err
	}
	if err := deps.PinStore.Set(ctx, input.PlayerID, pin); err != nil {
		return err
	}

	slog.Info("access_event", "event", "pin_override_set", "player_id", input.PlayerID)
	return nil
}
