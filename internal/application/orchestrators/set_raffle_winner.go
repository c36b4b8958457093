package orchestrators

import (
	"context"
	"log/slog"

	raffleDomain "fundraiser/internal/domain/raffle"
)

// RaffleStore defines the winner persistence interface used by the
// raffle orchestrator.
type RaffleStore interface {
	Set(ctx context.Context, w raffleDomain.Winner) error
	Clear(ctx context.Context, year, month int) error
}

// SetRaffleWinnerInput carries input for the raffle orchestrator. A Day
// of 0 clears the month's winner.
type SetRaffleWinnerInput struct {
	Year  int
	Month int
	Day   int
}

// SetRaffleWinnerDeps holds dependencies for SetRaffleWinner.
type SetRaffleWinnerDeps struct {
	RaffleStore RaffleStore
}

// ExecuteSetRaffleWinner upserts or clears the single winning day for a
// month. Eligibility is calendar validity only; the day need not be
// claimed.
// POST: Mapping for (year, month) holds Day, or is absent when Day == 0
func ExecuteSetRaffleWinner(ctx context.Context, input SetRaffleWinnerInput, deps SetRaffleWinnerDeps) error {
	if input.Day == 0 {
		if err := deps.RaffleStore.Clear(ctx, input.Year, input.Month); err != nil {
			return err
		}
		slog.Info("raffle_event", "event", "winner_cleared", "year", input.Year, "month", input.Month)
		return nil
	}

	w := raffleDomain.Winner{Year: input.Year, Month: input.Month, Day: input.Day}
	if err := w.Validate(); err != nil {
		return err
	}
	if err := deps.RaffleStore.Set(ctx, w); err != nil {
		return err
	}

	slog.Info("raffle_event", "event", "winner_set", "year", input.Year, "month", input.Month, "day", input.Day)
	return nil
}
