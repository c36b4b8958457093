package raffle

import (
	"context"

	domain "fundraiser/internal/domain/raffle"
)

// Store persists the one-winner-per-month mapping. Set upserts by
// (year, month); Clear removes the mapping entirely.
type Store interface {
	Set(ctx context.Context, value domain.Winner) error
	Clear(ctx context.Context, year, month int) error
	Get(ctx context.Context, year, month int) (domain.Winner, bool, error)
	List(ctx context.Context, year int) ([]domain.Winner, error)
}
