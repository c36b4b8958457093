package player

import (
	"context"

	domain "fundraiser/internal/domain/player"
)

// Store holds the season roster. Players are seeded once at startup and
// read-only afterwards.
type Store interface {
	GetByID(ctx context.Context, id string) (domain.Player, error)
	List(ctx context.Context) ([]domain.Player, error)
	Save(ctx context.Context, value domain.Player) error
}
