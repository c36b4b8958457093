package entry

import (
	"context"

	domain "fundraiser/internal/domain/entry"
)

// Store persists CalendarEntry state. Create is insert-only: a claim-key
// collision surfaces as entry.ErrDateClaimed, backed by the unique index
// on (year, month, day).
type Store interface {
	GetByID(ctx context.Context, id string) (domain.Entry, error)
	GetByDate(ctx context.Context, year, month, day int) (domain.Entry, error)
	Create(ctx context.Context, value domain.Entry) error
	Update(ctx context.Context, value domain.Entry) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, year int) ([]domain.Entry, error)
}
