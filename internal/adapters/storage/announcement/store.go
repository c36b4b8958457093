package announcement

import (
	"context"

	domain "fundraiser/internal/domain/announcement"
)

// Store persists the coach-editable announcement.
type Store interface {
	Get(ctx context.Context, id string) (domain.Announcement, error)
	Save(ctx context.Context, value domain.Announcement) error
}
