package orchestrators

import (
	"context"
	"log/slog"
	"time"

	announcementDomain "fundraiser/internal/domain/announcement"
)

// AnnouncementStore defines the announcement persistence interface.
type AnnouncementStore interface {
	Save(ctx context.Context, a announcementDomain.Announcement) error
}

// UpdateAnnouncementDeps holds dependencies for UpdateAnnouncement.
type UpdateAnnouncementDeps struct {
	AnnouncementStore AnnouncementStore
}

// ExecuteUpdateAnnouncement replaces the coach-editable markdown block.
// POST: Announcement saved with UpdatedAt set to now
func ExecuteUpdateAnnouncement(ctx context.Context, markdown string, deps UpdateAnnouncementDeps) error {
	a := announcementDomain.Announcement{
		ID:        announcementDomain.DefaultID,
		Markdown:  markdown,
		UpdatedAt: time.Now(),
	}
	if err := a.Validate(); err != nil {
		return err
	}
	if err := deps.AnnouncementStore.Save(ctx, a); err != nil {
		return err
	}
	slog.Info("announcement_event", "event", "announcement_updated", "bytes", len(markdown))
	return nil
}
