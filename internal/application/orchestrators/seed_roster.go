package orchestrators

import (
	"context"
	"log/slog"
	"time"

	announcementDomain "fundraiser/internal/domain/announcement"
	playerDomain "fundraiser/internal/domain/player"
)

// PlayerStoreForSeed defines the store interface needed by SeedRoster.
type PlayerStoreForSeed interface {
	Save(ctx context.Context, p playerDomain.Player) error
}

// AnnouncementStoreForSeed defines the store interface needed by SeedRoster.
type AnnouncementStoreForSeed interface {
	Get(ctx context.Context, id string) (announcementDomain.Announcement, error)
	Save(ctx context.Context, a announcementDomain.Announcement) error
}

// SeedRosterDeps holds dependencies for SeedRoster.
type SeedRosterDeps struct {
	PlayerStore       PlayerStoreForSeed
	AnnouncementStore AnnouncementStoreForSeed
}

// defaultRoster is the season roster. IDs are stable slugs so re-seeding
// updates names and numbers without breaking existing claims, and the
// built-in PINs survive until a coach sets an override.
var defaultRoster = []playerDomain.Player{
	{ID: "avery-brooks", FirstName: "Avery", LastName: "Brooks", Number: 7, PIN: "0707"},
	{ID: "jordan-lee", FirstName: "Jordan", LastName: "Lee", Number: 12, PIN: "1212"},
	{ID: "sam-ortiz", FirstName: "Sam", LastName: "Ortiz", Number: 3, PIN: "0303"},
	{ID: "riley-chen", FirstName: "Riley", LastName: "Chen", Number: 21, PIN: "2121"},
	{ID: "casey-nguyen", FirstName: "Casey", LastName: "Nguyen", Number: 9, PIN: "0909"},
	{ID: "morgan-patel", FirstName: "Morgan", LastName: "Patel", Number: 15, PIN: "1515"},
	{ID: "taylor-reed", FirstName: "Taylor", LastName: "Reed", Number: 4, PIN: "0404"},
	{ID: "drew-kim", FirstName: "Drew", LastName: "Kim", Number: 18, PIN: "1818"},
	{ID: "jamie-walsh", FirstName: "Jamie", LastName: "Walsh", Number: 2, PIN: "0202"},
	{ID: "quinn-garcia", FirstName: "Quinn", LastName: "Garcia", Number: 23, PIN: "2323"},
}

const defaultAnnouncement = `## How it works

Pick any open day on the calendar and claim it for your player. The day
number is the dollar amount, and every dollar is a raffle ticket!

- Pay by **Zelle** or **Venmo** when you claim, or later.
- Each month we draw one winning day.`

// ExecuteSeedRoster upserts the season roster and creates the default
// announcement when none exists.
// POST: Roster rows match defaultRoster; announcement row exists
func ExecuteSeedRoster(ctx context.Context, deps SeedRosterDeps) error {
	for _, p := range defaultRoster {
		if err := p.Validate(); err != nil {
			return err
		}
		if err := deps.PlayerStore.Save(ctx, p); err != nil {
			return err
		}
	}

	if _, err := deps.AnnouncementStore.Get(ctx, announcementDomain.DefaultID); err != nil {
		a := announcementDomain.Announcement{
			ID:        announcementDomain.DefaultID,
			Markdown:  defaultAnnouncement,
			UpdatedAt: time.Now(),
		}
		if err := deps.AnnouncementStore.Save(ctx, a); err != nil {
			return err
		}
	}

	slog.Info("seed_event", "event", "roster_seeded", "players", len(defaultRoster))
	return nil
}
