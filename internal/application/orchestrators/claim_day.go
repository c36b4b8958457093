package orchestrators

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"fundraiser/internal/adapters/email"
	"fundraiser/internal/domain/calendar"
	entryDomain "fundraiser/internal/domain/entry"
	"fundraiser/internal/domain/payment"
	playerDomain "fundraiser/internal/domain/player"
)

// EntryStore defines the entry persistence interface used by the write
// orchestrators.
type EntryStore interface {
	GetByID(ctx context.Context, id string) (entryDomain.Entry, error)
	GetByDate(ctx context.Context, year, month, day int) (entryDomain.Entry, error)
	Create(ctx context.Context, e entryDomain.Entry) error
	Update(ctx context.Context, e entryDomain.Entry) error
	Delete(ctx context.Context, id string) error
}

// PlayerLookupStore defines the roster interface needed to validate claims.
type PlayerLookupStore interface {
	GetByID(ctx context.Context, id string) (playerDomain.Player, error)
}

// ClaimNotifyDeps configures the best-effort coach notification sent
// after a successful claim. Nil skips notification entirely.
type ClaimNotifyDeps struct {
	Sender     email.Sender
	CoachEmail string
	From       string
	ReplyTo    string
}

// ClaimDayInput carries input for the claim orchestrator.
type ClaimDayInput struct {
	Year          int
	Month         int
	Day           int
	PlayerID      string
	SupporterName string
	Note          string
	Phone         string
}

// ClaimDayDeps holds dependencies for ClaimDay.
type ClaimDayDeps struct {
	EntryStore  EntryStore
	PlayerStore PlayerLookupStore
	Notify      *ClaimNotifyDeps // optional
}

// ExecuteClaimDay creates a calendar entry for a free day. The
// existence pre-check gives a friendly conflict answer; the storage
// layer's unique index on the claim key is the real enforcement point,
// so a concurrent writer still cannot double-book a day.
// PRE: Input fields are as submitted by the supporter form
// POST: Entry is persisted with a fresh ID and CreatedAt, or an error
// INVARIANT: No two live entries share (year, month, day)
func ExecuteClaimDay(ctx context.Context, input ClaimDayInput, deps ClaimDayDeps) (entryDomain.Entry, error) {
	e := entryDomain.Entry{
		ID:            uuid.New().String(),
		Year:          input.Year,
		Month:         input.Month,
		Day:           input.Day,
		PlayerID:      input.PlayerID,
		SupporterName: strings.TrimSpace(input.SupporterName),
		Note:          input.Note,
		Phone:         input.Phone,
		PaymentMethod: payment.MethodUnpaid,
		CreatedAt:     time.Now(),
	}
	if err := e.Validate(); err != nil {
		return entryDomain.Entry{}, err
	}

	p, err := deps.PlayerStore.GetByID(ctx, e.PlayerID)
	if err != nil {
		return entryDomain.Entry{}, playerDomain.ErrPlayerNotFound
	}

	// UX fast path; a lost race still fails on the unique index below.
	if _, err := deps.EntryStore.GetByDate(ctx, e.Year, e.Month, e.Day); err == nil {
		return entryDomain.Entry{}, entryDomain.ErrDateClaimed
	}

	if err := deps.EntryStore.Create(ctx, e); err != nil {
		return entryDomain.Entry{}, err
	}

	slog.Info("claim_event", "event", "day_claimed",
		"date", calendar.DateLabel(e.Year, e.Month, e.Day),
		"supporter", e.SupporterName, "player", p.FullName(), "owed", e.Owed())

	if deps.Notify != nil && deps.Notify.Sender != nil && deps.Notify.CoachEmail != "" {
		notifyClaim(ctx, *deps.Notify, e, p)
	}

	return e, nil
}

// notifyClaim sends the coach a heads-up about a new claim. Failures
// are logged and swallowed: the claim has already been persisted.
func notifyClaim(ctx context.Context, n ClaimNotifyDeps, e entryDomain.Entry, p playerDomain.Player) {
	label := calendar.DateLabel(e.Year, e.Month, e.Day)
	body := fmt.Sprintf(
		"<p><strong>%s</strong> claimed <strong>%s</strong> supporting %s.</p><p>Owed: $%d</p>",
		e.SupporterName, label, p.DisplayName(), e.Owed())

	_, err := n.Sender.Send(ctx, email.SendRequest{
		To:      []string{n.CoachEmail},
		From:    n.From,
		ReplyTo: n.ReplyTo,
		Subject: "New date claimed: " + label,
		HTML:    body,
	})
	if err != nil {
		slog.Error("claim_notify_failed", "error", err, "date", label)
	}
}
