package projections

import (
	"context"
	"strings"

	"fundraiser/internal/domain/access"
	entryDomain "fundraiser/internal/domain/entry"
)

// GetSupporterDetailQuery carries query parameters. Code may be the
// relevant player's effective PIN or the last four digits of a phone
// number on one of the supporter's entries.
type GetSupporterDetailQuery struct {
	SupporterName string
	PlayerID      string
	Code          string
	Year          int // 0 means all years
}

// GetSupporterDetailResult carries the query result.
type GetSupporterDetailResult struct {
	Totals SupporterTotals
	Rows   []EntryRow
}

// GetSupporterDetailDeps holds dependencies for GetSupporterDetail.
type GetSupporterDetailDeps struct {
	EntryStore  EntryListStore
	PlayerStore PlayerGetStore
	PinStore    PinReadStore
}

// QueryGetSupporterDetail retrieves one supporter's claims, gated by a
// shared family secret.
// POST: entry.ErrEntryNotFound when the supporter has no claims;
// access errors on gate failure; otherwise rows in date order
func QueryGetSupporterDetail(ctx context.Context, query GetSupporterDetailQuery, deps GetSupporterDetailDeps) (GetSupporterDetailResult, error) {
	entries, err := deps.EntryStore.List(ctx, query.Year)
	if err != nil {
		return GetSupporterDetailResult{}, err
	}

	name := strings.TrimSpace(query.SupporterName)
	mine := make([]entryDomain.Entry, 0)
	phones := make([]string, 0)
	for _, e := range entries {
		if strings.TrimSpace(e.SupporterName) != name {
			continue
		}
		mine = append(mine, e)
		if e.Phone != "" {
			phones = append(phones, e.Phone)
		}
	}
	if len(mine) == 0 {
		return GetSupporterDetailResult{}, entryDomain.ErrEntryNotFound
	}

	effective, err := effectivePlayerPIN(ctx, query.PlayerID, deps)
	if err != nil {
		return GetSupporterDetailResult{}, err
	}
	if err := access.CheckSupporterSecret(effective, phones, query.Code); err != nil {
		return GetSupporterDetailResult{}, err
	}

	players, err := deps.PlayerStore.List(ctx)
	if err != nil {
		return GetSupporterDetailResult{}, err
	}

	entryDomain.SortByDate(mine)
	totals := SupporterTotals{SupporterName: name}
	rows := make([]EntryRow, 0, len(mine))
	for _, e := range mine {
		rows = append(rows, toEntryRow(e, players))
		totals.Dates = append(totals.Dates, rows[len(rows)-1].DateLabel)
		totals.Days++
		totals.TotalOwed += e.Owed()
		totals.TotalPaid += e.PaymentState().Amount
		if remaining := float64(e.Owed()) - e.PaymentState().Amount; remaining > 0 {
			totals.Remaining += remaining
		}
	}

	return GetSupporterDetailResult{Totals: totals, Rows: rows}, nil
}

// effectivePlayerPIN resolves the gate PIN for the named player, or ""
// when no player is named or no PIN exists.
func effectivePlayerPIN(ctx context.Context, playerID string, deps GetSupporterDetailDeps) (string, error) {
	if playerID == "" {
		return "", nil
	}
	p, err := deps.PlayerStore.GetByID(ctx, playerID)
	if err != nil {
		return "", err
	}
	override, err := deps.PinStore.Get(ctx, playerID)
	if err != nil {
		return "", err
	}
	return access.EffectivePIN(override, p.PIN), nil
}
