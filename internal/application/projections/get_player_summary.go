package projections

import (
	"context"

	"fundraiser/internal/application/listutil"
	"fundraiser/internal/domain/access"
	playerDomain "fundraiser/internal/domain/player"
)

// PinReadStore defines the PIN override read interface for the gated
// projections.
type PinReadStore interface {
	Get(ctx context.Context, playerID string) (string, error)
}

// PlayerGetStore defines the single-player roster read interface.
type PlayerGetStore interface {
	GetByID(ctx context.Context, id string) (playerDomain.Player, error)
	List(ctx context.Context) ([]playerDomain.Player, error)
}

// GetPlayerSummaryQuery carries query parameters. PIN gates the view:
// the override when one is set, the built-in PIN otherwise.
type GetPlayerSummaryQuery struct {
	PlayerID string
	PIN      string
	Params   listutil.ListParams
}

// GetPlayerSummaryResult carries the query result: the player's rows
// plus their totals.
type GetPlayerSummaryResult struct {
	Player playerDomain.Player
	Rows   []EntryRow
	Totals PlayerTotals
}

// GetPlayerSummaryDeps holds dependencies for GetPlayerSummary.
type GetPlayerSummaryDeps struct {
	EntryStore  EntryListStore
	PlayerStore PlayerGetStore
	PinStore    PinReadStore
}

// QueryGetPlayerSummary retrieves one family's view of their player's
// claimed dates, gated by the player's effective PIN.
// PRE: Params come from listutil against EntryListSortColumns
// POST: access.ErrPinMismatch or access.ErrNoPinConfigured on gate
// failure; otherwise rows for this player only, sorted as requested
func QueryGetPlayerSummary(ctx context.Context, query GetPlayerSummaryQuery, deps GetPlayerSummaryDeps) (GetPlayerSummaryResult, error) {
	p, err := deps.PlayerStore.GetByID(ctx, query.PlayerID)
	if err != nil {
		return GetPlayerSummaryResult{}, err
	}
	override, err := deps.PinStore.Get(ctx, query.PlayerID)
	if err != nil {
		return GetPlayerSummaryResult{}, err
	}
	if err := access.CheckPlayerPIN(access.EffectivePIN(override, p.PIN), query.PIN); err != nil {
		return GetPlayerSummaryResult{}, err
	}

	list, err := QueryGetEntryList(ctx, GetEntryListQuery{Params: query.Params}, GetEntryListDeps{
		EntryStore:  deps.EntryStore,
		PlayerStore: deps.PlayerStore,
	})
	if err != nil {
		return GetPlayerSummaryResult{}, err
	}

	totals := PlayerTotals{PlayerID: p.ID, PlayerName: p.FullName()}
	rows := make([]EntryRow, 0)
	for _, row := range list.Rows {
		if row.PlayerID != query.PlayerID {
			continue
		}
		rows = append(rows, row)
		totals.Days++
		totals.DayNumberSum += row.Day
	}

	return GetPlayerSummaryResult{Player: p, Rows: rows, Totals: totals}, nil
}
