package projections

import (
	"context"

	"fundraiser/internal/domain/calendar"
	entryDomain "fundraiser/internal/domain/entry"
	playerDomain "fundraiser/internal/domain/player"
	raffleDomain "fundraiser/internal/domain/raffle"
)

// RaffleReadStore defines the winner read interface for the projections.
type RaffleReadStore interface {
	Get(ctx context.Context, year, month int) (raffleDomain.Winner, bool, error)
}

// GetMonthQuery carries query parameters.
type GetMonthQuery struct {
	Year  int
	Month int // 1-12
}

// DayClaim is the public shape of one claimed day. The supporter's
// phone and note stay private; the calendar shows who and for whom.
type DayClaim struct {
	EntryID       string
	SupporterName string
	PlayerID      string
	PlayerName    string
	IsPaid        bool
	IsFullyPaid   bool
}

// GetMonthResult carries the query result: the grid plus claims keyed
// by day number.
type GetMonthResult struct {
	Year      int
	Month     int
	MonthName string
	Cells     []calendar.Cell
	Claims    map[int]DayClaim
	WinnerDay int // 0 when undrawn
}

// GetMonthDeps holds dependencies for GetMonth.
type GetMonthDeps struct {
	EntryStore  EntryListStore
	PlayerStore PlayerListStore
	RaffleStore RaffleReadStore
}

// QueryGetMonth assembles the public calendar view for one month.
// PRE: Month is 1-12
// POST: Cells form whole weeks; Claims holds at most one claim per day
func QueryGetMonth(ctx context.Context, query GetMonthQuery, deps GetMonthDeps) (GetMonthResult, error) {
	entries, err := deps.EntryStore.List(ctx, query.Year)
	if err != nil {
		return GetMonthResult{}, err
	}
	players, err := deps.PlayerStore.List(ctx)
	if err != nil {
		return GetMonthResult{}, err
	}

	claims := make(map[int]DayClaim)
	for _, e := range entries {
		if e.Month != query.Month {
			continue
		}
		claims[e.Day] = toDayClaim(e, players)
	}

	winner, drawn, err := deps.RaffleStore.Get(ctx, query.Year, query.Month)
	if err != nil {
		return GetMonthResult{}, err
	}
	winnerDay := 0
	if drawn {
		winnerDay = winner.Day
	}

	return GetMonthResult{
		Year:      query.Year,
		Month:     query.Month,
		MonthName: calendar.MonthName(query.Month),
		Cells:     calendar.BuildCells(query.Year, query.Month),
		Claims:    claims,
		WinnerDay: winnerDay,
	}, nil
}

func toDayClaim(e entryDomain.Entry, players []playerDomain.Player) DayClaim {
	state := e.PaymentState()
	return DayClaim{
		EntryID:       e.ID,
		SupporterName: e.SupporterName,
		PlayerID:      e.PlayerID,
		PlayerName:    playerDomain.NameByID(players, e.PlayerID),
		IsPaid:        state.IsPaid,
		IsFullyPaid:   state.IsFullyPaid,
	}
}
