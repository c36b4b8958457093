package projections

import (
	"context"
	"sort"

	entryDomain "fundraiser/internal/domain/entry"
	playerDomain "fundraiser/internal/domain/player"
)

// PlayerTotals aggregates one player's claimed days. DayNumberSum is
// both the dollar total owed and the raffle ticket count.
type PlayerTotals struct {
	PlayerID     string
	PlayerName   string
	Days         int
	DayNumberSum int
}

// SummarizeByPlayerQuery carries query parameters.
type SummarizeByPlayerQuery struct {
	Year int // 0 means all years
}

// SummarizeByPlayerResult carries the query result.
type SummarizeByPlayerResult struct {
	Players []PlayerTotals
}

// SummarizeByPlayerDeps holds dependencies for SummarizeByPlayer.
type SummarizeByPlayerDeps struct {
	EntryStore  EntryListStore
	PlayerStore PlayerListStore
}

// QuerySummarizeByPlayer totals claimed days per player. Players with
// no claims are omitted rather than shown as zero rows.
// POST: Sum of all DayNumberSum values equals the sum of every claimed
// day number in scope
func QuerySummarizeByPlayer(ctx context.Context, query SummarizeByPlayerQuery, deps SummarizeByPlayerDeps) (SummarizeByPlayerResult, error) {
	entries, err := deps.EntryStore.List(ctx, query.Year)
	if err != nil {
		return SummarizeByPlayerResult{}, err
	}
	players, err := deps.PlayerStore.List(ctx)
	if err != nil {
		return SummarizeByPlayerResult{}, err
	}

	totals := accumulateByPlayer(entries, players)
	sort.SliceStable(totals, func(i, j int) bool {
		if totals[i].DayNumberSum != totals[j].DayNumberSum {
			return totals[i].DayNumberSum > totals[j].DayNumberSum
		}
		return totals[i].PlayerName < totals[j].PlayerName
	})
	return SummarizeByPlayerResult{Players: totals}, nil
}

func accumulateByPlayer(entries []entryDomain.Entry, players []playerDomain.Player) []PlayerTotals {
	byID := make(map[string]*PlayerTotals)
	order := make([]string, 0)
	for _, e := range entries {
		t, ok := byID[e.PlayerID]
		if !ok {
			t = &PlayerTotals{
				PlayerID:   e.PlayerID,
				PlayerName: playerDomain.NameByID(players, e.PlayerID),
			}
			byID[e.PlayerID] = t
			order = append(order, e.PlayerID)
		}
		t.Days++
		t.DayNumberSum += e.Owed()
	}

	totals := make([]PlayerTotals, 0, len(order))
	for _, id := range order {
		totals = append(totals, *byID[id])
	}
	return totals
}
