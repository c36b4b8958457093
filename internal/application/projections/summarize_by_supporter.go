package projections

import (
	"context"
	"sort"
	"strings"

	"fundraiser/internal/domain/calendar"
)

// SupporterTotals aggregates the claims made under one supporter name.
// Grouping is by trimmed exact name: "Grandma Sue" and "grandma sue"
// are different supporters, on purpose.
type SupporterTotals struct {
	SupporterName string
	Dates         []string // short labels, date order
	Days          int
	TotalOwed     int
	TotalPaid     float64
	Remaining     float64
}

// SummarizeBySupporterQuery carries query parameters.
type SummarizeBySupporterQuery struct {
	Year int // 0 means all years
}

// SummarizeBySupporterResult carries the query result.
type SummarizeBySupporterResult struct {
	Supporters []SupporterTotals
}

// SummarizeBySupporterDeps holds dependencies for SummarizeBySupporter.
type SummarizeBySupporterDeps struct {
	EntryStore EntryListStore
}

// QuerySummarizeBySupporter totals claims per supporter name.
// POST: Remaining is never negative, even for overpaid entries
func QuerySummarizeBySupporter(ctx context.Context, query SummarizeBySupporterQuery, deps SummarizeBySupporterDeps) (SummarizeBySupporterResult, error) {
	entries, err := deps.EntryStore.List(ctx, query.Year)
	if err != nil {
		return SummarizeBySupporterResult{}, err
	}

	byName := make(map[string]*SupporterTotals)
	order := make([]string, 0)
	for _, e := range entries {
		name := strings.TrimSpace(e.SupporterName)
		t, ok := byName[name]
		if !ok {
			t = &SupporterTotals{SupporterName: name}
			byName[name] = t
			order = append(order, name)
		}
		t.Dates = append(t.Dates, calendar.ShortLabel(e.Month, e.Day))
		t.Days++
		t.TotalOwed += e.Owed()
		t.TotalPaid += e.PaymentState().Amount
		remaining := float64(e.Owed()) - e.PaymentState().Amount
		if remaining > 0 {
			t.Remaining += remaining
		}
	}

	supporters := make([]SupporterTotals, 0, len(order))
	for _, name := range order {
		supporters = append(supporters, *byName[name])
	}
	sort.SliceStable(supporters, func(i, j int) bool {
		return strings.ToLower(supporters[i].SupporterName) < strings.ToLower(supporters[j].SupporterName)
	})
	return SummarizeBySupporterResult{Supporters: supporters}, nil
}

// SupportersByPlayerResult carries unique supporter names per player.
type SupportersByPlayerResult struct {
	Supporters map[string][]string // player ID -> sorted unique names
}

// SupportersByPlayerDeps holds dependencies for SupportersByPlayer.
type SupportersByPlayerDeps struct {
	EntryStore EntryListStore
}

// QuerySupportersByPlayer lists each player's unique supporter names.
// POST: Names within a player are sorted and deduplicated
func QuerySupportersByPlayer(ctx context.Context, year int, deps SupportersByPlayerDeps) (SupportersByPlayerResult, error) {
	entries, err := deps.EntryStore.List(ctx, year)
	if err != nil {
		return SupportersByPlayerResult{}, err
	}

	seen := make(map[string]map[string]bool)
	for _, e := range entries {
		if seen[e.PlayerID] == nil {
			seen[e.PlayerID] = make(map[string]bool)
		}
		seen[e.PlayerID][strings.TrimSpace(e.SupporterName)] = true
	}

	result := SupportersByPlayerResult{Supporters: make(map[string][]string, len(seen))}
	for playerID, names := range seen {
		list := make([]string, 0, len(names))
		for name := range names {
			list = append(list, name)
		}
		sort.Strings(list)
		result.Supporters[playerID] = list
	}
	return result, nil
}
