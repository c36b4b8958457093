package projections

import (
	"context"

	"fundraiser/internal/domain/calendar"
	raffleDomain "fundraiser/internal/domain/raffle"
)

// RaffleYearStore reads every winner drawn in a year.
type RaffleYearStore interface {
	List(ctx context.Context, year int) ([]raffleDomain.Winner, error)
}

// MonthOverview is one month tile in the year grid.
type MonthOverview struct {
	Month       int
	MonthName   string
	Days        int
	ClaimedDays int
	WinnerDay   int // 0 when undrawn
}

// GetYearOverviewQuery carries input for GetYearOverview.
type GetYearOverviewQuery struct {
	Year int
}

// GetYearOverviewDeps holds dependencies for GetYearOverview.
type GetYearOverviewDeps struct {
	EntryStore  EntryListStore
	RaffleStore RaffleYearStore
}

// GetYearOverviewResult carries all twelve month tiles.
type GetYearOverviewResult struct {
	Year   int
	Months []MonthOverview
}

// QueryGetYearOverview builds the twelve-month grid: how many days each
// month has claimed and which day won its drawing.
func QueryGetYearOverview(ctx context.Context, query GetYearOverviewQuery, deps GetYearOverviewDeps) (GetYearOverviewResult, error) {
	entries, err := deps.EntryStore.List(ctx, query.Year)
	if err != nil {
		return GetYearOverviewResult{}, err
	}
	winners, err := deps.RaffleStore.List(ctx, query.Year)
	if err != nil {
		return GetYearOverviewResult{}, err
	}

	claimed := make(map[int]int)
	for _, e := range entries {
		claimed[e.Month]++
	}

	result := GetYearOverviewResult{Year: query.Year, Months: make([]MonthOverview, 0, 12)}
	for m := 1; m <= 12; m++ {
		result.Months = append(result.Months, MonthOverview{
			Month:       m,
			MonthName:   calendar.MonthName(m),
			Days:        calendar.DaysInMonth(query.Year, m),
			ClaimedDays: claimed[m],
			WinnerDay:   raffleDomain.DayFor(winners, query.Year, m),
		})
	}
	return result, nil
}
