package projections

import (
	"context"
	"sort"
	"strings"

	"fundraiser/internal/application/listutil"
	"fundraiser/internal/domain/calendar"
	entryDomain "fundraiser/internal/domain/entry"
	"fundraiser/internal/domain/payment"
	playerDomain "fundraiser/internal/domain/player"
)

// EntryListStore defines the entry read interface for the list projections.
type EntryListStore interface {
	List(ctx context.Context, year int) ([]entryDomain.Entry, error)
}

// PlayerListStore defines the roster read interface for the projections.
type PlayerListStore interface {
	List(ctx context.Context) ([]playerDomain.Player, error)
}

// Paid filter values for the entry list.
const (
	PaidFilterAll    = "all"
	PaidFilterPaid   = "paid"
	PaidFilterUnpaid = "unpaid"
)

// EntryListSortColumns are the sortable columns of the admin entry list.
var EntryListSortColumns = []string{"date", "supporter", "status"}

// GetEntryListQuery carries query parameters.
type GetEntryListQuery struct {
	Params listutil.ListParams
}

// EntryRow is one claimed date flattened for display.
type EntryRow struct {
	ID            string
	Year          int
	Month         int
	Day           int
	DateLabel     string
	SupporterName string
	PlayerID      string
	PlayerName    string
	Note          string
	Phone         string
	Payment       payment.State
	CreatedAt     string
}

// GetEntryListResult carries the query result.
type GetEntryListResult struct {
	Rows []EntryRow
}

// GetEntryListDeps holds dependencies for GetEntryList.
type GetEntryListDeps struct {
	EntryStore  EntryListStore
	PlayerStore PlayerListStore
}

// QueryGetEntryList retrieves the flat admin view of claimed dates.
// PRE: Params come from listutil against EntryListSortColumns
// POST: Rows are filtered by year/paid and sorted as requested
// INVARIANT: Equal sort keys keep date order (stable sort over a
// date-ordered snapshot)
func QueryGetEntryList(ctx context.Context, query GetEntryListQuery, deps GetEntryListDeps) (GetEntryListResult, error) {
	year := query.Params.IntFilter("year")
	entries, err := deps.EntryStore.List(ctx, year)
	if err != nil {
		return GetEntryListResult{}, err
	}
	players, err := deps.PlayerStore.List(ctx)
	if err != nil {
		return GetEntryListResult{}, err
	}

	paidFilter := query.Params.Filters["paid"]
	rows := make([]EntryRow, 0, len(entries))
	for _, e := range entries {
		state := e.PaymentState()
		switch paidFilter {
		case PaidFilterPaid:
			if !state.IsPaid {
				continue
			}
		case PaidFilterUnpaid:
			if state.IsPaid {
				continue
			}
		}
		rows = append(rows, toEntryRow(e, players))
	}

	sortEntryRows(rows, query.Params.SortParams)
	return GetEntryListResult{Rows: rows}, nil
}

func toEntryRow(e entryDomain.Entry, players []playerDomain.Player) EntryRow {
	return EntryRow{
		ID:            e.ID,
		Year:          e.Year,
		Month:         e.Month,
		Day:           e.Day,
		DateLabel:     calendar.DateLabel(e.Year, e.Month, e.Day),
		SupporterName: e.SupporterName,
		PlayerID:      e.PlayerID,
		PlayerName:    playerDomain.NameByID(players, e.PlayerID),
		Note:          e.Note,
		Phone:         e.Phone,
		Payment:       e.PaymentState(),
		CreatedAt:     e.CreatedAt.Format("2006-01-02 15:04"),
	}
}

// sortEntryRows orders rows by the requested column. The store snapshot
// arrives date-ordered, so a stable sort keeps date order among ties.
func sortEntryRows(rows []EntryRow, params listutil.SortParams) {
	var less func(a, b EntryRow) bool
	switch params.Sort {
	case "supporter":
		less = func(a, b EntryRow) bool {
			return strings.ToLower(a.SupporterName) < strings.ToLower(b.SupporterName)
		}
	case "status":
		less = func(a, b EntryRow) bool {
			return statusRank(a.Payment) < statusRank(b.Payment)
		}
	case "date", "":
		less = func(a, b EntryRow) bool {
			if a.Year != b.Year {
				return a.Year < b.Year
			}
			if a.Month != b.Month {
				return a.Month < b.Month
			}
			return a.Day < b.Day
		}
	default:
		return
	}
	if params.Descending() {
		inner := less
		less = func(a, b EntryRow) bool { return inner(b, a) }
	}
	sort.SliceStable(rows, func(i, j int) bool { return less(rows[i], rows[j]) })
}

// statusRank orders unpaid before partial before fully paid.
func statusRank(s payment.State) int {
	switch {
	case !s.IsPaid:
		return 0
	case !s.IsFullyPaid:
		return 1
	default:
		return 2
	}
}
