package projections

import (
	"context"
	"net/url"
	"testing"
	"time"

	"fundraiser/internal/application/listutil"
	entryDomain "fundraiser/internal/domain/entry"
	"fundraiser/internal/domain/payment"
	playerDomain "fundraiser/internal/domain/player"
	raffleDomain "fundraiser/internal/domain/raffle"
)

// mockStores bundles read-side fakes for the projection tests.
type mockStores struct {
	entries []entryDomain.Entry
	players []playerDomain.Player
	pins    map[string]string
	winners []raffleDomain.Winner
}

// List implements EntryListStore, returning a date-ordered snapshot the
// way the real store does.
func (m *mockStores) List(_ context.Context, year int) ([]entryDomain.Entry, error) {
	out := make([]entryDomain.Entry, 0, len(m.entries))
	for _, e := range m.entries {
		if year != 0 && e.Year != year {
			continue
		}
		out = append(out, e)
	}
	entryDomain.SortByDate(out)
	return out, nil
}

type mockPlayerReadStore struct{ players []playerDomain.Player }

// List implements PlayerListStore.
func (m *mockPlayerReadStore) List(_ context.Context) ([]playerDomain.Player, error) {
	return m.players, nil
}

// GetByID implements PlayerGetStore.
func (m *mockPlayerReadStore) GetByID(_ context.Context, id string) (playerDomain.Player, error) {
	p, ok := playerDomain.ByID(m.players, id)
	if !ok {
		return playerDomain.Player{}, playerDomain.ErrPlayerNotFound
	}
	return p, nil
}

type mockPinReadStore struct{ pins map[string]string }

// Get implements PinReadStore. Empty string means no override.
func (m *mockPinReadStore) Get(_ context.Context, playerID string) (string, error) {
	return m.pins[playerID], nil
}

type mockRaffleReadStore struct{ winners []raffleDomain.Winner }

// Get implements RaffleReadStore.
func (m *mockRaffleReadStore) Get(_ context.Context, year, month int) (raffleDomain.Winner, bool, error) {
	for _, w := range m.winners {
		if w.Year == year && w.Month == month {
			return w, true, nil
		}
	}
	return raffleDomain.Winner{}, false, nil
}

// List implements RaffleYearStore.
func (m *mockRaffleReadStore) List(_ context.Context, year int) ([]raffleDomain.Winner, error) {
	out := make([]raffleDomain.Winner, 0)
	for _, w := range m.winners {
		if w.Year == year {
			out = append(out, w)
		}
	}
	return out, nil
}

var projectionRoster = []playerDomain.Player{
	{ID: "p1", FirstName: "Avery", LastName: "Brooks", Number: 7, PIN: "1107"},
	{ID: "p2", FirstName: "Jordan", LastName: "Lee", Number: 12},
}

func fixtureEntry(id string, year, month, day int, playerID, supporter string, method payment.Method, amount float64) entryDomain.Entry {
	return entryDomain.Entry{
		ID: id, Year: year, Month: month, Day: day,
		PlayerID: playerID, SupporterName: supporter,
		PaymentMethod: method, PaymentAmount: amount,
		CreatedAt: time.Date(year, time.Month(month), 1, 8, 0, 0, 0, time.UTC),
	}
}

func fixtureEntries() []entryDomain.Entry {
	return []entryDomain.Entry{
		fixtureEntry("e1", 2025, 6, 12, "p1", "Grandma Sue", payment.MethodZelle, 12),
		fixtureEntry("e2", 2025, 6, 3, "p2", "Uncle Bob", payment.MethodUnpaid, 0),
		fixtureEntry("e3", 2025, 6, 20, "p1", "Grandma Sue", payment.MethodVenmo, 5),
		fixtureEntry("e4", 2024, 12, 24, "p2", "aunt carol", payment.MethodVenmo, 24),
	}
}

func listParams(rawQuery string) listutil.ListParams {
	q, _ := url.ParseQuery(rawQuery)
	return listutil.ParseListParams(q, EntryListSortColumns, []string{"year", "paid"})
}

func entryListDeps(entries []entryDomain.Entry) GetEntryListDeps {
	return GetEntryListDeps{
		EntryStore:  &mockStores{entries: entries},
		PlayerStore: &mockPlayerReadStore{players: projectionRoster},
	}
}

// TestQueryGetEntryList_DefaultSort tests date-ascending rows with
// derived labels.
func TestQueryGetEntryList_DefaultSort(t *testing.T) {
	result, err := QueryGetEntryList(context.Background(), GetEntryListQuery{Params: listParams("")}, entryListDeps(fixtureEntries()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Rows) != 4 {
		t.Fatalf("expected 4 rows, got %d", len(result.Rows))
	}
	if result.Rows[0].ID != "e4" || result.Rows[1].ID != "e2" {
		t.Errorf("expected date order e4,e2,e1,e3; got %s,%s", result.Rows[0].ID, result.Rows[1].ID)
	}
	first := result.Rows[1]
	if first.DateLabel != "June 3, 2025" {
		t.Errorf("unexpected date label %q", first.DateLabel)
	}
	if first.PlayerName != "Jordan Lee" {
		t.Errorf("unexpected player name %q", first.PlayerName)
	}
	if first.Payment.Owed != 3 || first.Payment.Label != "Unpaid" {
		t.Errorf("unexpected payment state %+v", first.Payment)
	}
}

// TestQueryGetEntryList_YearFilter tests the year filter.
func TestQueryGetEntryList_YearFilter(t *testing.T) {
	result, err := QueryGetEntryList(context.Background(), GetEntryListQuery{Params: listParams("year=2025")}, entryListDeps(fixtureEntries()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Rows) != 3 {
		t.Fatalf("expected 3 rows for 2025, got %d", len(result.Rows))
	}
	for _, row := range result.Rows {
		if row.Year != 2025 {
			t.Errorf("row %s leaked from year %d", row.ID, row.Year)
		}
	}
}

// TestQueryGetEntryList_PaidFilter tests paid and unpaid filtering.
func TestQueryGetEntryList_PaidFilter(t *testing.T) {
	deps := entryListDeps(fixtureEntries())

	paid, err := QueryGetEntryList(context.Background(), GetEntryListQuery{Params: listParams("paid=paid")}, deps)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(paid.Rows) != 3 {
		t.Fatalf("expected 3 paid rows, got %d", len(paid.Rows))
	}

	unpaid, err := QueryGetEntryList(context.Background(), GetEntryListQuery{Params: listParams("paid=unpaid")}, deps)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(unpaid.Rows) != 1 || unpaid.Rows[0].ID != "e2" {
		t.Fatalf("expected only e2 unpaid, got %+v", unpaid.Rows)
	}
}

// TestQueryGetEntryList_SupporterSort tests case-insensitive supporter
// sorting in both directions.
func TestQueryGetEntryList_SupporterSort(t *testing.T) {
	deps := entryListDeps(fixtureEntries())

	asc, err := QueryGetEntryList(context.Background(), GetEntryListQuery{Params: listParams("sort=supporter")}, deps)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if asc.Rows[0].SupporterName != "aunt carol" {
		t.Errorf("expected aunt carol first (case-insensitive), got %q", asc.Rows[0].SupporterName)
	}

	desc, err := QueryGetEntryList(context.Background(), GetEntryListQuery{Params: listParams("sort=supporter&dir=desc")}, deps)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if desc.Rows[0].SupporterName != "Uncle Bob" {
		t.Errorf("expected Uncle Bob first descending, got %q", desc.Rows[0].SupporterName)
	}
}

// TestQueryGetEntryList_StatusSortStable tests that status sorting
// keeps date order within each status band.
func TestQueryGetEntryList_StatusSortStable(t *testing.T) {
	result, err := QueryGetEntryList(context.Background(), GetEntryListQuery{Params: listParams("sort=status")}, entryListDeps(fixtureEntries()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// unpaid (e2), partial (e3), full (e4 then e1 by date)
	want := []string{"e2", "e3", "e4", "e1"}
	for i, id := range want {
		if result.Rows[i].ID != id {
			t.Fatalf("position %d: expected %s, got %s", i, id, result.Rows[i].ID)
		}
	}
}
