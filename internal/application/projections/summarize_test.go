package projections

import (
	"context"
	"testing"
)

// TestQuerySummarizeByPlayer_Totals tests per-player day counts and
// day-number sums.
func TestQuerySummarizeByPlayer_Totals(t *testing.T) {
	deps := SummarizeByPlayerDeps{
		EntryStore:  &mockStores{entries: fixtureEntries()},
		PlayerStore: &mockPlayerReadStore{players: projectionRoster},
	}
	result, err := QuerySummarizeByPlayer(context.Background(), SummarizeByPlayerQuery{}, deps)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Players) != 2 {
		t.Fatalf("expected 2 players with claims, got %d", len(result.Players))
	}

	byID := make(map[string]PlayerTotals)
	grand := 0
	for _, p := range result.Players {
		byID[p.PlayerID] = p
		grand += p.DayNumberSum
	}
	if p1 := byID["p1"]; p1.Days != 2 || p1.DayNumberSum != 32 {
		t.Errorf("p1: expected 2 days summing 32, got %d/%d", p1.Days, p1.DayNumberSum)
	}
	if p2 := byID["p2"]; p2.Days != 2 || p2.DayNumberSum != 27 {
		t.Errorf("p2: expected 2 days summing 27, got %d/%d", p2.Days, p2.DayNumberSum)
	}
	// Partition property: per-player sums add up to the whole board.
	if grand != 12+3+20+24 {
		t.Errorf("expected grand total 59, got %d", grand)
	}
}

// TestQuerySummarizeByPlayer_OmitsZeroPlayers tests that rosterless and
// claimless players produce no rows.
func TestQuerySummarizeByPlayer_OmitsZeroPlayers(t *testing.T) {
	deps := SummarizeByPlayerDeps{
		EntryStore:  &mockStores{entries: fixtureEntries()[:1]},
		PlayerStore: &mockPlayerReadStore{players: projectionRoster},
	}
	result, err := QuerySummarizeByPlayer(context.Background(), SummarizeByPlayerQuery{}, deps)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Players) != 1 || result.Players[0].PlayerID != "p1" {
		t.Fatalf("expected only p1, got %+v", result.Players)
	}
}

// TestQuerySummarizeBySupporter_Grouping tests trimmed exact-name
// grouping and money totals.
func TestQuerySummarizeBySupporter_Grouping(t *testing.T) {
	deps := SummarizeBySupporterDeps{EntryStore: &mockStores{entries: fixtureEntries()}}
	result, err := QuerySummarizeBySupporter(context.Background(), SummarizeBySupporterQuery{}, deps)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Supporters) != 3 {
		t.Fatalf("expected 3 supporters, got %d", len(result.Supporters))
	}

	byName := make(map[string]SupporterTotals)
	for _, s := range result.Supporters {
		byName[s.SupporterName] = s
	}
	sue := byName["Grandma Sue"]
	if sue.Days != 2 || sue.TotalOwed != 32 {
		t.Errorf("sue: expected 2 days owing 32, got %d/%d", sue.Days, sue.TotalOwed)
	}
	if sue.TotalPaid != 17 {
		t.Errorf("sue: expected paid 17, got %v", sue.TotalPaid)
	}
	// Only the partial venmo entry leaves a balance: 20 - 5.
	if sue.Remaining != 15 {
		t.Errorf("sue: expected remaining 15, got %v", sue.Remaining)
	}
	if len(sue.Dates) != 2 {
		t.Errorf("sue: expected 2 dates, got %v", sue.Dates)
	}

	bob := byName["Uncle Bob"]
	if bob.TotalOwed != 3 || bob.TotalPaid != 0 || bob.Remaining != 3 {
		t.Errorf("bob: unexpected totals %+v", bob)
	}
}

// TestQuerySummarizeBySupporter_OverpaidClampsToZero tests that an
// overpayment never produces a negative balance.
func TestQuerySummarizeBySupporter_OverpaidClampsToZero(t *testing.T) {
	entries := fixtureEntries()[:1]
	entries[0].PaymentAmount = 20 // owed 12
	deps := SummarizeBySupporterDeps{EntryStore: &mockStores{entries: entries}}

	result, err := QuerySummarizeBySupporter(context.Background(), SummarizeBySupporterQuery{}, deps)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Supporters[0].Remaining != 0 {
		t.Errorf("expected remaining clamped to 0, got %v", result.Supporters[0].Remaining)
	}
}

// TestQuerySupportersByPlayer tests unique sorted names per player.
func TestQuerySupportersByPlayer(t *testing.T) {
	deps := SupportersByPlayerDeps{EntryStore: &mockStores{entries: fixtureEntries()}}
	result, err := QuerySupportersByPlayer(context.Background(), 0, deps)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p1 := result.Supporters["p1"]
	if len(p1) != 1 || p1[0] != "Grandma Sue" {
		t.Errorf("p1: expected deduplicated [Grandma Sue], got %v", p1)
	}
	p2 := result.Supporters["p2"]
	if len(p2) != 2 || p2[0] != "Uncle Bob" || p2[1] != "aunt carol" {
		t.Errorf("p2: expected sorted unique names, got %v", p2)
	}
}
