package web

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// TestEntryByID_RequiresAdmin tests the write gate on entry mutations.
func TestEntryByID_RequiresAdmin(t *testing.T) {
	_, entries := setupTestStores()
	seedClaim(entries, "e1", 2025, 6, 12, "p1", "Grandma Sue", "")

	req := jsonRequest("PATCH", "/api/entries/e1", `{"Note":"hi"}`)
	req.SetPathValue("id", "e1")
	rec := httptest.NewRecorder()
	handleEntryByID(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("got status %d, want 401", rec.Code)
	}
	if entries.entries["e1"].Note != "" {
		t.Error("unauthenticated PATCH must not write")
	}
}

// TestEntryByID_Patch tests an admin field edit.
func TestEntryByID_Patch(t *testing.T) {
	_, entries := setupTestStores()
	seedClaim(entries, "e1", 2025, 6, 12, "p1", "Grandma Sue", "")

	req := asAdmin(jsonRequest("PATCH", "/api/entries/e1",
		`{"Note":"See you there","PaymentMethod":"venmo","PaymentAmount":5}`))
	req.SetPathValue("id", "e1")
	rec := httptest.NewRecorder()
	handleEntryByID(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("got status %d, want 200. Body: %s", rec.Code, rec.Body.String())
	}
	e := entries.entries["e1"]
	if e.Note != "See you there" || e.PaymentAmount != 5 {
		t.Errorf("patch not applied: %+v", e)
	}
	if !e.SameDate(2025, 6, 12) {
		t.Error("claim key changed on edit")
	}
	if !strings.Contains(rec.Body.String(), "partial") {
		t.Errorf("expected partial payment label in response: %s", rec.Body.String())
	}
}

// TestEntryByID_Delete tests admin clearing a day.
func TestEntryByID_Delete(t *testing.T) {
	_, entries := setupTestStores()
	seedClaim(entries, "e1", 2025, 6, 12, "p1", "Grandma Sue", "")

	req := asAdmin(httptest.NewRequest("DELETE", "/api/entries/e1", nil))
	req.SetPathValue("id", "e1")
	rec := httptest.NewRecorder()
	handleEntryByID(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("got status %d, want 204", rec.Code)
	}
	if len(entries.entries) != 0 {
		t.Error("entry not deleted")
	}

	// Deleting again is a 404.
	req = asAdmin(httptest.NewRequest("DELETE", "/api/entries/e1", nil))
	req.SetPathValue("id", "e1")
	rec = httptest.NewRecorder()
	handleEntryByID(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Errorf("got status %d, want 404", rec.Code)
	}
}

// TestQuickPaid_Toggle tests the one-click payment round trip.
func TestQuickPaid_Toggle(t *testing.T) {
	_, entries := setupTestStores()
	seedClaim(entries, "e1", 2025, 6, 12, "p1", "Grandma Sue", "")

	toggle := func() *httptest.ResponseRecorder {
		req := asAdmin(jsonRequest("POST", "/api/entries/e1/quick-paid", `{"Channel":"zelle"}`))
		req.SetPathValue("id", "e1")
		rec := httptest.NewRecorder()
		handleQuickPaid(rec, req)
		return rec
	}

	rec := toggle()
	if rec.Code != http.StatusOK {
		t.Fatalf("got status %d, want 200. Body: %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Payment struct {
			IsFullyPaid bool
			Amount      float64
		}
	}
	json.Unmarshal(rec.Body.Bytes(), &resp)
	if !resp.Payment.IsFullyPaid || resp.Payment.Amount != 12 {
		t.Errorf("expected full payment of 12, got %+v", resp.Payment)
	}

	rec = toggle()
	json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp.Payment.IsFullyPaid || resp.Payment.Amount != 0 {
		t.Errorf("expected revert to unpaid, got %+v", resp.Payment)
	}
}

// TestQuickPaid_BadChannel tests rejecting a non-channel value.
func TestQuickPaid_BadChannel(t *testing.T) {
	_, entries := setupTestStores()
	seedClaim(entries, "e1", 2025, 6, 12, "p1", "Grandma Sue", "")

	req := asAdmin(jsonRequest("POST", "/api/entries/e1/quick-paid", `{"Channel":"cash"}`))
	req.SetPathValue("id", "e1")
	rec := httptest.NewRecorder()
	handleQuickPaid(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("got status %d, want 400", rec.Code)
	}
}

// TestRaffle_SetAndClear tests PUT and DELETE on the raffle route.
func TestRaffle_SetAndClear(t *testing.T) {
	s, _ := setupTestStores()

	req := asAdmin(jsonRequest("PUT", "/api/admin/raffle/6?year=2025", `{"Day":17}`))
	req.SetPathValue("month", "6")
	rec := httptest.NewRecorder()
	handleRaffle(rec, req)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("PUT: got status %d, want 204. Body: %s", rec.Code, rec.Body.String())
	}
	if w, ok, _ := s.RaffleStore.Get(context.Background(), 2025, 6); !ok || w.Day != 17 {
		t.Fatalf("winner not stored: %+v ok=%v", w, ok)
	}

	// Out-of-range day is rejected.
	req = asAdmin(jsonRequest("PUT", "/api/admin/raffle/6?year=2025", `{"Day":31}`))
	req.SetPathValue("month", "6")
	rec = httptest.NewRecorder()
	handleRaffle(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("bad day: got status %d, want 400", rec.Code)
	}

	req = asAdmin(httptest.NewRequest("DELETE", "/api/admin/raffle/6?year=2025", nil))
	req.SetPathValue("month", "6")
	rec = httptest.NewRecorder()
	handleRaffle(rec, req)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("DELETE: got status %d, want 204", rec.Code)
	}
	if _, ok, _ := s.RaffleStore.Get(context.Background(), 2025, 6); ok {
		t.Error("winner not cleared")
	}
}

// TestAdminPins tests setting and removing a PIN override.
func TestAdminPins(t *testing.T) {
	s, _ := setupTestStores()

	put := func(playerID, body string) *httptest.ResponseRecorder {
		req := asAdmin(jsonRequest("PUT", "/api/admin/pins/"+playerID, body))
		req.SetPathValue("playerId", playerID)
		rec := httptest.NewRecorder()
		handleAdminPins(rec, req)
		return rec
	}

	if rec := put("p1", `{"PIN":"0420"}`); rec.Code != http.StatusNoContent {
		t.Fatalf("set: got status %d, want 204. Body: %s", rec.Code, rec.Body.String())
	}
	if pin, _ := s.PinStore.Get(context.Background(), "p1"); pin != "0420" {
		t.Errorf("override not stored: %q", pin)
	}

	if rec := put("p1", `{"PIN":"12ab"}`); rec.Code != http.StatusBadRequest {
		t.Errorf("bad format: got status %d, want 400", rec.Code)
	}
	if rec := put("p99", `{"PIN":"0420"}`); rec.Code != http.StatusNotFound {
		t.Errorf("unknown player: got status %d, want 404", rec.Code)
	}

	if rec := put("p1", `{"PIN":""}`); rec.Code != http.StatusNoContent {
		t.Fatalf("remove: got status %d, want 204", rec.Code)
	}
	if pin, _ := s.PinStore.Get(context.Background(), "p1"); pin != "" {
		t.Errorf("override not removed: %q", pin)
	}
}

// TestAdminPinList tests the override roster: IDs only, admin only.
func TestAdminPinList(t *testing.T) {
	s, _ := setupTestStores()
	s.PinStore.Set(context.Background(), "p2", "0420")
	s.PinStore.Set(context.Background(), "p1", "9999")

	req := httptest.NewRequest("GET", "/api/admin/pins", nil)
	rec := httptest.NewRecorder()
	handleAdminPinList(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("unauthenticated: got status %d, want 401", rec.Code)
	}

	rec = httptest.NewRecorder()
	handleAdminPinList(rec, asAdmin(httptest.NewRequest("GET", "/api/admin/pins", nil)))
	if rec.Code != http.StatusOK {
		t.Fatalf("got status %d, want 200. Body: %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		PlayerIDs []string
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response JSON: %v", err)
	}
	if len(resp.PlayerIDs) != 2 || resp.PlayerIDs[0] != "p1" || resp.PlayerIDs[1] != "p2" {
		t.Errorf("player IDs = %v, want sorted [p1 p2]", resp.PlayerIDs)
	}
	if strings.Contains(rec.Body.String(), "0420") || strings.Contains(rec.Body.String(), "9999") {
		t.Error("pin list leaked override values")
	}
}

// TestExportCSV tests the admin CSV download.
func TestExportCSV(t *testing.T) {
	_, entries := setupTestStores()
	seedClaim(entries, "e1", 2025, 6, 12, "p1", "Grandma Sue", "555-0142")

	rec := httptest.NewRecorder()
	handleExportCSV(rec, httptest.NewRequest("GET", "/api/admin/export.csv", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("unauthenticated: got status %d, want 401", rec.Code)
	}

	rec = httptest.NewRecorder()
	handleExportCSV(rec, asAdmin(httptest.NewRequest("GET", "/api/admin/export.csv", nil)))
	if rec.Code != http.StatusOK {
		t.Fatalf("got status %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "text/csv" {
		t.Errorf("got content type %q, want text/csv", ct)
	}
	body := rec.Body.String()
	if !strings.HasPrefix(body, "Date,Supporter,Player,") {
		t.Errorf("missing CSV header: %q", body)
	}
	if !strings.Contains(body, `"June 12, 2025"`) {
		t.Errorf("date label not quoted: %q", body)
	}
}

// TestAdminSupporters tests the supporter money rollup.
func TestAdminSupporters(t *testing.T) {
	_, entries := setupTestStores()
	seedClaim(entries, "e1", 2025, 6, 12, "p1", "Grandma Sue", "")
	seedClaim(entries, "e2", 2025, 6, 20, "p1", "Grandma Sue", "")

	rec := httptest.NewRecorder()
	handleAdminSupporters(rec, asAdmin(httptest.NewRequest("GET", "/api/admin/supporters", nil)))
	if rec.Code != http.StatusOK {
		t.Fatalf("got status %d, want 200", rec.Code)
	}
	var resp []struct {
		SupporterName string
		Days          int
		TotalOwed     int
		Remaining     float64
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response JSON: %v", err)
	}
	if len(resp) != 1 || resp[0].Days != 2 || resp[0].TotalOwed != 32 || resp[0].Remaining != 32 {
		t.Errorf("unexpected rollup %+v", resp)
	}
}
