package web

import (
	"log/slog"
	"net/http"
	"sort"
	"strconv"

	"fundraiser/internal/adapters/http/middleware"
	"fundraiser/internal/application/orchestrators"
	"fundraiser/internal/application/projections"
	entryDomain "fundraiser/internal/domain/entry"
	"fundraiser/internal/domain/export"
	"fundraiser/internal/domain/payment"
)

// handleAdminLogin handles POST /api/admin/login: passphrase in,
// session cookie out. Logout is DELETE on the same path.
func handleAdminLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method == "DELETE" {
		if token := middleware.SessionToken(r); token != "" {
			sessions.Delete(token)
		}
		middleware.ClearSessionCookie(w)
		w.WriteHeader(http.StatusNoContent)
		return
	}
	if r.Method != "POST" {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	var input struct {
		Passphrase string `json:"Passphrase"`
	}
	if err := strictDecode(r, &input); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if err := gate.CheckAdmin(input.Passphrase); err != nil {
		slog.Warn("auth_denied", "path", r.URL.Path, "reason", "bad passphrase")
		domainError(w, err)
		return
	}

	token, err := sessions.Create()
	if err != nil {
		internalError(w, err)
		return
	}
	middleware.SetSessionCookie(w, token)
	slog.Info("access_event", "event", "admin_unlocked")
	w.WriteHeader(http.StatusNoContent)
}

// handleEntryByID handles PATCH and DELETE for /api/entries/{id}.
func handleEntryByID(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}
	id := r.PathValue("id")
	ctx := r.Context()

	if r.Method == "PATCH" {
		var input struct {
			PlayerID      *string  `json:"PlayerID"`
			SupporterName *string  `json:"SupporterName"`
			Note          *string  `json:"Note"`
			Phone         *string  `json:"Phone"`
			PaymentMethod *string  `json:"PaymentMethod"`
			PaymentAmount *float64 `json:"PaymentAmount"`
		}
		if err := strictDecode(r, &input); err != nil {
			http.Error(w, "invalid JSON", http.StatusBadRequest)
			return
		}
		patch := entryDomain.Patch{
			PlayerID:      input.PlayerID,
			SupporterName: input.SupporterName,
			Note:          input.Note,
			Phone:         input.Phone,
			PaymentAmount: input.PaymentAmount,
		}
		if input.PaymentMethod != nil {
			m := payment.ParseMethod(*input.PaymentMethod)
			patch.PaymentMethod = &m
		}
		e, err := orchestrators.ExecuteEditEntry(ctx, orchestrators.EditEntryInput{ID: id, Patch: patch}, orchestrators.EditEntryDeps{
			EntryStore:  stores.EntryStore,
			PlayerStore: stores.PlayerStore,
		})
		if err != nil {
			domainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, struct {
			ID      string
			Payment payment.State
		}{e.ID, e.PaymentState()})
		return
	}

	if r.Method == "DELETE" {
		if err := orchestrators.ExecuteClearDay(ctx, id, orchestrators.ClearDayDeps{
			EntryStore: stores.EntryStore,
		}); err != nil {
			domainError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
		return
	}

	w.WriteHeader(http.StatusMethodNotAllowed)
}

// handleQuickPaid handles POST /api/entries/{id}/quick-paid: the
// one-click full-payment toggle for a channel.
func handleQuickPaid(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}
	if !requireAdmin(w, r) {
		return
	}
	var input struct {
		Channel string `json:"Channel"`
	}
	if err := strictDecode(r, &input); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	e, err := orchestrators.ExecuteQuickMarkPaid(r.Context(), orchestrators.QuickMarkPaidInput{
		ID:      r.PathValue("id"),
		Channel: payment.Method(input.Channel),
	}, orchestrators.QuickMarkPaidDeps{EntryStore: stores.EntryStore})
	if err != nil {
		domainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, struct {
		ID      string
		Payment payment.State
	}{e.ID, e.PaymentState()})
}

// handleExportCSV handles GET /api/admin/export.csv.
func handleExportCSV(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}
	if !requireAdmin(w, r) {
		return
	}
	ctx := r.Context()
	year, _ := strconv.Atoi(r.URL.Query().Get("year"))

	entries, err := stores.EntryStore.List(ctx, year)
	if err != nil {
		internalError(w, err)
		return
	}
	players, err := stores.PlayerStore.List(ctx)
	if err != nil {
		internalError(w, err)
		return
	}
	data, err := export.EntriesCSV(entries, players)
	if err != nil {
		internalError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="fundraiser-entries.csv"`)
	w.Write(data)
	slog.Info("export_event", "event", "csv_exported", "rows", len(entries))
}

// handleRaffle handles PUT and DELETE for /api/admin/raffle/{month}.
// Year comes from the query string, defaulting to the current year.
func handleRaffle(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}
	month, err := strconv.Atoi(r.PathValue("month"))
	if err != nil || month < 1 || month > 12 {
		http.Error(w, "month must be 1-12", http.StatusBadRequest)
		return
	}
	year := timeNow().Year()
	if y := r.URL.Query().Get("year"); y != "" {
		year, err = strconv.Atoi(y)
		if err != nil {
			http.Error(w, "invalid year", http.StatusBadRequest)
			return
		}
	}

	day := 0
	switch r.Method {
	case "PUT":
		var input struct {
			Day int `json:"Day"`
		}
		if err := strictDecode(r, &input); err != nil {
			http.Error(w, "invalid JSON", http.StatusBadRequest)
			return
		}
		day = input.Day
		if day == 0 {
			http.Error(w, "Day is required; use DELETE to clear", http.StatusBadRequest)
			return
		}
	case "DELETE":
		// day stays 0, which clears the month
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	if err := orchestrators.ExecuteSetRaffleWinner(r.Context(), orchestrators.SetRaffleWinnerInput{
		Year: year, Month: month, Day: day,
	}, orchestrators.SetRaffleWinnerDeps{RaffleStore: stores.RaffleStore}); err != nil {
		domainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleAdminPins handles PUT /api/admin/pins/{playerId}. An empty PIN
// removes the override.
func handleAdminPins(w http.ResponseWriter, r *http.Request) {
	if r.Method != "PUT" {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}
	if !requireAdmin(w, r) {
		return
	}
	var input struct {
		PIN string `json:"PIN"`
	}
	if err := strictDecode(r, &input); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if err := orchestrators.ExecuteSetPlayerPin(r.Context(), orchestrators.SetPlayerPinInput{
		PlayerID: r.PathValue("playerId"),
		PIN:      input.PIN,
	}, orchestrators.SetPlayerPinDeps{
		PinStore:    stores.PinStore,
		PlayerStore: stores.PlayerStore,
	}); err != nil {
		domainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleAdminPinList handles GET /api/admin/pins: which players have a
// coach-set override. Only IDs are listed; PIN values stay server-side.
func handleAdminPinList(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}
	if !requireAdmin(w, r) {
		return
	}
	overrides, err := stores.PinStore.All(r.Context())
	if err != nil {
		internalError(w, err)
		return
	}
	ids := make([]string, 0, len(overrides))
	for id := range overrides {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	writeJSON(w, http.StatusOK, struct {
		PlayerIDs []string
	}{ids})
}

// handleAdminSupporters handles GET /api/admin/supporters: money totals
// grouped by supporter name.
func handleAdminSupporters(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}
	if !requireAdmin(w, r) {
		return
	}
	year, _ := strconv.Atoi(r.URL.Query().Get("year"))
	result, err := projections.QuerySummarizeBySupporter(r.Context(), projections.SummarizeBySupporterQuery{Year: year}, projections.SummarizeBySupporterDeps{
		EntryStore: stores.EntryStore,
	})
	if err != nil {
		internalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result.Supporters)
}
