package web

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/yuin/goldmark"
	goldmarkHTML "github.com/yuin/goldmark/renderer/html"

	"fundraiser/internal/adapters/http/middleware"
	"fundraiser/internal/application/listutil"
	"fundraiser/internal/application/orchestrators"
	"fundraiser/internal/application/projections"
	"fundraiser/internal/domain/access"
	"fundraiser/internal/domain/calendar"
	announcementDomain "fundraiser/internal/domain/announcement"
	entryDomain "fundraiser/internal/domain/entry"
	"fundraiser/internal/domain/payment"
	playerDomain "fundraiser/internal/domain/player"
	raffleDomain "fundraiser/internal/domain/raffle"
)

// timeNow is a variable for testability.
var timeNow = time.Now

// mdRenderer is a goldmark instance configured for safe HTML output.
// Raw HTML in markdown input is escaped (WithUnsafe is NOT set).
var mdRenderer = goldmark.New(
	goldmark.WithRendererOptions(
		goldmarkHTML.WithHardWraps(),
	),
)

// internalError logs the real error and returns a generic message to
// the client.
func internalError(w http.ResponseWriter, err error) {
	slog.Error("internal_error", "error", err.Error())
	http.Error(w, "internal server error", http.StatusInternalServerError)
}

// strictDecode decodes JSON from the request body, rejecting unknown fields.
func strictDecode(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// domainError maps domain sentinels onto HTTP statuses. Anything
// unrecognized is treated as a store failure.
func domainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, entryDomain.ErrDateClaimed):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, entryDomain.ErrEntryNotFound),
		errors.Is(err, playerDomain.ErrPlayerNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, access.ErrPinMismatch),
		errors.Is(err, access.ErrBadPassphrase):
		http.Error(w, err.Error(), http.StatusUnauthorized)
	case errors.Is(err, access.ErrNoPinConfigured):
		http.Error(w, err.Error(), http.StatusForbidden)
	case errors.Is(err, entryDomain.ErrEmptySupporter),
		errors.Is(err, entryDomain.ErrNoPlayer),
		errors.Is(err, entryDomain.ErrBadDate),
		errors.Is(err, entryDomain.ErrBadAmount),
		errors.Is(err, access.ErrBadPinFormat),
		errors.Is(err, announcementDomain.ErrEmptyBody),
		errors.Is(err, raffleDomain.ErrBadWinningDay),
		errors.Is(err, orchestrators.ErrBadChannel):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		internalError(w, err)
	}
}

// requireAdmin checks for an unlocked admin session.
func requireAdmin(w http.ResponseWriter, r *http.Request) bool {
	if !middleware.IsAdmin(r.Context()) {
		slog.Warn("auth_denied", "path", r.URL.Path, "reason", "no admin session")
		http.Error(w, "not authenticated", http.StatusUnauthorized)
		return false
	}
	return true
}

// publicEntryRow strips the access-gate secret from a row before it
// leaves a public endpoint.
type publicEntryRow struct {
	ID            string
	Year          int
	Month         int
	Day           int
	DateLabel     string
	SupporterName string
	PlayerID      string
	PlayerName    string
	Note          string
	Payment       payment.State
}

func toPublicRows(rows []projections.EntryRow) []publicEntryRow {
	out := make([]publicEntryRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, publicEntryRow{
			ID:            row.ID,
			Year:          row.Year,
			Month:         row.Month,
			Day:           row.Day,
			DateLabel:     row.DateLabel,
			SupporterName: row.SupporterName,
			PlayerID:      row.PlayerID,
			PlayerName:    row.PlayerName,
			Note:          row.Note,
			Payment:       row.Payment,
		})
	}
	return out
}

// handleMonth handles GET /api/months/{month}. Year comes from the
// query string, defaulting to the current year.
func handleMonth(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
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

	result, err := projections.QueryGetMonth(r.Context(), projections.GetMonthQuery{Year: year, Month: month}, projections.GetMonthDeps{
		EntryStore:  stores.EntryStore,
		PlayerStore: stores.PlayerStore,
		RaffleStore: stores.RaffleStore,
	})
	if err != nil {
		internalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// handleYearOverview handles GET /api/years/{year}: the twelve-month
// grid of claim counts and raffle winners.
func handleYearOverview(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}
	year, err := strconv.Atoi(r.PathValue("year"))
	if err != nil || year < 1 {
		http.Error(w, "invalid year", http.StatusBadRequest)
		return
	}

	result, err := projections.QueryGetYearOverview(r.Context(), projections.GetYearOverviewQuery{Year: year}, projections.GetYearOverviewDeps{
		EntryStore:  stores.EntryStore,
		RaffleStore: stores.RaffleStore,
	})
	if err != nil {
		internalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// handleEntries handles GET (list) and POST (claim) for /api/entries.
// The public list omits phones and timestamps; an admin session gets
// the full rows.
func handleEntries(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method == "GET" {
		params := listutil.ParseListParams(r.URL.Query(), projections.EntryListSortColumns, []string{"year", "paid"})
		result, err := projections.QueryGetEntryList(ctx, projections.GetEntryListQuery{Params: params}, projections.GetEntryListDeps{
			EntryStore:  stores.EntryStore,
			PlayerStore: stores.PlayerStore,
		})
		if err != nil {
			internalError(w, err)
			return
		}
		if middleware.IsAdmin(ctx) {
			writeJSON(w, http.StatusOK, result.Rows)
			return
		}
		writeJSON(w, http.StatusOK, toPublicRows(result.Rows))
		return
	}

	if r.Method == "POST" {
		var input struct {
			Year          int    `json:"Year"`
			Month         int    `json:"Month"`
			Day           int    `json:"Day"`
			PlayerID      string `json:"PlayerID"`
			SupporterName string `json:"SupporterName"`
			Note          string `json:"Note"`
			Phone         string `json:"Phone"`
		}
		if err := strictDecode(r, &input); err != nil {
			http.Error(w, "invalid JSON", http.StatusBadRequest)
			return
		}

		deps := orchestrators.ClaimDayDeps{
			EntryStore:  stores.EntryStore,
			PlayerStore: stores.PlayerStore,
		}
		if emailSender != nil && coachEmail != "" {
			deps.Notify = &orchestrators.ClaimNotifyDeps{
				Sender:     emailSender,
				CoachEmail: coachEmail,
				From:       emailFromAddress,
				ReplyTo:    emailReplyTo,
			}
		}
		e, err := orchestrators.ExecuteClaimDay(ctx, orchestrators.ClaimDayInput{
			Year:          input.Year,
			Month:         input.Month,
			Day:           input.Day,
			PlayerID:      input.PlayerID,
			SupporterName: input.SupporterName,
			Note:          input.Note,
			Phone:         input.Phone,
		}, deps)
		if err != nil {
			domainError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, struct {
			ID        string
			DateLabel string
			Owed      int
		}{e.ID, calendar.DateLabel(e.Year, e.Month, e.Day), e.Owed()})
		return
	}

	w.WriteHeader(http.StatusMethodNotAllowed)
}

// handlePlayers handles GET /api/players: the public roster, without
// built-in PINs.
func handlePlayers(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}
	players, err := stores.PlayerStore.List(r.Context())
	if err != nil {
		internalError(w, err)
		return
	}
	type publicPlayer struct {
		ID          string
		FirstName   string
		LastName    string
		Number      int
		DisplayName string
	}
	out := make([]publicPlayer, 0, len(players))
	for _, p := range players {
		out = append(out, publicPlayer{p.ID, p.FirstName, p.LastName, p.Number, p.DisplayName()})
	}
	writeJSON(w, http.StatusOK, out)
}

// handlePlayerTotals handles GET /api/summary/players: the public
// leaderboard of days and day-number sums per player.
func handlePlayerTotals(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}
	year, _ := strconv.Atoi(r.URL.Query().Get("year"))
	result, err := projections.QuerySummarizeByPlayer(r.Context(), projections.SummarizeByPlayerQuery{Year: year}, projections.SummarizeByPlayerDeps{
		EntryStore:  stores.EntryStore,
		PlayerStore: stores.PlayerStore,
	})
	if err != nil {
		internalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result.Players)
}

// handlePlayerSummary handles POST /api/players/{id}/summary. The PIN
// travels in the body so it never lands in access logs.
func handlePlayerSummary(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}
	playerID := r.PathValue("id")
	var input struct {
		PIN string `json:"PIN"`
	}
	if err := strictDecode(r, &input); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	params := listutil.ParseListParams(r.URL.Query(), projections.EntryListSortColumns, []string{"year", "paid"})
	result, err := projections.QueryGetPlayerSummary(r.Context(), projections.GetPlayerSummaryQuery{
		PlayerID: playerID,
		PIN:      input.PIN,
		Params:   params,
	}, projections.GetPlayerSummaryDeps{
		EntryStore:  stores.EntryStore,
		PlayerStore: stores.PlayerStore,
		PinStore:    stores.PinStore,
	})
	if err != nil {
		domainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, struct {
		PlayerName string
		Totals     projections.PlayerTotals
		Rows       []publicEntryRow
	}{result.Player.FullName(), result.Totals, toPublicRows(result.Rows)})
}

// handleSupporters handles GET /api/supporters: the public shout-out
// list of supporter names grouped by player. Names only, no amounts.
func handleSupporters(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}
	year, _ := strconv.Atoi(r.URL.Query().Get("year"))
	result, err := projections.QuerySupportersByPlayer(r.Context(), year, projections.SupportersByPlayerDeps{
		EntryStore: stores.EntryStore,
	})
	if err != nil {
		internalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result.Supporters)
}

// handleSupporterDetail handles POST /api/supporters/detail: a
// supporter's own claims, unlocked by PIN or phone last-four.
func handleSupporterDetail(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}
	var input struct {
		SupporterName string `json:"SupporterName"`
		PlayerID      string `json:"PlayerID"`
		Code          string `json:"Code"`
		Year          int    `json:"Year"`
	}
	if err := strictDecode(r, &input); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	result, err := projections.QueryGetSupporterDetail(r.Context(), projections.GetSupporterDetailQuery{
		SupporterName: input.SupporterName,
		PlayerID:      input.PlayerID,
		Code:          input.Code,
		Year:          input.Year,
	}, projections.GetSupporterDetailDeps{
		EntryStore:  stores.EntryStore,
		PlayerStore: stores.PlayerStore,
		PinStore:    stores.PinStore,
	})
	if err != nil {
		domainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, struct {
		Totals projections.SupporterTotals
		Rows   []publicEntryRow
	}{result.Totals, toPublicRows(result.Rows)})
}

// handleAnnouncement handles GET (public, rendered) and PUT (admin) for
// /api/announcement.
func handleAnnouncement(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method == "GET" {
		a, err := stores.AnnouncementStore.Get(ctx, announcementDomain.DefaultID)
		if err != nil {
			internalError(w, err)
			return
		}
		var buf bytes.Buffer
		if err := mdRenderer.Convert([]byte(a.Markdown), &buf); err != nil {
			internalError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, struct {
			Markdown  string
			HTML      string
			UpdatedAt time.Time
		}{a.Markdown, buf.String(), a.UpdatedAt})
		return
	}

	if r.Method == "PUT" {
		if !requireAdmin(w, r) {
			return
		}
		var input struct {
			Markdown string `json:"Markdown"`
		}
		if err := strictDecode(r, &input); err != nil {
			http.Error(w, "invalid JSON", http.StatusBadRequest)
			return
		}
		if err := orchestrators.ExecuteUpdateAnnouncement(ctx, input.Markdown, orchestrators.UpdateAnnouncementDeps{
			AnnouncementStore: stores.AnnouncementStore,
		}); err != nil {
			domainError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
		return
	}

	w.WriteHeader(http.StatusMethodNotAllowed)
}
