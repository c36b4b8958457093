package web

import "net/http"

// registerRoutes attaches API handlers to the mux. Method dispatch
// happens inside each handler.
func registerRoutes(mux *http.ServeMux) {
	// Public
	mux.HandleFunc("/api/months/{month}", handleMonth)
	mux.HandleFunc("/api/years/{year}", handleYearOverview)
	mux.HandleFunc("/api/entries", handleEntries)
	mux.HandleFunc("/api/players", handlePlayers)
	mux.HandleFunc("/api/players/{id}/summary", handlePlayerSummary)
	mux.HandleFunc("/api/summary/players", handlePlayerTotals)
	mux.HandleFunc("/api/supporters", handleSupporters)
	mux.HandleFunc("/api/supporters/detail", handleSupporterDetail)
	mux.HandleFunc("/api/announcement", handleAnnouncement)

	// Admin
	mux.HandleFunc("/api/admin/login", handleAdminLogin)
	mux.HandleFunc("/api/entries/{id}", handleEntryByID)
	mux.HandleFunc("/api/entries/{id}/quick-paid", handleQuickPaid)
	mux.HandleFunc("/api/admin/export.csv", handleExportCSV)
	mux.HandleFunc("/api/admin/raffle/{month}", handleRaffle)
	mux.HandleFunc("/api/admin/pins", handleAdminPinList)
	mux.HandleFunc("/api/admin/pins/{playerId}", handleAdminPins)
	mux.HandleFunc("/api/admin/supporters", handleAdminSupporters)
}
