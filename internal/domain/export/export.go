package export

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"fundraiser/internal/domain/calendar"
	"fundraiser/internal/domain/entry"
	"fundraiser/internal/domain/player"
)

// csvHeader is the fixed column order of the admin export.
var csvHeader = []string{
	"Date", "Supporter", "Player", "Note", "Phone",
	"Owed", "PaymentAmount", "PaymentMethod", "PaymentStatus",
}

// EntriesCSV serializes entries to comma-separated text with a header
// row. Fields containing commas, quotes or newlines are quote-wrapped
// with internal quotes doubled (encoding/csv handles the escaping).
// PRE: entries is a read snapshot; roster resolves player names
// POST: One row per entry in the given order
func EntriesCSV(entries []entry.Entry, roster []player.Player) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}
	for i := range entries {
		e := &entries[i]
		state := e.PaymentState()
		row := []string{
			calendar.DateLabel(e.Year, e.Month, e.Day),
			e.SupporterName,
			player.NameByID(roster, e.PlayerID),
			e.Note,
			e.Phone,
			strconv.Itoa(state.Owed),
			strconv.FormatFloat(state.Amount, 'f', -1, 64),
			string(state.Method),
			state.Label,
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
