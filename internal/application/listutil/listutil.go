package listutil

import (
	"net/url"
	"strconv"
)

// SortParams carries sorting parameters parsed from a request.
type SortParams struct {
	Sort string // column name
	Dir  string // "asc" or "desc"
}

// Descending reports whether the sort direction is descending.
func (s SortParams) Descending() bool {
	return s.Dir == "desc"
}

// FilterParams carries exact-match filters (e.g. paid=unpaid, year=2025).
type FilterParams struct {
	Filters map[string]string
}

// ListParams combines list view parameters. The entry list tops out at
// one row per calendar day, so there is no pagination.
type ListParams struct {
	SortParams
	FilterParams
}

// ParseSortParams extracts sort and dir from URL query values.
// PRE: allowedColumns lists the sortable column names
// POST: Sort is "" or an allowed column; Dir is always "asc" or "desc"
func ParseSortParams(q url.Values, allowedColumns []string) SortParams {
	sort := q.Get("sort")
	dir := q.Get("dir")

	if !isAllowedColumn(sort, allowedColumns) {
		sort = ""
	}
	if dir != "asc" && dir != "desc" {
		dir = "asc"
	}
	return SortParams{Sort: sort, Dir: dir}
}

// ParseFilterParams extracts named filters from URL query values.
// PRE: filterKeys lists the allowed filter parameter names
// POST: returns FilterParams with only recognised keys
func ParseFilterParams(q url.Values, filterKeys []string) FilterParams {
	fp := FilterParams{Filters: make(map[string]string)}
	for _, key := range filterKeys {
		if v := q.Get(key); v != "" {
			fp.Filters[key] = v
		}
	}
	return fp
}

// ParseListParams parses all list parameters from URL query values.
func ParseListParams(q url.Values, allowedSortCols []string, filterKeys []string) ListParams {
	return ListParams{
		SortParams:   ParseSortParams(q, allowedSortCols),
		FilterParams: ParseFilterParams(q, filterKeys),
	}
}

// IntFilter returns a named filter parsed as an int, or 0 when absent
// or malformed.
func (f FilterParams) IntFilter(key string) int {
	n, _ := strconv.Atoi(f.Filters[key])
	return n
}

func isAllowedColumn(col string, allowed []string) bool {
	for _, a := range allowed {
		if col == a {
			return true
		}
	}
	return false
}
