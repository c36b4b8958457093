package listutil

import (
	"net/url"
	"testing"
)

// TestParseSortParams_AllowList verifies unknown columns are dropped.
func TestParseSortParams_AllowList(t *testing.T) {
	q := url.Values{"sort": {"supporter"}, "dir": {"desc"}}
	sp := ParseSortParams(q, []string{"date", "supporter", "status"})
	if sp.Sort != "supporter" || sp.Dir != "desc" {
		t.Errorf("got %+v", sp)
	}
	if !sp.Descending() {
		t.Error("expected descending")
	}

	q = url.Values{"sort": {"phone"}, "dir": {"sideways"}}
	sp = ParseSortParams(q, []string{"date", "supporter", "status"})
	if sp.Sort != "" || sp.Dir != "asc" {
		t.Errorf("unknown column/dir should reset, got %+v", sp)
	}
}

// TestParseFilterParams verifies only recognised keys are kept.
func TestParseFilterParams(t *testing.T) {
	q := url.Values{"paid": {"unpaid"}, "year": {"2025"}, "evil": {"x"}}
	fp := ParseFilterParams(q, []string{"paid", "year"})
	if fp.Filters["paid"] != "unpaid" {
		t.Errorf("paid filter missing: %+v", fp)
	}
	if _, ok := fp.Filters["evil"]; ok {
		t.Error("unrecognised key should be dropped")
	}
	if fp.IntFilter("year") != 2025 {
		t.Errorf("IntFilter = %d", fp.IntFilter("year"))
	}
	if fp.IntFilter("paid") != 0 {
		t.Errorf("non-numeric IntFilter should be 0")
	}
}
