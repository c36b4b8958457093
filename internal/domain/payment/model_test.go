package payment

import "testing"

// TestParseMethod verifies unrecognized channels collapse to unpaid.
func TestParseMethod(t *testing.T) {
	if ParseMethod("zelle") != MethodZelle {
		t.Error("zelle should parse")
	}
	if ParseMethod("venmo") != MethodVenmo {
		t.Error("venmo should parse")
	}
	if ParseMethod("") != MethodUnpaid {
		t.Error("empty should be unpaid")
	}
	if ParseMethod("cash") != MethodUnpaid {
		t.Error("unknown channel should be unpaid")
	}
}

// TestResolve_Unpaid verifies zero-amount entries are never paid.
func TestResolve_Unpaid(t *testing.T) {
	s := Resolve(15, MethodZelle, 0)
	if s.IsPaid || s.IsFullyPaid {
		t.Errorf("amount 0 must not be paid: %+v", s)
	}
	if s.Label != "Unpaid" {
		t.Errorf("label = %q, want Unpaid", s.Label)
	}
	if s.Owed != 15 {
		t.Errorf("owed = %d, want 15", s.Owed)
	}
}

// TestResolve_UnpaidMethodWithAmount verifies amounts under unpaid method don't count.
func TestResolve_UnpaidMethodWithAmount(t *testing.T) {
	s := Resolve(10, MethodUnpaid, 10)
	if s.IsPaid {
		t.Error("unpaid method must not be paid regardless of amount")
	}
}

// TestResolve_Partial verifies partial payment state and label.
func TestResolve_Partial(t *testing.T) {
	s := Resolve(20, MethodZelle, 5)
	if !s.IsPaid {
		t.Error("expected paid")
	}
	if s.IsFullyPaid {
		t.Error("expected not fully paid")
	}
	if s.Label != "Paid via zelle (partial $5 of $20)" {
		t.Errorf("label = %q", s.Label)
	}
}

// TestResolve_Full verifies full payment, including overpayment.
func TestResolve_Full(t *testing.T) {
	s := Resolve(12, MethodVenmo, 12)
	if !s.IsFullyPaid {
		t.Error("expected fully paid at exact amount")
	}
	if s.Label != "Paid via venmo (full $12)" {
		t.Errorf("label = %q", s.Label)
	}

	over := Resolve(12, MethodVenmo, 20)
	if !over.IsFullyPaid {
		t.Error("overpayment should still be fully paid")
	}
}

// TestResolve_NegativeAmount verifies negative amounts clamp to zero.
func TestResolve_NegativeAmount(t *testing.T) {
	s := Resolve(8, MethodZelle, -3)
	if s.Amount != 0 {
		t.Errorf("amount = %v, want 0", s.Amount)
	}
	if s.IsPaid {
		t.Error("negative amount must not be paid")
	}
}

// TestResolve_Monotonicity verifies IsFullyPaid implies IsPaid over a sweep.
func TestResolve_Monotonicity(t *testing.T) {
	for owed := 1; owed <= 31; owed++ {
		for amt := 0.0; amt <= 35; amt += 2.5 {
			for _, m := range []Method{MethodUnpaid, MethodZelle, MethodVenmo} {
				s := Resolve(owed, m, amt)
				if s.IsFullyPaid && !s.IsPaid {
					t.Fatalf("fully paid but not paid: owed=%d m=%s amt=%v", owed, m, amt)
				}
				if s.Amount == 0 && s.IsPaid {
					t.Fatalf("paid with zero amount: owed=%d m=%s", owed, m)
				}
			}
		}
	}
}

// TestQuickTogglePatch_RoundTrip verifies toggle-on then toggle-off returns to unpaid.
func TestQuickTogglePatch_RoundTrip(t *testing.T) {
	m, amt := QuickTogglePatch(17, MethodUnpaid, 0, MethodZelle)
	if m != MethodZelle || amt != 17 {
		t.Fatalf("toggle on = (%s, %v), want (zelle, 17)", m, amt)
	}
	m, amt = QuickTogglePatch(17, m, amt, MethodZelle)
	if m != MethodUnpaid || amt != 0 {
		t.Fatalf("toggle off = (%s, %v), want (unpaid, 0)", m, amt)
	}
}

// TestQuickTogglePatch_SwitchChannel verifies toggling the other channel re-marks, not clears.
func TestQuickTogglePatch_SwitchChannel(t *testing.T) {
	m, amt := QuickTogglePatch(9, MethodZelle, 9, MethodVenmo)
	if m != MethodVenmo || amt != 9 {
		t.Fatalf("switch = (%s, %v), want (venmo, 9)", m, amt)
	}
}

// TestQuickTogglePatch_Partial verifies a partial payment upgrades to full.
func TestQuickTogglePatch_Partial(t *testing.T) {
	m, amt := QuickTogglePatch(20, MethodZelle, 5, MethodZelle)
	if m != MethodZelle || amt != 20 {
		t.Fatalf("partial upgrade = (%s, %v), want (zelle, 20)", m, amt)
	}
}
