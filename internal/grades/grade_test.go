package grades

import "testing"

func TestAll_Count(t *testing.T) {
	if len(All()) != 13 {
		t.Errorf("expected 13 grades, got %d", len(All()))
	}
}

func TestParse_Valid(t *testing.T) {
	for _, g := range All() {
		parsed, err := Parse(string(g))
		if err != nil {
			t.Errorf("Parse(%q) returned error: %v", g, err)
		}
		if parsed != g {
			t.Errorf("Parse(%q) = %q", g, parsed)
		}
	}
}

func TestParse_Invalid(t *testing.T) {
	for _, s := range []string{"", "13th Grade", "kindergarten", "3rd grade", "College"} {
		if _, err := Parse(s); err == nil {
			t.Errorf("Parse(%q) should fail", s)
		}
	}
}

func TestOrdinal_Ascending(t *testing.T) {
	all := All()
	for i, g := range all {
		if g.Ordinal() != i {
			t.Errorf("%q ordinal = %d, want %d", g, g.Ordinal(), i)
		}
	}
}

func TestTimeAdjustmentRatio_Endpoints(t *testing.T) {
	k, err := Kindergarten.TimeAdjustmentRatio()
	if err != nil {
		t.Fatal(err)
	}
	if k != 4.0 {
		t.Errorf("Kindergarten ratio = %v, want 4.0", k)
	}
	tw, err := Twelfth.TimeAdjustmentRatio()
	if err != nil {
		t.Fatal(err)
	}
	if tw != 0.8 {
		t.Errorf("12th Grade ratio = %v, want 0.8", tw)
	}
}

func TestTimeAdjustmentRatio_MonotonicDecreasing(t *testing.T) {
	all := All()
	prev, _ := all[0].TimeAdjustmentRatio()
	for _, g := range all[1:] {
		r, err := g.TimeAdjustmentRatio()
		if err != nil {
			t.Fatalf("%q: %v", g, err)
		}
		if r > prev {
			t.Errorf("%q ratio %v exceeds previous %v", g, r, prev)
		}
		prev = r
	}
}

func TestTimeAdjustmentRatio_InvalidGrade(t *testing.T) {
	if _, err := Grade("13th Grade").TimeAdjustmentRatio(); err == nil {
		t.Error("expected error for unsupported grade")
	}
}
