package celebrate

import "testing"

func TestForScore_Levels(t *testing.T) {
	tests := []struct {
		score    float64
		expected int
	}{
		{0, 0},
		{30, 0},
		{49, 0},
		{50, 1},
		{60, 1},
		{65, 2},
		{72, 3},
		{77, 4},
		{83, 5},
		{88, 6},
		{92, 7},
		{95, 8},
		{97, 8},
		{100, 8},
	}
	for _, tt := range tests {
		c := ForScore(tt.score)
		if c == nil {
			t.Errorf("ForScore(%v) = nil, want level %d", tt.score, tt.expected)
			continue
		}
		if c.Level != tt.expected {
			t.Errorf("ForScore(%v).Level = %d, want %d", tt.score, c.Level, tt.expected)
		}
		if c.Intensity != c.Level {
			t.Errorf("ForScore(%v): intensity %d != level %d", tt.score, c.Intensity, c.Level)
		}
		if c.Message == "" || c.SubMessage == "" {
			t.Errorf("ForScore(%v): empty message fields", tt.score)
		}
	}
}

func TestForScore_OutOfRange(t *testing.T) {
	for _, score := range []float64{-5, -0.001, 100.001, 101, 200} {
		if c := ForScore(score); c != nil {
			t.Errorf("ForScore(%v) = %+v, want nil", score, c)
		}
	}
}

func TestForScore_FractionalBetweenBands(t *testing.T) {
	c := ForScore(49.5)
	if c == nil || c.Level != 1 {
		t.Errorf("ForScore(49.5) should land in the next band up, got %+v", c)
	}
}

func TestBands_CoverZeroToHundred(t *testing.T) {
	if bands[0].min != 0 {
		t.Errorf("first band starts at %d, want 0", bands[0].min)
	}
	if bands[len(bands)-1].max != 100 {
		t.Errorf("last band ends at %d, want 100", bands[len(bands)-1].max)
	}
	for i := 1; i < len(bands); i++ {
		if bands[i].min != bands[i-1].max+1 {
			t.Errorf("gap between band %d and %d", i-1, i)
		}
	}
}
