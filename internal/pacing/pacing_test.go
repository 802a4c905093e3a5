package pacing

import (
	"math"
	"testing"

	"github.com/vinciapp/vinci/internal/grades"
)

func TestBandForRatio(t *testing.T) {
	tests := []struct {
		ratio    float64
		expected string
	}{
		{0.0, "VERY_FAST"},
		{0.49, "VERY_FAST"},
		{0.5, "FAST"},
		{0.69, "FAST"},
		{0.7, "NORMAL"},
		{1.0, "NORMAL"},
		{1.19, "NORMAL"},
		{1.2, "SLOW"},
		{1.79, "SLOW"},
		{1.8, "DISTRACTED"},
		{5.0, "DISTRACTED"},
	}
	for _, tt := range tests {
		if got := BandForRatio(tt.ratio); got.Name != tt.expected {
			t.Errorf("BandForRatio(%v) = %q, want %q", tt.ratio, got.Name, tt.expected)
		}
	}
}

func TestBands_Ordered(t *testing.T) {
	prev := -1.0
	for i, b := range Bands {
		if b.MaxRatio <= prev {
			t.Errorf("band %d (%s): bounds not ascending", i, b.Name)
		}
		prev = b.MaxRatio
	}
	if !math.IsInf(Bands[len(Bands)-1].MaxRatio, 1) {
		t.Error("last band bound must be +Inf")
	}
}

func TestPageTargetTime_FirstPage(t *testing.T) {
	got, err := PageTargetTime(600, 2, 1, grades.Third, nil)
	if err != nil {
		t.Fatal(err)
	}
	// floor(600/2 * 0.9) = 270
	if got != 270 {
		t.Errorf("first page target = %d, want 270", got)
	}
}

func TestPageTargetTime_BandMultipliers(t *testing.T) {
	tests := []struct {
		name     string
		stats    PreviousPageStats
		expected int
	}{
		// base 300; floor(300 * multiplier * 0.9)
		{"very fast", PreviousPageStats{ActualSeconds: 40, EstimatedSeconds: 100}, 405},
		{"fast", PreviousPageStats{ActualSeconds: 60, EstimatedSeconds: 100}, 337},
		{"normal", PreviousPageStats{ActualSeconds: 100, EstimatedSeconds: 100}, 270},
		{"slow", PreviousPageStats{ActualSeconds: 150, EstimatedSeconds: 100}, 202},
		{"distracted", PreviousPageStats{ActualSeconds: 250, EstimatedSeconds: 100}, 135},
	}
	for _, tt := range tests {
		got, err := PageTargetTime(600, 2, 2, grades.Third, &tt.stats)
		if err != nil {
			t.Fatalf("%s: %v", tt.name, err)
		}
		if got != tt.expected {
			t.Errorf("%s: target = %d, want %d", tt.name, got, tt.expected)
		}
	}
}

func TestPageTargetTime_NoAnsweredProblemsReadsOnPace(t *testing.T) {
	stats := PreviousPageStats{ActualSeconds: 120, EstimatedSeconds: 0}
	got, err := PageTargetTime(600, 2, 2, grades.Third, &stats)
	if err != nil {
		t.Fatal(err)
	}
	if got != 270 {
		t.Errorf("target = %d, want NORMAL 270", got)
	}
}

func TestPageTargetTime_Errors(t *testing.T) {
	if _, err := PageTargetTime(600, 2, 1, grades.Grade("College"), nil); err == nil {
		t.Error("expected error for unsupported grade")
	}
	if _, err := PageTargetTime(600, 0, 1, grades.Third, nil); err == nil {
		t.Error("expected error for zero pages")
	}
	if _, err := PageTargetTime(0, 2, 1, grades.Third, nil); err == nil {
		t.Error("expected error for zero study time")
	}
}
