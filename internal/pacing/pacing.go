// Package pacing computes per-page time budgets. The previous page's
// actual-vs-estimated time ratio picks a named band whose multiplier grows
// or shrinks the next page's budget; the bands are grade-independent.
package pacing

import (
	"fmt"
	"math"

	"github.com/vinciapp/vinci/internal/grades"
)

// Buffer shaves each page's raw share of the study time so sessions finish
// inside the target.
const Buffer = 0.9

// Band is one pacing tier: ratios below MaxRatio land in the band.
type Band struct {
	Name       string
	MaxRatio   float64
	Multiplier float64
}

// Bands in ascending MaxRatio order; the last bound is +Inf.
var Bands = []Band{
	{"VERY_FAST", 0.5, 1.5},
	{"FAST", 0.7, 1.25},
	{"NORMAL", 1.2, 1.0},
	{"SLOW", 1.8, 0.75},
	{"DISTRACTED", math.Inf(1), 0.5},
}

// BandForRatio returns the band covering a time ratio.
func BandForRatio(ratio float64) Band {
	for _, b := range Bands {
		if ratio < b.MaxRatio {
			return b
		}
	}
	return Bands[len(Bands)-1]
}

// PreviousPageStats summarizes the prior page's timing. EstimatedSeconds
// sums the estimated solve times of answered problems only.
type PreviousPageStats struct {
	ActualSeconds    float64
	EstimatedSeconds float64
}

// Ratio returns actual over estimated time. With nothing answered there is
// no signal, so the ratio reads as on-pace.
func (s PreviousPageStats) Ratio() float64 {
	if s.EstimatedSeconds <= 0 {
		return 1.0
	}
	return s.ActualSeconds / s.EstimatedSeconds
}

// PageTargetTime computes the time budget in whole seconds for a page.
// Page 1 is the buffered even share of the total study time. Later pages
// scale that share by the pacing band selected from the previous page.
//
// The grade parameter is validated here but per-problem time scaling happens
// at problem-generation time via the grade's time-adjustment ratio; the two
// adjustments compound.
func PageTargetTime(totalStudySeconds, totalPages, pageNumber int, grade grades.Grade, prev *PreviousPageStats) (int, error) {
	if !grade.Valid() {
		return 0, fmt.Errorf("unsupported grade level: %q", string(grade))
	}
	if totalPages < 1 {
		return 0, fmt.Errorf("total pages must be at least 1, got %d", totalPages)
	}
	if totalStudySeconds <= 0 {
		return 0, fmt.Errorf("total study time must be positive, got %d", totalStudySeconds)
	}

	base := float64(totalStudySeconds) / float64(totalPages)

	if pageNumber <= 1 || prev == nil {
		return int(math.Floor(base * Buffer)), nil
	}

	band := BandForRatio(prev.Ratio())
	return int(math.Floor(base * band.Multiplier * Buffer)), nil
}
