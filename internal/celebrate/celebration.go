// Package celebrate maps a final score percentage to an encouragement
// message and intensity tier. Pure lookup, no state.
package celebrate

import "fmt"

// Celebration describes the feedback shown after a completed session.
type Celebration struct {
	Level      int
	Message    string
	SubMessage string
	Intensity  int
	ScoreRange string
}

// band is one contiguous score range. Min and Max are inclusive.
type band struct {
	min, max   int
	message    string
	subMessage string
}

// bands cover 0-100 in nine tiers; index is the celebration level.
var bands = [9]band{
	{0, 49, "Keep practicing!", "Every mistake is a chance to learn."},
	{50, 64, "Good effort!", "You're building a strong foundation."},
	{65, 69, "Nice work!", "You're getting the hang of it."},
	{70, 74, "Well done!", "Your hard work is showing."},
	{75, 79, "Great job!", "You're really improving."},
	{80, 84, "Excellent!", "You clearly know your stuff."},
	{85, 89, "Outstanding!", "That's impressive work."},
	{90, 94, "Amazing!", "You're almost unstoppable."},
	{95, 100, "Perfect performance!", "You've truly mastered this."},
}

// ForScore returns the celebration for a score percentage, or nil when the
// score falls outside 0-100.
func ForScore(scorePercentage float64) *Celebration {
	if scorePercentage < 0 || scorePercentage > 100 {
		return nil
	}
	// Bands are ordered ascending; the first whose upper bound covers the
	// score wins, so fractional scores between band edges still match.
	for level, b := range bands {
		if scorePercentage <= float64(b.max) {
			return &Celebration{
				Level:      level,
				Message:    b.message,
				SubMessage: b.subMessage,
				Intensity:  level,
				ScoreRange: fmt.Sprintf("%d-%d%%", b.min, b.max),
			}
		}
	}
	return nil
}
