// Package difficulty selects each page's difficulty-level mixture from
// grade-specific rule tables keyed on the previous page's accuracy.
package difficulty

import (
	"fmt"
	"math"
	"math/rand"
)

// Config is a set of candidate difficulty levels with a parallel probability
// distribution. Each problem's level is sampled independently from it.
type Config struct {
	Levels       []int
	Distribution []float64
}

// Sample draws one difficulty level by cumulative-probability sampling
// against a uniform random draw.
func (c Config) Sample(r *rand.Rand) int {
	draw := r.Float64()
	cumulative := 0.0
	for i, p := range c.Distribution {
		cumulative += p
		if draw < cumulative {
			return c.Levels[i]
		}
	}
	// Float accumulation can land a hair under 1.0; the draw belongs to the
	// final level.
	return c.Levels[len(c.Levels)-1]
}

// MaxLevel returns the highest candidate level.
func (c Config) MaxLevel() int {
	max := c.Levels[0]
	for _, l := range c.Levels[1:] {
		if l > max {
			max = l
		}
	}
	return max
}

// validate checks structural soundness: parallel slices and a distribution
// summing to 1.
func (c Config) validate() error {
	if len(c.Levels) == 0 {
		return fmt.Errorf("empty level set")
	}
	if len(c.Levels) != len(c.Distribution) {
		return fmt.Errorf("levels and distribution lengths differ: %d vs %d",
			len(c.Levels), len(c.Distribution))
	}
	sum := 0.0
	for _, p := range c.Distribution {
		if p < 0 {
			return fmt.Errorf("negative probability %v", p)
		}
		sum += p
	}
	if math.Abs(sum-1.0) > 1e-9 {
		return fmt.Errorf("distribution sums to %v, want 1.0", sum)
	}
	for _, l := range c.Levels {
		if l < 1 || l > 5 {
			return fmt.Errorf("level %d out of range 1-5", l)
		}
	}
	return nil
}

// Rule maps an accuracy band to a difficulty configuration. Rules are
// authored in ascending MaxAccuracy order; the first rule whose MaxAccuracy
// exceeds the observed accuracy wins. The last rule's bound is +Inf so a
// match is guaranteed by construction.
type Rule struct {
	Tier        string
	MaxAccuracy float64
	Config      Config
}
