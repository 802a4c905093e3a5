package difficulty

import (
	"math"

	"github.com/vinciapp/vinci/internal/grades"
)

// Tier names for the accuracy bands.
const (
	TierStruggling = "STRUGGLING"
	TierDeveloping = "DEVELOPING"
	TierOnTrack    = "ON_TRACK"
	TierExcelling  = "EXCELLING"
)

var inf = math.Inf(1)

// gradeTable holds one grade's fixed page-1 configuration and the ordered
// rule lists for later pages. Pages past the last authored entry reuse it.
type gradeTable struct {
	page1 Config
	pages map[int][]Rule
}

// tables are hand-tuned per grade. The asymmetries are deliberate; do not
// regularize them.
var tables = map[grades.Grade]gradeTable{
	grades.Kindergarten: {
		page1: Config{Levels: []int{1}, Distribution: []float64{1.0}},
		pages: map[int][]Rule{
			2: {
				{TierStruggling, 0.5, Config{Levels: []int{1}, Distribution: []float64{1.0}}},
				{TierOnTrack, 0.85, Config{Levels: []int{1, 2}, Distribution: []float64{0.8, 0.2}}},
				{TierExcelling, inf, Config{Levels: []int{1, 2}, Distribution: []float64{0.6, 0.4}}},
			},
			3: {
				{TierStruggling, 0.5, Config{Levels: []int{1}, Distribution: []float64{1.0}}},
				{TierOnTrack, 0.85, Config{Levels: []int{1, 2}, Distribution: []float64{0.7, 0.3}}},
				{TierExcelling, inf, Config{Levels: []int{1, 2}, Distribution: []float64{0.5, 0.5}}},
			},
		},
	},
	grades.First: {
		page1: Config{Levels: []int{1}, Distribution: []float64{1.0}},
		pages: map[int][]Rule{
			2: {
				{TierStruggling, 0.45, Config{Levels: []int{1}, Distribution: []float64{1.0}}},
				{TierOnTrack, 0.8, Config{Levels: []int{1, 2}, Distribution: []float64{0.75, 0.25}}},
				{TierExcelling, inf, Config{Levels: []int{1, 2}, Distribution: []float64{0.5, 0.5}}},
			},
			3: {
				{TierStruggling, 0.45, Config{Levels: []int{1}, Distribution: []float64{1.0}}},
				{TierOnTrack, 0.8, Config{Levels: []int{1, 2}, Distribution: []float64{0.6, 0.4}}},
				{TierExcelling, inf, Config{Levels: []int{1, 2, 3}, Distribution: []float64{0.4, 0.4, 0.2}}},
			},
		},
	},
	grades.Second: {
		page1: Config{Levels: []int{1, 2}, Distribution: []float64{0.8, 0.2}},
		pages: map[int][]Rule{
			2: {
				{TierStruggling, 0.4, Config{Levels: []int{1}, Distribution: []float64{1.0}}},
				{TierDeveloping, 0.6, Config{Levels: []int{1, 2}, Distribution: []float64{0.8, 0.2}}},
				{TierOnTrack, 0.85, Config{Levels: []int{1, 2}, Distribution: []float64{0.5, 0.5}}},
				{TierExcelling, inf, Config{Levels: []int{2, 3}, Distribution: []float64{0.7, 0.3}}},
			},
			3: {
				{TierStruggling, 0.4, Config{Levels: []int{1, 2}, Distribution: []float64{0.9, 0.1}}},
				{TierDeveloping, 0.6, Config{Levels: []int{1, 2}, Distribution: []float64{0.6, 0.4}}},
				{TierOnTrack, 0.85, Config{Levels: []int{2, 3}, Distribution: []float64{0.7, 0.3}}},
				{TierExcelling, inf, Config{Levels: []int{2, 3}, Distribution: []float64{0.4, 0.6}}},
			},
		},
	},
	grades.Third: {
		page1: Config{Levels: []int{1, 2}, Distribution: []float64{0.6, 0.4}},
		pages: map[int][]Rule{
			2: {
				{TierStruggling, 0.4, Config{Levels: []int{1}, Distribution: []float64{1.0}}},
				{TierDeveloping, 0.6, Config{Levels: []int{1, 2}, Distribution: []float64{0.7, 0.3}}},
				{TierOnTrack, 0.85, Config{Levels: []int{1, 2}, Distribution: []float64{0.4, 0.6}}},
				{TierExcelling, inf, Config{Levels: []int{2, 3}, Distribution: []float64{0.6, 0.4}}},
			},
			3: {
				{TierStruggling, 0.4, Config{Levels: []int{1, 2}, Distribution: []float64{0.8, 0.2}}},
				{TierDeveloping, 0.6, Config{Levels: []int{1, 2}, Distribution: []float64{0.5, 0.5}}},
				{TierOnTrack, 0.85, Config{Levels: []int{2, 3}, Distribution: []float64{0.6, 0.4}}},
				{TierExcelling, inf, Config{Levels: []int{2, 3}, Distribution: []float64{0.3, 0.7}}},
			},
		},
	},
	grades.Fourth: {
		page1: Config{Levels: []int{1, 2}, Distribution: []float64{0.5, 0.5}},
		pages: map[int][]Rule{
			2: {
				{TierStruggling, 0.4, Config{Levels: []int{1, 2}, Distribution: []float64{0.8, 0.2}}},
				{TierDeveloping, 0.6, Config{Levels: []int{1, 2}, Distribution: []float64{0.5, 0.5}}},
				{TierOnTrack, 0.85, Config{Levels: []int{2, 3}, Distribution: []float64{0.7, 0.3}}},
				{TierExcelling, inf, Config{Levels: []int{2, 3}, Distribution: []float64{0.4, 0.6}}},
			},
			3: {
				{TierStruggling, 0.4, Config{Levels: []int{1, 2}, Distribution: []float64{0.7, 0.3}}},
				{TierDeveloping, 0.6, Config{Levels: []int{2}, Distribution: []float64{1.0}}},
				{TierOnTrack, 0.85, Config{Levels: []int{2, 3}, Distribution: []float64{0.5, 0.5}}},
				{TierExcelling, inf, Config{Levels: []int{3, 4}, Distribution: []float64{0.7, 0.3}}},
			},
		},
	},
	grades.Fifth: {
		page1: Config{Levels: []int{2, 3}, Distribution: []float64{0.6, 0.4}},
		pages: map[int][]Rule{
			2: {
				{TierStruggling, 0.4, Config{Levels: []int{1, 2}, Distribution: []float64{0.6, 0.4}}},
				{TierDeveloping, 0.6, Config{Levels: []int{2}, Distribution: []float64{1.0}}},
				{TierOnTrack, 0.85, Config{Levels: []int{2, 3}, Distribution: []float64{0.5, 0.5}}},
				{TierExcelling, inf, Config{Levels: []int{3, 4}, Distribution: []float64{0.6, 0.4}}},
			},
			3: {
				{TierStruggling, 0.4, Config{Levels: []int{1, 2}, Distribution: []float64{0.5, 0.5}}},
				{TierDeveloping, 0.6, Config{Levels: []int{2, 3}, Distribution: []float64{0.7, 0.3}}},
				{TierOnTrack, 0.85, Config{Levels: []int{3}, Distribution: []float64{1.0}}},
				{TierExcelling, inf, Config{Levels: []int{3, 4}, Distribution: []float64{0.4, 0.6}}},
			},
		},
	},
	grades.Sixth: {
		page1: Config{Levels: []int{2, 3}, Distribution: []float64{0.5, 0.5}},
		pages: map[int][]Rule{
			2: {
				{TierStruggling, 0.4, Config{Levels: []int{1, 2}, Distribution: []float64{0.5, 0.5}}},
				{TierDeveloping, 0.6, Config{Levels: []int{2, 3}, Distribution: []float64{0.7, 0.3}}},
				{TierOnTrack, 0.85, Config{Levels: []int{2, 3}, Distribution: []float64{0.4, 0.6}}},
				{TierExcelling, inf, Config{Levels: []int{3, 4}, Distribution: []float64{0.5, 0.5}}},
			},
			3: {
				{TierStruggling, 0.4, Config{Levels: []int{2}, Distribution: []float64{1.0}}},
				{TierDeveloping, 0.6, Config{Levels: []int{2, 3}, Distribution: []float64{0.5, 0.5}}},
				{TierOnTrack, 0.85, Config{Levels: []int{3, 4}, Distribution: []float64{0.6, 0.4}}},
				{TierExcelling, inf, Config{Levels: []int{3, 4, 5}, Distribution: []float64{0.3, 0.5, 0.2}}},
			},
		},
	},
	grades.Seventh: {
		page1: Config{Levels: []int{2, 3, 4}, Distribution: []float64{0.4, 0.4, 0.2}},
		pages: map[int][]Rule{
			2: {
				{TierStruggling, 0.4, Config{Levels: []int{2}, Distribution: []float64{1.0}}},
				{TierDeveloping, 0.6, Config{Levels: []int{2, 3}, Distribution: []float64{0.6, 0.4}}},
				{TierOnTrack, 0.85, Config{Levels: []int{3, 4}, Distribution: []float64{0.6, 0.4}}},
				{TierExcelling, inf, Config{Levels: []int{3, 4}, Distribution: []float64{0.3, 0.7}}},
			},
			3: {
				{TierStruggling, 0.4, Config{Levels: []int{2, 3}, Distribution: []float64{0.7, 0.3}}},
				{TierDeveloping, 0.6, Config{Levels: []int{3}, Distribution: []float64{1.0}}},
				{TierOnTrack, 0.85, Config{Levels: []int{3, 4}, Distribution: []float64{0.4, 0.6}}},
				{TierExcelling, inf, Config{Levels: []int{4, 5}, Distribution: []float64{0.6, 0.4}}},
			},
		},
	},
	grades.Eighth: {
		page1: Config{Levels: []int{3, 4}, Distribution: []float64{0.6, 0.4}},
		pages: map[int][]Rule{
			2: {
				{TierStruggling, 0.4, Config{Levels: []int{2, 3}, Distribution: []float64{0.6, 0.4}}},
				{TierDeveloping, 0.6, Config{Levels: []int{3}, Distribution: []float64{1.0}}},
				{TierOnTrack, 0.85, Config{Levels: []int{3, 4}, Distribution: []float64{0.5, 0.5}}},
				{TierExcelling, inf, Config{Levels: []int{4, 5}, Distribution: []float64{0.7, 0.3}}},
			},
			3: {
				{TierStruggling, 0.4, Config{Levels: []int{2, 3}, Distribution: []float64{0.5, 0.5}}},
				{TierDeveloping, 0.6, Config{Levels: []int{3, 4}, Distribution: []float64{0.7, 0.3}}},
				{TierOnTrack, 0.85, Config{Levels: []int{4}, Distribution: []float64{1.0}}},
				{TierExcelling, inf, Config{Levels: []int{4, 5}, Distribution: []float64{0.4, 0.6}}},
			},
		},
	},
	grades.Ninth: {
		page1: Config{Levels: []int{3, 4}, Distribution: []float64{0.5, 0.5}},
		pages: map[int][]Rule{
			2: {
				{TierStruggling, 0.4, Config{Levels: []int{2, 3}, Distribution: []float64{0.5, 0.5}}},
				{TierDeveloping, 0.6, Config{Levels: []int{3, 4}, Distribution: []float64{0.7, 0.3}}},
				{TierOnTrack, 0.85, Config{Levels: []int{3, 4}, Distribution: []float64{0.4, 0.6}}},
				{TierExcelling, inf, Config{Levels: []int{4, 5}, Distribution: []float64{0.6, 0.4}}},
			},
			3: {
				{TierStruggling, 0.4, Config{Levels: []int{3}, Distribution: []float64{1.0}}},
				{TierDeveloping, 0.6, Config{Levels: []int{3, 4}, Distribution: []float64{0.5, 0.5}}},
				{TierOnTrack, 0.85, Config{Levels: []int{4, 5}, Distribution: []float64{0.7, 0.3}}},
				{TierExcelling, inf, Config{Levels: []int{4, 5}, Distribution: []float64{0.3, 0.7}}},
			},
		},
	},
	grades.Tenth: {
		page1: Config{Levels: []int{3, 4, 5}, Distribution: []float64{0.4, 0.4, 0.2}},
		pages: map[int][]Rule{
			2: {
				{TierStruggling, 0.4, Config{Levels: []int{3}, Distribution: []float64{1.0}}},
				{TierDeveloping, 0.6, Config{Levels: []int{3, 4}, Distribution: []float64{0.6, 0.4}}},
				{TierOnTrack, 0.85, Config{Levels: []int{4, 5}, Distribution: []float64{0.7, 0.3}}},
				{TierExcelling, inf, Config{Levels: []int{4, 5}, Distribution: []float64{0.4, 0.6}}},
			},
			3: {
				{TierStruggling, 0.4, Config{Levels: []int{3, 4}, Distribution: []float64{0.7, 0.3}}},
				{TierDeveloping, 0.6, Config{Levels: []int{4}, Distribution: []float64{1.0}}},
				{TierOnTrack, 0.85, Config{Levels: []int{4, 5}, Distribution: []float64{0.5, 0.5}}},
				{TierExcelling, inf, Config{Levels: []int{5}, Distribution: []float64{1.0}}},
			},
		},
	},
	grades.Eleventh: {
		page1: Config{Levels: []int{4, 5}, Distribution: []float64{0.6, 0.4}},
		pages: map[int][]Rule{
			2: {
				{TierStruggling, 0.4, Config{Levels: []int{3, 4}, Distribution: []float64{0.6, 0.4}}},
				{TierDeveloping, 0.6, Config{Levels: []int{4}, Distribution: []float64{1.0}}},
				{TierOnTrack, 0.85, Config{Levels: []int{4, 5}, Distribution: []float64{0.5, 0.5}}},
				{TierExcelling, inf, Config{Levels: []int{5}, Distribution: []float64{1.0}}},
			},
			3: {
				{TierStruggling, 0.4, Config{Levels: []int{3, 4}, Distribution: []float64{0.5, 0.5}}},
				{TierDeveloping, 0.6, Config{Levels: []int{4, 5}, Distribution: []float64{0.7, 0.3}}},
				{TierOnTrack, 0.85, Config{Levels: []int{4, 5}, Distribution: []float64{0.4, 0.6}}},
				{TierExcelling, inf, Config{Levels: []int{5}, Distribution: []float64{1.0}}},
			},
		},
	},
	grades.Twelfth: {
		page1: Config{Levels: []int{4, 5}, Distribution: []float64{0.5, 0.5}},
		pages: map[int][]Rule{
			2: {
				{TierStruggling, 0.4, Config{Levels: []int{3, 4}, Distribution: []float64{0.5, 0.5}}},
				{TierDeveloping, 0.6, Config{Levels: []int{4, 5}, Distribution: []float64{0.7, 0.3}}},
				{TierOnTrack, 0.85, Config{Levels: []int{4, 5}, Distribution: []float64{0.4, 0.6}}},
				{TierExcelling, inf, Config{Levels: []int{5}, Distribution: []float64{1.0}}},
			},
			3: {
				{TierStruggling, 0.4, Config{Levels: []int{4}, Distribution: []float64{1.0}}},
				{TierDeveloping, 0.6, Config{Levels: []int{4, 5}, Distribution: []float64{0.6, 0.4}}},
				{TierOnTrack, 0.85, Config{Levels: []int{4, 5}, Distribution: []float64{0.3, 0.7}}},
				{TierExcelling, inf, Config{Levels: []int{5}, Distribution: []float64{1.0}}},
			},
		},
	},
}
