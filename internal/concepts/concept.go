package concepts

import "github.com/vinciapp/vinci/internal/grades"

// Category groups concepts for time-budget allocation.
type Category string

const (
	CategoryBasic Category = "basic"
	CategoryMixed Category = "mixedArithmetic"
)

// Concept is a named arithmetic skill with grade-appropriateness metadata.
type Concept struct {
	ID            string
	DisplayName   string
	Category      Category
	Subcategories []string

	// minGrade and maxGrade bound the grades the concept suits, inclusive.
	minGrade grades.Grade
	maxGrade grades.Grade
}

// AppropriateFor reports whether the concept suits a grade level.
func (c Concept) AppropriateFor(g grades.Grade) bool {
	if !g.Valid() {
		return false
	}
	return g.Ordinal() >= c.minGrade.Ordinal() && g.Ordinal() <= c.maxGrade.Ordinal()
}

// Info is the caller-facing view of a concept relative to a grade.
type Info struct {
	ID               string   `json:"id"`
	DisplayName      string   `json:"displayName"`
	Category         Category `json:"category"`
	Subcategories    []string `json:"subcategories"`
	GradeAppropriate bool     `json:"gradeAppropriate"`
}

// registry lists every concept in display order.
var registry = []Concept{
	{
		ID:            "addition",
		DisplayName:   "Addition",
		Category:      CategoryBasic,
		Subcategories: []string{"addition"},
		minGrade:      grades.Kindergarten,
		maxGrade:      grades.Fifth,
	},
	{
		ID:            "subtraction",
		DisplayName:   "Subtraction",
		Category:      CategoryBasic,
		Subcategories: []string{"subtraction"},
		minGrade:      grades.Kindergarten,
		maxGrade:      grades.Fifth,
	},
	{
		ID:            "multiplication",
		DisplayName:   "Multiplication",
		Category:      CategoryBasic,
		Subcategories: []string{"multiplication"},
		minGrade:      grades.Second,
		maxGrade:      grades.Seventh,
	},
	{
		ID:            "division",
		DisplayName:   "Division",
		Category:      CategoryBasic,
		Subcategories: []string{"division"},
		minGrade:      grades.Third,
		maxGrade:      grades.Eighth,
	},
	{
		ID:            "fractions",
		DisplayName:   "Fractions",
		Category:      CategoryBasic,
		Subcategories: []string{"fractionAddition", "fractionSubtraction"},
		minGrade:      grades.Third,
		maxGrade:      grades.Ninth,
	},
	{
		ID:            "mixedArithmetic",
		DisplayName:   "Mixed Arithmetic",
		Category:      CategoryMixed,
		Subcategories: []string{"twoStep", "threeStep"},
		minGrade:      grades.Third,
		maxGrade:      grades.Twelfth,
	},
}

// baseTimeSeconds is the estimated solve time per concept and difficulty
// level (index 1-5), before the grade time-adjustment ratio is applied.
var baseTimeSeconds = map[string][6]float64{
	"addition":        {0, 6, 10, 15, 20, 30},
	"subtraction":     {0, 8, 12, 18, 24, 32},
	"multiplication":  {0, 8, 15, 25, 35, 50},
	"division":        {0, 10, 18, 30, 40, 55},
	"fractions":       {0, 20, 30, 45, 60, 80},
	"mixedArithmetic": {0, 25, 40, 60, 80, 100},
}
