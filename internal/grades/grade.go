package grades

import "fmt"

// Grade represents a school grade level.
type Grade string

const (
	Kindergarten Grade = "Kindergarten"
	First        Grade = "1st Grade"
	Second       Grade = "2nd Grade"
	Third        Grade = "3rd Grade"
	Fourth       Grade = "4th Grade"
	Fifth        Grade = "5th Grade"
	Sixth        Grade = "6th Grade"
	Seventh      Grade = "7th Grade"
	Eighth       Grade = "8th Grade"
	Ninth        Grade = "9th Grade"
	Tenth        Grade = "10th Grade"
	Eleventh     Grade = "11th Grade"
	Twelfth      Grade = "12th Grade"
)

// All returns every grade in ascending order.
func All() []Grade {
	return []Grade{
		Kindergarten, First, Second, Third, Fourth, Fifth, Sixth,
		Seventh, Eighth, Ninth, Tenth, Eleventh, Twelfth,
	}
}

// ordinals maps each grade to its position (Kindergarten = 0).
var ordinals = func() map[Grade]int {
	m := make(map[Grade]int, 13)
	for i, g := range All() {
		m[g] = i
	}
	return m
}()

// Parse validates a grade level string.
// Any value outside the 13 enumerated grades is rejected.
func Parse(s string) (Grade, error) {
	g := Grade(s)
	if _, ok := ordinals[g]; !ok {
		return "", fmt.Errorf("unsupported grade level: %q", s)
	}
	return g, nil
}

// Valid reports whether g is one of the 13 enumerated grades.
func (g Grade) Valid() bool {
	_, ok := ordinals[g]
	return ok
}

// Ordinal returns the grade's position, Kindergarten = 0 through 12th Grade = 12.
// Panics on an invalid grade; callers must Parse first.
func (g Grade) Ordinal() int {
	o, ok := ordinals[g]
	if !ok {
		panic(fmt.Sprintf("grades: invalid grade %q", string(g)))
	}
	return o
}

// timeAdjustmentRatios scales each generated problem's base estimated solve
// time. Younger students get proportionally more time per problem.
var timeAdjustmentRatios = map[Grade]float64{
	Kindergarten: 4.0,
	First:        3.5,
	Second:       3.0,
	Third:        2.5,
	Fourth:       2.2,
	Fifth:        2.0,
	Sixth:        1.8,
	Seventh:      1.6,
	Eighth:       1.4,
	Ninth:        1.2,
	Tenth:        1.0,
	Eleventh:     0.9,
	Twelfth:      0.8,
}

// TimeAdjustmentRatio returns the per-problem time scalar for a grade.
func (g Grade) TimeAdjustmentRatio() (float64, error) {
	r, ok := timeAdjustmentRatios[g]
	if !ok {
		return 0, fmt.Errorf("unsupported grade level: %q", string(g))
	}
	return r, nil
}
