package mixed

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vinciapp/vinci/internal/arith"
)

// maxAttempts bounds the regenerate-on-invalid-result loop. The source of
// invalidity is a pattern instantiation whose final value goes negative;
// regeneration is a loop with an explicit cap, never unbounded recursion.
const maxAttempts = 100

// Generator produces mixed-step arithmetic questions: two chained operations
// at difficulty 1-2, three at difficulty 3-5. Division sub-expressions are
// constructed from products so they are always exact, and redundant
// parentheses are stripped from the final question text.
type Generator struct {
	r *rand.Rand
}

// New creates a Generator. A nil source seeds from the current time.
func New(r *rand.Rand) *Generator {
	if r == nil {
		r = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Generator{r: r}
}

// operandRanges scales operand magnitude with difficulty.
var operandRanges = [6][2]int{
	1: {1, 9},
	2: {2, 15},
	3: {2, 12},
	4: {5, 25},
	5: {10, 50},
}

// Generate produces a mixed-step fact for the given difficulty, dispatching
// to the two-step or three-step pattern set.
func (g *Generator) Generate(level int) (arith.Fact, error) {
	if level < 1 || level > 5 {
		return arith.Fact{}, fmt.Errorf("difficulty level %d out of range 1-5", level)
	}
	if level <= 2 {
		return g.TwoStep(level)
	}
	return g.ThreeStep(level)
}

// TwoStep produces a question chaining exactly two operations.
func (g *Generator) TwoStep(level int) (arith.Fact, error) {
	if level < 1 || level > 5 {
		return arith.Fact{}, fmt.Errorf("difficulty level %d out of range 1-5", level)
	}
	return g.generate(twoStepPatterns, level, arith.Fact{Question: "3 × 4 + 2", Answer: "14"})
}

// ThreeStep produces a question chaining exactly three operations.
func (g *Generator) ThreeStep(level int) (arith.Fact, error) {
	if level < 1 || level > 5 {
		return arith.Fact{}, fmt.Errorf("difficulty level %d out of range 1-5", level)
	}
	return g.generate(threeStepPatterns, level, arith.Fact{Question: "2 × 5 + 8 - 3", Answer: "15"})
}

// generate picks a random pattern and instantiates it until the result is a
// non-negative integer, verifying each candidate with the evaluator. On
// exhaustion the fallback example keeps the request alive.
func (g *Generator) generate(patterns []pattern, level int, fallback arith.Fact) (arith.Fact, error) {
	for attempt := 0; attempt < maxAttempts; attempt++ {
		p := patterns[g.r.Intn(len(patterns))]
		expr, value, ok := p(g, level)
		if !ok || value < 0 {
			continue
		}
		if v, err := Eval(expr); err != nil || v != value {
			// A pattern whose text disagrees with its claimed value is a
			// bug; skip the candidate rather than serve it.
			continue
		}
		return arith.Fact{
			Question: stripRedundantParens(expr),
			Answer:   fmt.Sprintf("%d", value),
		}, nil
	}
	return fallback, nil
}

// intn returns a uniform random integer in [min, max].
func (g *Generator) intn(min, max int) int {
	if max <= min {
		return min
	}
	return g.r.Intn(max-min+1) + min
}

// operand draws one operand for the level.
func (g *Generator) operand(level int) int {
	r := operandRanges[level]
	return g.intn(r[0], r[1])
}
