package arith

import (
	"fmt"
	"math/rand"
	"time"
)

// Fact is one generated arithmetic question with its canonical answer.
// Question is a bare expression, e.g. "345 + 278" or "5/6 - 1/3".
type Fact struct {
	Question string
	Answer   string
}

// maxAttempts bounds the constrained-randomization retry loops. When a loop
// cannot hit the desired carry/borrow/regroup state it falls back to a
// curated example instead of failing the request.
const maxAttempts = 100

// Generator produces single-operation arithmetic facts at difficulty 1-5.
// It holds its own random source so callers can inject a seeded one.
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

// checkLevel validates a difficulty level.
func checkLevel(level int) error {
	if level < 1 || level > 5 {
		return fmt.Errorf("difficulty level %d out of range 1-5", level)
	}
	return nil
}

// intn returns a uniform random integer in [min, max].
func (g *Generator) intn(min, max int) int {
	if max <= min {
		return min
	}
	return g.r.Intn(max-min+1) + min
}

// hasCarry reports whether adding a and b requires carrying in any column.
func hasCarry(a, b int) bool {
	for a > 0 && b > 0 {
		if a%10+b%10 >= 10 {
			return true
		}
		a /= 10
		b /= 10
	}
	return false
}

// needsBorrow reports whether subtracting b from a requires borrowing.
// Assumes a >= b.
func needsBorrow(a, b int) bool {
	for b > 0 {
		if a%10 < b%10 {
			return true
		}
		a /= 10
		b /= 10
	}
	return false
}

// gcd returns the greatest common divisor of two non-negative integers.
func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
