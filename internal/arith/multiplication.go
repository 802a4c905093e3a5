package arith

import "fmt"

// multiplicationRegroups reports whether multiplying a two-digit number by a
// one-digit multiplier carries out of the ones column.
func multiplicationRegroups(a, b int) bool {
	return (a%10)*b >= 10
}

// Multiplication generates a multiplication fact. Level 2 searches for a
// two-digit-by-one-digit product that avoids regrouping; level 3 requires
// regrouping. Both searches are bounded and fall back to curated pairs.
func (g *Generator) Multiplication(level int) (Fact, error) {
	if err := checkLevel(level); err != nil {
		return Fact{}, err
	}

	switch level {
	case 1:
		a := g.intn(2, 9)
		b := g.intn(2, 9)
		return multiplicationFact(a, b), nil

	case 2, 3:
		wantRegroup := level == 3
		for attempt := 0; attempt < maxAttempts; attempt++ {
			a := g.intn(11, 99)
			b := g.intn(2, 9)
			if multiplicationRegroups(a, b) == wantRegroup {
				return multiplicationFact(a, b), nil
			}
		}
		pairs := multiplicationFallbacks[level]
		pair := pairs[g.r.Intn(len(pairs))]
		return multiplicationFact(pair[0], pair[1]), nil

	case 4:
		a := g.intn(11, 99)
		b := g.intn(11, 99)
		return multiplicationFact(a, b), nil

	default: // 5
		a := g.intn(100, 999)
		b := g.intn(11, 99)
		return multiplicationFact(a, b), nil
	}
}

func multiplicationFact(a, b int) Fact {
	return Fact{
		Question: fmt.Sprintf("%d × %d", a, b),
		Answer:   fmt.Sprintf("%d", a*b),
	}
}
