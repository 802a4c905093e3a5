package arith

import "fmt"

// subtractionRanges gives the minuend and subtrahend ranges per level.
// The minuend range extends past the subtrahend's so borrowing is reachable.
var subtractionRanges = [6][2][2]int{
	1: {{2, 18}, {1, 9}},
	2: {{20, 99}, {1, 9}},
	3: {{30, 99}, {10, 99}},
	4: {{200, 999}, {100, 999}},
	5: {{2000, 9999}, {100, 9999}},
}

// Subtraction generates a subtraction fact with a non-negative result.
// At levels 1-3 the presence or absence of borrowing is chosen randomly with
// the same bounded search and curated fallback as Addition.
func (g *Generator) Subtraction(level int) (Fact, error) {
	if err := checkLevel(level); err != nil {
		return Fact{}, err
	}

	ar, br := subtractionRanges[level][0], subtractionRanges[level][1]

	if level <= 3 {
		wantBorrow := g.r.Intn(2) == 0
		for attempt := 0; attempt < maxAttempts; attempt++ {
			a := g.intn(ar[0], ar[1])
			b := g.intn(br[0], br[1])
			if a < b {
				a, b = b, a
			}
			if needsBorrow(a, b) == wantBorrow {
				return subtractionFact(a, b), nil
			}
		}
		pair := g.pickFallback(subtractionFallbacks[level], wantBorrow)
		return subtractionFact(pair[0], pair[1]), nil
	}

	a := g.intn(ar[0], ar[1])
	b := g.intn(br[0], br[1])
	if a < b {
		a, b = b, a
	}
	return subtractionFact(a, b), nil
}

func subtractionFact(a, b int) Fact {
	return Fact{
		Question: fmt.Sprintf("%d - %d", a, b),
		Answer:   fmt.Sprintf("%d", a-b),
	}
}
