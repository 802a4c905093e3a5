package arith

import "fmt"

// additionRanges gives the operand ranges per difficulty level.
var additionRanges = [6][2][2]int{
	1: {{1, 9}, {1, 9}},
	2: {{10, 99}, {1, 9}},
	3: {{10, 99}, {10, 99}},
	4: {{100, 999}, {100, 999}},
	5: {{1000, 9999}, {100, 9999}},
}

// Addition generates an addition fact. At levels 1-3 the presence or absence
// of carrying is chosen randomly and the generator retries until the chosen
// state is hit, falling back to a curated example if the search exhausts.
func (g *Generator) Addition(level int) (Fact, error) {
	if err := checkLevel(level); err != nil {
		return Fact{}, err
	}

	ar, br := additionRanges[level][0], additionRanges[level][1]

	if level <= 3 {
		wantCarry := g.r.Intn(2) == 0
		for attempt := 0; attempt < maxAttempts; attempt++ {
			a := g.intn(ar[0], ar[1])
			b := g.intn(br[0], br[1])
			if hasCarry(a, b) == wantCarry {
				return additionFact(a, b), nil
			}
		}
		pair := g.pickFallback(additionFallbacks[level], wantCarry)
		return additionFact(pair[0], pair[1]), nil
	}

	a := g.intn(ar[0], ar[1])
	b := g.intn(br[0], br[1])
	return additionFact(a, b), nil
}

func additionFact(a, b int) Fact {
	return Fact{
		Question: fmt.Sprintf("%d + %d", a, b),
		Answer:   fmt.Sprintf("%d", a+b),
	}
}

// pickFallback selects a random curated pair with the requested carry state.
func (g *Generator) pickFallback(set fallbackSet, withCarry bool) [2]int {
	pairs := set.without
	if withCarry {
		pairs = set.with
	}
	return pairs[g.r.Intn(len(pairs))]
}
