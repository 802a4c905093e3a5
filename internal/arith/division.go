package arith

import "fmt"

// divisionRanges gives the divisor and quotient ranges per level. The
// dividend is constructed as divisor × quotient so division is always exact.
var divisionRanges = [6][2][2]int{
	1: {{2, 5}, {1, 9}},
	2: {{2, 9}, {2, 9}},
	3: {{2, 9}, {10, 99}},
	4: {{3, 12}, {10, 99}},
	5: {{11, 25}, {10, 99}},
}

// Division generates a division fact with an exact integer quotient.
func (g *Generator) Division(level int) (Fact, error) {
	if err := checkLevel(level); err != nil {
		return Fact{}, err
	}

	dr, qr := divisionRanges[level][0], divisionRanges[level][1]
	divisor := g.intn(dr[0], dr[1])
	quotient := g.intn(qr[0], qr[1])
	dividend := divisor * quotient

	return Fact{
		Question: fmt.Sprintf("%d ÷ %d", dividend, divisor),
		Answer:   fmt.Sprintf("%d", quotient),
	}, nil
}
