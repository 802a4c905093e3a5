package mixed

import "fmt"

// pattern instantiates one structural question shape at a difficulty level.
// It returns the expression text, its value, and whether the instantiation
// satisfied the pattern's constraints.
type pattern func(g *Generator, level int) (expr string, value int, ok bool)

// twoStepPatterns chain exactly two operations.
var twoStepPatterns = []pattern{
	// a + b - c
	func(g *Generator, level int) (string, int, bool) {
		a, b, c := g.operand(level), g.operand(level), g.operand(level)
		v := a + b - c
		return fmt.Sprintf("%d + %d - %d", a, b, c), v, v >= 0
	},
	// a × b + c
	func(g *Generator, level int) (string, int, bool) {
		a, b, c := g.operand(level), g.operand(level), g.operand(level)
		return fmt.Sprintf("%d × %d + %d", a, b, c), a*b + c, true
	},
	// a × b - c
	func(g *Generator, level int) (string, int, bool) {
		a, b, c := g.operand(level), g.operand(level), g.operand(level)
		v := a*b - c
		return fmt.Sprintf("%d × %d - %d", a, b, c), v, v >= 0
	},
	// a ÷ b + c, dividend built as a product so division is exact
	func(g *Generator, level int) (string, int, bool) {
		b, q, c := g.operand(level), g.operand(level), g.operand(level)
		return fmt.Sprintf("%d ÷ %d + %d", b*q, b, c), q + c, true
	},
	// (a + b) × c
	func(g *Generator, level int) (string, int, bool) {
		a, b, c := g.operand(level), g.operand(level), g.operand(level)
		return fmt.Sprintf("(%d + %d) × %d", a, b, c), (a + b) * c, true
	},
	// a - b + c
	func(g *Generator, level int) (string, int, bool) {
		a, b, c := g.operand(level), g.operand(level), g.operand(level)
		if a < b {
			a, b = b, a
		}
		return fmt.Sprintf("%d - %d + %d", a, b, c), a - b + c, true
	},
}

// threeStepPatterns chain exactly three operations.
var threeStepPatterns = []pattern{
	// a × b + c - d
	func(g *Generator, level int) (string, int, bool) {
		a, b, c, d := g.operand(level), g.operand(level), g.operand(level), g.operand(level)
		v := a*b + c - d
		return fmt.Sprintf("%d × %d + %d - %d", a, b, c, d), v, v >= 0
	},
	// (a + b) × c - d
	func(g *Generator, level int) (string, int, bool) {
		a, b, c, d := g.operand(level), g.operand(level), g.operand(level), g.operand(level)
		v := (a+b)*c - d
		return fmt.Sprintf("(%d + %d) × %d - %d", a, b, c, d), v, v >= 0
	},
	// a ÷ (b + c) + d, dividend built from the parenthesized sum
	func(g *Generator, level int) (string, int, bool) {
		b, c, q, d := g.operand(level), g.operand(level), g.operand(level), g.operand(level)
		sum := b + c
		return fmt.Sprintf("%d ÷ (%d + %d) + %d", sum*q, b, c, d), q + d, true
	},
	// (a - b) × c + d
	func(g *Generator, level int) (string, int, bool) {
		a, b, c, d := g.operand(level), g.operand(level), g.operand(level), g.operand(level)
		if a < b {
			a, b = b, a
		}
		return fmt.Sprintf("(%d - %d) × %d + %d", a, b, c, d), (a-b)*c + d, true
	},
	// a + b × c - d
	func(g *Generator, level int) (string, int, bool) {
		a, b, c, d := g.operand(level), g.operand(level), g.operand(level), g.operand(level)
		v := a + b*c - d
		return fmt.Sprintf("%d + %d × %d - %d", a, b, c, d), v, v >= 0
	},
	// a ÷ b × c - d, dividend built as a product
	func(g *Generator, level int) (string, int, bool) {
		b, q, c, d := g.operand(level), g.operand(level), g.operand(level), g.operand(level)
		v := q*c - d
		return fmt.Sprintf("%d ÷ %d × %d - %d", b*q, b, c, d), v, v >= 0
	},
}
