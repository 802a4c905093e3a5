package arith

import (
	"math/rand"
	"strconv"
	"strings"
	"testing"
)

func testGen() *Generator {
	return New(rand.New(rand.NewSource(42)))
}

// parseBinary splits "a op b" into its operands and operator.
func parseBinary(t *testing.T, question string) (int, string, int) {
	t.Helper()
	parts := strings.Fields(question)
	if len(parts) != 3 {
		t.Fatalf("malformed question %q", question)
	}
	a, err := strconv.Atoi(parts[0])
	if err != nil {
		t.Fatalf("bad operand in %q: %v", question, err)
	}
	b, err := strconv.Atoi(parts[2])
	if err != nil {
		t.Fatalf("bad operand in %q: %v", question, err)
	}
	return a, parts[1], b
}

func TestAddition_AnswerMatchesQuestion(t *testing.T) {
	g := testGen()
	for level := 1; level <= 5; level++ {
		for i := 0; i < 200; i++ {
			f, err := g.Addition(level)
			if err != nil {
				t.Fatalf("level %d: %v", level, err)
			}
			a, op, b := parseBinary(t, f.Question)
			if op != "+" {
				t.Fatalf("level %d: unexpected operator %q", level, op)
			}
			if f.Answer != strconv.Itoa(a+b) {
				t.Errorf("level %d: %s = %s, want %d", level, f.Question, f.Answer, a+b)
			}
		}
	}
}

func TestSubtraction_NeverNegative(t *testing.T) {
	g := testGen()
	for level := 1; level <= 5; level++ {
		for i := 0; i < 200; i++ {
			f, err := g.Subtraction(level)
			if err != nil {
				t.Fatalf("level %d: %v", level, err)
			}
			a, op, b := parseBinary(t, f.Question)
			if op != "-" {
				t.Fatalf("unexpected operator %q", op)
			}
			if a < b {
				t.Errorf("level %d: %s yields negative result", level, f.Question)
			}
			if f.Answer != strconv.Itoa(a-b) {
				t.Errorf("level %d: %s = %s, want %d", level, f.Question, f.Answer, a-b)
			}
		}
	}
}

func TestMultiplication_AnswerMatchesQuestion(t *testing.T) {
	g := testGen()
	for level := 1; level <= 5; level++ {
		for i := 0; i < 200; i++ {
			f, err := g.Multiplication(level)
			if err != nil {
				t.Fatalf("level %d: %v", level, err)
			}
			a, op, b := parseBinary(t, f.Question)
			if op != "×" {
				t.Fatalf("unexpected operator %q", op)
			}
			if f.Answer != strconv.Itoa(a*b) {
				t.Errorf("level %d: %s = %s, want %d", level, f.Question, f.Answer, a*b)
			}
		}
	}
}

func TestMultiplication_RegroupConstraint(t *testing.T) {
	g := testGen()
	for i := 0; i < 100; i++ {
		f, _ := g.Multiplication(2)
		a, _, b := parseBinary(t, f.Question)
		if multiplicationRegroups(a, b) {
			t.Errorf("level 2 should avoid regrouping: %s", f.Question)
		}
	}
	for i := 0; i < 100; i++ {
		f, _ := g.Multiplication(3)
		a, _, b := parseBinary(t, f.Question)
		if !multiplicationRegroups(a, b) {
			t.Errorf("level 3 should require regrouping: %s", f.Question)
		}
	}
}

func TestDivision_AlwaysExact(t *testing.T) {
	g := testGen()
	for level := 1; level <= 5; level++ {
		for i := 0; i < 200; i++ {
			f, err := g.Division(level)
			if err != nil {
				t.Fatalf("level %d: %v", level, err)
			}
			a, op, b := parseBinary(t, f.Question)
			if op != "÷" {
				t.Fatalf("unexpected operator %q", op)
			}
			if b == 0 || a%b != 0 {
				t.Errorf("level %d: %s is not exact", level, f.Question)
			}
			if f.Answer != strconv.Itoa(a/b) {
				t.Errorf("level %d: %s = %s, want %d", level, f.Question, f.Answer, a/b)
			}
		}
	}
}

// parseFraction reads "n/d" or a bare integer as a (numerator, denominator) pair.
func parseFraction(t *testing.T, s string) (int, int) {
	t.Helper()
	if !strings.Contains(s, "/") {
		n, err := strconv.Atoi(s)
		if err != nil {
			t.Fatalf("bad fraction %q: %v", s, err)
		}
		return n, 1
	}
	parts := strings.SplitN(s, "/", 2)
	n, err := strconv.Atoi(parts[0])
	if err != nil {
		t.Fatalf("bad numerator in %q: %v", s, err)
	}
	d, err := strconv.Atoi(parts[1])
	if err != nil {
		t.Fatalf("bad denominator in %q: %v", s, err)
	}
	return n, d
}

func TestFractionAddition_AnswerCorrectAndReduced(t *testing.T) {
	g := testGen()
	for level := 1; level <= 5; level++ {
		for i := 0; i < 200; i++ {
			f, err := g.FractionAddition(level)
			if err != nil {
				t.Fatalf("level %d: %v", level, err)
			}
			ops := strings.Split(f.Question, " + ")
			if len(ops) != 2 {
				t.Fatalf("malformed question %q", f.Question)
			}
			n1, d1 := parseFraction(t, ops[0])
			n2, d2 := parseFraction(t, ops[1])
			an, ad := parseFraction(t, f.Answer)

			// Cross-multiply to compare without reducing.
			if (n1*d2+n2*d1)*ad != an*(d1*d2) {
				t.Errorf("level %d: %s = %s is wrong", level, f.Question, f.Answer)
			}
			if r := gcd(an, ad); ad > 1 && r != 1 {
				t.Errorf("level %d: answer %s not in lowest terms", level, f.Answer)
			}
		}
	}
}

func TestFractionSubtraction_AlwaysPositive(t *testing.T) {
	g := testGen()
	for level := 1; level <= 5; level++ {
		for i := 0; i < 200; i++ {
			f, err := g.FractionSubtraction(level)
			if err != nil {
				t.Fatalf("level %d: %v", level, err)
			}
			ops := strings.Split(f.Question, " - ")
			if len(ops) != 2 {
				t.Fatalf("malformed question %q", f.Question)
			}
			n1, d1 := parseFraction(t, ops[0])
			n2, d2 := parseFraction(t, ops[1])
			an, ad := parseFraction(t, f.Answer)

			num := n1*d2 - n2*d1
			if num <= 0 {
				t.Errorf("level %d: %s has non-positive result", level, f.Question)
			}
			if num*ad != an*(d1*d2) {
				t.Errorf("level %d: %s = %s is wrong", level, f.Question, f.Answer)
			}
			if r := gcd(an, ad); ad > 1 && r != 1 {
				t.Errorf("level %d: answer %s not in lowest terms", level, f.Answer)
			}
		}
	}
}

func TestFractionLikeDenominators_LowLevels(t *testing.T) {
	g := testGen()
	for level := 1; level <= 2; level++ {
		for i := 0; i < 100; i++ {
			f, _ := g.FractionAddition(level)
			ops := strings.Split(f.Question, " + ")
			_, d1 := parseFraction(t, ops[0])
			_, d2 := parseFraction(t, ops[1])
			if d1 != d2 {
				t.Errorf("level %d: expected like denominators, got %s", level, f.Question)
			}
		}
	}
}

func TestInvalidLevel(t *testing.T) {
	g := testGen()
	for _, level := range []int{0, 6, -1} {
		if _, err := g.Addition(level); err == nil {
			t.Errorf("Addition(%d) should fail", level)
		}
		if _, err := g.Division(level); err == nil {
			t.Errorf("Division(%d) should fail", level)
		}
		if _, err := g.FractionSubtraction(level); err == nil {
			t.Errorf("FractionSubtraction(%d) should fail", level)
		}
	}
}

func TestFallbackPairs_SatisfyTheirConstraint(t *testing.T) {
	for level, set := range additionFallbacks {
		for _, p := range set.with {
			if !hasCarry(p[0], p[1]) {
				t.Errorf("addition level %d: %d+%d should carry", level, p[0], p[1])
			}
		}
		for _, p := range set.without {
			if hasCarry(p[0], p[1]) {
				t.Errorf("addition level %d: %d+%d should not carry", level, p[0], p[1])
			}
		}
	}
	for level, set := range subtractionFallbacks {
		for _, p := range set.with {
			if p[0] < p[1] || !needsBorrow(p[0], p[1]) {
				t.Errorf("subtraction level %d: %d-%d should borrow", level, p[0], p[1])
			}
		}
		for _, p := range set.without {
			if p[0] < p[1] || needsBorrow(p[0], p[1]) {
				t.Errorf("subtraction level %d: %d-%d should not borrow", level, p[0], p[1])
			}
		}
	}
	for _, p := range multiplicationFallbacks[2] {
		if multiplicationRegroups(p[0], p[1]) {
			t.Errorf("multiplication level 2: %d×%d should not regroup", p[0], p[1])
		}
	}
	for _, p := range multiplicationFallbacks[3] {
		if !multiplicationRegroups(p[0], p[1]) {
			t.Errorf("multiplication level 3: %d×%d should regroup", p[0], p[1])
		}
	}
}

func TestFormatFraction(t *testing.T) {
	tests := []struct {
		n, d     int
		expected string
	}{
		{2, 4, "1/2"},
		{6, 3, "2"},
		{0, 5, "0"},
		{7, 7, "1"},
		{5, 10, "1/2"},
		{3, 7, "3/7"},
	}
	for _, tt := range tests {
		if got := formatFraction(tt.n, tt.d); got != tt.expected {
			t.Errorf("formatFraction(%d, %d) = %q, want %q", tt.n, tt.d, got, tt.expected)
		}
	}
}
