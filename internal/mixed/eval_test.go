package mixed

import "testing"

func TestEval_Precedence(t *testing.T) {
	tests := []struct {
		expr     string
		expected int
	}{
		{"2 + 3 × 4", 14},
		{"2 × 3 + 4", 10},
		{"(2 + 3) × 4", 20},
		{"20 - 3 × 4", 8},
		{"12 ÷ 4 + 1", 4},
		{"24 ÷ (2 + 4)", 4},
		{"10 - 2 - 3", 5},
		{"2 × 3 × 4", 24},
		{"100 ÷ 5 ÷ 4", 5},
		{"7", 7},
		{"(7)", 7},
		{"3 * 4 + 18 / 6", 15},
	}
	for _, tt := range tests {
		got, err := Eval(tt.expr)
		if err != nil {
			t.Errorf("Eval(%q) error: %v", tt.expr, err)
			continue
		}
		if got != tt.expected {
			t.Errorf("Eval(%q) = %d, want %d", tt.expr, got, tt.expected)
		}
	}
}

func TestEval_Errors(t *testing.T) {
	for _, expr := range []string{
		"",
		"2 +",
		"(2 + 3",
		"7 ÷ 2",   // inexact
		"5 ÷ 0",   // division by zero
		"2 3",     // missing operator
		"+ 2",     // leading operator
		"2 + * 3", // doubled operator
	} {
		if _, err := Eval(expr); err == nil {
			t.Errorf("Eval(%q) should fail", expr)
		}
	}
}

func TestStripRedundantParens(t *testing.T) {
	tests := []struct {
		expr     string
		expected string
	}{
		// Parens around a higher-precedence term change nothing.
		{"(2 × 3) + 4", "2 × 3 + 4"},
		// Parens that force addition before multiplication must stay.
		{"(2 + 3) × 4", "(2 + 3) × 4"},
		// Division grouping must stay.
		{"24 ÷ (2 + 4)", "24 ÷ (2 + 4)"},
		// No parens at all passes through.
		{"2 + 3 - 1", "2 + 3 - 1"},
	}
	for _, tt := range tests {
		if got := stripRedundantParens(tt.expr); got != tt.expected {
			t.Errorf("stripRedundantParens(%q) = %q, want %q", tt.expr, got, tt.expected)
		}
	}
}
