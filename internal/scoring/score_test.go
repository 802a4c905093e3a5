package scoring

import "testing"

func TestCalculateScore_ExactMatch(t *testing.T) {
	tests := []struct {
		student, correct, subcategory string
		expected                      int
	}{
		{"42", "42", "addition", 10},
		{" 42 ", "42", "addition", 10},
		{"42", "43", "addition", 0},
		{"", "42", "addition", 0},
		{"17", "17", "mixedArithmetic", 10},
		{"abc", "ABC", "addition", 10}, // case-insensitive
	}
	for _, tt := range tests {
		got := CalculateScore(tt.student, tt.correct, tt.subcategory)
		if got != tt.expected {
			t.Errorf("CalculateScore(%q, %q, %q) = %d, want %d",
				tt.student, tt.correct, tt.subcategory, got, tt.expected)
		}
	}
}

func TestCalculateScore_FractionEquivalence(t *testing.T) {
	tests := []struct {
		student, correct string
		expected         int
	}{
		{"1/2", "2/4", 10},
		{"2/4", "1/2", 10},
		{"3/4", "1/2", 0},
		{"2", "2/1", 10},
		{"4/2", "2", 10},
		{"1/2", "1/2", 10},
		{"0", "0/5", 10},
		{"1/0", "1/2", 0},  // zero denominator never matches
		{"abc", "1/2", 0},  // unparseable
		{" 2/4 ", "1/2", 10},
	}
	for _, tt := range tests {
		for _, sub := range []string{"fractionAddition", "fractionSubtraction"} {
			got := CalculateScore(tt.student, tt.correct, sub)
			if got != tt.expected {
				t.Errorf("CalculateScore(%q, %q, %q) = %d, want %d",
					tt.student, tt.correct, sub, got, tt.expected)
			}
		}
	}
}

func TestCalculateScore_IdempotentOnSelf(t *testing.T) {
	for _, answer := range []string{"7", "123", "5/6", "0"} {
		if got := CalculateScore(answer, answer, "subtraction"); got != 10 {
			t.Errorf("CalculateScore(%q, %q, subtraction) = %d, want 10", answer, answer, got)
		}
	}
}
