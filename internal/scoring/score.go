// Package scoring grades student answers against a problem's canonical
// answer. A problem is worth 0 or 10 points; the score always reflects the
// latest attempt only.
package scoring

import (
	"fmt"
	"strconv"
	"strings"
)

// Points awarded for a correct answer.
const Correct = 10

// CalculateScore compares a student's answer against the correct answer for
// the given subcategory and returns 0 or 10.
//
// Fraction subcategories accept any equivalent fraction ("2/4" matches
// "1/2", "2" matches "2/1"). Everything else is a trimmed, case-insensitive
// string match.
func CalculateScore(studentAnswer, correctAnswer, subcategory string) int {
	studentAnswer = strings.TrimSpace(studentAnswer)
	if studentAnswer == "" {
		return 0
	}

	if isFractionSubcategory(subcategory) {
		ns, err := normalizeFraction(studentAnswer)
		if err != nil {
			return 0
		}
		nc, err := normalizeFraction(correctAnswer)
		if err != nil {
			return 0
		}
		if ns == nc {
			return Correct
		}
		return 0
	}

	if strings.EqualFold(studentAnswer, strings.TrimSpace(correctAnswer)) {
		return Correct
	}
	return 0
}

// isFractionSubcategory reports whether answers in the subcategory are
// compared by fraction equivalence.
func isFractionSubcategory(subcategory string) bool {
	return strings.Contains(strings.ToLower(subcategory), "fraction")
}

// normalizeFraction reduces an "a/b" or bare-integer answer to a canonical
// lowest-terms form with the sign on the numerator.
func normalizeFraction(s string) (string, error) {
	s = strings.TrimSpace(s)

	num, den, err := parseFraction(s)
	if err != nil {
		return "", err
	}
	if den == 0 {
		return "", fmt.Errorf("zero denominator")
	}
	if den < 0 {
		num = -num
		den = -den
	}
	g := gcd(abs(num), den)
	num /= g
	den /= g
	return fmt.Sprintf("%d/%d", num, den), nil
}

// parseFraction parses "a/b" into numerator and denominator. A bare integer
// parses as n/1.
func parseFraction(s string) (int64, int64, error) {
	if !strings.Contains(s, "/") {
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return 0, 0, fmt.Errorf("invalid integer: %w", err)
		}
		return n, 1, nil
	}
	parts := strings.SplitN(s, "/", 2)
	num, err := strconv.ParseInt(strings.TrimSpace(parts[0]), 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid numerator: %w", err)
	}
	den, err := strconv.ParseInt(strings.TrimSpace(parts[1]), 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid denominator: %w", err)
	}
	return num, den, nil
}

// gcd returns the greatest common divisor of a and b.
// Both a and b must be non-negative.
func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// abs returns the absolute value of n.
func abs(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}
