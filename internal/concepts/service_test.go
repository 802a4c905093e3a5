package concepts

import (
	"math/rand"
	"testing"

	"github.com/vinciapp/vinci/internal/grades"
)

func testService() *Service {
	return NewService(rand.New(rand.NewSource(11)))
}

func TestGet_Known(t *testing.T) {
	for _, id := range []string{"addition", "subtraction", "multiplication", "division", "fractions", "mixedArithmetic"} {
		c, err := Get(id)
		if err != nil {
			t.Errorf("Get(%q): %v", id, err)
		}
		if c.ID != id {
			t.Errorf("Get(%q).ID = %q", id, c.ID)
		}
	}
}

func TestGet_Unknown(t *testing.T) {
	if _, err := Get("algebra"); err == nil {
		t.Error("expected error for unknown concept")
	}
}

func TestList_All(t *testing.T) {
	infos, err := List("")
	if err != nil {
		t.Fatal(err)
	}
	if len(infos) != len(registry) {
		t.Errorf("List(\"\") returned %d concepts, want %d", len(infos), len(registry))
	}
}

func TestList_FilteredByGrade(t *testing.T) {
	infos, err := List(grades.Kindergarten)
	if err != nil {
		t.Fatal(err)
	}
	for _, info := range infos {
		if !info.GradeAppropriate {
			t.Errorf("filtered list contains inappropriate concept %q", info.ID)
		}
	}
	ids := make(map[string]bool)
	for _, info := range infos {
		ids[info.ID] = true
	}
	if !ids["addition"] || !ids["subtraction"] {
		t.Error("Kindergarten should include addition and subtraction")
	}
	if ids["mixedArithmetic"] || ids["fractions"] {
		t.Error("Kindergarten should exclude mixedArithmetic and fractions")
	}
}

func TestList_InvalidGrade(t *testing.T) {
	if _, err := List(grades.Grade("13th Grade")); err == nil {
		t.Error("expected error for unsupported grade")
	}
}

func TestIsAppropriateForGrade(t *testing.T) {
	tests := []struct {
		concept  string
		grade    grades.Grade
		expected bool
	}{
		{"addition", grades.Third, true},
		{"addition", grades.Tenth, false},
		{"mixedArithmetic", grades.Twelfth, true},
		{"mixedArithmetic", grades.First, false},
		{"fractions", grades.Fourth, true},
		{"division", grades.Second, false},
	}
	for _, tt := range tests {
		got, err := IsAppropriateForGrade(tt.concept, tt.grade)
		if err != nil {
			t.Errorf("IsAppropriateForGrade(%q, %q): %v", tt.concept, tt.grade, err)
			continue
		}
		if got != tt.expected {
			t.Errorf("IsAppropriateForGrade(%q, %q) = %v, want %v", tt.concept, tt.grade, got, tt.expected)
		}
	}

	if _, err := IsAppropriateForGrade("algebra", grades.Third); err == nil {
		t.Error("expected error for unknown concept")
	}
	if _, err := IsAppropriateForGrade("addition", grades.Grade("Preschool")); err == nil {
		t.Error("expected error for unsupported grade")
	}
}

func TestGenerate_Metadata(t *testing.T) {
	s := testService()
	p, err := s.Generate("addition", 2, grades.Third)
	if err != nil {
		t.Fatal(err)
	}
	if p.Subcategory != "addition" {
		t.Errorf("subcategory = %q, want addition", p.Subcategory)
	}
	if p.Difficulty != 2 {
		t.Errorf("difficulty = %d, want 2", p.Difficulty)
	}
	// 3rd grade ratio is 2.5; base time for addition level 2 is 10s.
	if p.EstimatedSeconds != 25 {
		t.Errorf("estimated seconds = %v, want 25", p.EstimatedSeconds)
	}
	if p.Question == "" || p.Answer == "" {
		t.Error("empty question or answer")
	}
}

func TestGenerate_GradeRatioScalesTime(t *testing.T) {
	s := testService()
	young, err := s.Generate("addition", 3, grades.Kindergarten)
	if err != nil {
		t.Fatal(err)
	}
	old, err := s.Generate("addition", 3, grades.Twelfth)
	if err != nil {
		t.Fatal(err)
	}
	if young.EstimatedSeconds <= old.EstimatedSeconds {
		t.Errorf("Kindergarten time %v should exceed 12th Grade time %v",
			young.EstimatedSeconds, old.EstimatedSeconds)
	}
}

func TestGenerate_FractionSubcategories(t *testing.T) {
	s := testService()
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		p, err := s.Generate("fractions", 2, grades.Fourth)
		if err != nil {
			t.Fatal(err)
		}
		seen[p.Subcategory] = true
	}
	if !seen["fractionAddition"] || !seen["fractionSubtraction"] {
		t.Errorf("expected both fraction subcategories, saw %v", seen)
	}
}

func TestGenerate_MixedStepSubcategoryByDifficulty(t *testing.T) {
	s := testService()
	for i := 0; i < 20; i++ {
		p, err := s.Generate("mixedArithmetic", 2, grades.Fifth)
		if err != nil {
			t.Fatal(err)
		}
		if p.Subcategory != "twoStep" {
			t.Errorf("difficulty 2 subcategory = %q, want twoStep", p.Subcategory)
		}
		p, err = s.Generate("mixedArithmetic", 4, grades.Fifth)
		if err != nil {
			t.Fatal(err)
		}
		if p.Subcategory != "threeStep" {
			t.Errorf("difficulty 4 subcategory = %q, want threeStep", p.Subcategory)
		}
	}
}

func TestGenerate_Errors(t *testing.T) {
	s := testService()
	if _, err := s.Generate("algebra", 2, grades.Third); err == nil {
		t.Error("expected error for unknown concept")
	}
	if _, err := s.Generate("addition", 0, grades.Third); err == nil {
		t.Error("expected error for difficulty 0")
	}
	if _, err := s.Generate("addition", 2, grades.Grade("College")); err == nil {
		t.Error("expected error for unsupported grade")
	}
}
