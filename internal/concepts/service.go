// Package concepts maps concept ids to problem generators, per-difficulty
// estimated solve times, and grade-appropriateness checks.
//
// Concepts with several subcategories pick one at random per problem.
// Mixed arithmetic is the exception: its step count is a function of the
// difficulty level (two steps through level 2, three from level 3), so its
// subcategory follows the sampled difficulty instead of a coin flip.
package concepts

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vinciapp/vinci/internal/arith"
	"github.com/vinciapp/vinci/internal/grades"
	"github.com/vinciapp/vinci/internal/mixed"
)

// Problem is one generated question with registry metadata attached.
type Problem struct {
	Question         string
	Answer           string
	Subcategory      string
	Difficulty       int
	EstimatedSeconds float64
}

// Service generates problems for registered concepts.
type Service struct {
	r     *rand.Rand
	basic *arith.Generator
	steps *mixed.Generator
}

// NewService creates a Service. A nil source seeds from the current time;
// the arithmetic generators share the injected source.
func NewService(r *rand.Rand) *Service {
	if r == nil {
		r = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Service{
		r:     r,
		basic: arith.New(r),
		steps: mixed.New(r),
	}
}

// Get returns the concept with the given id.
func Get(id string) (Concept, error) {
	for _, c := range registry {
		if c.ID == id {
			return c, nil
		}
	}
	return Concept{}, fmt.Errorf("unknown concept: %q", id)
}

// List returns every concept's Info. When grade is non-empty the list is
// filtered to grade-appropriate concepts; an empty grade lists everything.
func List(grade grades.Grade) ([]Info, error) {
	if grade != "" && !grade.Valid() {
		return nil, fmt.Errorf("unsupported grade level: %q", string(grade))
	}

	var out []Info
	for _, c := range registry {
		appropriate := grade == "" || c.AppropriateFor(grade)
		if grade != "" && !appropriate {
			continue
		}
		out = append(out, Info{
			ID:               c.ID,
			DisplayName:      c.DisplayName,
			Category:         c.Category,
			Subcategories:    c.Subcategories,
			GradeAppropriate: appropriate,
		})
	}
	return out, nil
}

// IsAppropriateForGrade reports whether a concept suits a grade level.
// Unknown concept ids and invalid grades are errors.
func IsAppropriateForGrade(conceptID string, grade grades.Grade) (bool, error) {
	c, err := Get(conceptID)
	if err != nil {
		return false, err
	}
	if !grade.Valid() {
		return false, fmt.Errorf("unsupported grade level: %q", string(grade))
	}
	return c.AppropriateFor(grade), nil
}

// Generate produces one problem for the concept at the given difficulty.
// The estimated solve time comes from the static per-concept, per-difficulty
// table scaled by the grade's time-adjustment ratio.
func (s *Service) Generate(conceptID string, difficulty int, grade grades.Grade) (Problem, error) {
	c, err := Get(conceptID)
	if err != nil {
		return Problem{}, err
	}
	ratio, err := grade.TimeAdjustmentRatio()
	if err != nil {
		return Problem{}, err
	}
	if difficulty < 1 || difficulty > 5 {
		return Problem{}, fmt.Errorf("difficulty level %d out of range 1-5", difficulty)
	}

	subcategory, fact, err := s.generateFact(c, difficulty)
	if err != nil {
		return Problem{}, err
	}

	return Problem{
		Question:         fact.Question,
		Answer:           fact.Answer,
		Subcategory:      subcategory,
		Difficulty:       difficulty,
		EstimatedSeconds: baseTimeSeconds[c.ID][difficulty] * ratio,
	}, nil
}

// generateFact dispatches to the generator for the concept, choosing a
// subcategory at random when the concept has several. Mixed arithmetic is
// the exception: its step count is fixed by the difficulty level.
func (s *Service) generateFact(c Concept, difficulty int) (string, arith.Fact, error) {
	switch c.ID {
	case "addition":
		f, err := s.basic.Addition(difficulty)
		return "addition", f, err
	case "subtraction":
		f, err := s.basic.Subtraction(difficulty)
		return "subtraction", f, err
	case "multiplication":
		f, err := s.basic.Multiplication(difficulty)
		return "multiplication", f, err
	case "division":
		f, err := s.basic.Division(difficulty)
		return "division", f, err
	case "fractions":
		sub := c.Subcategories[s.r.Intn(len(c.Subcategories))]
		if sub == "fractionAddition" {
			f, err := s.basic.FractionAddition(difficulty)
			return sub, f, err
		}
		f, err := s.basic.FractionSubtraction(difficulty)
		return sub, f, err
	case "mixedArithmetic":
		sub := "twoStep"
		if difficulty >= 3 {
			sub = "threeStep"
		}
		f, err := s.steps.Generate(difficulty)
		return sub, f, err
	default:
		return "", arith.Fact{}, fmt.Errorf("no generator for concept %q", c.ID)
	}
}
