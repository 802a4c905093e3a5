package session

import (
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/vinciapp/vinci/internal/difficulty"
	"github.com/vinciapp/vinci/internal/grades"
)

// testClock drives the manager's clock so pacing math is deterministic.
type testClock struct {
	t time.Time
}

func (c *testClock) now() time.Time { return c.t }

func (c *testClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestManager(seed int64) (*Manager, *testClock) {
	clock := &testClock{t: time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)}
	m := NewManager(rand.New(rand.NewSource(seed)))
	m.now = clock.now
	return m, clock
}

func TestCreateFirstPage(t *testing.T) {
	m, _ := newTestManager(42)

	s, err := m.CreateFirstPage([]string{"addition"}, 600, 2, "3rd Grade")
	if err != nil {
		t.Fatalf("CreateFirstPage: %v", err)
	}
	if s.ID == "" {
		t.Error("session ID is empty")
	}
	if s.GradeLevel != grades.Third {
		t.Errorf("grade = %q, want %q", s.GradeLevel, grades.Third)
	}
	if len(s.Pages) != 1 {
		t.Fatalf("pages = %d, want 1", len(s.Pages))
	}

	page := s.Pages[0]
	if page.Number != 1 {
		t.Errorf("page number = %d, want 1", page.Number)
	}
	if len(page.Problems) < MinProblemsPerPage {
		t.Fatalf("problems = %d, want at least %d", len(page.Problems), MinProblemsPerPage)
	}

	budget, err := m.PageTargetTime(s, 1)
	if err != nil {
		t.Fatalf("PageTargetTime: %v", err)
	}
	if budget != 270 {
		t.Errorf("page 1 budget = %d, want 270", budget)
	}

	var sum, maxEst float64
	for i, pr := range page.Problems {
		if pr.Number != i+1 {
			t.Errorf("problem %d numbered %d", i, pr.Number)
		}
		if pr.Subcategory != "addition" {
			t.Errorf("problem %d subcategory = %q, want addition", pr.Number, pr.Subcategory)
		}
		if pr.Difficulty != 1 && pr.Difficulty != 2 {
			t.Errorf("problem %d difficulty = %d, want 1 or 2", pr.Number, pr.Difficulty)
		}
		sum += pr.EstimatedSeconds
		if pr.EstimatedSeconds > maxEst {
			maxEst = pr.EstimatedSeconds
		}
	}
	// The last problem may overshoot the budget by at most its own estimate.
	if sum > float64(budget)+maxEst {
		t.Errorf("estimated total %.1fs exceeds budget %ds by more than one problem", sum, budget)
	}
}

func TestCreateFirstPageNoDuplicateQuestions(t *testing.T) {
	m, _ := newTestManager(7)

	s, err := m.CreateFirstPage([]string{"addition", "subtraction"}, 900, 3, "4th Grade")
	if err != nil {
		t.Fatalf("CreateFirstPage: %v", err)
	}
	seen := make(map[string]bool)
	for _, pr := range s.Pages[0].Problems {
		if seen[pr.Question] {
			t.Errorf("duplicate question on page: %q", pr.Question)
		}
		seen[pr.Question] = true
	}
}

func TestConceptTimeSlices(t *testing.T) {
	t.Run("mixed arithmetic gets its own category half", func(t *testing.T) {
		slices, err := conceptTimeSlices([]string{"addition", "subtraction", "mixedArithmetic"}, 600)
		if err != nil {
			t.Fatalf("conceptTimeSlices: %v", err)
		}
		want := map[string]float64{
			"addition":        150,
			"subtraction":     150,
			"mixedArithmetic": 300,
		}
		for id, seconds := range want {
			if slices[id] != seconds {
				t.Errorf("slice for %s = %.1f, want %.1f", id, slices[id], seconds)
			}
		}
	})

	t.Run("single category splits evenly", func(t *testing.T) {
		slices, err := conceptTimeSlices([]string{"addition", "subtraction"}, 600)
		if err != nil {
			t.Fatalf("conceptTimeSlices: %v", err)
		}
		if slices["addition"] != 300 || slices["subtraction"] != 300 {
			t.Errorf("slices = %v, want 300 each", slices)
		}
	})

	t.Run("unknown concept", func(t *testing.T) {
		if _, err := conceptTimeSlices([]string{"calculus"}, 600); err == nil {
			t.Error("expected error for unknown concept")
		}
	})
}

func TestNewSessionValidation(t *testing.T) {
	m, _ := newTestManager(1)

	tests := []struct {
		name string
		in   NewSessionInput
	}{
		{"invalid grade", NewSessionInput{ConceptIDs: []string{"addition"}, TotalStudySeconds: 600, TotalPages: 2, GradeLevel: "13th Grade"}},
		{"no concepts", NewSessionInput{TotalStudySeconds: 600, TotalPages: 2, GradeLevel: "3rd Grade"}},
		{"unknown concept", NewSessionInput{ConceptIDs: []string{"calculus"}, TotalStudySeconds: 600, TotalPages: 2, GradeLevel: "3rd Grade"}},
		{"concept below grade range", NewSessionInput{ConceptIDs: []string{"mixedArithmetic"}, TotalStudySeconds: 600, TotalPages: 2, GradeLevel: "Kindergarten"}},
		{"zero pages", NewSessionInput{ConceptIDs: []string{"addition"}, TotalStudySeconds: 600, TotalPages: 0, GradeLevel: "3rd Grade"}},
		{"too many pages", NewSessionInput{ConceptIDs: []string{"addition"}, TotalStudySeconds: 600, TotalPages: 11, GradeLevel: "3rd Grade"}},
		{"zero study time", NewSessionInput{ConceptIDs: []string{"addition"}, TotalStudySeconds: 0, TotalPages: 2, GradeLevel: "3rd Grade"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := m.NewSession(tt.in); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestPageLocking(t *testing.T) {
	m, clock := newTestManager(11)

	s, err := m.CreateFirstPage([]string{"addition"}, 900, 3, "3rd Grade")
	if err != nil {
		t.Fatalf("CreateFirstPage: %v", err)
	}

	if _, err := m.GetOrCreatePage(s, 2); !errors.Is(err, ErrPageNotAccessible) {
		t.Errorf("page 2 before submitting page 1: err = %v, want ErrPageNotAccessible", err)
	}
	if _, err := m.GetOrCreatePage(s, 3); !errors.Is(err, ErrPageNotAccessible) {
		t.Errorf("page 3 before page 2 exists: err = %v, want ErrPageNotAccessible", err)
	}
	if m.CanAccessPage(s, 4) {
		t.Error("page beyond TotalPages reported accessible")
	}
	if m.CanAccessPage(s, 0) {
		t.Error("page 0 reported accessible")
	}

	clock.advance(3 * time.Minute)
	if _, err := m.SubmitPage(s, 1); err != nil {
		t.Fatalf("SubmitPage(1): %v", err)
	}
	page2, err := m.GetOrCreatePage(s, 2)
	if err != nil {
		t.Fatalf("page 2 after submitting page 1: %v", err)
	}
	if page2.Number != 2 {
		t.Errorf("page number = %d, want 2", page2.Number)
	}

	// Requesting an existing page must not regenerate it.
	again, err := m.GetOrCreatePage(s, 2)
	if err != nil {
		t.Fatalf("GetOrCreatePage(2) again: %v", err)
	}
	if again != page2 {
		t.Error("existing page was regenerated")
	}
}

func TestSubmitAnswer(t *testing.T) {
	m, clock := newTestManager(3)

	s, err := m.CreateFirstPage([]string{"addition"}, 600, 2, "3rd Grade")
	if err != nil {
		t.Fatalf("CreateFirstPage: %v", err)
	}
	page := s.Pages[0]
	problem := page.Problems[0]

	score, err := m.SubmitAnswer(s, 1, problem.Number, "not a number")
	if err != nil {
		t.Fatalf("SubmitAnswer wrong: %v", err)
	}
	if score != 0 {
		t.Errorf("wrong answer score = %d, want 0", score)
	}

	// The latest attempt alone determines the score.
	score, err = m.SubmitAnswer(s, 1, problem.Number, problem.Answer)
	if err != nil {
		t.Fatalf("SubmitAnswer correct: %v", err)
	}
	if score != 10 {
		t.Errorf("correct answer score = %d, want 10", score)
	}
	if got := len(problem.Attempts); got != 2 {
		t.Errorf("attempts = %d, want 2", got)
	}

	if _, err := m.SubmitAnswer(s, 9, 1, "1"); !errors.Is(err, ErrPageNotFound) {
		t.Errorf("missing page: err = %v, want ErrPageNotFound", err)
	}
	if _, err := m.SubmitAnswer(s, 1, 999, "1"); !errors.Is(err, ErrProblemNotFound) {
		t.Errorf("missing problem: err = %v, want ErrProblemNotFound", err)
	}

	clock.advance(2 * time.Minute)
	if _, err := m.SubmitPage(s, 1); err != nil {
		t.Fatalf("SubmitPage: %v", err)
	}
	if _, err := m.SubmitAnswer(s, 1, problem.Number, "5"); !errors.Is(err, ErrPageAlreadySubmitted) {
		t.Errorf("answer after submit: err = %v, want ErrPageAlreadySubmitted", err)
	}
}

func TestSubmitPage(t *testing.T) {
	m, clock := newTestManager(5)

	s, err := m.CreateFirstPage([]string{"addition"}, 600, 2, "3rd Grade")
	if err != nil {
		t.Fatalf("CreateFirstPage: %v", err)
	}
	page := s.Pages[0]

	// Answer every problem correctly.
	for _, pr := range page.Problems {
		if _, err := m.SubmitAnswer(s, 1, pr.Number, pr.Answer); err != nil {
			t.Fatalf("SubmitAnswer: %v", err)
		}
	}
	clock.advance(4 * time.Minute)

	res, err := m.SubmitPage(s, 1)
	if err != nil {
		t.Fatalf("SubmitPage: %v", err)
	}
	if res.PageNumber != 1 {
		t.Errorf("result page = %d, want 1", res.PageNumber)
	}
	if res.Performance.Accuracy != 1.0 {
		t.Errorf("accuracy = %v, want 1.0", res.Performance.Accuracy)
	}
	if res.Performance.CorrectAnswers != len(page.Problems) {
		t.Errorf("correct = %d, want %d", res.Performance.CorrectAnswers, len(page.Problems))
	}
	if got := page.ActualSeconds(); got != 240 {
		t.Errorf("actual seconds = %v, want 240", got)
	}

	if _, err := m.SubmitPage(s, 1); !errors.Is(err, ErrPageAlreadySubmitted) {
		t.Errorf("double submit: err = %v, want ErrPageAlreadySubmitted", err)
	}
	if _, err := m.SubmitPage(s, 9); !errors.Is(err, ErrPageNotFound) {
		t.Errorf("missing page: err = %v, want ErrPageNotFound", err)
	}
}

func TestStrugglingStudentNextPage(t *testing.T) {
	m, clock := newTestManager(21)

	s, err := m.CreateFirstPage([]string{"addition"}, 600, 2, "3rd Grade")
	if err != nil {
		t.Fatalf("CreateFirstPage: %v", err)
	}
	// Every answer wrong: page accuracy 0.
	for _, pr := range s.Pages[0].Problems {
		if _, err := m.SubmitAnswer(s, 1, pr.Number, "0"); err != nil {
			t.Fatalf("SubmitAnswer: %v", err)
		}
	}
	clock.advance(5 * time.Minute)
	res, err := m.SubmitPage(s, 1)
	if err != nil {
		t.Fatalf("SubmitPage: %v", err)
	}
	if res.Performance.Accuracy != 0 {
		t.Fatalf("accuracy = %v, want 0", res.Performance.Accuracy)
	}

	tier, err := difficulty.TierForPage(2, s.GradeLevel, &difficulty.PagePerformance{Accuracy: 0})
	if err != nil {
		t.Fatalf("TierForPage: %v", err)
	}
	if tier != difficulty.TierStruggling {
		t.Fatalf("tier = %q, want %q", tier, difficulty.TierStruggling)
	}

	page2, err := m.GetOrCreatePage(s, 2)
	if err != nil {
		t.Fatalf("GetOrCreatePage(2): %v", err)
	}

	cfg, err := difficulty.ForPage(2, s.GradeLevel, &difficulty.PagePerformance{Accuracy: 0})
	if err != nil {
		t.Fatalf("ForPage: %v", err)
	}
	allowed := make(map[int]bool)
	for _, lvl := range cfg.Levels {
		allowed[lvl] = true
	}
	for _, pr := range page2.Problems {
		if !allowed[pr.Difficulty] {
			t.Errorf("page 2 difficulty %d outside struggling levels %v", pr.Difficulty, cfg.Levels)
		}
	}
}

func TestPageTargetTimeFollowsPacing(t *testing.T) {
	m, clock := newTestManager(13)

	s, err := m.CreateFirstPage([]string{"addition"}, 600, 2, "3rd Grade")
	if err != nil {
		t.Fatalf("CreateFirstPage: %v", err)
	}
	page := s.Pages[0]
	for _, pr := range page.Problems {
		if _, err := m.SubmitAnswer(s, 1, pr.Number, pr.Answer); err != nil {
			t.Fatalf("SubmitAnswer: %v", err)
		}
	}

	// Finish in a quarter of the estimated time: a very fast page earns a
	// longer budget on the next one.
	est := page.EstimatedAnsweredSeconds()
	clock.advance(time.Duration(est/4) * time.Second)
	if _, err := m.SubmitPage(s, 1); err != nil {
		t.Fatalf("SubmitPage: %v", err)
	}

	target, err := m.PageTargetTime(s, 2)
	if err != nil {
		t.Fatalf("PageTargetTime(2): %v", err)
	}
	if target != 405 {
		t.Errorf("very fast page 2 target = %d, want 405", target)
	}

	if _, err := m.PageTargetTime(s, 3); !errors.Is(err, ErrPageNotAccessible) {
		t.Errorf("target for unreachable page: err = %v, want ErrPageNotAccessible", err)
	}
}
