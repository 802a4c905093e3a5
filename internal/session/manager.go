package session

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/vinciapp/vinci/internal/concepts"
	"github.com/vinciapp/vinci/internal/difficulty"
	"github.com/vinciapp/vinci/internal/grades"
	"github.com/vinciapp/vinci/internal/pacing"
	"github.com/vinciapp/vinci/internal/scoring"
)

// Precondition violations surfaced to callers. No partial mutation happens
// before any of these are returned.
var (
	ErrPageNotFound         = errors.New("page not found")
	ErrPageNotAccessible    = errors.New("previous page not yet submitted")
	ErrPageAlreadySubmitted = errors.New("page already submitted")
	ErrProblemNotFound      = errors.New("problem not found")
	ErrTooFewProblems       = errors.New("could not generate enough problems for page")
)

// maxGenerationAttempts caps generation tries per concept per page.
// Duplicate questions are discarded but still consume an attempt, so a
// pathological concept fails fast instead of spinning.
const maxGenerationAttempts = 50

// Manager builds and advances sessions. It holds the generators' random
// source; all mutation happens through pointer receivers on the session the
// caller owns, and the caller persists the session after each mutating call.
type Manager struct {
	r        *rand.Rand
	concepts *concepts.Service
	now      func() time.Time
}

// NewManager creates a Manager. A nil source seeds from the current time.
func NewManager(r *rand.Rand) *Manager {
	if r == nil {
		r = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Manager{
		r:        r,
		concepts: concepts.NewService(r),
		now:      time.Now,
	}
}

// NewSessionInput carries session creation parameters.
type NewSessionInput struct {
	UserID            string // empty for anonymous sessions
	ConceptIDs        []string
	TotalStudySeconds int
	TotalPages        int
	GradeLevel        string
	Semester          string
}

// NewSession validates the input and creates an empty session.
func (m *Manager) NewSession(in NewSessionInput) (*Session, error) {
	grade, err := grades.Parse(in.GradeLevel)
	if err != nil {
		return nil, err
	}
	if in.TotalPages < MinPages || in.TotalPages > MaxPages {
		return nil, fmt.Errorf("total pages %d out of range %d-%d", in.TotalPages, MinPages, MaxPages)
	}
	if in.TotalStudySeconds <= 0 {
		return nil, fmt.Errorf("total study time must be positive, got %d", in.TotalStudySeconds)
	}
	if len(in.ConceptIDs) == 0 {
		return nil, errors.New("at least one concept is required")
	}
	for _, id := range in.ConceptIDs {
		ok, err := concepts.IsAppropriateForGrade(id, grade)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, fmt.Errorf("concept %q is not appropriate for grade %q", id, in.GradeLevel)
		}
	}

	return &Session{
		ID:                uuid.New().String(),
		UserID:            in.UserID,
		GradeLevel:        grade,
		Semester:          in.Semester,
		TotalStudySeconds: in.TotalStudySeconds,
		TotalPages:        in.TotalPages,
		Concepts:          in.ConceptIDs,
		CreatedAt:         m.now(),
	}, nil
}

// CreateFirstPage creates a session and generates its first page in one
// step. The returned session carries the page; the caller persists it.
func (m *Manager) CreateFirstPage(conceptIDs []string, totalStudySeconds, totalPages int, gradeLevel string) (*Session, error) {
	s, err := m.NewSession(NewSessionInput{
		ConceptIDs:        conceptIDs,
		TotalStudySeconds: totalStudySeconds,
		TotalPages:        totalPages,
		GradeLevel:        gradeLevel,
	})
	if err != nil {
		return nil, err
	}
	if _, err := m.GetOrCreatePage(s, 1); err != nil {
		return nil, err
	}
	return s, nil
}

// CanAccessPage reports whether a page may be requested: every earlier page
// must already be submitted. It fails closed on any gap.
func (m *Manager) CanAccessPage(s *Session, pageNumber int) bool {
	if pageNumber < 1 || pageNumber > s.TotalPages {
		return false
	}
	for n := 1; n < pageNumber; n++ {
		p := s.FindPage(n)
		if p == nil || !p.Submitted() {
			return false
		}
	}
	return true
}

// GetOrCreatePage returns an existing page or builds the next one. Building
// page N requires page N-1 to be submitted; the new page is appended to
// s.Pages, and the caller owns persisting the mutated session.
func (m *Manager) GetOrCreatePage(s *Session, pageNumber int) (*Page, error) {
	if p := s.FindPage(pageNumber); p != nil {
		return p, nil
	}
	if !m.CanAccessPage(s, pageNumber) {
		return nil, fmt.Errorf("%w: page %d", ErrPageNotAccessible, pageNumber)
	}

	cfg, prev, err := m.difficultyForPage(s, pageNumber)
	if err != nil {
		return nil, err
	}
	budget, err := pacing.PageTargetTime(s.TotalStudySeconds, s.TotalPages, pageNumber, s.GradeLevel, prev)
	if err != nil {
		return nil, err
	}

	problems, err := m.generateProblems(s, cfg, budget)
	if err != nil {
		return nil, err
	}

	page := &Page{
		Number:      pageNumber,
		PresentedAt: m.now(),
		Problems:    problems,
	}
	s.Pages = append(s.Pages, page)
	return page, nil
}

// difficultyForPage resolves the difficulty configuration and the pacing
// stats for a page from the preceding page's performance.
func (m *Manager) difficultyForPage(s *Session, pageNumber int) (difficulty.Config, *pacing.PreviousPageStats, error) {
	if pageNumber <= 1 {
		cfg, err := difficulty.ForPage(1, s.GradeLevel, nil)
		return cfg, nil, err
	}

	prevPage := s.FindPage(pageNumber - 1)
	if prevPage == nil || !prevPage.Submitted() {
		return difficulty.Config{}, nil, fmt.Errorf("%w: page %d", ErrPageNotAccessible, pageNumber)
	}

	perf := prevPage.Performance()
	cfg, err := difficulty.ForPage(pageNumber, s.GradeLevel, &difficulty.PagePerformance{Accuracy: perf.Accuracy})
	if err != nil {
		return difficulty.Config{}, nil, err
	}
	stats := &pacing.PreviousPageStats{
		ActualSeconds:    prevPage.ActualSeconds(),
		EstimatedSeconds: prevPage.EstimatedAnsweredSeconds(),
	}
	return cfg, stats, nil
}

// generateProblems fills a page within the time budget. The budget splits
// by category first, then evenly across each category's concepts; each
// concept's slice is filled greedily, sampling difficulty per problem, until
// the slice is spent or the attempt cap hits. Duplicate question texts
// within the page are discarded without resetting the attempt count.
func (m *Manager) generateProblems(s *Session, cfg difficulty.Config, budgetSeconds int) ([]*Problem, error) {
	slices, err := conceptTimeSlices(s.Concepts, budgetSeconds)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool)
	var problems []*Problem

	for _, conceptID := range s.Concepts {
		remaining := slices[conceptID]
		for attempts := 0; remaining > 0 && attempts < maxGenerationAttempts; attempts++ {
			level := cfg.Sample(m.r)
			p, err := m.concepts.Generate(conceptID, level, s.GradeLevel)
			if err != nil {
				return nil, fmt.Errorf("generate %s problem: %w", conceptID, err)
			}
			if seen[p.Question] {
				continue
			}
			seen[p.Question] = true
			problems = append(problems, &Problem{
				Number:           len(problems) + 1,
				Question:         p.Question,
				Answer:           p.Answer,
				Subcategory:      p.Subcategory,
				Difficulty:       p.Difficulty,
				EstimatedSeconds: p.EstimatedSeconds,
			})
			remaining -= p.EstimatedSeconds
		}
	}

	if len(problems) < MinProblemsPerPage {
		return nil, fmt.Errorf("%w: got %d, need %d", ErrTooFewProblems, len(problems), MinProblemsPerPage)
	}
	return problems, nil
}

// conceptTimeSlices allocates the page budget per concept. The budget first
// splits evenly between the categories present (basic vs mixed arithmetic),
// then evenly across each category's concepts, so a lone mixed-arithmetic
// concept is not starved by several basic ones.
func conceptTimeSlices(conceptIDs []string, budgetSeconds int) (map[string]float64, error) {
	byCategory := make(map[concepts.Category][]string)
	for _, id := range conceptIDs {
		c, err := concepts.Get(id)
		if err != nil {
			return nil, err
		}
		byCategory[c.Category] = append(byCategory[c.Category], id)
	}

	categoryShare := float64(budgetSeconds) / float64(len(byCategory))
	slices := make(map[string]float64, len(conceptIDs))
	for _, ids := range byCategory {
		slice := categoryShare / float64(len(ids))
		for _, id := range ids {
			slices[id] = slice
		}
	}
	return slices, nil
}

// SubmitAnswer records an answer attempt on a problem of an unsubmitted
// page and recomputes the problem's score from this latest attempt alone.
func (m *Manager) SubmitAnswer(s *Session, pageNumber, problemNumber int, answer string) (int, error) {
	page := s.FindPage(pageNumber)
	if page == nil {
		return 0, fmt.Errorf("%w: page %d", ErrPageNotFound, pageNumber)
	}
	if page.Submitted() {
		return 0, fmt.Errorf("%w: page %d", ErrPageAlreadySubmitted, pageNumber)
	}

	var problem *Problem
	for _, pr := range page.Problems {
		if pr.Number == problemNumber {
			problem = pr
			break
		}
	}
	if problem == nil {
		return 0, fmt.Errorf("%w: problem %d on page %d", ErrProblemNotFound, problemNumber, pageNumber)
	}

	problem.Attempts = append(problem.Attempts, Attempt{Answer: answer, At: m.now()})
	problem.Score = scoring.CalculateScore(answer, problem.Answer, problem.Subcategory)
	return problem.Score, nil
}

// SubmitResult is returned by SubmitPage.
type SubmitResult struct {
	PageNumber  int         `json:"pageNumber"`
	SubmittedAt time.Time   `json:"submittedAt"`
	Performance Performance `json:"performance"`
}

// SubmitPage locks a page and returns its performance metrics. Submitting a
// missing or already-locked page is a precondition violation.
func (m *Manager) SubmitPage(s *Session, pageNumber int) (SubmitResult, error) {
	page := s.FindPage(pageNumber)
	if page == nil {
		return SubmitResult{}, fmt.Errorf("%w: page %d", ErrPageNotFound, pageNumber)
	}
	if page.Submitted() {
		return SubmitResult{}, fmt.Errorf("%w: page %d", ErrPageAlreadySubmitted, pageNumber)
	}

	now := m.now()
	page.SubmittedAt = &now
	return SubmitResult{
		PageNumber:  pageNumber,
		SubmittedAt: now,
		Performance: page.Performance(),
	}, nil
}

// PageTargetTime returns the time budget in seconds for a page of the
// session, derived the same way page creation derives it.
func (m *Manager) PageTargetTime(s *Session, pageNumber int) (int, error) {
	if pageNumber <= 1 {
		return pacing.PageTargetTime(s.TotalStudySeconds, s.TotalPages, pageNumber, s.GradeLevel, nil)
	}
	prevPage := s.FindPage(pageNumber - 1)
	if prevPage == nil || !prevPage.Submitted() {
		return 0, fmt.Errorf("%w: page %d", ErrPageNotAccessible, pageNumber)
	}
	stats := &pacing.PreviousPageStats{
		ActualSeconds:    prevPage.ActualSeconds(),
		EstimatedSeconds: prevPage.EstimatedAnsweredSeconds(),
	}
	return pacing.PageTargetTime(s.TotalStudySeconds, s.TotalPages, pageNumber, s.GradeLevel, stats)
}
