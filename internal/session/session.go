// Package session holds the practice-session domain model and the page
// manager that orchestrates difficulty selection, pacing, and problem
// generation. Sessions are plain values owned by the caller; persistence
// lives elsewhere and must serialize writes per session.
package session

import (
	"time"

	"github.com/vinciapp/vinci/internal/grades"
)

// Limits on session shape.
const (
	MinPages = 1
	MaxPages = 10
)

// MinProblemsPerPage is the fewest problems a page may hold. Generation
// that cannot reach it fails the request rather than serving a short page.
const MinProblemsPerPage = 3

// Session is one practice session. Pages are embedded by composition and
// never shared across sessions.
type Session struct {
	ID                string       `json:"id"`
	UserID            string       `json:"userId,omitempty"` // empty for anonymous sessions
	GradeLevel        grades.Grade `json:"gradeLevel"`
	Semester          string       `json:"semester,omitempty"`
	TotalStudySeconds int          `json:"totalStudySeconds"`
	TotalPages        int          `json:"totalPages"`
	Concepts          []string     `json:"concepts"`
	Pages             []*Page      `json:"pages"`
	CreatedAt         time.Time    `json:"createdAt"`
}

// Page is one unit of work. Problems are fixed once the page is created;
// only attempts and scores mutate until SubmittedAt locks the page.
type Page struct {
	Number      int        `json:"number"`
	PresentedAt time.Time  `json:"presentedAt"`
	SubmittedAt *time.Time `json:"submittedAt,omitempty"`
	Problems    []*Problem `json:"problems"`
}

// Problem is one generated question on a page.
type Problem struct {
	Number           int       `json:"number"`
	Question         string    `json:"question"`
	Answer           string    `json:"answer"`
	Subcategory      string    `json:"subcategory"`
	Difficulty       int       `json:"difficulty"`
	EstimatedSeconds float64   `json:"estimatedSeconds"`
	Attempts         []Attempt `json:"attempts,omitempty"`
	Score            int       `json:"score"`
}

// Attempt is one timestamped answer submission. The list is append-only.
type Attempt struct {
	Answer string    `json:"answer"`
	At     time.Time `json:"at"`
}

// Submitted reports whether the page is locked.
func (p *Page) Submitted() bool {
	return p.SubmittedAt != nil
}

// Correct reports whether the problem's latest attempt scored full points.
func (pr *Problem) Correct() bool {
	return pr.Score > 0
}

// Answered reports whether the problem has at least one attempt.
func (pr *Problem) Answered() bool {
	return len(pr.Attempts) > 0
}

// Performance summarizes a page at submission time.
type Performance struct {
	Accuracy       float64 `json:"accuracy"`
	CorrectAnswers int     `json:"correctAnswers"`
	TotalAnswered  int     `json:"totalAnswered"`
	TotalProblems  int     `json:"totalProblems"`
}

// Performance computes the page's metrics. Accuracy divides by total
// problems, not answered problems: abandoning a page counts against it.
func (p *Page) Performance() Performance {
	perf := Performance{TotalProblems: len(p.Problems)}
	for _, pr := range p.Problems {
		if pr.Answered() {
			perf.TotalAnswered++
		}
		if pr.Correct() {
			perf.CorrectAnswers++
		}
	}
	if perf.TotalProblems > 0 {
		perf.Accuracy = float64(perf.CorrectAnswers) / float64(perf.TotalProblems)
	}
	return perf
}

// EstimatedAnsweredSeconds sums the estimated solve times of answered
// problems; it feeds the pacing ratio for the next page.
func (p *Page) EstimatedAnsweredSeconds() float64 {
	var sum float64
	for _, pr := range p.Problems {
		if pr.Answered() {
			sum += pr.EstimatedSeconds
		}
	}
	return sum
}

// ActualSeconds is the wall time from presentation to submission. Zero for
// an unsubmitted page.
func (p *Page) ActualSeconds() float64 {
	if p.SubmittedAt == nil {
		return 0
	}
	return p.SubmittedAt.Sub(p.PresentedAt).Seconds()
}

// FindPage returns the page with the given number, or nil.
func (s *Session) FindPage(number int) *Page {
	for _, p := range s.Pages {
		if p.Number == number {
			return p
		}
	}
	return nil
}

// Completed reports whether every planned page has been submitted.
func (s *Session) Completed() bool {
	if len(s.Pages) < s.TotalPages {
		return false
	}
	for _, p := range s.Pages {
		if !p.Submitted() {
			return false
		}
	}
	return true
}

// ScorePercentage is the session-wide score over all generated problems,
// 0-100.
func (s *Session) ScorePercentage() float64 {
	total, correct := 0, 0
	for _, p := range s.Pages {
		for _, pr := range p.Problems {
			total++
			if pr.Correct() {
				correct++
			}
		}
	}
	if total == 0 {
		return 0
	}
	return float64(correct) / float64(total) * 100
}
