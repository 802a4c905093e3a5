package practice

import "github.com/vinciapp/vinci/internal/session"

// sessionReadyMsg carries the created session with its first page, or the
// creation error.
type sessionReadyMsg struct {
	Sess *session.Session
	Err  error
}

// pageReadyMsg carries the next generated page, or the generation error.
type pageReadyMsg struct {
	Page *session.Page
	Err  error
}
