package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/vinciapp/vinci/ent"
	"github.com/vinciapp/vinci/ent/practicesession"
	"github.com/vinciapp/vinci/internal/grades"
	"github.com/vinciapp/vinci/internal/session"
)

var (
	// ErrSessionNotFound is returned when no session exists for an id.
	ErrSessionNotFound = errors.New("session not found")
	// ErrSessionClaimed is returned when claiming a session another user owns.
	ErrSessionClaimed = errors.New("session already claimed")
)

// SessionRepo persists practice sessions.
type SessionRepo interface {
	// Save inserts the session or replaces its stored state.
	Save(ctx context.Context, s *session.Session) error

	// Get loads a session by id.
	Get(ctx context.Context, id string) (*session.Session, error)

	// List returns a user's sessions, newest first. An empty userID lists
	// anonymous sessions.
	List(ctx context.Context, userID string) ([]*session.Session, error)

	// Claim assigns an anonymous session to a user. Claiming a session the
	// same user already owns is a no-op; any other owner is an error.
	Claim(ctx context.Context, id, userID string) (*session.Session, error)
}

// sessionRepo implements SessionRepo using the ent client.
type sessionRepo struct {
	client *ent.Client
}

func (r *sessionRepo) Save(ctx context.Context, s *session.Session) error {
	pages, err := json.Marshal(s.Pages)
	if err != nil {
		return fmt.Errorf("marshal pages: %w", err)
	}

	exists, err := r.client.PracticeSession.Query().
		Where(practicesession.IDEQ(s.ID)).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("check session exists: %w", err)
	}

	if !exists {
		_, err = r.client.PracticeSession.Create().
			SetID(s.ID).
			SetUserID(s.UserID).
			SetGrade(string(s.GradeLevel)).
			SetSemester(s.Semester).
			SetTotalStudySeconds(s.TotalStudySeconds).
			SetTotalPages(s.TotalPages).
			SetConcepts(s.Concepts).
			SetPages(pages).
			SetCreatedAt(s.CreatedAt).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create session: %w", err)
		}
		return nil
	}

	_, err = r.client.PracticeSession.UpdateOneID(s.ID).
		SetUserID(s.UserID).
		SetPages(pages).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update session: %w", err)
	}
	return nil
}

func (r *sessionRepo) Get(ctx context.Context, id string) (*session.Session, error) {
	ps, err := r.client.PracticeSession.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
		}
		return nil, fmt.Errorf("get session: %w", err)
	}
	return fromEnt(ps)
}

func (r *sessionRepo) List(ctx context.Context, userID string) ([]*session.Session, error) {
	rows, err := r.client.PracticeSession.Query().
		Where(practicesession.UserID(userID)).
		Order(ent.Desc(practicesession.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}

	out := make([]*session.Session, 0, len(rows))
	for _, ps := range rows {
		s, err := fromEnt(ps)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

func (r *sessionRepo) Claim(ctx context.Context, id, userID string) (*session.Session, error) {
	if userID == "" {
		return nil, errors.New("user id is required to claim a session")
	}

	s, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if s.UserID == userID {
		return s, nil
	}
	if s.UserID != "" {
		return nil, fmt.Errorf("%w: %s", ErrSessionClaimed, id)
	}

	s.UserID = userID
	if err := r.Save(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

// fromEnt converts a persisted row back into the domain session.
func fromEnt(ps *ent.PracticeSession) (*session.Session, error) {
	s := &session.Session{
		ID:                ps.ID,
		UserID:            ps.UserID,
		GradeLevel:        grades.Grade(ps.Grade),
		Semester:          ps.Semester,
		TotalStudySeconds: ps.TotalStudySeconds,
		TotalPages:        ps.TotalPages,
		Concepts:          ps.Concepts,
		CreatedAt:         ps.CreatedAt,
	}
	if len(ps.Pages) > 0 {
		if err := json.Unmarshal(ps.Pages, &s.Pages); err != nil {
			return nil, fmt.Errorf("unmarshal pages: %w", err)
		}
	}
	return s, nil
}
