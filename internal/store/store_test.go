package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/vinciapp/vinci/internal/grades"
	"github.com/vinciapp/vinci/internal/session"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testSession(id string) *session.Session {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	return &session.Session{
		ID:                id,
		GradeLevel:        grades.Third,
		TotalStudySeconds: 600,
		TotalPages:        2,
		Concepts:          []string{"addition"},
		CreatedAt:         now,
		Pages: []*session.Page{
			{
				Number:      1,
				PresentedAt: now,
				Problems: []*session.Problem{
					{
						Number:           1,
						Question:         "3 + 4",
						Answer:           "7",
						Subcategory:      "addition",
						Difficulty:       1,
						EstimatedSeconds: 15,
					},
				},
			},
		},
	}
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSessionSaveAndGet(t *testing.T) {
	repo := openTestStore(t).Sessions()
	ctx := context.Background()

	if err := repo.Save(ctx, testSession("s-1")); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := repo.Get(ctx, "s-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.GradeLevel != grades.Third {
		t.Errorf("grade = %q, want %q", got.GradeLevel, grades.Third)
	}
	if len(got.Pages) != 1 || len(got.Pages[0].Problems) != 1 {
		t.Fatalf("pages round-trip: got %+v", got.Pages)
	}
	if q := got.Pages[0].Problems[0].Question; q != "3 + 4" {
		t.Errorf("question = %q, want %q", q, "3 + 4")
	}
}

func TestSessionGetMissing(t *testing.T) {
	repo := openTestStore(t).Sessions()

	_, err := repo.Get(context.Background(), "nope")
	if !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("err = %v, want ErrSessionNotFound", err)
	}
}

func TestSessionSaveUpdatesPages(t *testing.T) {
	repo := openTestStore(t).Sessions()
	ctx := context.Background()

	s := testSession("s-2")
	if err := repo.Save(ctx, s); err != nil {
		t.Fatalf("save: %v", err)
	}

	submitted := s.Pages[0].PresentedAt.Add(2 * time.Minute)
	s.Pages[0].SubmittedAt = &submitted
	if err := repo.Save(ctx, s); err != nil {
		t.Fatalf("save again: %v", err)
	}

	got, err := repo.Get(ctx, "s-2")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Pages[0].SubmittedAt == nil {
		t.Error("submitted_at lost on update")
	}
}

func TestSessionList(t *testing.T) {
	repo := openTestStore(t).Sessions()
	ctx := context.Background()

	a := testSession("s-a")
	a.UserID = "u-1"
	b := testSession("s-b")
	b.UserID = "u-1"
	b.CreatedAt = a.CreatedAt.Add(time.Hour)
	other := testSession("s-c")
	other.UserID = "u-2"

	for _, s := range []*session.Session{a, b, other} {
		if err := repo.Save(ctx, s); err != nil {
			t.Fatalf("save %s: %v", s.ID, err)
		}
	}

	got, err := repo.List(ctx, "u-1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("list returned %d sessions, want 2", len(got))
	}
	if got[0].ID != "s-b" || got[1].ID != "s-a" {
		t.Errorf("order = [%s %s], want newest first [s-b s-a]", got[0].ID, got[1].ID)
	}
}

func TestSessionClaim(t *testing.T) {
	repo := openTestStore(t).Sessions()
	ctx := context.Background()

	if err := repo.Save(ctx, testSession("s-3")); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := repo.Claim(ctx, "s-3", "u-1")
	if err != nil {
		t.Fatalf("claim: %v", err)
	}
	if got.UserID != "u-1" {
		t.Errorf("user = %q, want u-1", got.UserID)
	}

	// Claiming your own session again is a no-op.
	if _, err := repo.Claim(ctx, "s-3", "u-1"); err != nil {
		t.Errorf("re-claim by owner: %v", err)
	}

	// Another user cannot take it over.
	if _, err := repo.Claim(ctx, "s-3", "u-2"); !errors.Is(err, ErrSessionClaimed) {
		t.Errorf("claim by other user: err = %v, want ErrSessionClaimed", err)
	}

	if _, err := repo.Claim(ctx, "missing", "u-1"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("claim missing: err = %v, want ErrSessionNotFound", err)
	}
}
