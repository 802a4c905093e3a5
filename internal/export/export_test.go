package export

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/vinciapp/vinci/internal/grades"
	"github.com/vinciapp/vinci/internal/session"
)

func sampleSession() *session.Session {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	submitted := now.Add(3 * time.Minute)
	return &session.Session{
		ID:                "8a2f6f3e-1d44-4a33-9a11-1a2b3c4d5e6f",
		GradeLevel:        grades.Third,
		TotalStudySeconds: 600,
		TotalPages:        2,
		Concepts:          []string{"addition"},
		CreatedAt:         now,
		Pages: []*session.Page{
			{
				Number:      1,
				PresentedAt: now,
				SubmittedAt: &submitted,
				Problems: []*session.Problem{
					{
						Number:           1,
						Question:         "3 + 4",
						Answer:           "7",
						Subcategory:      "addition",
						Difficulty:       1,
						EstimatedSeconds: 15,
						Attempts:         []session.Attempt{{Answer: "7", At: now.Add(time.Minute)}},
						Score:            10,
					},
				},
			},
		},
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := Export(sampleSession(), &buf); err != nil {
		t.Fatalf("export: %v", err)
	}

	got, err := Import(&buf)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if got.ID != "8a2f6f3e-1d44-4a33-9a11-1a2b3c4d5e6f" {
		t.Errorf("id = %q", got.ID)
	}
	if got.GradeLevel != grades.Third {
		t.Errorf("grade = %q, want %q", got.GradeLevel, grades.Third)
	}
	if len(got.Pages) != 1 || !got.Pages[0].Submitted() {
		t.Fatalf("pages round-trip: %+v", got.Pages)
	}
	pr := got.Pages[0].Problems[0]
	if pr.Score != 10 || len(pr.Attempts) != 1 {
		t.Errorf("problem round-trip: %+v", pr)
	}
}

func TestImportRejectsInvalidDocuments(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"not JSON", "{"},
		{"missing required fields", `{"id": "x"}`},
		{
			"unknown top-level field",
			`{"id":"x","gradeLevel":"3rd Grade","totalStudySeconds":600,"totalPages":2,"concepts":["addition"],"createdAt":"2025-03-10T09:00:00Z","bogus":true}`,
		},
		{
			"too many pages",
			`{"id":"x","gradeLevel":"3rd Grade","totalStudySeconds":600,"totalPages":11,"concepts":["addition"],"createdAt":"2025-03-10T09:00:00Z"}`,
		},
		{
			"empty concepts",
			`{"id":"x","gradeLevel":"3rd Grade","totalStudySeconds":600,"totalPages":2,"concepts":[],"createdAt":"2025-03-10T09:00:00Z"}`,
		},
		{
			"unsupported grade",
			`{"id":"x","gradeLevel":"13th Grade","totalStudySeconds":600,"totalPages":2,"concepts":["addition"],"createdAt":"2025-03-10T09:00:00Z"}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Import(strings.NewReader(tt.doc)); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}
