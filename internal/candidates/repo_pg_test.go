package candidates

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/NehalVarma/smart-resume-screener/internal/profile"
)

func TestPGRepoCreateStoresProfileJSON(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	candidate := Candidate{
		ID:         "cand-1",
		Filename:   "resume.pdf",
		ResumeText: "resume body",
		Profile:    profile.Fallback(),
		CreatedAt:  time.Now().UTC(),
	}
	payload, _ := json.Marshal(candidate.Profile)

	mock.ExpectExec("INSERT INTO candidates").
		WithArgs(candidate.ID, candidate.Filename, candidate.ResumeText, payload, candidate.CreatedAt).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Create(context.Background(), candidate); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	mock.ExpectQuery("SELECT id, filename, resume_text, profile, created_at").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"id", "filename", "resume_text", "profile", "created_at"}))

	repo := &PGRepo{DB: db}
	if _, err := repo.GetByID(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("GetByID error = %v, want ErrNotFound", err)
	}
}

func TestPGRepoListAllFallsBackOnCorruptProfile(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	now := time.Now().UTC()
	goodPayload, _ := json.Marshal(profile.CandidateProfile{Name: "Jane"})
	rows := sqlmock.NewRows([]string{"id", "filename", "resume_text", "profile", "created_at"}).
		AddRow("cand-1", "a.pdf", "text a", goodPayload, now).
		AddRow("cand-2", "b.pdf", "text b", []byte("{broken"), now)
	mock.ExpectQuery("SELECT id, filename, resume_text, profile, created_at").
		WillReturnRows(rows)

	repo := &PGRepo{DB: db}
	got, err := repo.ListAll(context.Background())
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].Profile.Name != "Jane" {
		t.Fatalf("got[0].Profile.Name = %q", got[0].Profile.Name)
	}
	if got[1].Profile.Name != "Unknown" {
		t.Fatalf("got[1].Profile.Name = %q, want fallback", got[1].Profile.Name)
	}
}
