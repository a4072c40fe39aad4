package jobs

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/NehalVarma/smart-resume-screener/internal/shortlist"
)

func TestPGRepoCreateInsertsJobAndMatchesInTx(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	job := Job{
		ID:          "job-1",
		Title:       "Backend Engineer",
		Description: "Go services",
		CreatedAt:   time.Now().UTC(),
	}
	entries := []shortlist.Entry{
		{CandidateID: "cand-1", Filename: "a.pdf", Name: "Jane", Score: 8.5, Justification: "strong"},
		{CandidateID: "cand-2", Filename: "b.pdf", Name: "Sam", Score: 6.5, Justification: "decent"},
	}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO job_postings").
		WithArgs(job.ID, job.Title, job.Description, job.CreatedAt).
		WillReturnResult(sqlmock.NewResult(1, 1))
	for _, entry := range entries {
		mock.ExpectExec("INSERT INTO match_results").
			WithArgs(sqlmock.AnyArg(), job.ID, entry.CandidateID, entry.Score, entry.Justification, sqlmock.AnyArg(), job.CreatedAt).
			WillReturnResult(sqlmock.NewResult(1, 1))
	}
	mock.ExpectCommit()

	repo := &PGRepo{DB: db}
	if err := repo.Create(context.Background(), job, entries); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoHistoryRoundsAverage(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	now := time.Now().UTC()
	rows := sqlmock.NewRows([]string{"id", "job_title", "job_description", "created_at", "match_count", "avg_score"}).
		AddRow("job-1", "Backend Engineer", "Go services", now, 3, 7.23456).
		AddRow("job-2", "Data Engineer", "Pipelines", now, 0, 0.0)
	mock.ExpectQuery("SELECT jp.id, jp.job_title").WillReturnRows(rows)

	repo := &PGRepo{DB: db}
	got, err := repo.History(context.Background())
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d", len(got))
	}
	if got[0].AvgScore != 7.23 {
		t.Fatalf("AvgScore = %v, want 7.23", got[0].AvgScore)
	}
	if got[1].MatchCount != 0 || got[1].AvgScore != 0 {
		t.Fatalf("empty job aggregates = %+v", got[1])
	}
}

func TestPGRepoMatchesDecodesDetails(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	now := time.Now().UTC()
	payload := []byte(`{"candidate_id":"cand-1","filename":"a.pdf","name":"Jane","score":8.5,"justification":"strong","key_matches":["Go"],"gaps":[]}`)
	rows := sqlmock.NewRows([]string{"id", "candidate_id", "filename", "name", "score", "justification", "match_data", "created_at"}).
		AddRow("match-1", "cand-1", "a.pdf", "Jane", 8.5, "strong", payload, now)
	mock.ExpectQuery("SELECT mr.id, mr.candidate_id").
		WithArgs("job-1").
		WillReturnRows(rows)

	repo := &PGRepo{DB: db}
	got, err := repo.Matches(context.Background(), "job-1")
	if err != nil {
		t.Fatalf("Matches: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("len = %d", len(got))
	}
	if got[0].CandidateName != "Jane" {
		t.Fatalf("CandidateName = %q", got[0].CandidateName)
	}
	if len(got[0].Details.KeyMatches) != 1 || got[0].Details.KeyMatches[0] != "Go" {
		t.Fatalf("Details = %+v", got[0].Details)
	}
}
