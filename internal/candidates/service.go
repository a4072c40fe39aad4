package candidates

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/NehalVarma/smart-resume-screener/internal/extract"
	"github.com/NehalVarma/smart-resume-screener/internal/profile"
	"github.com/NehalVarma/smart-resume-screener/internal/shared/storage/object"
	"github.com/NehalVarma/smart-resume-screener/internal/shared/telemetry"
)

// Service contains business logic for candidate intake and lookup.
type Service struct {
	Repo      Repo
	Store     object.Store
	Extractor profile.Extractor
}

// Upload stores the resume file, extracts its text, structures it into a
// profile, and persists the candidate. Extraction failures degrade to the
// fallback profile; only storage and persistence errors surface.
func (s *Service) Upload(ctx context.Context, fileName string, r io.Reader) (Candidate, error) {
	if s.Repo == nil || s.Store == nil || s.Extractor == nil {
		return Candidate{}, errors.New("candidates service is missing dependencies")
	}

	storageKey, sizeBytes, err := s.Store.Save(ctx, fileName, r)
	if err != nil {
		return Candidate{}, fmt.Errorf("store resume %s: %w", fileName, err)
	}

	resumeText, err := extract.Text(ctx, s.Store, storageKey, fileName)
	if err != nil {
		return Candidate{}, fmt.Errorf("parse resume %s: %w", fileName, err)
	}

	extracted := s.Extractor.Extract(ctx, resumeText)

	candidate := Candidate{
		ID:         uuid.NewString(),
		Filename:   fileName,
		ResumeText: resumeText,
		Profile:    extracted,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, candidate); err != nil {
		return Candidate{}, err
	}

	telemetry.Info("candidate.created", map[string]any{
		"candidate_id": candidate.ID,
		"filename":     fileName,
		"size_bytes":   sizeBytes,
		"name":         extracted.Name,
		"skills":       len(extracted.Skills),
	})
	return candidate, nil
}

// Get returns a candidate by ID.
func (s *Service) Get(ctx context.Context, candidateID string) (Candidate, error) {
	if candidateID == "" {
		return Candidate{}, errors.New("candidateID is required")
	}
	return s.Repo.GetByID(ctx, candidateID)
}

// List returns all candidates ordered newest-first.
func (s *Service) List(ctx context.Context) ([]Candidate, error) {
	return s.Repo.ListAll(ctx)
}
