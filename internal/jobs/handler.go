package jobs

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/NehalVarma/smart-resume-screener/internal/shared/server/respond"
)

// Handler exposes job matching endpoints.
type Handler struct {
	svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes registers job routes on the group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/match-job", h.matchJob)
	rg.GET("/job-history", h.history)
	rg.GET("/job/:id/matches", h.matches)
}

type matchJobRequest struct {
	JobDescription string   `json:"job_description"`
	JobTitle       string   `json:"job_title"`
	Threshold      *float64 `json:"threshold"`
}

func (h *Handler) matchJob(c *gin.Context) {
	var req matchJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if strings.TrimSpace(req.JobDescription) == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "job_description is required", nil)
		return
	}

	outcome, err := h.svc.MatchJob(c.Request.Context(), MatchRequest{
		JobDescription: req.JobDescription,
		JobTitle:       req.JobTitle,
		Threshold:      req.Threshold,
	})
	if err != nil {
		if errors.Is(err, ErrNoCandidates) {
			respond.Error(c, http.StatusNotFound, "not_found", "no candidates uploaded yet", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to match job", nil)
		return
	}

	c.Set("jobId", outcome.JobID)
	respond.OK(c, gin.H{
		"success":                true,
		"job_id":                 outcome.JobID,
		"job_title":              outcome.JobTitle,
		"threshold":              outcome.Threshold,
		"total_candidates":       outcome.Total,
		"shortlisted_count":      outcome.Shortlisted,
		"shortlisted_candidates": outcome.Entries,
	})
}

func (h *Handler) history(c *gin.Context) {
	jobs, err := h.svc.History(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load job history", nil)
		return
	}
	respond.OK(c, gin.H{
		"success": true,
		"count":   len(jobs),
		"jobs":    jobs,
	})
}

func (h *Handler) matches(c *gin.Context) {
	matches, err := h.svc.Matches(c.Request.Context(), c.Param("id"))
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load job matches", nil)
		return
	}
	c.Set("jobId", c.Param("id"))
	respond.OK(c, gin.H{
		"success": true,
		"job_id":  c.Param("id"),
		"count":   len(matches),
		"matches": matches,
	})
}
