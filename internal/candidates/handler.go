package candidates

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/NehalVarma/smart-resume-screener/internal/profile"
	"github.com/NehalVarma/smart-resume-screener/internal/shared/server/respond"
	"github.com/NehalVarma/smart-resume-screener/internal/shared/util"
)

var allowedExtensions = map[string]struct{}{
	"pdf": {},
	"txt": {},
}

// Handler exposes candidate endpoints.
type Handler struct {
	svc            *Service
	maxUploadBytes int64
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service, maxUploadBytes int64) *Handler {
	if maxUploadBytes <= 0 {
		maxUploadBytes = 16 << 20
	}
	return &Handler{svc: svc, maxUploadBytes: maxUploadBytes}
}

// RegisterRoutes registers candidate routes on the group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/upload-resume", h.upload)
	rg.GET("/candidates", h.list)
	rg.GET("/candidate/:id", h.get)
}

type candidateResponse struct {
	ID         string                   `json:"id"`
	Filename   string                   `json:"filename"`
	ResumeText string                   `json:"resume_text"`
	Data       profile.CandidateProfile `json:"data"`
	CreatedAt  time.Time                `json:"created_at"`
}

func toCandidateResponse(c Candidate) candidateResponse {
	return candidateResponse{
		ID:         c.ID,
		Filename:   c.Filename,
		ResumeText: c.ResumeText,
		Data:       c.Profile,
		CreatedAt:  c.CreatedAt,
	}
}

func (h *Handler) upload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "no file provided", nil)
		return
	}
	fileName, err := util.SanitizeFileName(fileHeader.Filename)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid file name", nil)
		return
	}
	if _, ok := allowedExtensions[util.FileExt(fileName)]; !ok {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid file type, only PDF and TXT allowed", nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "could not read uploaded file", nil)
		return
	}
	defer file.Close()

	candidate, err := h.svc.Upload(c.Request.Context(), fileName, file)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to process resume", nil)
		return
	}

	c.Set("candidateId", candidate.ID)
	respond.OK(c, gin.H{
		"success":      true,
		"candidate_id": candidate.ID,
		"filename":     candidate.Filename,
		"data":         candidate.Profile,
	})
}

func (h *Handler) list(c *gin.Context) {
	all, err := h.svc.List(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list candidates", nil)
		return
	}
	out := make([]candidateResponse, 0, len(all))
	for _, candidate := range all {
		out = append(out, toCandidateResponse(candidate))
	}
	respond.OK(c, gin.H{
		"success":    true,
		"count":      len(out),
		"candidates": out,
	})
}

func (h *Handler) get(c *gin.Context) {
	candidate, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "candidate not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load candidate", nil)
		return
	}
	c.Set("candidateId", candidate.ID)
	respond.OK(c, gin.H{
		"success":   true,
		"candidate": toCandidateResponse(candidate),
	})
}
