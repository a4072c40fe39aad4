package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/NehalVarma/smart-resume-screener/internal/candidates"
	"github.com/NehalVarma/smart-resume-screener/internal/jobs"
	"github.com/NehalVarma/smart-resume-screener/internal/services/health"
	"github.com/NehalVarma/smart-resume-screener/internal/shared/config"
	"github.com/NehalVarma/smart-resume-screener/internal/shared/server/middleware"
	"github.com/NehalVarma/smart-resume-screener/internal/shared/server/respond"
)

// RouterDeps collects the handlers the router wires up.
type RouterDeps struct {
	Config            config.Config
	CandidatesHandler *candidates.Handler
	JobsHandler       *jobs.Handler
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
	)

	healthSvc := health.NewService()
	r.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, healthSvc.Status())
	})

	api := r.Group("/api")
	if deps.CandidatesHandler != nil {
		deps.CandidatesHandler.RegisterRoutes(api)
	}
	if deps.JobsHandler != nil {
		deps.JobsHandler.RegisterRoutes(api)
	}

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
