package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/NehalVarma/smart-resume-screener/internal/candidates"
	"github.com/NehalVarma/smart-resume-screener/internal/jobs"
	"github.com/NehalVarma/smart-resume-screener/internal/llm"
	openai "github.com/NehalVarma/smart-resume-screener/internal/llm/openai"
	"github.com/NehalVarma/smart-resume-screener/internal/match"
	"github.com/NehalVarma/smart-resume-screener/internal/profile"
	"github.com/NehalVarma/smart-resume-screener/internal/shared/config"
	"github.com/NehalVarma/smart-resume-screener/internal/shared/server"
	"github.com/NehalVarma/smart-resume-screener/internal/shared/storage/db"
	"github.com/NehalVarma/smart-resume-screener/internal/shared/storage/object"
	localstore "github.com/NehalVarma/smart-resume-screener/internal/shared/storage/object/local"
	s3store "github.com/NehalVarma/smart-resume-screener/internal/shared/storage/object/s3"
)

// App holds shared dependencies.
type App struct {
	Config            config.Config
	Router            *gin.Engine
	DB                *sql.DB
	Store             object.Store
	LLM               llm.Client
	CandidatesRepo    candidates.Repo
	JobsRepo          jobs.Repo
	Extractor         profile.Extractor
	Scorer            match.Scorer
	CandidatesService *candidates.Service
	JobsService       *jobs.Service
	CandidatesHandler *candidates.Handler
	JobsHandler       *jobs.Handler
}

// Build prepares shared dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if strings.TrimSpace(cfg.ObjectStoreType) == "" {
		cfg.ObjectStoreType = "local"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	store, err := buildStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
		Store:  store,
	}

	if err := buildLLM(app); err != nil {
		return nil, err
	}
	buildServices(app)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:            app.Config,
		CandidatesHandler: app.CandidatesHandler,
		JobsHandler:       app.JobsHandler,
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: migrations failed; using in-memory repositories: %v", err)
			sqlDB.Close()
			return nil, nil
		}
		return nil, err
	}

	return sqlDB, nil
}

func buildStore(ctx context.Context, cfg config.Config) (object.Store, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		if strings.TrimSpace(cfg.AWSRegion) == "" || strings.TrimSpace(cfg.S3Bucket) == "" {
			return nil, fmt.Errorf("OBJECT_STORE=s3 requires AWS_REGION and S3_BUCKET")
		}
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix)
	default:
		return localstore.New(cfg.LocalStoreDir), nil
	}
}

func buildLLM(app *App) error {
	switch app.Config.LLMProvider {
	case "openai":
		client, err := openai.NewClient(app.Config.OpenAIAPIKey, app.Config.OpenAIModel)
		if err != nil {
			if isDevLike(app.Config.Env) {
				log.Printf("bootstrap: OpenAI client unavailable; using heuristic provider: %v", err)
				app.Config.LLMProvider = "mock"
				app.LLM = llm.PlaceholderClient{}
				return nil
			}
			return err
		}
		app.LLM = client
	default:
		app.LLM = llm.PlaceholderClient{}
	}
	return nil
}

func buildServices(app *App) {
	if app.DB != nil {
		app.CandidatesRepo = &candidates.PGRepo{DB: app.DB}
		app.JobsRepo = &jobs.PGRepo{DB: app.DB}
	} else {
		app.CandidatesRepo = candidates.NewMemoryRepo()
		app.JobsRepo = jobs.NewMemoryRepo()
	}

	if app.Config.LLMProvider == "openai" {
		app.Extractor = profile.NewLLMExtractor(app.LLM)
		app.Scorer = match.NewLLMScorer(app.LLM)
	} else {
		app.Extractor = profile.NewHeuristicExtractor()
		app.Scorer = match.NewRuleScorer()
	}

	app.CandidatesService = &candidates.Service{
		Repo:      app.CandidatesRepo,
		Store:     app.Store,
		Extractor: app.Extractor,
	}
	app.JobsService = &jobs.Service{
		Repo:             app.JobsRepo,
		Candidates:       app.CandidatesRepo,
		Scorer:           app.Scorer,
		DefaultThreshold: app.Config.MatchThreshold,
	}

	app.CandidatesHandler = candidates.NewHandler(app.CandidatesService, app.Config.MaxUploadBytes)
	app.JobsHandler = jobs.NewHandler(app.JobsService)
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
