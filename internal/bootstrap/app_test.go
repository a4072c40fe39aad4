package bootstrap

import (
	"context"
	"errors"
	"testing"

	"github.com/NehalVarma/smart-resume-screener/internal/llm"
	"github.com/NehalVarma/smart-resume-screener/internal/match"
	"github.com/NehalVarma/smart-resume-screener/internal/profile"
	"github.com/NehalVarma/smart-resume-screener/internal/shared/config"
)

func TestBuildMockProviderWiresDeterministicStrategies(t *testing.T) {
	app, err := Build(config.Config{
		Env:             "dev",
		ObjectStoreType: "local",
		LocalStoreDir:   t.TempDir(),
		LLMProvider:     "mock",
	})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if app.LLM == nil {
		t.Fatalf("expected a non-nil LLM client")
	}
	if _, ok := app.LLM.(llm.PlaceholderClient); !ok {
		t.Fatalf("LLM = %T, want llm.PlaceholderClient", app.LLM)
	}
	if _, err := app.LLM.Complete(context.Background(), llm.Request{}); !errors.Is(err, llm.ErrNotConfigured) {
		t.Fatalf("Complete error = %v, want ErrNotConfigured", err)
	}
	if _, ok := app.Extractor.(*profile.HeuristicExtractor); !ok {
		t.Fatalf("Extractor = %T, want *profile.HeuristicExtractor", app.Extractor)
	}
	if _, ok := app.Scorer.(*match.RuleScorer); !ok {
		t.Fatalf("Scorer = %T, want *match.RuleScorer", app.Scorer)
	}
}

func TestBuildOpenAIWithoutKeyFallsBackInDev(t *testing.T) {
	app, err := Build(config.Config{
		Env:             "dev",
		ObjectStoreType: "local",
		LocalStoreDir:   t.TempDir(),
		LLMProvider:     "openai",
		OpenAIModel:     "gpt-3.5-turbo",
	})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if _, ok := app.LLM.(llm.PlaceholderClient); !ok {
		t.Fatalf("LLM = %T, want llm.PlaceholderClient", app.LLM)
	}
	if _, ok := app.Extractor.(*profile.HeuristicExtractor); !ok {
		t.Fatalf("Extractor = %T, want *profile.HeuristicExtractor", app.Extractor)
	}
}

func TestBuildOpenAIWithoutKeyFailsInProduction(t *testing.T) {
	_, err := Build(config.Config{
		Env:             "production",
		DatabaseURL:     "", // production also requires a database
		ObjectStoreType: "local",
		LocalStoreDir:   t.TempDir(),
		LLMProvider:     "openai",
		OpenAIModel:     "gpt-3.5-turbo",
	})
	if err == nil {
		t.Fatalf("expected error")
	}
}
