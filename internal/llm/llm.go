package llm

import (
	"context"
	"errors"
)

// Client abstracts generative-text backends.
type Client interface {
	Complete(ctx context.Context, req Request) (string, error)
}

// Request captures a single completion round trip.
type Request struct {
	SystemPrompt string
	UserPrompt   string
	Temperature  float32
	JSONOnly     bool
}

// ErrNotConfigured is returned by the placeholder client.
var ErrNotConfigured = errors.New("llm client not configured")

// PlaceholderClient is a stub implementation until provider wiring is added.
type PlaceholderClient struct{}

// Complete returns ErrNotConfigured.
func (PlaceholderClient) Complete(ctx context.Context, req Request) (string, error) {
	_ = ctx
	_ = req
	return "", ErrNotConfigured
}
