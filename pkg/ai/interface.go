package ai

import "context"

// Generator is the interface for text-generation backends.
// Implement this interface to add new providers (Ollama HTTP, local
// subprocess, etc.). The full response is awaited; no streaming.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// GenerationError reports a failed generation call: backend unreachable,
// non-success status, or a malformed response. The message carries the
// backend's diagnostics. No retries are performed anywhere; a failed call
// surfaces once, immediately.
type GenerationError struct {
	Status  int // HTTP status or process exit code, 0 when not applicable
	Message string
}

func (e *GenerationError) Error() string {
	return e.Message
}

// ProviderType represents the generation backend type.
type ProviderType string

const (
	ProviderOllama ProviderType = "ollama"
	ProviderScript ProviderType = "script"
)
