package ai

import "fmt"

// Config holds generation backend configuration.
type Config struct {
	Provider ProviderType // "ollama" or "script"

	// Ollama config, as dynamic getters so runtime settings updates apply
	GetOllamaBaseURL func() string
	GetOllamaModel   func() string

	// Script config
	ScriptCommand string // e.g. "python3 email_service.py"
}

// NewGenerator creates a Generator based on the config. Switch backends by
// changing config.Provider; callers never see the transport.
func NewGenerator(cfg Config) (Generator, error) {
	switch cfg.Provider {
	case ProviderScript:
		svc, err := NewScriptService(cfg.ScriptCommand)
		if err != nil {
			return nil, err
		}
		return svc, nil

	case ProviderOllama, "":
		if cfg.GetOllamaBaseURL == nil {
			return nil, fmt.Errorf("ollama base URL getter is required")
		}
		getModel := cfg.GetOllamaModel
		if getModel == nil {
			getModel = func() string { return "" }
		}
		return NewOllamaServiceWithGetters(cfg.GetOllamaBaseURL, getModel), nil

	default:
		return nil, fmt.Errorf("unknown AI provider: %s", cfg.Provider)
	}
}
