package ai

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// ScriptService implements Generator by running a local command per request,
// writing the prompt to its stdin and reading the result from stdout. This
// covers deployments where the model runs as a Python subprocess instead of
// an HTTP service.
type ScriptService struct {
	command string
	args    []string
}

// NewScriptService creates a subprocess-backed generator. The command string
// is split on whitespace; the first token is the executable.
func NewScriptService(command string) (*ScriptService, error) {
	parts := strings.Fields(command)
	if len(parts) == 0 {
		return nil, fmt.Errorf("GENERATION_SCRIPT is empty")
	}
	return &ScriptService{
		command: parts[0],
		args:    parts[1:],
	}, nil
}

// Generate implements Generator. A non-zero exit or empty output surfaces as
// *GenerationError carrying the process stderr.
func (s *ScriptService) Generate(ctx context.Context, prompt string) (string, error) {
	cmd := exec.CommandContext(ctx, s.command, s.args...)
	cmd.Stdin = strings.NewReader(prompt)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		status := 0
		if exitErr, ok := err.(*exec.ExitError); ok {
			status = exitErr.ExitCode()
		}
		return "", &GenerationError{
			Status:  status,
			Message: fmt.Sprintf("generation script failed: %v: %s", err, strings.TrimSpace(stderr.String())),
		}
	}

	result := strings.TrimSpace(stdout.String())
	if result == "" {
		return "", &GenerationError{Message: "generation script produced no output"}
	}
	return result, nil
}
