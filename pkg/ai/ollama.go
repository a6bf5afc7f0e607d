package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// OllamaService implements Generator against a local Ollama server.
type OllamaService struct {
	getBaseURL func() string // Dynamic getter for BaseURL
	getModel   func() string // Dynamic getter for Model
	client     *http.Client
}

// NewOllamaService creates a new Ollama service with static configuration.
func NewOllamaService(baseURL, model string) *OllamaService {
	if model == "" {
		model = "gemma:2b"
	}
	return &OllamaService{
		getBaseURL: func() string { return baseURL },
		getModel:   func() string { return model },
		client:     &http.Client{},
	}
}

// NewOllamaServiceWithGetters creates a new Ollama service with dynamic
// getters, so runtime settings updates take effect without a restart.
func NewOllamaServiceWithGetters(getBaseURL, getModel func() string) *OllamaService {
	return &OllamaService{
		getBaseURL: getBaseURL,
		getModel:   getModel,
		client:     &http.Client{},
	}
}

// Generate implements Generator. One outbound call per invocation, full
// response awaited, no retries. Timeouts, non-success statuses and malformed
// responses all surface as *GenerationError.
func (o *OllamaService) Generate(ctx context.Context, prompt string) (string, error) {
	baseURL := o.getBaseURL()
	if baseURL == "" {
		return "", &GenerationError{Message: "OLLAMA_SERVICE_IP is not configured"}
	}

	model := o.getModel()
	if model == "" {
		model = "gemma:2b"
	}

	payload := map[string]interface{}{
		"model":  model,
		"prompt": prompt,
		"stream": false,
		"stop":   []string{"</email>", "---", "[Your", "[Company", "[Email", "[Today's"},
		"options": map[string]interface{}{
			"num_predict":    250,
			"temperature":    0.7,
			"top_p":          0.9,
			"top_k":          40,
			"repeat_penalty": 1.1,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", baseURL+"/api/generate", bytes.NewBuffer(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := o.client.Do(req)
	if err != nil {
		return "", &GenerationError{Message: fmt.Sprintf("ollama request failed: %v", err)}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &GenerationError{Message: fmt.Sprintf("failed to read response: %v", err)}
	}

	if resp.StatusCode != http.StatusOK {
		return "", &GenerationError{
			Status:  resp.StatusCode,
			Message: fmt.Sprintf("ollama API error (%d): %s", resp.StatusCode, string(respBody)),
		}
	}

	var result struct {
		Response string `json:"response"`
		Done     bool   `json:"done"`
	}
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", &GenerationError{Message: fmt.Sprintf("failed to parse response: %v", err)}
	}

	return strings.TrimSpace(result.Response), nil
}

// Forward posts a raw request body to the Ollama generate endpoint and
// returns the backend's JSON body untouched. Used by the legacy passthrough
// route.
func (o *OllamaService) Forward(ctx context.Context, body []byte) ([]byte, error) {
	baseURL := o.getBaseURL()
	if baseURL == "" {
		return nil, &GenerationError{Message: "OLLAMA_SERVICE_IP is not configured"}
	}

	req, err := http.NewRequestWithContext(ctx, "POST", baseURL+"/api/generate", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Cache-Control", "no-cache, no-store, must-revalidate")

	resp, err := o.client.Do(req)
	if err != nil {
		return nil, &GenerationError{Message: fmt.Sprintf("ollama request failed: %v", err)}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &GenerationError{Message: fmt.Sprintf("failed to read response: %v", err)}
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &GenerationError{
			Status:  resp.StatusCode,
			Message: fmt.Sprintf("ollama service responded with status: %d", resp.StatusCode),
		}
	}

	return respBody, nil
}
