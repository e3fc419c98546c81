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

// OllamaProvider calls a local or hosted Ollama instance through /api/generate.
// It is text-only: media parts are rejected, which is why multimodal requests
// never fall back to it.
type OllamaProvider struct {
	baseURL string
	model   string
	client  *http.Client
}

// NewOllamaProvider creates an Ollama provider
func NewOllamaProvider(baseURL, model string) *OllamaProvider {
	if baseURL == "" {
		baseURL = "http://localhost:11434"
	}
	if model == "" {
		model = "llama3"
	}
	return &OllamaProvider{
		baseURL: baseURL,
		model:   model,
		client:  &http.Client{},
	}
}

func (o *OllamaProvider) Name() string {
	return "ollama"
}

func (o *OllamaProvider) Generate(ctx context.Context, parts []Part, temperature float64) (string, error) {
	var sb strings.Builder
	for _, p := range parts {
		if p.Data != nil {
			return "", &ProviderError{Provider: o.Name(), Err: fmt.Errorf("media parts are not supported")}
		}
		if sb.Len() > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(p.Text)
	}

	payload := map[string]any{
		"model":  o.model,
		"prompt": sb.String(),
		"stream": false,
		"options": map[string]any{
			"temperature": temperature,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", &ProviderError{Provider: o.Name(), Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, o.baseURL+"/api/generate", bytes.NewBuffer(body))
	if err != nil {
		return "", &ProviderError{Provider: o.Name(), Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := o.client.Do(req)
	if err != nil {
		return "", &ProviderError{Provider: o.Name(), Err: fmt.Errorf("request failed: %w", err)}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &ProviderError{Provider: o.Name(), Err: fmt.Errorf("failed to read response: %w", err)}
	}
	if resp.StatusCode != http.StatusOK {
		return "", &ProviderError{Provider: o.Name(), Err: fmt.Errorf("API error (%d): %s", resp.StatusCode, string(respBody))}
	}

	var result struct {
		Response string `json:"response"`
	}
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", &ProviderError{Provider: o.Name(), Err: fmt.Errorf("failed to parse response: %w", err)}
	}

	return result.Response, nil
}
