package ai

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// GeminiProvider calls the Google Generative Language REST API. This is the
// only provider that accepts inline media parts, so all multimodal requests
// are routed here directly.
type GeminiProvider struct {
	apiKey string
	model  string
	client *http.Client
}

// NewGeminiProvider creates a Gemini provider for the given model,
// e.g. "gemini-2.5-flash".
func NewGeminiProvider(apiKey, model string) *GeminiProvider {
	if model == "" {
		model = "gemini-2.5-flash"
	}
	return &GeminiProvider{
		apiKey: apiKey,
		model:  model,
		client: &http.Client{},
	}
}

func (g *GeminiProvider) Name() string {
	return "gemini"
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

func (g *GeminiProvider) Generate(ctx context.Context, parts []Part, temperature float64) (string, error) {
	url := fmt.Sprintf("https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent?key=%s", g.model, g.apiKey)

	apiParts := make([]map[string]any, 0, len(parts))
	for _, p := range parts {
		if p.Data != nil {
			apiParts = append(apiParts, map[string]any{
				"inline_data": map[string]any{
					"mime_type": p.MimeType,
					"data":      base64.StdEncoding.EncodeToString(p.Data),
				},
			})
			continue
		}
		apiParts = append(apiParts, map[string]any{"text": p.Text})
	}

	payload := map[string]any{
		"contents": []map[string]any{
			{"parts": apiParts},
		},
		"generationConfig": map[string]any{
			"temperature": temperature,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", &ProviderError{Provider: g.Name(), Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return "", &ProviderError{Provider: g.Name(), Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", &ProviderError{Provider: g.Name(), Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &ProviderError{Provider: g.Name(), Err: err}
	}
	if resp.StatusCode != http.StatusOK {
		return "", &ProviderError{Provider: g.Name(), Err: fmt.Errorf("API error (%d): %s", resp.StatusCode, string(respBody))}
	}

	var result geminiResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", &ProviderError{Provider: g.Name(), Err: fmt.Errorf("failed to parse response: %w", err)}
	}
	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return "", &ProviderError{Provider: g.Name(), Err: fmt.Errorf("no candidates returned")}
	}

	return result.Candidates[0].Content.Parts[0].Text, nil
}
