// Package jsonx recovers structured JSON from LLM replies. Providers are
// instructed to answer with bare JSON but routinely wrap it in markdown
// fences or surrounding prose, so every extraction call funnels through here.
package jsonx

import (
	"encoding/json"
	"regexp"
	"strings"
)

var fenceRe = regexp.MustCompile("(?s)```[a-zA-Z0-9]*\\s*(\\{.*?\\})\\s*```")

// MalformedOutputError means no JSON object could be recovered from the
// model's reply. Raw keeps the original text for diagnostics.
type MalformedOutputError struct {
	Raw string
}

func (e *MalformedOutputError) Error() string {
	return "no JSON object could be recovered from model output"
}

// ExtractObject finds a single JSON object inside text and unmarshals it into
// v. Recovery order: fenced code block, then first-{ to last-} span, then the
// whole string. First successful parse wins.
func ExtractObject(text string, v any) error {
	if m := fenceRe.FindStringSubmatch(text); m != nil {
		if err := json.Unmarshal([]byte(m[1]), v); err == nil {
			return nil
		}
	}

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start != -1 && end > start {
		if err := json.Unmarshal([]byte(text[start:end+1]), v); err == nil {
			return nil
		}
	}

	if err := json.Unmarshal([]byte(strings.TrimSpace(text)), v); err == nil {
		return nil
	}

	return &MalformedOutputError{Raw: text}
}
