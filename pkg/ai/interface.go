package ai

import (
	"context"
	"fmt"
)

// Part is one element of a prompt: either plain text or inline media.
// Media parts are only used for multimodal calls.
type Part struct {
	Text     string
	MimeType string
	Data     []byte
}

// TextPart builds a text-only prompt part
func TextPart(text string) Part {
	return Part{Text: text}
}

// MediaPart builds an inline media prompt part
func MediaPart(mimeType string, data []byte) Part {
	return Part{MimeType: mimeType, Data: data}
}

// Generator produces text from a prompt. Both raw providers and the fallback
// client satisfy this; call sites depend on it rather than a concrete client.
type Generator interface {
	Generate(ctx context.Context, parts []Part, temperature float64) (string, error)
}

// Provider is a single named LLM backend. No retry or fallback happens at
// this layer.
type Provider interface {
	Generator
	Name() string
}

// ProviderError wraps a failed provider call
type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// Sampling temperatures per call kind. Extraction-style calls run cooler for
// determinism; generative prose runs warmer.
const (
	TempMetadata = 0.2
	TempTasks    = 0.3
	TempIntent   = 0.3
	TempCalendar = 0.3
	TempTodos    = 0.3
	TempSummary  = 0.5
	TempMail     = 0.5
)
