package jsonx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type reply struct {
	Summary string `json:"summary"`
}

func TestExtractObjectBareJSON(t *testing.T) {
	var r reply
	err := ExtractObject(`{"summary": "quarterly numbers look fine"}`, &r)
	require.NoError(t, err)
	assert.Equal(t, "quarterly numbers look fine", r.Summary)
}

func TestExtractObjectFencedBlock(t *testing.T) {
	text := "Here is the result:\n```json\n{\"summary\": \"fenced\"}\n```\nLet me know if you need more."
	var r reply
	err := ExtractObject(text, &r)
	require.NoError(t, err)
	assert.Equal(t, "fenced", r.Summary)
}

func TestExtractObjectFencedBlockNoLanguageTag(t *testing.T) {
	text := "```\n{\"summary\": \"no tag\"}\n```"
	var r reply
	err := ExtractObject(text, &r)
	require.NoError(t, err)
	assert.Equal(t, "no tag", r.Summary)
}

func TestExtractObjectSurroundingProse(t *testing.T) {
	text := `Sure! Based on the document, {"summary": "prose-wrapped"} is my answer.`
	var r reply
	err := ExtractObject(text, &r)
	require.NoError(t, err)
	assert.Equal(t, "prose-wrapped", r.Summary)
}

func TestExtractObjectNestedBraces(t *testing.T) {
	text := `The extraction: {"outer": {"inner": "value"}} done.`
	var r struct {
		Outer map[string]string `json:"outer"`
	}
	err := ExtractObject(text, &r)
	require.NoError(t, err)
	assert.Equal(t, "value", r.Outer["inner"])
}

func TestExtractObjectLeadingWhitespace(t *testing.T) {
	var r reply
	err := ExtractObject("\n\n  {\"summary\": \"padded\"}  \n", &r)
	require.NoError(t, err)
	assert.Equal(t, "padded", r.Summary)
}

func TestExtractObjectNoJSON(t *testing.T) {
	var r reply
	err := ExtractObject("I could not process this document, sorry.", &r)
	require.Error(t, err)

	var malformed *MalformedOutputError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, "I could not process this document, sorry.", malformed.Raw)
}

func TestExtractObjectBrokenJSON(t *testing.T) {
	var r reply
	err := ExtractObject(`{"summary": "unterminated`, &r)
	var malformed *MalformedOutputError
	require.ErrorAs(t, err, &malformed)
}
