package prompts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	text, err := Get("grammar.json", "proofread")
	require.NoError(t, err)
	assert.Contains(t, text, "{{.Language}}")
	assert.Contains(t, text, "{{.MaxIssues}}")
	assert.Contains(t, text, "{{.Text}}")
}

func TestGet_Missing(t *testing.T) {
	_, err := Get("grammar.json", "nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"nope"`)

	_, err = Get("missing.json", "proofread")
	require.Error(t, err)
}

func TestRender(t *testing.T) {
	out, err := Render("grammar.json", "proofread", map[string]string{
		"Language":  "en-GB",
		"MaxIssues": "7",
		"Text":      "I has a apple.",
	})
	require.NoError(t, err)
	assert.Contains(t, out, "résumés written in en-GB")
	assert.Contains(t, out, "at most 7 issues")
	assert.Contains(t, out, "<<<\nI has a apple.\n>>>")
	assert.False(t, strings.Contains(out, "{{"), "all placeholders filled")
}

func TestRender_DoesNotEscape(t *testing.T) {
	out, err := Render("grammar.json", "proofread", map[string]string{
		"Language": "en-US", "MaxIssues": "1", "Text": `C++ & "Go" <tags>`,
	})
	require.NoError(t, err)
	assert.Contains(t, out, `C++ & "Go" <tags>`)
}

func TestRender_MissingValue(t *testing.T) {
	_, err := Render("grammar.json", "proofread", map[string]string{"Language": "en-US"})
	require.Error(t, err)
}

func TestKeys(t *testing.T) {
	keys, err := Keys("grammar.json")
	require.NoError(t, err)
	assert.Equal(t, []string{"proofread"}, keys)
}
