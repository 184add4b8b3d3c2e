package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_ExistingPrompt(t *testing.T) {
	ClearCache()

	prompt, err := Get("assistant.json", "translate")
	require.NoError(t, err)
	assert.Contains(t, prompt, "{{.TargetLanguage}}")
	assert.Contains(t, prompt, "{{.Text}}")
}

func TestGet_MissingKey(t *testing.T) {
	ClearCache()

	_, err := Get("assistant.json", "nonexistent")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nonexistent")
}

func TestGet_MissingFile(t *testing.T) {
	ClearCache()

	_, err := Get("missing.json", "key")
	require.Error(t, err)
}

func TestMustGet_Panics(t *testing.T) {
	ClearCache()

	assert.Panics(t, func() {
		MustGet("assistant.json", "nonexistent")
	})
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		template string
		data     map[string]string
		expected string
	}{
		{
			name:     "single placeholder",
			template: "Hello {{.Name}}!",
			data:     map[string]string{"Name": "World"},
			expected: "Hello World!",
		},
		{
			name:     "multiple placeholders",
			template: "{{.A}} and {{.B}}",
			data:     map[string]string{"A": "x", "B": "y"},
			expected: "x and y",
		},
		{
			name:     "repeated placeholder",
			template: "{{.X}} {{.X}}",
			data:     map[string]string{"X": "go"},
			expected: "go go",
		},
		{
			name:     "no placeholders",
			template: "plain text",
			data:     map[string]string{"Unused": "value"},
			expected: "plain text",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Format(tt.template, tt.data))
		})
	}
}

func TestList(t *testing.T) {
	ClearCache()

	keys, err := List("discovery.json")
	require.NoError(t, err)
	assert.Contains(t, keys, "analyze")
}
