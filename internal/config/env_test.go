package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAPIKeys_AllEmpty(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("ASSEMBLYAI_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "")

	keys, err := GetAPIKeys()
	require.NoError(t, err, "keys are optional at load time")
	assert.Empty(t, keys.OpenAI)
	assert.Empty(t, keys.AssemblyAI)
	assert.Empty(t, keys.Gemini)
}

func TestGetAPIKeys_Valid(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-aaaaaaaaaaaaaaaaaaaaaaaa")
	t.Setenv("ASSEMBLYAI_API_KEY", "0123456789abcdef0123")
	t.Setenv("GEMINI_API_KEY", "AIzaSyExampleExampleExample")

	keys, err := GetAPIKeys()
	require.NoError(t, err)
	assert.Equal(t, "sk-aaaaaaaaaaaaaaaaaaaaaaaa", keys.OpenAI)
	assert.Equal(t, "0123456789abcdef0123", keys.AssemblyAI)
	assert.Equal(t, "AIzaSyExampleExampleExample", keys.Gemini)
}

func TestGetAPIKeys_TrimsWhitespace(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "  sk-aaaaaaaaaaaaaaaaaaaaaaaa  ")
	t.Setenv("ASSEMBLYAI_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "")

	keys, err := GetAPIKeys()
	require.NoError(t, err)
	assert.Equal(t, "sk-aaaaaaaaaaaaaaaaaaaaaaaa", keys.OpenAI)
}

func TestGetAPIKeys_InvalidFormats(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{
			name: "openai wrong prefix",
			env:  map[string]string{"OPENAI_API_KEY": "ak-aaaaaaaaaaaaaaaaaaaaaaaa"},
		},
		{
			name: "openai too short",
			env:  map[string]string{"OPENAI_API_KEY": "sk-short"},
		},
		{
			name: "gemini wrong prefix",
			env:  map[string]string{"GEMINI_API_KEY": "NotAIza"},
		},
		{
			name: "assemblyai too short",
			env:  map[string]string{"ASSEMBLYAI_API_KEY": "short"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("OPENAI_API_KEY", "")
			t.Setenv("ASSEMBLYAI_API_KEY", "")
			t.Setenv("GEMINI_API_KEY", "")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := GetAPIKeys()
			assert.Error(t, err)
		})
	}
}
