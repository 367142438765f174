package summarizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithConfigDefaults(t *testing.T) {
	s, err := NewWithConfig(SummarizerConfig{Temperature: 0.7})
	require.NoError(t, err)

	assert.Equal(t, "mistral", s.config.Model)
	assert.Equal(t, 2000, s.config.MaxTokens)
	assert.Equal(t, "http://localhost:11434", s.config.BaseURL)
	assert.NotEmpty(t, s.config.SystemTemplate)
}

func TestNewWithConfigValidation(t *testing.T) {
	tests := []struct {
		name   string
		config SummarizerConfig
	}{
		{
			name:   "temperature too high",
			config: SummarizerConfig{Temperature: 1.5},
		},
		{
			name:   "temperature unset",
			config: SummarizerConfig{},
		},
		{
			name:   "negative max tokens",
			config: SummarizerConfig{Temperature: 0.5, MaxTokens: -1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewWithConfig(tt.config)
			assert.Error(t, err)
		})
	}
}
