package summarizer

import (
	"context"
	"fmt"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"
)

// SummarizerConfig represents the configuration for the summary engine.
type SummarizerConfig struct {
	Model          string
	Temperature    float64
	MaxTokens      int
	SystemTemplate string
	BaseURL        string // Ollama server URL
}

// Summarizer condenses an episode transcript into a short summary using a
// local LLM.
type Summarizer struct {
	config SummarizerConfig
	llm    llms.Model
}

// NewWithConfig creates a new Summarizer with the given configuration.
func NewWithConfig(config SummarizerConfig) (*Summarizer, error) {
	if config.Model == "" {
		config.Model = "mistral" // Default Ollama model
	}
	if config.Temperature <= 0 || config.Temperature > 1 {
		return nil, fmt.Errorf("temperature must be between 0 and 1")
	}
	if config.MaxTokens < 0 {
		return nil, fmt.Errorf("max tokens cannot be negative")
	} else if config.MaxTokens == 0 {
		config.MaxTokens = 2000
	}
	if config.SystemTemplate == "" {
		config.SystemTemplate = "You are an editor. Summarize the following podcast episode transcript in a few short paragraphs, keeping the main topics and any conclusions."
	}
	if config.BaseURL == "" {
		config.BaseURL = "http://localhost:11434" // Default Ollama URL
	}

	llm, err := ollama.New(ollama.WithModel(config.Model),
		ollama.WithServerURL(config.BaseURL))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize LLM: %w", err)
	}

	return &Summarizer{
		config: config,
		llm:    llm,
	}, nil
}

// Summarize generates a summary of the transcript.
func (s *Summarizer) Summarize(ctx context.Context, transcript string) (string, error) {
	content := []llms.MessageContent{
		llms.TextParts(llms.ChatMessageTypeSystem, s.config.SystemTemplate),
		llms.TextParts(llms.ChatMessageTypeHuman, transcript),
	}

	response, err := s.llm.GenerateContent(ctx, content,
		llms.WithMaxTokens(s.config.MaxTokens),
		llms.WithTemperature(s.config.Temperature))
	if err != nil {
		return "", fmt.Errorf("summary error: %w", err)
	}

	if len(response.Choices) == 0 || response.Choices[0].Content == "" {
		return "", fmt.Errorf("no response from LLM")
	}

	return response.Choices[0].Content, nil
}
