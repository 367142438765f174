package config

import (
	"fmt"
	"net/url"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (c *Config) Validate() []ValidationError {
	var errors []ValidationError

	// Validate Fetcher config
	if c.Fetcher.RateLimit <= 0 {
		errors = append(errors, ValidationError{
			Field:   "fetcher.rate_limit",
			Message: "rate_limit must be positive",
		})
	}

	if c.Fetcher.TimeoutSecs < 0 {
		errors = append(errors, ValidationError{
			Field:   "fetcher.timeout_seconds",
			Message: "timeout_seconds cannot be negative",
		})
	}

	// Validate Downloader config
	if c.Downloader.ChunkSize < 1 {
		errors = append(errors, ValidationError{
			Field:   "downloader.chunk_size",
			Message: "chunk_size must be positive",
		})
	}

	if c.Downloader.TimeoutSecs < 0 {
		errors = append(errors, ValidationError{
			Field:   "downloader.timeout_seconds",
			Message: "timeout_seconds cannot be negative",
		})
	}

	// Validate Transcriber config
	if c.Transcriber.APIKey == "" {
		errors = append(errors, ValidationError{
			Field:   "transcriber.api_key",
			Message: "transcription API key is required",
		})
	}

	if c.Transcriber.Model == "" {
		errors = append(errors, ValidationError{
			Field:   "transcriber.model",
			Message: "model is required",
		})
	}

	if c.Transcriber.BaseURL != "" {
		if u, err := url.Parse(c.Transcriber.BaseURL); err != nil || u.Scheme == "" {
			errors = append(errors, ValidationError{
				Field:   "transcriber.base_url",
				Message: "invalid transcriber base URL",
			})
		}
	}

	// Summarizer settings only matter when the feature is on
	if c.Summarizer.Enabled {
		if c.Summarizer.MaxTokens < 1 || c.Summarizer.MaxTokens > 4096 {
			errors = append(errors, ValidationError{
				Field:   "summarizer.max_tokens",
				Message: "max_tokens must be between 1 and 4096",
			})
		}

		if c.Summarizer.Temperature <= 0 || c.Summarizer.Temperature > 1 {
			errors = append(errors, ValidationError{
				Field:   "summarizer.temperature",
				Message: "temperature must be between 0 and 1",
			})
		}

		if u, err := url.Parse(c.Summarizer.BaseURL); err != nil || u.Scheme == "" {
			errors = append(errors, ValidationError{
				Field:   "summarizer.base_url",
				Message: "invalid Ollama base URL",
			})
		}
	}

	// Validate Output config
	if c.Output.PreviewChars < 1 {
		errors = append(errors, ValidationError{
			Field:   "output.preview_chars",
			Message: "preview_chars must be positive",
		})
	}

	return errors
}
