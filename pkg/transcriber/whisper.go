package transcriber

import (
	"context"
	"fmt"
	"os"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// WhisperConfig represents the configuration for the transcription backend.
type WhisperConfig struct {
	BaseURL  string // any OpenAI-compatible /audio/transcriptions server
	Model    string
	APIKey   string
	Language string // optional ISO 639-1 hint
}

// Whisper sends a local audio file to a Whisper-family model and returns
// the transcript. The model runtime is an opaque collaborator; nothing
// about the audio is inspected here.
type Whisper struct {
	config WhisperConfig
	client openai.Client
}

// NewWithConfig creates a new Whisper transcriber with the given configuration.
func NewWithConfig(config WhisperConfig) (*Whisper, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("transcription API key is required")
	}
	if config.Model == "" {
		config.Model = string(openai.AudioModelWhisper1)
	}

	opts := []option.RequestOption{option.WithAPIKey(config.APIKey)}
	if config.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(config.BaseURL))
	}

	return &Whisper{
		config: config,
		client: openai.NewClient(opts...),
	}, nil
}

// Transcribe uploads the audio at audioPath and returns the transcript text.
func (w *Whisper) Transcribe(ctx context.Context, audioPath string) (string, error) {
	f, err := os.Open(audioPath)
	if err != nil {
		return "", fmt.Errorf("failed to open audio file: %w", err)
	}
	defer f.Close()

	params := openai.AudioTranscriptionNewParams{
		File:  f,
		Model: openai.AudioModel(w.config.Model),
	}
	if w.config.Language != "" {
		params.Language = openai.String(w.config.Language)
	}

	resp, err := w.client.Audio.Transcriptions.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("transcription error: %w", err)
	}

	return resp.Text, nil
}

// Model reports the configured model identifier, for status output.
func (w *Whisper) Model() string {
	return w.config.Model
}
