package types

import (
	"context"
	"time"
)

// Core interfaces
type PageFetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

type Downloader interface {
	Download(ctx context.Context, url string, dest string) (int64, error)
}

type Transcriber interface {
	Transcribe(ctx context.Context, audioPath string) (string, error)
}

type Summarizer interface {
	Summarize(ctx context.Context, transcript string) (string, error)
}

type FetcherConfig struct {
	UserAgent      string
	Accept         string
	AcceptLanguage string
	Timeout        time.Duration
	RateLimit      float64
}

type DownloaderConfig struct {
	ChunkSize int
	Timeout   time.Duration
	Quiet     bool
}

type TranscriberConfig struct {
	BaseURL  string
	Model    string
	APIKey   string
	Language string
}

type SummarizerConfig struct {
	Enabled     bool
	BaseURL     string
	Model       string
	MaxTokens   int
	Temperature float64
}
