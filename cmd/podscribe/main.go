package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	cfgPkg "github.com/xhad/podscribe/pkg/config"
)

type Config struct {
	PageURL        string
	UserAgent      string
	FetchTimeout   time.Duration
	RateLimit      float64
	ChunkSize      int
	DownloadLimit  time.Duration
	WhisperURL     string
	WhisperModel   string
	APIKey         string
	Language       string
	Summarize      bool
	SummaryModel   string
	OllamaURL      string
	SummaryTokens  int
	SummaryTemp    float64
	OutputDir      string
	PreviewChars   int
	StripSuffix    bool
	SiteName       string
	AcceptHeader   string
	AcceptLanguage string
}

func main() {
	// Best effort; secrets usually live in the environment already
	godotenv.Load()

	config := parseFlags()

	if err := run(config); err != nil {
		log.Fatal(err)
	}
}

func parseFlags() Config {
	var config Config
	var configPath string

	flag.StringVar(&configPath, "config", "", "Path to config file")
	flag.StringVar(&config.WhisperURL, "whisper-url", os.Getenv("OPENAI_BASE_URL"), "OpenAI-compatible transcription server URL")
	flag.StringVar(&config.WhisperModel, "model", "", "Transcription model to use")
	flag.StringVar(&config.Language, "language", "", "Spoken language hint for transcription")
	flag.BoolVar(&config.Summarize, "summarize", false, "Append a model-written summary to the transcript")
	flag.StringVar(&config.SummaryModel, "summary-model", "", "Ollama model for the summary")
	flag.StringVar(&config.OllamaURL, "ollama-url", os.Getenv("OLLAMA_BASE_URL"), "Ollama server URL for the summary")
	flag.StringVar(&config.OutputDir, "output", "", "Directory for the transcript file (default: working directory)")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <episode_url>\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Example: %s https://overcast.fm/+AAbggn-BZtw\n", os.Args[0])
		os.Exit(1)
	}
	config.PageURL = flag.Arg(0)

	cfg, err := cfgPkg.LoadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		for _, e := range errs {
			fmt.Fprintf(os.Stderr, "Config error: %v\n", e)
		}
		os.Exit(1)
	}

	// Flags win over file values when explicitly set
	if config.WhisperURL == "" {
		config.WhisperURL = cfg.Transcriber.BaseURL
	}
	if config.WhisperModel == "" {
		config.WhisperModel = cfg.Transcriber.Model
	}
	if config.Language == "" {
		config.Language = cfg.Transcriber.Language
	}
	if config.SummaryModel == "" {
		config.SummaryModel = cfg.Summarizer.Model
	}
	if config.OllamaURL == "" {
		config.OllamaURL = cfg.Summarizer.BaseURL
	}
	if config.OutputDir == "" {
		config.OutputDir = cfg.Output.Dir
	}
	config.Summarize = config.Summarize || cfg.Summarizer.Enabled

	config.APIKey = cfg.Transcriber.APIKey
	config.UserAgent = cfg.Fetcher.UserAgent
	config.AcceptHeader = cfg.Fetcher.Accept
	config.AcceptLanguage = cfg.Fetcher.AcceptLanguage
	config.FetchTimeout = time.Duration(cfg.Fetcher.TimeoutSecs) * time.Second
	config.RateLimit = cfg.Fetcher.RateLimit
	config.ChunkSize = cfg.Downloader.ChunkSize
	config.DownloadLimit = time.Duration(cfg.Downloader.TimeoutSecs) * time.Second
	config.SummaryTokens = cfg.Summarizer.MaxTokens
	config.SummaryTemp = cfg.Summarizer.Temperature
	config.PreviewChars = cfg.Output.PreviewChars
	config.StripSuffix = true
	config.SiteName = "Overcast"

	return config
}
