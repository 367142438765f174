package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Fetcher struct {
		UserAgent      string  `yaml:"user_agent"`
		Accept         string  `yaml:"accept"`
		AcceptLanguage string  `yaml:"accept_language"`
		TimeoutSecs    int     `yaml:"timeout_seconds"`
		RateLimit      float64 `yaml:"rate_limit"`
	} `yaml:"fetcher"`

	Downloader struct {
		ChunkSize   int `yaml:"chunk_size"`
		TimeoutSecs int `yaml:"timeout_seconds"`
	} `yaml:"downloader"`

	Transcriber struct {
		BaseURL  string `yaml:"base_url"`
		Model    string `yaml:"model"`
		APIKey   string `yaml:"api_key"`
		Language string `yaml:"language"`
	} `yaml:"transcriber"`

	Summarizer struct {
		Enabled     bool    `yaml:"enabled"`
		BaseURL     string  `yaml:"base_url"`
		Model       string  `yaml:"model"`
		MaxTokens   int     `yaml:"max_tokens"`
		Temperature float64 `yaml:"temperature"`
	} `yaml:"summarizer"`

	Output struct {
		Dir          string `yaml:"dir"`
		PreviewChars int    `yaml:"preview_chars"`
	} `yaml:"output"`
}

func LoadConfig(path string) (*Config, error) {
	// If no path provided, try default locations
	if path == "" {
		locations := []string{
			"config.yaml",
			"config.yml",
			filepath.Join(os.Getenv("HOME"), ".config/podscribe/config.yaml"),
			"/etc/podscribe/config.yaml",
		}

		for _, loc := range locations {
			if _, err := os.Stat(loc); err == nil {
				path = loc
				break
			}
		}
	}

	if path == "" {
		return getDefaultConfig()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %v", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("error parsing config file: %v", err)
	}

	// Merge with environment variables
	mergeWithEnv(&config)

	// Apply defaults for unset values
	applyDefaults(&config)

	return &config, nil
}

func getDefaultConfig() (*Config, error) {
	config := &Config{}
	applyDefaults(config)
	mergeWithEnv(config)
	return config, nil
}

func applyDefaults(config *Config) {
	if config.Fetcher.UserAgent == "" {
		config.Fetcher.UserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) " +
			"AppleWebKit/537.36 (KHTML, like Gecko) " +
			"Chrome/120.0.0.0 Safari/537.36"
	}
	if config.Fetcher.Accept == "" {
		config.Fetcher.Accept = "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8"
	}
	if config.Fetcher.AcceptLanguage == "" {
		config.Fetcher.AcceptLanguage = "en-US,en;q=0.9"
	}
	if config.Fetcher.TimeoutSecs == 0 {
		config.Fetcher.TimeoutSecs = 30
	}
	if config.Fetcher.RateLimit == 0 {
		config.Fetcher.RateLimit = 2.0
	}

	if config.Downloader.ChunkSize == 0 {
		config.Downloader.ChunkSize = 8192
	}

	if config.Transcriber.Model == "" {
		config.Transcriber.Model = "whisper-1"
	}

	if config.Summarizer.Model == "" {
		config.Summarizer.Model = "mistral"
	}
	if config.Summarizer.MaxTokens == 0 {
		config.Summarizer.MaxTokens = 2000
	}
	if config.Summarizer.Temperature == 0 {
		config.Summarizer.Temperature = 0.7
	}
	if config.Summarizer.BaseURL == "" {
		config.Summarizer.BaseURL = "http://localhost:11434"
	}

	if config.Output.PreviewChars == 0 {
		config.Output.PreviewChars = 500
	}
}

func mergeWithEnv(config *Config) {
	if apiKey := os.Getenv("OPENAI_API_KEY"); apiKey != "" {
		config.Transcriber.APIKey = apiKey
	}
	if baseURL := os.Getenv("OPENAI_BASE_URL"); baseURL != "" {
		config.Transcriber.BaseURL = baseURL
	}
	if baseURL := os.Getenv("OLLAMA_BASE_URL"); baseURL != "" {
		config.Summarizer.BaseURL = baseURL
	}
}
