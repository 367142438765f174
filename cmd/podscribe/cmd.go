package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
	"github.com/xhad/podscribe/internal/models"
	"github.com/xhad/podscribe/internal/types"
	"github.com/xhad/podscribe/pkg/downloader"
	"github.com/xhad/podscribe/pkg/extractor"
	"github.com/xhad/podscribe/pkg/fetcher"
	"github.com/xhad/podscribe/pkg/filename"
	"github.com/xhad/podscribe/pkg/summarizer"
	"github.com/xhad/podscribe/pkg/transcriber"
)

// pipeline holds the collaborators for one end-to-end run. Everything that
// talks to the network sits behind an interface so the flow can be tested
// without one.
type pipeline struct {
	fetcher      types.PageFetcher
	extractor    *extractor.Extractor
	downloader   types.Downloader
	transcriber  types.Transcriber
	summarizer   types.Summarizer // nil when summaries are disabled
	outputDir    string
	previewChars int
}

func getSpinner(description string) *progressbar.ProgressBar {
	return progressbar.NewOptions(-1,
		progressbar.OptionSetDescription(color.CyanString(description)),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionSetWidth(20),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetRenderBlankState(true),
	)
}

func run(config Config) error {
	p, err := newPipeline(config)
	if err != nil {
		return err
	}

	result, err := p.run(context.Background(), config.PageURL)
	if err != nil {
		return err
	}

	color.Green("\n✓ Done! Transcript saved to: %s", result.OutputPath)
	fmt.Printf("\n--- Preview ---\n%s...\n", preview(result.Text, p.previewChars))

	return nil
}

func newPipeline(config Config) (*pipeline, error) {
	tr, err := transcriber.NewWithConfig(transcriber.WhisperConfig{
		BaseURL:  config.WhisperURL,
		Model:    config.WhisperModel,
		APIKey:   config.APIKey,
		Language: config.Language,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize transcriber: %v", err)
	}

	var sum types.Summarizer
	if config.Summarize {
		s, err := summarizer.NewWithConfig(summarizer.SummarizerConfig{
			Model:       config.SummaryModel,
			BaseURL:     config.OllamaURL,
			MaxTokens:   config.SummaryTokens,
			Temperature: config.SummaryTemp,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to initialize summarizer: %v", err)
		}
		sum = s
	}

	return &pipeline{
		fetcher: fetcher.NewWithConfig(fetcher.FetcherConfig{
			UserAgent:      config.UserAgent,
			Accept:         config.AcceptHeader,
			AcceptLanguage: config.AcceptLanguage,
			Timeout:        config.FetchTimeout,
			RateLimit:      config.RateLimit,
		}),
		extractor: extractor.NewWithConfig(extractor.ExtractorConfig{
			StripSiteSuffix: config.StripSuffix,
			SiteName:        config.SiteName,
		}),
		downloader: downloader.NewWithConfig(downloader.DownloaderConfig{
			ChunkSize: config.ChunkSize,
			Timeout:   config.DownloadLimit,
		}),
		transcriber:  tr,
		summarizer:   sum,
		outputDir:    config.OutputDir,
		previewChars: config.PreviewChars,
	}, nil
}

// run walks the single linear flow: fetch, extract, download, transcribe,
// write. Any failure aborts the run; the temp dir holding the audio is
// removed on every exit path past its creation.
func (p *pipeline) run(ctx context.Context, pageURL string) (*models.Transcription, error) {
	color.Blue("Fetching: %s", pageURL)

	html, err := p.fetcher.Fetch(ctx, pageURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch page: %v", err)
	}

	extracted := p.extractor.Extract(html)
	if extracted.AudioURL == "" {
		return nil, fmt.Errorf("could not find an audio URL on %s", pageURL)
	}

	title := extracted.Title
	if title == "" {
		title = "podcast"
		color.Yellow("Title: not found, using %q", title)
	} else {
		color.Blue("Title: %s", title)
	}
	color.Blue("Audio URL: %s", extracted.AudioURL)

	safeTitle := filename.Sanitize(title)
	if safeTitle == "" {
		safeTitle = "podcast"
	}

	tmpDir, err := os.MkdirTemp("", "podscribe-")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	audioPath := filepath.Join(tmpDir, "episode.mp3")
	written, err := p.downloader.Download(ctx, extracted.AudioURL, audioPath)
	if err != nil {
		return nil, fmt.Errorf("failed to download audio: %v", err)
	}
	color.Green("✓ Downloaded %.1f MB", float64(written)/1_000_000)

	spinner := getSpinner(" Transcribing (this may take a few minutes)...")
	text, err := p.transcriber.Transcribe(ctx, audioPath)
	spinner.Finish()
	if err != nil {
		return nil, err
	}

	var summary string
	if p.summarizer != nil {
		spinner := getSpinner(" Summarizing...")
		summary, err = p.summarizer.Summarize(ctx, text)
		spinner.Finish()
		if err != nil {
			return nil, err
		}
	}

	outputPath := filepath.Join(p.outputDir, safeTitle+".txt")
	content := text
	if summary != "" {
		content += "\n\n--- Summary ---\n\n" + summary
	}
	if err := os.WriteFile(outputPath, []byte(content), 0644); err != nil {
		return nil, fmt.Errorf("failed to write transcript: %v", err)
	}

	return &models.Transcription{
		Episode: models.Episode{
			PageURL:  pageURL,
			Title:    title,
			AudioURL: extracted.AudioURL,
		},
		Text:       text,
		Summary:    summary,
		OutputPath: outputPath,
	}, nil
}

func preview(text string, chars int) string {
	runes := []rune(strings.TrimSpace(text))
	if len(runes) <= chars {
		return string(runes)
	}
	return string(runes[:chars])
}
