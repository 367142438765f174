package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xhad/podscribe/internal/types"
	"github.com/xhad/podscribe/pkg/downloader"
	"github.com/xhad/podscribe/pkg/extractor"
	"github.com/xhad/podscribe/pkg/fetcher"
)

const episodePage = `
<html>
<head>
	<meta property="og:title" content="Episode Title &mdash; Overcast">
	<title>Episode Title &mdash; Overcast</title>
</head>
<body>
	<audio controls>
		<source src="https://cdn.example/ep.mp3#t=10" type="audio/mpeg">
	</audio>
</body>
</html>
`

type fakeFetcher struct {
	html string
	err  error
}

func (f *fakeFetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.html, f.err
}

type fakeDownloader struct {
	gotURL  string
	gotDest string
}

func (d *fakeDownloader) Download(ctx context.Context, url string, dest string) (int64, error) {
	d.gotURL = url
	d.gotDest = dest
	if err := os.WriteFile(dest, []byte("fake audio"), 0644); err != nil {
		return 0, err
	}
	return int64(len("fake audio")), nil
}

type fakeTranscriber struct {
	text string
	err  error
}

func (t *fakeTranscriber) Transcribe(ctx context.Context, audioPath string) (string, error) {
	if _, err := os.Stat(audioPath); err != nil {
		return "", err
	}
	return t.text, t.err
}

type fakeSummarizer struct {
	summary string
}

func (s *fakeSummarizer) Summarize(ctx context.Context, transcript string) (string, error) {
	return s.summary, nil
}

func newTestPipeline(t *testing.T, html string) (*pipeline, *fakeDownloader) {
	t.Helper()

	dl := &fakeDownloader{}
	return &pipeline{
		fetcher:      &fakeFetcher{html: html},
		extractor:    extractor.NewWithConfig(extractor.ExtractorConfig{StripSiteSuffix: true}),
		downloader:   dl,
		transcriber:  &fakeTranscriber{text: "the transcript text"},
		outputDir:    t.TempDir(),
		previewChars: 500,
	}, dl
}

func TestPipelineEndToEnd(t *testing.T) {
	p, dl := newTestPipeline(t, episodePage)

	result, err := p.run(context.Background(), "https://overcast.fm/+test")
	require.NoError(t, err)

	// branding suffix and timestamp fragment both stripped
	assert.Equal(t, "Episode Title", result.Title)
	assert.Equal(t, "https://cdn.example/ep.mp3", result.AudioURL)
	assert.Equal(t, "https://cdn.example/ep.mp3", dl.gotURL)

	// transcript lands in a file named after the sanitized title
	assert.Equal(t, filepath.Join(p.outputDir, "Episode Title.txt"), result.OutputPath)
	content, err := os.ReadFile(result.OutputPath)
	require.NoError(t, err)
	assert.Equal(t, "the transcript text", string(content))

	// the download temp dir is gone
	_, statErr := os.Stat(filepath.Dir(dl.gotDest))
	assert.True(t, os.IsNotExist(statErr))
}

func TestPipelineNoAudioURL(t *testing.T) {
	p, dl := newTestPipeline(t, `<html><body><p>nothing here</p></body></html>`)

	_, err := p.run(context.Background(), "https://overcast.fm/+test")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "could not find an audio URL")

	// failure happens before any download is attempted
	assert.Empty(t, dl.gotURL)
}

func TestPipelineMissingTitleUsesPlaceholder(t *testing.T) {
	p, _ := newTestPipeline(t, `<source src="https://cdn.example/ep.mp3">`)

	result, err := p.run(context.Background(), "https://overcast.fm/+test")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(p.outputDir, "podcast.txt"), result.OutputPath)
}

func TestPipelineTranscriptionFailureCleansUp(t *testing.T) {
	p, dl := newTestPipeline(t, episodePage)
	p.transcriber = &fakeTranscriber{err: errors.New("model unavailable")}

	_, err := p.run(context.Background(), "https://overcast.fm/+test")
	require.Error(t, err)

	// audio temp dir removed even though the run failed mid-way
	_, statErr := os.Stat(filepath.Dir(dl.gotDest))
	assert.True(t, os.IsNotExist(statErr))

	// and no transcript file was written
	entries, readErr := os.ReadDir(p.outputDir)
	require.NoError(t, readErr)
	assert.Empty(t, entries)
}

func TestPipelineWithSummary(t *testing.T) {
	p, _ := newTestPipeline(t, episodePage)
	p.summarizer = &fakeSummarizer{summary: "a short summary"}

	result, err := p.run(context.Background(), "https://overcast.fm/+test")
	require.NoError(t, err)
	assert.Equal(t, "a short summary", result.Summary)

	content, err := os.ReadFile(result.OutputPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), "the transcript text")
	assert.Contains(t, string(content), "--- Summary ---")
	assert.Contains(t, string(content), "a short summary")
}

func TestPreview(t *testing.T) {
	assert.Equal(t, "short", preview("short", 500))
	assert.Equal(t, "abcde", preview("abcdefgh", 5))
	assert.Equal(t, "trimmed", preview("  trimmed  ", 500))
}

// the real components satisfy the pipeline's interfaces
var (
	_ types.Downloader  = downloader.New()
	_ types.PageFetcher = fetcher.New()
)
