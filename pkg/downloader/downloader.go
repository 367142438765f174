package downloader

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
)

type DownloaderConfig struct {
	ChunkSize int
	Timeout   time.Duration
	Quiet     bool // suppress the progress bar
}

// Downloader streams a resource to a local file in fixed-size chunks.
// It does not retry and cannot resume a partial transfer.
type Downloader struct {
	config DownloaderConfig
	client *http.Client
}

func NewWithConfig(config DownloaderConfig) *Downloader {
	if config.ChunkSize == 0 {
		config.ChunkSize = 8192
	}

	return &Downloader{
		config: config,
		client: &http.Client{
			// No default timeout: episode downloads routinely run longer
			// than any sensible request deadline
			Timeout: config.Timeout,
		},
	}
}

func New() *Downloader {
	return NewWithConfig(DownloaderConfig{})
}

// Download writes the resource at urlStr to dest and returns the number of
// bytes written. Progress goes to stdout unless the downloader is quiet;
// percentage is only available when the server sent a Content-Length.
func (d *Downloader) Download(ctx context.Context, urlStr string, dest string) (int64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, nil)
	if err != nil {
		return 0, err
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("received status code %d for URL: %s", resp.StatusCode, urlStr)
	}

	out, err := os.Create(dest)
	if err != nil {
		return 0, err
	}
	defer out.Close()

	var dst io.Writer = out
	if !d.config.Quiet {
		bar := d.progressBar(resp.ContentLength)
		defer bar.Finish()
		dst = io.MultiWriter(out, bar)
	}

	buf := make([]byte, d.config.ChunkSize)
	written, err := io.CopyBuffer(dst, resp.Body, buf)
	if err != nil {
		return written, fmt.Errorf("download interrupted after %d bytes: %w", written, err)
	}

	return written, nil
}

func (d *Downloader) progressBar(total int64) *progressbar.ProgressBar {
	return progressbar.NewOptions64(total,
		progressbar.OptionSetDescription(color.BlueString(" Downloading audio")),
		progressbar.OptionShowBytes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "█",
			SaucerHead:    "█",
			SaucerPadding: "░",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionSetPredictTime(true),
		progressbar.OptionSetRenderBlankState(true),
	)
}
