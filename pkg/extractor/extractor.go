package extractor

import (
	"regexp"
	"strings"
)

// Audio URL patterns, in priority order. The first pattern that matches
// anywhere in the page wins and the rest are never consulted.
var audioPatterns = []*regexp.Regexp{
	regexp.MustCompile(`<source\s+src="([^"]+)"`),
	regexp.MustCompile(`<audio[^>]+src="([^"]+)"`),
	regexp.MustCompile(`"audio_url"\s*:\s*"([^"]+)"`), // JSON format
}

// Title patterns, in priority order.
var titlePatterns = []*regexp.Regexp{
	regexp.MustCompile(`<meta\s+name="og:title"\s+content="([^"]+)"`),
	regexp.MustCompile(`<meta\s+property="og:title"\s+content="([^"]+)"`),
	regexp.MustCompile(`<title>([^<]+)</title>`),
}

// Only the entities actually seen on episode pages, not a general decoder.
var entityReplacer = strings.NewReplacer(
	"&mdash;", "—",
	"&amp;", "&",
	"&#39;", "'",
)

type ExtractorConfig struct {
	StripSiteSuffix bool   // remove a trailing "— <site>" branding suffix from titles
	SiteName        string // defaults to "Overcast"
}

// Extractor locates the audio source URL and episode title in raw page HTML.
// It deliberately works on the text with ordered regular expressions instead
// of parsing the markup into a tree; this is fragile to page-structure
// changes but the target markup is simple and stable.
type Extractor struct {
	config       ExtractorConfig
	siteSuffixRe *regexp.Regexp
}

type Result struct {
	AudioURL string // empty when no pattern matched
	Title    string // empty when no pattern matched
}

func NewWithConfig(config ExtractorConfig) *Extractor {
	if config.SiteName == "" {
		config.SiteName = "Overcast"
	}

	e := &Extractor{config: config}
	if config.StripSiteSuffix {
		e.siteSuffixRe = regexp.MustCompile(`\s*—\s*` + regexp.QuoteMeta(config.SiteName) + `$`)
	}
	return e
}

func New() *Extractor {
	return NewWithConfig(ExtractorConfig{})
}

// Extract applies both pattern lists to the page. A miss on either field is
// a normal outcome and leaves the field empty; it is the caller's decision
// whether a missing audio URL is fatal.
func (e *Extractor) Extract(html string) Result {
	return Result{
		AudioURL: e.extractAudioURL(html),
		Title:    e.extractTitle(html),
	}
}

func (e *Extractor) extractAudioURL(html string) string {
	for _, pattern := range audioPatterns {
		match := pattern.FindStringSubmatch(html)
		if match == nil {
			continue
		}

		url := match[1]
		// Strip any timestamp fragment (e.g. #t=10); it encodes a playback
		// position, not part of the resource location.
		if i := strings.Index(url, "#"); i >= 0 {
			url = url[:i]
		}
		return url
	}
	return ""
}

func (e *Extractor) extractTitle(html string) string {
	for _, pattern := range titlePatterns {
		match := pattern.FindStringSubmatch(html)
		if match == nil {
			continue
		}

		title := entityReplacer.Replace(match[1])
		if e.siteSuffixRe != nil {
			title = e.siteSuffixRe.ReplaceAllString(title, "")
		}
		return title
	}
	return ""
}
