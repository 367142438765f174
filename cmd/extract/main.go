// Proof-of-concept extractor: locate the audio URL and title on an episode
// page without downloading or transcribing anything. Useful for checking
// whether the page patterns still hold before running the full pipeline.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/xhad/podscribe/pkg/extractor"
	"github.com/xhad/podscribe/pkg/fetcher"
)

const snippetChars = 2000

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <episode_url>\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Example: %s https://overcast.fm/+AAbggn-BZtw\n", os.Args[0])
		os.Exit(1)
	}

	pageURL := os.Args[1]

	fmt.Printf("Fetching: %s\n", pageURL)
	html, err := fetcher.New().Fetch(context.Background(), pageURL)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Titles are left verbatim here, branding suffix and all, so the
	// output shows exactly what the page carries.
	result := extractor.New().Extract(html)

	fmt.Printf("\nTitle: %s\n", orNotFound(result.Title))
	fmt.Printf("Audio URL: %s\n", orNotFound(result.AudioURL))

	if result.AudioURL == "" {
		fmt.Println("\n❌ Could not find audio URL")
		fmt.Println("The page might load audio dynamically via JavaScript.")
		fmt.Printf("\nHTML snippet (first %d chars):\n%s\n", snippetChars, snippet(html))
		os.Exit(1)
	}

	fmt.Println("\n✅ Success! You can download with:")
	fmt.Printf("   curl -L -o episode.mp3 '%s'\n", result.AudioURL)
}

func orNotFound(s string) string {
	if s == "" {
		return "Not found"
	}
	return s
}

func snippet(html string) string {
	runes := []rune(html)
	if len(runes) <= snippetChars {
		return html
	}
	return string(runes[:snippetChars])
}
