package filename

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "illegal characters removed",
			input:    `My/Show: "Ep 1"`,
			expected: "MyShow Ep 1",
		},
		{
			name:     "whitespace collapsed and trimmed",
			input:    "  Too   many \t spaces \n here  ",
			expected: "Too many spaces here",
		},
		{
			name:     "all illegal characters dropped",
			input:    `a<b>c:d"e/f\g|h?i*j`,
			expected: "abcdefghij",
		},
		{
			name:     "clean title untouched",
			input:    "A Perfectly Normal Episode",
			expected: "A Perfectly Normal Episode",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Sanitize(tt.input))
		})
	}
}

func TestSanitizeTruncatesAtWordBoundary(t *testing.T) {
	// 26 words of 10 chars each, far past the limit
	long := strings.TrimSpace(strings.Repeat("wordwordy ", 26))

	got := Sanitize(long)
	assert.LessOrEqual(t, len(got), MaxLength)
	assert.False(t, strings.HasSuffix(got, " "))

	// Never splits a word: the result must be whole 10-char words
	for _, w := range strings.Fields(got) {
		assert.Equal(t, "wordwordy", w)
	}
}

func TestSanitizeExactLimitNotTruncated(t *testing.T) {
	exact := strings.Repeat("a", MaxLength)
	assert.Equal(t, exact, Sanitize(exact))
}

func TestSanitizeUnbrokenLongWord(t *testing.T) {
	// No word boundary to back up to; falls back to a hard cut at the limit
	got := Sanitize(strings.Repeat("a", MaxLength+50))
	assert.Equal(t, strings.Repeat("a", MaxLength), got)
}
