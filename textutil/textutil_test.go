package textutil

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"social-agent/models"
)

func TestCleanText(t *testing.T) {
	testCases := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"trims and collapses whitespace", "  hello   world \t again ", "hello world again"},
		{"keeps common punctuation", "wow! really? yes: #go @dev (100%)", "wow! really? yes: #go @dev (100%)"},
		{"strips disallowed characters", "price© is 5€ today", "price is 5 today"},
		{"keeps non-ascii letters", "카카오 tech blog", "카카오 tech blog"},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			got := CleanText(testCase.in)
			if got != testCase.want {
				t.Fatalf("expected %q, got %q", testCase.want, got)
			}
		})
	}
}

func TestCleanTextIdempotent(t *testing.T) {
	inputs := []string{
		"  hello   world ",
		"topic with #tags and (parens)",
		"",
		"tabs\tand\nnewlines",
	}
	for _, in := range inputs {
		once := CleanText(in)
		twice := CleanText(once)
		if once != twice {
			t.Fatalf("CleanText not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

func TestFormatHashtags(t *testing.T) {
	got := FormatHashtags("check #Go! and #1 and #ab")

	// Order is not part of the contract; compare as sets.
	assert.ElementsMatch(t, []string{"#Go", "#ab"}, got)
}

func TestFormatHashtagsDeduplicates(t *testing.T) {
	got := FormatHashtags("#Fun stuff #Fun again #fun")

	assert.ElementsMatch(t, []string{"#Fun", "#fun"}, got)
}

func TestFormatHashtagsEmptyInput(t *testing.T) {
	if got := FormatHashtags(""); got != nil {
		t.Fatalf("expected nil for empty input, got %v", got)
	}
	if got := FormatHashtags("no tags here"); got != nil {
		t.Fatalf("expected nil when no tags found, got %v", got)
	}
}

func TestTruncateText(t *testing.T) {
	testCases := []struct {
		name      string
		in        string
		maxLength int
		want      string
	}{
		{"short text unchanged", "hello", 10, "hello"},
		{"exact length unchanged", "hello", 5, "hello"},
		{"truncated with suffix", "hello world and more", 10, "hello w..."},
		{"empty", "", 10, ""},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			got := TruncateText(testCase.in, testCase.maxLength, "...")
			if got != testCase.want {
				t.Fatalf("expected %q, got %q", testCase.want, got)
			}
		})
	}
}

func TestWordCount(t *testing.T) {
	if got := WordCount("one two  three"); got != 3 {
		t.Fatalf("expected 3 words, got %d", got)
	}
	if got := WordCount(""); got != 0 {
		t.Fatalf("expected 0 words for empty text, got %d", got)
	}
}

func TestCharacterCount(t *testing.T) {
	if got := CharacterCount("a b c", true); got != 5 {
		t.Fatalf("expected 5 with spaces, got %d", got)
	}
	if got := CharacterCount("a b c", false); got != 3 {
		t.Fatalf("expected 3 without spaces, got %d", got)
	}
}

func TestGenerateContentID(t *testing.T) {
	ts := time.Date(2025, 6, 1, 12, 30, 0, 0, time.UTC)

	first := GenerateContentID("AI in healthcare", models.PlatformLinkedIn, ts)
	second := GenerateContentID("AI in healthcare", models.PlatformLinkedIn, ts)

	if first != second {
		t.Fatalf("expected deterministic id, got %q and %q", first, second)
	}
	if len(first) != 12 {
		t.Fatalf("expected 12 characters, got %d (%q)", len(first), first)
	}
	if !regexp.MustCompile(`^[0-9a-f]{12}$`).MatchString(first) {
		t.Fatalf("expected hex id, got %q", first)
	}

	other := GenerateContentID("AI in healthcare", models.PlatformTwitterX, ts)
	if other == first {
		t.Fatalf("expected different platforms to produce different ids")
	}
}

func TestCreateDownloadFilename(t *testing.T) {
	ts := time.Date(2025, 6, 1, 12, 30, 45, 0, time.UTC)

	got := createDownloadFilenameAt("Sustainable fashion trends!", models.PlatformTwitterX, "json", ts)

	if got != "social_media_Sustainable-fashion-trends_twitter_x_20250601_123045.json" {
		t.Fatalf("unexpected filename: %q", got)
	}
	if strings.Contains(got, "/") {
		t.Fatalf("filename must not contain slashes: %q", got)
	}
}

func TestCreateDownloadFilenamePattern(t *testing.T) {
	got := CreateDownloadFilename("A very long topic that definitely exceeds the thirty character slug cap", models.PlatformInstagram, "txt")

	pattern := regexp.MustCompile(`^social_media_[\w-]{1,30}_instagram_\d{8}_\d{6}\.txt$`)
	if !pattern.MatchString(got) {
		t.Fatalf("filename %q does not match expected pattern", got)
	}
}

func TestFormatTimestamp(t *testing.T) {
	if got := FormatTimestamp("2025-06-01T12:30:45Z"); got != "2025-06-01 12:30:45" {
		t.Fatalf("expected formatted timestamp, got %q", got)
	}
	// Unparseable input passes through unchanged.
	if got := FormatTimestamp("not-a-timestamp"); got != "not-a-timestamp" {
		t.Fatalf("expected passthrough, got %q", got)
	}
}
