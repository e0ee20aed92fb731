package textutil

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"regexp"
	"strings"
	"time"

	"social-agent/models"
)

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	// Allow word characters (including non-ASCII letters/digits),
	// whitespace and common punctuation; everything else is stripped.
	disallowedChars = regexp.MustCompile("[^\\w\\p{L}\\p{N}\\s\\-.,!?@#$%&*()+=\\[\\]{}:;\"'<>/\\\\|`~]")

	hashtagPattern    = regexp.MustCompile(`#[\w\p{L}\p{N}]+`)
	nonTagChars       = regexp.MustCompile(`[^a-zA-Z0-9_]`)
	nonFilenameChars  = regexp.MustCompile(`[^\w\p{L}\p{N}\s-]`)
	filenameSeparator = regexp.MustCompile(`[-\s]+`)
)

// CleanText trims the input, collapses internal whitespace runs to a single
// space and deletes characters outside the allow-list. It never fails and
// is idempotent.
func CleanText(text string) string {
	if text == "" {
		return ""
	}

	text = whitespaceRun.ReplaceAllString(strings.TrimSpace(text), " ")
	return disallowedChars.ReplaceAllString(text, "")
}

// FormatHashtags extracts #word tokens from text, strips characters that
// are not alphanumeric or underscore, drops tags of length one or less and
// deduplicates the rest. The result order is first-seen but callers must
// not rely on it.
func FormatHashtags(text string) []string {
	if text == "" {
		return nil
	}

	found := hashtagPattern.FindAllString(text, -1)

	var formatted []string
	seen := make(map[string]struct{}, len(found))
	for _, tag := range found {
		cleanTag := nonTagChars.ReplaceAllString(strings.TrimPrefix(tag, "#"), "")
		if len(cleanTag) <= 1 {
			continue
		}
		withHash := "#" + cleanTag
		if _, ok := seen[withHash]; ok {
			continue
		}
		seen[withHash] = struct{}{}
		formatted = append(formatted, withHash)
	}
	return formatted
}

// TruncateText shortens text to maxLength runes, appending suffix when
// truncation happens.
func TruncateText(text string, maxLength int, suffix string) string {
	runes := []rune(text)
	if text == "" || len(runes) <= maxLength {
		return text
	}

	cut := maxLength - len([]rune(suffix))
	if cut < 0 {
		cut = 0
	}
	return strings.TrimSpace(string(runes[:cut])) + suffix
}

// WordCount counts whitespace-separated words.
func WordCount(text string) int {
	return len(strings.Fields(text))
}

// CharacterCount counts characters, optionally excluding spaces.
func CharacterCount(text string, includeSpaces bool) int {
	if !includeSpaces {
		text = strings.ReplaceAll(text, " ", "")
	}
	return len([]rune(text))
}

// GenerateContentID derives a deterministic short id from topic, platform
// and timestamp. It hashes "topic_platform_timestamp" and keeps the first
// 12 hex characters. Good enough for session-scale dedup, not a primary key.
func GenerateContentID(topic string, platform models.Platform, t time.Time) string {
	contentString := fmt.Sprintf("%s_%s_%s", topic, platform, t.Format(time.RFC3339))
	sum := md5.Sum([]byte(contentString))
	return hex.EncodeToString(sum[:])[:12]
}

// FormatTimestamp renders an RFC 3339 timestamp for display as
// "YYYY-MM-DD HH:MM:SS". Unparseable input is returned unchanged.
func FormatTimestamp(timestamp string) string {
	t, err := time.Parse(time.RFC3339, timestamp)
	if err != nil {
		return timestamp
	}
	return t.Format("2006-01-02 15:04:05")
}

// CreateDownloadFilename builds a safe download filename of the form
// social_media_{topic-slug}_{platform}_{timestamp}.{fileType}. The topic
// slug keeps word characters only, collapses whitespace/hyphen runs to a
// single hyphen and is capped at 30 characters.
func CreateDownloadFilename(topic string, platform models.Platform, fileType string) string {
	return createDownloadFilenameAt(topic, platform, fileType, time.Now())
}

func createDownloadFilenameAt(topic string, platform models.Platform, fileType string, now time.Time) string {
	safeTopic := strings.TrimSpace(nonFilenameChars.ReplaceAllString(topic, ""))
	safeTopic = filenameSeparator.ReplaceAllString(safeTopic, "-")
	if runes := []rune(safeTopic); len(runes) > 30 {
		safeTopic = string(runes[:30])
	}

	safePlatform := strings.ToLower(strings.ReplaceAll(string(platform), "/", "_"))

	timestamp := now.Format("20060102_150405")

	return fmt.Sprintf("social_media_%s_%s_%s.%s", safeTopic, safePlatform, timestamp, fileType)
}
