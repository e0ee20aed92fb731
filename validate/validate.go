// Package validate checks raw user input before it reaches content
// generation. All functions are pure and total: they report problems as
// (false, message) results and never panic.
package validate

import (
	"strings"

	"social-agent/models"
)

// Input validates a content-generation request's topic, platform and tone.
// Checks run in a fixed order and the first failure wins.
func Input(topic string, platform models.Platform, tone models.Tone) (bool, string) {
	if strings.TrimSpace(topic) == "" {
		return false, "Topic cannot be empty"
	}

	trimmed := strings.TrimSpace(topic)
	if len([]rune(trimmed)) < 3 {
		return false, "Topic must be at least 3 characters long"
	}
	if len([]rune(trimmed)) > 500 {
		return false, "Topic must be less than 500 characters"
	}

	if !platform.Valid() {
		return false, "Invalid platform selected"
	}
	if !tone.Valid() {
		return false, "Invalid tone selected"
	}

	return true, ""
}
