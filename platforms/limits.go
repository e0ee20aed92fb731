package platforms

import (
	"fmt"
	"unicode/utf8"

	"social-agent/models"
)

// DefaultLimit is used when a platform's limit table has no entry for the
// requested content type.
const DefaultLimit = 2000

// limits maps each platform to its named character limits. Fixed at
// startup, never mutated.
var limits = map[models.Platform]map[string]int{
	models.PlatformInstagram: {
		"caption":  2200,
		"bio":      150,
		"hashtags": 30,
	},
	models.PlatformTwitterX: {
		"post":     280,
		"bio":      160,
		"hashtags": 2,
	},
	models.PlatformLinkedIn: {
		"post":     3000,
		"headline": 220,
		"hashtags": 5,
	},
	models.PlatformFacebook: {
		"post":     63206,
		"bio":      101,
		"hashtags": 30,
	},
	models.PlatformTikTok: {
		"caption":  2200,
		"bio":      80,
		"hashtags": 5,
	},
	models.PlatformYouTube: {
		"description": 5000,
		"title":       100,
		"hashtags":    15,
	},
	models.PlatformGeneral: {
		"post":     2000,
		"bio":      150,
		"hashtags": 10,
	},
}

// GetLimits returns the character limits for a platform. Unknown platforms
// fall back to the General entry rather than failing.
func GetLimits(platform models.Platform) map[string]int {
	src, ok := limits[platform]
	if !ok {
		src = limits[models.PlatformGeneral]
	}
	// Copy so callers cannot mutate the table.
	out := make(map[string]int, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}

// ValidateContentLength checks a content string against the platform limit
// for the given content type. The message always reports current/limit;
// the flag is set by currentLength <= limit. Lengths are counted in
// characters, not bytes.
func ValidateContentLength(content string, platform models.Platform, contentType string) (bool, string) {
	if contentType == "" {
		contentType = "post"
	}

	platformLimits := GetLimits(platform)
	limit, ok := platformLimits[contentType]
	if !ok {
		limit = DefaultLimit
	}

	contentLength := utf8.RuneCountInString(content)

	if contentLength > limit {
		return false, fmt.Sprintf("Content exceeds %s %s limit of %d characters (%d/%d)",
			platform, contentType, limit, contentLength, limit)
	}

	return true, fmt.Sprintf("Content length OK (%d/%d characters)", contentLength, limit)
}
