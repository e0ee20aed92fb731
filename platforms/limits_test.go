package platforms

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"social-agent/models"
)

func TestGetLimits(t *testing.T) {
	testCases := []struct {
		platform models.Platform
		key      string
		want     int
	}{
		{models.PlatformInstagram, "caption", 2200},
		{models.PlatformInstagram, "bio", 150},
		{models.PlatformInstagram, "hashtags", 30},
		{models.PlatformTwitterX, "post", 280},
		{models.PlatformTwitterX, "hashtags", 2},
		{models.PlatformLinkedIn, "post", 3000},
		{models.PlatformLinkedIn, "headline", 220},
		{models.PlatformFacebook, "post", 63206},
		{models.PlatformTikTok, "caption", 2200},
		{models.PlatformYouTube, "description", 5000},
		{models.PlatformYouTube, "title", 100},
		{models.PlatformGeneral, "post", 2000},
	}

	for _, testCase := range testCases {
		got := GetLimits(testCase.platform)
		if got[testCase.key] != testCase.want {
			t.Fatalf("%s %s: expected %d, got %d",
				testCase.platform, testCase.key, testCase.want, got[testCase.key])
		}
	}
}

func TestGetLimitsUnknownPlatformFallsBackToGeneral(t *testing.T) {
	got := GetLimits(models.Platform("MySpace"))

	assert.Equal(t, GetLimits(models.PlatformGeneral), got)
}

func TestGetLimitsReturnsCopy(t *testing.T) {
	first := GetLimits(models.PlatformTwitterX)
	first["post"] = 1

	second := GetLimits(models.PlatformTwitterX)
	if second["post"] != 280 {
		t.Fatalf("limit table was mutated through the returned map")
	}
}

func TestValidateContentLength(t *testing.T) {
	testCases := []struct {
		name        string
		content     string
		platform    models.Platform
		contentType string
		wantOK      bool
		wantMsg     string
	}{
		{
			name:        "within limit",
			content:     "short post",
			platform:    models.PlatformTwitterX,
			contentType: "post",
			wantOK:      true,
			wantMsg:     "Content length OK (10/280 characters)",
		},
		{
			name:        "over limit",
			content:     strings.Repeat("a", 300),
			platform:    models.PlatformTwitterX,
			contentType: "post",
			wantOK:      false,
			wantMsg:     "Content exceeds Twitter/X post limit of 280 characters (300/280)",
		},
		{
			name:        "at limit exactly",
			content:     strings.Repeat("a", 280),
			platform:    models.PlatformTwitterX,
			contentType: "post",
			wantOK:      true,
			wantMsg:     "Content length OK (280/280 characters)",
		},
		{
			name:        "empty content type defaults to post",
			content:     strings.Repeat("a", 300),
			platform:    models.PlatformTwitterX,
			contentType: "",
			wantOK:      false,
			wantMsg:     "Content exceeds Twitter/X post limit of 280 characters (300/280)",
		},
		{
			name:        "unknown content type uses default limit",
			content:     strings.Repeat("a", 2001),
			platform:    models.PlatformInstagram,
			contentType: "story",
			wantOK:      false,
			wantMsg:     "Content exceeds Instagram story limit of 2000 characters (2001/2000)",
		},
		{
			name:        "multibyte characters count as one",
			content:     strings.Repeat("카", 280),
			platform:    models.PlatformTwitterX,
			contentType: "post",
			wantOK:      true,
			wantMsg:     "Content length OK (280/280 characters)",
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			ok, msg := ValidateContentLength(testCase.content, testCase.platform, testCase.contentType)
			if ok != testCase.wantOK {
				t.Fatalf("expected ok=%v, got %v (msg=%q)", testCase.wantOK, ok, msg)
			}
			if msg != testCase.wantMsg {
				t.Fatalf("expected message %q, got %q", testCase.wantMsg, msg)
			}
		})
	}
}
