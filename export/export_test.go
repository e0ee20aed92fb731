package export

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"social-agent/models"
)

func TestContentJSON(t *testing.T) {
	record := models.ContentRecord{
		ID:        "abc123def456",
		Topic:     "AI in healthcare",
		Platform:  models.PlatformLinkedIn,
		Tone:      models.ToneProfessional,
		Content:   "Generated post body",
		Timestamp: "2025-06-01T12:30:45Z",
	}

	data := ContentJSON(record)

	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("export is not valid JSON: %v", err)
	}
	assert.Equal(t, "abc123def456", decoded["id"])
	assert.Equal(t, "AI in healthcare", decoded["topic"])
	assert.Equal(t, "LinkedIn", decoded["platform"])

	// Indented output for human readability.
	if !strings.Contains(string(data), "\n  ") {
		t.Fatalf("expected indented JSON, got %s", data)
	}
}

func TestContentHTML(t *testing.T) {
	record := models.ContentRecord{
		Content: "## Heading\n\nSome **bold** text",
	}

	html, err := ContentHTML(record)
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	assert.Contains(t, html, "<h2")
	assert.Contains(t, html, "<strong>bold</strong>")
}

func TestContentHTMLEmptyContent(t *testing.T) {
	html, err := ContentHTML(models.ContentRecord{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.TrimSpace(html) != "" {
		t.Fatalf("expected empty output, got %q", html)
	}
}
