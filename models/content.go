package models

// GenerateOptions are the per-request toggles from the content form.
type GenerateOptions struct {
	IncludeHashtags  bool          `json:"include_hashtags"`
	IncludeVisuals   bool          `json:"include_visuals"`
	IncludeAnalytics bool          `json:"include_analytics"`
	ContentLength    ContentLength `json:"content_length"`
}

// ContentRequest is a normalized, validated content-generation request.
type ContentRequest struct {
	Topic             string          `json:"topic"`
	Platform          Platform        `json:"platform"`
	Tone              Tone            `json:"tone"`
	AdditionalContext string          `json:"additional_context,omitempty"`
	Options           GenerateOptions `json:"options"`
}

// ContentRecord is one generated result plus its request metadata, kept in
// the session history. It lives only in memory for the session's lifetime.
type ContentRecord struct {
	ID                string          `json:"id"`
	Topic             string          `json:"topic"`
	Platform          Platform        `json:"platform"`
	Tone              Tone            `json:"tone"`
	AdditionalContext string          `json:"additional_context,omitempty"`
	Content           string          `json:"content"`
	Timestamp         string          `json:"timestamp"`
	Options           GenerateOptions `json:"options"`
}
