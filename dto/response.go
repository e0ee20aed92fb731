package dto

// ErrorResponseDTO is the uniform error payload: a stable error code plus
// an optional human-readable message.
type ErrorResponseDTO struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// ValidateRequestDTO is the dry-run validation body.
type ValidateRequestDTO struct {
	Topic    string `json:"topic"`
	Platform string `json:"platform"`
	Tone     string `json:"tone"`
}

// ValidateResponseDTO reports the validation verdict.
type ValidateResponseDTO struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message,omitempty"`
}

// HashtagsRequestDTO asks for hashtag extraction from free text.
type HashtagsRequestDTO struct {
	Text string `json:"text"`
}

// HashtagsResponseDTO returns the cleaned, deduplicated hashtags. The
// order is not part of the contract.
type HashtagsResponseDTO struct {
	Hashtags []string `json:"hashtags"`
}

// PlatformOptionsDTO lists the fixed enums the content form offers.
type PlatformOptionsDTO struct {
	Platforms      []string `json:"platforms"`
	Tones          []string `json:"tones"`
	ContentLengths []string `json:"content_lengths"`
}

// PlatformLimitsDTO reports the character limits of one platform.
type PlatformLimitsDTO struct {
	Platform string         `json:"platform"`
	Limits   map[string]int `json:"limits"`
}

// PreviewDTO carries the rendered HTML preview of a record's content.
type PreviewDTO struct {
	RecordID string `json:"record_id"`
	HTML     string `json:"html"`
}
