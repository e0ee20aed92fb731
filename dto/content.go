package dto

import (
	"social-agent/models"
	"social-agent/parser"
	"social-agent/services"
	"social-agent/textutil"
)

// GenerateOptionsDTO mirrors the advanced options of the content form.
type GenerateOptionsDTO struct {
	IncludeHashtags  bool   `json:"include_hashtags"`
	IncludeVisuals   bool   `json:"include_visuals"`
	IncludeAnalytics bool   `json:"include_analytics"`
	ContentLength    string `json:"content_length"`
}

// ContentRequestDTO is the body of the generate endpoint.
type ContentRequestDTO struct {
	Topic             string             `json:"topic"`
	Platform          string             `json:"platform"`
	Tone              string             `json:"tone"`
	AdditionalContext string             `json:"additional_context"`
	Options           GenerateOptionsDTO `json:"options"`
}

// ContentRecordDTO exposes one history record to API consumers.
type ContentRecordDTO struct {
	ID                string             `json:"id"`
	Topic             string             `json:"topic"`
	Platform          string             `json:"platform"`
	Tone              string             `json:"tone"`
	AdditionalContext string             `json:"additional_context,omitempty"`
	Content           string             `json:"content"`
	Timestamp         string             `json:"timestamp"`
	DisplayTimestamp  string             `json:"display_timestamp"`
	Options           GenerateOptionsDTO `json:"options"`
}

func NewContentRecordDTO(r models.ContentRecord) ContentRecordDTO {
	return ContentRecordDTO{
		ID:                r.ID,
		Topic:             r.Topic,
		Platform:          string(r.Platform),
		Tone:              string(r.Tone),
		AdditionalContext: r.AdditionalContext,
		Content:           r.Content,
		Timestamp:         r.Timestamp,
		DisplayTimestamp:  textutil.FormatTimestamp(r.Timestamp),
		Options: GenerateOptionsDTO{
			IncludeHashtags:  r.Options.IncludeHashtags,
			IncludeVisuals:   r.Options.IncludeVisuals,
			IncludeAnalytics: r.Options.IncludeAnalytics,
			ContentLength:    string(r.Options.ContentLength),
		},
	}
}

// ParsedSectionsDTO carries the six parsed sections of an agent response.
type ParsedSectionsDTO struct {
	Summary        string `json:"summary"`
	Content        string `json:"content"`
	Hashtags       string `json:"hashtags"`
	VisualConcepts string `json:"visual_concepts"`
	Analytics      string `json:"analytics"`
	Trends         string `json:"trends"`
}

func NewParsedSectionsDTO(s parser.Sections) ParsedSectionsDTO {
	return ParsedSectionsDTO{
		Summary:        s.Summary,
		Content:        s.Content,
		Hashtags:       s.Hashtags,
		VisualConcepts: s.VisualConcepts,
		Analytics:      s.Analytics,
		Trends:         s.Trends,
	}
}

// LengthValidationDTO reports the platform length check on the full
// response.
type LengthValidationDTO struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message"`
}

// ContentResultDTO is the generate endpoint's response.
type ContentResultDTO struct {
	Record            ContentRecordDTO    `json:"record"`
	Sections          ParsedSectionsDTO   `json:"sections"`
	LengthValidation  LengthValidationDTO `json:"length_validation"`
	FormattedHashtags []string            `json:"formatted_hashtags"`
}

func NewContentResultDTO(result services.GenerateResult) ContentResultDTO {
	return ContentResultDTO{
		Record:   NewContentRecordDTO(result.Record),
		Sections: NewParsedSectionsDTO(result.Sections),
		LengthValidation: LengthValidationDTO{
			Valid:   result.LengthOK,
			Message: result.LengthMessage,
		},
		FormattedHashtags: result.FormattedHashtags,
	}
}
