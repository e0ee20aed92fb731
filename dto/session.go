package dto

import (
	"time"

	"social-agent/session"
)

// SessionDTO identifies a freshly created session.
type SessionDTO struct {
	SessionID string    `json:"session_id"`
	CreatedAt time.Time `json:"created_at"`
}

func NewSessionDTO(s *session.Session) SessionDTO {
	return SessionDTO{SessionID: s.ID, CreatedAt: s.CreatedAt}
}

// SessionStatsDTO summarizes a session for the header metrics.
type SessionStatsDTO struct {
	Records   int            `json:"records"`
	Platforms map[string]int `json:"platforms"`
	Tones     map[string]int `json:"tones"`
}

func NewSessionStatsDTO(stats session.Stats) SessionStatsDTO {
	return SessionStatsDTO{
		Records:   stats.Records,
		Platforms: stats.Platforms,
		Tones:     stats.Tones,
	}
}
