package services

import (
	"context"
	"errors"
	"net/http"
	"time"

	"social-agent/agent"
	"social-agent/logger"
	"social-agent/models"
	"social-agent/parser"
	"social-agent/platforms"
	"social-agent/quota"
	"social-agent/session"
	"social-agent/textutil"
	"social-agent/validate"
)

// ServiceError carries a normalized HTTP status and a stable error code to
// the handler layer. Message is only set for validation failures, where the
// human-readable reason is part of the contract.
type ServiceError struct {
	StatusCode int
	ErrorCode  string
	Message    string
	Cause      error
}

func (e *ServiceError) Error() string {
	if e == nil {
		return "content_service_failed"
	}
	return e.ErrorCode
}

// ContentService drives the generation pipeline: normalize, validate,
// build the prompt, call the agent, record the result and parse it into
// sections.
type ContentService struct {
	provider agent.Provider
	sessions *session.Store
	limiter  *quota.GenerationQuotaLimiter
}

func NewContentService(provider agent.Provider, sessions *session.Store, limiter *quota.GenerationQuotaLimiter) *ContentService {
	return &ContentService{provider: provider, sessions: sessions, limiter: limiter}
}

// GenerateInput is the raw, not yet validated form input.
type GenerateInput struct {
	Topic             string
	Platform          string
	Tone              string
	AdditionalContext string
	Options           models.GenerateOptions
}

// GenerateResult is everything the UI needs to render one generation.
type GenerateResult struct {
	Record            models.ContentRecord
	Sections          parser.Sections
	LengthOK          bool
	LengthMessage     string
	FormattedHashtags []string
}

// Generate runs the full pipeline for one user action. The agent call
// blocks; cancellation comes only from ctx.
func (s *ContentService) Generate(ctx context.Context, sessionID string, in GenerateInput) (GenerateResult, *ServiceError) {
	topic := textutil.CleanText(in.Topic)
	additionalContext := textutil.CleanText(in.AdditionalContext)
	platform := models.Platform(in.Platform)
	tone := models.Tone(in.Tone)

	if ok, msg := validate.Input(topic, platform, tone); !ok {
		return GenerateResult{}, &ServiceError{
			StatusCode: http.StatusBadRequest,
			ErrorCode:  "validation_failed",
			Message:    msg,
		}
	}

	contentLength := in.Options.ContentLength
	if contentLength == "" {
		contentLength = models.LengthMedium
	}

	req := models.ContentRequest{
		Topic:             topic,
		Platform:          platform,
		Tone:              tone,
		AdditionalContext: additionalContext,
		Options: models.GenerateOptions{
			IncludeHashtags:  in.Options.IncludeHashtags,
			IncludeVisuals:   in.Options.IncludeVisuals,
			IncludeAnalytics: in.Options.IncludeAnalytics,
			ContentLength:    contentLength,
		},
	}

	if s.limiter != nil {
		allowed, err := s.limiter.WaitAndReserve(ctx)
		if err != nil {
			return GenerateResult{}, &ServiceError{
				StatusCode: http.StatusServiceUnavailable,
				ErrorCode:  "agent_unavailable",
				Cause:      err,
			}
		}
		if !allowed {
			return GenerateResult{}, &ServiceError{
				StatusCode: http.StatusTooManyRequests,
				ErrorCode:  "rate_limited",
			}
		}
	}

	prompt := agent.BuildPrompt(req)

	response, requestLog, err := s.provider.Run(ctx, prompt)
	if err != nil {
		logger.ErrorWithFields("agent call failed", logger.Fields{
			"provider": s.provider.Name(),
			"platform": string(platform),
			"error":    err.Error(),
		})
		return GenerateResult{}, &ServiceError{
			StatusCode: http.StatusBadGateway,
			ErrorCode:  "agent_failed",
			Cause:      err,
		}
	}

	now := time.Now()
	record := models.ContentRecord{
		ID:                textutil.GenerateContentID(topic, platform, now),
		Topic:             topic,
		Platform:          platform,
		Tone:              tone,
		AdditionalContext: additionalContext,
		Content:           response,
		Timestamp:         now.Format(time.RFC3339),
		Options:           req.Options,
	}

	if err := s.sessions.Append(sessionID, record); err != nil {
		return GenerateResult{}, sessionError(err)
	}

	if requestLog != nil {
		logger.InfoWithFields("content generated", logger.Fields{
			"record_id":     record.ID,
			"provider":      s.provider.Name(),
			"model":         requestLog.ModelName,
			"model_version": requestLog.ModelVersion,
			"latency_ms":    requestLog.LatencyMs,
			"total_tokens":  requestLog.TokenUsage.TotalTokens,
			"platform":      string(platform),
			"tone":          string(tone),
		})
	}

	sections := parser.ParseAgentResponse(response)
	lengthOK, lengthMsg := platforms.ValidateContentLength(response, platform, "post")

	return GenerateResult{
		Record:            record,
		Sections:          sections,
		LengthOK:          lengthOK,
		LengthMessage:     lengthMsg,
		FormattedHashtags: textutil.FormatHashtags(sections.Hashtags),
	}, nil
}

// History returns the session's records newest first.
func (s *ContentService) History(sessionID string) ([]models.ContentRecord, *ServiceError) {
	records, err := s.sessions.History(sessionID)
	if err != nil {
		return nil, sessionError(err)
	}
	return records, nil
}

func (s *ContentService) ClearHistory(sessionID string) *ServiceError {
	if err := s.sessions.ClearHistory(sessionID); err != nil {
		return sessionError(err)
	}
	return nil
}

func (s *ContentService) DeleteRecord(sessionID, recordID string) *ServiceError {
	if err := s.sessions.DeleteRecord(sessionID, recordID); err != nil {
		return sessionError(err)
	}
	return nil
}

// Record fetches a single history record, e.g. for export or preview.
func (s *ContentService) Record(sessionID, recordID string) (models.ContentRecord, *ServiceError) {
	record, err := s.sessions.Record(sessionID, recordID)
	if err != nil {
		return models.ContentRecord{}, sessionError(err)
	}
	return record, nil
}

func (s *ContentService) Stats(sessionID string) (session.Stats, *ServiceError) {
	stats, err := s.sessions.Stats(sessionID)
	if err != nil {
		return session.Stats{}, sessionError(err)
	}
	return stats, nil
}

func sessionError(err error) *ServiceError {
	switch {
	case errors.Is(err, session.ErrSessionNotFound):
		return &ServiceError{StatusCode: http.StatusNotFound, ErrorCode: "session_not_found", Cause: err}
	case errors.Is(err, session.ErrRecordNotFound):
		return &ServiceError{StatusCode: http.StatusNotFound, ErrorCode: "record_not_found", Cause: err}
	default:
		return &ServiceError{StatusCode: http.StatusInternalServerError, ErrorCode: "session_store_failed", Cause: err}
	}
}
