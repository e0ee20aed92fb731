package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"social-agent/dto"
	"social-agent/services"
	"social-agent/session"
)

// CreateSessionHandler godoc
// @Summary      Create session
// @Description  Open a new in-memory session for content history
// @Tags         sessions
// @Produce      json
// @Success      201  {object}  dto.SessionDTO
// @Router       /sessions [post]
func CreateSessionHandler(store *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := store.Create()
		c.JSON(http.StatusCreated, dto.NewSessionDTO(sess))
	}
}

// HistoryHandler godoc
// @Summary      Session history
// @Description  List the session's generated content, newest first
// @Tags         sessions
// @Param        id  path  string  true  "Session ID"
// @Produce      json
// @Success      200  {array}  dto.ContentRecordDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /sessions/{id}/history [get]
func HistoryHandler(svc *services.ContentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		records, svcErr := svc.History(c.Param("id"))
		if svcErr != nil {
			c.JSON(svcErr.StatusCode, dto.ErrorResponseDTO{Error: svcErr.ErrorCode})
			return
		}

		out := make([]dto.ContentRecordDTO, 0, len(records))
		for _, r := range records {
			out = append(out, dto.NewContentRecordDTO(r))
		}
		c.JSON(http.StatusOK, out)
	}
}

// ClearHistoryHandler godoc
// @Summary      Clear history
// @Description  Drop all generated content from the session
// @Tags         sessions
// @Param        id  path  string  true  "Session ID"
// @Produce      json
// @Success      204
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /sessions/{id}/history [delete]
func ClearHistoryHandler(svc *services.ContentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if svcErr := svc.ClearHistory(c.Param("id")); svcErr != nil {
			c.JSON(svcErr.StatusCode, dto.ErrorResponseDTO{Error: svcErr.ErrorCode})
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// DeleteRecordHandler godoc
// @Summary      Delete record
// @Description  Remove one record from the session history
// @Tags         sessions
// @Param        id        path  string  true  "Session ID"
// @Param        recordID  path  string  true  "Record ID"
// @Produce      json
// @Success      204
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /sessions/{id}/records/{recordID} [delete]
func DeleteRecordHandler(svc *services.ContentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if svcErr := svc.DeleteRecord(c.Param("id"), c.Param("recordID")); svcErr != nil {
			c.JSON(svcErr.StatusCode, dto.ErrorResponseDTO{Error: svcErr.ErrorCode})
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// SessionStatsHandler godoc
// @Summary      Session stats
// @Description  Record counts per platform and tone for the header metrics
// @Tags         sessions
// @Param        id  path  string  true  "Session ID"
// @Produce      json
// @Success      200  {object}  dto.SessionStatsDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /sessions/{id}/stats [get]
func SessionStatsHandler(svc *services.ContentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		stats, svcErr := svc.Stats(c.Param("id"))
		if svcErr != nil {
			c.JSON(svcErr.StatusCode, dto.ErrorResponseDTO{Error: svcErr.ErrorCode})
			return
		}
		c.JSON(http.StatusOK, dto.NewSessionStatsDTO(stats))
	}
}
