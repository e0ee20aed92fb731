package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"social-agent/dto"
	"social-agent/export"
	"social-agent/models"
	"social-agent/services"
	"social-agent/textutil"
)

// GenerateContentHandler godoc
// @Summary      Generate content
// @Description  Validate the request, call the agent and return the parsed content package
// @Tags         content
// @Param        id    path  string                 true  "Session ID"
// @Param        body  body  dto.ContentRequestDTO  true  "content request"
// @Accept       json
// @Produce      json
// @Success      200  {object}  dto.ContentResultDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Failure      429  {object}  dto.ErrorResponseDTO
// @Failure      502  {object}  dto.ErrorResponseDTO
// @Router       /sessions/{id}/generate [post]
func GenerateContentHandler(svc *services.ContentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.ContentRequestDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid_request"})
			return
		}

		result, svcErr := svc.Generate(c.Request.Context(), c.Param("id"), services.GenerateInput{
			Topic:             req.Topic,
			Platform:          req.Platform,
			Tone:              req.Tone,
			AdditionalContext: req.AdditionalContext,
			Options: models.GenerateOptions{
				IncludeHashtags:  req.Options.IncludeHashtags,
				IncludeVisuals:   req.Options.IncludeVisuals,
				IncludeAnalytics: req.Options.IncludeAnalytics,
				ContentLength:    models.ContentLength(req.Options.ContentLength),
			},
		})
		if svcErr != nil {
			c.JSON(svcErr.StatusCode, dto.ErrorResponseDTO{Error: svcErr.ErrorCode, Message: svcErr.Message})
			return
		}

		c.JSON(http.StatusOK, dto.NewContentResultDTO(result))
	}
}

// ExportRecordHandler godoc
// @Summary      Export record
// @Description  Download one record as formatted JSON
// @Tags         content
// @Param        id        path  string  true  "Session ID"
// @Param        recordID  path  string  true  "Record ID"
// @Produce      json
// @Success      200  {object}  dto.ContentRecordDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /sessions/{id}/records/{recordID}/export [get]
func ExportRecordHandler(svc *services.ContentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		record, svcErr := svc.Record(c.Param("id"), c.Param("recordID"))
		if svcErr != nil {
			c.JSON(svcErr.StatusCode, dto.ErrorResponseDTO{Error: svcErr.ErrorCode})
			return
		}

		filename := textutil.CreateDownloadFilename(record.Topic, record.Platform, "json")
		c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
		c.Data(http.StatusOK, "application/json; charset=utf-8", export.ContentJSON(record))
	}
}

// PreviewRecordHandler godoc
// @Summary      Preview record
// @Description  Render the record's markdown content as HTML
// @Tags         content
// @Param        id        path  string  true  "Session ID"
// @Param        recordID  path  string  true  "Record ID"
// @Produce      json
// @Success      200  {object}  dto.PreviewDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Failure      500  {object}  dto.ErrorResponseDTO
// @Router       /sessions/{id}/records/{recordID}/preview [get]
func PreviewRecordHandler(svc *services.ContentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		record, svcErr := svc.Record(c.Param("id"), c.Param("recordID"))
		if svcErr != nil {
			c.JSON(svcErr.StatusCode, dto.ErrorResponseDTO{Error: svcErr.ErrorCode})
			return
		}

		html, err := export.ContentHTML(record)
		if err != nil {
			c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: "preview_failed"})
			return
		}
		c.JSON(http.StatusOK, dto.PreviewDTO{RecordID: record.ID, HTML: html})
	}
}
