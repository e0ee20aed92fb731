package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"social-agent/dto"
	"social-agent/models"
	"social-agent/platforms"
	"social-agent/textutil"
	"social-agent/validate"
)

// PlatformOptionsHandler godoc
// @Summary      Platform options
// @Description  The fixed platform, tone and content length enums for the content form
// @Tags         platforms
// @Produce      json
// @Success      200  {object}  dto.PlatformOptionsDTO
// @Router       /platforms [get]
func PlatformOptionsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		out := dto.PlatformOptionsDTO{
			ContentLengths: []string{
				string(models.LengthShort),
				string(models.LengthMedium),
				string(models.LengthLong),
			},
		}
		for _, p := range models.SupportedPlatforms {
			out.Platforms = append(out.Platforms, string(p))
		}
		for _, t := range models.ToneOptions {
			out.Tones = append(out.Tones, string(t))
		}
		c.JSON(http.StatusOK, out)
	}
}

// PlatformLimitsHandler godoc
// @Summary      Platform limits
// @Description  Character limits for one platform; unknown platforms fall back to General
// @Tags         platforms
// @Param        platform  path  string  true  "Platform name"
// @Produce      json
// @Success      200  {object}  dto.PlatformLimitsDTO
// @Router       /platforms/{platform}/limits [get]
func PlatformLimitsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		platform := models.Platform(c.Param("platform"))
		c.JSON(http.StatusOK, dto.PlatformLimitsDTO{
			Platform: string(platform),
			Limits:   platforms.GetLimits(platform),
		})
	}
}

// ValidateInputHandler godoc
// @Summary      Validate input
// @Description  Dry-run validation of topic, platform and tone
// @Tags         validation
// @Param        body  body  dto.ValidateRequestDTO  true  "input to validate"
// @Accept       json
// @Produce      json
// @Success      200  {object}  dto.ValidateResponseDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Router       /validate [post]
func ValidateInputHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.ValidateRequestDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid_request"})
			return
		}

		topic := textutil.CleanText(req.Topic)
		valid, msg := validate.Input(topic, models.Platform(req.Platform), models.Tone(req.Tone))
		c.JSON(http.StatusOK, dto.ValidateResponseDTO{Valid: valid, Message: msg})
	}
}

// FormatHashtagsHandler godoc
// @Summary      Format hashtags
// @Description  Extract, clean and deduplicate #tags from free text
// @Tags         validation
// @Param        body  body  dto.HashtagsRequestDTO  true  "text to scan"
// @Accept       json
// @Produce      json
// @Success      200  {object}  dto.HashtagsResponseDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Router       /hashtags [post]
func FormatHashtagsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.HashtagsRequestDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid_request"})
			return
		}

		tags := textutil.FormatHashtags(req.Text)
		if tags == nil {
			tags = []string{}
		}
		c.JSON(http.StatusOK, dto.HashtagsResponseDTO{Hashtags: tags})
	}
}
