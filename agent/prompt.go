package agent

import (
	"fmt"
	"strings"

	"social-agent/models"
)

// BuildPrompt assembles the generation prompt sent to the coordinator from
// a validated content request.
func BuildPrompt(req models.ContentRequest) string {
	parts := []string{
		"Create a comprehensive social media content package for:",
		"",
		fmt.Sprintf("**Topic**: %s", req.Topic),
		fmt.Sprintf("**Platform**: %s", req.Platform),
		fmt.Sprintf("**Tone**: %s", req.Tone),
		fmt.Sprintf("**Content Length**: %s", req.Options.ContentLength),
	}

	if req.AdditionalContext != "" {
		parts = append(parts, fmt.Sprintf("**Additional Context**: %s", req.AdditionalContext))
	}

	parts = append(parts, "", "**Requirements:**")

	if req.Options.IncludeHashtags {
		parts = append(parts, "- Include comprehensive hashtag strategy")
	}
	if req.Options.IncludeVisuals {
		parts = append(parts, "- Provide creative visual concept suggestions")
	}
	if req.Options.IncludeAnalytics {
		parts = append(parts, "- Include performance insights and optimization tips")
	}

	parts = append(parts,
		"",
		"Please ensure the content is:",
		fmt.Sprintf("- Optimized for %s", req.Platform),
		fmt.Sprintf("- Written in a %s tone", strings.ToLower(string(req.Tone))),
		"- Engaging and ready to post",
		"- Compliant with platform best practices",
		"- Includes current trends and insights",
	)

	return strings.Join(parts, "\n")
}
