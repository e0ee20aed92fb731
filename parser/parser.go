// Package parser splits a raw agent response into labeled sections. The
// response has no structured contract beyond "it may contain zero or more
// recognizable section headers", so parsing is a line-oriented state
// machine driven by header-keyword matching.
package parser

import "strings"

// Section identifies one of the six output sections.
type Section string

const (
	SectionSummary        Section = "summary"
	SectionContent        Section = "content"
	SectionHashtags       Section = "hashtags"
	SectionVisualConcepts Section = "visual_concepts"
	SectionAnalytics      Section = "analytics"
	SectionTrends         Section = "trends"
)

// Sections holds the accumulated, trimmed text of each parsed section.
// Any field may be empty.
type Sections struct {
	Summary        string `json:"summary"`
	Content        string `json:"content"`
	Hashtags       string `json:"hashtags"`
	VisualConcepts string `json:"visual_concepts"`
	Analytics      string `json:"analytics"`
	Trends         string `json:"trends"`
}

// sectionTrigger maps a target section to the lower-cased substrings that
// switch the parser into it. Order matters: the first matching entry wins.
type sectionTrigger struct {
	section  Section
	keywords []string
}

// Trigger matching is substring containment, not anchored matching: a
// trigger phrase appearing mid-line still switches state. This mirrors how
// coordinator responses are actually formatted and is a known looseness on
// unusually long lines.
var sectionTriggers = []sectionTrigger{
	{SectionSummary, []string{"📊 content package", "content package summary", "## 📊"}},
	{SectionContent, []string{"📝 content", "## 📝", "post content"}},
	{SectionHashtags, []string{"🏷️ hashtag", "hashtag strategy", "## 🏷️"}},
	{SectionVisualConcepts, []string{"🎨 visual", "visual concept", "## 🎨"}},
	{SectionAnalytics, []string{"📈 performance", "analytics", "insights", "## 📈"}},
	{SectionTrends, []string{"🔥 trend", "trending element", "## 🔥"}},
}

// ParseAgentResponse partitions an agent response into its six sections.
// Text before any recognized header lands in the summary section, so a
// response with no headers at all collapses into summary — callers treat
// that as a valid fallback and render the raw text.
func ParseAgentResponse(response string) Sections {
	accumulated := map[Section]*strings.Builder{
		SectionSummary:        {},
		SectionContent:        {},
		SectionHashtags:       {},
		SectionVisualConcepts: {},
		SectionAnalytics:      {},
		SectionTrends:         {},
	}

	currentSection := SectionSummary

	for _, rawLine := range strings.Split(response, "\n") {
		line := strings.TrimSpace(rawLine)
		if line == "" {
			continue
		}

		lineLower := strings.ToLower(line)
		if next, ok := matchTrigger(lineLower); ok {
			// The header line itself is never accumulated.
			currentSection = next
			continue
		}

		// Skip markdown headers and bolded labels, except inside the
		// content section which uses a looser inclusion rule.
		if (!strings.HasPrefix(line, "##") && !strings.HasPrefix(line, "**")) || currentSection == SectionContent {
			if currentSection == SectionContent && strings.HasPrefix(line, "##") {
				continue
			}
			accumulated[currentSection].WriteString(line)
			accumulated[currentSection].WriteString("\n")
		}
	}

	return Sections{
		Summary:        strings.TrimSpace(accumulated[SectionSummary].String()),
		Content:        cleanContentSection(accumulated[SectionContent].String()),
		Hashtags:       strings.TrimSpace(accumulated[SectionHashtags].String()),
		VisualConcepts: strings.TrimSpace(accumulated[SectionVisualConcepts].String()),
		Analytics:      strings.TrimSpace(accumulated[SectionAnalytics].String()),
		Trends:         strings.TrimSpace(accumulated[SectionTrends].String()),
	}
}

func matchTrigger(lineLower string) (Section, bool) {
	for _, trigger := range sectionTriggers {
		for _, keyword := range trigger.keywords {
			if strings.Contains(lineLower, keyword) {
				return trigger.section, true
			}
		}
	}
	return "", false
}

// cleanContentSection drops headers that slipped past the main loop inside
// already-content-tagged text: markdown headers and short bolded labels
// with at most three words.
func cleanContentSection(content string) string {
	content = strings.TrimSpace(content)
	if content == "" {
		return ""
	}

	var kept []string
	for _, rawLine := range strings.Split(content, "\n") {
		line := strings.TrimSpace(rawLine)
		if strings.HasPrefix(line, "##") {
			continue
		}
		if strings.HasPrefix(line, "**") && strings.HasSuffix(line, "**") && len(strings.Fields(line)) <= 3 {
			continue
		}
		kept = append(kept, line)
	}
	return strings.TrimSpace(strings.Join(kept, "\n"))
}
