package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAgentResponseEmptyInput(t *testing.T) {
	sections := ParseAgentResponse("")

	assert.Empty(t, sections.Summary)
	assert.Empty(t, sections.Content)
	assert.Empty(t, sections.Hashtags)
	assert.Empty(t, sections.VisualConcepts)
	assert.Empty(t, sections.Analytics)
	assert.Empty(t, sections.Trends)
}

func TestParseAgentResponseNoHeadersFallsBackToSummary(t *testing.T) {
	sections := ParseAgentResponse("no headers at all, just text")

	if sections.Summary != "no headers at all, just text" {
		t.Fatalf("expected raw text in summary, got %q", sections.Summary)
	}
	if sections.Content != "" || sections.Hashtags != "" {
		t.Fatalf("expected other sections empty, got content=%q hashtags=%q", sections.Content, sections.Hashtags)
	}
}

func TestParseAgentResponseSplitsSections(t *testing.T) {
	sections := ParseAgentResponse("## 📝 Content\nHello world\n## 🏷️ Hashtag Strategy\n#Fun #Cool")

	if sections.Content != "Hello world" {
		t.Fatalf("expected content %q, got %q", "Hello world", sections.Content)
	}
	if sections.Hashtags != "#Fun #Cool" {
		t.Fatalf("expected hashtags %q, got %q", "#Fun #Cool", sections.Hashtags)
	}
}

func TestParseAgentResponseFullPackage(t *testing.T) {
	response := strings.Join([]string{
		"## 📊 Content Package Summary",
		"A package about sustainable fashion.",
		"",
		"## 📝 Content",
		"Sustainable fashion is the future.",
		"Shop consciously!",
		"",
		"## 🏷️ Hashtag Strategy",
		"#Sustainable #Fashion",
		"",
		"## 🎨 Visual Concepts",
		"Earth-tone flat lay photos.",
		"",
		"## 📈 Performance Insights",
		"Post between 6 and 9 pm.",
		"",
		"## 🔥 Trending Elements",
		"Thrift-flip videos.",
	}, "\n")

	sections := ParseAgentResponse(response)

	assert.Equal(t, "A package about sustainable fashion.", sections.Summary)
	assert.Equal(t, "Sustainable fashion is the future.\nShop consciously!", sections.Content)
	assert.Equal(t, "#Sustainable #Fashion", sections.Hashtags)
	assert.Equal(t, "Earth-tone flat lay photos.", sections.VisualConcepts)
	assert.Equal(t, "Post between 6 and 9 pm.", sections.Analytics)
	assert.Equal(t, "Thrift-flip videos.", sections.Trends)
}

func TestParseAgentResponseHeaderLineNotAccumulated(t *testing.T) {
	sections := ParseAgentResponse("Hashtag Strategy\n#One #Two")

	if sections.Hashtags != "#One #Two" {
		t.Fatalf("expected hashtags only, got %q", sections.Hashtags)
	}
	if strings.Contains(sections.Hashtags, "Hashtag Strategy") {
		t.Fatalf("header line leaked into section: %q", sections.Hashtags)
	}
}

func TestParseAgentResponseMidLineTriggerSwitchesState(t *testing.T) {
	// Trigger matching is substring containment, so a phrase appearing
	// mid-sentence still switches sections.
	sections := ParseAgentResponse("some intro\nhere is the hashtag strategy for you\n#Tag")

	if sections.Summary != "some intro" {
		t.Fatalf("expected summary %q, got %q", "some intro", sections.Summary)
	}
	if sections.Hashtags != "#Tag" {
		t.Fatalf("expected hashtags %q, got %q", "#Tag", sections.Hashtags)
	}
}

func TestParseAgentResponseRepeatedHeadersReenterSection(t *testing.T) {
	sections := ParseAgentResponse("## 📝 Content\nfirst part\n## 📝 Content\nsecond part")

	if sections.Content != "first part\nsecond part" {
		t.Fatalf("expected both parts accumulated, got %q", sections.Content)
	}
}

func TestParseAgentResponseSkipsMarkdownHeadersAndBoldLabels(t *testing.T) {
	response := strings.Join([]string{
		"intro text",
		"## Some Unknown Header",
		"**Note:**",
		"more text",
	}, "\n")

	sections := ParseAgentResponse(response)

	if sections.Summary != "intro text\nmore text" {
		t.Fatalf("expected headers and bold labels skipped, got %q", sections.Summary)
	}
}

func TestParseAgentResponseContentSectionLooseInclusion(t *testing.T) {
	// Bold lines with more than three words are real content and must
	// survive the content section's cleanup pass.
	response := strings.Join([]string{
		"## 📝 Content",
		"**This bold sentence has many words in it**",
		"**Label**",
		"## stray header",
		"plain line",
	}, "\n")

	sections := ParseAgentResponse(response)

	assert.Contains(t, sections.Content, "**This bold sentence has many words in it**")
	assert.NotContains(t, sections.Content, "**Label**")
	assert.NotContains(t, sections.Content, "stray header")
	assert.Contains(t, sections.Content, "plain line")
}

func TestParseAgentResponseBlankLinesSkipped(t *testing.T) {
	sections := ParseAgentResponse("\n\nline one\n\n\nline two\n\n")

	if sections.Summary != "line one\nline two" {
		t.Fatalf("expected blank lines dropped, got %q", sections.Summary)
	}
}

func TestParseAgentResponseAnalyticsKeywordVariants(t *testing.T) {
	testCases := []struct {
		name   string
		header string
	}{
		{"performance emoji", "📈 Performance Insights"},
		{"analytics word", "Analytics overview"},
		{"insights word", "Key insights below"},
		{"markdown emoji", "## 📈"},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			sections := ParseAgentResponse(testCase.header + "\nmeasure everything")
			if sections.Analytics != "measure everything" {
				t.Fatalf("expected analytics section, got %+v", sections)
			}
		})
	}
}
