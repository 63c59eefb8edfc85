package llm

import (
	"encoding/json"
	"strings"
)

const (
	FallbackHeadline = "News of the Day"
	FallbackSummary  = "Summary not available due to processing error."
	MissingSummary   = "Summary not available."
)

type Headline struct {
	Headline string
	Summary  string
}

// ParseHeadline decodes the model reply as a JSON object. The second return
// value is false when the reply could not be used and the fallback text was
// returned instead.
func ParseHeadline(reply string) (Headline, bool) {
	content := cleanJSONResponse(reply)
	if content == "" {
		return fallbackHeadline(), false
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(content), &fields); err != nil || fields == nil {
		return fallbackHeadline(), false
	}

	return Headline{
		Headline: stringField(fields, "headline", FallbackHeadline),
		Summary:  stringField(fields, "summary", MissingSummary),
	}, true
}

func fallbackHeadline() Headline {
	return Headline{Headline: FallbackHeadline, Summary: FallbackSummary}
}

func stringField(fields map[string]json.RawMessage, key, def string) string {
	raw, ok := fields[key]
	if !ok {
		return def
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil || string(raw) == "null" {
		return def
	}
	return s
}

// cleanJSONResponse peels a markdown code fence off the reply. Prose around
// the JSON is left in place and fails to parse.
func cleanJSONResponse(content string) string {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	return strings.TrimSpace(content)
}
