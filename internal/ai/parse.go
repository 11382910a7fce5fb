package ai

import (
	"encoding/json"
	"strings"

	"tshirtMarketAi/internal/apperrors"
)

// ExtractJSON pulls one JSON object out of free-form model output. The text
// may be bare JSON, or JSON wrapped in a ``` or ```json fenced block. On
// failure the original text is retained in the error details for diagnostics;
// no defaults are substituted at this layer.
func ExtractJSON(text string) (map[string]any, error) {
	cleaned := stripCodeFence(strings.TrimSpace(text))

	var payload map[string]any
	if err := json.Unmarshal([]byte(cleaned), &payload); err == nil {
		return payload, nil
	}

	// Some models pad the object with prose; fall back to the outermost braces.
	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")
	if start >= 0 && end > start {
		if err := json.Unmarshal([]byte(cleaned[start:end+1]), &payload); err == nil {
			return payload, nil
		}
	}

	return nil, apperrors.NewAIService("invalid JSON response from AI service", nil).WithDetails(text)
}

func stripCodeFence(text string) string {
	var start int
	switch {
	case strings.Contains(text, "```json"):
		start = strings.Index(text, "```json") + len("```json")
	case strings.Contains(text, "```"):
		start = strings.Index(text, "```") + len("```")
	default:
		return text
	}

	end := strings.Index(text[start:], "```")
	if end < 0 {
		return strings.TrimSpace(text[start:])
	}
	return strings.TrimSpace(text[start : start+end])
}
