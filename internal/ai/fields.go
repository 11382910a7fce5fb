package ai

// Field accessors over a raw parsed model response. The AI contract is
// inherently unreliable: each field independently falls back to its documented
// default when absent or mistyped, so a missing field never crashes a pipeline.

// StringField returns the string at key, or fallback.
func StringField(raw map[string]any, key, fallback string) string {
	if v, ok := raw[key].(string); ok && v != "" {
		return v
	}
	return fallback
}

// FloatField returns the number at key, or fallback. JSON numbers decode as
// float64; integer-typed values are accepted too.
func FloatField(raw map[string]any, key string, fallback float64) float64 {
	switch v := raw[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	}
	return fallback
}

// IntField returns the number at key truncated to int, or fallback.
func IntField(raw map[string]any, key string, fallback int) int {
	switch v := raw[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	}
	return fallback
}

// StringListField returns the string slice at key, or fallback. Non-string
// elements are skipped.
func StringListField(raw map[string]any, key string, fallback []string) []string {
	items, ok := raw[key].([]any)
	if !ok {
		return fallback
	}

	values := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			values = append(values, s)
		}
	}
	return values
}

// OptionalFloatField returns a pointer to the number at key, or nil when the
// field is absent or null.
func OptionalFloatField(raw map[string]any, key string) *float64 {
	if v, ok := raw[key].(float64); ok {
		return &v
	}
	return nil
}
