// Package llm - util.go provides shared utilities for LLM response processing.
package llm

import "strings"

// CleanJSONBlock extracts the JSON payload from a raw model response. LLMs
// often wrap JSON in ```json ... ``` blocks or conversational prose even when
// instructed not to; this strips fences, any preamble before the first
// complete JSON value, and any trailing commentary after it.
func CleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)

	// Handle ```json ... ``` blocks
	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
		text = strings.TrimSpace(text)
	} else if strings.HasPrefix(text, "```") {
		// Handle generic ``` ... ``` blocks
		text = strings.TrimPrefix(text, "```")
		// Skip potential language identifier on first line
		if idx := strings.Index(text, "\n"); idx >= 0 {
			firstLine := text[:idx]
			if len(firstLine) < 20 && !strings.Contains(firstLine, " ") && !strings.Contains(firstLine, "{") {
				text = text[idx+1:]
			}
		}
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
		text = strings.TrimSpace(text)
	}

	start := firstValueStart(text)
	if start < 0 {
		return text
	}
	if extracted := extractJSONValue(text[start:]); extracted != "" {
		return extracted
	}
	return text
}

// firstValueStart locates the earliest object or array opener, or -1.
func firstValueStart(text string) int {
	objStart := strings.IndexByte(text, '{')
	arrStart := strings.IndexByte(text, '[')
	switch {
	case objStart < 0:
		return arrStart
	case arrStart < 0:
		return objStart
	case arrStart < objStart:
		return arrStart
	default:
		return objStart
	}
}

func extractJSONValue(text string) string {
	if strings.HasPrefix(text, "{") {
		return extractJSONObject(text)
	}
	if strings.HasPrefix(text, "[") {
		return extractJSONArray(text)
	}
	return ""
}

// extractJSONObject returns the first balanced JSON object at the start of
// text, or "" when text does not begin with one or it never closes.
func extractJSONObject(text string) string {
	return extractDelimited(text, '{', '}')
}

// extractJSONArray returns the first balanced JSON array at the start of
// text, or "" when text does not begin with one or it never closes.
func extractJSONArray(text string) string {
	return extractDelimited(text, '[', ']')
}

// extractDelimited scans for the balanced closing delimiter, honoring string
// literals and escape sequences so braces inside values are not counted.
func extractDelimited(text string, open, closing byte) string {
	if len(text) == 0 || text[0] != open {
		return ""
	}

	depth := 0
	inString := false
	escaped := false
	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case escaped:
			escaped = false
		case c == '\\':
			escaped = true
		case c == '"':
			inString = !inString
		case inString:
			// Delimiters inside string values are literal characters.
		case c == open:
			depth++
		case c == closing:
			depth--
			if depth == 0 {
				return text[:i+1]
			}
		}
	}
	return ""
}
