package generation

import "strings"

// StripReasoning removes a leading <think>...</think> section some reasoning
// models emit despite instructions, then trims surrounding whitespace. Text
// without think tags passes through trimmed.
func StripReasoning(text string) string {
	if strings.Contains(text, "<think>") {
		if idx := strings.LastIndex(text, "</think>"); idx != -1 {
			text = text[idx+len("</think>"):]
		}
	}
	return strings.TrimSpace(text)
}
