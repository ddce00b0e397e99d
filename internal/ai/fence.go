package ai

import "strings"

// StripFences removes a markdown code-fence wrapper from a model response.
// Models frequently fence JSON answers despite instructions; the adapter
// must parse defensively. Input without fences is returned trimmed.
func StripFences(s string) string {
	trimmed := strings.TrimSpace(s)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}

	// Drop the opening fence line (which may carry a language tag).
	lines := strings.SplitN(trimmed, "\n", 2)
	if len(lines) < 2 {
		return ""
	}
	body := lines[1]

	// Drop everything from the closing fence on.
	if idx := strings.LastIndex(body, "```"); idx >= 0 {
		body = body[:idx]
	}
	return strings.TrimSpace(body)
}
