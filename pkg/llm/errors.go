package llm

import "strings"

// isRetryableMessage classifies provider errors by message text. The SDKs
// do not share an error taxonomy, so transient conditions (rate limits,
// 5xx, timeouts, connection failures) are recognized by substring.
func isRetryableMessage(msg string) bool {
	msg = strings.ToLower(msg)

	// Rate limits
	if strings.Contains(msg, "rate limit") ||
		strings.Contains(msg, "429") ||
		strings.Contains(msg, "too many requests") ||
		strings.Contains(msg, "resource exhausted") ||
		strings.Contains(msg, "quota") {
		return true
	}

	// Server errors
	if strings.Contains(msg, "500") ||
		strings.Contains(msg, "502") ||
		strings.Contains(msg, "503") ||
		strings.Contains(msg, "504") ||
		strings.Contains(msg, "internal server error") ||
		strings.Contains(msg, "bad gateway") ||
		strings.Contains(msg, "service unavailable") ||
		strings.Contains(msg, "overloaded") ||
		strings.Contains(msg, "gateway timeout") {
		return true
	}

	// Timeouts and connection failures
	if strings.Contains(msg, "timeout") ||
		strings.Contains(msg, "deadline exceeded") ||
		strings.Contains(msg, "connection reset") ||
		strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "no such host") {
		return true
	}

	return false
}
