package utils

import "strings"

// EmbeddedError represents provider error text found inside a successful
// response body, before the body is parsed as structured output
type EmbeddedError struct {
	Pattern string // The pattern that matched
	Context string // Surrounding text for debugging
}

// Error implements the error interface
func (e *EmbeddedError) Error() string {
	return "embedded error detected: " + e.Pattern
}

// CommonErrorPatterns lists provider error text known to appear inside
// 200-class response bodies. Consumers can use these or define their own.
var CommonErrorPatterns = []string{
	"token quota is not enough",
	"rate limit exceeded",
	"context length exceeded",
	"insufficient_quota",
	"model_not_found",
	"invalid_api_key",
	"quota exceeded",
	"capacity exceeded",
	"overloaded",
}

// CheckEmbeddedErrors scans a response body for error patterns before it is
// handed to a JSON parser. Returns nil if no pattern matches, or the first
// match with up to 30 characters of context on either side. Matching is
// case-insensitive.
func CheckEmbeddedErrors(body string, patterns []string) *EmbeddedError {
	if body == "" || len(patterns) == 0 {
		return nil
	}

	lowerBody := strings.ToLower(body)

	for _, pattern := range patterns {
		idx := strings.Index(lowerBody, strings.ToLower(pattern))
		if idx < 0 {
			continue
		}

		start := idx - 30
		if start < 0 {
			start = 0
		}
		end := idx + len(pattern) + 30
		if end > len(body) {
			end = len(body)
		}
		context := body[start:end]
		if start > 0 {
			context = "..." + context
		}
		if end < len(body) {
			context += "..."
		}

		return &EmbeddedError{
			Pattern: pattern,
			Context: context,
		}
	}

	return nil
}

// CheckCommonErrors is a convenience wrapper using CommonErrorPatterns.
func CheckCommonErrors(body string) *EmbeddedError {
	return CheckEmbeddedErrors(body, CommonErrorPatterns)
}
