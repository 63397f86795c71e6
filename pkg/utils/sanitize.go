// Package utils provides response sanitation helpers for structured-output
// pipelines: stripping the markdown fences models wrap JSON replies in, and
// detecting provider error text embedded in otherwise successful responses.
package utils

import "strings"

// RemoveJSONWrapper strips the markdown code fences models tend to wrap JSON
// responses in (```json ... ```), returning the bare payload for parsing.
func RemoveJSONWrapper(response string) string {
	unfenced := strings.ReplaceAll(response, "json\n", "")
	return strings.ReplaceAll(unfenced, "```", "")
}
