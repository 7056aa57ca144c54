package gemini

import (
	"errors"
	"fmt"
	"strings"
)

// Error taxonomy. The client never swallows these: each attempt either
// recovers via the next tier or the final error is returned to the caller,
// which owns the fallback decision.
var (
	// ErrAuth means the configured credential is absent or rejected.
	// Auth failures abort the tier chain immediately.
	ErrAuth = errors.New("gemini: invalid or missing API key")

	// ErrEmptyResponse means the backend returned no usable text.
	ErrEmptyResponse = errors.New("gemini: empty response")

	// ErrParse means no JSON could be extracted after all recovery steps.
	ErrParse = errors.New("gemini: response contains no parseable JSON")

	// ErrValidation means the parsed JSON does not satisfy the request schema.
	ErrValidation = errors.New("gemini: response failed schema validation")

	// ErrQuota means the response text carried a quota-exhaustion marker.
	ErrQuota = errors.New("gemini: quota exhausted")
)

// Error markers that can appear inside a 200 response body instead of JSON.
// Text carrying one of these is a hard failure and is never parsed.
var (
	authMarkers  = []string{"PERMISSION_DENIED", "API_KEY_INVALID"}
	quotaMarkers = []string{"RESOURCE_EXHAUSTED", "exceeded your current quota"}
)

// classifyMarkers scans response text for known permission/quota error
// markers. Returns nil when the text is safe to parse.
func classifyMarkers(text string) error {
	for _, m := range authMarkers {
		if strings.Contains(text, m) {
			return fmt.Errorf("%w: response contains %q", ErrAuth, m)
		}
	}
	for _, m := range quotaMarkers {
		if strings.Contains(text, m) {
			return fmt.Errorf("%w: response contains %q", ErrQuota, m)
		}
	}
	return nil
}
