package utils

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strict = bluemonday.StrictPolicy()

// SanitizeText strips markup from user-submitted text. Thread titles, thread
// bodies and comments are stored as plain text only.
func SanitizeText(s string) string {
	return strings.TrimSpace(strict.Sanitize(s))
}
