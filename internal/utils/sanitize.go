package utils

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// strictPolicy strips every tag; contact messages are stored as plain text.
var strictPolicy = bluemonday.StrictPolicy()

// StripHTML removes all markup from s and returns the trimmed plain text.
// Entities introduced by the sanitizer are decoded back so "safe" text is
// persisted verbatim.
func StripHTML(s string) string {
	return strings.TrimSpace(html.UnescapeString(strictPolicy.Sanitize(s)))
}
