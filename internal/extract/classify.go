// Package extract turns unstructured delivery notices into normalized
// delivery records. It classifies the document format, segments the text
// into per-delivery sections, runs heuristic field extractors over each
// section, and orchestrates the remote Claude strategy with the heuristic
// pipeline as fallback.
package extract

import (
	"regexp"
	"strings"
)

// DocFormat is the structural interpretation chosen for a document.
type DocFormat string

const (
	FormatTable        DocFormat = "table"
	FormatNumberedList DocFormat = "numbered_list"
	FormatFreeText     DocFormat = "free_text"
)

// reNumberedBold matches numbered entries with bold field markers,
// e.g. "1. **REF:** ORD-001".
var reNumberedBold = regexp.MustCompile(`(?m)\d+\.\s*\*\*`)

// reNumberedPlain matches plain numbered entries whose first token looks
// like a reference code, e.g. "2. ORD-B5521".
var reNumberedPlain = regexp.MustCompile(`(?m)^\s*\d+\.\s*[A-Z][A-Z0-9-]{2,}`)

// Classify decides which structural interpretation applies to the combined
// text (after any HTML-table flattening). First match wins:
// table markers, then numbered-list entries, then free text. Pure — the
// same input always yields the same classification.
func Classify(text string) DocFormat {
	if strings.Contains(text, "TABLE:") && strings.Contains(text, "ROW:") {
		return FormatTable
	}
	if reNumberedBold.MatchString(text) || reNumberedPlain.MatchString(text) {
		return FormatNumberedList
	}
	return FormatFreeText
}
