package extract

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/routeworks/docscan/internal/model"
)

var (
	highKeywords = []string{"urgent", "spoed", "priority", "hoog", "asap"}
	lowKeywords  = []string{"laag", "low", "niet urgent"}
)

var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// foldText lowercases and strips diacritics so keyword scans match
// "geëxtraheerd" and "geextraheerd" alike.
func foldText(s string) string {
	folded, _, err := transform.String(foldTransformer, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(folded)
}

// extractPriority scans for urgency keywords. A high match wins over a low
// match; "niet urgent" is removed before the high scan so its "urgent"
// substring cannot flip the result. The first section of a document defaults
// to high: the lead delivery is what the sender cares about most.
func extractPriority(section string, sectionIndex int) model.Priority {
	text := foldText(section)
	scrubbed := strings.ReplaceAll(text, "niet urgent", "")
	for _, kw := range highKeywords {
		if strings.Contains(scrubbed, kw) {
			return model.PriorityHigh
		}
	}
	for _, kw := range lowKeywords {
		if strings.Contains(text, kw) {
			return model.PriorityLow
		}
	}
	if sectionIndex == 0 {
		return model.PriorityHigh
	}
	return model.PriorityNormal
}
