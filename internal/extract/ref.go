package extract

import (
	"regexp"
	"strings"
	"unicode"
)

// Customer-reference cascade, most specific first: explicit markers, known
// code shapes, numbered-item markers. The first match wins.
var refCascade = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:referentie|ref)[\s:]+([A-Z0-9-]{3,})`),
	regexp.MustCompile(`(?i)(?:klant|customer|order|bestelling)[\s:]+([A-Z0-9-]{3,})`),
	regexp.MustCompile(`([A-Z]{2,}\d{3,})`),
	regexp.MustCompile(`([A-Z]{2,}-\d+)`),
	regexp.MustCompile(`(?i)(?:nummer|nr|number)[\s:]+([A-Z0-9-]{3,})`),
	regexp.MustCompile(`(?m)^\s*\d+\.\s*([A-Z][A-Z0-9-]{2,})`),
}

// rePipeRefCell matches a whole table cell shaped like a reference code:
// an uppercase prefix followed by digits, optionally dash-separated.
var rePipeRefCell = regexp.MustCompile(`^[A-Z][A-Z0-9-]*\d[A-Z0-9-]*$`)

// extractCustomerRef returns the customer reference found in the section,
// or "" when no pattern matches. Synthesizing a fallback reference is the
// record builder's decision, not the extractor's.
func extractCustomerRef(section string) string {
	if row, ok := parsePipeSection(section); ok {
		if cell := row.cellByHeader("ref", "referentie"); cell != "" && looksLikeRef(cell) {
			return cell
		}
		for _, cell := range row.cells {
			if rePipeRefCell.MatchString(cell) {
				return cell
			}
		}
	}

	for _, re := range refCascade {
		if m := re.FindStringSubmatch(section); m != nil {
			if ref := strings.TrimSpace(m[1]); looksLikeRef(ref) {
				return ref
			}
		}
	}
	return ""
}

// looksLikeRef filters marker captures down to reference-code shapes. A
// code carries a digit or a dash, or is fully uppercase — "Klant: Test"
// must not yield "Test" as a reference.
func looksLikeRef(s string) bool {
	if len(s) < 3 {
		return false
	}
	hasDigit := strings.ContainsFunc(s, unicode.IsDigit)
	if hasDigit || strings.Contains(s, "-") {
		return true
	}
	return s == strings.ToUpper(s)
}
