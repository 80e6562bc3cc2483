package extract

import (
	"regexp"
	"strings"

	"github.com/routeworks/docscan/internal/model"
)

// Contact-name cascade. Explicit markers first, then known businesses from
// the gazetteer, then name shapes, then phone-number and signature context.
// Character classes stay on one line: a name never spans a line break.
var (
	reNameMarker  = regexp.MustCompile(`(?i)(?:contactpersoon|contact\s+person|contact|naam|name)[\s:]+([A-Za-zÀ-ÿ][A-Za-zÀ-ÿ&' .-]+)`)
	reKlantMarker = regexp.MustCompile(`(?i)(?:klant|customer)[\s:]+([A-Za-zÀ-ÿ][A-Za-zÀ-ÿ&' .-]+)`)
	reAttnMarker  = regexp.MustCompile(`(?i)(?:t\.a\.v\.|attn)[\s:]+([A-Za-zÀ-ÿ][A-Za-zÀ-ÿ' .-]+)`)
	reTwoWordName = regexp.MustCompile(`([A-Z][a-zà-ÿ]+\s+[A-Z][a-zà-ÿ]+)`)
	reBeforePhone = regexp.MustCompile(`([A-Za-zÀ-ÿ][A-Za-zÀ-ÿ' ]+?)\s*[:,]?\s*\+3[12]\s?\d`)
	reBeforeTel   = regexp.MustCompile(`(?i)([A-Za-zÀ-ÿ][A-Za-zÀ-ÿ' ]+)\s*\(?(?:tel|telefoon|phone|gsm)\b`)
	reSignature   = regexp.MustCompile(`(?i)(?:met\s+vriendelijke\s+groet|best\s+regards|groeten)[\s,]+([A-Za-zÀ-ÿ][A-Za-zÀ-ÿ' .-]+)`)

	reLeadingArticle = regexp.MustCompile(`(?i)^(?:de|het|een|the|a|an)\s+`)
)

func (a *Analyzer) extractContactName(section string) string {
	cascade := []*regexp.Regexp{reNameMarker, reKlantMarker, reAttnMarker}
	for _, re := range cascade {
		if m := re.FindStringSubmatch(section); m != nil {
			if name := cleanName(m[1]); name != "" {
				return name
			}
		}
	}

	if b := a.gaz.MatchBusiness(section); b != "" {
		return b
	}

	for _, re := range []*regexp.Regexp{reTwoWordName, reBeforePhone, reBeforeTel, reSignature} {
		if m := re.FindStringSubmatch(section); m != nil {
			if name := cleanName(m[1]); name != "" {
				return name
			}
		}
	}
	return model.ContactDefault
}

// cleanName normalizes whitespace and strips leading articles and
// trailing punctuation. Single words pass: business names are often one word.
func cleanName(s string) string {
	s = reSpaces.ReplaceAllString(strings.TrimSpace(s), " ")
	s = reLeadingArticle.ReplaceAllString(s, "")
	s = strings.Trim(s, " .,-")
	if len(s) <= 2 {
		return ""
	}
	return s
}

// Phone cascade: regional numbering plans are matched narrowly before the
// generic international and local shapes.
var phoneCascade = []*regexp.Regexp{
	// Belgian mobile (+32 4xx xx xx xx)
	regexp.MustCompile(`(\+32\s?4\d{2}\s?\d{2}\s?\d{2}\s?\d{2})`),
	// Belgian landline (+32 xx xxx xx xx)
	regexp.MustCompile(`(\+32\s?[1-9]\d?\s?\d{3}\s?\d{2}\s?\d{2})`),
	// Dutch mobile (+31 6 xxxx xxxx)
	regexp.MustCompile(`(\+31\s?6\s?\d{4}\s?\d{4})`),
	// Dutch landline (+31 xx xxx xxxx)
	regexp.MustCompile(`(\+31\s?[1-9]\d\s?\d{3}\s?\d{4})`),
	// Generic international
	regexp.MustCompile(`(\+\d{1,3}[-\s]?\d{1,4}[-\s]?\d{1,4}[-\s]?\d{1,4})`),
	// Local without country code
	regexp.MustCompile(`(0[1-9]\d{0,2}[-\s]?\d{2,3}[-\s]?\d{2,3}(?:[-\s]?\d{2})?)`),
}

func extractPhone(section string) string {
	for _, re := range phoneCascade {
		if m := re.FindStringSubmatch(section); m != nil {
			return reSpaces.ReplaceAllString(strings.TrimSpace(m[1]), " ")
		}
	}
	return model.PhoneUnknown
}
