package extract

import (
	"regexp"
	"strings"

	"github.com/routeworks/docscan/internal/model"
)

// Item patterns in descending specificity. Only the first matching pattern
// contributes items: mixing patterns over the same text duplicates lines.
var itemCascade = []*regexp.Regexp{
	// Description stops at the next digit so "3x dozen en 2x taarten"
	// yields two items.
	regexp.MustCompile(`(?i)\d+\s*x\s*([A-Za-zÀ-ÿ][A-Za-zÀ-ÿ' .-]*)`),
	regexp.MustCompile(`(?i)\d+\s*(?:stuks|stuk|pieces|pcs|dozen|doos|pallets?|colli)\s+([A-Za-zÀ-ÿ][A-Za-zÀ-ÿ0-9' .-]+)`),
	regexp.MustCompile(`(?i)(?:artikel|item|product|goederen)[\s:]+([A-Za-zÀ-ÿ0-9][A-Za-zÀ-ÿ0-9' .-]+)`),
	regexp.MustCompile(`(?m)^\s*[-•]\s+([A-Za-zÀ-ÿ0-9][A-Za-zÀ-ÿ0-9' .-]{2,})`),
}

// extractItems lists goods mentioned in the section. Heuristic items always
// ship as a single ambient package: counts and temperature handling in the
// text are not trusted, only the remote strategy produces other values.
func extractItems(section string) []model.Item {
	for _, re := range itemCascade {
		matches := re.FindAllStringSubmatch(section, -1)
		if matches == nil {
			continue
		}
		items := make([]model.Item, 0, len(matches))
		for _, m := range matches {
			desc := strings.TrimSpace(m[1])
			desc = strings.Trim(desc, " .,-")
			if desc == "" {
				continue
			}
			items = append(items, model.Item{
				Description: desc,
				Quantity:    1,
				TempClass:   model.TempAmbient,
			})
		}
		if len(items) > 0 {
			return items
		}
	}

	return []model.Item{{
		Description: model.ItemDefault,
		Quantity:    1,
		TempClass:   model.TempAmbient,
	}}
}
