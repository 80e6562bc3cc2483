package extract

import (
	"regexp"
	"strings"

	"github.com/routeworks/docscan/internal/model"
)

// minAddressLen rejects spurious short matches: a real street line carries
// at least a name, a number and usually a city.
const minAddressLen = 10

// Free-text address cascade: explicit markers, then street-suffix shapes,
// then postal-code-adjacent shapes.
var addressCascade = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:leveradres|bezorgadres|adres|address|delivery\s+address)[\s:]+([^\n\r]+)`),
	regexp.MustCompile(`(?i)([A-Za-zÀ-ÿ' .-]+(?:straat|street|laan|avenue|plein|square|weg|road|boulevard|rue|chaussée)\s+\d+[^\n\r]*)`),
	regexp.MustCompile(`(?i)(?:leveren\s+aan|bezorgen\s+aan|delivery\s+to|locatie|location)[\s:]+([^\n\r]+)`),
	regexp.MustCompile(`([A-Za-zÀ-ÿ' .-]+\d+[A-Za-z]?\s*,\s*\d{4}\s+[A-Za-zÀ-ÿ' -]+)`),
}

// reLeadingFiller strips the request phrasing the street-suffix pattern
// drags in ("Graag leveren op ..."). Applied repeatedly until stable.
var reLeadingFiller = regexp.MustCompile(`(?i)^(?:graag|gelieve|lever(?:en|ing)?|bezorg(?:en|ing)?|aan|naar|bij|op|at|in|te|to|the|de|het)\s+`)
var reSpaces = regexp.MustCompile(`\s+`)

func stripFiller(line string) string {
	for {
		stripped := reLeadingFiller.ReplaceAllString(line, "")
		if stripped == line {
			return line
		}
		line = stripped
	}
}

// extractAddress returns a fully populated Address. When no address line is
// found the sentinel Address is returned, never a partially empty one.
func (a *Analyzer) extractAddress(section string) model.Address {
	if row, ok := parsePipeSection(section); ok {
		if addr := a.addressFromRow(row, section); addr.Found() {
			return addr
		}
	}

	if line := a.gaz.MatchStreet(section); len(line) > minAddressLen {
		return model.Address{
			Line1:        line,
			ContactName:  a.extractContactName(section),
			ContactPhone: extractPhone(section),
		}
	}

	for _, re := range addressCascade {
		m := re.FindStringSubmatch(section)
		if m == nil {
			continue
		}
		line := stripFiller(reSpaces.ReplaceAllString(strings.TrimSpace(m[1]), " "))
		if len(line) > minAddressLen {
			return model.Address{
				Line1:        line,
				ContactName:  a.extractContactName(section),
				ContactPhone: extractPhone(section),
			}
		}
	}

	return model.Address{
		Line1:        model.AddressNotFound,
		ContactName:  model.ContactUnknown,
		ContactPhone: model.PhoneUnknown,
	}
}

// addressFromRow maps table columns onto the address. Header names win;
// without a header the cells are classified by shape, and the first cell
// that is neither reference-, phone- nor time-shaped becomes the contact
// name candidate.
func (a *Analyzer) addressFromRow(row pipeRow, section string) model.Address {
	line := row.cellByHeader("adres", "address")
	if line == "" {
		for _, cell := range row.cells {
			if isAddressCell(cell) && !isTimeCell(cell) {
				line = cell
				break
			}
		}
	}
	if len(line) <= minAddressLen && !isAddressCell(line) {
		return model.Address{Line1: model.AddressNotFound, ContactName: model.ContactUnknown, ContactPhone: model.PhoneUnknown}
	}

	name := row.cellByHeader("klant", "customer", "naam", "name")
	if name == "" {
		for _, cell := range row.cells {
			if cell == line || rePipeRefCell.MatchString(cell) || isPhoneCell(cell) || isTimeCell(cell) {
				continue
			}
			name = cell
			break
		}
	}
	if name == "" || isPhoneCell(name) {
		name = a.extractContactName(section)
	}

	phone := row.cellByHeader("contact", "telefoon", "phone", "gsm")
	if phone == "" || !isPhoneCell(phone) {
		phone = extractPhone(section)
	}

	return model.Address{Line1: line, ContactName: name, ContactPhone: phone}
}
