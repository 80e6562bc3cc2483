package extract

import (
	"regexp"
	"strings"
)

// pipeRow is a parsed pipe-delimited section: one data row, optionally with
// the header cells that give its columns meaning.
type pipeRow struct {
	headers []string
	cells   []string
}

// parsePipeSection splits a table section ("HEADER\nROW" or a bare row)
// into header and data cells. Returns ok=false for non-pipe sections.
func parsePipeSection(section string) (pipeRow, bool) {
	if !strings.Contains(section, "|") {
		return pipeRow{}, false
	}
	lines := strings.Split(strings.TrimSpace(section), "\n")
	row := pipeRow{cells: splitCells(lines[len(lines)-1])}
	if len(lines) > 1 && strings.Contains(lines[0], "|") {
		row.headers = splitCells(lines[0])
	}
	if len(row.cells) < 2 {
		return pipeRow{}, false
	}
	return row, true
}

func splitCells(line string) []string {
	parts := strings.Split(line, "|")
	cells := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			cells = append(cells, p)
		}
	}
	return cells
}

// cellByHeader returns the data cell under the first header containing any
// of the given names (case-insensitive), or "" when there is no header row
// or no such column.
func (r pipeRow) cellByHeader(names ...string) string {
	for i, h := range r.headers {
		if i >= len(r.cells) {
			break
		}
		lower := strings.ToLower(h)
		for _, name := range names {
			if strings.Contains(lower, name) {
				return r.cells[i]
			}
		}
	}
	return ""
}

var (
	reStreetNum  = regexp.MustCompile(`(?i)(?:straat|street|laan|avenue|plein|square|weg|road|boulevard|rue|chaussée)\s+\d+`)
	rePostalCity = regexp.MustCompile(`\d{4}\s+[A-Za-z]+`)
	reTimeRange  = regexp.MustCompile(`(\d{1,2}:\d{2})\s*[–-]\s*(\d{1,2}:\d{2})`)
	rePhoneish   = regexp.MustCompile(`\+\d{2}|\d{2}\s\d{2}\s\d{2}`)
)

func isAddressCell(cell string) bool {
	return reStreetNum.MatchString(cell) || rePostalCity.MatchString(cell)
}

func isTimeCell(cell string) bool {
	return strings.Contains(cell, ":") && reTimeRange.MatchString(cell)
}

func isPhoneCell(cell string) bool {
	return rePhoneish.MatchString(cell)
}

// reSeparatorLine matches markdown-style table separator rows (|---|---|).
var reSeparatorLine = regexp.MustCompile(`^[\s|:-]+$`)

// renderPipeTables rewrites raw pipe-delimited tables into the TABLE:/
// HEADER:/ROW: pseudo-text format the classifier recognizes, mirroring what
// the HTML flattener produces. Runs of fewer than two pipe lines and text
// already carrying TABLE: markers pass through untouched.
func renderPipeTables(text string) string {
	if strings.Contains(text, "TABLE:") {
		return text
	}

	lines := strings.Split(text, "\n")
	var out []string
	var run []string

	flush := func() {
		if len(run) >= 2 {
			out = append(out, "TABLE:")
			out = append(out, "HEADER: "+run[0])
			for _, r := range run[1:] {
				out = append(out, "ROW: "+r)
			}
		} else {
			out = append(out, run...)
		}
		run = nil
	}

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.Count(trimmed, "|") >= 2 {
			if reSeparatorLine.MatchString(trimmed) {
				continue
			}
			run = append(run, strings.Trim(trimmed, "| "))
			continue
		}
		if len(run) > 0 {
			flush()
		}
		out = append(out, line)
	}
	if len(run) > 0 {
		flush()
	}
	return strings.Join(out, "\n")
}
