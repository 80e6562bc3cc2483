package extract

import (
	"regexp"
	"strings"
)

// minSectionLen is the minimum size for a candidate section produced by the
// free-text fallbacks. Shorter spans are noise (greetings, blank filler).
const minSectionLen = 50

// reListMarker strips the leading "3." marker when checking whether a
// numbered block carries anything besides its marker.
var reListMarker = regexp.MustCompile(`^\d+\.\s*`)

// reDeliveryAnchor marks the start of a new delivery in free text. Besides
// delivery vocabulary this includes the address and customer labels, since a
// repeated "Adres:" block usually means a new drop. The anchor split is only
// accepted when it yields two or more sections, so a single labelled block
// keeps the lines that precede its first label.
var reDeliveryAnchor = regexp.MustCompile(`(?i)levering|leveren|delivery|bezorging|bezorgen|order\b|bestelling|adres|address|klant|customer`)

// Segment splits the (possibly table-rendered) text into one section per
// candidate delivery. Sections come back in document order; segmentation
// never reorders or deduplicates, and always yields at least one section.
func Segment(text string) []string {
	switch Classify(text) {
	case FormatTable:
		if sections := segmentTable(text); len(sections) > 0 {
			return sections
		}
	case FormatNumberedList:
		if sections := segmentNumbered(text); len(sections) > 0 {
			return sections
		}
	}
	if sections := segmentFreeText(text); len(sections) > 0 {
		return sections
	}
	return []string{text}
}

// segmentTable parses HEADER:/ROW: lines. Each ROW becomes one section,
// prefixed with the most recent HEADER line so field extractors can use
// column semantics. Rows without a preceding header are kept alone.
func segmentTable(text string) []string {
	var sections []string
	var header string
	for _, line := range strings.Split(text, "\n") {
		switch {
		case strings.HasPrefix(line, "HEADER:"):
			header = strings.TrimSpace(strings.TrimPrefix(line, "HEADER:"))
		case strings.HasPrefix(line, "ROW:"):
			row := strings.TrimSpace(strings.TrimPrefix(line, "ROW:"))
			if row == "" {
				continue
			}
			if header != "" {
				sections = append(sections, header+"\n"+row)
			} else {
				sections = append(sections, row)
			}
		}
	}
	return sections
}

// segmentNumbered splits on numbered markers. Block boundaries are the next
// numeric marker or end of text, so the last entry extends to the end. The
// bold-marker variant is tried first; plain numbered entries are the
// secondary attempt.
func segmentNumbered(text string) []string {
	if sections := splitOnMarkers(text, reNumberedBold); len(sections) > 0 {
		return sections
	}
	return splitOnMarkers(text, reNumberedPlain)
}

func splitOnMarkers(text string, marker *regexp.Regexp) []string {
	locs := marker.FindAllStringIndex(text, -1)
	if len(locs) == 0 {
		return nil
	}
	var sections []string
	for i, loc := range locs {
		end := len(text)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		block := strings.TrimSpace(text[loc[0]:end])
		block = strings.ReplaceAll(block, "**", "")
		// A bare "3." line with nothing after the marker is not a delivery;
		// anything more, however terse, keeps its own section.
		if strings.TrimSpace(reListMarker.ReplaceAllString(block, "")) != "" {
			sections = append(sections, block)
		}
	}
	return sections
}

// segmentFreeText anchors on delivery keywords first; every keyword-to-next-
// keyword span is a candidate section, kept only when at least two survive.
// Otherwise it falls back to blank-line paragraphs, and as a last resort
// greedily accumulates consecutive non-blank lines until the minimum length
// is crossed.
func segmentFreeText(text string) []string {
	if locs := reDeliveryAnchor.FindAllStringIndex(text, -1); len(locs) > 0 {
		var sections []string
		for i, loc := range locs {
			end := len(text)
			if i+1 < len(locs) {
				end = locs[i+1][0]
			}
			span := strings.TrimSpace(text[loc[0]:end])
			if len(span) >= minSectionLen {
				sections = append(sections, span)
			}
		}
		if len(sections) >= 2 {
			return sections
		}
	}

	var paragraphs []string
	for _, p := range strings.Split(text, "\n\n") {
		if p = strings.TrimSpace(p); len(p) > minSectionLen {
			paragraphs = append(paragraphs, p)
		}
	}
	if len(paragraphs) > 0 {
		return paragraphs
	}

	return accumulateLines(text)
}

// accumulateLines joins consecutive non-blank lines, starting a new section
// each time the running length crosses the threshold.
func accumulateLines(text string) []string {
	var sections []string
	var current strings.Builder
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		current.WriteString(line)
		current.WriteString(" ")
		if current.Len() > minSectionLen {
			sections = append(sections, strings.TrimSpace(current.String()))
			current.Reset()
		}
	}
	if rest := strings.TrimSpace(current.String()); rest != "" {
		sections = append(sections, rest)
	}
	return sections
}
