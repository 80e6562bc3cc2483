package extract

import "regexp"

const (
	defaultWindowStart = "09:00"
	defaultWindowEnd   = "17:00"
)

var (
	reStartMarker = regexp.MustCompile(`(?i)(?:vanaf|from|na|after|tussen|between)\s+(\d{1,2}:\d{2})`)
	reEndMarker   = regexp.MustCompile(`(?i)(?:tot|until|voor|before|uiterlijk|en)\s+(\d{1,2}:\d{2})`)
	reAnyClock    = regexp.MustCompile(`(\d{1,2}:\d{2})`)
)

// extractTimeWindow finds a delivery window in the section. An explicit
// range wins; otherwise start and end are read from their own marker
// cascades with business-hours defaults.
func extractTimeWindow(section string) (start, end string) {
	if m := reTimeRange.FindStringSubmatch(section); m != nil {
		return padClock(m[1]), padClock(m[2])
	}

	start, end = defaultWindowStart, defaultWindowEnd
	marked := false
	if m := reStartMarker.FindStringSubmatch(section); m != nil {
		start = padClock(m[1])
		marked = true
	}
	if m := reEndMarker.FindStringSubmatch(section); m != nil {
		end = padClock(m[1])
		marked = true
	}
	// A lone unmarked clock reads as the start of the window.
	if !marked {
		if m := reAnyClock.FindStringSubmatch(section); m != nil {
			start = padClock(m[1])
		}
	}
	return start, end
}

// padClock widens H:MM to HH:MM.
func padClock(s string) string {
	if len(s) == 4 {
		return "0" + s
	}
	return s
}
