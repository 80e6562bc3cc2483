package extract

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	reISODate    = regexp.MustCompile(`(\d{4})-(\d{2})-(\d{2})`)
	reDateMarker = regexp.MustCompile(`(?i)(?:datum|date|leverdatum|leverdag|bezorgdatum)[\s:]+(\d{1,2})[/-](\d{1,2})[/-](\d{2,4})`)
	reSlashDate  = regexp.MustCompile(`(\d{1,2})/(\d{1,2})/(\d{2,4})`)
	reDashDate   = regexp.MustCompile(`(\d{1,4})-(\d{1,2})-(\d{2,4})`)
	reWeekday    = regexp.MustCompile(`(?i)(?:maandag|dinsdag|woensdag|donderdag|vrijdag|zaterdag|zondag|monday|tuesday|wednesday|thursday|friday|saturday|sunday)\s+(\d{1,2})[/-](\d{1,2})`)
)

// extractServiceDate finds a delivery date in the section and returns it in
// ISO form. Dates are read day-first per Dutch and Belgian convention.
// Defaults to tomorrow when nothing matches.
func (a *Analyzer) extractServiceDate(section string) string {
	if m := reISODate.FindStringSubmatch(section); m != nil {
		return m[0]
	}
	if m := reDateMarker.FindStringSubmatch(section); m != nil {
		return isoFromDMY(m[1], m[2], m[3])
	}
	if m := reSlashDate.FindStringSubmatch(section); m != nil {
		return isoFromDMY(m[1], m[2], m[3])
	}
	if m := reDashDate.FindStringSubmatch(section); m != nil {
		// A four-digit first part is already year-first.
		if len(m[1]) == 4 {
			return isoFromYMD(m[1], m[2], m[3])
		}
		return isoFromDMY(m[1], m[2], m[3])
	}
	if m := reWeekday.FindStringSubmatch(section); m != nil {
		return isoFromDMY(m[1], m[2], strconv.Itoa(a.now().Year()))
	}
	return a.now().AddDate(0, 0, 1).Format("2006-01-02")
}

// isoFromDMY builds YYYY-MM-DD from day-first parts. Two-digit years are
// taken as 20xx.
func isoFromDMY(day, month, year string) string {
	if len(year) == 2 {
		year = "20" + year
	}
	d, _ := strconv.Atoi(day)
	mo, _ := strconv.Atoi(month)
	return fmt.Sprintf("%s-%02d-%02d", year, mo, d)
}

func isoFromYMD(year, month, day string) string {
	mo, _ := strconv.Atoi(month)
	d, _ := strconv.Atoi(day)
	return fmt.Sprintf("%s-%02d-%02d", year, mo, d)
}

// NormalizeDate converts a date string to ISO form. ISO input passes
// through unchanged, so the function is idempotent.
func NormalizeDate(s string, now time.Time) string {
	s = strings.TrimSpace(s)
	if m := reISODate.FindStringSubmatch(s); m != nil {
		return m[0]
	}
	if m := reSlashDate.FindStringSubmatch(s); m != nil {
		return isoFromDMY(m[1], m[2], m[3])
	}
	if m := reDashDate.FindStringSubmatch(s); m != nil {
		if len(m[1]) == 4 {
			return isoFromYMD(m[1], m[2], m[3])
		}
		return isoFromDMY(m[1], m[2], m[3])
	}
	return now.AddDate(0, 0, 1).Format("2006-01-02")
}
