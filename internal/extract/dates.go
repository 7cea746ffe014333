// internal/extract/dates.go
package extract

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DateFindings carries whatever the date cascade recovered. Empty fields are
// filled in by the assembler's default policy. Timestamps are minute-precision
// local time in TimestampLayout form; timezone abbreviations found in the text
// are recorded in the provenance notes but deliberately not applied as UTC
// offsets (see the caveat emitted alongside such matches).
type DateFindings struct {
	Start  string
	End    string
	Draw   string
	Issues []string
}

// Australian timezone abbreviations recognised in date phrasing. Captured for
// provenance only.
const tzAbbrev = `AEST|AEDT|ACST|ACDT|AWST|AWDT`

// Dates use Australian day/month/year ordering throughout.
var (
	narrativeRangeRe = regexp.MustCompile(`(?i)\bbegins?\s+at\s+(\d{1,2}):(\d{2})\s*(am|pm)\s*(` + tzAbbrev + `)?\s*on\s+(\d{1,2})/(\d{1,2})/(\d{2,4})\b.{0,300}?\bends?\s+at\s+(\d{1,2}):(\d{2})\s*(am|pm)\s*(` + tzAbbrev + `)?\s*on\s+(\d{1,2})/(\d{1,2})/(\d{2,4})\b`)

	explicitStartRe = regexp.MustCompile(`(?i)\b(?:begins?|starts?|commences?|opens?)\b[^.!?]{0,60}?(?:at\s+(\d{1,2}):(\d{2})\s*(am|pm)\s*(` + tzAbbrev + `)?\s*)?on\s+(\d{1,2})/(\d{1,2})/(\d{2,4})\b`)
	looseStartRe    = regexp.MustCompile(`(?i)\b(?:from|starting)\s+(\d{1,2})/(\d{1,2})/(\d{2,4})\b`)

	explicitEndRe = regexp.MustCompile(`(?i)\b(?:ends?|closes?|finish(?:es)?)\b[^.!?]{0,60}?(?:at\s+(\d{1,2}):(\d{2})\s*(am|pm)\s*(` + tzAbbrev + `)?\s*)?on\s+(\d{1,2})/(\d{1,2})/(\d{2,4})\b`)
	looseEndRe    = regexp.MustCompile(`(?i)\b(?:to|until|ending)\s+(\d{1,2})/(\d{1,2})/(\d{2,4})\b`)

	announcedDrawRe = regexp.MustCompile(`(?i)\b(?:winners?|draws?|results?)\b.{0,60}?\b(?:announced|drawn|selected)\b.{0,40}?\bon\s+(\d{1,2})/(\d{1,2})/(\d{2,4})\b`)
	judgingDrawRe   = regexp.MustCompile(`(?i)\b(?:judging|selection)\s+(?:date|on)\s*:?\s*(\d{1,2})/(\d{1,2})/(\d{2,4})\b`)

	genericRangeRe = regexp.MustCompile(`\b(\d{1,2})/(\d{1,2})/(\d{2,4})\s*(?:-|to|until)\s*(\d{1,2})/(\d{1,2})/(\d{2,4})\b`)
)

// dated is one accepted date candidate plus its provenance.
type dated struct {
	ts     time.Time
	source string
	tz     string
}

// ExtractDates runs the date pattern cascade over the clean text. Each field
// is first-match-wins; a candidate with an out-of-range component is
// discarded and the cascade continues with the next pattern.
func ExtractDates(text string) DateFindings {
	var f DateFindings

	// Narrative phrasing yields start and end from a single match.
	if m := narrativeRangeRe.FindStringSubmatch(text); m != nil {
		start, okStart := buildDate(m[5], m[6], m[7], m[1], m[2], m[3])
		end, okEnd := buildDate(m[12], m[13], m[14], m[8], m[9], m[10])
		if okStart && okEnd {
			f.Start = start.Format(TimestampLayout)
			f.End = end.Format(TimestampLayout)
			tz := m[4]
			if tz == "" {
				tz = m[11]
			}
			f.Issues = append(f.Issues, provenance("Start and end dates", m[0], tz))
		}
	}

	if f.Start == "" {
		if d, ok := firstMatch(startRules(), text); ok {
			f.Start = d.ts.Format(TimestampLayout)
			f.Issues = append(f.Issues, provenance("Start date", d.source, d.tz))
		}
	}

	if f.End == "" {
		if d, ok := firstMatch(endRules(), text); ok {
			f.End = d.ts.Format(TimestampLayout)
			f.Issues = append(f.Issues, provenance("End date", d.source, d.tz))
		}
	}

	if d, ok := firstMatch(drawRules(), text); ok {
		f.Draw = d.ts.Format(TimestampLayout)
		f.Issues = append(f.Issues, provenance("Draw date", d.source, d.tz))
	}

	// Last resort: a bare "D/M/Y to D/M/Y" range fills whichever of start and
	// end is still empty.
	if f.Start == "" || f.End == "" {
		if m := genericRangeRe.FindStringSubmatch(text); m != nil {
			start, okStart := buildDate(m[1], m[2], m[3], "", "", "")
			end, okEnd := buildDate(m[4], m[5], m[6], "", "", "")
			if okStart && okEnd {
				filled := false
				if f.Start == "" {
					f.Start = start.Format(TimestampLayout)
					filled = true
				}
				if f.End == "" {
					f.End = end.Format(TimestampLayout)
					filled = true
				}
				if filled {
					f.Issues = append(f.Issues, provenance("Date range", m[0], ""))
				}
			}
		}
	}

	return f
}

// timedRule adapts the shared explicit-pattern group layout: optional time in
// groups 1-4, date in groups 5-7.
func timedRule(re *regexp.Regexp) rule[dated] {
	return rule[dated]{
		pattern: re,
		handle: func(m []string) (dated, bool) {
			ts, ok := buildDate(m[5], m[6], m[7], m[1], m[2], m[3])
			if !ok {
				return dated{}, false
			}
			return dated{ts: ts, source: m[0], tz: m[4]}, true
		},
	}
}

// dateOnlyRule adapts patterns whose only captures are day/month/year in
// groups 1-3.
func dateOnlyRule(re *regexp.Regexp) rule[dated] {
	return rule[dated]{
		pattern: re,
		handle: func(m []string) (dated, bool) {
			ts, ok := buildDate(m[1], m[2], m[3], "", "", "")
			if !ok {
				return dated{}, false
			}
			return dated{ts: ts, source: m[0]}, true
		},
	}
}

func startRules() []rule[dated] {
	return []rule[dated]{
		timedRule(explicitStartRe),
		dateOnlyRule(looseStartRe),
	}
}

func endRules() []rule[dated] {
	return []rule[dated]{
		timedRule(explicitEndRe),
		dateOnlyRule(looseEndRe),
	}
}

func drawRules() []rule[dated] {
	return []rule[dated]{
		dateOnlyRule(announcedDrawRe),
		dateOnlyRule(judgingDrawRe),
	}
}

// buildDate assembles a local-time timestamp from string components. Hour,
// minute and meridiem may all be empty, yielding midnight. Returns false when
// any component is out of range or a year is neither two nor four digits.
func buildDate(dayS, monthS, yearS, hourS, minuteS, meridiem string) (time.Time, bool) {
	day, err := strconv.Atoi(dayS)
	if err != nil || day < 1 || day > 31 {
		return time.Time{}, false
	}
	month, err := strconv.Atoi(monthS)
	if err != nil || month < 1 || month > 12 {
		return time.Time{}, false
	}
	year, ok := expandYear(yearS)
	if !ok {
		return time.Time{}, false
	}

	hour, minute := 0, 0
	if hourS != "" {
		hour, err = strconv.Atoi(hourS)
		if err != nil || hour < 1 || hour > 12 {
			return time.Time{}, false
		}
		minute, err = strconv.Atoi(minuteS)
		if err != nil || minute < 0 || minute > 59 {
			return time.Time{}, false
		}
		hour = to24Hour(hour, meridiem)
	}

	return time.Date(year, time.Month(month), day, hour, minute, 0, 0, time.Local), true
}

// expandYear turns a two-digit year into a full year: 00-30 map into the
// 2000s, 31-99 into the 1900s. The cutoff is a heuristic with no way to know
// true intent for edge years; it is preserved as documented behaviour.
func expandYear(yearS string) (int, bool) {
	switch len(yearS) {
	case 4:
		y, err := strconv.Atoi(yearS)
		if err != nil {
			return 0, false
		}
		return y, true
	case 2:
		y, err := strconv.Atoi(yearS)
		if err != nil {
			return 0, false
		}
		if y <= 30 {
			return 2000 + y, true
		}
		return 1900 + y, true
	default:
		return 0, false
	}
}

// to24Hour applies standard am/pm rules: 12am is midnight, 12pm stays 12,
// other pm hours gain 12.
func to24Hour(hour int, meridiem string) int {
	switch strings.ToLower(meridiem) {
	case "am":
		if hour == 12 {
			return 0
		}
		return hour
	case "pm":
		if hour == 12 {
			return 12
		}
		return hour + 12
	default:
		return hour
	}
}

// provenance renders a human-readable note quoting the matched source text.
// When a timezone abbreviation was captured it is called out explicitly,
// because the constructed timestamp does not apply its offset.
func provenance(field, source, tz string) string {
	note := fmt.Sprintf("%s read from %q", field, condense(source))
	if tz != "" {
		note += fmt.Sprintf(" (timezone %s recorded but not applied as an offset)", strings.ToUpper(tz))
	}
	return note
}

// condense collapses whitespace and truncates long matched text so issue
// notes stay readable.
func condense(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	if len(s) > 140 {
		s = s[:140] + "..."
	}
	return s
}
