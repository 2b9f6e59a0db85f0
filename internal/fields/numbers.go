package fields

import (
	"regexp"
	"strconv"
)

// DefaultHours applies when a unit mentions time-based work with no figure
const DefaultHours = 8.0

var (
	workersRe = regexp.MustCompile(`(?i)\b(\d+)\s*(?:workers?|guys|men|crew(?:\s*members)?|laborers?|electricians?|plumbers?|carpenters?|painters?|masons?|operators?)\b`)
	hoursRe   = regexp.MustCompile(`(?i)\b(\d+(?:\.\d+)?)\s*(?:hours?|hrs?)\b`)
	percentRe = regexp.MustCompile(`(?i)\b(\d{1,3})\s*(?:%|percent)`)
)

// Workers returns the headcount mentioned in the unit, or 0
func Workers(unit string) int {
	if m := workersRe.FindStringSubmatch(unit); m != nil {
		n, err := strconv.Atoi(m[1])
		if err == nil {
			return n
		}
	}
	return 0
}

// Hours returns the hour count mentioned in the unit, or DefaultHours
func Hours(unit string) float64 {
	if m := hoursRe.FindStringSubmatch(unit); m != nil {
		h, err := strconv.ParseFloat(m[1], 64)
		if err == nil {
			return h
		}
	}
	return DefaultHours
}

// PercentComplete returns the completion percentage mentioned in the unit,
// clamped to [0,100]. The second return reports whether a figure was present.
func PercentComplete(unit string) (int, bool) {
	m := percentRe.FindStringSubmatch(unit)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	if n > 100 {
		n = 100
	}
	return n, true
}
