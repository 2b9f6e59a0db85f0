package fields

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	urgencyRe    = regexp.MustCompile(`\b(?:asap|immediately|right away|today|end of day|eod)\b`)
	tomorrowRe   = regexp.MustCompile(`\btomorrow\b`)
	thisWeekRe   = regexp.MustCompile(`\b(?:this week|eow|end of (?:the )?week)\b`)
	nextWeekRe   = regexp.MustCompile(`\bnext week\b`)
	endOfMonthRe = regexp.MustCompile(`\b(?:eom|end of (?:the )?month)\b`)
	withinRe     = regexp.MustCompile(`\bwithin\s+(\d+)\s+(day|week)s?\b`)
	explicitRe   = regexp.MustCompile(`\b(\d{1,2})/(\d{1,2})(?:/(\d{2,4}))?\b`)

	weekdays = map[string]time.Weekday{
		"monday":    time.Monday,
		"tuesday":   time.Tuesday,
		"wednesday": time.Wednesday,
		"thursday":  time.Thursday,
		"friday":    time.Friday,
		"saturday":  time.Saturday,
		"sunday":    time.Sunday,
	}
	weekdayRe = regexp.MustCompile(`\b(monday|tuesday|wednesday|thursday|friday|saturday|sunday)\b`)
)

// DueDate resolves a due date from free text against a base date (meeting
// date or now). Relative phrases resolve with calendar arithmetic; an
// urgency cue with no explicit date resolves to the base date itself.
// Returns nil when the unit carries no recognizable date signal.
func DueDate(unit string, base time.Time) *time.Time {
	lower := strings.ToLower(unit)
	base = truncateToDay(base)

	switch {
	case urgencyRe.MatchString(lower):
		return &base

	case tomorrowRe.MatchString(lower):
		d := base.AddDate(0, 0, 1)
		return &d

	case thisWeekRe.MatchString(lower):
		d := nextWeekday(base, time.Friday)
		return &d

	case nextWeekRe.MatchString(lower):
		d := nextWeekday(base, time.Friday).AddDate(0, 0, 7)
		return &d

	case endOfMonthRe.MatchString(lower):
		d := endOfMonth(base)
		return &d
	}

	if m := withinRe.FindStringSubmatch(lower); m != nil {
		n, _ := strconv.Atoi(m[1])
		days := n
		if m[2] == "week" {
			days = n * 7
		}
		d := base.AddDate(0, 0, days)
		return &d
	}

	if m := explicitRe.FindStringSubmatch(lower); m != nil {
		month, _ := strconv.Atoi(m[1])
		day, _ := strconv.Atoi(m[2])
		if month >= 1 && month <= 12 && day >= 1 && day <= 31 {
			year := base.Year()
			if m[3] != "" {
				year, _ = strconv.Atoi(m[3])
				if year < 100 {
					year += 2000
				}
			}
			d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, base.Location())
			// A bare M/D earlier in the year means next year
			if m[3] == "" && d.Before(base) {
				d = d.AddDate(1, 0, 0)
			}
			return &d
		}
	}

	if m := weekdayRe.FindStringSubmatch(lower); m != nil {
		d := nextWeekday(base, weekdays[m[1]])
		return &d
	}

	return nil
}

// nextWeekday returns the next occurrence of target strictly after a same-day
// base: delta = (target - weekday + 7) % 7, with 0 mapping to a full week out.
func nextWeekday(base time.Time, target time.Weekday) time.Time {
	delta := (int(target) - int(base.Weekday()) + 7) % 7
	if delta == 0 {
		delta = 7
	}
	return base.AddDate(0, 0, delta)
}

func endOfMonth(base time.Time) time.Time {
	firstOfNext := time.Date(base.Year(), base.Month(), 1, 0, 0, 0, 0, base.Location()).AddDate(0, 1, 0)
	return firstOfNext.AddDate(0, 0, -1)
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
