// Package fields pulls structured sub-values (locations, dates, counts) out
// of candidate units via targeted pattern matches. Every extractor here is
// total: absence of a match yields the caller's default, never an error.
// Free text is unreliable by construction.
package fields

import "regexp"

// locationPatterns is a prioritized list; the first match wins. Specific
// positional phrases come before generic named spaces.
var locationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(?:room|rm\.?)\s*#?\d+[a-z]?\b`),
	regexp.MustCompile(`(?i)\bunit\s*#?\d+[a-z]?\b`),
	regexp.MustCompile(`(?i)\b(?:floor|level)\s*\d+\b`),
	regexp.MustCompile(`(?i)\b\d+(?:st|nd|rd|th)\s+floor\b`),
	regexp.MustCompile(`(?i)\barea\s+[a-z0-9]+\b`),
	regexp.MustCompile(`(?i)\b(?:north|south|east|west)\s+(?:wing|side|elevation|stair(?:well)?|entrance)\b`),
	regexp.MustCompile(`(?i)\b(?:main\s+)?(?:lobby|kitchen|bathroom|restroom|corridor|hallway|stairwell|elevator|basement|garage|roof(?:top)?|mechanical room|electrical room|conference room|break room|loading dock)\b`),
}

// Location returns the first location phrase found in the unit, preserving
// the original casing of the matched text, or fallback when none match.
func Location(unit, fallback string) string {
	for _, p := range locationPatterns {
		if m := p.FindString(unit); m != "" {
			return m
		}
	}
	return fallback
}
