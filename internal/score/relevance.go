// Package score implements the lexical relevance signal shared by entity
// search and RFI routing. The score is a recall-biased ranking signal, not a
// relevance probability: substring and whole-word hits deliberately stack.
package score

import (
	"regexp"
	"strings"
)

// Scoring weights. Policy constants: the worked ranking behavior downstream
// depends on these exact values.
const (
	substringPoints = 30
	wholeWordBonus  = 20
	maxScore        = 100
)

var tokenRe = regexp.MustCompile(`[a-z0-9]+`)

// stopwords are dropped when extracting query terms
var stopwords = map[string]bool{
	"the": true, "and": true, "for": true, "with": true, "that": true,
	"this": true, "are": true, "was": true, "what": true, "where": true,
	"when": true, "how": true, "can": true, "will": true, "should": true,
}

// Relevance scores a candidate's text fields against query terms. Non-empty
// fields concatenate into one lowercased haystack; each term earns 30 points
// for a substring hit anywhere plus a 20-point bonus when it also appears as
// a whole token. The sum clamps to [0,100].
func Relevance(terms []string, fieldTexts []string) int {
	if len(terms) == 0 {
		return 0
	}

	var parts []string
	for _, f := range fieldTexts {
		if f != "" {
			parts = append(parts, f)
		}
	}
	haystack := strings.ToLower(strings.Join(parts, " "))
	if haystack == "" {
		return 0
	}

	tokens := make(map[string]bool)
	for _, tok := range tokenRe.FindAllString(haystack, -1) {
		tokens[tok] = true
	}

	total := 0
	for _, term := range terms {
		term = strings.ToLower(strings.TrimSpace(term))
		if term == "" {
			continue
		}
		if strings.Contains(haystack, term) {
			total += substringPoints
			if tokens[term] {
				total += wholeWordBonus
			}
		}
	}

	if total > maxScore {
		total = maxScore
	}
	return total
}

// Terms extracts query terms from free text: lowercased alphanumeric tokens,
// minus stopwords and tokens shorter than three characters
func Terms(query string) []string {
	var terms []string
	for _, tok := range tokenRe.FindAllString(strings.ToLower(query), -1) {
		if len(tok) < 3 || stopwords[tok] {
			continue
		}
		terms = append(terms, tok)
	}
	return terms
}
