// Package classify implements first-match-wins classification over ordered
// pattern-rule tables. Tables are pure data: each dimension (trade, priority,
// category, owner role) is an ordered rule list shared by one generic
// evaluation loop, so adding a label never touches control flow.
package classify

import (
	"regexp"
	"strings"
)

// Rule pairs a pattern with the label it assigns
type Rule struct {
	Pattern *regexp.Regexp
	Label   string
}

// Table is an ordered rule list. Evaluation is strictly sequential and the
// first matching rule wins, regardless of how many later rules would also
// match. More specific or more urgent labels belong earlier in the list.
type Table []Rule

// NewTable builds a table from (expression, label) pairs. Expressions are
// matched against lowercased input, so they should be written lowercase.
func NewTable(pairs ...[2]string) Table {
	table := make(Table, 0, len(pairs))
	for _, p := range pairs {
		table = append(table, Rule{
			Pattern: regexp.MustCompile(p[0]),
			Label:   p[1],
		})
	}
	return table
}

// Classify returns the label of the first rule matching the lowercased unit,
// or fallback when no rule matches. It is total: every unit gets a label.
func (t Table) Classify(unit, fallback string) string {
	lower := strings.ToLower(unit)
	for _, r := range t {
		if r.Pattern.MatchString(lower) {
			return r.Label
		}
	}
	return fallback
}

// Flag pairs a precomputed boolean condition with a label. Used where the
// classification input is structured flags rather than free text, e.g.
// delay-cause inference over schedule activity flags.
type Flag struct {
	Set   bool
	Label string
}

// FirstFlag returns the label of the first set flag, or fallback when none
// are set. Ordering carries the same tie-break policy as Table.Classify.
func FirstFlag(flags []Flag, fallback string) string {
	for _, f := range flags {
		if f.Set {
			return f.Label
		}
	}
	return fallback
}
