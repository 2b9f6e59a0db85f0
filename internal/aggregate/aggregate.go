// Package aggregate provides the shared dedup, merge, and tally primitives
// used by every extractor. Merge policy is explicit per field (max, sum,
// last-write-wins) rather than buried in loop bodies, and every operation is
// idempotent: aggregating an aggregate produces no further reduction.
package aggregate

import "strings"

// Policy selects how a numeric field combines when two items share a key
type Policy int

const (
	PolicyMax Policy = iota // Keep the larger value
	PolicySum               // Add values together
	PolicyLast              // Last write wins
)

// MergeFloat combines two values of a field under the given policy
func MergeFloat(p Policy, old, next float64) float64 {
	switch p {
	case PolicyMax:
		if next > old {
			return next
		}
		return old
	case PolicySum:
		return old + next
	default:
		return next
	}
}

// MergeInt combines two values of a field under the given policy
func MergeInt(p Policy, old, next int) int {
	switch p {
	case PolicyMax:
		if next > old {
			return next
		}
		return old
	case PolicySum:
		return old + next
	default:
		return next
	}
}

// Key builds a normalized identity key from the given parts. Normalization
// is lowercase + trim, so dedup is case-insensitive by construction.
func Key(parts ...string) string {
	normalized := make([]string, 0, len(parts))
	for _, p := range parts {
		normalized = append(normalized, strings.ToLower(strings.TrimSpace(p)))
	}
	return strings.Join(normalized, "|")
}

// Dedup retains the first item per identity key, preserving input order
func Dedup[T any](items []T, key func(T) string) []T {
	seen := make(map[string]bool, len(items))
	out := make([]T, 0, len(items))
	for _, item := range items {
		k := key(item)
		if !seen[k] {
			seen[k] = true
			out = append(out, item)
		}
	}
	return out
}

// MergeBy folds items sharing an identity key into one via merge, keeping
// first-occurrence order of keys
func MergeBy[T any](items []T, key func(T) string, merge func(old, next T) T) []T {
	index := make(map[string]int, len(items))
	out := make([]T, 0, len(items))
	for _, item := range items {
		k := key(item)
		if i, ok := index[k]; ok {
			out[i] = merge(out[i], item)
			continue
		}
		index[k] = len(out)
		out = append(out, item)
	}
	return out
}

// Tally counts items per label. Labels are total (every item has one), so
// the counts always partition the item set: sums equal len(items).
func Tally[T any](items []T, label func(T) string) map[string]int {
	counts := make(map[string]int)
	for _, item := range items {
		counts[label(item)]++
	}
	return counts
}
