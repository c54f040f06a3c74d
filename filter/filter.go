// Package filter selects candidate model names using case-insensitive
// substring predicates.
package filter

import (
	"fmt"
	"strings"
)

// Predicate is a single case-insensitive substring test.
type Predicate struct {
	pattern string
}

// NewPredicate builds a predicate from a pattern. The pattern must be
// non-empty; matching ignores case.
func NewPredicate(pattern string) (Predicate, error) {
	if pattern == "" {
		return Predicate{}, fmt.Errorf("predicate pattern is required")
	}
	return Predicate{pattern: strings.ToLower(pattern)}, nil
}

// Matches reports whether the name contains the pattern, ignoring case.
func (p Predicate) Matches(name string) bool {
	return strings.Contains(strings.ToLower(name), p.pattern)
}

// Pattern returns the normalized (lowercase) pattern.
func (p Predicate) Pattern() string {
	return p.pattern
}

// Predicates is an ordered set of predicates combined with OR semantics.
type Predicates []Predicate

// NewPredicates builds a predicate set from pattern strings.
func NewPredicates(patterns ...string) (Predicates, error) {
	preds := make(Predicates, 0, len(patterns))
	for _, pat := range patterns {
		p, err := NewPredicate(pat)
		if err != nil {
			return nil, err
		}
		preds = append(preds, p)
	}
	return preds, nil
}

// Matches reports whether any predicate in the set matches the name.
// An empty set matches nothing.
func (ps Predicates) Matches(name string) bool {
	for _, p := range ps {
		if p.Matches(name) {
			return true
		}
	}
	return false
}

// Candidates returns the subsequence of names matching any predicate,
// preserving input order. The result is always a subset of the input.
func Candidates(names []string, preds Predicates) []string {
	matched := make([]string, 0, len(names))
	for _, n := range names {
		if preds.Matches(n) {
			matched = append(matched, n)
		}
	}
	return matched
}
