package search

import (
	"fmt"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"golang.org/x/text/cases"
)

// Matcher decides whether an option's display text matches a non-empty
// query.
type Matcher func(text, query string) bool

// Contains is the default matcher: a case-sensitive substring test against
// the raw query.
func Contains(text, query string) bool {
	return strings.Contains(text, query)
}

// Fold matches substrings under Unicode case folding, so "STRASSE" finds
// "Straße".
func Fold(text, query string) bool {
	folder := cases.Fold()
	return strings.Contains(folder.String(text), folder.String(query))
}

// Fuzzy matches when the query runes appear in order within text, ignoring
// case.
func Fuzzy(text, query string) bool {
	return fuzzy.MatchFold(query, text)
}

// Matcher names accepted by MatcherByName.
const (
	MatchContains = "contains"
	MatchFold     = "fold"
	MatchFuzzy    = "fuzzy"
)

// MatcherByName resolves a matcher from its configuration name. An empty
// name selects Contains.
func MatcherByName(name string) (Matcher, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", MatchContains:
		return Contains, nil
	case MatchFold:
		return Fold, nil
	case MatchFuzzy:
		return Fuzzy, nil
	default:
		return nil, fmt.Errorf("unknown match mode %q (want %s, %s or %s)", name, MatchContains, MatchFold, MatchFuzzy)
	}
}
