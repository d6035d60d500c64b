// Package moderation implements the keyword gate applied to listing
// submissions. Matching is case-insensitive substring containment with
// no word boundaries, so a term can match inside a larger word.
package moderation

import (
	"regexp"
	"strings"
)

// DefaultBannedTerms is the stock restricted-content list. Multi-word
// entries match as plain substrings.
var DefaultBannedTerms = []string{
	"18+", "adult", "sex", "escort", "nude", "xxx", "erotic", "massage", "fetish", "kink",
	"incall", "outcall", "bodyrub", "dominatra", "mistress", "horny", "nsfw", "porn",
	"naked", "sensual", "intimate", "lover", "hookup", "fwb", "casual", "encounter",
	"dating", "sugar", "daddy", "baby", "mutually", "arrangement", "allowance", "discrete",
	"beneficial", "companionship", "female wanted", "male wanted", "fun", "romance",
	"420", "weed", "drugs", "pills", "smoke", "high", "kush", "carts", "shrooms", "gun", "ammo",
	"cashapp", "western union", "moneygram", "crypto", "bitcoin", "investment",
}

// Field is a named piece of submitted text, checked in the order given.
type Field struct {
	Name string
	Text string
}

// Match names the field and the first banned term it contained.
type Match struct {
	Field string
	Term  string
}

type Filter struct {
	terms []string
}

// New builds a filter over the given term list. A nil or empty list
// selects DefaultBannedTerms.
func New(terms []string) *Filter {
	if len(terms) == 0 {
		terms = DefaultBannedTerms
	}
	lowered := make([]string, len(terms))
	for i, t := range terms {
		lowered[i] = strings.ToLower(t)
	}
	return &Filter{terms: lowered}
}

// Term returns the first banned term contained in text, in list order.
// Empty text never matches.
func (f *Filter) Term(text string) (string, bool) {
	if text == "" {
		return "", false
	}
	lower := strings.ToLower(text)
	for _, t := range f.terms {
		if strings.Contains(lower, t) {
			return t, true
		}
	}
	return "", false
}

// Check scans the fields in order and returns the first field/term
// combination found.
func (f *Filter) Check(fields []Field) (Match, bool) {
	for _, fl := range fields {
		if term, ok := f.Term(fl.Text); ok {
			return Match{Field: fl.Name, Term: term}, true
		}
	}
	return Match{}, false
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidEmail reports whether s looks like local@domain with a dotted
// domain part.
func ValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// ValidContact accepts any non-empty contact text.
func ValidContact(s string) bool {
	return strings.TrimSpace(s) != ""
}
