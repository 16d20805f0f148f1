// Package profanity wraps the go-away detector behind the two operations the
// application needs: a hard check for handles and a censor pass for free text.
package profanity

import (
	goaway "github.com/TwiN/go-away"
)

// Filter detects and censors profane words.
type Filter struct {
	detector *goaway.ProfanityDetector
}

// NewFilter creates a Filter with the default dictionary.
func NewFilter() *Filter {
	return &Filter{detector: goaway.NewProfanityDetector()}
}

// IsProfane reports whether s contains a banned term.
func (f *Filter) IsProfane(s string) bool {
	return f.detector.IsProfane(s)
}

// Clean returns s with banned terms replaced by asterisks.
func (f *Filter) Clean(s string) string {
	return f.detector.Censor(s)
}
