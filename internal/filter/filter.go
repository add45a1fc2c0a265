// Package filter defines the store-native filter expression produced by query translation.
//
// The node set is closed: And, Regex and Range. Every index implementation must handle
// exactly these three; Match gives the reference semantics.
package filter

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/hyperjump/kura/internal/models"
)

// ErrInvalidPattern is returned when a filter pattern is not a valid regular expression.
var ErrInvalidPattern = errors.New("invalid filter pattern")

// ComponentAlphabetic selects the alphabetic group of a person name.
const ComponentAlphabetic = "Alphabetic"

// Filter is a predicate over datasets.
type Filter interface {
	// Match reports whether ds satisfies the filter.
	Match(ds models.Dataset) bool
	// String returns a canonical rendering; equal filters render equally.
	String() string

	node()
}

// And matches when every sub-filter matches. An empty And matches everything.
type And []Filter

func (And) node() {}

func (a And) Match(ds models.Dataset) bool {
	for _, f := range a {
		if !f.Match(ds) {
			return false
		}
	}
	return true
}

func (a And) String() string {
	parts := make([]string, len(a))
	for i, f := range a {
		parts[i] = f.String()
	}
	return "and(" + strings.Join(parts, ", ") + ")"
}

// Regex matches when any value of Tag matches Pattern, case-insensitively.
// With Component set, values are person names and the named component is matched.
type Regex struct {
	Tag       string
	Component string
	Pattern   string

	re *regexp.Regexp
}

// NewRegex compiles pattern case-insensitively.
func NewRegex(tag, component, pattern string) (*Regex, error) {
	re, err := Compile(pattern)
	if err != nil {
		return nil, err
	}
	return &Regex{Tag: tag, Component: component, Pattern: pattern, re: re}, nil
}

// Compile compiles a filter pattern with case-insensitive matching.
func Compile(pattern string) (*regexp.Regexp, error) {
	re, err := regexp.Compile("(?i)" + pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidPattern, pattern, err)
	}
	return re, nil
}

func (*Regex) node() {}

func (r *Regex) Match(ds models.Dataset) bool {
	a, ok := ds[r.Tag]
	if !ok {
		return false
	}
	for _, v := range a.Value {
		var s string
		if r.Component != "" {
			if s, ok = component(v, r.Component); !ok {
				continue
			}
		} else if s, ok = Text(v); !ok {
			continue
		}
		if r.re.MatchString(s) {
			return true
		}
	}
	return false
}

func (r *Regex) String() string {
	field := r.Tag
	if r.Component != "" {
		field += "." + r.Component
	}
	return fmt.Sprintf("%s ~ /%s/i", field, r.Pattern)
}

// Range matches when any string value of Tag lies in [Lower, Upper], compared lexicographically.
type Range struct {
	Tag   string
	Lower string
	Upper string
}

func (*Range) node() {}

func (r *Range) Match(ds models.Dataset) bool {
	a, ok := ds[r.Tag]
	if !ok {
		return false
	}
	for _, v := range a.Value {
		s, ok := v.(string)
		if !ok {
			continue
		}
		if s >= r.Lower && s <= r.Upper {
			return true
		}
	}
	return false
}

func (r *Range) String() string {
	return fmt.Sprintf("%s in [%q, %q]", r.Tag, r.Lower, r.Upper)
}

// Text returns the textual form of a scalar value. Person names, sequence items and nulls have none.
func Text(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	}
	return "", false
}

func component(v any, name string) (string, bool) {
	var pn models.PersonName
	switch t := v.(type) {
	case models.PersonName:
		pn = t
	case *models.PersonName:
		if t == nil {
			return "", false
		}
		pn = *t
	default:
		return "", false
	}
	switch name {
	case ComponentAlphabetic:
		return pn.Alphabetic, true
	case "Ideographic":
		return pn.Ideographic, true
	case "Phonetic":
		return pn.Phonetic, true
	}
	return "", false
}
