// Package query translates attribute filters into index filters, runs them, and
// deduplicates and projects the results per hierarchy level.
package query

import (
	"sort"
	"strings"

	"github.com/hyperjump/kura/internal/dictionary"
	"github.com/hyperjump/kura/internal/filter"
	"github.com/hyperjump/kura/internal/models"
)

// Projection is the set of tags kept in each result record.
type Projection map[string]struct{}

// NewProjection returns a projection holding tags.
func NewProjection(tags ...string) Projection {
	p := make(Projection, len(tags))
	for _, t := range tags {
		p[t] = struct{}{}
	}
	return p
}

// Add inserts tag.
func (p Projection) Add(tag string) {
	p[tag] = struct{}{}
}

// Has reports whether tag is projected.
func (p Projection) Has(tag string) bool {
	_, ok := p[tag]
	return ok
}

// Tags returns the projected tags in ascending order.
func (p Projection) Tags() []string {
	tags := make([]string, 0, len(p))
	for t := range p {
		tags = append(tags, t)
	}
	sort.Strings(tags)
	return tags
}

// matchKind is the comparison family a VR falls into.
type matchKind int

const (
	matchText matchKind = iota
	matchPersonName
	matchRange
)

func kindOf(vr dictionary.VR) matchKind {
	switch vr {
	case dictionary.PN:
		return matchPersonName
	case dictionary.DA, dictionary.TM, dictionary.DT:
		return matchRange
	}
	return matchText
}

// Translate converts name→pattern filters into an index filter and the attribute projection.
//
// Keys that do not resolve to a tag are dropped. The projection starts from required, gains
// the level's key tag and every resolved filter tag. Sub-filters are combined with And in
// ascending tag order; no filters yields an empty And that matches everything.
func Translate(dict *dictionary.Dictionary, level models.Level, filters map[string]string, required []string) (filter.Filter, Projection, error) {
	proj := NewProjection(required...)
	if key := level.KeyTag(); key != "" {
		proj.Add(key)
	}

	names := make([]string, 0, len(filters))
	for name := range filters {
		names = append(names, name)
	}
	sort.Strings(names)

	// A name and its tag may both be given; the one sorting last wins.
	resolved := make(map[string]string, len(filters))
	for _, name := range names {
		tag, ok := dict.Resolve(name)
		if !ok {
			continue
		}
		resolved[tag] = filters[name]
	}
	tags := make([]string, 0, len(resolved))
	for tag := range resolved {
		tags = append(tags, tag)
	}
	sort.Strings(tags)

	and := make(filter.And, 0, len(tags))
	for _, tag := range tags {
		proj.Add(tag)
		f, err := subFilter(dict, tag, resolved[tag])
		if err != nil {
			return nil, nil, err
		}
		and = append(and, f)
	}
	return and, proj, nil
}

func subFilter(dict *dictionary.Dictionary, tag, pattern string) (filter.Filter, error) {
	// No index field aggregates modalities, so match the per-series modality instead.
	if tag == dictionary.ModalitiesInStudy {
		return filter.NewRegex(dictionary.Modality, "", pattern)
	}
	vr, err := dict.ValueRepresentation(tag)
	if err != nil {
		return nil, err
	}
	switch kindOf(vr) {
	case matchPersonName:
		return filter.NewRegex(tag, filter.ComponentAlphabetic, strings.ReplaceAll(pattern, "*", ".*"))
	case matchRange:
		bounds := strings.Split(pattern, "-")
		r := &filter.Range{Tag: tag, Lower: bounds[0]}
		if len(bounds) > 1 {
			r.Upper = bounds[1]
		}
		return r, nil
	default:
		return filter.NewRegex(tag, "", pattern)
	}
}
