package models

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidLevel is returned for a query level other than STUDY, SERIES or IMAGE.
var ErrInvalidLevel = errors.New("invalid query level")

// Level is the information-model level of a query.
type Level string

const (
	LevelStudy  Level = "STUDY"
	LevelSeries Level = "SERIES"
	LevelImage  Level = "IMAGE"
)

// KeyTag returns the unique-identifier tag for the level.
func (l Level) KeyTag() string {
	switch l {
	case LevelStudy:
		return "0020000D"
	case LevelSeries:
		return "0020000E"
	case LevelImage:
		return "00080018"
	}
	return ""
}

// ParseLevel parses a level name, case-insensitively.
func ParseLevel(s string) (Level, error) {
	switch l := Level(strings.ToUpper(strings.TrimSpace(s))); l {
	case LevelStudy, LevelSeries, LevelImage:
		return l, nil
	}
	return "", fmt.Errorf("%w %q: want STUDY, SERIES or IMAGE", ErrInvalidLevel, s)
}

// FindRequest is a structured query against the index.
type FindRequest struct {
	Level      Level             `json:"level"`
	Filters    map[string]string `json:"filters,omitempty"`
	Attributes []string          `json:"attributes,omitempty"`
}

// Validate checks the level and initializes nil maps.
func (r *FindRequest) Validate() error {
	l, err := ParseLevel(string(r.Level))
	if err != nil {
		return err
	}
	r.Level = l
	if r.Filters == nil {
		r.Filters = map[string]string{}
	}
	return nil
}

// FindResponse is the response for a structured query.
type FindResponse struct {
	Level     Level     `json:"level"`
	Results   []Dataset `json:"results"`
	Total     int       `json:"total"`
	QueryTime int64     `json:"query_time_ms"`
}
