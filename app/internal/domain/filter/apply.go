package filter

import (
	"strings"

	"golang.org/x/text/cases"
)

// Apply returns the entities that match every active criterion of s, in their
// original order. Malformed entities are excluded, never reported; an empty or
// nil input yields an empty slice.
func Apply(entities []Entity, categories []Category, s State) []Entity {
	out := make([]Entity, 0, len(entities))
	if len(entities) == 0 {
		return out
	}
	m := newMatcher(s)
	for i := range entities {
		if m.safeMatch(&entities[i]) {
			out = append(out, entities[i])
		}
	}
	return out
}

type matcher struct {
	state  State
	fold   cases.Caser
	needle string
}

func newMatcher(s State) *matcher {
	m := &matcher{state: s, fold: cases.Fold()}
	if s.Search != "" {
		m.needle = m.fold.String(s.Search)
	}
	return m
}

func (m *matcher) safeMatch(e *Entity) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	return m.match(e)
}

func (m *matcher) match(e *Entity) bool {
	s := m.state

	if s.Category != nil {
		if e.CategoryID == nil || *e.CategoryID != *s.Category {
			return false
		}
	}

	if m.needle != "" {
		if !strings.Contains(m.fold.String(e.Name), m.needle) &&
			!strings.Contains(m.fold.String(e.Description), m.needle) {
			return false
		}
	}

	if s.HasLocation() {
		loc, ok := ParseLocation(e.Address)
		if !ok {
			return false
		}
		if s.State != nil && loc.State != *s.State {
			return false
		}
		if s.City != nil && loc.City != *s.City {
			return false
		}
	}

	if s.Rating != nil {
		rating, ok := ratingOf(e)
		if !ok || rating < float64(*s.Rating) {
			return false
		}
	}

	if s.HasPriceRange() {
		price, ok := e.Price.Number()
		if !ok {
			return false
		}
		if s.MinPrice != nil && price < *s.MinPrice {
			return false
		}
		if s.MaxPrice != nil && price > *s.MaxPrice {
			return false
		}
	}

	return true
}

// ratingOf treats a missing rating as 0 and reports false for a value that is
// present but not numeric.
func ratingOf(e *Entity) (float64, bool) {
	if e.Rating.IsZero() {
		return 0, true
	}
	return e.Rating.Number()
}
