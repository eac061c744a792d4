package filter

import (
	"math"
	"strconv"
	"strings"
)

type Key string

const (
	KeySearch   Key = "search"
	KeyCategory Key = "category"
	KeyState    Key = "state"
	KeyCity     Key = "city"
	KeyRating   Key = "rating"
	KeyMinPrice Key = "min_price"
	KeyMaxPrice Key = "max_price"
	KeyClearAll Key = "clearAll"
)

// stateKeys is the canonical field order used by Encode and ActiveChips.
var stateKeys = []Key{KeySearch, KeyCategory, KeyState, KeyCity, KeyRating, KeyMinPrice, KeyMaxPrice}

func ParseKey(s string) (Key, bool) {
	k := Key(strings.TrimSpace(s))
	if k == KeyClearAll {
		return k, true
	}
	for _, known := range stateKeys {
		if k == known {
			return k, true
		}
	}
	return "", false
}

const (
	MinRating = 1
	MaxRating = 5
)

// State is the set of user-selected filter criteria. A nil field means the
// dimension is not filtered on.
type State struct {
	Search   string   `json:"search,omitempty"`
	Category *int64   `json:"category,omitempty"`
	State    *string  `json:"state,omitempty"`
	City     *string  `json:"city,omitempty"`
	Rating   *int     `json:"rating,omitempty"`
	MinPrice *float64 `json:"min_price,omitempty"`
	MaxPrice *float64 `json:"max_price,omitempty"`
}

func Default() State {
	return State{}
}

func (s State) IsZero() bool {
	return s.Search == "" && s.Category == nil && s.State == nil && s.City == nil &&
		s.Rating == nil && s.MinPrice == nil && s.MaxPrice == nil
}

func (s State) HasLocation() bool {
	return s.State != nil || s.City != nil
}

func (s State) HasPriceRange() bool {
	return s.MinPrice != nil || s.MaxPrice != nil
}

// Set returns the state that results from selecting value for key. The input
// state is not modified.
//
// Selecting the value that is already current deselects it. Changing the state
// always clears the city. Ratings are clamped into [MinRating, MaxRating].
// An empty value, or a numeric value that does not parse, clears the key.
func Set(s State, key Key, value string) State {
	if key == KeyClearAll {
		return Default()
	}
	next := s
	value = strings.TrimSpace(value)

	switch key {
	case KeySearch:
		if value == s.Search {
			next.Search = ""
		} else {
			next.Search = value
		}
	case KeyCategory:
		id, err := strconv.ParseInt(value, 10, 64)
		if err != nil || (s.Category != nil && *s.Category == id) {
			next.Category = nil
		} else {
			next.Category = &id
		}
	case KeyState:
		if value == "" || (s.State != nil && *s.State == value) {
			next.State = nil
		} else {
			next.State = &value
		}
		if !sameString(next.State, s.State) {
			next.City = nil
		}
	case KeyCity:
		if value == "" || (s.City != nil && *s.City == value) {
			next.City = nil
		} else {
			next.City = &value
		}
	case KeyRating:
		r, err := strconv.Atoi(value)
		if err != nil || (s.Rating != nil && *s.Rating == r) {
			next.Rating = nil
		} else {
			r = ClampRating(r)
			next.Rating = &r
		}
	case KeyMinPrice:
		next.MinPrice = togglePrice(s.MinPrice, value)
	case KeyMaxPrice:
		next.MaxPrice = togglePrice(s.MaxPrice, value)
	}
	return next
}

func ClampRating(r int) int {
	if r < MinRating {
		return MinRating
	}
	if r > MaxRating {
		return MaxRating
	}
	return r
}

func parsePrice(value string) (float64, bool) {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func togglePrice(current *float64, value string) *float64 {
	f, ok := parsePrice(value)
	if !ok || (current != nil && *current == f) {
		return nil
	}
	return &f
}

func sameString(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
