package filter

import (
	"net/url"
	"strconv"
	"strings"
)

// Encode renders the state as a flat query string without the leading "?".
// Fields are emitted in a fixed order and empty fields are omitted.
func Encode(s State) string {
	var b strings.Builder
	for _, k := range stateKeys {
		v, ok := fieldValue(s, k)
		if !ok {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(string(k)))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(v))
	}
	return b.String()
}

// Decode parses a query string produced by Encode. Unknown keys are ignored and
// numeric fields that fail to parse are left unset. Ratings are clamped and a
// city without a state is dropped.
func Decode(raw string) State {
	values, err := url.ParseQuery(strings.TrimPrefix(strings.TrimSpace(raw), "?"))
	if err != nil && len(values) == 0 {
		return Default()
	}
	return FromValues(values)
}

// FromValues builds a state from already-parsed query values, such as an
// incoming request's URL query.
func FromValues(values url.Values) State {
	var s State
	s.Search = values.Get(string(KeySearch))

	if v := values.Get(string(KeyCategory)); v != "" {
		if id, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64); err == nil {
			s.Category = &id
		}
	}
	if v := strings.TrimSpace(values.Get(string(KeyState))); v != "" {
		s.State = &v
		if c := strings.TrimSpace(values.Get(string(KeyCity))); c != "" {
			s.City = &c
		}
	}
	if v := values.Get(string(KeyRating)); v != "" {
		if r, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			r = ClampRating(r)
			s.Rating = &r
		}
	}
	if v := values.Get(string(KeyMinPrice)); v != "" {
		if f, ok := parsePrice(strings.TrimSpace(v)); ok {
			s.MinPrice = &f
		}
	}
	if v := values.Get(string(KeyMaxPrice)); v != "" {
		if f, ok := parsePrice(strings.TrimSpace(v)); ok {
			s.MaxPrice = &f
		}
	}
	return s
}

func fieldValue(s State, k Key) (string, bool) {
	switch k {
	case KeySearch:
		return s.Search, s.Search != ""
	case KeyCategory:
		if s.Category != nil {
			return strconv.FormatInt(*s.Category, 10), true
		}
	case KeyState:
		if s.State != nil && *s.State != "" {
			return *s.State, true
		}
	case KeyCity:
		if s.City != nil && *s.City != "" {
			return *s.City, true
		}
	case KeyRating:
		if s.Rating != nil {
			return strconv.Itoa(*s.Rating), true
		}
	case KeyMinPrice:
		if s.MinPrice != nil {
			return strconv.FormatFloat(*s.MinPrice, 'f', -1, 64), true
		}
	case KeyMaxPrice:
		if s.MaxPrice != nil {
			return strconv.FormatFloat(*s.MaxPrice, 'f', -1, 64), true
		}
	}
	return "", false
}
