package filter

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Raw holds a loosely-typed JSON scalar. Upstream catalogs are not strict about
// types, so an address may arrive as a number or a rating as a string.
type Raw struct {
	v any
}

func RawOf(v any) Raw {
	return Raw{v: v}
}

func (r Raw) Value() any {
	return r.v
}

func (r Raw) IsZero() bool {
	return r.v == nil
}

// Text returns the value when it is a string.
func (r Raw) Text() (string, bool) {
	s, ok := r.v.(string)
	return s, ok
}

// Number coerces numbers and numeric strings to float64. NaN and infinities
// are not numbers here.
func (r Raw) Number() (float64, bool) {
	var f float64
	switch n := r.v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int64:
		f = float64(n)
	case json.Number:
		v, err := n.Float64()
		if err != nil {
			return 0, false
		}
		f = v
	case string:
		v, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, false
		}
		f = v
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func (r Raw) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.v)
}

func (r *Raw) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		r.v = nil
		return nil
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	r.v = v
	return nil
}

// RawFrom wraps an optional typed column value; nil becomes null.
func RawFrom[T string | float64 | int64](p *T) Raw {
	if p == nil {
		return Raw{}
	}
	return Raw{v: *p}
}
