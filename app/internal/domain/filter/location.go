package filter

import (
	"encoding/json"
	"slices"
	"strings"
)

type Location struct {
	State string `json:"state"`
	City  string `json:"city"`
}

// ParseLocation reads a free-text "...,city,state" address. Segments are
// trimmed and empty ones dropped; the last segment is the state and the one
// before it the city. It reports false when fewer than two segments remain or
// the address is not a string.
func ParseLocation(address Raw) (Location, bool) {
	text, ok := address.Text()
	if !ok {
		return Location{}, false
	}
	parts := strings.Split(text, ",")
	segments := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			segments = append(segments, p)
		}
	}
	if len(segments) < 2 {
		return Location{}, false
	}
	return Location{
		State: segments[len(segments)-1],
		City:  segments[len(segments)-2],
	}, true
}

// LocationIndex maps a state to the set of cities seen for it.
type LocationIndex map[string]map[string]struct{}

// BuildLocationIndex is rebuilt from scratch for each entity collection.
// Entities whose address cannot be parsed are skipped.
func BuildLocationIndex(entities []Entity) LocationIndex {
	idx := LocationIndex{}
	for i := range entities {
		loc, ok := safeLocation(&entities[i])
		if !ok {
			continue
		}
		cities, exists := idx[loc.State]
		if !exists {
			cities = map[string]struct{}{}
			idx[loc.State] = cities
		}
		cities[loc.City] = struct{}{}
	}
	return idx
}

func safeLocation(e *Entity) (loc Location, ok bool) {
	defer func() {
		if recover() != nil {
			loc, ok = Location{}, false
		}
	}()
	return ParseLocation(e.Address)
}

func (idx LocationIndex) Has(state, city string) bool {
	cities, ok := idx[state]
	if !ok {
		return false
	}
	_, ok = cities[city]
	return ok
}

// States returns the indexed states in alphabetical order.
func (idx LocationIndex) States() []string {
	states := make([]string, 0, len(idx))
	for s := range idx {
		states = append(states, s)
	}
	slices.Sort(states)
	return states
}

// Cities returns the cities of state in alphabetical order.
func (idx LocationIndex) Cities(state string) []string {
	cities := make([]string, 0, len(idx[state]))
	for c := range idx[state] {
		cities = append(cities, c)
	}
	slices.Sort(cities)
	return cities
}

func (idx LocationIndex) MarshalJSON() ([]byte, error) {
	out := make(map[string][]string, len(idx))
	for _, s := range idx.States() {
		out[s] = idx.Cities(s)
	}
	return json.Marshal(out)
}
