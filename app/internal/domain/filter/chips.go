package filter

import "fmt"

// Chip describes one active filter for display. Value is the encoded form that
// Set accepts, so a chip can be used to deselect its filter.
type Chip struct {
	Key   Key    `json:"key"`
	Label string `json:"label"`
	Value string `json:"value"`
}

func ActiveChips(s State, categories []Category) []Chip {
	chips := make([]Chip, 0, len(stateKeys))
	for _, k := range stateKeys {
		v, ok := fieldValue(s, k)
		if !ok {
			continue
		}
		chips = append(chips, Chip{Key: k, Label: chipLabel(k, v, s, categories), Value: v})
	}
	return chips
}

func chipLabel(k Key, v string, s State, categories []Category) string {
	switch k {
	case KeySearch:
		return fmt.Sprintf("%q", v)
	case KeyCategory:
		for _, c := range categories {
			if c.ID == *s.Category {
				return c.Name
			}
		}
		return "#" + v
	case KeyRating:
		return v + "+ stars"
	case KeyMinPrice:
		return "from " + v
	case KeyMaxPrice:
		return "up to " + v
	default:
		return v
	}
}
