package filter

// View is the derived, presentation-ready result of a filter pass.
type View struct {
	Items         []Entity      `json:"items"`
	LocationIndex LocationIndex `json:"location_index"`
	Chips         []Chip        `json:"chips"`
}

// NewView filters and sorts entities against s. The location index is built
// from the whole collection, not the filtered items.
func NewView(entities []Entity, categories []Category, s State, by SortBy, locale string) View {
	items := Apply(entities, categories, s)
	Sort(items, by, locale)
	return View{
		Items:         items,
		LocationIndex: BuildLocationIndex(entities),
		Chips:         ActiveChips(s, categories),
	}
}
