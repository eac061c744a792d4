package filter

import (
	"cmp"
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

type SortBy string

const (
	SortNone      SortBy = ""
	SortName      SortBy = "name"
	SortRating    SortBy = "rating"
	SortPriceAsc  SortBy = "price_asc"
	SortPriceDesc SortBy = "price_desc"
)

func ParseSortBy(s string) SortBy {
	switch by := SortBy(strings.ToLower(strings.TrimSpace(s))); by {
	case SortName, SortRating, SortPriceAsc, SortPriceDesc:
		return by
	case "price":
		return SortPriceAsc
	default:
		return SortNone
	}
}

// DefaultLocale is used when a caller passes an empty or unknown locale.
const DefaultLocale = "pt-BR"

// Sort orders entities in place and keeps the relative order of equal keys.
// Names compare with the collation rules of locale. Missing ratings count as 0;
// entities without a numeric price go last in both price orders.
func Sort(entities []Entity, by SortBy, locale string) {
	switch by {
	case SortName:
		col := collate.New(parseLocale(locale), collate.IgnoreCase)
		slices.SortStableFunc(entities, func(a, b Entity) int {
			return col.CompareString(a.Name, b.Name)
		})
	case SortRating:
		slices.SortStableFunc(entities, func(a, b Entity) int {
			ra, _ := ratingOf(&a)
			rb, _ := ratingOf(&b)
			return cmp.Compare(rb, ra)
		})
	case SortPriceAsc, SortPriceDesc:
		desc := by == SortPriceDesc
		slices.SortStableFunc(entities, func(a, b Entity) int {
			pa, okA := a.Price.Number()
			pb, okB := b.Price.Number()
			switch {
			case !okA && !okB:
				return 0
			case !okA:
				return 1
			case !okB:
				return -1
			case desc:
				return cmp.Compare(pb, pa)
			default:
				return cmp.Compare(pa, pb)
			}
		})
	}
}

func parseLocale(locale string) language.Tag {
	if tag, err := language.Parse(locale); err == nil {
		return tag
	}
	return language.MustParse(DefaultLocale)
}
