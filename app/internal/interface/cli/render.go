package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"example.com/solar-directory/app/internal/domain/filter"
)

const nameWidth = 36

func RenderView(w io.Writer, v filter.View, fetchFailed bool) error {
	if fetchFailed {
		if _, err := fmt.Fprintln(w, "warning: catalog fetch failed, results may be incomplete"); err != nil {
			return err
		}
	}
	if err := RenderChips(w, v.Chips); err != nil {
		return err
	}

	t := NewTable("ID", "NAME", "CITY", "STATE", "RATING", "PRICE")
	for _, e := range v.Items {
		loc, _ := filter.ParseLocation(e.Address)
		t.AddRow(
			strconv.FormatInt(e.ID, 10),
			Truncate(e.Name, nameWidth),
			loc.City,
			loc.State,
			formatNumber(e.Rating, 1),
			formatNumber(e.Price, 2),
		)
	}
	if err := t.Render(w); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%d result(s)\n", t.Len()); err != nil {
		return err
	}
	return RenderLocations(w, v.LocationIndex)
}

func RenderChips(w io.Writer, chips []filter.Chip) error {
	if len(chips) == 0 {
		_, err := fmt.Fprintln(w, "filters: none")
		return err
	}
	labels := make([]string, 0, len(chips))
	for _, c := range chips {
		labels = append(labels, fmt.Sprintf("%s: %s", c.Key, c.Label))
	}
	_, err := fmt.Fprintf(w, "filters: %s\n", strings.Join(labels, ", "))
	return err
}

func RenderLocations(w io.Writer, idx filter.LocationIndex) error {
	states := idx.States()
	if len(states) == 0 {
		return nil
	}
	t := NewTable("STATE", "CITIES")
	for _, s := range states {
		t.AddRow(s, strings.Join(idx.Cities(s), ", "))
	}
	return t.Render(w)
}

func formatNumber(r filter.Raw, prec int) string {
	if r.IsZero() {
		return "-"
	}
	n, ok := r.Number()
	if !ok {
		if s, ok := r.Text(); ok {
			return s
		}
		return "?"
	}
	return strconv.FormatFloat(n, 'f', prec, 64)
}
