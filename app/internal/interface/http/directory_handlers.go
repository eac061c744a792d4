package http

import (
	"net/http"

	"example.com/solar-directory/app/internal/domain/filter"
	domview "example.com/solar-directory/app/internal/domain/view"
	directoryuc "example.com/solar-directory/app/internal/usecase/directory"
)

// handleBrowse serves a filtered view. The query string is an encoded filter
// state plus an optional sort key.
func (a *API) handleBrowse(kind domview.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		a.browse(w, r, kind, filter.FromValues(q), filter.ParseSortBy(q.Get("sort")), nil)
	}
}

// browse writes the view for state. Entries of extra are merged into the
// response body.
func (a *API) browse(w http.ResponseWriter, r *http.Request, kind domview.Kind, state filter.State, by filter.SortBy, extra map[string]any) {
	res, err := a.directorySvc.Browse(r.Context(), directoryuc.BrowseInput{
		Kind:  kind,
		State: state,
		Sort:  by,
	})
	if err != nil {
		handleDomainError(w, err)
		return
	}
	body := mapResult(res)
	for k, v := range extra {
		body[k] = v
	}
	writeJSON(w, http.StatusOK, body)
}
