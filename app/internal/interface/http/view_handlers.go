package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"example.com/solar-directory/app/internal/domain/filter"
	domview "example.com/solar-directory/app/internal/domain/view"
)

type viewRequest struct {
	Kind  string `json:"kind" validate:"required,oneof=companies products"`
	Query string `json:"query" validate:"max=2048"`
}

func (a *API) handleSaveView(w http.ResponseWriter, r *http.Request) {
	var req viewRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}
	v, err := a.viewSvc.Save(r.Context(), domview.Kind(req.Kind), req.Query)
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"id":         v.ID,
		"kind":       v.Kind,
		"query":      v.Query,
		"created_at": v.CreatedAt,
	})
}

// handleGetView runs the saved state against fresh collections.
func (a *API) handleGetView(w http.ResponseWriter, r *http.Request) {
	res, err := a.viewSvc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleDomainError(w, err)
		return
	}
	a.browse(w, r, res.Kind, res.State, filter.ParseSortBy(r.URL.Query().Get("sort")), map[string]any{"id": res.ID})
}

func (a *API) handleShare(w http.ResponseWriter, r *http.Request) {
	var req viewRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}
	token, err := a.viewSvc.Share(domview.Kind(req.Kind), req.Query)
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"token": token})
}

func (a *API) handleResolveShare(w http.ResponseWriter, r *http.Request) {
	res, err := a.viewSvc.Resolve(chi.URLParam(r, "token"))
	if err != nil {
		handleDomainError(w, err)
		return
	}
	a.browse(w, r, res.Kind, res.State, filter.ParseSortBy(r.URL.Query().Get("sort")), nil)
}
