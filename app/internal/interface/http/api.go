package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	domcategory "example.com/solar-directory/app/internal/domain/category"
	domcompany "example.com/solar-directory/app/internal/domain/company"
	"example.com/solar-directory/app/internal/domain/filter"
	domproduct "example.com/solar-directory/app/internal/domain/product"
	domview "example.com/solar-directory/app/internal/domain/view"
	categoryuc "example.com/solar-directory/app/internal/usecase/category"
	companyuc "example.com/solar-directory/app/internal/usecase/company"
	directoryuc "example.com/solar-directory/app/internal/usecase/directory"
	productuc "example.com/solar-directory/app/internal/usecase/product"
	viewsuc "example.com/solar-directory/app/internal/usecase/views"
)

type API struct {
	directorySvc *directoryuc.Service
	categorySvc  *categoryuc.Service
	companySvc   *companyuc.Service
	productSvc   *productuc.Service
	viewSvc      *viewsuc.Service
	validator    *validator.Validate
	logger       *zap.Logger
}

type Dependencies struct {
	DirectoryService *directoryuc.Service
	CategoryService  *categoryuc.Service
	CompanyService   *companyuc.Service
	ProductService   *productuc.Service
	ViewService      *viewsuc.Service
	Logger           *zap.Logger
}

func NewAPI(deps Dependencies) *API {
	validate := validator.New()
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &API{
		directorySvc: deps.DirectoryService,
		categorySvc:  deps.CategoryService,
		companySvc:   deps.CompanyService,
		productSvc:   deps.ProductService,
		viewSvc:      deps.ViewService,
		validator:    validate,
		logger:       logger,
	}
}

func (a *API) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(a.requestLogger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.AllowContentType("application/json", "text/plain"))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/companies", func(rr chi.Router) {
			rr.Get("/", a.handleBrowse(domview.KindCompanies))
			rr.Get("/{id}", a.handleGetCompany)
			rr.Get("/{id}/products", a.handleListCompanyProducts)
		})

		r.Route("/products", func(rr chi.Router) {
			rr.Get("/", a.handleBrowse(domview.KindProducts))
			rr.Get("/{id}", a.handleGetProduct)
		})

		r.Route("/categories", func(rr chi.Router) {
			rr.Get("/", a.handleListCategories)
			rr.Get("/{id}", a.handleGetCategory)
		})

		r.Route("/views", func(rr chi.Router) {
			rr.Post("/", a.handleSaveView)
			rr.Get("/{id}", a.handleGetView)
		})

		r.Route("/share", func(rr chi.Router) {
			rr.Post("/", a.handleShare)
			rr.Get("/{token}", a.handleResolveShare)
		})
	})

	return r
}

func (a *API) decodeAndValidate(r *http.Request, dst any) error {
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return err
	}
	return a.validator.Struct(dst)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

type errorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

func respondError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func parseIDParam(r *http.Request, key string) (int64, error) {
	idStr := chi.URLParam(r, key)
	return strconv.ParseInt(idStr, 10, 64)
}

func mapEntity(e filter.Entity) map[string]any {
	return map[string]any{
		"id":          e.ID,
		"name":        e.Name,
		"description": e.Description,
		"address":     e.Address.Value(),
		"category_id": e.CategoryID,
		"rating":      e.Rating.Value(),
		"price":       e.Price.Value(),
	}
}

func mapCategory(c *domcategory.Category) map[string]any {
	return map[string]any{
		"id":          c.ID,
		"name":        c.Name,
		"slug":        c.Slug,
		"description": c.Description,
		"featured":    c.Featured,
		"status":      c.Status,
	}
}

func mapCompany(c *domcompany.Company) map[string]any {
	return map[string]any{
		"id":          c.ID,
		"name":        c.Name,
		"description": c.Description,
		"address":     c.Address,
		"category_id": c.CategoryID,
		"rating":      c.Rating,
		"website":     c.Website,
		"phone":       c.Phone,
		"is_active":   c.IsActive,
	}
}

func mapProduct(p *domproduct.Product) map[string]any {
	return map[string]any{
		"id":          p.ID,
		"company_id":  p.CompanyID,
		"name":        p.Name,
		"description": p.Description,
		"price":       p.Price,
		"rating":      p.Rating,
		"category_id": p.CategoryID,
		"address":     p.Address,
		"is_active":   p.IsActive,
	}
}

func mapResult(res *directoryuc.Result) map[string]any {
	items := make([]map[string]any, 0, len(res.View.Items))
	for _, e := range res.View.Items {
		items = append(items, mapEntity(e))
	}
	return map[string]any{
		"kind":           res.Kind,
		"data":           items,
		"total":          len(items),
		"query":          res.Query,
		"chips":          res.View.Chips,
		"location_index": res.View.LocationIndex,
		"fetch_failed":   res.FetchFailed,
	}
}

func handleDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domcompany.ErrCompanyNotFound),
		errors.Is(err, domproduct.ErrProductNotFound),
		errors.Is(err, domcategory.ErrCategoryNotFound),
		errors.Is(err, domview.ErrViewNotFound):
		respondError(w, http.StatusNotFound, err)
	case errors.Is(err, domview.ErrInvalidKind),
		errors.Is(err, domview.ErrInvalidShareToken),
		errors.Is(err, domcategory.ErrCategoryInvalidStatus):
		respondError(w, http.StatusUnprocessableEntity, err)
	default:
		respondError(w, http.StatusInternalServerError, err)
	}
}
