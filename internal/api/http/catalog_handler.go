package http

import (
	"net/http"
	"strconv"
	"strings"

	"rechtent-backend/internal/domain"
	"rechtent-backend/internal/service"

	"github.com/gorilla/mux"
)

type CatalogHandler struct {
	catalogSvc service.CatalogService
}

func NewCatalogHandler(catalogSvc service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogSvc: catalogSvc}
}

func pathID(r *http.Request, name string) (int32, bool) {
	raw := mux.Vars(r)[name]
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || id < 1 {
		return 0, false
	}
	return int32(id), true
}

func (h *CatalogHandler) ListTypes(w http.ResponseWriter, r *http.Request) {
	types, err := h.catalogSvc.ListTypes(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"types": types})
}

func (h *CatalogHandler) ListBrands(w http.ResponseWriter, r *http.Request) {
	typeID, ok := pathID(r, "type_id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid type id")
		return
	}
	brands, err := h.catalogSvc.ListBrands(r.Context(), typeID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"brands": brands})
}

// ListProducts serves the category-scoped listing; brand/price filters
// and the sort key come in as query parameters.
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	typeID, ok := pathID(r, "type_id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid type id")
		return
	}

	q := r.URL.Query()
	query := service.CatalogQuery{Sort: q.Get("sort")}
	if brands := q.Get("brands"); brands != "" {
		for _, b := range strings.Split(brands, ",") {
			if b = strings.TrimSpace(b); b != "" {
				query.Brands = append(query.Brands, b)
			}
		}
	}
	if v := q.Get("min_price"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			query.MinPrice = n
		}
	}
	if v := q.Get("max_price"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			query.MaxPrice = n
		}
	}

	products, err := h.catalogSvc.ListProducts(r.Context(), typeID, query)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if products == nil {
		products = []domain.Product{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"products": products})
}

func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid product id")
		return
	}
	product, quotes, err := h.catalogSvc.GetProduct(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"product":  product,
		"packages": quotes,
	})
}
