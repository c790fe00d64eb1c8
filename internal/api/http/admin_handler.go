package http

import (
	"net/http"
	"strconv"
	"time"

	"rechtent-backend/internal/domain"
	"rechtent-backend/internal/service"
)

// AdminHandler covers catalog management plus user and promo administration.
// Every route behind it is wrapped by RequireAdmin.
type AdminHandler struct {
	catalogSvc      service.CatalogService
	adminSvc        service.AdminService
	defaultPageSize int32
}

func NewAdminHandler(catalogSvc service.CatalogService, adminSvc service.AdminService, defaultPageSize int32) *AdminHandler {
	return &AdminHandler{catalogSvc: catalogSvc, adminSvc: adminSvc, defaultPageSize: defaultPageSize}
}

type productRequest struct {
	TypeID      int32    `json:"type_id"`
	BrandID     int32    `json:"brand_id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	PricePerDay int64    `json:"price_per_day"`
	ActualPrice int64    `json:"actual_price"`
	Verified    bool     `json:"verified"`
	Available   bool     `json:"available"`
	Images      []string `json:"images"`
	Packages    []struct {
		Label string `json:"label"`
		Price int64  `json:"price"`
	} `json:"packages"`
}

func (req *productRequest) validate() string {
	switch {
	case req.TypeID < 1:
		return "type_id is required"
	case req.BrandID < 1:
		return "brand_id is required"
	case req.Name == "":
		return "name is required"
	case req.PricePerDay < 1:
		return "price_per_day must be positive"
	case req.ActualPrice < 0:
		return "actual_price must not be negative"
	}
	for _, p := range req.Packages {
		if p.Label == "" || p.Price < 1 {
			return "every package needs a label and a positive price"
		}
	}
	return ""
}

func (h *AdminHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req productRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if msg := req.validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	product := &domain.Product{
		TypeID:      req.TypeID,
		BrandID:     req.BrandID,
		Name:        req.Name,
		Description: req.Description,
		PricePerDay: req.PricePerDay,
		ActualPrice: req.ActualPrice,
		Verified:    req.Verified,
		Available:   req.Available,
		Images:      req.Images,
	}
	packages := make([]domain.DurationPackage, 0, len(req.Packages))
	for _, p := range req.Packages {
		packages = append(packages, domain.DurationPackage{Label: p.Label, Price: p.Price})
	}

	if err := h.catalogSvc.CreateProduct(r.Context(), product, packages); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"product": product})
}

func (h *AdminHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid product id")
		return
	}
	var req productRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if msg := req.validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	product := &domain.Product{
		ID:          id,
		TypeID:      req.TypeID,
		BrandID:     req.BrandID,
		Name:        req.Name,
		Description: req.Description,
		PricePerDay: req.PricePerDay,
		ActualPrice: req.ActualPrice,
		Verified:    req.Verified,
		Available:   req.Available,
		Images:      req.Images,
	}
	if err := h.catalogSvc.UpdateProduct(r.Context(), product); err != nil {
		writeServiceError(w, err)
		return
	}

	// Packages replace wholesale when present in the payload.
	if req.Packages != nil {
		packages := make([]domain.DurationPackage, 0, len(req.Packages))
		for _, p := range req.Packages {
			packages = append(packages, domain.DurationPackage{ProductID: id, Label: p.Label, Price: p.Price})
		}
		if err := h.catalogSvc.SetPackages(r.Context(), id, packages); err != nil {
			writeServiceError(w, err)
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]any{"product": product})
}

// ReplacePackages swaps a product's duration packages wholesale. An empty
// list clears them, leaving only per-day pricing.
func (h *AdminHandler) ReplacePackages(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid product id")
		return
	}
	var req struct {
		Packages []struct {
			Label string `json:"label"`
			Price int64  `json:"price"`
		} `json:"packages"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	packages := make([]domain.DurationPackage, 0, len(req.Packages))
	for _, p := range req.Packages {
		if p.Label == "" || p.Price < 1 {
			writeError(w, http.StatusBadRequest, "every package needs a label and a positive price")
			return
		}
		packages = append(packages, domain.DurationPackage{ProductID: id, Label: p.Label, Price: p.Price})
	}

	if err := h.catalogSvc.SetPackages(r.Context(), id, packages); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"packages": packages})
}

func (h *AdminHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid product id")
		return
	}
	if err := h.catalogSvc.DeleteProduct(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	page := int32(1)
	pageSize := h.defaultPageSize
	if v, err := strconv.ParseInt(r.URL.Query().Get("page"), 10, 32); err == nil && v >= 1 {
		page = int32(v)
	}
	if v, err := strconv.ParseInt(r.URL.Query().Get("page_size"), 10, 32); err == nil && v >= 1 && v <= 100 {
		pageSize = int32(v)
	}

	users, total, err := h.adminSvc.ListUsers(r.Context(), page, pageSize)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if users == nil {
		users = []domain.User{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"users": users, "total": total, "page": page})
}

func (h *AdminHandler) SetUserRole(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}
	var req struct {
		Role string `json:"role"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.adminSvc.SetUserRole(r.Context(), userID, domain.UserRole(req.Role)); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"role": req.Role})
}

func (h *AdminHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}
	claims := claimsFrom(r)
	if claims.UserID == userID {
		writeError(w, http.StatusBadRequest, "cannot delete your own account")
		return
	}
	if err := h.adminSvc.DeleteUser(r.Context(), userID); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *AdminHandler) CreatePromo(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Code            string `json:"code"`
		DiscountPercent int    `json:"discount_percent"`
		ExpiresOn       string `json:"expires_on"` // yyyy-mm-dd, optional
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	promo := &domain.PromoCode{
		Code:            req.Code,
		DiscountPercent: req.DiscountPercent,
		Active:          true,
	}
	if req.ExpiresOn != "" {
		t, err := time.Parse("2006-01-02", req.ExpiresOn)
		if err != nil {
			writeError(w, http.StatusBadRequest, "expires_on must be formatted yyyy-mm-dd")
			return
		}
		promo.ExpiresOn = &t
	}

	if err := h.adminSvc.CreatePromo(r.Context(), promo); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"promo": promo})
}

func (h *AdminHandler) ListPromos(w http.ResponseWriter, r *http.Request) {
	promos, err := h.adminSvc.ListPromos(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if promos == nil {
		promos = []domain.PromoCode{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"promos": promos})
}

func (h *AdminHandler) SetPromoActive(w http.ResponseWriter, r *http.Request) {
	promoID, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid promo id")
		return
	}
	var req struct {
		Active bool `json:"active"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.adminSvc.SetPromoActive(r.Context(), promoID, req.Active); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"active": req.Active})
}
