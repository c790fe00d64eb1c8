package http

import (
	"net/http"
	"strconv"

	"rechtent-backend/internal/domain"
	"rechtent-backend/internal/service"
)

type OrderHandler struct {
	orderSvc        service.OrderService
	defaultPageSize int32
}

func NewOrderHandler(orderSvc service.OrderService, defaultPageSize int32) *OrderHandler {
	return &OrderHandler{orderSvc: orderSvc, defaultPageSize: defaultPageSize}
}

func (h *OrderHandler) pagination(r *http.Request) (int32, int32) {
	page := int32(1)
	pageSize := h.defaultPageSize
	if v, err := strconv.ParseInt(r.URL.Query().Get("page"), 10, 32); err == nil && v >= 1 {
		page = int32(v)
	}
	if v, err := strconv.ParseInt(r.URL.Query().Get("page_size"), 10, 32); err == nil && v >= 1 && v <= 100 {
		pageSize = int32(v)
	}
	return page, pageSize
}

func (h *OrderHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r)
	var req struct {
		Name    string `json:"name"`
		Phone   string `json:"phone"`
		Address string `json:"address"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" || req.Phone == "" || req.Address == "" {
		writeError(w, http.StatusBadRequest, "shipping name, phone and address are required")
		return
	}

	order, err := h.orderSvc.Checkout(r.Context(), claims.UserID, r.Header.Get(cartIDHeader), service.ShippingInfo{
		Name:    req.Name,
		Phone:   req.Phone,
		Address: req.Address,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"order": order})
}

func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r)
	page, pageSize := h.pagination(r)
	orders, total, err := h.orderSvc.ListOrders(r.Context(), claims.UserID, page, pageSize)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if orders == nil {
		orders = []domain.Order{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"orders": orders, "total": total, "page": page})
}

func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r)
	orderID, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid order id")
		return
	}
	order, err := h.orderSvc.GetOrder(r.Context(), claims.UserID, orderID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"order": order})
}

// Admin endpoints.

func (h *OrderHandler) AdminListOrders(w http.ResponseWriter, r *http.Request) {
	page, pageSize := h.pagination(r)
	orders, total, err := h.orderSvc.ListAllOrders(r.Context(), r.URL.Query().Get("status"), page, pageSize)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if orders == nil {
		orders = []domain.Order{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"orders": orders, "total": total, "page": page})
}

func (h *OrderHandler) AdminUpdateStatus(w http.ResponseWriter, r *http.Request) {
	orderID, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid order id")
		return
	}
	var req struct {
		Status string `json:"status"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.orderSvc.UpdateOrderStatus(r.Context(), orderID, domain.OrderStatus(req.Status)); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": req.Status})
}
