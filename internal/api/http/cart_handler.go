package http

import (
	"net/http"

	"rechtent-backend/internal/service"
)

// cartIDHeader carries the anonymous cart identifier. It is issued on the
// first add and echoed back on every cart response.
const cartIDHeader = "X-Cart-ID"

type CartHandler struct {
	cartSvc service.CartService
}

func NewCartHandler(cartSvc service.CartService) *CartHandler {
	return &CartHandler{cartSvc: cartSvc}
}

func (h *CartHandler) respondView(w http.ResponseWriter, status int, view *service.CartView) {
	w.Header().Set(cartIDHeader, view.Cart.ID)
	writeJSON(w, status, view)
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	cartID := r.Header.Get(cartIDHeader)
	if cartID == "" {
		// No cart yet: an empty view, not an error.
		writeJSON(w, http.StatusOK, map[string]any{"items": []any{}, "totals": map[string]any{"item_count": 0}})
		return
	}
	view, err := h.cartSvc.GetCart(r.Context(), cartID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	h.respondView(w, http.StatusOK, view)
}

func (h *CartHandler) GetCartCount(w http.ResponseWriter, r *http.Request) {
	count, err := h.cartSvc.GetCartCount(r.Context(), r.Header.Get(cartIDHeader))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int32{"count": count})
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ProductID     int32  `json:"product_id"`
		Quantity      int32  `json:"quantity"`
		StartDate     string `json:"start_date"`
		EndDate       string `json:"end_date"`
		DurationLabel string `json:"duration_label"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	view, err := h.cartSvc.AddItem(r.Context(), r.Header.Get(cartIDHeader), userIDFrom(r), service.AddItemInput{
		ProductID:     req.ProductID,
		Quantity:      req.Quantity,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		DurationLabel: req.DurationLabel,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	h.respondView(w, http.StatusCreated, view)
}

// UpdateItem handles quantity and/or date edits on one line item. The
// mutation persists before the refreshed cart is returned; the client
// never shows unconfirmed state.
func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	itemID, ok := pathID(r, "item_id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid item id")
		return
	}
	cartID := r.Header.Get(cartIDHeader)

	var req struct {
		Quantity  *int32  `json:"quantity,omitempty"`
		StartDate *string `json:"start_date,omitempty"`
		EndDate   *string `json:"end_date,omitempty"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	var view *service.CartView
	var err error
	switch {
	case req.StartDate != nil && req.EndDate != nil:
		view, err = h.cartSvc.UpdateDates(r.Context(), cartID, itemID, *req.StartDate, *req.EndDate)
		if err == nil && req.Quantity != nil {
			view, err = h.cartSvc.UpdateQuantity(r.Context(), cartID, itemID, *req.Quantity)
		}
	case req.Quantity != nil:
		view, err = h.cartSvc.UpdateQuantity(r.Context(), cartID, itemID, *req.Quantity)
	default:
		writeError(w, http.StatusBadRequest, "nothing to update")
		return
	}
	if err != nil {
		writeServiceError(w, err)
		return
	}
	h.respondView(w, http.StatusOK, view)
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	itemID, ok := pathID(r, "item_id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid item id")
		return
	}
	view, err := h.cartSvc.RemoveItem(r.Context(), r.Header.Get(cartIDHeader), itemID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	h.respondView(w, http.StatusOK, view)
}

func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	if err := h.cartSvc.ClearCart(r.Context(), r.Header.Get(cartIDHeader)); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "cleared"})
}

func (h *CartHandler) ApplyPromo(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Code string `json:"code"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	view, err := h.cartSvc.ApplyPromo(r.Context(), r.Header.Get(cartIDHeader), req.Code)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	h.respondView(w, http.StatusOK, view)
}
