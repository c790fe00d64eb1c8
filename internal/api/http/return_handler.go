package http

import (
	"net/http"
	"strconv"

	"rechtent-backend/internal/domain"
	"rechtent-backend/internal/logger"
	"rechtent-backend/internal/service"
)

type ReturnHandler struct {
	returnSvc       service.ReturnService
	maxUploadBytes  int64
	defaultPageSize int32
}

func NewReturnHandler(returnSvc service.ReturnService, maxUploadMB int64, defaultPageSize int32) *ReturnHandler {
	return &ReturnHandler{
		returnSvc:       returnSvc,
		maxUploadBytes:  maxUploadMB << 20,
		defaultPageSize: defaultPageSize,
	}
}

// Submit accepts multipart form data: order_id and bank fields plus one
// or more photo evidence files under the "photos" field.
func (h *ReturnHandler) Submit(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r)

	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}
	defer r.MultipartForm.RemoveAll()

	orderID, err := strconv.ParseInt(r.FormValue("order_id"), 10, 32)
	if err != nil || orderID < 1 {
		writeError(w, http.StatusBadRequest, "invalid order id")
		return
	}

	sub := service.ReturnSubmission{
		OrderID:           int32(orderID),
		BankName:          r.FormValue("bank_name"),
		BankAccountName:   r.FormValue("bank_account_name"),
		BankAccountNumber: r.FormValue("bank_account_number"),
	}

	files := r.MultipartForm.File["photos"]
	for _, header := range files {
		f, err := header.Open()
		if err != nil {
			writeError(w, http.StatusBadRequest, "unreadable photo upload")
			return
		}
		defer f.Close()
		sub.Photos = append(sub.Photos, service.PhotoUpload{
			FileName:    header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Data:        f,
		})
	}

	req, err := h.returnSvc.Submit(r.Context(), claims.UserID, sub)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"return_request": req})
}

func (h *ReturnHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r)
	reqs, err := h.returnSvc.ListMine(r.Context(), claims.UserID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if reqs == nil {
		reqs = []domain.ReturnRequest{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"return_requests": reqs})
}

// Admin endpoints.

func (h *ReturnHandler) AdminList(w http.ResponseWriter, r *http.Request) {
	page := int32(1)
	pageSize := h.defaultPageSize
	if v, err := strconv.ParseInt(r.URL.Query().Get("page"), 10, 32); err == nil && v >= 1 {
		page = int32(v)
	}
	if v, err := strconv.ParseInt(r.URL.Query().Get("page_size"), 10, 32); err == nil && v >= 1 && v <= 100 {
		pageSize = int32(v)
	}

	reqs, total, err := h.returnSvc.ListAll(r.Context(), r.URL.Query().Get("status"), page, pageSize)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	// Resolve evidence photos for the verification view.
	type adminReturn struct {
		domain.ReturnRequest
		PhotoURLs []string `json:"photo_urls"`
	}
	out := make([]adminReturn, 0, len(reqs))
	for i := range reqs {
		urls, err := h.returnSvc.PhotoURLs(r.Context(), &reqs[i])
		if err != nil {
			logger.Error("Failed to resolve photo URLs", "request_id", reqs[i].ID, "error", err)
			urls = nil
		}
		out = append(out, adminReturn{ReturnRequest: reqs[i], PhotoURLs: urls})
	}
	writeJSON(w, http.StatusOK, map[string]any{"return_requests": out, "total": total, "page": page})
}

func (h *ReturnHandler) AdminDecide(w http.ResponseWriter, r *http.Request) {
	requestID, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid return request id")
		return
	}
	var req struct {
		Approve   bool   `json:"approve"`
		AdminNote string `json:"admin_note"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resolved, err := h.returnSvc.Decide(r.Context(), requestID, req.Approve, req.AdminNote)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"return_request": resolved})
}
