package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"rechtent-backend/internal/logger"
	"rechtent-backend/internal/security"
	"rechtent-backend/internal/service"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("Failed to encode response", "error", err)
	}
}

// writeError emits the one-shot error body; no sub-classification beyond
// the status code and message.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeServiceError maps service-layer failures onto HTTP statuses.
// Unknown errors become an opaque 500 so internals never leak.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound),
		errors.Is(err, service.ErrCartNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrInvalidQuantity),
		errors.Is(err, service.ErrInvalidDateRange),
		errors.Is(err, service.ErrInvalidDate),
		errors.Is(err, service.ErrInvalidPromoCode),
		errors.Is(err, service.ErrEmptyCart),
		errors.Is(err, service.ErrNoPhotoEvidence),
		errors.Is(err, service.ErrOrderNotReturnable),
		errors.Is(err, service.ErrInvalidStatus),
		errors.Is(err, service.ErrMissingSignupFields),
		errors.Is(err, service.ErrPasswordTooShort),
		errors.Is(err, service.ErrMissingBankDetails),
		errors.Is(err, service.ErrPromoCodeRequired),
		errors.Is(err, service.ErrInvalidDiscount),
		errors.Is(err, service.ErrProductUnavailable):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrEmailTaken),
		errors.Is(err, service.ErrAlreadyResolved):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, security.ErrInvalidToken),
		errors.Is(err, security.ErrExpiredToken),
		errors.Is(err, security.ErrWrongTokenType):
		writeError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, service.ErrItemNotInCart),
		errors.Is(err, service.ErrNotOrderOwner):
		writeError(w, http.StatusForbidden, err.Error())
	default:
		logger.Error("Unhandled service error", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func decodeJSON(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}
