package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"rechtent-backend/internal/security"
	"rechtent-backend/internal/service"

	"github.com/stretchr/testify/assert"
)

func TestWriteServiceError(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"NotFound", service.ErrNotFound, http.StatusNotFound},
		{"CartNotFound", service.ErrCartNotFound, http.StatusNotFound},
		{"InvalidQuantity", service.ErrInvalidQuantity, http.StatusBadRequest},
		{"InvalidStatus", service.ErrInvalidStatus, http.StatusBadRequest},
		{"MissingSignupFields", service.ErrMissingSignupFields, http.StatusBadRequest},
		{"PasswordTooShort", service.ErrPasswordTooShort, http.StatusBadRequest},
		{"MissingBankDetails", service.ErrMissingBankDetails, http.StatusBadRequest},
		{"PromoCodeRequired", service.ErrPromoCodeRequired, http.StatusBadRequest},
		{"InvalidDiscount", service.ErrInvalidDiscount, http.StatusBadRequest},
		{"EmailTaken", service.ErrEmailTaken, http.StatusConflict},
		{"InvalidCredentials", service.ErrInvalidCredentials, http.StatusUnauthorized},
		{"ExpiredToken", security.ErrExpiredToken, http.StatusUnauthorized},
		{"ItemNotInCart", service.ErrItemNotInCart, http.StatusForbidden},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			writeServiceError(rec, tc.err)

			assert.Equal(t, tc.status, rec.Code)

			var body map[string]string
			assert.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
			assert.Equal(t, tc.err.Error(), body["error"])
		})
	}

	// Anything without a sentinel stays an opaque 500.
	t.Run("UnknownErrorIsOpaque", func(t *testing.T) {
		rec := httptest.NewRecorder()
		writeServiceError(rec, errors.New("pq: connection refused"))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)

		var body map[string]string
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
		assert.Equal(t, "internal server error", body["error"])
	})
}
