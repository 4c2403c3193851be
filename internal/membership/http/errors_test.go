package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aussiebroadwan/cashbook/internal/membership/service"
	"github.com/aussiebroadwan/cashbook/pkg/cashbooksdk"
	"github.com/stretchr/testify/require"
)

func TestWriteServiceError(t *testing.T) {
	tests := []struct {
		err    error
		status int
		code   string
		desc   string
	}{
		{service.ErrInvalidTarget, http.StatusBadRequest, cashbooksdk.ErrorCodeInvalidTarget, ""},
		{service.ErrExpired, http.StatusGone, cashbooksdk.ErrorCodeExpired, ""},
		{service.ErrAlreadyResolved, http.StatusConflict, cashbooksdk.ErrorCodeAlreadyResolved, ""},
		{service.ErrIsOwner, http.StatusConflict, cashbooksdk.ErrorCodeIsOwner, ""},
		{service.ErrCashbookNotFound, http.StatusNotFound, cashbooksdk.ErrorCodeNotFound, "Cashbook not found."},
		{fmt.Errorf("load: %w", service.ErrBusinessNotFound), http.StatusNotFound, cashbooksdk.ErrorCodeNotFound, "Business not found."},
		{service.ErrForbidden, http.StatusForbidden, cashbooksdk.ErrorCodeForbidden, ""},
		{fmt.Errorf("sendgrid: %w", service.ErrNotificationFailed), http.StatusBadGateway, cashbooksdk.ErrorCodeNotificationFail, ""},
		{errors.New("disk on fire"), http.StatusInternalServerError, cashbooksdk.ErrorCodeServerError, "Internal server error."},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			rec := httptest.NewRecorder()
			writeServiceError(rec, httptest.NewRequest(http.MethodGet, "/", nil), tt.err)

			require.Equal(t, tt.status, rec.Code)
			require.Equal(t, "no-store", rec.Header().Get("Cache-Control"))

			var body cashbooksdk.ErrorResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
			require.Equal(t, tt.code, body.Error)
			require.NotEmpty(t, body.ErrorDescription)
			if tt.desc != "" {
				require.Equal(t, tt.desc, body.ErrorDescription)
			}
		})
	}
}
