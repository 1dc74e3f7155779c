package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-invoice/internal/service"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "validation", err: &service.Error{Kind: service.KindValidation, Reason: "bad"}, want: http.StatusBadRequest},
		{name: "conflict", err: service.ErrEmailAlreadyRegistered, want: http.StatusConflict},
		{name: "auth", err: service.ErrInvalidCredentials, want: http.StatusUnauthorized},
		{name: "not found", err: service.ErrInvoiceNotFound, want: http.StatusNotFound},
		{name: "forbidden", err: service.ErrInvoiceForbidden, want: http.StatusForbidden},
		{name: "storage", err: service.ErrStorage, want: http.StatusInternalServerError},
		{name: "wrapped", err: fmt.Errorf("context: %w", service.ErrInvoiceForbidden), want: http.StatusForbidden},
		{name: "plain error", err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}

func TestErrorStatusMap_CoversEveryKind(t *testing.T) {
	for _, kind := range []service.ErrorKind{
		service.KindValidation,
		service.KindConflict,
		service.KindAuth,
		service.KindNotFound,
		service.KindForbidden,
		service.KindStorage,
	} {
		assert.Contains(t, errorStatusMap, kind)
	}
}

func TestWriteServiceError(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	writeServiceError(rec, req, &service.Error{
		Kind:   service.KindStorage,
		Reason: "storage failure",
		Err:    errors.New("dial tcp 10.0.0.1:5432: connection refused"),
	})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"kind":"storage","message":"storage failure"}`, rec.Body.String())
}
