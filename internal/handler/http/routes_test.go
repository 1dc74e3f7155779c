package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-invoice/internal/service"
	"github.com/MKhiriev/go-invoice/models"
)

func okInvoiceService() *mockInvoiceService {
	invoice := models.Invoice{ID: "inv-1", OwnerID: testOwnerID, Status: models.StatusPending}
	return &mockInvoiceService{
		createFn: func(context.Context, string, []models.LineItem) (models.Invoice, error) { return invoice, nil },
		listFn:   func(context.Context, string) ([]models.Invoice, error) { return []models.Invoice{invoice}, nil },
		getFn:    func(context.Context, string, string) (models.Invoice, error) { return invoice, nil },
		updateFn: func(context.Context, string, string, models.InvoiceUpdate) (models.Invoice, error) {
			return invoice, nil
		},
		setStatusFn: func(context.Context, string, string, models.InvoiceStatus) (models.Invoice, error) {
			return invoice, nil
		},
		deleteFn:  func(context.Context, string, string) error { return nil },
		summaryFn: func(context.Context, string) (models.InvoiceSummary, error) { return models.InvoiceSummary{}, nil },
	}
}

func okAuthService() *mockAuthService {
	user := models.User{UserID: testOwnerID, Name: "A", Email: "a@x.com"}
	return &mockAuthService{
		registerUserFn: func(context.Context, models.RegisterRequest) (models.User, error) { return user, nil },
		loginFn:        func(context.Context, models.Credentials) (models.User, error) { return user, nil },
	}
}

func TestRoutes(t *testing.T) {
	h := newTestHandler(t, &service.Services{
		AuthService:    okAuthService(),
		InvoiceService: okInvoiceService(),
	})
	router := h.Init()

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		withToken  bool
		wantStatus int
	}{
		{name: "signup", method: http.MethodPost, path: "/api/auth/signup", body: `{}`, wantStatus: http.StatusCreated},
		{name: "login", method: http.MethodPost, path: "/api/auth/login", body: `{}`, wantStatus: http.StatusOK},
		{name: "version", method: http.MethodGet, path: "/api/version", wantStatus: http.StatusOK},
		{name: "health", method: http.MethodGet, path: "/api/health", wantStatus: http.StatusOK},
		{name: "metrics", method: http.MethodGet, path: "/metrics", wantStatus: http.StatusOK},
		{name: "list invoices", method: http.MethodGet, path: "/api/invoices", withToken: true, wantStatus: http.StatusOK},
		{name: "create invoice", method: http.MethodPost, path: "/api/invoices", body: `{"items":[]}`, withToken: true, wantStatus: http.StatusCreated},
		{name: "invoice stats", method: http.MethodGet, path: "/api/invoices/stats", withToken: true, wantStatus: http.StatusOK},
		{name: "get invoice", method: http.MethodGet, path: "/api/invoices/inv-1", withToken: true, wantStatus: http.StatusOK},
		{name: "update invoice", method: http.MethodPut, path: "/api/invoices/inv-1", body: `{}`, withToken: true, wantStatus: http.StatusOK},
		{name: "delete invoice", method: http.MethodDelete, path: "/api/invoices/inv-1", withToken: true, wantStatus: http.StatusOK},
		{name: "set status", method: http.MethodPatch, path: "/api/invoices/inv-1/status", body: `{"status":"Paid"}`, withToken: true, wantStatus: http.StatusOK},
		{name: "invoices without token", method: http.MethodGet, path: "/api/invoices", wantStatus: http.StatusUnauthorized},
		{name: "unknown route", method: http.MethodGet, path: "/api/unknown", wantStatus: http.StatusNotFound},
		{name: "unknown root route", method: http.MethodGet, path: "/nothing-here", wantStatus: http.StatusNotFound},
		{name: "wrong method", method: http.MethodPatch, path: "/api/version", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			if tt.withToken {
				req.Header.Set("Authorization", "Bearer "+testToken)
			}
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestRoutes_NotFoundBody(t *testing.T) {
	router := newTestHandler(t, &service.Services{}).Init()

	for _, req := range []*http.Request{
		httptest.NewRequest(http.MethodGet, "/api/unknown", nil),
		httptest.NewRequest(http.MethodDelete, "/api/auth/login", nil),
	} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

		var resp models.ErrorResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, string(service.KindNotFound), resp.Kind)
		assert.Equal(t, ErrRouteNotFound.Error(), resp.Message)
	}
}
