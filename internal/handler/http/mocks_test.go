package http

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-invoice/internal/config"
	"github.com/MKhiriev/go-invoice/internal/logger"
	"github.com/MKhiriev/go-invoice/internal/service"
	"github.com/MKhiriev/go-invoice/models"
)

// ─────────────────────────────────────────────
// Mock AuthService
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	registerUserFn func(ctx context.Context, request models.RegisterRequest) (models.User, error)
	loginFn        func(ctx context.Context, credentials models.Credentials) (models.User, error)
	createTokenFn  func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn   func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, request models.RegisterRequest) (models.User, error) {
	return m.registerUserFn(ctx, request)
}

func (m *mockAuthService) Login(ctx context.Context, credentials models.Credentials) (models.User, error) {
	return m.loginFn(ctx, credentials)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	if m.createTokenFn == nil {
		return models.Token{SignedString: "signed-" + user.UserID, UserID: user.UserID}, nil
	}
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if m.parseTokenFn == nil {
		if tokenString == testToken {
			return models.Token{UserID: testOwnerID}, nil
		}
		return models.Token{}, service.ErrTokenIsExpiredOrInvalid
	}
	return m.parseTokenFn(ctx, tokenString)
}

// ─────────────────────────────────────────────
// Mock InvoiceService
// ─────────────────────────────────────────────

type mockInvoiceService struct {
	createFn    func(ctx context.Context, ownerID string, items []models.LineItem) (models.Invoice, error)
	listFn      func(ctx context.Context, ownerID string) ([]models.Invoice, error)
	getFn       func(ctx context.Context, ownerID, invoiceID string) (models.Invoice, error)
	updateFn    func(ctx context.Context, ownerID, invoiceID string, update models.InvoiceUpdate) (models.Invoice, error)
	setStatusFn func(ctx context.Context, ownerID, invoiceID string, status models.InvoiceStatus) (models.Invoice, error)
	deleteFn    func(ctx context.Context, ownerID, invoiceID string) error
	summaryFn   func(ctx context.Context, ownerID string) (models.InvoiceSummary, error)
}

func (m *mockInvoiceService) CreateInvoice(ctx context.Context, ownerID string, items []models.LineItem) (models.Invoice, error) {
	return m.createFn(ctx, ownerID, items)
}

func (m *mockInvoiceService) ListInvoices(ctx context.Context, ownerID string) ([]models.Invoice, error) {
	return m.listFn(ctx, ownerID)
}

func (m *mockInvoiceService) GetInvoice(ctx context.Context, ownerID, invoiceID string) (models.Invoice, error) {
	return m.getFn(ctx, ownerID, invoiceID)
}

func (m *mockInvoiceService) UpdateInvoice(ctx context.Context, ownerID, invoiceID string, update models.InvoiceUpdate) (models.Invoice, error) {
	return m.updateFn(ctx, ownerID, invoiceID, update)
}

func (m *mockInvoiceService) SetInvoiceStatus(ctx context.Context, ownerID, invoiceID string, status models.InvoiceStatus) (models.Invoice, error) {
	return m.setStatusFn(ctx, ownerID, invoiceID, status)
}

func (m *mockInvoiceService) DeleteInvoice(ctx context.Context, ownerID, invoiceID string) error {
	return m.deleteFn(ctx, ownerID, invoiceID)
}

func (m *mockInvoiceService) Summary(ctx context.Context, ownerID string) (models.InvoiceSummary, error) {
	return m.summaryFn(ctx, ownerID)
}

func (m *mockInvoiceService) MarkOverdue(context.Context, time.Time) (int64, error) {
	return 0, nil
}

// ─────────────────────────────────────────────
// Mock AppInfoService / HealthService
// ─────────────────────────────────────────────

// mockAppInfoService implements service.AppInfoService for testing.
type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

type mockHealthService struct {
	err error
}

func (m *mockHealthService) Check(context.Context) error {
	return m.err
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

const (
	testToken   = "valid-token"
	testOwnerID = "0190c7a4-5a3c-7d2e-9f10-0000000000a1"
)

// newTestHandler builds a Handler whose unset services are filled with
// harmless mocks.
func newTestHandler(t *testing.T, services *service.Services) *Handler {
	t.Helper()
	if services.AuthService == nil {
		services.AuthService = &mockAuthService{}
	}
	if services.InvoiceService == nil {
		services.InvoiceService = &mockInvoiceService{}
	}
	if services.AppInfoService == nil {
		services.AppInfoService = &mockAppInfoService{version: "test-version"}
	}
	if services.HealthService == nil {
		services.HealthService = &mockHealthService{}
	}

	return NewHandler(services, config.Server{RequestTimeout: 5 * time.Second}, logger.Nop())
}
