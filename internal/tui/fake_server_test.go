package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-invoice/internal/adapter"
	"github.com/MKhiriev/go-invoice/models"
)

var _ adapter.ServerAdapter = (*fakeServer)(nil)

var errNotStubbed = errors.New("not stubbed")

// fakeServer is a function-field adapter.ServerAdapter. Unset functions
// return errNotStubbed.
type fakeServer struct {
	token string

	registerFn  func(ctx context.Context, req models.RegisterRequest) (models.User, error)
	loginFn     func(ctx context.Context, creds models.Credentials) (models.User, error)
	listFn      func(ctx context.Context) ([]models.Invoice, error)
	createFn    func(ctx context.Context, items []models.LineItem) (models.Invoice, error)
	getFn       func(ctx context.Context, id string) (models.Invoice, error)
	updateFn    func(ctx context.Context, id string, upd models.InvoiceUpdate) (models.Invoice, error)
	setStatusFn func(ctx context.Context, id string, status models.InvoiceStatus) (models.Invoice, error)
	deleteFn    func(ctx context.Context, id string) error
	statsFn     func(ctx context.Context) (models.InvoiceSummary, error)
}

func (f *fakeServer) SetToken(token string) { f.token = token }
func (f *fakeServer) Token() string         { return f.token }

func (f *fakeServer) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	if f.registerFn == nil {
		return models.User{}, errNotStubbed
	}
	return f.registerFn(ctx, req)
}

func (f *fakeServer) Login(ctx context.Context, creds models.Credentials) (models.User, error) {
	if f.loginFn == nil {
		return models.User{}, errNotStubbed
	}
	return f.loginFn(ctx, creds)
}

func (f *fakeServer) ListInvoices(ctx context.Context) ([]models.Invoice, error) {
	if f.listFn == nil {
		return nil, errNotStubbed
	}
	return f.listFn(ctx)
}

func (f *fakeServer) CreateInvoice(ctx context.Context, items []models.LineItem) (models.Invoice, error) {
	if f.createFn == nil {
		return models.Invoice{}, errNotStubbed
	}
	return f.createFn(ctx, items)
}

func (f *fakeServer) GetInvoice(ctx context.Context, id string) (models.Invoice, error) {
	if f.getFn == nil {
		return models.Invoice{}, errNotStubbed
	}
	return f.getFn(ctx, id)
}

func (f *fakeServer) UpdateInvoice(ctx context.Context, id string, upd models.InvoiceUpdate) (models.Invoice, error) {
	if f.updateFn == nil {
		return models.Invoice{}, errNotStubbed
	}
	return f.updateFn(ctx, id, upd)
}

func (f *fakeServer) SetInvoiceStatus(ctx context.Context, id string, status models.InvoiceStatus) (models.Invoice, error) {
	if f.setStatusFn == nil {
		return models.Invoice{}, errNotStubbed
	}
	return f.setStatusFn(ctx, id, status)
}

func (f *fakeServer) DeleteInvoice(ctx context.Context, id string) error {
	if f.deleteFn == nil {
		return errNotStubbed
	}
	return f.deleteFn(ctx, id)
}

func (f *fakeServer) InvoiceStats(ctx context.Context) (models.InvoiceSummary, error) {
	if f.statsFn == nil {
		return models.InvoiceSummary{}, errNotStubbed
	}
	return f.statsFn(ctx)
}

func (f *fakeServer) ServerVersion(ctx context.Context) (string, error) {
	return "test", nil
}
