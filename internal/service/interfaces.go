package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-invoice/models"
)

// AuthService is the identity gate: signup, login and stateless token
// verification. All failures are *Error values.
type AuthService interface {
	RegisterUser(ctx context.Context, request models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, credentials models.Credentials) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// InvoiceService manages the invoice lifecycle. The owner always arrives as
// an explicit argument; id-addressed operations check existence, then
// ownership, then the payload, and only then write.
type InvoiceService interface {
	CreateInvoice(ctx context.Context, ownerID string, items []models.LineItem) (models.Invoice, error)
	ListInvoices(ctx context.Context, ownerID string) ([]models.Invoice, error)
	GetInvoice(ctx context.Context, ownerID, invoiceID string) (models.Invoice, error)
	UpdateInvoice(ctx context.Context, ownerID, invoiceID string, update models.InvoiceUpdate) (models.Invoice, error)
	SetInvoiceStatus(ctx context.Context, ownerID, invoiceID string, status models.InvoiceStatus) (models.Invoice, error)
	DeleteInvoice(ctx context.Context, ownerID, invoiceID string) error

	// Summary aggregates the owner's invoices by status.
	Summary(ctx context.Context, ownerID string) (models.InvoiceSummary, error)

	// MarkOverdue switches Pending invoices due before now to Overdue.
	MarkOverdue(ctx context.Context, now time.Time) (int64, error)
}

// HealthService reports whether the service can reach its storage.
type HealthService interface {
	Check(ctx context.Context) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// IDGenerator produces identifiers for new users and invoices.
type IDGenerator interface {
	Generate() string
}
