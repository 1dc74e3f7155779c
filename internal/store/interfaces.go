package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-invoice/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts.
type UserRepository interface {
	// CreateUser inserts the user in a single statement. A duplicate
	// normalized email yields [ErrEmailAlreadyExists].
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// FindUserByEmail returns [ErrUserNotFound] when no user matches.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

// InvoiceRepository persists invoices. Owner-scoped writes match on both the
// invoice id and the owner id and report [ErrInvoiceNotFound] when nothing
// matched.
type InvoiceRepository interface {
	CreateInvoice(ctx context.Context, invoice models.Invoice) (models.Invoice, error)
	FindInvoiceByID(ctx context.Context, invoiceID string) (models.Invoice, error)
	FindInvoicesByOwner(ctx context.Context, ownerID string) ([]models.Invoice, error)
	UpdateInvoice(ctx context.Context, invoice models.Invoice) (models.Invoice, error)
	DeleteInvoice(ctx context.Context, ownerID, invoiceID string) error
	// MarkOverdue switches every Pending invoice due before now to Overdue
	// and returns the number of affected invoices.
	MarkOverdue(ctx context.Context, now time.Time) (int64, error)
}

// Pinger reports whether the database is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// ErrorClassificator maps driver-specific errors to an [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
