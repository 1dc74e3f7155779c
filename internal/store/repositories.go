package store

import (
	"github.com/MKhiriev/go-invoice/internal/logger"
)

// Repositories aggregates every repository backed by a single [DB].
type Repositories struct {
	UserRepository    UserRepository
	InvoiceRepository InvoiceRepository
	Pinger            Pinger
}

func NewRepositories(db *DB, logger *logger.Logger) *Repositories {
	return &Repositories{
		UserRepository:    NewUserRepository(db, logger),
		InvoiceRepository: NewInvoiceRepository(db, logger),
		Pinger:            db,
	}
}
