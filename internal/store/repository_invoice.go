package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-invoice/internal/logger"
	"github.com/MKhiriev/go-invoice/models"
)

// invoiceRepository is the SQL-backed implementation of [InvoiceRepository].
//
// The full item sequence lives in a single JSON column, so replacing items
// and the derived total is one UPDATE.
type invoiceRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewInvoiceRepository constructs an [InvoiceRepository] backed by the
// provided database connection and logger.
func NewInvoiceRepository(db *DB, logger *logger.Logger) InvoiceRepository {
	logger.Debug().Msg("creating invoice repository")
	return &invoiceRepository{
		db:     db,
		logger: logger,
	}
}

// CreateInvoice inserts invoice and returns it with CreatedAt and UpdatedAt
// set. A CreatedAt chosen by the caller is kept so that it matches the due
// date derived from it.
func (r *invoiceRepository) CreateInvoice(ctx context.Context, invoice models.Invoice) (models.Invoice, error) {
	log := logger.FromContext(ctx)

	if invoice.CreatedAt.IsZero() {
		invoice.CreatedAt = r.db.now()
	}
	invoice.UpdatedAt = invoice.CreatedAt

	query, args, err := r.db.buildInsertInvoiceQuery(invoice)
	if err != nil {
		log.Err(err).Str("func", "*invoiceRepository.CreateInvoice").Msg("failed to build query")
		return models.Invoice{}, err
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*invoiceRepository.CreateInvoice").
			Str("user_id", invoice.OwnerID).
			Stringer("error_class", r.db.classify(err)).
			Msg("failed to insert invoice")
		return models.Invoice{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		log.Error().Str("func", "*invoiceRepository.CreateInvoice").Msg("no rows inserted")
		return models.Invoice{}, ErrInvoiceNotSaved
	}

	return invoice, nil
}

// FindInvoiceByID returns the invoice regardless of its owner so that the
// caller can distinguish a missing invoice from a foreign one.
func (r *invoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID string) (models.Invoice, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildSelectInvoiceByIDQuery(invoiceID)
	if err != nil {
		log.Err(err).Str("func", "*invoiceRepository.FindInvoiceByID").Msg("failed to build query")
		return models.Invoice{}, err
	}

	invoice, err := scanInvoice(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Invoice{}, ErrInvoiceNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "*invoiceRepository.FindInvoiceByID").
			Str("invoice_id", invoiceID).
			Msg("failed to scan invoice row")
		return models.Invoice{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return invoice, nil
}

// FindInvoicesByOwner returns the owner's invoices, newest first. An owner
// without invoices gets an empty, non-nil slice.
func (r *invoiceRepository) FindInvoicesByOwner(ctx context.Context, ownerID string) ([]models.Invoice, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildSelectInvoicesByOwnerQuery(ownerID)
	if err != nil {
		log.Err(err).Str("func", "*invoiceRepository.FindInvoicesByOwner").Msg("failed to build query")
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*invoiceRepository.FindInvoicesByOwner").
			Str("user_id", ownerID).
			Stringer("error_class", r.db.classify(err)).
			Msg("failed to execute query for getting user invoices")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	invoices := make([]models.Invoice, 0, 16)
	for rows.Next() {
		invoice, scanErr := scanInvoice(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "*invoiceRepository.FindInvoicesByOwner").
				Str("user_id", ownerID).
				Msg("failed to scan invoice row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		invoices = append(invoices, invoice)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "*invoiceRepository.FindInvoicesByOwner").
			Str("user_id", ownerID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return invoices, nil
}

// UpdateInvoice overwrites items, total and status of the invoice matching
// both invoice.ID and invoice.OwnerID, and bumps UpdatedAt.
func (r *invoiceRepository) UpdateInvoice(ctx context.Context, invoice models.Invoice) (models.Invoice, error) {
	log := logger.FromContext(ctx)

	invoice.UpdatedAt = r.db.now()

	query, args, err := r.db.buildUpdateInvoiceQuery(invoice)
	if err != nil {
		log.Err(err).Str("func", "*invoiceRepository.UpdateInvoice").Msg("failed to build query")
		return models.Invoice{}, err
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*invoiceRepository.UpdateInvoice").
			Str("invoice_id", invoice.ID).
			Stringer("error_class", r.db.classify(err)).
			Msg("failed to update invoice")
		return models.Invoice{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return models.Invoice{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return models.Invoice{}, ErrInvoiceNotFound
	}

	return invoice, nil
}

// DeleteInvoice hard-deletes the invoice matching both ids.
func (r *invoiceRepository) DeleteInvoice(ctx context.Context, ownerID, invoiceID string) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildDeleteInvoiceQuery(ownerID, invoiceID)
	if err != nil {
		log.Err(err).Str("func", "*invoiceRepository.DeleteInvoice").Msg("failed to build query")
		return err
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*invoiceRepository.DeleteInvoice").
			Str("invoice_id", invoiceID).
			Stringer("error_class", r.db.classify(err)).
			Msg("failed to delete invoice")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrInvoiceNotFound
	}

	return nil
}

// MarkOverdue flips Pending invoices whose due date is before now to Overdue.
func (r *invoiceRepository) MarkOverdue(ctx context.Context, now time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildMarkOverdueQuery(now.UTC())
	if err != nil {
		log.Err(err).Str("func", "*invoiceRepository.MarkOverdue").Msg("failed to build query")
		return 0, err
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*invoiceRepository.MarkOverdue").
			Stringer("error_class", r.db.classify(err)).
			Msg("failed to mark overdue invoices")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return affected, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanInvoice(row rowScanner) (models.Invoice, error) {
	var invoice models.Invoice
	err := row.Scan(
		&invoice.ID,
		&invoice.OwnerID,
		&invoice.Items,
		&invoice.TotalAmount,
		&invoice.Status,
		&invoice.DueDate,
		&invoice.CreatedAt,
		&invoice.UpdatedAt,
	)
	return invoice, err
}
