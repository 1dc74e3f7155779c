package store

import (
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-invoice/models"
)

const (
	usersTable    = "users"
	invoicesTable = "invoices"
)

var (
	userColumns = []string{
		"user_id",
		"name",
		"email",
		"password_hash",
		"created_at",
	}

	invoiceColumns = []string{
		"invoice_id",
		"user_id",
		"items",
		"total_amount",
		"status",
		"due_date",
		"created_at",
		"updated_at",
	}
)

func (db *DB) buildInsertUserQuery(user models.User) (string, []any, error) {
	query, args, err := db.builder.
		Insert(usersTable).
		Columns(userColumns...).
		Values(user.UserID, user.Name, user.Email, user.PasswordHash, user.CreatedAt).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func (db *DB) buildSelectUserByEmailQuery(email string) (string, []any, error) {
	query, args, err := db.builder.
		Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"email": email}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func (db *DB) buildInsertInvoiceQuery(invoice models.Invoice) (string, []any, error) {
	query, args, err := db.builder.
		Insert(invoicesTable).
		Columns(invoiceColumns...).
		Values(
			invoice.ID,
			invoice.OwnerID,
			invoice.Items,
			invoice.TotalAmount,
			string(invoice.Status),
			invoice.DueDate,
			invoice.CreatedAt,
			invoice.UpdatedAt,
		).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func (db *DB) buildSelectInvoiceByIDQuery(invoiceID string) (string, []any, error) {
	query, args, err := db.builder.
		Select(invoiceColumns...).
		From(invoicesTable).
		Where(sq.Eq{"invoice_id": invoiceID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildSelectInvoicesByOwnerQuery orders newest first; invoice_id breaks ties
// between invoices created within the same microsecond (UUID v7 is time-ordered).
func (db *DB) buildSelectInvoicesByOwnerQuery(ownerID string) (string, []any, error) {
	query, args, err := db.builder.
		Select(invoiceColumns...).
		From(invoicesTable).
		Where(sq.Eq{"user_id": ownerID}).
		OrderBy("created_at DESC", "invoice_id DESC").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildUpdateInvoiceQuery replaces the mutable part of the document. owner,
// due date and creation time are never written.
func (db *DB) buildUpdateInvoiceQuery(invoice models.Invoice) (string, []any, error) {
	query, args, err := db.builder.
		Update(invoicesTable).
		Set("items", invoice.Items).
		Set("total_amount", invoice.TotalAmount).
		Set("status", string(invoice.Status)).
		Set("updated_at", invoice.UpdatedAt).
		Where(sq.Eq{"invoice_id": invoice.ID}).
		Where(sq.Eq{"user_id": invoice.OwnerID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func (db *DB) buildDeleteInvoiceQuery(ownerID, invoiceID string) (string, []any, error) {
	query, args, err := db.builder.
		Delete(invoicesTable).
		Where(sq.Eq{"invoice_id": invoiceID}).
		Where(sq.Eq{"user_id": ownerID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func (db *DB) buildMarkOverdueQuery(now time.Time) (string, []any, error) {
	query, args, err := db.builder.
		Update(invoicesTable).
		Set("status", string(models.StatusOverdue)).
		Set("updated_at", now).
		Where(sq.Eq{"status": string(models.StatusPending)}).
		Where(sq.Lt{"due_date": now}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
