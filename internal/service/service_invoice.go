// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/MKhiriev/go-invoice/internal/config"
	"github.com/MKhiriev/go-invoice/internal/logger"
	"github.com/MKhiriev/go-invoice/internal/store"
	"github.com/MKhiriev/go-invoice/internal/utils"
	"github.com/MKhiriev/go-invoice/internal/validators"
	"github.com/MKhiriev/go-invoice/models"
)

// invoiceService is the concrete implementation of InvoiceService and the
// only writer of invoices.
type invoiceService struct {
	invoiceRepository store.InvoiceRepository
	idGenerator       IDGenerator
	validator         validators.Validator

	// dueIn is added to the creation time to obtain the due date.
	dueIn time.Duration
	now   func() time.Time

	logger *logger.Logger
}

func NewInvoiceService(invoiceRepository store.InvoiceRepository, idGenerator IDGenerator, cfg config.App, logger *logger.Logger) InvoiceService {
	return &invoiceService{
		invoiceRepository: invoiceRepository,
		idGenerator:       idGenerator,
		validator:         validators.NewInvoiceValidator(),
		dueIn:             cfg.InvoiceDueIn,
		now:               time.Now,
		logger:            logger,
	}
}

// CreateInvoice validates items, derives the total and persists a new
// Pending invoice owned by ownerID.
func (s *invoiceService) CreateInvoice(ctx context.Context, ownerID string, items []models.LineItem) (models.Invoice, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, items); err != nil {
		log.Debug().Err(err).Str("user_id", ownerID).Msg("invalid invoice items")
		return models.Invoice{}, validationError(err)
	}

	normalized := normalizeItems(items)
	createdAt := s.now().UTC().Truncate(time.Microsecond)
	invoice := models.Invoice{
		ID:          s.idGenerator.Generate(),
		OwnerID:     ownerID,
		Items:       normalized,
		TotalAmount: normalized.Total(),
		Status:      models.StatusPending,
		DueDate:     createdAt.Add(s.dueIn),
		CreatedAt:   createdAt,
	}

	created, err := s.invoiceRepository.CreateInvoice(ctx, invoice)
	if err != nil {
		log.Err(err).Str("user_id", ownerID).Msg("invoice creation failed")
		return models.Invoice{}, storageError(err)
	}

	return created, nil
}

// ListInvoices returns the owner's invoices, newest first.
func (s *invoiceService) ListInvoices(ctx context.Context, ownerID string) ([]models.Invoice, error) {
	invoices, err := s.invoiceRepository.FindInvoicesByOwner(ctx, ownerID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("user_id", ownerID).Msg("listing invoices failed")
		return nil, storageError(err)
	}

	return invoices, nil
}

func (s *invoiceService) GetInvoice(ctx context.Context, ownerID, invoiceID string) (models.Invoice, error) {
	return s.findOwnedInvoice(ctx, ownerID, invoiceID)
}

// UpdateInvoice replaces the item sequence (recomputing the total) and/or
// the status. Absent parts are left untouched.
func (s *invoiceService) UpdateInvoice(ctx context.Context, ownerID, invoiceID string, update models.InvoiceUpdate) (models.Invoice, error) {
	log := logger.FromContext(ctx)

	invoice, err := s.findOwnedInvoice(ctx, ownerID, invoiceID)
	if err != nil {
		return models.Invoice{}, err
	}

	if err = s.validator.Validate(ctx, update); err != nil {
		log.Debug().Err(err).Str("invoice_id", invoiceID).Msg("invalid invoice update")
		return models.Invoice{}, validationError(err)
	}

	if update.Items != nil {
		invoice.Items = normalizeItems(update.Items)
		invoice.TotalAmount = invoice.Items.Total()
	}
	if update.Status != nil {
		invoice.Status = *update.Status
	}

	return s.save(ctx, invoice)
}

// SetInvoiceStatus changes only the status. Any status may follow any other.
func (s *invoiceService) SetInvoiceStatus(ctx context.Context, ownerID, invoiceID string, status models.InvoiceStatus) (models.Invoice, error) {
	invoice, err := s.findOwnedInvoice(ctx, ownerID, invoiceID)
	if err != nil {
		return models.Invoice{}, err
	}

	if err = s.validator.Validate(ctx, status); err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("invoice_id", invoiceID).Msg("invalid invoice status")
		return models.Invoice{}, validationError(err)
	}

	invoice.Status = status
	return s.save(ctx, invoice)
}

// DeleteInvoice removes the invoice permanently.
func (s *invoiceService) DeleteInvoice(ctx context.Context, ownerID, invoiceID string) error {
	if _, err := s.findOwnedInvoice(ctx, ownerID, invoiceID); err != nil {
		return err
	}

	err := s.invoiceRepository.DeleteInvoice(ctx, ownerID, invoiceID)
	if errors.Is(err, store.ErrInvoiceNotFound) {
		// deleted concurrently
		return withCause(ErrInvoiceNotFound, err)
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("invoice_id", invoiceID).Msg("invoice deletion failed")
		return storageError(err)
	}

	return nil
}

// Summary counts the owner's invoices and sums their totals, overall and
// per status. Every status is present in ByStatus, zero-valued if unused.
func (s *invoiceService) Summary(ctx context.Context, ownerID string) (models.InvoiceSummary, error) {
	invoices, err := s.ListInvoices(ctx, ownerID)
	if err != nil {
		return models.InvoiceSummary{}, err
	}

	summary := models.InvoiceSummary{
		ByStatus: make(map[models.InvoiceStatus]models.StatusSummary, len(models.InvoiceStatuses)),
	}
	for _, status := range models.InvoiceStatuses {
		summary.ByStatus[status] = models.StatusSummary{}
	}

	for _, invoice := range invoices {
		summary.Count++
		summary.TotalAmount += invoice.TotalAmount

		byStatus := summary.ByStatus[invoice.Status]
		byStatus.Count++
		byStatus.TotalAmount += invoice.TotalAmount
		summary.ByStatus[invoice.Status] = byStatus
	}

	return summary, nil
}

func (s *invoiceService) MarkOverdue(ctx context.Context, now time.Time) (int64, error) {
	marked, err := s.invoiceRepository.MarkOverdue(ctx, now)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("marking overdue invoices failed")
		return 0, storageError(err)
	}

	return marked, nil
}

// findOwnedInvoice loads the invoice and checks that ownerID owns it.
// Ids that are not well-formed UUIDs cannot exist and yield not found
// without a round trip.
func (s *invoiceService) findOwnedInvoice(ctx context.Context, ownerID, invoiceID string) (models.Invoice, error) {
	log := logger.FromContext(ctx)

	if !utils.IsValidUUID(invoiceID) {
		return models.Invoice{}, ErrInvoiceNotFound
	}

	invoice, err := s.invoiceRepository.FindInvoiceByID(ctx, invoiceID)
	if errors.Is(err, store.ErrInvoiceNotFound) {
		return models.Invoice{}, withCause(ErrInvoiceNotFound, err)
	}
	if err != nil {
		log.Err(err).Str("invoice_id", invoiceID).Msg("invoice lookup failed")
		return models.Invoice{}, storageError(err)
	}

	if invoice.OwnerID != ownerID {
		log.Warn().
			Str("invoice_id", invoiceID).
			Str("user_id", ownerID).
			Msg("access to a foreign invoice denied")
		return models.Invoice{}, ErrInvoiceForbidden
	}

	return invoice, nil
}

func (s *invoiceService) save(ctx context.Context, invoice models.Invoice) (models.Invoice, error) {
	updated, err := s.invoiceRepository.UpdateInvoice(ctx, invoice)
	if errors.Is(err, store.ErrInvoiceNotFound) {
		return models.Invoice{}, withCause(ErrInvoiceNotFound, err)
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("invoice_id", invoice.ID).Msg("invoice update failed")
		return models.Invoice{}, storageError(err)
	}

	return updated, nil
}

// normalizeItems copies items with trimmed descriptions.
func normalizeItems(items []models.LineItem) models.LineItems {
	normalized := make(models.LineItems, len(items))
	for i, item := range items {
		item.Description = strings.TrimSpace(item.Description)
		normalized[i] = item
	}
	return normalized
}
