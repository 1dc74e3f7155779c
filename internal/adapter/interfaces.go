// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the go-invoice server.
//
// The primary abstraction is [ServerAdapter], which decouples the terminal
// client from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-invoice/models"
)

// ServerAdapter defines transport-agnostic communication with the go-invoice
// server. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel values
// defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all subsequent
	// authenticated requests. An empty token logs the client out.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register creates an account. On success the returned token is stored
	// via SetToken.
	Register(ctx context.Context, request models.RegisterRequest) (models.User, error)

	// Login authenticates with email and password. On success the returned
	// token is stored via SetToken.
	Login(ctx context.Context, credentials models.Credentials) (models.User, error)

	// ListInvoices returns the caller's invoices, newest first.
	ListInvoices(ctx context.Context) ([]models.Invoice, error)

	// CreateInvoice creates an invoice from items.
	CreateInvoice(ctx context.Context, items []models.LineItem) (models.Invoice, error)

	// GetInvoice fetches a single invoice by id.
	GetInvoice(ctx context.Context, invoiceID string) (models.Invoice, error)

	// UpdateInvoice replaces the items and/or status of an invoice.
	UpdateInvoice(ctx context.Context, invoiceID string, update models.InvoiceUpdate) (models.Invoice, error)

	// SetInvoiceStatus changes only the status of an invoice.
	SetInvoiceStatus(ctx context.Context, invoiceID string, status models.InvoiceStatus) (models.Invoice, error)

	// DeleteInvoice removes an invoice permanently.
	DeleteInvoice(ctx context.Context, invoiceID string) error

	// InvoiceStats returns per-status totals of the caller's invoices.
	InvoiceStats(ctx context.Context) (models.InvoiceSummary, error)

	// ServerVersion returns the version reported by the server.
	ServerVersion(ctx context.Context) (string, error)
}
