// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Invoice is a billable document owned by exactly one [User].
//
// TotalAmount is derived from Items and is recomputed by the service layer
// whenever the item sequence changes; callers can never set it directly.
type Invoice struct {
	// ID is the opaque unique identifier (UUID v7) of the invoice.
	ID string `json:"id"`

	// OwnerID references the [User] who created the invoice. It is set once
	// at creation and never reassigned.
	OwnerID string `json:"owner"`

	// Items is the ordered, non-empty sequence of billable entries.
	Items LineItems `json:"items"`

	// TotalAmount equals the sum of Quantity*Price over Items, accumulated
	// in sequence order.
	TotalAmount float64 `json:"totalAmount"`

	// Status is one of the four [InvoiceStatus] values.
	Status InvoiceStatus `json:"status"`

	// DueDate defaults to the creation time plus the configured due period.
	DueDate time.Time `json:"dueDate"`

	// CreatedAt and UpdatedAt are maintained by the storage layer.
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the Invoice model.
func (i Invoice) TableName() string {
	return "invoices"
}

// InvoiceUpdate carries the optional parts of a full-document invoice update.
//
// A nil Items leaves the item sequence untouched; a non-nil (even empty)
// slice replaces it entirely. A nil Status leaves the status untouched.
type InvoiceUpdate struct {
	Items  []LineItem     `json:"items,omitempty"`
	Status *InvoiceStatus `json:"status,omitempty"`
}

// InvoiceSummary aggregates the invoices of a single owner.
type InvoiceSummary struct {
	Count       int                             `json:"count"`
	TotalAmount float64                         `json:"totalAmount"`
	ByStatus    map[InvoiceStatus]StatusSummary `json:"byStatus"`
}

// StatusSummary is the per-status slice of an [InvoiceSummary].
type StatusSummary struct {
	Count       int     `json:"count"`
	TotalAmount float64 `json:"totalAmount"`
}
