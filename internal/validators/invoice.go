package validators

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/MKhiriev/go-invoice/models"
)

const (
	FieldItems  = "items"
	FieldStatus = "status"
)

// InvoiceValidator implements the Validator interface for invoice payloads:
// item sequences, single items, statuses and full-document updates.
//
// Item errors name the first offending item by its 1-based position.
type InvoiceValidator struct {
}

// NewInvoiceValidator constructs a new InvoiceValidator
// and returns it as the Validator interface.
func NewInvoiceValidator() Validator {
	return &InvoiceValidator{}
}

func (v *InvoiceValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case []models.LineItem:
		return v.validateItems(value)
	case models.LineItems:
		return v.validateItems(value)

	case models.LineItem:
		return v.validateItem(value)
	case *models.LineItem:
		return v.validateItem(*value)

	case models.InvoiceStatus:
		return v.validateStatus(value)
	case *models.InvoiceStatus:
		return v.validateStatus(*value)

	case models.CreateInvoiceRequest:
		return v.validateItems(value.Items)
	case *models.CreateInvoiceRequest:
		return v.validateItems(value.Items)

	case models.InvoiceUpdate:
		return v.validateInvoiceUpdate(value, fields...)
	case *models.InvoiceUpdate:
		return v.validateInvoiceUpdate(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *InvoiceValidator) validateItems(items []models.LineItem) error {
	if len(items) == 0 {
		return ErrEmptyItems
	}

	for i, item := range items {
		if err := v.validateItem(item); err != nil {
			return fmt.Errorf("item %d: %w", i+1, err)
		}
	}

	return nil
}

func (v *InvoiceValidator) validateItem(item models.LineItem) error {
	if strings.TrimSpace(item.Description) == "" {
		return ErrEmptyDescription
	}
	if item.Quantity < 1 {
		return ErrInvalidQuantity
	}
	if item.Price < 0 || math.IsNaN(item.Price) || math.IsInf(item.Price, 0) {
		return ErrInvalidPrice
	}
	return nil
}

func (v *InvoiceValidator) validateStatus(status models.InvoiceStatus) error {
	if !status.IsValid() {
		return ErrInvalidStatus
	}
	return nil
}

// validateInvoiceUpdate checks only the parts that are present. An update
// with neither part is valid and leaves the document unchanged.
func (v *InvoiceValidator) validateInvoiceUpdate(update models.InvoiceUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldItems, FieldStatus}
	}

	for _, f := range fields {
		switch f {
		case FieldItems:
			if update.Items != nil {
				if err := v.validateItems(update.Items); err != nil {
					return err
				}
			}
		case FieldStatus:
			if update.Status != nil {
				if err := v.validateStatus(*update.Status); err != nil {
					return err
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
