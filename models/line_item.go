package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
)

// LineItem is one billable entry of an [Invoice]. It has no identity of its
// own and lives only inside its parent invoice.
type LineItem struct {
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

// Amount returns Quantity*Price.
func (l LineItem) Amount() float64 {
	return float64(l.Quantity) * l.Price
}

// LineItems is the ordered item sequence of an invoice. It is persisted as a
// single JSON document so that replacing the whole sequence is one write.
type LineItems []LineItem

// Total sums the amounts of all items in sequence order.
func (items LineItems) Total() float64 {
	var total float64
	for _, item := range items {
		total += item.Amount()
	}
	return total
}

// Value implements [driver.Valuer].
func (items LineItems) Value() (driver.Value, error) {
	if items == nil {
		items = LineItems{}
	}

	b, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("marshal line items: %w", err)
	}

	return string(b), nil
}

// Scan implements [sql.Scanner].
func (items *LineItems) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*items = LineItems{}
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return errors.New("unsupported line items source type")
	}

	var decoded LineItems
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return fmt.Errorf("unmarshal line items: %w", err)
	}

	*items = decoded
	return nil
}
