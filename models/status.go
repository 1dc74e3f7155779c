package models

// InvoiceStatus is the lifecycle state of an invoice.
//
// All four states are mutually reachable: no transition table is enforced.
type InvoiceStatus string

const (
	StatusPending   InvoiceStatus = "Pending"
	StatusPaid      InvoiceStatus = "Paid"
	StatusOverdue   InvoiceStatus = "Overdue"
	StatusCancelled InvoiceStatus = "Cancelled"
)

// InvoiceStatuses lists every valid status in display order.
var InvoiceStatuses = []InvoiceStatus{
	StatusPending,
	StatusPaid,
	StatusOverdue,
	StatusCancelled,
}

// IsValid reports whether s is one of the enumerated statuses.
func (s InvoiceStatus) IsValid() bool {
	for _, status := range InvoiceStatuses {
		if s == status {
			return true
		}
	}
	return false
}

func (s InvoiceStatus) String() string {
	return string(s)
}
