package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-invoice/models"
)

// NavigateTo switches the active page of [RootModel]. A non-nil Payload is
// delivered to the new page instead of calling its Init.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// LoginResult finishes the login and register pages. Signup logs the user
// in, so both pages produce it.
type LoginResult struct {
	User models.User
	Err  error
}

type invoicesLoadedMsg struct {
	invoices []models.Invoice
	summary  models.InvoiceSummary
	err      error
}

type invoiceSavedMsg struct {
	invoice models.Invoice
	created bool
	err     error
}

type invoiceDeletedMsg struct {
	err error
}

type clearStatusMsg struct{}
