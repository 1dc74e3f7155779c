package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-invoice/models"
)

func renderInvoiceDetail(invoice models.Invoice) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("ID:      %s\n", invoice.ID))
	b.WriteString(fmt.Sprintf("Status:  %s\n", renderStatus(invoice.Status.String())))
	b.WriteString(fmt.Sprintf("Due:     %s\n", formatDate(invoice.DueDate)))
	b.WriteString(fmt.Sprintf("Created: %s\n", formatDate(invoice.CreatedAt)))
	b.WriteString(fmt.Sprintf("Updated: %s\n\n", formatDate(invoice.UpdatedAt)))

	b.WriteString(fmt.Sprintf("%-3s │ %-30s │ %5s │ %10s │ %12s\n", "#", "Description", "Qty", "Price", "Amount"))
	b.WriteString("────┼────────────────────────────────┼───────┼────────────┼─────────────\n")
	for i, item := range invoice.Items {
		b.WriteString(fmt.Sprintf("%-3d │ %-30s │ %5d │ %10s │ %12s\n",
			i+1,
			fitText(item.Description, 30),
			item.Quantity,
			formatMoney(item.Price),
			formatMoney(item.Amount()),
		))
	}
	b.WriteString(fmt.Sprintf("\nTotal: %s", formatMoney(invoice.TotalAmount)))

	return b.String()
}

func (m mainLoopModel) viewDetail() string {
	invoice, ok := m.current()
	if !ok {
		return renderPage("INVOICE", "", "esc: back")
	}
	return renderPage("INVOICE "+shortID(invoice.ID), renderInvoiceDetail(invoice),
		"s: change status │ d: delete │ c: copy id │ esc: back")
}
