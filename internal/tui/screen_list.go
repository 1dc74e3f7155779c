package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-invoice/models"
)

func (m mainLoopModel) viewList() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Signed in as %s <%s>\n\n", m.user.Name, m.user.Email))

	if m.loading {
		b.WriteString("Loading invoices...\n")
	} else if len(m.invoices) == 0 {
		b.WriteString("No invoices yet. Press n to create one.\n")
	} else {
		b.WriteString(fmt.Sprintf("  %-8s │ %-9s │ %12s │ %-10s │ %s\n", "ID", "Status", "Total", "Due", "Items"))
		b.WriteString("  ─────────┼───────────┼──────────────┼────────────┼──────\n")
		for i, invoice := range m.invoices {
			cursor := " "
			if i == m.idx {
				cursor = ">"
			}
			b.WriteString(fmt.Sprintf("%s %-8s │ %-9s │ %12s │ %-10s │ %d\n",
				cursor,
				shortID(invoice.ID),
				fitText(invoice.Status.String(), 9),
				formatMoney(invoice.TotalAmount),
				formatDate(invoice.DueDate),
				len(invoice.Items),
			))
		}
	}

	b.WriteString("\n")
	b.WriteString(renderSummary(m.summary))

	return renderPage("INVOICES", strings.TrimRight(b.String(), "\n"),
		"↑/↓: navigate │ enter: open │ n: new │ r: reload │ l: log out │ q: quit")
}

// renderSummary shows the Paid and Pending totals first, as the dashboard
// chart of the web client did, followed by the remaining statuses.
func renderSummary(summary models.InvoiceSummary) string {
	var parts []string
	for _, status := range []models.InvoiceStatus{models.StatusPaid, models.StatusPending, models.StatusOverdue, models.StatusCancelled} {
		entry := summary.ByStatus[status]
		parts = append(parts, fmt.Sprintf("%s: %s (%d)", renderStatus(status.String()), formatMoney(entry.TotalAmount), entry.Count))
	}
	return fmt.Sprintf("Total %s in %d invoices\n%s", formatMoney(summary.TotalAmount), summary.Count, strings.Join(parts, " │ "))
}
