package tui

import (
	"strings"

	"github.com/MKhiriev/go-invoice/models"
)

// statusSelectModel picks one of the invoice statuses. Any status may be
// chosen from any other.
type statusSelectModel struct {
	items []models.InvoiceStatus
	idx   int
}

func newStatusSelectModel(current models.InvoiceStatus) statusSelectModel {
	m := statusSelectModel{items: models.InvoiceStatuses}
	for i, status := range m.items {
		if status == current {
			m.idx = i
		}
	}
	return m
}

func (m *statusSelectModel) up() {
	if m.idx > 0 {
		m.idx--
	}
}

func (m *statusSelectModel) down() {
	if m.idx < len(m.items)-1 {
		m.idx++
	}
}

func (m statusSelectModel) selected() models.InvoiceStatus {
	return m.items[m.idx]
}

func (m statusSelectModel) View() string {
	var b strings.Builder
	b.WriteString("Choose a status:\n\n")
	for i, item := range m.items {
		cursor := "  "
		if i == m.idx {
			cursor = "> "
		}
		b.WriteString(cursor)
		b.WriteString(renderStatus(item.String()))
		b.WriteString("\n")
	}
	b.WriteString("\nesc back  enter select")
	return overlayBoxStyle.Render(b.String())
}
