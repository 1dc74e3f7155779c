package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-invoice/models"
)

const fieldsPerItem = 3

// createFormModel edits the line items of a new invoice. Inputs are laid
// out row by row: description, quantity, price.
type createFormModel struct {
	inputs []textinput.Model
	focus  int
	errMsg string
}

func newCreateFormModel() createFormModel {
	m := createFormModel{}
	m.addRow()
	m.inputs[0].Focus()
	return m
}

func (m *createFormModel) rows() int {
	return len(m.inputs) / fieldsPerItem
}

func (m *createFormModel) addRow() {
	description := textinput.New()
	description.Placeholder = "description"
	description.Width = 28

	quantity := textinput.New()
	quantity.Placeholder = "1"
	quantity.Width = 6
	quantity.CharLimit = 9

	price := textinput.New()
	price.Placeholder = "0.00"
	price.Width = 10
	price.CharLimit = 15

	m.inputs = append(m.inputs, description, quantity, price)
}

// removeRow drops the row holding the focus; the last row is kept.
func (m *createFormModel) removeRow() {
	if m.rows() <= 1 {
		return
	}
	row := m.focus / fieldsPerItem
	start := row * fieldsPerItem
	m.inputs = append(m.inputs[:start], m.inputs[start+fieldsPerItem:]...)

	if m.focus >= len(m.inputs) {
		m.focus = len(m.inputs) - fieldsPerItem
	} else {
		m.focus = start
	}
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	m.inputs[m.focus].Focus()
}

func (m *createFormModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *createFormModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *createFormModel) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return cmd
}

// items parses the form. Empty rows are skipped; quantity must be a whole
// number and price a number. Range rules are left to the server.
func (m *createFormModel) items() ([]models.LineItem, error) {
	var items []models.LineItem
	for row := 0; row < m.rows(); row++ {
		description := strings.TrimSpace(m.inputs[row*fieldsPerItem].Value())
		quantityRaw := strings.TrimSpace(m.inputs[row*fieldsPerItem+1].Value())
		priceRaw := strings.TrimSpace(m.inputs[row*fieldsPerItem+2].Value())

		if description == "" && quantityRaw == "" && priceRaw == "" {
			continue
		}

		quantity := 1
		if quantityRaw != "" {
			parsed, err := strconv.Atoi(quantityRaw)
			if err != nil {
				return nil, fmt.Errorf("item %d: quantity must be a whole number", row+1)
			}
			quantity = parsed
		}

		var price float64
		if priceRaw != "" {
			parsed, err := strconv.ParseFloat(strings.TrimPrefix(priceRaw, "$"), 64)
			if err != nil {
				return nil, fmt.Errorf("item %d: price must be a number", row+1)
			}
			price = parsed
		}

		items = append(items, models.LineItem{Description: description, Quantity: quantity, Price: price})
	}

	if len(items) == 0 {
		return nil, fmt.Errorf("add at least one item")
	}
	return items, nil
}

// total previews the invoice total while typing, ignoring rows that do not parse.
func (m *createFormModel) total() float64 {
	var total float64
	for row := 0; row < m.rows(); row++ {
		quantity, errQ := strconv.Atoi(strings.TrimSpace(m.inputs[row*fieldsPerItem+1].Value()))
		price, errP := strconv.ParseFloat(strings.TrimSpace(m.inputs[row*fieldsPerItem+2].Value()), 64)
		if errQ == nil && errP == nil {
			total += float64(quantity) * price
		}
	}
	return total
}

func (m createFormModel) View() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%-3s │ %-30s │ %-8s │ %s\n", "#", "Description", "Qty", "Price"))
	b.WriteString("────┼────────────────────────────────┼──────────┼────────────\n")
	for row := 0; row < m.rows(); row++ {
		b.WriteString(fmt.Sprintf("%-3d │ %s │ %s │ %s\n",
			row+1,
			m.inputs[row*fieldsPerItem].View(),
			m.inputs[row*fieldsPerItem+1].View(),
			m.inputs[row*fieldsPerItem+2].View(),
		))
	}
	b.WriteString("\nTotal: ")
	b.WriteString(formatMoney(m.total()))
	b.WriteString("\n")

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("NEW INVOICE", strings.TrimRight(b.String(), "\n"),
		"tab: next field │ ctrl+n: add item │ ctrl+d: remove item │ ctrl+s: save │ esc: cancel")
}
