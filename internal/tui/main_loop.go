package tui

import (
	"context"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-invoice/internal/adapter"
	"github.com/MKhiriev/go-invoice/models"
)

const statusTimeout = 3 * time.Second

type screen int

const (
	screenList screen = iota
	screenDetail
	screenCreate
	screenStatusSelect
	screenConfirmDelete
)

// mainLoopModel drives the invoice pages of an authenticated session. The
// server owns the data; the model only keeps the last loaded snapshot.
type mainLoopModel struct {
	ctx    context.Context
	server adapter.ServerAdapter
	user   models.User

	invoices []models.Invoice
	summary  models.InvoiceSummary
	idx      int

	screen       screen
	form         createFormModel
	statusSelect statusSelectModel

	loading bool
	status  string
	errMsg  string
	logout  bool
}

func newMainLoopModel(ctx context.Context, server adapter.ServerAdapter, user models.User) mainLoopModel {
	return mainLoopModel{
		ctx:     ctx,
		server:  server,
		user:    user,
		screen:  screenList,
		loading: true,
	}
}

func (m mainLoopModel) Init() tea.Cmd {
	return m.cmdLoad()
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case invoicesLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.invoices = msg.invoices
		m.summary = msg.summary
		if m.idx >= len(m.invoices) {
			m.idx = max(len(m.invoices)-1, 0)
		}
		return m, nil

	case invoiceSavedMsg:
		return m.onSaved(msg)

	case invoiceDeletedMsg:
		if msg.err != nil {
			m.screen = screenDetail
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.screen = screenList
		m.loading = true
		tick := m.setStatus("Invoice deleted")
		return m, tea.Batch(tick, m.cmdLoad())

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.errMsg != "" {
			if key.Matches(msg, keys.enter, keys.esc) {
				m.errMsg = ""
			}
			return m, nil
		}
		return m.handleKey(msg)
	}

	if m.screen == screenCreate {
		return m, m.form.update(msg)
	}
	return m, nil
}

func (m mainLoopModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.screen {
	case screenList:
		return m.handleListKey(msg)
	case screenDetail:
		return m.handleDetailKey(msg)
	case screenCreate:
		return m.handleCreateKey(msg)
	case screenStatusSelect:
		return m.handleStatusKey(msg)
	case screenConfirmDelete:
		return m.handleConfirmKey(msg)
	}
	return m, nil
}

func (m mainLoopModel) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.logout):
		m.logout = true
		return m, tea.Quit
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.invoices)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.enter):
		if _, ok := m.current(); ok {
			m.screen = screenDetail
		}
	case key.Matches(msg, keys.newItem):
		m.form = newCreateFormModel()
		m.screen = screenCreate
		return m, textinput.Blink
	case key.Matches(msg, keys.reload):
		m.loading = true
		return m, m.cmdLoad()
	}
	return m, nil
}

func (m mainLoopModel) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	invoice, ok := m.current()
	if !ok {
		m.screen = screenList
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.esc):
		m.screen = screenList
	case key.Matches(msg, keys.status):
		m.statusSelect = newStatusSelectModel(invoice.Status)
		m.screen = screenStatusSelect
	case key.Matches(msg, keys.delete):
		m.screen = screenConfirmDelete
	case key.Matches(msg, keys.copy):
		if err := clipboard.WriteAll(invoice.ID); err != nil {
			m.errMsg = "Clipboard is not available"
			return m, nil
		}
		tick := m.setStatus("Invoice ID copied")
		return m, tick
	}
	return m, nil
}

func (m mainLoopModel) handleStatusKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.screen = screenDetail
	case key.Matches(msg, keys.up):
		m.statusSelect.up()
	case key.Matches(msg, keys.down):
		m.statusSelect.down()
	case key.Matches(msg, keys.enter):
		invoice, ok := m.current()
		if !ok {
			m.screen = screenList
			return m, nil
		}
		m.screen = screenDetail
		return m, m.cmdSetStatus(invoice.ID, m.statusSelect.selected())
	}
	return m, nil
}

func (m mainLoopModel) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		invoice, ok := m.current()
		if !ok {
			m.screen = screenList
			return m, nil
		}
		return m, m.cmdDelete(invoice.ID)
	case key.Matches(msg, keys.no):
		m.screen = screenDetail
	}
	return m, nil
}

func (m mainLoopModel) handleCreateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.screen = screenList
		return m, nil
	case key.Matches(msg, keys.tab):
		m.form.focusNext()
		return m, nil
	case key.Matches(msg, keys.backtab):
		m.form.focusPrev()
		return m, nil
	case key.Matches(msg, keys.addRow):
		m.form.addRow()
		return m, nil
	case key.Matches(msg, keys.delRow):
		m.form.removeRow()
		return m, nil
	case key.Matches(msg, keys.save):
		items, err := m.form.items()
		if err != nil {
			m.form.errMsg = err.Error()
			return m, nil
		}
		m.form.errMsg = ""
		return m, m.cmdCreate(items)
	}
	return m, m.form.update(msg)
}

func (m mainLoopModel) onSaved(msg invoiceSavedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		if msg.created && m.screen == screenCreate {
			m.form.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = humanizeError(msg.err)
		return m, nil
	}

	if msg.created {
		m.invoices = append([]models.Invoice{msg.invoice}, m.invoices...)
		m.idx = 0
		m.screen = screenDetail
		tick := m.setStatus("Invoice created")
		return m, tea.Batch(tick, m.cmdLoad())
	}

	for i := range m.invoices {
		if m.invoices[i].ID == msg.invoice.ID {
			m.invoices[i] = msg.invoice
		}
	}
	tick := m.setStatus("Invoice updated")
	return m, tea.Batch(tick, m.cmdLoad())
}

func (m mainLoopModel) View() string {
	var body string
	switch m.screen {
	case screenDetail:
		body = m.viewDetail()
	case screenCreate:
		body = m.form.View()
	case screenStatusSelect:
		body = m.viewDetail() + "\n\n" + m.statusSelect.View()
	case screenConfirmDelete:
		invoice, _ := m.current()
		body = m.viewDetail() + "\n\n" + confirmModel{message: "invoice " + shortID(invoice.ID)}.View()
	default:
		body = m.viewList()
	}

	var b strings.Builder
	b.WriteString(body)
	if m.status != "" {
		b.WriteString("\n\n")
		b.WriteString(statusStyle.Render(m.status))
	}
	if m.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(errorOverlayModel{message: m.errMsg}.View())
	}
	return appStyle.Render(b.String())
}

func (m mainLoopModel) current() (models.Invoice, bool) {
	if m.idx < 0 || m.idx >= len(m.invoices) {
		return models.Invoice{}, false
	}
	return m.invoices[m.idx], true
}

func (m *mainLoopModel) setStatus(text string) tea.Cmd {
	m.status = text
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

func (m mainLoopModel) cmdLoad() tea.Cmd {
	ctx, server := m.ctx, m.server
	return func() tea.Msg {
		invoices, err := server.ListInvoices(ctx)
		if err != nil {
			return invoicesLoadedMsg{err: err}
		}
		summary, err := server.InvoiceStats(ctx)
		if err != nil {
			return invoicesLoadedMsg{err: err}
		}
		return invoicesLoadedMsg{invoices: invoices, summary: summary}
	}
}

func (m mainLoopModel) cmdCreate(items []models.LineItem) tea.Cmd {
	ctx, server := m.ctx, m.server
	return func() tea.Msg {
		invoice, err := server.CreateInvoice(ctx, items)
		return invoiceSavedMsg{invoice: invoice, created: true, err: err}
	}
}

func (m mainLoopModel) cmdSetStatus(invoiceID string, status models.InvoiceStatus) tea.Cmd {
	ctx, server := m.ctx, m.server
	return func() tea.Msg {
		invoice, err := server.SetInvoiceStatus(ctx, invoiceID, status)
		return invoiceSavedMsg{invoice: invoice, err: err}
	}
}

func (m mainLoopModel) cmdDelete(invoiceID string) tea.Cmd {
	ctx, server := m.ctx, m.server
	return func() tea.Msg {
		return invoiceDeletedMsg{err: server.DeleteInvoice(ctx, invoiceID)}
	}
}
