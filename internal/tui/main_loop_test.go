// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-invoice/internal/adapter"
	"github.com/MKhiriev/go-invoice/models"
)

func testInvoices() []models.Invoice {
	return []models.Invoice{
		{
			ID:          "0190c7a4-5a3c-7d2e-9f10-0000000000b2",
			Items:       models.LineItems{{Description: "Design", Quantity: 2, Price: 100}},
			TotalAmount: 200,
			Status:      models.StatusPending,
		},
		{
			ID:          "0190c7a4-5a3c-7d2e-9f10-0000000000b1",
			Items:       models.LineItems{{Description: "Hosting", Quantity: 1, Price: 50}},
			TotalAmount: 50,
			Status:      models.StatusPaid,
		},
	}
}

func testSummary() models.InvoiceSummary {
	return models.InvoiceSummary{
		Count:       2,
		TotalAmount: 250,
		ByStatus: map[models.InvoiceStatus]models.StatusSummary{
			models.StatusPending: {Count: 1, TotalAmount: 200},
			models.StatusPaid:    {Count: 1, TotalAmount: 50},
		},
	}
}

func loadedServer() *fakeServer {
	return &fakeServer{
		listFn:  func(context.Context) ([]models.Invoice, error) { return testInvoices(), nil },
		statsFn: func(context.Context) (models.InvoiceSummary, error) { return testSummary(), nil },
	}
}

// loadedModel runs Init against server and applies the result.
func loadedModel(t *testing.T, server *fakeServer) mainLoopModel {
	t.Helper()

	m := newMainLoopModel(context.Background(), server, models.User{UserID: "u-1", Name: "Ann", Email: "ann@example.com"})
	assert.True(t, m.loading)

	cmd := m.Init()
	require.NotNil(t, cmd)

	return apply(t, m, cmd())
}

func apply(t *testing.T, m mainLoopModel, msg tea.Msg) mainLoopModel {
	t.Helper()
	updated, _ := m.Update(msg)
	next, ok := updated.(mainLoopModel)
	require.True(t, ok)
	return next
}

func applyCmd(t *testing.T, m mainLoopModel, msg tea.Msg) (mainLoopModel, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	next, ok := updated.(mainLoopModel)
	require.True(t, ok)
	return next, cmd
}

func TestMainLoop_LoadAndNavigate(t *testing.T) {
	m := loadedModel(t, loadedServer())

	assert.False(t, m.loading)
	require.Len(t, m.invoices, 2)
	assert.Equal(t, 2, m.summary.Count)

	view := m.viewList()
	assert.Contains(t, view, "000000b2")
	assert.Contains(t, view, "$250.00")
	assert.Contains(t, view, "Ann")

	m = apply(t, m, runeKey("j"))
	assert.Equal(t, 1, m.idx)
	m = apply(t, m, runeKey("j"))
	assert.Equal(t, 1, m.idx, "cursor stays on the last row")
	m = apply(t, m, runeKey("k"))
	assert.Equal(t, 0, m.idx)

	m = apply(t, m, enterKey)
	assert.Equal(t, screenDetail, m.screen)
	assert.Contains(t, m.View(), "Design")

	m = apply(t, m, escKey)
	assert.Equal(t, screenList, m.screen)
}

func TestMainLoop_LoadError(t *testing.T) {
	server := &fakeServer{listFn: func(context.Context) ([]models.Invoice, error) {
		return nil, fmt.Errorf("%w: storage failure", adapter.ErrInternalServerError)
	}}
	m := loadedModel(t, server)

	assert.Equal(t, "storage failure", m.errMsg)
	assert.Contains(t, m.View(), "storage failure")

	m = apply(t, m, runeKey("j"))
	assert.NotEmpty(t, m.errMsg, "keys other than enter/esc keep the overlay")

	m = apply(t, m, enterKey)
	assert.Empty(t, m.errMsg)
}

func TestMainLoop_EnterOnEmptyList(t *testing.T) {
	server := &fakeServer{
		listFn:  func(context.Context) ([]models.Invoice, error) { return []models.Invoice{}, nil },
		statsFn: func(context.Context) (models.InvoiceSummary, error) { return models.InvoiceSummary{}, nil },
	}
	m := loadedModel(t, server)

	m = apply(t, m, enterKey)
	assert.Equal(t, screenList, m.screen)
	assert.Contains(t, m.viewList(), "No invoices yet")
}

func TestMainLoop_ChangeStatus(t *testing.T) {
	server := loadedServer()
	var gotID string
	var gotStatus models.InvoiceStatus
	server.setStatusFn = func(_ context.Context, id string, status models.InvoiceStatus) (models.Invoice, error) {
		gotID, gotStatus = id, status
		invoice := testInvoices()[0]
		invoice.Status = status
		return invoice, nil
	}

	m := loadedModel(t, server)
	m = apply(t, m, enterKey)
	m = apply(t, m, runeKey("s"))
	require.Equal(t, screenStatusSelect, m.screen)
	assert.Equal(t, models.StatusPending, m.statusSelect.selected())

	m = apply(t, m, runeKey("j"))
	assert.Equal(t, models.StatusPaid, m.statusSelect.selected())

	m, cmd := applyCmd(t, m, enterKey)
	require.NotNil(t, cmd)
	assert.Equal(t, screenDetail, m.screen)

	m = apply(t, m, cmd())
	assert.Equal(t, testInvoices()[0].ID, gotID)
	assert.Equal(t, models.StatusPaid, gotStatus)
	assert.Equal(t, models.StatusPaid, m.invoices[0].Status)
	assert.Equal(t, "Invoice updated", m.status)

	m = apply(t, m, clearStatusMsg{})
	assert.Empty(t, m.status)
}

func TestMainLoop_ChangeStatusError(t *testing.T) {
	server := loadedServer()
	server.setStatusFn = func(context.Context, string, models.InvoiceStatus) (models.Invoice, error) {
		return models.Invoice{}, fmt.Errorf("%w: invoice belongs to another user", adapter.ErrForbidden)
	}

	m := loadedModel(t, server)
	m = apply(t, m, enterKey)
	m = apply(t, m, runeKey("s"))
	m, cmd := applyCmd(t, m, enterKey)
	require.NotNil(t, cmd)

	m = apply(t, m, cmd())
	assert.Equal(t, "invoice belongs to another user", m.errMsg)
	assert.Equal(t, models.StatusPending, m.invoices[0].Status)
}

func TestMainLoop_Delete(t *testing.T) {
	server := loadedServer()
	var deleted string
	server.deleteFn = func(_ context.Context, id string) error {
		deleted = id
		return nil
	}

	m := loadedModel(t, server)
	m = apply(t, m, runeKey("j"))
	m = apply(t, m, enterKey)

	m = apply(t, m, runeKey("d"))
	require.Equal(t, screenConfirmDelete, m.screen)
	assert.Contains(t, m.View(), "Delete invoice 000000b1?")

	m = apply(t, m, runeKey("n"))
	assert.Equal(t, screenDetail, m.screen)
	assert.Empty(t, deleted)

	m = apply(t, m, runeKey("d"))
	m, cmd := applyCmd(t, m, runeKey("y"))
	require.NotNil(t, cmd)

	m = apply(t, m, cmd())
	assert.Equal(t, testInvoices()[1].ID, deleted)
	assert.Equal(t, screenList, m.screen)
	assert.True(t, m.loading)
	assert.Equal(t, "Invoice deleted", m.status)
}

func TestMainLoop_DeleteNotFound(t *testing.T) {
	server := loadedServer()
	server.deleteFn = func(context.Context, string) error {
		return fmt.Errorf("%w: invoice not found", adapter.ErrNotFound)
	}

	m := loadedModel(t, server)
	m = apply(t, m, enterKey)
	m = apply(t, m, runeKey("d"))
	m, cmd := applyCmd(t, m, runeKey("y"))
	require.NotNil(t, cmd)

	m = apply(t, m, cmd())
	assert.Equal(t, screenDetail, m.screen)
	assert.Equal(t, "invoice not found", m.errMsg)
}

func TestMainLoop_Create(t *testing.T) {
	server := loadedServer()
	var got []models.LineItem
	server.createFn = func(_ context.Context, items []models.LineItem) (models.Invoice, error) {
		got = items
		return models.Invoice{ID: "0190c7a4-5a3c-7d2e-9f10-0000000000b3", Items: items, TotalAmount: 30, Status: models.StatusPending}, nil
	}

	m := loadedModel(t, server)
	m = apply(t, m, runeKey("n"))
	require.Equal(t, screenCreate, m.screen)

	m = apply(t, m, runeKey("q"))
	assert.Equal(t, screenCreate, m.screen, "q is typed into the form")
	assert.Equal(t, "q", m.form.inputs[0].Value())

	m.form.inputs[0].SetValue("Support")
	m.form.inputs[1].SetValue("3")
	m.form.inputs[2].SetValue("10")

	m, cmd := applyCmd(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	require.NotNil(t, cmd)
	assert.Empty(t, m.form.errMsg)

	m = apply(t, m, cmd())
	assert.Equal(t, []models.LineItem{{Description: "Support", Quantity: 3, Price: 10}}, got)
	assert.Equal(t, screenDetail, m.screen)
	assert.Equal(t, 0, m.idx)
	assert.Len(t, m.invoices, 3)
	assert.Equal(t, "Invoice created", m.status)
}

func TestMainLoop_CreateRejected(t *testing.T) {
	server := loadedServer()
	server.createFn = func(context.Context, []models.LineItem) (models.Invoice, error) {
		return models.Invoice{}, fmt.Errorf("%w: item 1: price must not be negative", adapter.ErrBadRequest)
	}

	m := loadedModel(t, server)
	m = apply(t, m, runeKey("n"))
	m.form.inputs[0].SetValue("Refund")
	m.form.inputs[2].SetValue("-5")

	m, cmd := applyCmd(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	require.NotNil(t, cmd)

	m = apply(t, m, cmd())
	assert.Equal(t, screenCreate, m.screen)
	assert.Equal(t, "item 1: price must not be negative", m.form.errMsg)
	assert.Empty(t, m.errMsg)
}

func TestMainLoop_CreateFormRows(t *testing.T) {
	m := loadedModel(t, loadedServer())
	m = apply(t, m, runeKey("n"))

	m = apply(t, m, tea.KeyMsg{Type: tea.KeyCtrlN})
	assert.Equal(t, 2, m.form.rows())

	m = apply(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, 1, m.form.focus)
	m = apply(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	m = apply(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, 5, m.form.focus, "focus wraps to the last field")

	m = apply(t, m, tea.KeyMsg{Type: tea.KeyCtrlD})
	assert.Equal(t, 1, m.form.rows())
	assert.Equal(t, 0, m.form.focus)

	m = apply(t, m, tea.KeyMsg{Type: tea.KeyCtrlD})
	assert.Equal(t, 1, m.form.rows(), "the last row is kept")

	m = apply(t, m, escKey)
	assert.Equal(t, screenList, m.screen)
}

func TestMainLoop_LogoutAndQuit(t *testing.T) {
	m := loadedModel(t, loadedServer())

	m, cmd := applyCmd(t, m, runeKey("l"))
	require.NotNil(t, cmd)
	assert.True(t, m.logout)
	assert.Equal(t, tea.QuitMsg{}, cmd())

	m = loadedModel(t, loadedServer())
	m, cmd = applyCmd(t, m, runeKey("q"))
	require.NotNil(t, cmd)
	assert.False(t, m.logout)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestMainLoop_ReloadClampsCursor(t *testing.T) {
	m := loadedModel(t, loadedServer())
	m = apply(t, m, runeKey("j"))

	m, cmd := applyCmd(t, m, runeKey("r"))
	require.NotNil(t, cmd)
	assert.True(t, m.loading)

	m = apply(t, m, invoicesLoadedMsg{invoices: testInvoices()[:1], summary: testSummary()})
	assert.Equal(t, 0, m.idx)
}

func TestCreateFormItems(t *testing.T) {
	tests := []struct {
		name    string
		rows    [][3]string
		want    []models.LineItem
		wantErr string
	}{
		{
			name: "defaults and blank rows",
			rows: [][3]string{{"Design", "", ""}, {"", "", ""}, {"Hosting", "2", "$9.50"}},
			want: []models.LineItem{
				{Description: "Design", Quantity: 1, Price: 0},
				{Description: "Hosting", Quantity: 2, Price: 9.5},
			},
		},
		{name: "no items", rows: [][3]string{{"", "", ""}}, wantErr: "add at least one item"},
		{name: "bad quantity", rows: [][3]string{{"A", "1", "1"}, {"B", "1.5", "1"}}, wantErr: "item 2: quantity must be a whole number"},
		{name: "bad price", rows: [][3]string{{"A", "1", "ten"}}, wantErr: "item 1: price must be a number"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := newCreateFormModel()
			for i := 1; i < len(tt.rows); i++ {
				form.addRow()
			}
			for row, values := range tt.rows {
				for col, v := range values {
					form.inputs[row*fieldsPerItem+col].SetValue(v)
				}
			}

			items, err := form.items()
			if tt.wantErr != "" {
				require.EqualError(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, items)
		})
	}
}

func TestRenderSummary(t *testing.T) {
	out := renderSummary(testSummary())

	assert.Contains(t, out, "Total $250.00 in 2 invoices")
	assert.Contains(t, out, "$200.00 (1)")
	assert.Contains(t, out, "$50.00 (1)")
	assert.Contains(t, out, "$0.00 (0)")
}
