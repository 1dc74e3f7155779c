package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type menuEntry struct {
	title string
	page  string
}

// MenuModel is the start page of the login flow.
type MenuModel struct {
	entries []menuEntry
	idx     int
}

func NewMenuModel() *MenuModel {
	return &MenuModel{entries: []menuEntry{
		{title: "Log in", page: pageLogin},
		{title: "Sign up", page: pageRegister},
	}}
}

func (m *MenuModel) Init() tea.Cmd {
	return nil
}

func (m *MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.idx < len(m.entries)-1 {
			m.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		page := m.entries[m.idx].page
		return m, func() tea.Msg { return NavigateTo{Page: page} }
	}

	return m, nil
}

func (m *MenuModel) View() string {
	var b strings.Builder
	b.WriteString("Manage your invoices from the terminal.\n\n")

	for i, entry := range m.entries {
		cursor := "  "
		if i == m.idx {
			cursor = "> "
		}
		b.WriteString(fmt.Sprintf("%s%d. %s\n", cursor, i+1, entry.title))
	}

	return renderPage("GO-INVOICE", strings.TrimRight(b.String(), "\n"), "↑/↓: navigate │ enter: select │ v: about")
}
