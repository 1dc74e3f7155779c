package tui

// confirmModel asks before a destructive action on the current invoice.
type confirmModel struct {
	message string
}

func (m confirmModel) View() string {
	return overlayBoxStyle.Render(
		errorStyle.Render("Delete "+m.message+"?") + "\n\n" +
			"This cannot be undone.\n\n" +
			helpStyle.Render("y: delete │ n/esc: keep"),
	)
}
