package tui

type errorOverlayModel struct {
	message string
}

func (m errorOverlayModel) View() string {
	return overlayBoxStyle.Render(
		errorStyle.Render("Something went wrong") + "\n\n" +
			m.message + "\n\n" +
			helpStyle.Render("enter/esc: dismiss"),
	)
}
