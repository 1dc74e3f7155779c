package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-invoice/models"
)

// RootModel routes between the pages of the login flow. It owns the global
// ctrl+c, the about window opened with v on the menu, and [NavigateTo]. A
// successful [LoginResult] ends the program with the user stored.
type RootModel struct {
	pages  map[string]tea.Model
	active tea.Model

	buildInfo models.AppBuildInfo
	showAbout bool

	user       models.User
	quitByUser bool
}

func NewRootModel(pages map[string]tea.Model, startPage string, buildInfo models.AppBuildInfo) RootModel {
	return RootModel{
		pages:     pages,
		active:    pages[startPage],
		buildInfo: buildInfo,
	}
}

func (r RootModel) Init() tea.Cmd {
	if r.active == nil {
		return nil
	}
	return r.active.Init()
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			r.quitByUser = true
			return r, tea.Quit
		}
		if r.showAbout {
			if key.Matches(msg, keys.esc, keys.about) {
				r.showAbout = false
			}
			return r, nil
		}
		if r.onMenu() && key.Matches(msg, keys.about) {
			r.showAbout = true
			return r, nil
		}

	case NavigateTo:
		next, ok := r.pages[msg.Page]
		if !ok {
			return r, nil
		}
		r.showAbout = false
		r.active = next
		if msg.Payload != nil {
			payload := msg.Payload
			return r, func() tea.Msg { return payload }
		}
		return r, r.active.Init()

	case LoginResult:
		if msg.Err == nil {
			r.user = msg.User
			return r, tea.Quit
		}
	}

	if r.active == nil {
		return r, nil
	}

	var cmd tea.Cmd
	r.active, cmd = r.active.Update(msg)
	return r, cmd
}

func (r RootModel) View() string {
	switch {
	case r.showAbout:
		return appStyle.Render(renderBuildInfoWindow(r.buildInfo))
	case r.active == nil:
		return appStyle.Render(renderPage("GO-INVOICE", "", ""))
	default:
		return appStyle.Render(r.active.View())
	}
}

func (r RootModel) onMenu() bool {
	_, ok := r.active.(*MenuModel)
	return ok
}
