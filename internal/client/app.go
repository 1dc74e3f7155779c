package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-invoice/internal/adapter"
	"github.com/MKhiriev/go-invoice/internal/logger"
	"github.com/MKhiriev/go-invoice/internal/tui"
)

var (
	errNoServerAdapter = errors.New("server adapter is required")
	errNoUI            = errors.New("ui is required")
)

type App struct {
	server adapter.ServerAdapter
	ui     UI
	logger *logger.Logger
}

func NewApp(server adapter.ServerAdapter, ui UI, logger *logger.Logger) (*App, error) {
	if server == nil {
		return nil, errNoServerAdapter
	}
	if ui == nil {
		return nil, errNoUI
	}
	return &App{server: server, ui: ui, logger: logger}, nil
}

// Run alternates the login flow and the main loop. Quitting from either
// ends Run without an error.
func (a *App) Run() error {
	ctx := context.Background()

	for {
		user, err := a.ui.LoginFlow(ctx)
		if errors.Is(err, tui.ErrUserQuit) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("login flow: %w", err)
		}

		logout, err := a.ui.MainLoop(ctx, user)
		if err != nil {
			return fmt.Errorf("main loop: %w", err)
		}
		if !logout {
			return nil
		}

		a.server.SetToken("")
		a.logger.Info().Str("user_id", user.UserID).Msg("user logged out")
	}
}
