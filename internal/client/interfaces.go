// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/go-invoice/models"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run() error
}

// UI is the interactive part of the client. It is implemented by
// [github.com/MKhiriev/go-invoice/internal/tui.TUI].
type UI interface {
	// LoginFlow blocks until the user is authenticated or quits.
	LoginFlow(ctx context.Context) (models.User, error)

	// MainLoop shows the invoice screens for user. logout is true when the
	// user signed out instead of quitting.
	MainLoop(ctx context.Context, user models.User) (logout bool, err error)
}
