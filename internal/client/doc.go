// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It alternates the login flow and the invoice screens of the terminal UI
// until the user quits, dropping the session token on every logout.
package client
