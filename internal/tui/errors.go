// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-invoice/internal/adapter"
)

var errNoServerAdapter = errors.New("server adapter is required")

// humanizeError turns adapter and network errors into a short line for the
// status bar.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "Network is down or the server is unavailable"
	}

	if errors.Is(err, adapter.ErrUnauthorized) && strings.Contains(s, "token") {
		return "Session expired, please log in again"
	}

	return adapter.Message(err)
}
