// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoHandlersAreCreated means the server config names no HTTP and no gRPC
// address, so there is nothing to serve.
var errNoHandlersAreCreated = errors.New("no handlers are created: HTTP or gRPC address is required")
