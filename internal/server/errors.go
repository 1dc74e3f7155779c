// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

// errNoTransports is returned by NewServer when neither an HTTP nor a gRPC
// listener could be configured.
var errNoTransports = errors.New("no transport is configured: set an HTTP or gRPC address")
