// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks signup, login and invoice payloads before they
// reach storage.
//
// Validators never normalize the value they check; trimming and lowercasing
// happen in the service layer, which also wraps the returned sentinels into
// validation errors.
package validators

import "context"

// Validator checks obj. fields restricts the check to the named parts of
// obj; no fields means all of them.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
