// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoHandlersAreCreated means the diagnostics server is disabled.
var errNoHandlersAreCreated = errors.New("no handlers are created")

// IsDisabled reports whether err means no handler was configured.
func IsDisabled(err error) bool {
	return errors.Is(err, errNoHandlersAreCreated)
}
