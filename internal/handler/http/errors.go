// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")
	ErrInvalidToken             = errors.New("invalid diagnostics token")

	// ErrNoUserProvided is returned by the one-on-one endpoint when neither
	// the body nor the query names a user.
	ErrNoUserProvided = errors.New("no user provided")
)
