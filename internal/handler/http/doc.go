// Package http serves the local diagnostics API of the sync client.
//
// The API reports the sync engines' state, forces a slow sync and resolves
// one-on-one conversations on demand. Requests pass through tracing,
// access-logging and optional bearer-token middleware before reaching the
// services.
package http
