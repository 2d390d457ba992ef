// Package server runs the diagnostics HTTP server of the sync client.
package server
