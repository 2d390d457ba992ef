package server

import (
	"github.com/MKhiriev/go-msg-sync/internal/config"
	"github.com/MKhiriev/go-msg-sync/internal/handler"
	"github.com/MKhiriev/go-msg-sync/internal/logger"
)

// NewServer returns the diagnostics server for handlers.
func NewServer(handlers *handler.Handlers, cfg config.ClientDiagnostics, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil || cfg.Address == "" {
		return nil, errNoServersAreCreated
	}

	return newHTTPServer(handlers.HTTP.Init(), cfg.Address, logger.WithComponent("diagnostics")), nil
}
