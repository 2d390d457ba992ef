package handler

import (
	"github.com/MKhiriev/go-msg-sync/internal/config"
	"github.com/MKhiriev/go-msg-sync/internal/handler/http"
	"github.com/MKhiriev/go-msg-sync/internal/logger"
	"github.com/MKhiriev/go-msg-sync/internal/service"
	"github.com/MKhiriev/go-msg-sync/models"
)

type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers builds the diagnostics handlers. It fails with
// errNoHandlersAreCreated when no diagnostics address is configured.
func NewHandlers(services *service.ClientServices, build models.BuildInfo, cfg config.ClientDiagnostics, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Address == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{HTTP: http.NewHandler(services, build, cfg.Token, logger)}, nil
}
