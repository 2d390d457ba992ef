package http

import (
	"context"

	"github.com/MKhiriev/go-msg-sync/internal/logger"
	"github.com/MKhiriev/go-msg-sync/internal/service"
	"github.com/MKhiriev/go-msg-sync/models"
)

// SyncController is the part of the sync executor the API drives.
type SyncController interface {
	Status() service.SyncStatus
	ForceSlowSync(ctx context.Context) error
}

type Handler struct {
	sync     SyncController
	oneOnOne service.OneOnOneResolver
	build    models.BuildInfo

	// token guards /api routes. Empty disables the check.
	token string

	logger *logger.Logger
}

func NewHandler(services *service.ClientServices, build models.BuildInfo, token string, logger *logger.Logger) *Handler {
	logger.Info().Bool("auth", token != "").Msg("diagnostics http handler created")
	return &Handler{
		sync:     services.Sync,
		oneOnOne: services.OneOnOne,
		build:    build,
		token:    token,
		logger:   logger,
	}
}
