package http

import (
	"net/http"

	"github.com/MKhiriev/go-msg-sync/internal/logger"
	"github.com/MKhiriev/go-msg-sync/internal/utils"
)

func (h *Handler) version(w http.ResponseWriter, r *http.Request) {
	if _, err := utils.WriteJSON(w, h.build, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("failed to write build info")
	}
}
