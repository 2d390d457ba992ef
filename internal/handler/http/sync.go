package http

import (
	"net/http"

	"github.com/MKhiriev/go-msg-sync/internal/logger"
	"github.com/MKhiriev/go-msg-sync/internal/service"
	"github.com/MKhiriev/go-msg-sync/internal/utils"
	"github.com/MKhiriev/go-msg-sync/models"
)

type slowSyncResponse struct {
	State   models.SlowSyncState `json:"state"`
	Step    string               `json:"step,omitempty"`
	Error   string               `json:"error,omitempty"`
	RetryIn string               `json:"retry_in,omitempty"`
}

type incrementalSyncResponse struct {
	State   models.IncrementalSyncState `json:"state"`
	Error   string                      `json:"error,omitempty"`
	RetryIn string                      `json:"retry_in,omitempty"`
}

type syncStatusResponse struct {
	Criteria    models.SyncCriteriaResolution `json:"criteria"`
	Slow        slowSyncResponse              `json:"slow_sync"`
	Incremental incrementalSyncResponse       `json:"incremental_sync"`
}

func newSyncStatusResponse(status service.SyncStatus) syncStatusResponse {
	resp := syncStatusResponse{
		Criteria: status.Criteria,
		Slow:     slowSyncResponse{State: status.Slow.State},
		Incremental: incrementalSyncResponse{
			State: status.Incremental.State,
		},
	}

	if status.Slow.State == models.SlowSyncOngoing {
		resp.Slow.Step = status.Slow.Step.String()
	}
	if status.Slow.Err != nil {
		resp.Slow.Error = status.Slow.Err.Error()
	}
	if status.Slow.RetryIn > 0 {
		resp.Slow.RetryIn = status.Slow.RetryIn.String()
	}

	if status.Incremental.Err != nil {
		resp.Incremental.Error = status.Incremental.Err.Error()
	}
	if status.Incremental.RetryIn > 0 {
		resp.Incremental.RetryIn = status.Incremental.RetryIn.String()
	}
	return resp
}

func (h *Handler) syncStatus(w http.ResponseWriter, r *http.Request) {
	if _, err := utils.WriteJSON(w, newSyncStatusResponse(h.sync.Status()), http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("failed to write sync status")
	}
}

func (h *Handler) syncCriteria(w http.ResponseWriter, r *http.Request) {
	if _, err := utils.WriteJSON(w, h.sync.Status().Criteria, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("failed to write sync criteria")
	}
}

// restartSlowSync answers 202: the restart happens in the background.
func (h *Handler) restartSlowSync(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if err := h.sync.ForceSlowSync(r.Context()); err != nil {
		log.Err(err).Msg("slow sync restart failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	log.Info().Msg("slow sync restart requested over diagnostics api")
	w.WriteHeader(http.StatusAccepted)
}
