// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-msg-sync/internal/logger"
	"github.com/MKhiriev/go-msg-sync/internal/utils"
	"github.com/MKhiriev/go-msg-sync/models"
)

type resolveOneOnOneRequest struct {
	// User is "value@domain".
	User        string `json:"user"`
	Synchronize bool   `json:"synchronize"`
}

type resolveOneOnOneResponse struct {
	Conversation models.ConversationID `json:"conversation"`
}

// resolveOneOnOne accepts the user either as a JSON body or as the "user"
// and "synchronize" query parameters.
func (h *Handler) resolveOneOnOne(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	req, err := decodeResolveRequest(r)
	if err != nil {
		log.Err(err).Msg("invalid one-on-one resolve request")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	user, err := models.ParseQualifiedID(req.User)
	if err != nil {
		log.Err(err).Msg("invalid user id")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	conversation, err := h.oneOnOne.ResolveOneOnOneConversationWithUser(r.Context(), user, req.Synchronize)
	if err != nil {
		log.Err(err).Str("user", user.LogString()).Msg("one-on-one resolution failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	if _, err = utils.WriteJSON(w, resolveOneOnOneResponse{Conversation: conversation}, http.StatusOK); err != nil {
		log.Err(err).Msg("failed to write one-on-one response")
	}
}

func decodeResolveRequest(r *http.Request) (resolveOneOnOneRequest, error) {
	var req resolveOneOnOneRequest

	if r.Body != nil {
		err := json.NewDecoder(r.Body).Decode(&req)
		if err != nil && !errors.Is(err, io.EOF) {
			return req, fmt.Errorf("invalid JSON body: %w", err)
		}
	}

	query := r.URL.Query()
	if req.User == "" {
		req.User = query.Get("user")
	}
	if raw := query.Get("synchronize"); raw != "" {
		sync, err := strconv.ParseBool(raw)
		if err != nil {
			return req, fmt.Errorf("invalid synchronize parameter: %w", err)
		}
		req.Synchronize = sync
	}

	if req.User == "" {
		return req, ErrNoUserProvided
	}
	return req, nil
}
