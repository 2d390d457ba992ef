package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-msg-sync/internal/adapter"
	"github.com/MKhiriev/go-msg-sync/internal/crypto"
	"github.com/MKhiriev/go-msg-sync/internal/service"
	"github.com/MKhiriev/go-msg-sync/internal/store"
)

// errorStatusMap is checked in order; wrapped sentinels come before the
// sentinels they wrap.
var errorStatusMap = []struct {
	target error
	status int
}{
	{ErrNoUserProvided, http.StatusBadRequest},

	{service.ErrNoCommonProtocol, http.StatusConflict},
	{service.ErrMLSNotAvailable, http.StatusConflict},
	{service.ErrNoProteusOneOnOne, http.StatusNotFound},
	{crypto.ErrNoCryptoBackend, http.StatusServiceUnavailable},

	{store.ErrNotFound, http.StatusNotFound},
	{store.ErrBuildingSQLQuery, http.StatusInternalServerError},
	{store.ErrExecutingQuery, http.StatusInternalServerError},
	{store.ErrBeginningTransaction, http.StatusInternalServerError},
	{store.ErrCommitingTransaction, http.StatusInternalServerError},
	{store.ErrExecutingStatement, http.StatusInternalServerError},
	{store.ErrScanningRow, http.StatusInternalServerError},

	{adapter.ErrNotFound, http.StatusNotFound},
	{adapter.ErrUnauthorized, http.StatusBadGateway},
	{adapter.ErrForbidden, http.StatusBadGateway},
	{adapter.ErrBadGateway, http.StatusBadGateway},
	{adapter.ErrInternalServerError, http.StatusBadGateway},

	{context.DeadlineExceeded, http.StatusGatewayTimeout},
}

func statusFromError(err error) int {
	for _, e := range errorStatusMap {
		if errors.Is(err, e.target) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}
