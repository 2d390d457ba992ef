package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")

	// ErrEventNotFound is returned by PendingEvents when the requested
	// cursor is no longer known to the backend.
	ErrEventNotFound = errors.New("event cursor not found")

	// ErrLiveStreamClosed is carried by LiveEventClosed when the server
	// ended the live stream.
	ErrLiveStreamClosed = errors.New("live event stream closed")
)
