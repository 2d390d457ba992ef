package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-msg-sync/models"
)

var (
	// ErrSelfUserDeleted means the account was deleted on the backend.
	// Sync gives up and the session is logged out.
	ErrSelfUserDeleted = errors.New("self user was deleted")

	// ErrClientRemoved means this device was removed from the account.
	ErrClientRemoved = errors.New("client was removed")

	// ErrNoCommonProtocol is returned by ProtocolSelector when the self
	// user and the other user share no protocol.
	ErrNoCommonProtocol = errors.New("no common protocol")

	// ErrOtherUserNeedsUpdate is the ErrNoCommonProtocol case where the
	// self user supports MLS and the other user does not yet.
	ErrOtherUserNeedsUpdate = fmt.Errorf("%w: other user needs to update", ErrNoCommonProtocol)
	ErrSelfUserNeedsUpdate  = fmt.Errorf("%w: self user needs to update", ErrNoCommonProtocol)

	// ErrMLSNotAvailable is returned by operations that need the MLS
	// backend when the device has none.
	ErrMLSNotAvailable = errors.New("mls is not available on this client")

	ErrNotMLSConversation = errors.New("conversation is not an mls conversation")

	// ErrMissingEventCursor means incremental sync started without a last
	// processed event id. Only a slow sync can recreate it.
	ErrMissingEventCursor = errors.New("no last processed event id")

	ErrNoProteusOneOnOne = errors.New("no proteus one-on-one conversation")

	ErrUnknownEventType = errors.New("unknown event type")
	ErrMalformedEvent   = errors.New("malformed event payload")
)

// SyncError is a slow sync failure tagged with the step that failed.
type SyncError struct {
	Step models.SlowSyncStep
	Err  error
}

func (e *SyncError) Error() string {
	return fmt.Sprintf("slow sync step %s: %v", e.Step, e.Err)
}

func (e *SyncError) Unwrap() error {
	return e.Err
}

// MigrationStage is the part of a one-on-one migration that failed.
type MigrationStage string

const (
	// MigrationStageResolve failures happen before anything was written.
	MigrationStageResolve MigrationStage = "resolve"
	// MigrationStageMoveMessages failures leave the active conversation
	// pointer untouched.
	MigrationStageMoveMessages MigrationStage = "move_messages"
	// MigrationStageUpdatePointer failures happen after history was moved.
	// The next resolution pass corrects the pointer.
	MigrationStageUpdatePointer MigrationStage = "update_pointer"
)

// MigrationError is a one-on-one migration failure tagged with its stage.
type MigrationError struct {
	Stage MigrationStage
	User  models.UserID
	Err   error
}

func (e *MigrationError) Error() string {
	return fmt.Sprintf("one-on-one migration with %s failed at %s: %v", e.User.LogString(), e.Stage, e.Err)
}

func (e *MigrationError) Unwrap() error {
	return e.Err
}
