package crypto

import (
	"context"

	"github.com/MKhiriev/go-msg-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// MLSContext is the MLS side of an open transaction. It is only valid
// inside the transaction function that received it.
type MLSContext interface {
	// ConversationExists reports whether the device is a member of groupID.
	ConversationExists(ctx context.Context, groupID models.GroupID) (bool, error)

	// ProcessWelcomeMessage joins the group described by a welcome message.
	ProcessWelcomeMessage(ctx context.Context, welcome []byte) (models.GroupID, error)

	// JoinByExternalCommit joins a group using its public group info.
	JoinByExternalCommit(ctx context.Context, groupInfo []byte) (models.GroupID, error)

	// ConversationEpoch returns the current epoch of groupID.
	ConversationEpoch(ctx context.Context, groupID models.GroupID) (uint64, error)
}

// ProteusContext is the Proteus side of an open transaction.
type ProteusContext interface {
	// SessionExists reports whether a pairwise session with the given id
	// is established.
	SessionExists(ctx context.Context, sessionID string) (bool, error)

	// Decrypt decrypts a message received over the session, creating the
	// session from a prekey message when needed.
	Decrypt(ctx context.Context, sessionID string, message []byte) ([]byte, error)
}

// MLSClient is a handle on the MLS backend.
type MLSClient interface {
	// Transaction runs fn inside one backend transaction. An error from fn
	// rolls the transaction back and is returned.
	Transaction(ctx context.Context, name string, fn func(ctx context.Context, mls MLSContext) error) error

	// IsGroupVerified reports whether every member credential of groupID is
	// cryptographically verified.
	IsGroupVerified(ctx context.Context, groupID models.GroupID) (bool, error)

	// MemberIdentities returns the certificate identities of every device of
	// the given members of groupID.
	MemberIdentities(ctx context.Context, groupID models.GroupID, users []models.UserID) (map[models.UserID][]models.MemberIdentity, error)

	// EpochChanges streams epoch changes until ctx is done.
	EpochChanges(ctx context.Context) (<-chan models.EpochChange, error)
}

// ProteusClient is a handle on the Proteus backend.
type ProteusClient interface {
	Transaction(ctx context.Context, name string, fn func(ctx context.Context, proteus ProteusContext) error) error
}
