package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-msg-sync/internal/logger"
	"github.com/MKhiriev/go-msg-sync/models"
)

var userColumns = []string{
	"id", "domain", "name", "handle", "team_id", "user_type", "connection_state",
	"supported_protocols", "deleted", "active_one_on_one_id", "active_one_on_one_domain",
}

// userRepository is the SQLite-backed implementation of [UserRepository].
// The self user and other users share the users table and are told apart
// by the is_self flag.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

func encodeProtocols(protocols []models.SupportedProtocol) (string, error) {
	if protocols == nil {
		protocols = []models.SupportedProtocol{}
	}
	raw, err := json.Marshal(protocols)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

func decodeProtocols(raw string) ([]models.SupportedProtocol, error) {
	if raw == "" {
		return nil, nil
	}
	var protocols []models.SupportedProtocol
	if err := json.Unmarshal([]byte(raw), &protocols); err != nil {
		return nil, err
	}
	return protocols, nil
}

func scanOtherUser(row rowScanner) (models.OtherUser, error) {
	var (
		u            models.OtherUser
		teamID       string
		protocolsRaw string
		activeID     sql.NullString
		activeDomain sql.NullString
	)
	if err := row.Scan(
		&u.ID.Value, &u.ID.Domain, &u.Name, &u.Handle, &teamID, &u.Type, &u.Connection,
		&protocolsRaw, &u.Deleted, &activeID, &activeDomain,
	); err != nil {
		return models.OtherUser{}, err
	}

	protocols, err := decodeProtocols(protocolsRaw)
	if err != nil {
		return models.OtherUser{}, fmt.Errorf("decode supported protocols: %w", err)
	}
	u.SupportedProtocols = protocols
	u.TeamID = models.TeamID(teamID)
	if activeID.Valid {
		u.ActiveOneOnOneConversationID = &models.ConversationID{Value: activeID.String, Domain: activeDomain.String}
	}
	return u, nil
}

func (r *userRepository) SelfUser(ctx context.Context) (models.SelfUser, error) {
	stmt, args, err := r.db.builder.
		Select("id", "domain", "name", "handle", "team_id", "supported_protocols").
		From("users").
		Where(sq.Eq{"is_self": true}).
		Limit(1).
		ToSql()
	if err != nil {
		return models.SelfUser{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		self         models.SelfUser
		teamID       string
		protocolsRaw string
	)
	err = r.db.QueryRowContext(ctx, stmt, args...).
		Scan(&self.ID.Value, &self.ID.Domain, &self.Name, &self.Handle, &teamID, &protocolsRaw)
	if errors.Is(err, sql.ErrNoRows) {
		return models.SelfUser{}, ErrNotFound
	}
	if err != nil {
		r.logger.Err(err).Str("func", "*userRepository.SelfUser").Msg("error: scanning error")
		return models.SelfUser{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if self.SupportedProtocols, err = decodeProtocols(protocolsRaw); err != nil {
		return models.SelfUser{}, fmt.Errorf("decode supported protocols: %w", err)
	}
	self.TeamID = models.TeamID(teamID)
	return self, nil
}

func (r *userRepository) UpsertSelfUser(ctx context.Context, user models.SelfUser) error {
	protocols, err := encodeProtocols(user.SupportedProtocols)
	if err != nil {
		return fmt.Errorf("encode supported protocols: %w", err)
	}

	_, err = r.db.exec(ctx, r.db.builder.
		Insert("users").
		Columns("id", "domain", "name", "handle", "team_id", "supported_protocols", "is_self").
		Values(user.ID.Value, user.ID.Domain, user.Name, user.Handle, string(user.TeamID), protocols, true).
		Suffix(`ON CONFLICT(id, domain) DO UPDATE SET
			name = excluded.name,
			handle = excluded.handle,
			team_id = excluded.team_id,
			supported_protocols = excluded.supported_protocols,
			is_self = 1`))
	if err != nil {
		r.logger.Err(err).Str("func", "*userRepository.UpsertSelfUser").Msg("failed to upsert self user")
		return err
	}
	return nil
}

func (r *userRepository) UserByID(ctx context.Context, id models.UserID) (models.OtherUser, error) {
	stmt, args, err := r.db.builder.
		Select(userColumns...).
		From("users").
		Where(sq.Eq{"id": id.Value, "domain": id.Domain}).
		ToSql()
	if err != nil {
		return models.OtherUser{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	u, err := scanOtherUser(r.db.QueryRowContext(ctx, stmt, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.OtherUser{}, ErrNotFound
	}
	if err != nil {
		r.logger.Err(err).Str("func", "*userRepository.UserByID").Str("user_id", id.LogString()).Msg("error: scanning error")
		return models.OtherUser{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return u, nil
}

// UpsertUsers stores users fetched from the backend. The active one-on-one
// pointer is owned locally and never overwritten here.
func (r *userRepository) UpsertUsers(ctx context.Context, users []models.OtherUser) error {
	if len(users) == 0 {
		return nil
	}

	return r.db.inTx(ctx, func(tx *sql.Tx) error {
		for _, u := range users {
			protocols, err := encodeProtocols(u.SupportedProtocols)
			if err != nil {
				return fmt.Errorf("encode supported protocols: %w", err)
			}

			_, err = execTx(ctx, tx, r.db.builder.
				Insert("users").
				Columns("id", "domain", "name", "handle", "team_id", "user_type", "connection_state", "supported_protocols", "deleted").
				Values(u.ID.Value, u.ID.Domain, u.Name, u.Handle, string(u.TeamID), u.Type, u.Connection, protocols, u.Deleted).
				Suffix(`ON CONFLICT(id, domain) DO UPDATE SET
					name = excluded.name,
					handle = excluded.handle,
					team_id = excluded.team_id,
					user_type = excluded.user_type,
					connection_state = excluded.connection_state,
					supported_protocols = excluded.supported_protocols,
					deleted = excluded.deleted`))
			if err != nil {
				r.logger.Err(err).Str("func", "*userRepository.UpsertUsers").Str("user_id", u.ID.LogString()).Msg("failed to upsert user")
				return err
			}
		}
		return nil
	})
}

func (r *userRepository) MarkUserDeleted(ctx context.Context, id models.UserID) error {
	res, err := r.db.exec(ctx, r.db.builder.
		Update("users").
		Set("deleted", true).
		Where(sq.Eq{"id": id.Value, "domain": id.Domain}))
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *userRepository) OtherUserIDs(ctx context.Context) ([]models.UserID, error) {
	rows, err := r.db.query(ctx, r.db.builder.
		Select("id", "domain").
		From("users").
		Where(sq.Eq{"is_self": false}).
		OrderBy("id"))
	if err != nil {
		r.logger.Err(err).Str("func", "*userRepository.OtherUserIDs").Msg("failed to query user ids")
		return nil, err
	}
	defer rows.Close()

	var ids []models.UserID
	for rows.Next() {
		var id models.UserID
		if err := rows.Scan(&id.Value, &id.Domain); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return ids, nil
}

func (r *userRepository) UsersWithOneOnOneConversation(ctx context.Context) ([]models.OtherUser, error) {
	rows, err := r.db.QueryContext(ctx, selectUsersWithOneOnOne, models.ConversationTypeOneOnOne)
	if err != nil {
		r.logger.Err(err).Str("func", "*userRepository.UsersWithOneOnOneConversation").Msg("failed to query users")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var users []models.OtherUser
	for rows.Next() {
		u, err := scanOtherUser(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return users, nil
}

func (r *userRepository) UpdateActiveOneOnOneConversation(ctx context.Context, user models.UserID, conversation models.ConversationID) error {
	res, err := r.db.exec(ctx, r.db.builder.
		Update("users").
		Set("active_one_on_one_id", conversation.Value).
		Set("active_one_on_one_domain", conversation.Domain).
		Where(sq.Eq{"id": user.Value, "domain": user.Domain}))
	if err != nil {
		r.logger.Err(err).
			Str("func", "*userRepository.UpdateActiveOneOnOneConversation").
			Str("user_id", user.LogString()).
			Msg("failed to update active one-on-one conversation")
		return err
	}
	return requireAffected(res)
}
