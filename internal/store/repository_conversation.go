// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-msg-sync/internal/logger"
	"github.com/MKhiriev/go-msg-sync/models"
)

var conversationColumns = []string{
	"c.id", "c.domain", "c.name", "c.type", "c.protocol", "c.group_id", "c.group_state",
	"c.epoch", "c.team_id", "c.verification_status", "c.degraded_notified", "c.last_modified_date",
}

type conversationRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewConversationRepository(db *DB, logger *logger.Logger) ConversationRepository {
	return &conversationRepository{db: db, logger: logger}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanConversation(row rowScanner) (models.Conversation, error) {
	var (
		c            models.Conversation
		protocol     models.Protocol
		groupID      sql.NullString
		groupState   models.GroupState
		epoch        uint64
		lastModified sql.NullTime
		teamID       string
	)
	err := row.Scan(
		&c.ID.Value, &c.ID.Domain, &c.Name, &c.Type, &protocol, &groupID, &groupState,
		&epoch, &teamID, &c.VerificationStatus, &c.DegradedNotified, &lastModified,
	)
	if err != nil {
		return models.Conversation{}, err
	}

	c.TeamID = models.TeamID(teamID)
	if protocol == models.ProtocolMLS && groupID.Valid {
		c.ProtocolInfo = models.MLSProtocolInfo(models.GroupID(groupID.String), groupState, epoch)
	} else {
		c.ProtocolInfo = models.ProteusProtocolInfo()
	}
	if lastModified.Valid {
		t := lastModified.Time
		c.LastModifiedDate = &t
	}
	return c, nil
}

func (r *conversationRepository) selectConversations() sq.SelectBuilder {
	return r.db.builder.Select(conversationColumns...).From("conversations c")
}

func (r *conversationRepository) getOne(ctx context.Context, fn string, query sq.SelectBuilder) (models.Conversation, error) {
	stmt, args, err := query.Limit(1).ToSql()
	if err != nil {
		return models.Conversation{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	c, err := scanConversation(r.db.QueryRowContext(ctx, stmt, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Conversation{}, ErrNotFound
	}
	if err != nil {
		r.logger.Err(err).Str("func", fn).Msg("failed to scan conversation row")
		return models.Conversation{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return c, nil
}

func (r *conversationRepository) getMany(ctx context.Context, fn string, query sq.SelectBuilder) ([]models.Conversation, error) {
	rows, err := r.db.query(ctx, query)
	if err != nil {
		r.logger.Err(err).Str("func", fn).Msg("failed to query conversations")
		return nil, err
	}
	defer rows.Close()

	var result []models.Conversation
	for rows.Next() {
		c, err := scanConversation(rows)
		if err != nil {
			r.logger.Err(err).Str("func", fn).Msg("failed to scan conversation row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return result, nil
}

func (r *conversationRepository) ConversationByID(ctx context.Context, id models.ConversationID) (models.Conversation, error) {
	return r.getOne(ctx, "conversationRepository.ConversationByID",
		r.selectConversations().Where(sq.Eq{"c.id": id.Value, "c.domain": id.Domain}))
}

func (r *conversationRepository) ConversationByGroupID(ctx context.Context, groupID models.GroupID) (models.Conversation, error) {
	return r.getOne(ctx, "conversationRepository.ConversationByGroupID",
		r.selectConversations().Where(sq.Eq{"c.group_id": string(groupID)}))
}

func (r *conversationRepository) ConversationsForUser(ctx context.Context, user models.UserID) ([]models.Conversation, error) {
	return r.getMany(ctx, "conversationRepository.ConversationsForUser",
		r.selectConversations().
			Join("conversation_members m ON m.conversation_id = c.id AND m.conversation_domain = c.domain").
			Where(sq.Eq{"m.user_id": user.Value, "m.user_domain": user.Domain}).
			OrderBy("c.created_at"))
}

func (r *conversationRepository) OneOnOneConversationsWithUser(ctx context.Context, user models.UserID, protocol models.Protocol) ([]models.ConversationID, error) {
	rows, err := r.db.query(ctx, r.db.builder.
		Select("c.id", "c.domain").
		From("conversations c").
		Join("conversation_members m ON m.conversation_id = c.id AND m.conversation_domain = c.domain").
		Where(sq.Eq{
			"m.user_id":     user.Value,
			"m.user_domain": user.Domain,
			"c.type":        models.ConversationTypeOneOnOne,
			"c.protocol":    protocol,
		}).
		OrderBy("c.created_at"))
	if err != nil {
		r.logger.Err(err).Str("func", "conversationRepository.OneOnOneConversationsWithUser").Msg("failed to query one-on-one conversations")
		return nil, err
	}
	defer rows.Close()

	var ids []models.ConversationID
	for rows.Next() {
		var id models.ConversationID
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

func (r *conversationRepository) ConversationsByGroupState(ctx context.Context, state models.GroupState) ([]models.Conversation, error) {
	return r.getMany(ctx, "conversationRepository.ConversationsByGroupState",
		r.selectConversations().Where(sq.Eq{"c.protocol": models.ProtocolMLS, "c.group_state": state}))
}

// UpsertConversations inserts or updates conversations. Locally owned
// fields (verification status, notification flag, group state and epoch of
// already known groups) are left untouched on update.
func (r *conversationRepository) UpsertConversations(ctx context.Context, conversations []models.Conversation) error {
	if len(conversations) == 0 {
		return nil
	}

	return r.db.inTx(ctx, func(tx *sql.Tx) error {
		for _, c := range conversations {
			var (
				groupID    any
				groupState models.GroupState
				epoch      uint64
				modified   any
			)
			if c.ProtocolInfo.IsMLS() {
				groupID = string(c.ProtocolInfo.MLS.GroupID)
				groupState = c.ProtocolInfo.MLS.GroupState
				epoch = c.ProtocolInfo.MLS.Epoch
			}
			if c.LastModifiedDate != nil {
				modified = *c.LastModifiedDate
			}

			_, err := execTx(ctx, tx, r.db.builder.
				Insert("conversations").
				Columns("id", "domain", "name", "type", "protocol", "group_id", "group_state", "epoch", "team_id", "last_modified_date").
				Values(c.ID.Value, c.ID.Domain, c.Name, c.Type, c.ProtocolInfo.Protocol, groupID, groupState, epoch, string(c.TeamID), modified).
				Suffix(`ON CONFLICT(id, domain) DO UPDATE SET
					name = excluded.name,
					type = excluded.type,
					protocol = excluded.protocol,
					group_id = COALESCE(excluded.group_id, conversations.group_id),
					team_id = excluded.team_id,
					last_modified_date = COALESCE(excluded.last_modified_date, conversations.last_modified_date)`))
			if err != nil {
				r.logger.Err(err).
					Str("func", "conversationRepository.UpsertConversations").
					Str("conversation_id", c.ID.LogString()).
					Msg("failed to upsert conversation")
				return err
			}
		}
		return nil
	})
}

func (r *conversationRepository) DeleteConversation(ctx context.Context, id models.ConversationID) error {
	_, err := r.db.exec(ctx, r.db.builder.
		Delete("conversations").
		Where(sq.Eq{"id": id.Value, "domain": id.Domain}))
	return err
}

func (r *conversationRepository) SetMembers(ctx context.Context, id models.ConversationID, members []models.UserID) error {
	return r.db.inTx(ctx, func(tx *sql.Tx) error {
		if _, err := execTx(ctx, tx, r.db.builder.
			Delete("conversation_members").
			Where(sq.Eq{"conversation_id": id.Value, "conversation_domain": id.Domain})); err != nil {
			return err
		}
		return r.insertMembers(ctx, tx, id, members)
	})
}

func (r *conversationRepository) AddMembers(ctx context.Context, id models.ConversationID, members []models.UserID) error {
	return r.db.inTx(ctx, func(tx *sql.Tx) error {
		return r.insertMembers(ctx, tx, id, members)
	})
}

func (r *conversationRepository) insertMembers(ctx context.Context, tx *sql.Tx, id models.ConversationID, members []models.UserID) error {
	if len(members) == 0 {
		return nil
	}
	insert := r.db.builder.
		Insert("conversation_members").
		Options("OR IGNORE").
		Columns("conversation_id", "conversation_domain", "user_id", "user_domain")
	for _, m := range members {
		insert = insert.Values(id.Value, id.Domain, m.Value, m.Domain)
	}
	_, err := execTx(ctx, tx, insert)
	if err != nil {
		r.logger.Err(err).Str("func", "conversationRepository.insertMembers").Str("conversation_id", id.LogString()).Msg("failed to insert members")
	}
	return err
}

func (r *conversationRepository) RemoveMembers(ctx context.Context, id models.ConversationID, members []models.UserID) error {
	if len(members) == 0 {
		return nil
	}
	or := sq.Or{}
	for _, m := range members {
		or = append(or, sq.Eq{"user_id": m.Value, "user_domain": m.Domain})
	}
	_, err := r.db.exec(ctx, r.db.builder.
		Delete("conversation_members").
		Where(sq.Eq{"conversation_id": id.Value, "conversation_domain": id.Domain}).
		Where(or))
	return err
}

func (r *conversationRepository) UpdateGroupState(ctx context.Context, groupID models.GroupID, state models.GroupState, epoch uint64) error {
	res, err := r.db.exec(ctx, r.db.builder.
		Update("conversations").
		Set("group_state", state).
		Set("epoch", epoch).
		Where(sq.Eq{"group_id": string(groupID)}))
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *conversationRepository) UpdateLastModifiedDate(ctx context.Context, id models.ConversationID, date time.Time) error {
	return r.updateColumn(ctx, id, "last_modified_date", date)
}

func (r *conversationRepository) UpdateVerificationStatus(ctx context.Context, id models.ConversationID, status models.VerificationStatus) error {
	return r.updateColumn(ctx, id, "verification_status", status)
}

func (r *conversationRepository) SetDegradedNotified(ctx context.Context, id models.ConversationID, notified bool) error {
	return r.updateColumn(ctx, id, "degraded_notified", notified)
}

func (r *conversationRepository) updateColumn(ctx context.Context, id models.ConversationID, column string, value any) error {
	res, err := r.db.exec(ctx, r.db.builder.
		Update("conversations").
		Set(column, value).
		Where(sq.Eq{"id": id.Value, "domain": id.Domain}))
	if err != nil {
		r.logger.Err(err).
			Str("func", "conversationRepository.updateColumn").
			Str("column", column).
			Str("conversation_id", id.LogString()).
			Msg("failed to update conversation")
		return err
	}
	return requireAffected(res)
}

func (r *conversationRepository) GroupVerificationData(ctx context.Context, groupID models.GroupID) (models.GroupVerificationData, error) {
	c, err := r.ConversationByGroupID(ctx, groupID)
	if err != nil {
		return models.GroupVerificationData{}, err
	}

	rows, err := r.db.QueryContext(ctx, selectMemberProfiles, c.ID.Value, c.ID.Domain)
	if err != nil {
		r.logger.Err(err).Str("func", "conversationRepository.GroupVerificationData").Msg("failed to query member profiles")
		return models.GroupVerificationData{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	data := models.GroupVerificationData{
		ConversationID:     c.ID,
		VerificationStatus: c.VerificationStatus,
		DegradedNotified:   c.DegradedNotified,
		Members:            make(map[models.UserID]models.MemberProfile),
	}
	for rows.Next() {
		var (
			id      models.UserID
			name    sql.NullString
			handle  sql.NullString
			present bool
		)
		if err := rows.Scan(&id.Value, &id.Domain, &name, &handle, &present); err != nil {
			return models.GroupVerificationData{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		if !present {
			data.Missing = append(data.Missing, id)
			continue
		}
		data.Members[id] = models.MemberProfile{Name: name.String, Handle: handle.String}
	}
	if err := rows.Err(); err != nil {
		return models.GroupVerificationData{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return data, nil
}
