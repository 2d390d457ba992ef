package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-msg-sync/internal/logger"
	"github.com/MKhiriev/go-msg-sync/internal/utils"
	"github.com/MKhiriev/go-msg-sync/models"
)

var systemMessageKinds = map[string]models.SystemMessageKind{
	models.SystemMessageProtocolChanged.String():      models.SystemMessageProtocolChanged,
	models.SystemMessageStartedUnverified.String():    models.SystemMessageStartedUnverified,
	models.SystemMessageVerificationDegraded.String(): models.SystemMessageVerificationDegraded,
	models.SystemMessageVerified.String():             models.SystemMessageVerified,
}

type messageRepository struct {
	db     *DB
	ids    utils.IDGenerator
	logger *logger.Logger
}

func NewMessageRepository(db *DB, logger *logger.Logger) MessageRepository {
	return &messageRepository{db: db, ids: utils.NewUUIDGenerator(), logger: logger}
}

func (r *messageRepository) MoveMessagesToConversation(ctx context.Context, from, to models.ConversationID) error {
	_, err := r.db.ExecContext(ctx, moveMessages, to.Value, to.Domain, from.Value, from.Domain)
	if err != nil {
		r.logger.Err(err).
			Str("func", "messageRepository.MoveMessagesToConversation").
			Str("from", from.LogString()).
			Str("to", to.LogString()).
			Msg("failed to move messages")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

// InsertSystemMessage stores message. Empty ID and zero Date are filled in.
func (r *messageRepository) InsertSystemMessage(ctx context.Context, message models.SystemMessage) error {
	if message.ID == "" {
		message.ID = r.ids.Generate()
	}
	if message.Date.IsZero() {
		message.Date = time.Now().UTC()
	}

	var protocol any
	if message.Kind == models.SystemMessageProtocolChanged {
		protocol = message.Protocol
	}

	_, err := r.db.exec(ctx, r.db.builder.
		Insert("messages").
		Columns("id", "conversation_id", "conversation_domain", "sender_id", "sender_domain", "kind", "protocol", "created_at").
		Values(message.ID, message.ConversationID.Value, message.ConversationID.Domain,
			message.Sender.Value, message.Sender.Domain, message.Kind.String(), protocol, message.Date))
	if err != nil {
		r.logger.Err(err).
			Str("func", "messageRepository.InsertSystemMessage").
			Str("kind", message.Kind.String()).
			Msg("failed to insert system message")
		return err
	}
	return nil
}

func (r *messageRepository) SystemMessages(ctx context.Context, conversation models.ConversationID) ([]models.SystemMessage, error) {
	kinds := []string{
		models.SystemMessageProtocolChanged.String(),
		models.SystemMessageStartedUnverified.String(),
		models.SystemMessageVerificationDegraded.String(),
		models.SystemMessageVerified.String(),
	}

	rows, err := r.db.query(ctx, r.db.builder.
		Select("id", "conversation_id", "conversation_domain", "sender_id", "sender_domain", "kind", "protocol", "created_at").
		From("messages").
		Where(sq.Eq{
			"conversation_id":     conversation.Value,
			"conversation_domain": conversation.Domain,
			"kind":                kinds,
		}).
		OrderBy("created_at"))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []models.SystemMessage
	for rows.Next() {
		var (
			m        models.SystemMessage
			kind     string
			protocol sql.NullInt64
		)
		if err := rows.Scan(&m.ID, &m.ConversationID.Value, &m.ConversationID.Domain,
			&m.Sender.Value, &m.Sender.Domain, &kind, &protocol, &m.Date); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		m.Kind = systemMessageKinds[kind]
		if protocol.Valid {
			m.Protocol = models.Protocol(protocol.Int64)
		}
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return result, nil
}
