package store

import (
	"context"
	"errors"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-msg-sync/models"
)

var userRowColumns = []string{
	"id", "domain", "name", "handle", "team_id", "user_type", "connection_state",
	"supported_protocols", "deleted", "active_one_on_one_id", "active_one_on_one_domain",
}

func TestUserRepository_SelfUser(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db, db.logger)

	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE is_self = ? LIMIT 1")).
		WithArgs(true).
		WillReturnRows(sqlmock.NewRows([]string{"id", "domain", "name", "handle", "team_id", "supported_protocols"}).
			AddRow("me", "wire.com", "Me", "me", "team-1", "[0,1]"))

	self, err := repo.SelfUser(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.UserID{Value: "me", Domain: "wire.com"}, self.ID)
	assert.Equal(t, models.TeamID("team-1"), self.TeamID)
	assert.Equal(t, []models.SupportedProtocol{models.SupportedProtocolProteus, models.SupportedProtocolMLS}, self.SupportedProtocols)
}

func TestUserRepository_SelfUserNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db, db.logger)

	mock.ExpectQuery("FROM users").
		WillReturnRows(sqlmock.NewRows([]string{"id", "domain", "name", "handle", "team_id", "supported_protocols"}))

	_, err := repo.SelfUser(context.Background())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserRepository_UpsertSelfUser(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db, db.logger)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO users (id,domain,name,handle,team_id,supported_protocols,is_self)")).
		WithArgs("me", "wire.com", "Me", "me", "", "[1]", true).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.UpsertSelfUser(context.Background(), models.SelfUser{
		ID:                 models.UserID{Value: "me", Domain: "wire.com"},
		Name:               "Me",
		Handle:             "me",
		SupportedProtocols: []models.SupportedProtocol{models.SupportedProtocolMLS},
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_UserByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db, db.logger)

	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE domain = ? AND id = ?")).
		WithArgs("wire.com", "bob").
		WillReturnRows(sqlmock.NewRows(userRowColumns).
			AddRow("bob", "wire.com", "Bob", "bob", "team-1", 0, 3, "[0]", false, "conv-9", "wire.com"))

	u, err := repo.UserByID(context.Background(), models.UserID{Value: "bob", Domain: "wire.com"})
	require.NoError(t, err)
	assert.Equal(t, models.ConnectionAccepted, u.Connection)
	assert.Equal(t, []models.SupportedProtocol{models.SupportedProtocolProteus}, u.SupportedProtocols)
	require.NotNil(t, u.ActiveOneOnOneConversationID)
	assert.Equal(t, models.ConversationID{Value: "conv-9", Domain: "wire.com"}, *u.ActiveOneOnOneConversationID)
}

func TestUserRepository_UserByIDWithoutActiveConversation(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db, db.logger)

	mock.ExpectQuery("FROM users").
		WillReturnRows(sqlmock.NewRows(userRowColumns).
			AddRow("bob", "wire.com", "Bob", "bob", "", 0, 0, "[]", false, nil, nil))

	u, err := repo.UserByID(context.Background(), models.UserID{Value: "bob", Domain: "wire.com"})
	require.NoError(t, err)
	assert.Nil(t, u.ActiveOneOnOneConversationID)
	assert.Empty(t, u.SupportedProtocols)
}

func TestUserRepository_UserByIDMalformedProtocols(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db, db.logger)

	mock.ExpectQuery("FROM users").
		WillReturnRows(sqlmock.NewRows(userRowColumns).
			AddRow("bob", "wire.com", "Bob", "bob", "", 0, 0, "mls", false, nil, nil))

	_, err := repo.UserByID(context.Background(), models.UserID{Value: "bob", Domain: "wire.com"})
	assert.ErrorIs(t, err, ErrScanningRow)
}

func TestUserRepository_UpsertUsersRollsBack(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db, db.logger)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO users").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO users").WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	err := repo.UpsertUsers(context.Background(), []models.OtherUser{
		{ID: models.UserID{Value: "a"}},
		{ID: models.UserID{Value: "b"}},
	})
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_UsersWithOneOnOneConversation(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db, db.logger)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT DISTINCT")).
		WithArgs(int64(models.ConversationTypeOneOnOne)).
		WillReturnRows(sqlmock.NewRows(userRowColumns).
			AddRow("a", "d", "A", "a", "", 0, 3, "[0,1]", false, nil, nil).
			AddRow("b", "d", "B", "b", "", 0, 3, "[0]", false, "c1", "d"))

	users, err := repo.UsersWithOneOnOneConversation(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "a", users[0].ID.Value)
	assert.NotNil(t, users[1].ActiveOneOnOneConversationID)
}

func TestUserRepository_UpdateActiveOneOnOneConversation(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db, db.logger)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE users SET active_one_on_one_id = ?, active_one_on_one_domain = ? WHERE domain = ? AND id = ?")).
		WithArgs("conv-1", "d", "d", "bob").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateActiveOneOnOneConversation(context.Background(),
		models.UserID{Value: "bob", Domain: "d"}, models.ConversationID{Value: "conv-1", Domain: "d"})
	require.NoError(t, err)

	mock.ExpectExec("UPDATE users").WillReturnResult(sqlmock.NewResult(0, 0))
	err = repo.UpdateActiveOneOnOneConversation(context.Background(),
		models.UserID{Value: "ghost", Domain: "d"}, models.ConversationID{Value: "conv-1", Domain: "d"})
	assert.ErrorIs(t, err, ErrNothingUpdated)
}
