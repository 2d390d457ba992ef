package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-msg-sync/internal/adapter"
	"github.com/MKhiriev/go-msg-sync/internal/logger"
	"github.com/MKhiriev/go-msg-sync/internal/store"
	"github.com/MKhiriev/go-msg-sync/models"
)

type userRefresher struct {
	users  store.UserRepository
	remote adapter.UsersAdapter
	logger *logger.Logger
}

// NewUserRefresher returns a refresher that fetches profiles from remote
// and stores them in users. The locally known connection state survives a
// refresh because profile responses do not carry it.
func NewUserRefresher(users store.UserRepository, remote adapter.UsersAdapter, logger *logger.Logger) UserRefresher {
	return &userRefresher{users: users, remote: remote, logger: logger}
}

func (r *userRefresher) RefreshUser(ctx context.Context, id models.UserID) error {
	user, err := r.remote.FetchUser(ctx, id)
	if err != nil {
		return fmt.Errorf("fetch user %s: %w", id.LogString(), err)
	}
	return r.store(ctx, []models.OtherUser{user})
}

func (r *userRefresher) RefreshUsers(ctx context.Context, ids []models.UserID) error {
	if len(ids) == 0 {
		return nil
	}
	users, err := r.remote.FetchUsers(ctx, ids)
	if err != nil {
		return fmt.Errorf("fetch %d users: %w", len(ids), err)
	}
	return r.store(ctx, users)
}

func (r *userRefresher) RefreshAllUsers(ctx context.Context) error {
	ids, err := r.users.OtherUserIDs(ctx)
	if err != nil {
		return fmt.Errorf("list known users: %w", err)
	}
	return r.RefreshUsers(ctx, ids)
}

func (r *userRefresher) store(ctx context.Context, users []models.OtherUser) error {
	for i := range users {
		if users[i].Connection != models.ConnectionNotConnected {
			continue
		}
		local, err := r.users.UserByID(ctx, users[i].ID)
		switch {
		case errors.Is(err, store.ErrNotFound):
		case err != nil:
			return fmt.Errorf("read local user: %w", err)
		default:
			users[i].Connection = local.Connection
		}
	}

	if err := r.users.UpsertUsers(ctx, users); err != nil {
		return fmt.Errorf("store users: %w", err)
	}
	r.logger.Debug().Int("count", len(users)).Msg("user profiles refreshed")
	return nil
}
