// Package profile persists the local kcc identity: the user, the topics it
// joined and the registered host. Values live in a small SQLite key/value
// table migrated with goose.
package profile

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/kcc/internal/common"
	"github.com/dmitrijs2005/kcc/internal/dbx"
	"github.com/dmitrijs2005/kcc/internal/models"
)

const (
	keyUserName   = "user.name"
	keyUserTopics = "user.topics"
	keyHostURL    = "host.url"

	topicListSeparator = ","
)

var (
	errNoUser     = fmt.Errorf("user %w: no user has been created yet", common.ErrNotFound)
	errUserExists = fmt.Errorf("user %w: only one local user is allowed", common.ErrConflict)
	errNoHost     = fmt.Errorf("host %w: no host has been registered yet", common.ErrNotFound)
)

// Store is the profile of the local user.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) ReadUser(ctx context.Context) (models.User, error) {
	return readUser(ctx, kv{db: s.db})
}

func readUser(ctx context.Context, r kv) (models.User, error) {
	name, ok, err := r.get(ctx, keyUserName)
	if err != nil {
		return models.User{}, err
	}
	if !ok {
		return models.User{}, errNoUser
	}

	userName, err := models.NewUserName(name)
	if err != nil {
		return models.User{}, fmt.Errorf("stored user: %w", err)
	}

	list, _, err := r.get(ctx, keyUserTopics)
	if err != nil {
		return models.User{}, err
	}

	var topics []models.Topic
	for _, item := range strings.Split(list, topicListSeparator) {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		t, err := models.NewTopic(item)
		if err != nil {
			return models.User{}, fmt.Errorf("stored topics: %w", err)
		}
		topics = append(topics, t)
	}

	return models.NewUser(userName, topics...), nil
}

// CreateUser stores a new user with no topics. Only one user may exist.
func (s *Store) CreateUser(ctx context.Context, name string) (models.User, error) {
	userName, err := models.NewUserName(name)
	if err != nil {
		return models.User{}, err
	}

	err = dbx.WithTx(ctx, s.db, func(tx dbx.DBTX) error {
		r := kv{db: tx}
		_, exists, err := r.get(ctx, keyUserName)
		if err != nil {
			return err
		}
		if exists {
			return errUserExists
		}
		if err := r.set(ctx, keyUserName, userName.Value()); err != nil {
			return err
		}
		return r.set(ctx, keyUserTopics, "")
	})
	if err != nil {
		return models.User{}, err
	}
	return models.NewUser(userName), nil
}

// UpdateUser overwrites the stored user with u.
func (s *Store) UpdateUser(ctx context.Context, u models.User) error {
	return dbx.WithTx(ctx, s.db, func(tx dbx.DBTX) error {
		return updateUser(ctx, kv{db: tx}, u)
	})
}

func updateUser(ctx context.Context, r kv, u models.User) error {
	_, exists, err := r.get(ctx, keyUserName)
	if err != nil {
		return err
	}
	if !exists {
		return errNoUser
	}
	if err := r.set(ctx, keyUserName, u.Name.Value()); err != nil {
		return err
	}
	return r.set(ctx, keyUserTopics, strings.Join(u.TopicNames(), topicListSeparator))
}

// RenameUser changes the stored user name and keeps its topics.
func (s *Store) RenameUser(ctx context.Context, name string) (models.User, error) {
	return dbx.InTx(ctx, s.db, func(tx dbx.DBTX) (models.User, error) {
		r := kv{db: tx}
		u, err := readUser(ctx, r)
		if err != nil {
			return models.User{}, err
		}
		if err := u.Name.Rename(name); err != nil {
			return models.User{}, err
		}
		return u, updateUser(ctx, r, u)
	})
}

// DeleteUser removes the user and returns what was stored.
func (s *Store) DeleteUser(ctx context.Context) (models.User, error) {
	return dbx.InTx(ctx, s.db, func(tx dbx.DBTX) (models.User, error) {
		r := kv{db: tx}
		u, err := readUser(ctx, r)
		if err != nil {
			return models.User{}, err
		}
		return u, r.delete(ctx, keyUserName, keyUserTopics)
	})
}

func (s *Store) ReadHost(ctx context.Context) (models.Host, error) {
	address, ok, err := kv{db: s.db}.get(ctx, keyHostURL)
	if err != nil {
		return models.Host{}, err
	}
	if !ok {
		return models.Host{}, errNoHost
	}

	host, err := models.ParseHost(address)
	if err != nil {
		return models.Host{}, fmt.Errorf("stored host: %w", err)
	}
	return host, nil
}

// RegisterHost stores host, replacing any previous one. Checking that a
// backend can serve it is the caller's job.
func (s *Store) RegisterHost(ctx context.Context, host models.Host) error {
	if host.IsZero() {
		return common.NewValidationError("host", "", "it must not be empty")
	}
	return kv{db: s.db}.set(ctx, keyHostURL, host.String())
}

// UnregisterHost removes the host and returns what was stored.
func (s *Store) UnregisterHost(ctx context.Context) (models.Host, error) {
	return dbx.InTx(ctx, s.db, func(tx dbx.DBTX) (models.Host, error) {
		r := kv{db: tx}
		address, ok, err := r.get(ctx, keyHostURL)
		if err != nil {
			return models.Host{}, err
		}
		if !ok {
			return models.Host{}, errNoHost
		}
		host, err := models.ParseHost(address)
		if err != nil {
			return models.Host{}, fmt.Errorf("stored host: %w", err)
		}
		return host, r.delete(ctx, keyHostURL)
	})
}
