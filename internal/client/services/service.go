// Package services contains the kcc use cases: managing the local user and
// host, listing and managing topics, and reading and sending messages. It
// joins the profile store, the backend registry and a protocol session.
package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/kcc/internal/logging"
	"github.com/dmitrijs2005/kcc/internal/models"
	"github.com/dmitrijs2005/kcc/internal/protocol"
)

// ProfileStore persists the local user and the registered host.
type ProfileStore interface {
	ReadUser(ctx context.Context) (models.User, error)
	CreateUser(ctx context.Context, name string) (models.User, error)
	UpdateUser(ctx context.Context, u models.User) error
	RenameUser(ctx context.Context, name string) (models.User, error)
	DeleteUser(ctx context.Context) (models.User, error)

	ReadHost(ctx context.Context) (models.Host, error)
	RegisterHost(ctx context.Context, host models.Host) error
	UnregisterHost(ctx context.Context) (models.Host, error)
}

// Connector opens protocol sessions; *protocol.Registry implements it.
type Connector interface {
	Connect(ctx context.Context, host models.Host) (protocol.Session, error)
}

// ChatService defines every operation the CLI offers.
type ChatService interface {
	ReadUser(ctx context.Context) (models.User, error)
	CreateUser(ctx context.Context, name string) (models.User, error)
	RenameUser(ctx context.Context, name string) (models.User, error)
	DeleteUser(ctx context.Context) (models.User, error)

	ReadHost(ctx context.Context) (models.Host, error)
	RegisterHost(ctx context.Context, address string) (models.Host, error)
	UnregisterHost(ctx context.Context) (models.Host, error)

	ListTopics(ctx context.Context) ([]TopicView, error)
	CreateTopic(ctx context.Context, name string) (models.Topic, error)
	JoinTopic(ctx context.Context, name string) (models.Topic, error)
	LeaveTopic(ctx context.Context, name string) (models.Topic, error)
	DeleteTopic(ctx context.Context, name string) (models.Topic, error)

	ReadMessages(ctx context.Context, query string) (MessagePage, error)
	SendMessage(ctx context.Context, topicName, content string) ([]models.Message, error)
}

// TopicView is a topic on the host and whether the local user joined it.
type TopicView struct {
	Topic  models.Topic
	Joined bool
}

// MessagePage is the answer to a read query.
type MessagePage struct {
	Topic    models.Topic
	Author   string
	Messages []models.Message
}

// echoCount is how many messages SendMessage returns after sending.
const echoCount = 3

type chatService struct {
	profile   ProfileStore
	connector Connector
	log       logging.Logger
	takeLast  int
}

// NewChatService builds a ChatService. takeLast is the number of messages
// returned by queries that do not carry a count.
func NewChatService(profile ProfileStore, connector Connector, log logging.Logger, takeLast int) ChatService {
	return &chatService{profile: profile, connector: connector, log: log, takeLast: takeLast}
}

// connect opens a session on the registered host.
func (s *chatService) connect(ctx context.Context) (protocol.Session, error) {
	host, err := s.profile.ReadHost(ctx)
	if err != nil {
		return nil, err
	}
	session, err := s.connector.Connect(ctx, host)
	if err != nil {
		return nil, fmt.Errorf("host %s: %w", host, err)
	}
	return session, nil
}

// userAndSession loads the local user and opens a session.
func (s *chatService) userAndSession(ctx context.Context) (models.User, protocol.Session, error) {
	user, err := s.profile.ReadUser(ctx)
	if err != nil {
		return models.User{}, nil, err
	}
	session, err := s.connect(ctx)
	if err != nil {
		return models.User{}, nil, err
	}
	return user, session, nil
}
