package protocol

import (
	"context"

	"github.com/dmitrijs2005/kcc/internal/models"
)

// Backend is a kind of topic store.
type Backend interface {
	// Name identifies the backend in logs and errors.
	Name() string

	// Accept reports whether the backend understands the host's scheme.
	// It has no side effects.
	Accept(host models.Host) bool

	// Connect checks backend-specific preconditions and returns a session
	// bound to host.
	Connect(ctx context.Context, host models.Host) (Session, error)
}

// Session is a backend bound to one host.
type Session interface {
	ID() string
	Host() models.Host

	// ReadTopics returns every topic stored on the host.
	ReadTopics(ctx context.Context) (models.TopicSet, error)

	// CreateTopic stores a new, empty topic owned by topic.Owner.
	CreateTopic(ctx context.Context, topic models.Topic) error

	// JoinTopic and LeaveTopic only check that the topic exists;
	// membership is recorded by the caller.
	JoinTopic(ctx context.Context, name string) error
	LeaveTopic(ctx context.Context, name string) error

	// DeleteTopic removes the topic if topic.Owner is its owner.
	DeleteTopic(ctx context.Context, topic models.Topic) error

	// ReadMessages returns the last limit messages (all when limit is 0),
	// keeping only those written by author when author is not empty.
	ReadMessages(ctx context.Context, topicName string, limit int, author string) ([]models.Message, error)

	// SendMessage appends message to its topic.
	SendMessage(ctx context.Context, message models.Message) error
}
