package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/kcc/internal/common"
	"github.com/dmitrijs2005/kcc/internal/models"
	"github.com/dmitrijs2005/kcc/internal/query"
)

// ListTopics returns the host topics sorted by name. Joined topics that no
// longer exist on the host are dropped from the stored user.
func (s *chatService) ListTopics(ctx context.Context) ([]TopicView, error) {
	user, session, err := s.userAndSession(ctx)
	if err != nil {
		return nil, err
	}

	topics, err := session.ReadTopics(ctx)
	if err != nil {
		return nil, err
	}

	if pruned := user.Reconcile(topics); len(pruned) > 0 {
		if err := s.profile.UpdateUser(ctx, user); err != nil {
			return nil, err
		}
		for _, t := range pruned {
			s.log.Info(ctx, "left vanished topic", "topic", t.Name, "user", user.Name.Value())
		}
	}

	views := make([]TopicView, 0, len(topics))
	for _, t := range topics.Sorted() {
		views = append(views, TopicView{Topic: t, Joined: user.Joined(t.Name)})
	}
	return views, nil
}

// CreateTopic creates a topic owned by the local user, who joins it.
func (s *chatService) CreateTopic(ctx context.Context, name string) (models.Topic, error) {
	user, session, err := s.userAndSession(ctx)
	if err != nil {
		return models.Topic{}, err
	}

	topic, err := models.NewOwnedTopic(name, user.Name)
	if err != nil {
		return models.Topic{}, err
	}
	if err := session.CreateTopic(ctx, topic); err != nil {
		return models.Topic{}, err
	}

	if user.Join(topic) {
		if err := s.profile.UpdateUser(ctx, user); err != nil {
			return models.Topic{}, err
		}
	}
	s.log.Info(ctx, "topic created", "topic", topic.Name, "owner", user.Name.Value())
	return topic, nil
}

// JoinTopic records membership of an existing topic. Joining twice is a no-op.
func (s *chatService) JoinTopic(ctx context.Context, name string) (models.Topic, error) {
	topic, err := models.NewTopic(name)
	if err != nil {
		return models.Topic{}, err
	}
	user, session, err := s.userAndSession(ctx)
	if err != nil {
		return models.Topic{}, err
	}

	if err := session.JoinTopic(ctx, topic.Name); err != nil {
		return models.Topic{}, err
	}
	if user.Join(topic) {
		if err := s.profile.UpdateUser(ctx, user); err != nil {
			return models.Topic{}, err
		}
	}
	return topic, nil
}

func (s *chatService) LeaveTopic(ctx context.Context, name string) (models.Topic, error) {
	topic, err := models.NewTopic(name)
	if err != nil {
		return models.Topic{}, err
	}
	user, session, err := s.userAndSession(ctx)
	if err != nil {
		return models.Topic{}, err
	}

	if err := session.LeaveTopic(ctx, topic.Name); err != nil {
		return models.Topic{}, err
	}
	if !user.Leave(topic.Name) {
		return models.Topic{}, fmt.Errorf("user %s has not joined topic %s: membership %w", user.Name, topic, common.ErrNotFound)
	}
	if err := s.profile.UpdateUser(ctx, user); err != nil {
		return models.Topic{}, err
	}
	return topic, nil
}

// DeleteTopic deletes a topic owned by the local user and leaves it.
func (s *chatService) DeleteTopic(ctx context.Context, name string) (models.Topic, error) {
	user, session, err := s.userAndSession(ctx)
	if err != nil {
		return models.Topic{}, err
	}

	topic, err := models.NewOwnedTopic(name, user.Name)
	if err != nil {
		return models.Topic{}, err
	}
	if err := session.DeleteTopic(ctx, topic); err != nil {
		return models.Topic{}, err
	}

	if user.Leave(topic.Name) {
		if err := s.profile.UpdateUser(ctx, user); err != nil {
			return models.Topic{}, err
		}
	}
	s.log.Info(ctx, "topic deleted", "topic", topic.Name, "owner", user.Name.Value())
	return topic, nil
}

// ReadMessages evaluates a compound query such as "kotlin/enrico/5" against
// a topic the local user joined.
func (s *chatService) ReadMessages(ctx context.Context, q string) (MessagePage, error) {
	parsed, err := query.Evaluate(q, s.takeLast)
	if err != nil {
		return MessagePage{}, err
	}
	topic, err := models.NewTopic(parsed.Topic)
	if err != nil {
		return MessagePage{}, err
	}
	if parsed.Author != "" {
		if _, err := models.NewUserName(parsed.Author); err != nil {
			return MessagePage{}, err
		}
	}

	user, session, err := s.userAndSession(ctx)
	if err != nil {
		return MessagePage{}, err
	}
	if err := requireJoined(user, topic, "read"); err != nil {
		return MessagePage{}, err
	}

	messages, err := session.ReadMessages(ctx, topic.Name, parsed.Count, parsed.Author)
	if err != nil {
		return MessagePage{}, err
	}
	return MessagePage{Topic: topic, Author: parsed.Author, Messages: messages}, nil
}

// SendMessage appends content as the local user and returns the latest
// messages of the topic, the new one included.
func (s *chatService) SendMessage(ctx context.Context, topicName, content string) ([]models.Message, error) {
	topic, err := models.NewTopic(topicName)
	if err != nil {
		return nil, err
	}
	user, session, err := s.userAndSession(ctx)
	if err != nil {
		return nil, err
	}
	if err := requireJoined(user, topic, "send to"); err != nil {
		return nil, err
	}

	message, err := models.NewMessage(topic, user.Name, content)
	if err != nil {
		return nil, err
	}
	if err := session.SendMessage(ctx, message); err != nil {
		return nil, err
	}

	return session.ReadMessages(ctx, topic.Name, echoCount, "")
}

func requireJoined(user models.User, topic models.Topic, action string) error {
	if user.Joined(topic.Name) {
		return nil
	}
	return fmt.Errorf("user %s is %w to %s topic %s, join it first", user.Name, common.ErrUnauthorized, action, topic)
}
