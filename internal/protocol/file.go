package protocol

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/kcc/internal/common"
	"github.com/dmitrijs2005/kcc/internal/filex"
	"github.com/dmitrijs2005/kcc/internal/logging"
	"github.com/dmitrijs2005/kcc/internal/models"
)

const (
	topicFilePrefix = "."
	topicFileSuffix = ".kcc"
)

var (
	_ Backend = (*FileBackend)(nil)
	_ Session = (*FileSession)(nil)
)

// FileBackend stores topics as files in a local directory.
type FileBackend struct {
	log logging.Logger
}

func NewFileBackend(log logging.Logger) *FileBackend {
	return &FileBackend{log: log}
}

func (b *FileBackend) Name() string {
	return "file"
}

func (b *FileBackend) Accept(host models.Host) bool {
	return host.Scheme() == models.SchemeFile
}

// Connect requires the host path to be an existing directory.
func (b *FileBackend) Connect(ctx context.Context, host models.Host) (Session, error) {
	if !b.Accept(host) {
		return nil, fmt.Errorf("%w: file backend cannot serve scheme '%s'", common.ErrConfiguration, host.Scheme())
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ok, err := filex.IsDir(host.Path())
	if err != nil {
		return nil, err
	}
	if !ok {
		verr := common.NewValidationError("host path", host.Path(), "it must be an existing directory")
		return nil, fmt.Errorf("%w: %w", common.ErrConfiguration, verr)
	}

	id := uuid.NewString()
	return &FileSession{
		id:   id,
		host: host,
		root: host.Path(),
		log:  b.log.With("session", id, "root", host.Path()),
	}, nil
}

// FileSession is a FileBackend bound to one directory.
type FileSession struct {
	id   string
	host models.Host
	root string
	log  logging.Logger
}

// topicFile is a topic together with the file that stores it.
type topicFile struct {
	topic models.Topic
	path  string
}

func (s *FileSession) ID() string {
	return s.id
}

func (s *FileSession) Host() models.Host {
	return s.host
}

func topicFileName(topic models.Topic) string {
	return topicFilePrefix + topic.Name + models.OwnerSeparator + topic.Owner.Value() + topicFileSuffix
}

// parseTopicFileName is the inverse of topicFileName.
func parseTopicFileName(name string) (models.Topic, bool) {
	if !strings.HasPrefix(name, topicFilePrefix) || !strings.HasSuffix(name, topicFileSuffix) {
		return models.Topic{}, false
	}
	inner := strings.TrimSuffix(strings.TrimPrefix(name, topicFilePrefix), topicFileSuffix)

	topicName, ownerName, ok := strings.Cut(inner, models.OwnerSeparator)
	if !ok {
		return models.Topic{}, false
	}
	owner, err := models.NewUserName(ownerName)
	if err != nil {
		return models.Topic{}, false
	}
	topic, err := models.NewOwnedTopic(topicName, owner)
	if err != nil {
		return models.Topic{}, false
	}
	return topic, true
}

func (s *FileSession) scan(ctx context.Context) (map[string]topicFile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(s.root)
	if err != nil {
		return nil, fmt.Errorf("failed to read topics: %w", err)
	}

	files := make(map[string]topicFile)
	for _, e := range entries {
		if !e.Type().IsRegular() || !strings.HasSuffix(e.Name(), topicFileSuffix) {
			continue
		}
		topic, ok := parseTopicFileName(e.Name())
		if !ok {
			s.log.Debug(ctx, "skipping unrecognized topic file", "file", e.Name())
			continue
		}
		files[topic.Name] = topicFile{topic: topic, path: filepath.Join(s.root, e.Name())}
	}
	return files, nil
}

func (s *FileSession) lookup(ctx context.Context, name string) (topicFile, error) {
	files, err := s.scan(ctx)
	if err != nil {
		return topicFile{}, err
	}
	tf, ok := files[name]
	if !ok {
		return topicFile{}, fmt.Errorf("topic %s%s %w", models.TopicSeparator, name, common.ErrNotFound)
	}
	return tf, nil
}

func (s *FileSession) ReadTopics(ctx context.Context) (models.TopicSet, error) {
	files, err := s.scan(ctx)
	if err != nil {
		return nil, err
	}

	topics := make(models.TopicSet, len(files))
	for _, tf := range files {
		topics.Add(tf.topic)
	}
	return topics, nil
}

func (s *FileSession) CreateTopic(ctx context.Context, topic models.Topic) error {
	if topic.Owner == nil {
		return common.NewValidationError("topic owner", "", "topic "+topic.String()+" needs an owner")
	}

	files, err := s.scan(ctx)
	if err != nil {
		return err
	}
	if _, ok := files[topic.Name]; ok {
		return fmt.Errorf("topic %s %w", topic, common.ErrConflict)
	}

	path := filepath.Join(s.root, topicFileName(topic))
	if err := filex.CreateExclusive(path); err != nil {
		if errors.Is(err, os.ErrExist) {
			return fmt.Errorf("topic %s %w", topic, common.ErrConflict)
		}
		return fmt.Errorf("failed to create topic %s: %w", topic, err)
	}

	s.log.Debug(ctx, "topic created", "topic", topic.Name, "owner", topic.Owner.Value())
	return nil
}

func (s *FileSession) JoinTopic(ctx context.Context, name string) error {
	_, err := s.lookup(ctx, name)
	return err
}

func (s *FileSession) LeaveTopic(ctx context.Context, name string) error {
	_, err := s.lookup(ctx, name)
	return err
}

func (s *FileSession) DeleteTopic(ctx context.Context, topic models.Topic) error {
	tf, err := s.lookup(ctx, topic.Name)
	if err != nil {
		return err
	}

	if topic.Owner == nil || *topic.Owner != *tf.topic.Owner {
		who := "anonymous"
		if topic.Owner != nil {
			who = topic.Owner.String()
		}
		return fmt.Errorf("user %s is %w to delete topic %s", who, common.ErrUnauthorized, topic)
	}

	if err := os.Remove(tf.path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("topic %s %w", topic, common.ErrNotFound)
		}
		return fmt.Errorf("failed to delete topic %s: %w", topic, err)
	}

	s.log.Debug(ctx, "topic deleted", "topic", topic.Name)
	return nil
}

func (s *FileSession) ReadMessages(ctx context.Context, topicName string, limit int, author string) ([]models.Message, error) {
	if limit < 0 {
		return nil, common.NewValidationError("message count", fmt.Sprint(limit), "it must not be negative")
	}

	tf, err := s.lookup(ctx, topicName)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(tf.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("topic %s %w", tf.topic, common.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to read topic %s: %w", tf.topic, err)
	}
	defer f.Close()

	messages, err := s.decode(ctx, tf.topic, f, author)
	if err != nil {
		return nil, fmt.Errorf("failed to read topic %s: %w", tf.topic, err)
	}

	if limit > 0 && len(messages) > limit {
		messages = messages[len(messages)-limit:]
	}
	return messages, nil
}

// decode parses "author|content" lines, keeping those by author when set.
// A final line without a newline is a write in progress and is ignored.
func (s *FileSession) decode(ctx context.Context, topic models.Topic, r io.Reader, author string) ([]models.Message, error) {
	br := bufio.NewReader(r)
	topic = models.Topic{Name: topic.Name}

	var messages []models.Message
	for {
		line, err := br.ReadString('\n')
		if errors.Is(err, io.EOF) {
			return messages, nil
		}
		if err != nil {
			return nil, err
		}

		line = strings.TrimRight(line, "\r\n")
		if line == "" {
			continue
		}
		who, content, ok := strings.Cut(line, models.FieldSeparator)
		if !ok {
			s.log.Warn(ctx, "skipping malformed message", "topic", topic.Name)
			continue
		}
		if author != "" && who != author {
			continue
		}
		messages = append(messages, models.Message{Topic: topic, Author: who, Content: content})
	}
}

func (s *FileSession) SendMessage(ctx context.Context, message models.Message) error {
	if strings.Contains(message.Author, models.FieldSeparator) || strings.ContainsAny(message.Author, "\r\n") {
		return common.NewValidationError("message author", message.Author, "it must not contain '"+models.FieldSeparator+"' or line breaks")
	}
	if strings.Contains(message.Content, models.FieldSeparator) || strings.ContainsAny(message.Content, "\r\n") {
		return common.NewValidationError("message", message.Content, "it must not contain '"+models.FieldSeparator+"' or line breaks")
	}

	tf, err := s.lookup(ctx, message.Topic.Name)
	if err != nil {
		return err
	}

	record := message.Author + models.FieldSeparator + message.Content + "\n"
	if err := filex.AppendLocked(tf.path, []byte(record)); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("topic %s %w", tf.topic, common.ErrNotFound)
		}
		return fmt.Errorf("failed to send message to %s: %w", tf.topic, err)
	}

	s.log.Debug(ctx, "message sent", "topic", tf.topic.Name, "author", message.Author)
	return nil
}
