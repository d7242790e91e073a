// Package models defines the kcc domain values: Host, Topic, UserName, User
// and Message. Every constructor validates its input, so an invalid value
// never exists in memory.
package models

import (
	"regexp"
	"sort"

	"github.com/dmitrijs2005/kcc/internal/common"
)

// Reserved separators. The name patterns below exclude all of them.
const (
	// TopicSeparator prefixes topic names and splits compound queries.
	TopicSeparator = "/"
	// OwnerSeparator splits topic and owner in a topic file name.
	OwnerSeparator = "#"
	// FieldSeparator splits author and content in a message record.
	FieldSeparator = "|"
)

var topicNamePattern = regexp.MustCompile(`^[a-z][a-z0-9-]{2,23}$`)

const topicNameRule = "it must start with a lowercase letter, contain only lowercase letters, digits and hyphens, and be 3 to 24 characters long"

// Topic is identified by its name; Owner is metadata.
type Topic struct {
	Name  string
	Owner *UserName
}

// NewTopic validates name and returns a topic without an owner.
func NewTopic(name string) (Topic, error) {
	if !topicNamePattern.MatchString(name) {
		return Topic{}, common.NewValidationError("topic name", name, topicNameRule)
	}
	return Topic{Name: name}, nil
}

// NewOwnedTopic validates name and records owner.
func NewOwnedTopic(name string, owner UserName) (Topic, error) {
	t, err := NewTopic(name)
	if err != nil {
		return Topic{}, err
	}
	t.Owner = &owner
	return t, nil
}

// Equal compares topics by name only.
func (t Topic) Equal(other Topic) bool {
	return t.Name == other.Name
}

func (t Topic) String() string {
	return TopicSeparator + t.Name
}

// TopicSet holds topics keyed by name.
type TopicSet map[string]Topic

func NewTopicSet(topics ...Topic) TopicSet {
	s := make(TopicSet, len(topics))
	for _, t := range topics {
		s.Add(t)
	}
	return s
}

// Add inserts t, replacing any topic with the same name.
func (s TopicSet) Add(t Topic) {
	s[t.Name] = t
}

func (s TopicSet) Contains(name string) bool {
	_, ok := s[name]
	return ok
}

// Sorted returns the topics ordered by name.
func (s TopicSet) Sorted() []Topic {
	out := make([]Topic, 0, len(s))
	for _, t := range s {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
