package models

import (
	"strings"

	"github.com/dmitrijs2005/kcc/internal/common"
)

// Message is one line of a topic. Messages are never modified once written.
type Message struct {
	Topic   Topic
	Author  string
	Content string
}

// NewMessage validates that author and content fit in a single record.
func NewMessage(topic Topic, author UserName, content string) (Message, error) {
	if strings.TrimSpace(content) == "" {
		return Message{}, common.NewValidationError("message", content, "it must not be empty")
	}
	if strings.Contains(content, FieldSeparator) {
		return Message{}, common.NewValidationError("message", content, "it must not contain '"+FieldSeparator+"'")
	}
	if strings.ContainsAny(content, "\r\n") {
		return Message{}, common.NewValidationError("message", content, "it must fit on a single line")
	}
	return Message{Topic: topic, Author: author.Value(), Content: content}, nil
}

func (m Message) String() string {
	return m.Topic.String() + " | " + m.Author + " > " + m.Content
}
