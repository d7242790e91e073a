package models

import (
	"regexp"
	"strings"

	"github.com/dmitrijs2005/kcc/internal/common"
)

var userNamePattern = regexp.MustCompile(`^[a-z][a-z0-9_-]{2,11}$`)

const userNameRule = "it must start with a lowercase letter, contain only lowercase letters, digits, hyphens and underscores, and be 3 to 12 characters long"

// UserName is a validated user name. The zero value is not valid; use
// NewUserName.
type UserName struct {
	value string
}

func NewUserName(name string) (UserName, error) {
	if err := validateUserName(name); err != nil {
		return UserName{}, err
	}
	return UserName{value: name}, nil
}

func validateUserName(name string) error {
	if !userNamePattern.MatchString(name) {
		return common.NewValidationError("user name", name, userNameRule)
	}
	return nil
}

// Rename replaces the name after validating it. On error the name is left
// unchanged.
func (n *UserName) Rename(name string) error {
	if err := validateUserName(name); err != nil {
		return err
	}
	n.value = name
	return nil
}

func (n UserName) Value() string {
	return n.value
}

func (n UserName) String() string {
	return "#" + n.value
}

// User is the local identity and the ordered set of topics it joined.
type User struct {
	Name   UserName
	Topics []Topic
}

func NewUser(name UserName, topics ...Topic) User {
	u := User{Name: name}
	for _, t := range topics {
		u.Join(t)
	}
	return u
}

// Joined reports whether the user is a member of the named topic.
func (u *User) Joined(name string) bool {
	for _, t := range u.Topics {
		if t.Name == name {
			return true
		}
	}
	return false
}

// Join appends t unless already present and reports whether it was added.
func (u *User) Join(t Topic) bool {
	if u.Joined(t.Name) {
		return false
	}
	u.Topics = append(u.Topics, Topic{Name: t.Name})
	return true
}

// Leave removes the named topic and reports whether it was present.
func (u *User) Leave(name string) bool {
	for i, t := range u.Topics {
		if t.Name == name {
			u.Topics = append(u.Topics[:i], u.Topics[i+1:]...)
			return true
		}
	}
	return false
}

// Reconcile drops every joined topic missing from known and returns the
// dropped ones in their original order.
func (u *User) Reconcile(known TopicSet) []Topic {
	var kept, pruned []Topic
	for _, t := range u.Topics {
		if known.Contains(t.Name) {
			kept = append(kept, t)
		} else {
			pruned = append(pruned, t)
		}
	}
	u.Topics = kept
	return pruned
}

// TopicNames returns the joined topic names in join order.
func (u *User) TopicNames() []string {
	names := make([]string, len(u.Topics))
	for i, t := range u.Topics {
		names[i] = t.Name
	}
	return names
}

func (u User) String() string {
	var b strings.Builder
	b.WriteString("user:\n  name: ")
	b.WriteString(u.Name.String())
	b.WriteString("\n  topics:")
	if len(u.Topics) == 0 {
		b.WriteString(" no /topics")
		return b.String()
	}
	for _, t := range u.Topics {
		b.WriteString("\n    - ")
		b.WriteString(t.String())
	}
	return b.String()
}
