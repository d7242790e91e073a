package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/kcc/internal/client/services"
	"github.com/dmitrijs2005/kcc/internal/common"
	"github.com/dmitrijs2005/kcc/internal/models"
)

// ------------ helpers ------------

func mustName(t *testing.T, name string) models.UserName {
	t.Helper()
	n, err := models.NewUserName(name)
	require.NoError(t, err)
	return n
}

func mustTopic(t *testing.T, name, owner string) models.Topic {
	t.Helper()
	topic, err := models.NewOwnedTopic(name, mustName(t, owner))
	require.NoError(t, err)
	return topic
}

type result struct {
	code   int
	out    string
	errOut string
}

func run(svc services.ChatService, args ...string) result {
	var out, errOut bytes.Buffer
	code := NewApp(svc, &out, &errOut, true).Run(context.Background(), args)
	return result{code: code, out: out.String(), errOut: errOut.String()}
}

// ------------ fake service ------------

type fakeSvc struct {
	calls []string

	user    models.User
	userErr error

	host    models.Host
	hostErr error

	topics    []services.TopicView
	topicsErr error
	topic     models.Topic
	topicErr  error

	page     services.MessagePage
	messages []models.Message
	msgErr   error
}

func (f *fakeSvc) record(format string, args ...any) {
	f.calls = append(f.calls, fmt.Sprintf(format, args...))
}

func (f *fakeSvc) ReadUser(ctx context.Context) (models.User, error) {
	f.record("ReadUser")
	return f.user, f.userErr
}
func (f *fakeSvc) CreateUser(ctx context.Context, name string) (models.User, error) {
	f.record("CreateUser %s", name)
	return f.user, f.userErr
}
func (f *fakeSvc) RenameUser(ctx context.Context, name string) (models.User, error) {
	f.record("RenameUser %s", name)
	if f.userErr != nil {
		return models.User{}, f.userErr
	}
	u := f.user
	if err := u.Name.Rename(name); err != nil {
		return models.User{}, err
	}
	return u, nil
}
func (f *fakeSvc) DeleteUser(ctx context.Context) (models.User, error) {
	f.record("DeleteUser")
	return f.user, f.userErr
}
func (f *fakeSvc) ReadHost(ctx context.Context) (models.Host, error) {
	f.record("ReadHost")
	return f.host, f.hostErr
}
func (f *fakeSvc) RegisterHost(ctx context.Context, address string) (models.Host, error) {
	f.record("RegisterHost %s", address)
	return f.host, f.hostErr
}
func (f *fakeSvc) UnregisterHost(ctx context.Context) (models.Host, error) {
	f.record("UnregisterHost")
	return f.host, f.hostErr
}
func (f *fakeSvc) ListTopics(ctx context.Context) ([]services.TopicView, error) {
	f.record("ListTopics")
	return f.topics, f.topicsErr
}
func (f *fakeSvc) CreateTopic(ctx context.Context, name string) (models.Topic, error) {
	f.record("CreateTopic %s", name)
	return f.topic, f.topicErr
}
func (f *fakeSvc) JoinTopic(ctx context.Context, name string) (models.Topic, error) {
	f.record("JoinTopic %s", name)
	return f.topic, f.topicErr
}
func (f *fakeSvc) LeaveTopic(ctx context.Context, name string) (models.Topic, error) {
	f.record("LeaveTopic %s", name)
	return f.topic, f.topicErr
}
func (f *fakeSvc) DeleteTopic(ctx context.Context, name string) (models.Topic, error) {
	f.record("DeleteTopic %s", name)
	return f.topic, f.topicErr
}
func (f *fakeSvc) ReadMessages(ctx context.Context, query string) (services.MessagePage, error) {
	f.record("ReadMessages %s", query)
	return f.page, f.msgErr
}
func (f *fakeSvc) SendMessage(ctx context.Context, topicName, content string) ([]models.Message, error) {
	f.record("SendMessage %s %s", topicName, content)
	return f.messages, f.msgErr
}

// ------------ tests ------------

func TestRun_HelpAndVersion(t *testing.T) {
	for _, args := range [][]string{nil, {"-h"}, {"--help"}} {
		r := run(&fakeSvc{}, args...)
		assert.Equal(t, ExitOK, r.code)
		assert.Contains(t, r.out, mainHelp)
		assert.Empty(t, r.errOut)
	}

	r := run(&fakeSvc{}, "--version")
	assert.Equal(t, ExitOK, r.code)
	assert.Contains(t, r.out, "Build version:")
}

func TestRun_UnknownCommand(t *testing.T) {
	f := &fakeSvc{}
	r := run(f, "chat")
	assert.Equal(t, ExitUsage, r.code)
	assert.Contains(t, r.errOut, "error:\n    unknown command 'chat'")
	assert.Contains(t, r.errOut, mainHelp)
	assert.Empty(t, f.calls)
}

func TestRun_User(t *testing.T) {
	enrico := models.NewUser(mustName(t, "enrico"))

	tests := []struct {
		name  string
		args  []string
		want  string
		calls []string
	}{
		{"show", []string{"user"}, "user:\n  name: #enrico\n  topics: no /topics\n", []string{"ReadUser"}},
		{"new", []string{"user", "new", "enrico"}, "The user #enrico has been created.\n", []string{"CreateUser enrico"}},
		{"rename", []string{"user", "ren", "mario"}, "The user #enrico is now known as #mario.\n", []string{"ReadUser", "RenameUser mario"}},
		{"delete", []string{"user", "del"}, "The user #enrico has been deleted.\n", []string{"DeleteUser"}},
		{"help", []string{"user", "--help"}, userHelp + "\n", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &fakeSvc{user: enrico}
			r := run(f, tt.args...)
			assert.Equal(t, ExitOK, r.code)
			assert.Equal(t, tt.want, r.out)
			assert.Equal(t, tt.calls, f.calls)
		})
	}
}

func TestRun_UserUsage(t *testing.T) {
	for _, args := range [][]string{{"user", "new"}, {"user", "del", "x"}, {"user", "rename", "x"}} {
		f := &fakeSvc{}
		r := run(f, args...)
		assert.Equal(t, ExitUsage, r.code, args)
		assert.Equal(t, userHelp+"\n", r.errOut)
		assert.Empty(t, f.calls)
	}
}

func TestRun_ErrorsPrintMessageAndHelp(t *testing.T) {
	f := &fakeSvc{userErr: fmt.Errorf("user %w: no user has been created yet", common.ErrNotFound)}
	r := run(f, "user")

	assert.Equal(t, ExitFailure, r.code)
	assert.Empty(t, r.out)
	assert.Equal(t, "error:\n    user not found: no user has been created yet\n\n"+userHelp+"\n", r.errOut)
}

func TestRun_Host(t *testing.T) {
	host, err := models.ParseHost("/srv/kcc")
	require.NoError(t, err)

	f := &fakeSvc{host: host}
	r := run(f, "host")
	assert.Equal(t, "host: file:/srv/kcc\n", r.out)

	r = run(f, "host", "register", "/srv/kcc")
	assert.Equal(t, ExitOK, r.code)
	assert.Equal(t, "The host file:/srv/kcc has been registered.\n", r.out)

	r = run(f, "host", "unregister")
	assert.Equal(t, "The host file:/srv/kcc has been unregistered.\n", r.out)
	assert.Equal(t, []string{"ReadHost", "RegisterHost /srv/kcc", "UnregisterHost"}, f.calls)

	r = run(&fakeSvc{hostErr: common.ErrConfiguration}, "host", "register", "ftp:/x")
	assert.Equal(t, ExitFailure, r.code)
	assert.Contains(t, r.errOut, hostHelp)

	r = run(&fakeSvc{}, "host", "register")
	assert.Equal(t, ExitUsage, r.code)
}

func TestRun_TopicList(t *testing.T) {
	r := run(&fakeSvc{}, "topic")
	assert.Equal(t, "topics: no /topics\n", r.out)

	f := &fakeSvc{topics: []services.TopicView{
		{Topic: mustTopic(t, "golang", "mario")},
		{Topic: mustTopic(t, "kotlin", "enrico"), Joined: true},
	}}
	r = run(f, "topic")
	assert.Equal(t, "topics:\n    - /golang #mario\n    - /kotlin #enrico\t*\n", r.out)
}

func TestRun_TopicActions(t *testing.T) {
	kotlin := mustTopic(t, "kotlin", "enrico")

	tests := []struct {
		sub  string
		want string
		call string
	}{
		{"new", "topic /kotlin has been created.\n", "CreateTopic kotlin"},
		{"join", "topic /kotlin has been joined.\n", "JoinTopic kotlin"},
		{"leave", "topic /kotlin has been left.\n", "LeaveTopic kotlin"},
		{"del", "topic /kotlin has been deleted.\n", "DeleteTopic kotlin"},
	}
	for _, tt := range tests {
		t.Run(tt.sub, func(t *testing.T) {
			f := &fakeSvc{topic: kotlin}
			r := run(f, "topic", tt.sub, "kotlin")
			assert.Equal(t, ExitOK, r.code)
			assert.Equal(t, tt.want, r.out)
			assert.Equal(t, []string{tt.call}, f.calls)
		})
	}

	r := run(&fakeSvc{topicErr: errors.New("user #mario is not authorized to delete topic /kotlin")}, "topic", "del", "kotlin")
	assert.Equal(t, ExitFailure, r.code)
	assert.Contains(t, r.errOut, "not authorized")
	assert.Contains(t, r.errOut, topicHelp)

	r = run(&fakeSvc{}, "topic", "rename", "kotlin")
	assert.Equal(t, ExitUsage, r.code)
}

func TestRun_ReadMessages(t *testing.T) {
	kotlin := models.Topic{Name: "kotlin"}
	f := &fakeSvc{page: services.MessagePage{
		Topic: kotlin,
		Messages: []models.Message{
			{Topic: kotlin, Author: "enrico", Content: "hi"},
			{Topic: kotlin, Author: "mario", Content: "ciao"},
		},
	}}

	r := run(f, "/kotlin/5")
	assert.Equal(t, ExitOK, r.code)
	assert.Equal(t, "/kotlin | enrico > hi\n/kotlin | mario > ciao\n", r.out)
	assert.Equal(t, []string{"ReadMessages kotlin/5"}, f.calls)

	r = run(&fakeSvc{page: services.MessagePage{Topic: kotlin}}, "/kotlin")
	assert.Equal(t, "/kotlin: no messages\n", r.out)

	r = run(&fakeSvc{page: services.MessagePage{Topic: kotlin, Author: "luigi"}}, "/kotlin/luigi")
	assert.Equal(t, "/kotlin: no messages from #luigi\n", r.out)

	r = run(&fakeSvc{msgErr: common.NewValidationError("query", "/kotlin/1/2", "it can contain only one number")}, "/kotlin/1/2")
	assert.Equal(t, ExitFailure, r.code)
	assert.Equal(t, "error:\n    query '/kotlin/1/2' is not valid: it can contain only one number\n", r.errOut)
}

func TestRun_SendMessageJoinsWords(t *testing.T) {
	kotlin := models.Topic{Name: "kotlin"}
	f := &fakeSvc{messages: []models.Message{{Topic: kotlin, Author: "enrico", Content: "hello there -n 5"}}}

	r := run(f, "/kotlin", "hello", "there", "-n", "5")
	assert.Equal(t, ExitOK, r.code)
	assert.Equal(t, []string{"SendMessage kotlin hello there -n 5"}, f.calls)
	assert.Equal(t, "/kotlin | enrico > hello there -n 5\n", r.out)
}
