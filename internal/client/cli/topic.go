package cli

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/kcc/internal/client/services"
	"github.com/dmitrijs2005/kcc/internal/models"
)

// topicActions maps a topic subcommand to its use case and past tense.
var topicActions = map[string]struct {
	verb string
	run  func(services.ChatService, context.Context, string) (models.Topic, error)
}{
	subNew:    {"created", services.ChatService.CreateTopic},
	subJoin:   {"joined", services.ChatService.JoinTopic},
	subLeave:  {"left", services.ChatService.LeaveTopic},
	subDelete: {"deleted", services.ChatService.DeleteTopic},
}

func (a *App) runTopic(ctx context.Context, args []string) int {
	if len(args) == 0 {
		return a.listTopics(ctx)
	}
	if isHelp(args[0]) {
		return a.showHelp(topicHelp)
	}

	action, ok := topicActions[args[0]]
	if !ok || len(args) != 2 {
		return a.usage(topicHelp)
	}
	topic, err := action.run(a.svc, ctx, args[1])
	if err != nil {
		return a.fail(err, topicHelp)
	}
	a.printf("topic %s has been %s.\n", a.style.topic(topic), action.verb)
	return ExitOK
}

func (a *App) listTopics(ctx context.Context) int {
	views, err := a.svc.ListTopics(ctx)
	if err != nil {
		return a.fail(err, topicHelp)
	}
	if len(views) == 0 {
		a.println("topics: no /topics")
		return ExitOK
	}

	var b strings.Builder
	b.WriteString("topics:")
	for _, v := range views {
		b.WriteString("\n    - ")
		b.WriteString(a.style.topic(v.Topic))
		if v.Topic.Owner != nil {
			b.WriteString(" ")
			b.WriteString(a.style.user(v.Topic.Owner))
		}
		if v.Joined {
			b.WriteString("\t")
			b.WriteString(a.style.marker("*"))
		}
	}
	a.println(b.String())
	return ExitOK
}
