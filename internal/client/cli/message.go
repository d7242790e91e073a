package cli

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/kcc/internal/models"
)

// runMessage handles "/<query>" to read and "/<topic> <words...>" to send.
func (a *App) runMessage(ctx context.Context, args []string) int {
	target := strings.TrimPrefix(args[0], models.TopicSeparator)

	if len(args) == 1 {
		page, err := a.svc.ReadMessages(ctx, target)
		if err != nil {
			return a.fail(err, "")
		}
		if len(page.Messages) == 0 {
			if page.Author != "" {
				a.printf("%s: no messages from #%s\n", a.style.topic(page.Topic), page.Author)
			} else {
				a.printf("%s: no messages\n", a.style.topic(page.Topic))
			}
			return ExitOK
		}
		a.printMessages(page.Messages)
		return ExitOK
	}

	messages, err := a.svc.SendMessage(ctx, target, strings.Join(args[1:], " "))
	if err != nil {
		return a.fail(err, "")
	}
	a.printMessages(messages)
	return ExitOK
}

func (a *App) printMessages(messages []models.Message) {
	for _, m := range messages {
		a.printf("%s | %s > %s\n", a.style.topic(m.Topic), a.style.user(m.Author), m.Content)
	}
}
