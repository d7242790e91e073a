package cli

import (
	"github.com/fatih/color"
)

// palette colours the parts of the output that users scan for.
type palette struct {
	topic  func(a ...any) string
	user   func(a ...any) string
	marker func(a ...any) string
	err    func(a ...any) string
}

func newPalette(noColor bool) palette {
	colors := []*color.Color{
		color.New(color.FgCyan, color.Bold),
		color.New(color.FgYellow),
		color.New(color.FgGreen),
		color.New(color.FgRed, color.Bold),
	}
	if noColor {
		for _, c := range colors {
			c.DisableColor()
		}
	}
	return palette{
		topic:  colors[0].SprintFunc(),
		user:   colors[1].SprintFunc(),
		marker: colors[2].SprintFunc(),
		err:    colors[3].SprintFunc(),
	}
}
