package app

import (
	"fmt"
	"slices"
	"strings"

	"go.trai.ch/plugkit/internal/ui/style"
)

// report prints one line per command, prebuild commands first, then by name.
func (a *App) report(results []CommandResult) {
	sorted := slices.Clone(results)
	slices.SortStableFunc(sorted, func(x, y CommandResult) int {
		if x.Kind != y.Kind {
			return strings.Compare(string(y.Kind), string(x.Kind))
		}
		return strings.Compare(x.Name, y.Name)
	})

	for _, res := range sorted {
		_, _ = fmt.Fprintln(a.out, formatResult(res))
	}
}

func formatResult(res CommandResult) string {
	switch res.Status {
	case StatusCached:
		return style.Status(style.Tilde, style.Slate) + " " + res.Name + " (cached)"
	case StatusFailed:
		return style.Status(style.Cross, style.Red) + " " + res.Name
	default:
		line := style.Status(style.Check, style.Green) + " " + res.Name
		if n := len(res.Outputs); n > 0 {
			line += fmt.Sprintf(" (%d output(s))", n)
		}
		return line
	}
}
