package domain

import (
	"strconv"
	"strings"
)

// ProcessRequest describes a child process to run to completion.
type ProcessRequest struct {
	Executable string
	Arguments  []string
	// Environment replaces the inherited environment when non-nil.
	Environment      []string
	WorkingDirectory string
}

// CommandLine returns the executable followed by the arguments.
func (r ProcessRequest) CommandLine() []string {
	return append([]string{r.Executable}, r.Arguments...)
}

// NonzeroExitError reports a process that ran but exited with a nonzero status.
type NonzeroExitError struct {
	ExitStatus  int
	Stdout      string
	Stderr      string
	CommandLine []string
}

// Error renders the status, the quoted command line and both captured streams.
func (e *NonzeroExitError) Error() string {
	quoted := make([]string, len(e.CommandLine))
	for i, arg := range e.CommandLine {
		quoted[i] = strconv.Quote(arg)
	}

	var b strings.Builder
	b.WriteString("process exited with nonzero status (status: ")
	b.WriteString(strconv.Itoa(e.ExitStatus))
	b.WriteString(")\ncommand line: ")
	b.WriteString(strings.Join(quoted, " "))
	writeStream(&b, "standard output", e.Stdout)
	writeStream(&b, "standard error", e.Stderr)
	return b.String()
}

// Unwrap lets errors.Is match ErrNonzeroExit.
func (e *NonzeroExitError) Unwrap() error {
	return ErrNonzeroExit
}

func writeStream(b *strings.Builder, title, content string) {
	const rule = "  -------------\n"
	b.WriteString("\n\n  ")
	b.WriteString(title)
	b.WriteString(":\n")
	b.WriteString(rule)
	b.WriteString(content)
	if content != "" && !strings.HasSuffix(content, "\n") {
		b.WriteString("\n")
	}
	b.WriteString(strings.TrimSuffix(rule, "\n"))
}
