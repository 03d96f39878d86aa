package planner

import (
	"strings"

	"go.trai.ch/plugkit/internal/core/domain"
)

// ScriptPipeline returns the shell program that compiles a script into a
// scratch directory and runs it. It expects the scratch directory and the
// script as $1 and $2; the remaining arguments are passed to the program.
func ScriptPipeline(compiler []string) string {
	cache := `"$SCRATCH"/` + domain.ModuleCacheDirName
	runner := `"$SCRATCH"/` + domain.ScriptRunnerName

	lines := []string{
		`SCRATCH="$1"`,
		`SCRIPT="$2"`,
		`shift 2`,
		`mkdir -p ` + cache,
		strings.Join(compiler, " ") + ` -module-cache-path ` + cache + ` "$SCRIPT" -o ` + runner,
		runner + ` "$@"`,
	}
	return strings.Join(lines, "\n")
}

// scriptPrefix is the argument prefix that runs script through the shell.
// The word after the program becomes $0 and is not used.
func scriptPrefix(compiler []string, scratch, script string) []string {
	return []string{"-eo", "pipefail", "-c", ScriptPipeline(compiler), "ignored", scratch, script}
}
