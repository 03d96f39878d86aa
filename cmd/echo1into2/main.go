// Package main implements echo1into2, which writes its first argument into
// the file named by its second.
//
// Usage: echo1into2 <text> <file>
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.trai.ch/plugkit/internal/core/domain"
	"go.trai.ch/zerr"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd()
	// cobra falls back to os.Args when given nil.
	cmd.SetArgs(append([]string{}, args...))
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	if err := cmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(stderr, "echo1into2: "+err.Error())
		return 1
	}
	return 0
}

// newRootCmd takes the text verbatim, even when it looks like a flag.
func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:                "echo1into2 <text> <file>",
		Short:              "Write the first argument into the file named by the second",
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 2 {
				return zerr.Wrap(domain.ErrInvalidArguments, "usage: echo1into2 <text> <file>")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			text, path := args[0], args[1]
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Echoing %q into %q\n", text, path)
			if err := os.WriteFile(path, []byte(text), domain.FilePerm); err != nil {
				return zerr.With(zerr.Wrap(err, "failed to write file"), "path", path)
			}
			return nil
		},
	}
}
