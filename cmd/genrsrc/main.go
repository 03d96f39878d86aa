// Package main implements genrsrc, the resource generator used by the
// resource-generator plugin. It processes each ".in" input into a ".out"
// file in the output directory.
//
// Usage: genrsrc <input>... <outputDirectory>
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/plugkit/internal/core/domain"
	"go.trai.ch/zerr"
)

const processedTrailer = "\n# PROCESSED!\n"

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
		_, _ = fmt.Fprintln(stderr, "genrsrc: "+err.Error())
		return 1
	}
	return 0
}

// newRootCmd takes every argument positionally; inputs are plugin-supplied
// paths and are never read as flags.
func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:                "genrsrc <input>... <outputDirectory>",
		Short:              "Process .in inputs into .out files",
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return generate(args, cmd.OutOrStdout())
		},
	}
}

func generate(args []string, stdout io.Writer) error {
	_, _ = fmt.Fprintf(stdout, "genrsrc invocation: %q\n", args)

	if len(args) == 0 {
		return zerr.Wrap(domain.ErrInvalidArguments, "usage: genrsrc <input>... <outputDirectory>")
	}
	inputs, outDir := args[:len(args)-1], args[len(args)-1]

	for _, in := range inputs {
		data, err := os.ReadFile(in)
		if err != nil {
			return zerr.With(zerr.Wrap(err, "failed to read input"), "path", in)
		}
		base := strings.TrimSuffix(filepath.Base(in), filepath.Ext(in))
		out := filepath.Join(outDir, base+".out")
		if err := os.WriteFile(out, append(data, processedTrailer...), domain.FilePerm); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to write output"), "path", out)
		}
	}
	return nil
}
