// Package main implements gensrc, the source generator run by scripted
// plugins. Each input file is copied into the output directory without its
// extension and with its first line commented out.
//
// Usage: gensrc -o <outputDirectory> <input>...
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

const (
	firstLinePrefix = "// Comment out the first line, which was "
	usage           = "usage: gensrc -o <outputDirectory> <input>..."
)

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

func run(args []string, stderr io.Writer) int {
	cmd := newRootCmd(generate)
	// cobra falls back to os.Args when given nil.
	cmd.SetArgs(append([]string{}, args...))
	cmd.SetOut(stderr)
	cmd.SetErr(stderr)
	if err := cmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(stderr, "gensrc: "+err.Error())
		return 1
	}
	return 0
}

func newRootCmd(gen func(outDir string, inputs []string) error) *cobra.Command {
	var outDir string
	cmd := &cobra.Command{
		Use:           "gensrc -o <outputDirectory> <input>...",
		Short:         "Copy inputs without their extension, first line commented out",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, inputs []string) error {
			if outDir == "" {
				return zerr.Wrap(domain.ErrInvalidArguments, usage)
			}
			return gen(outDir, inputs)
		},
	}
	cmd.Flags().StringVarP(&outDir, "output", "o", "", "directory the generated sources are written to")
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return zerr.With(zerr.Wrap(domain.ErrInvalidArguments, usage), "reason", err.Error())
	})
	return cmd
}

func generate(outDir string, inputs []string) error {
	for _, in := range inputs {
		data, err := os.ReadFile(in)
		if err != nil {
			return zerr.With(zerr.Wrap(err, "failed to read input"), "path", in)
		}
		out := filepath.Join(outDir, strings.TrimSuffix(filepath.Base(in), filepath.Ext(in)))
		if err := os.WriteFile(out, append([]byte(firstLinePrefix), data...), domain.FilePerm); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to write output"), "path", out)
		}
	}
	return nil
}
