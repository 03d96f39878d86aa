package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/plugkit/internal/adapters/platform"
)

func (c *CLI) newWhichCmd() *cobra.Command {
	var asURL bool
	cmd := &cobra.Command{
		Use:   "which <command>",
		Short: "Show the program a command name resolves to on PATH",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := c.app.Which(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if asURL {
				path = platform.URL(path)
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asURL, "url", false, "Print the program as a file URL")
	return cmd
}

func (c *CLI) newToolchainCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "toolchain <command>",
		Short: "Show the toolchain program a command name resolves to",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := c.app.Toolchain(cmd.Context(), c.config, args[0])
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
}
