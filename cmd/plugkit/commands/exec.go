package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/plugkit/internal/app"
)

func (c *CLI) newExecCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exec",
		Short: "Run the emitted commands like the host build system would",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			force, _ := cmd.Flags().GetBool("force")
			noEmit, _ := cmd.Flags().GetBool("no-emit")
			watch, _ := cmd.Flags().GetBool("watch")

			opts := app.ExecOptions{Force: force, NoEmit: noEmit}
			if watch {
				return c.app.Watch(cmd.Context(), c.config, opts)
			}
			_, err := c.app.Exec(cmd.Context(), c.config, opts)
			return err
		},
	}

	cmd.Flags().BoolP("force", "f", false, "Run commands even when their outputs are up to date")
	cmd.Flags().Bool("no-emit", false, "Run the commands in the existing manifest without re-running plugins")
	cmd.Flags().BoolP("watch", "w", false, "Rerun whenever package files change")

	return cmd
}
