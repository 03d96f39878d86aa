package commands

import (
	"encoding/json"

	"github.com/spf13/cobra"
)

func (c *CLI) newEmitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "emit",
		Short: "Run the project's plugins and write the command manifest",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			entries, err := c.app.Emit(cmd.Context(), c.config)
			if err != nil {
				return err
			}

			printJSON, _ := cmd.Flags().GetBool("json")
			if !printJSON {
				return nil
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(entries)
		},
	}

	cmd.Flags().Bool("json", false, "Print the emitted commands as JSON")

	return cmd
}
