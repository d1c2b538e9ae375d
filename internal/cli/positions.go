package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPositionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "positions",
		Short: "Position metadata commands",
	}

	cmd.AddCommand(newPositionsFieldsCmd())

	return cmd
}

func newPositionsFieldsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fields <code>",
		Short: "Show the stat fields for a position code or label",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result PositionFields

			path := fmt.Sprintf("/api/v1/positions/%s/fields", args[0])
			if err := client.Get(path, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
