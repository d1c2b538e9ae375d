package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newTeamsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "teams",
		Short: "Team commands",
	}

	cmd.AddCommand(newTeamsListCmd())
	cmd.AddCommand(newTeamsRosterCmd())

	return cmd
}

func newTeamsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all teams",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []Team

			if err := client.Get("/api/v1/teams", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newTeamsRosterCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "roster <team-id>",
		Short: "Show a team's roster grouped by position category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Roster

			path := fmt.Sprintf("/api/v1/teams/%s/roster", args[0])
			if err := client.Get(path, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
