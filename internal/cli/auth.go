package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newLoginCmd() *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and store the session id",
		RunE: func(cmd *cobra.Command, args []string) error {
			if email == "" || password == "" {
				return fmt.Errorf("--email and --password are required")
			}

			req := map[string]string{
				"email":    email,
				"password": password,
			}
			var result Session

			if err := client.Post("/api/v1/session", req, &result); err != nil {
				return err
			}

			if err := cfg.SaveSession(result.SessionID); err != nil {
				return fmt.Errorf("failed to save session: %w", err)
			}
			client.SetSessionID(result.SessionID)

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email (required)")
	cmd.Flags().StringVar(&password, "password", "", "Account password (required)")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the session and clear the stored session id",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := NewOutput(cfg.Output)

			// The stored session is cleared even if the server call
			// fails; a dead session id is worthless either way
			if err := client.Delete("/api/v1/session"); err != nil {
				out.PrintError(err)
			}

			if err := cfg.ClearSession(); err != nil {
				return fmt.Errorf("failed to clear session: %w", err)
			}

			out.PrintMessage("Logged out")
			return nil
		},
	}
}

func newWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session and user",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Session

			if err := client.Get("/api/v1/session", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
