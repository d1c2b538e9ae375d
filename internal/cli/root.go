package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	cfg    *Config
	client *Client
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "teamctl",
		Short: "CLI tool for the TeamHub API",
		Long: `teamctl is a CLI tool for interacting with the TeamHub JSON API.

It supports logging in and out, inspecting the current session, listing
teams, viewing categorised rosters and looking up position stat fields.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Load session id from file if not provided via flag/env
			if err := cfg.LoadSession(); err != nil {
				return err
			}

			client = NewClient(cfg.ServerURL, cfg.SessionID)
			return nil
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfg.ServerURL, "server", cfg.ServerURL, "Server URL (env: TEAMCTL_SERVER)")
	rootCmd.PersistentFlags().StringVar(&cfg.SessionID, "session", cfg.SessionID, "Session id (env: TEAMCTL_SESSION)")
	rootCmd.PersistentFlags().StringVar(&cfg.SessionFile, "session-file", cfg.SessionFile, "Session file path (env: TEAMCTL_SESSION_FILE)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json")

	// Add subcommands
	rootCmd.AddCommand(newLoginCmd())
	rootCmd.AddCommand(newLogoutCmd())
	rootCmd.AddCommand(newWhoamiCmd())
	rootCmd.AddCommand(newTeamsCmd())
	rootCmd.AddCommand(newPositionsCmd())
	rootCmd.AddCommand(newHealthCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
