package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/sourcefeed/pkg/config"
)

var rootCmd = &cobra.Command{
	Use:   "sourcefeed",
	Short: "Session-scoped content feed server",
	Long: `sourcefeed serves content items to visitors, remembers returning visitors
by a session name and filters their feed to the sources they picked.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		envFile, _ := cmd.Flags().GetString("env-file")
		if envFile == "" {
			return nil
		}
		return config.LoadEnv(envFile)
	},
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("env-file", "", "Load environment variables from this .env file")
}
