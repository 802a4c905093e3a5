package cmd

import (
	"github.com/spf13/cobra"

	"github.com/vinciapp/vinci/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "vinci",
	Short: "Adaptive arithmetic practice for K-12",
	Long:  "Vinci — terminal math practice that adapts difficulty and pacing page by page, from Kindergarten through 12th grade.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides VINCI_DB env var)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(pageCmd)
	rootCmd.AddCommand(answerCmd)
	rootCmd.AddCommand(submitCmd)
	rootCmd.AddCommand(conceptsCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(claimCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then VINCI_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
