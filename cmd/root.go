package cmd

import (
	"github.com/abhisek/bilan/internal/store"
	"github.com/spf13/cobra"
)

// defaultUserID keys the single local session. The app is single-user;
// the --user flag exists for shared machines.
const defaultUserID = "local"

var rootCmd = &cobra.Command{
	Use:   "bilan",
	Short: "Bilan de competences conversationnel",
	Long:  "Bilan — assistant d'entretien en terminal pour realiser votre bilan de competences.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides BILAN_DB env var)")
	rootCmd.PersistentFlags().String("user", defaultUserID, "User identifier for session and history records")
	rootCmd.Flags().Bool("new", false, "Start a new assessment instead of resuming")

	rootCmd.AddCommand(packagesCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then BILAN_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

func resolveUserID(cmd *cobra.Command) string {
	if u, _ := cmd.Flags().GetString("user"); u != "" {
		return u
	}
	return defaultUserID
}
