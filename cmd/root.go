package cmd

import (
	"github.com/abhisek/mathgenius/internal/config"
	"github.com/abhisek/mathgenius/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "mathgenius",
	Short: "Adaptive math tutor in your terminal",
	Long:  "Math Genius — a terminal tutoring companion that matches each student with a tutor personality and adapts its responses as the conversation unfolds.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides MATHGENIUS_DB env var)")
	rootCmd.Flags().String("catalog", "", "Path to a personality catalog JSON file (overrides MATHGENIUS_CATALOG env var)")
	rootCmd.Flags().String("subject", "math", "Subject for the tutoring session")

	rootCmd.AddCommand(tutorsCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then MATHGENIUS_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command, cfg config.Config) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath()
}
