package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/quizforge/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "quizforge",
	Short: "Generate assessment question variants with a local LLM",
	Long:  "Quizforge — turn base questions into fresh variants of the same type and write them to a DOCX file, using a locally hosted LLM by default.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides QUIZFORGE_DB env var)")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(curriculumCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then QUIZFORGE_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
