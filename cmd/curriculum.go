package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizforge/internal/curriculum"
)

var curriculumCmd = &cobra.Command{
	Use:   "curriculum",
	Short: "List the curriculum entries used to tag generated questions",
	Run: func(cmd *cobra.Command, args []string) {
		for _, e := range curriculum.Entries {
			fmt.Fprintf(cmd.OutOrStdout(), "%s > %s > %s\n", e.Subject, e.Unit, e.Topic)
		}
	},
}
