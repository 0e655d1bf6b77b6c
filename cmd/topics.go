package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathbuddy/internal/curriculum"
	"github.com/abhisek/mathbuddy/internal/problemgen"
)

var topicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "List the topics offered at each year level",
	RunE: func(cmd *cobra.Command, args []string) error {
		year, _ := cmd.Flags().GetInt("year")
		w := cmd.OutOrStdout()

		if year != 0 {
			if year < int(problemgen.MinYearLevel) || year > int(problemgen.MaxYearLevel) {
				return fmt.Errorf("invalid year %d: must be 1-6", year)
			}
			y := problemgen.YearLevel(year)
			fmt.Fprintln(w, curriculum.LevelName(y))
			for _, t := range curriculum.TopicsFor(y) {
				fmt.Fprintf(w, "  %-16s  %s\n", t, curriculum.TopicName(t))
			}
			return nil
		}

		// Header.
		fmt.Fprintf(w, "%-16s  %-18s  %-34s  %s\n", "Topic", "Name", "Strand", "Levels")
		fmt.Fprintln(w, strings.Repeat("─", 84))

		for _, t := range problemgen.AllTopics() {
			info, err := curriculum.Info(t)
			if err != nil {
				return err
			}
			var levels []string
			for _, y := range curriculum.LevelsFor(t) {
				levels = append(levels, curriculum.LevelName(y))
			}
			fmt.Fprintf(w, "%-16s  %-18s  %-34s  %s\n",
				t, info.Name, curriculum.StrandDisplayName(info.Strand), strings.Join(levels, ", "))
		}

		fmt.Fprintf(w, "\n%d topics\n", len(problemgen.AllTopics()))
		return nil
	},
}

func init() {
	topicsCmd.Flags().Int("year", 0, "Only list the topics for this year level (1-6)")
}
