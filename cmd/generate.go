package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"math/rand/v2"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/mathbuddy/internal/config"
	"github.com/abhisek/mathbuddy/internal/curriculum"
	"github.com/abhisek/mathbuddy/internal/problemgen"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate problems and print them as text or JSON",
	Long: `Generate randomized problems for a year level and difficulty.

With --json each problem is written as one JSON object per line, in the
format accepted by "mathbuddy check".`,
	RunE: runGenerate,
}

func init() {
	addLevelFlags(generateCmd)
	generateCmd.Flags().Int("count", 1, "Number of problems to generate")
	generateCmd.Flags().Bool("json", false, "Write JSON lines instead of text")
	generateCmd.Flags().Bool("answers", false, "Include answers and worked steps in text output")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	count, _ := cmd.Flags().GetInt("count")
	asJSON, _ := cmd.Flags().GetBool("json")
	withAnswers, _ := cmd.Flags().GetBool("answers")
	if count < 1 {
		return fmt.Errorf("invalid count %d: must be at least 1", count)
	}

	problems := generateProblems(rt.cfg, count, rt.log)
	if asJSON {
		return writeJSONLines(cmd.OutOrStdout(), problems)
	}

	w := cmd.OutOrStdout()
	for i, p := range problems {
		printProblem(w, rt.styles, fmt.Sprintf("Problem %d/%d", i+1, len(problems)), p)
		if withAnswers {
			printSolution(w, rt.styles, p)
		}
		fmt.Fprintln(w)
	}
	return nil
}

// generateProblems produces count problems for the configured level. An
// empty topic draws a random topic from the level's menu for each problem.
func generateProblems(cfg config.Config, count int, log *zap.Logger) []problemgen.Problem {
	gen := problemgen.New(cfg.GeneratorConfig())
	seed := cfg.Seed
	year := problemgen.YearLevel(cfg.YearLevel)
	difficulty := problemgen.Difficulty(cfg.Difficulty)
	rnd := rand.New(rand.NewPCG(seed, seed+1))
	if seed == 0 {
		rnd = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	problems := make([]problemgen.Problem, 0, count)
	for i := 0; i < count; i++ {
		topic := problemgen.Topic(cfg.Topic)
		if topic == "" {
			topic = curriculum.PickTopic(year, rnd)
		}
		p := gen.Generate(topic, year, difficulty)
		log.Debug("generated problem",
			zap.String("id", p.ID),
			zap.String("topic", string(p.Topic)),
			zap.Int("year_level", int(p.YearLevel)),
			zap.String("difficulty", string(p.Difficulty)),
		)
		problems = append(problems, p)
	}
	return problems
}

func writeJSONLines(w io.Writer, problems []problemgen.Problem) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	for _, p := range problems {
		if err := enc.Encode(p); err != nil {
			return fmt.Errorf("encode problem: %w", err)
		}
	}
	return nil
}
