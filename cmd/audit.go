package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/mathbuddy/internal/curriculum"
	"github.com/abhisek/mathbuddy/internal/problemgen"
)

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Generate samples for every topic and level and validate them",
	Long: `Generate --samples problems for every topic, year level and difficulty
and run each through the validator chain. Exits non-zero when any problem
fails validation or the curriculum tables are inconsistent.`,
	RunE: runAudit,
}

func init() {
	auditCmd.Flags().Int("samples", 20, "Problems per topic, year level and difficulty")
	auditCmd.Flags().Uint64("seed", 0, "Random seed (0 = clock)")
}

// auditReport counts validated problems per topic.
type auditReport struct {
	Checked  map[problemgen.Topic]int
	Failed   map[problemgen.Topic]int
	Failures []error
}

func (r *auditReport) total() (checked, failed int) {
	for _, n := range r.Checked {
		checked += n
	}
	for _, n := range r.Failed {
		failed += n
	}
	return checked, failed
}

func runAudit(cmd *cobra.Command, args []string) error {
	samples, _ := cmd.Flags().GetInt("samples")
	if samples < 1 {
		return fmt.Errorf("invalid samples %d: must be at least 1", samples)
	}
	cfg := rt.cfg.GeneratorConfig()
	if cmd.Flags().Changed("seed") {
		cfg.Seed, _ = cmd.Flags().GetUint64("seed")
	}

	if err := curriculum.Validate(); err != nil {
		return err
	}

	report := auditProblems(problemgen.New(cfg), samples, rt.log)
	printAudit(cmd.OutOrStdout(), report)

	if _, failed := report.total(); failed > 0 {
		return fmt.Errorf("%d problems failed validation", failed)
	}
	return nil
}

// auditProblems generates samples problems for every topic, year level and
// difficulty and validates each one.
func auditProblems(gen *problemgen.Generator, samples int, log *zap.Logger) *auditReport {
	report := &auditReport{
		Checked: make(map[problemgen.Topic]int),
		Failed:  make(map[problemgen.Topic]int),
	}
	for _, topic := range problemgen.AllTopics() {
		for y := problemgen.MinYearLevel; y <= problemgen.MaxYearLevel; y++ {
			for _, d := range problemgen.AllDifficulties() {
				for i := 0; i < samples; i++ {
					p := gen.Generate(topic, y, d)
					report.Checked[topic]++
					if err := problemgen.Validate(&p); err != nil {
						report.Failed[topic]++
						report.Failures = append(report.Failures, fmt.Errorf("%s: %w", p.Question, err))
						log.Warn("problem failed validation",
							zap.String("topic", string(topic)),
							zap.Int("year_level", int(y)),
							zap.String("difficulty", string(d)),
							zap.String("question", p.Question),
							zap.Error(err),
						)
					}
				}
			}
		}
	}
	return report
}

func printAudit(w io.Writer, r *auditReport) {
	fmt.Fprintf(w, "%-18s  %8s  %6s\n", "Topic", "Checked", "Failed")
	for _, topic := range problemgen.AllTopics() {
		fmt.Fprintf(w, "%-18s  %8d  %6d\n", curriculum.TopicName(topic), r.Checked[topic], r.Failed[topic])
	}
	checked, failed := r.total()
	fmt.Fprintf(w, "\n%d problems checked, %d failed\n", checked, failed)
	for _, err := range r.Failures {
		fmt.Fprintln(w, "  -", err)
	}
}
