package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/mathbuddy/internal/config"
	"github.com/abhisek/mathbuddy/internal/curriculum"
	"github.com/abhisek/mathbuddy/internal/problemgen"
	"github.com/abhisek/mathbuddy/internal/session"
	"github.com/abhisek/mathbuddy/internal/ui/components"
	"github.com/abhisek/mathbuddy/internal/ui/theme"
)

var practiceCmd = &cobra.Command{
	Use:   "practice",
	Short: "Answer problems interactively in the terminal",
	Long: `Practice a run of problems, answering each one on stdin.

Type "hint" for a hint, "skip" to move on or "quit" to stop early. After
too many wrong tries the answer and worked steps are shown.`,
	RunE: runPractice,
}

func init() {
	addLevelFlags(practiceCmd)
	practiceCmd.Flags().Int("count", 5, "Number of problems to practice")
}

func runPractice(cmd *cobra.Command, args []string) error {
	count, _ := cmd.Flags().GetInt("count")
	if count < 1 {
		return fmt.Errorf("invalid count %d: must be at least 1", count)
	}

	sess, err := newSession(rt.cfg)
	if err != nil {
		return err
	}
	rt.log.Debug("practice started", zap.String("session_id", sess.ID), zap.Int("count", count))

	p := &practice{
		in:     bufio.NewScanner(cmd.InOrStdin()),
		out:    cmd.OutOrStdout(),
		styles: rt.styles,
		sess:   sess,
	}
	p.run(count)

	sum := sess.Summary()
	rt.log.Debug("practice finished",
		zap.String("session_id", sum.SessionID),
		zap.Int("total", sum.TotalQuestions),
		zap.Int("correct", sum.TotalCorrect),
	)
	printSummary(p.out, rt.styles, sum)
	return nil
}

func newSession(cfg config.Config) (*session.Session, error) {
	return session.New(session.Options{
		YearLevel:   problemgen.YearLevel(cfg.YearLevel),
		Difficulty:  problemgen.Difficulty(cfg.Difficulty),
		Topic:       problemgen.Topic(cfg.Topic),
		RevealAfter: cfg.RevealAfter,
		Seed:        cfg.Seed,
		Source:      problemgen.New(cfg.GeneratorConfig()),
	})
}

// practice drives a session from line-oriented input.
type practice struct {
	in     *bufio.Scanner
	out    io.Writer
	styles theme.Styles
	sess   *session.Session
}

// run serves count problems. It stops early when input closes or the
// learner types quit.
func (pr *practice) run(count int) {
	s := pr.styles
	for i := 1; i <= count; i++ {
		prob := pr.sess.Next()
		fmt.Fprintln(pr.out)
		printProblem(pr.out, s, fmt.Sprintf("── Problem %d/%d ──", i, count), prob)

		if !pr.answer(prob) {
			fmt.Fprintln(pr.out, s.Subtitle.Render("(stopped)"))
			return
		}
	}
}

// answer prompts until the problem is solved, revealed or skipped. It
// returns false when the practice run should stop.
func (pr *practice) answer(prob problemgen.Problem) bool {
	s := pr.styles
	for {
		fmt.Fprint(pr.out, "Your answer: ")
		if !pr.in.Scan() {
			fmt.Fprintln(pr.out)
			return false
		}
		input := strings.TrimSpace(pr.in.Text())

		switch strings.ToLower(input) {
		case "":
			continue
		case "quit", "q":
			return false
		case "skip":
			fmt.Fprintln(pr.out, s.Subtitle.Render("(skipped)"))
			return true
		case "hint":
			if prob.Hint != "" {
				fmt.Fprintln(pr.out, s.Hint.Render("💡 "+prob.Hint))
			} else {
				fmt.Fprintln(pr.out, s.Hint.Render("No hint for this one."))
			}
			continue
		}

		res, err := pr.sess.Submit(input)
		if err != nil {
			fmt.Fprintln(pr.out, s.Incorrect.Render(err.Error()))
			return false
		}
		switch {
		case res.Correct:
			msg := "✓ Correct!"
			if res.Streak >= 3 {
				msg += fmt.Sprintf(" 🔥 %d in a row", res.Streak)
			}
			fmt.Fprintln(pr.out, s.Correct.Render(msg))
			return true
		case res.Reveal:
			fmt.Fprintln(pr.out, s.Revealed.Render("Let's look at the answer together."))
			printSolution(pr.out, s, prob)
			return true
		default:
			fmt.Fprintln(pr.out, s.Incorrect.Render("✗ Not quite, try again."))
		}
	}
}

func printSummary(w io.Writer, s theme.Styles, sum *session.Summary) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, s.Title.Render(fmt.Sprintf("── Summary: %d/%d correct (%d%%) ──",
		sum.TotalCorrect, sum.TotalQuestions, sum.Accuracy)))
	if sum.BestStreak > 1 {
		fmt.Fprintf(w, "Best streak: %d\n", sum.BestStreak)
	}
	for _, tr := range sum.TopicResults {
		pct := float64(tr.Correct) / float64(tr.Attempted)
		label := fmt.Sprintf("%-18s", curriculum.TopicName(tr.Topic))
		fmt.Fprintln(w, components.NewProgressBar(label, pct, true, 50).View(s))
	}
}
