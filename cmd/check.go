package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/mathbuddy/internal/problemgen"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check an answer against a problem in JSON",
	Long: `Check a learner's answer against a problem previously written by
"mathbuddy generate --json". The problem is read from --file, or from stdin
when no file is given, and validated against the problem schema.

Exits with status 1 when the answer is wrong.`,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().String("answer", "", "The learner's answer (required)")
	checkCmd.Flags().String("file", "", "Problem JSON file (default: stdin)")
	checkCmd.Flags().Bool("explain", false, "Show the worked solution after a wrong answer")
	_ = checkCmd.MarkFlagRequired("answer")
}

func runCheck(cmd *cobra.Command, args []string) error {
	answer, _ := cmd.Flags().GetString("answer")
	path, _ := cmd.Flags().GetString("file")
	explain, _ := cmd.Flags().GetBool("explain")

	var in io.Reader = cmd.InOrStdin()
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("open problem: %w", err)
		}
		defer f.Close()
		in = f
	}

	p, correct, err := checkAnswer(in, answer)
	if err != nil {
		return err
	}
	rt.log.Debug("checked answer",
		zap.String("id", p.ID),
		zap.String("answer", answer),
		zap.Bool("correct", correct),
	)

	w := cmd.OutOrStdout()
	if correct {
		fmt.Fprintln(w, rt.styles.Correct.Render("✓ Correct!"))
		return nil
	}
	fmt.Fprintln(w, rt.styles.Incorrect.Render("✗ Not quite."))
	if explain {
		printSolution(w, rt.styles, *p)
	}
	return errIncorrect
}

// checkAnswer decodes one problem document from r and checks answer
// against it.
func checkAnswer(r io.Reader, answer string) (*problemgen.Problem, bool, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, false, fmt.Errorf("read problem: %w", err)
	}
	p, err := problemgen.DecodeProblem(raw)
	if err != nil {
		return nil, false, err
	}
	return p, problemgen.CheckAnswer(p, answer), nil
}
