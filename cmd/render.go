package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/abhisek/mathbuddy/internal/curriculum"
	"github.com/abhisek/mathbuddy/internal/problemgen"
	"github.com/abhisek/mathbuddy/internal/ui/components"
	"github.com/abhisek/mathbuddy/internal/ui/theme"
)

// printProblem writes the question, its header and any drawable visual.
func printProblem(w io.Writer, s theme.Styles, header string, p problemgen.Problem) {
	fmt.Fprintln(w, s.Title.Render(header)+"  "+s.Subtitle.Render(problemLabel(p)))
	fmt.Fprintln(w, s.Question.Render(p.Question))
	if v := components.RenderVisual(p, s); v != "" {
		fmt.Fprintln(w, v)
	}
}

// printSolution writes the answer, accepted alternatives and worked steps.
func printSolution(w io.Writer, s theme.Styles, p problemgen.Problem) {
	fmt.Fprintf(w, "%s %s\n", s.Label.Render("Answer:"), p.Answer)
	if alts := alternatives(p); len(alts) > 0 {
		fmt.Fprintf(w, "%s %s\n", s.Label.Render("Also accepted:"), strings.Join(alts, ", "))
	}
	if p.Explanation != "" {
		fmt.Fprintln(w, s.Body.Render(p.Explanation))
	}
	for i, step := range p.Steps {
		line := fmt.Sprintf("  %d. %s", i+1, step.Description)
		if step.Formula != "" {
			line += ": " + step.Formula
		}
		if step.Result != "" {
			line += " → " + step.Result
		}
		fmt.Fprintln(w, s.Subtitle.Render(line))
	}
}

func problemLabel(p problemgen.Problem) string {
	return fmt.Sprintf("%s · %s · %s",
		curriculum.LevelName(p.YearLevel), curriculum.TopicName(p.Topic), p.Difficulty)
}

// alternatives lists the acceptable answers that differ from the canonical
// one.
func alternatives(p problemgen.Problem) []string {
	canonical := p.Answer.String()
	var out []string
	for _, a := range p.AcceptableAnswers {
		if a.String() != canonical {
			out = append(out, a.String())
		}
	}
	return out
}
