package components

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/abhisek/mathbuddy/internal/problemgen"
	"github.com/abhisek/mathbuddy/internal/ui/theme"
)

const blocksPerRow = 10

const (
	blockFull  = "■"
	blockTaken = "□"
	gridItem   = "●"
	barFull    = "▰"
	barEmpty   = "▱"
	areaCell   = "▢"
)

// RenderVisual draws a text version of the problem's manipulative. It
// returns "" when the problem has nothing useful to draw in a terminal.
func RenderVisual(p problemgen.Problem, s theme.Styles) string {
	if p.VisualContent != "" {
		return p.VisualContent
	}

	var out string
	switch p.VisualType {
	case problemgen.VisualBlocks:
		out = renderBlocks(p)
	case problemgen.VisualGrid:
		out = renderGrid(p)
	case problemgen.VisualFractionBar:
		out = renderFractionBars(p.Question)
	case problemgen.VisualRectangle:
		out = renderRectangle(p.Dimensions)
	case problemgen.VisualClock:
		out = renderClock(p.ClockTime)
	}
	if out == "" {
		return ""
	}
	if note := scaleNote(p.Display); note != "" {
		out += "\n" + s.Hint.Render(note)
	}
	return s.Body.Render(out)
}

// drawnOperands returns the operand counts to draw, preferring the scaled
// display layout.
func drawnOperands(p problemgen.Problem) (int, int, bool) {
	if p.Display != nil {
		return p.Display.Num1, p.Display.Num2, true
	}
	if p.Numbers == nil {
		return 0, 0, false
	}
	return p.Numbers.Num1, p.Numbers.Num2, true
}

func renderBlocks(p problemgen.Problem) string {
	n1, n2, ok := drawnOperands(p)
	if !ok || p.Numbers == nil {
		return ""
	}
	switch p.Numbers.Operator {
	case problemgen.OpAdd:
		return rows(strings.Repeat(blockFull, n1)) + "\n+\n" + rows(strings.Repeat(blockFull, n2))
	case problemgen.OpSubtract:
		kept := max(n1-n2, 0)
		return rows(strings.Repeat(blockFull, kept) + strings.Repeat(blockTaken, n1-kept))
	case problemgen.OpDivide:
		if n2 <= 0 {
			return ""
		}
		groups := make([]string, 0, n1/n2)
		for i := 0; i < n1/n2; i++ {
			groups = append(groups, strings.Repeat(blockFull, n2))
		}
		return rows(strings.Join(groups, " "))
	}
	return ""
}

func renderGrid(p problemgen.Problem) string {
	groups, perGroup, ok := drawnOperands(p)
	if !ok {
		return ""
	}
	lines := make([]string, groups)
	for i := range lines {
		lines[i] = strings.Repeat(gridItem, perGroup)
	}
	return strings.Join(lines, "\n")
}

var fractionTermRe = regexp.MustCompile(`(\d+)/(\d+)`)

func renderFractionBars(question string) string {
	var bars []string
	for _, m := range fractionTermRe.FindAllStringSubmatch(question, -1) {
		num, _ := strconv.Atoi(m[1])
		den, _ := strconv.Atoi(m[2])
		if den <= 0 || num > den {
			return ""
		}
		bar := strings.Repeat(barFull, num) + strings.Repeat(barEmpty, den-num)
		bars = append(bars, fmt.Sprintf("%s  %d/%d", bar, num, den))
	}
	return strings.Join(bars, "\n")
}

func renderRectangle(d *problemgen.Dimensions) string {
	if d == nil || d.Length <= 0 || d.Width <= 0 {
		return ""
	}
	row := strings.Repeat(areaCell, d.Length)
	lines := make([]string, 0, d.Width+1)
	for i := 0; i < d.Width; i++ {
		lines = append(lines, row)
	}
	lines = append(lines, fmt.Sprintf("length %d, width %d", d.Length, d.Width))
	return strings.Join(lines, "\n")
}

func renderClock(c *problemgen.ClockTime) string {
	if c == nil {
		return ""
	}
	minuteMark := c.Minutes / 5
	if minuteMark == 0 {
		minuteMark = 12
	}
	return fmt.Sprintf("🕰  short hand on %d, long hand on %d", c.Hours, minuteMark)
}

// rows wraps a run of single-rune blocks into rows of blocksPerRow,
// keeping group separators intact.
func rows(s string) string {
	var b strings.Builder
	count := 0
	for _, r := range s {
		if r == ' ' {
			b.WriteString("  ")
			continue
		}
		if count > 0 && count%blocksPerRow == 0 {
			b.WriteByte('\n')
		}
		b.WriteRune(r)
		count++
	}
	return b.String()
}

func scaleNote(d *problemgen.DisplayScale) string {
	if d == nil || d.Factor <= 0 {
		return ""
	}
	return fmt.Sprintf("(scaled: each block stands for about %.1f)", 1/d.Factor)
}
