package problemgen

import (
	"fmt"
	"strconv"
	"strings"
)

var countingIcons = []string{"🍎", "⭐", "🌟", "🎈", "🐱", "🐶", "🦋", "🌸"}

func (g *Generator) counting(pk picker, y YearLevel, d Difficulty) Problem {
	count := pk.in(countingRanges[d])
	startNum := pk.intn(1, 5)

	// Count by twos is kept for year 2 and up.
	variant := pk.intn(0, 1)
	if y >= 2 {
		variant = pk.intn(0, 2)
	}

	switch variant {
	case 0:
		return countObjectsProblem(count, pk.word(countingIcons), g.cfg.MaxCountingIcons)
	case 1:
		return comesNextProblem(count)
	default:
		return countByTwosProblem(startNum)
	}
}

func countObjectsProblem(count int, icon string, maxIcons int) Problem {
	shown := min(count, maxIcons)
	visual := strings.Repeat(icon, shown)
	if count > maxIcons {
		visual += fmt.Sprintf(" (+%d more)", count-maxIcons)
	}
	return Problem{
		Topic:           TopicCounting,
		Question:        "Count the objects:",
		VisualContent:   visual,
		Answer:          Numeric(float64(count)),
		Hint:            "Count each object one by one!",
		Explanation:     fmt.Sprintf("There are %d objects in total.", count),
		VisualType:      VisualBlocks,
		InteractiveType: InteractiveDragDrop,
		Numbers:         &Operands{Num1: count},
		Steps: []Step{
			{Description: "Count each object", Result: fmt.Sprintf("1, 2, 3... %d", count)},
		},
	}
}

func comesNextProblem(count int) Problem {
	next := count + 1
	return Problem{
		Topic:           TopicCounting,
		Question:        fmt.Sprintf("What number comes after %d?", count),
		Answer:          Numeric(float64(next)),
		Hint:            "Count one more!",
		Explanation:     fmt.Sprintf("After %d comes %d", count, next),
		VisualType:      VisualNumberLine,
		InteractiveType: InteractiveDragDrop,
		Numbers:         &Operands{Num1: count, Num2: 1, Operator: OpAdd},
		Steps: []Step{
			{Description: fmt.Sprintf("Start at %d", count), Result: strconv.Itoa(count)},
			{Description: "Count one more", Result: strconv.Itoa(next)},
		},
	}
}

func countByTwosProblem(start int) Problem {
	seq := arithmeticSequence(start, 2, 4)
	return Problem{
		Topic:           TopicCounting,
		Question:        fmt.Sprintf("Count by 2s: %s, ?", joinInts(seq[:3])),
		Answer:          Numeric(float64(seq[3])),
		Hint:            "Add 2 each time!",
		Explanation:     fmt.Sprintf("When counting by 2s: %s", joinInts(seq)),
		VisualType:      VisualNumberLine,
		InteractiveType: InteractiveDragDrop,
		Steps: []Step{
			{Description: "Pattern: add 2 each time"},
			{Description: fmt.Sprintf("%d + 2 = %d", seq[2], seq[3]), Result: strconv.Itoa(seq[3])},
		},
	}
}

func (g *Generator) addition(pk picker, y YearLevel, d Difficulty) Problem {
	r := operandRanges.lookup(y, d)
	num1 := pk.in(r)
	// Keep the second operand from running far past the first.
	num2 := pk.intn(r.Min, min(r.Max, num1+20))
	return g.additionProblem(num1, num2, y)
}

func (g *Generator) additionProblem(num1, num2 int, y YearLevel) Problem {
	answer := num1 + num2
	hint := "Try breaking the numbers into smaller parts!"
	if y <= 2 {
		hint = "Use your fingers or count objects!"
	}
	return Problem{
		Topic:           TopicAddition,
		Question:        fmt.Sprintf("%d + %d = ?", num1, num2),
		Answer:          Numeric(float64(answer)),
		Hint:            hint,
		Explanation:     fmt.Sprintf("When we add %d and %d, we combine them together to get %d.", num1, num2, answer),
		VisualType:      VisualBlocks,
		InteractiveType: InteractiveDragDrop,
		Numbers:         &Operands{Num1: num1, Num2: num2, Operator: OpAdd},
		Display:         scaleForDisplay(OpAdd, num1, num2, g.cfg),
		Steps: []Step{
			{Description: fmt.Sprintf("Start with %d", num1), Result: strconv.Itoa(num1)},
			{Description: fmt.Sprintf("Add %d more", num2), Formula: fmt.Sprintf("%d + %d", num1, num2), Result: strconv.Itoa(answer)},
		},
	}
}

func (g *Generator) subtraction(pk picker, y YearLevel, d Difficulty) Problem {
	r := operandRanges.lookup(y, d)
	num1 := pk.in(r)
	num2 := pk.intn(1, min(num1, r.Max))
	return g.subtractionProblem(num1, num2, y)
}

func (g *Generator) subtractionProblem(num1, num2 int, y YearLevel) Problem {
	answer := num1 - num2
	hint := "Think about counting backwards!"
	if y <= 2 {
		hint = "Take away objects and count what's left!"
	}
	return Problem{
		Topic:           TopicSubtraction,
		Question:        fmt.Sprintf("%d - %d = ?", num1, num2),
		Answer:          Numeric(float64(answer)),
		Hint:            hint,
		Explanation:     fmt.Sprintf("When we subtract %d from %d, we take away %d to get %d.", num2, num1, num2, answer),
		VisualType:      VisualBlocks,
		InteractiveType: InteractiveDragDrop,
		Numbers:         &Operands{Num1: num1, Num2: num2, Operator: OpSubtract},
		Display:         scaleForDisplay(OpSubtract, num1, num2, g.cfg),
		Steps: []Step{
			{Description: fmt.Sprintf("Start with %d", num1), Result: strconv.Itoa(num1)},
			{Description: fmt.Sprintf("Take away %d", num2), Formula: fmt.Sprintf("%d - %d", num1, num2), Result: strconv.Itoa(answer)},
		},
	}
}

func (g *Generator) multiplication(pk picker, y YearLevel, d Difficulty) Problem {
	r := multiplicationRanges.lookup(y, d)
	return g.multiplicationProblem(pk.in(r), pk.in(r))
}

func (g *Generator) multiplicationProblem(num1, num2 int) Problem {
	answer := num1 * num2
	return Problem{
		Topic:           TopicMultiplication,
		Question:        fmt.Sprintf("%d × %d = ?", num1, num2),
		Answer:          Numeric(float64(answer)),
		Hint:            fmt.Sprintf("Think of it as %d groups of %d!", num1, num2),
		Explanation:     fmt.Sprintf("%d × %d means %d groups of %d, which equals %d.", num1, num2, num1, num2, answer),
		VisualType:      VisualGrid,
		InteractiveType: InteractiveDragDrop,
		Numbers:         &Operands{Num1: num1, Num2: num2, Operator: OpMultiply},
		Display:         scaleForDisplay(OpMultiply, num1, num2, g.cfg),
		Steps: []Step{
			{Description: fmt.Sprintf("We have %d groups", num1), Result: strconv.Itoa(num1)},
			{Description: fmt.Sprintf("Each group has %d", num2), Result: strconv.Itoa(num2)},
			{Description: "Count all together", Formula: fmt.Sprintf("%d × %d", num1, num2), Result: strconv.Itoa(answer)},
		},
	}
}

func (g *Generator) division(pk picker, y YearLevel, d Difficulty) Problem {
	r := divisionRanges.lookup(y, d)
	divisor := pk.in(r)
	quotient := pk.in(r)
	return g.divisionProblem(divisor, quotient)
}

// divisionProblem builds dividend = divisor × quotient so the division is
// always exact.
func (g *Generator) divisionProblem(divisor, quotient int) Problem {
	dividend := divisor * quotient
	return Problem{
		Topic:           TopicDivision,
		Question:        fmt.Sprintf("%d ÷ %d = ?", dividend, divisor),
		Answer:          Numeric(float64(quotient)),
		Hint:            fmt.Sprintf("How many groups of %d can you make from %d?", divisor, dividend),
		Explanation:     fmt.Sprintf("%d ÷ %d means splitting %d into groups of %d, giving us %d groups.", dividend, divisor, dividend, divisor, quotient),
		VisualType:      VisualBlocks,
		InteractiveType: InteractiveDragDrop,
		Numbers:         &Operands{Num1: dividend, Num2: divisor, Operator: OpDivide},
		Display:         scaleForDisplay(OpDivide, dividend, divisor, g.cfg),
		Steps: []Step{
			{Description: fmt.Sprintf("Start with %d objects", dividend), Result: strconv.Itoa(dividend)},
			{Description: fmt.Sprintf("Make groups of %d", divisor), Formula: fmt.Sprintf("%d ÷ %d", dividend, divisor)},
			{Description: "Count the groups", Result: strconv.Itoa(quotient)},
		},
	}
}

// arithmeticSequence returns n terms starting at start with a common step.
func arithmeticSequence(start, step, n int) []int {
	seq := make([]int, n)
	for i := range seq {
		seq[i] = start + step*i
	}
	return seq
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ", ")
}
