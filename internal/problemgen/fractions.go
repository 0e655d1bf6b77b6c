package problemgen

import (
	"fmt"
	"strconv"
)

func fractions(pk picker, d Difficulty) Problem {
	denom := pk.choice(fractionDenominators[tier(d)])
	num1 := pk.intn(1, denom-1)
	num2 := pk.intn(1, denom-1)
	return fractionProblem(num1, num2, denom)
}

// fractionProblem adds two fractions over the same denominator. The sum may
// pass the denominator, in which case the canonical answer is the whole or
// mixed number and the improper fraction is accepted too.
func fractionProblem(num1, num2, denom int) Problem {
	sum := num1 + num2
	display := formatFractionSum(sum, denom)
	improper := fmt.Sprintf("%d/%d", sum, denom)
	decimal := formatNumber(float64(sum) / float64(denom))

	return Problem{
		Topic:             TopicFractions,
		Question:          fmt.Sprintf("%d/%d + %d/%d = ?", num1, denom, num2, denom),
		Answer:            Formatted(display),
		AcceptableAnswers: answers(improper, display, decimal),
		Hint:              "When the bottom numbers are the same, just add the top numbers!",
		Explanation:       fmt.Sprintf("With the same denominator, add the numerators: %d + %d = %d", num1, num2, sum),
		VisualType:        VisualFractionBar,
		InteractiveType:   InteractiveInput,
		Steps: []Step{
			{Description: "Keep the bottom number (denominator) the same", Result: fmt.Sprintf("?/%d", denom)},
			{Description: "Add the top numbers (numerators)", Formula: fmt.Sprintf("%d + %d", num1, num2), Result: strconv.Itoa(sum)},
			{Description: "Write the answer", Result: display},
		},
	}
}

func decimals(pk picker, d Difficulty) Problem {
	r := decimalTenths(d)
	return decimalProblem(pk.in(r), pk.in(r))
}

// decimalProblem adds two one-decimal-place numbers given in tenths.
func decimalProblem(tenths1, tenths2 int) Problem {
	num1 := float64(tenths1) / 10
	num2 := float64(tenths2) / 10
	answer := roundTenths(num1 + num2)
	a, b := formatFixed(num1, 1), formatFixed(num2, 1)

	return Problem{
		Topic:             TopicDecimals,
		Question:          fmt.Sprintf("%s + %s = ?", a, b),
		Answer:            Numeric(answer),
		AcceptableAnswers: answers(answer, formatFixed(answer, 1), formatFixed(answer, 2)),
		Hint:              "Line up the decimal points like a tower!",
		Explanation:       fmt.Sprintf("Line up the decimals and add like normal numbers: %s + %s = %s", a, b, formatNumber(answer)),
		VisualType:        VisualNumberLine,
		InteractiveType:   InteractiveInput,
		Steps: []Step{
			{Description: "Line up the decimal points"},
			{Description: "Add each column from right to left"},
			{Description: "Put the decimal point in the answer", Result: formatNumber(answer)},
		},
	}
}

func percentages(pk picker, d Difficulty) Problem {
	pct := pk.choice(percentageChoices[tier(d)])
	// Multiples of 20 keep every percentage here a whole number.
	base := pk.intn(2, 10) * 20
	return percentageProblem(pct, base)
}

func percentageProblem(pct, base int) Problem {
	answer := float64(pct*base) / 100
	return Problem{
		Topic:           TopicPercentages,
		Question:        fmt.Sprintf("What is %d%% of %d?", pct, base),
		Answer:          Numeric(answer),
		Hint:            fmt.Sprintf("%d%% means %d out of 100. Try finding half or a quarter first!", pct, pct),
		Explanation:     fmt.Sprintf("%d%% of %d = %s", pct, base, formatNumber(answer)),
		VisualType:      VisualPieChart,
		InteractiveType: InteractiveInput,
		Steps: []Step{
			{Description: fmt.Sprintf("%d%% means %d parts out of 100", pct, pct)},
			{Description: "Calculate the answer", Formula: fmt.Sprintf("%d/100 × %d", pct, base), Result: formatNumber(answer)},
		},
	}
}
