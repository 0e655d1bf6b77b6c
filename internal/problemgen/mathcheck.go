package problemgen

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

// MathCheckValidator independently recomputes the answer from the question
// text. Questions whose operands live only in rendering metadata (clock
// faces, rectangles, counted icons) pass through silently.
type MathCheckValidator struct{}

func (v *MathCheckValidator) Name() string { return "math-check" }

func (v *MathCheckValidator) Validate(p *Problem) *ValidationError {
	computed, err := computeAnswer(p)
	if err != nil {
		// Not computable from text alone; nothing to compare.
		return nil
	}
	want, ok := p.Answer.Value()
	if !ok || !closeEnough(computed, want) {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("computed %s from %q but answer is %q", formatNumber(computed), p.Question, p.Answer),
		}
	}
	return nil
}

var errNotComputable = errors.New("not computable")

// Regex patterns for extracting arithmetic from question text.
var (
	// Same-denominator fraction addition: "a/b + c/b".
	fractionArithRe = regexp.MustCompile(`(\d+)\s*/\s*(\d+)\s*\+\s*(\d+)\s*/\s*(\d+)`)

	// Integer/decimal arithmetic with +, -, ×, ÷.
	binaryArithRe = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*([+\-×÷])\s*(\d+(?:\.\d+)?)\s*=\s*\?`)

	percentOfRe  = regexp.MustCompile(`(\d+)%\s+of\s+(\d+)`)
	comesAfterRe = regexp.MustCompile(`comes after (\d+)`)
	sequenceRe   = regexp.MustCompile(`(\d+(?:,\s*\d+)+),\s*\?`)
	priceRe      = regexp.MustCompile(`\$(\d+)`)
	numberRe     = regexp.MustCompile(`\d+`)
)

// computeAnswer extracts the operation for the problem's topic from its
// question text and evaluates it.
func computeAnswer(p *Problem) (float64, error) {
	switch p.Topic {
	case TopicAddition, TopicSubtraction, TopicMultiplication, TopicDivision, TopicDecimals:
		return tryBinaryArith(p.Question)
	case TopicFractions:
		return tryFractionArith(p.Question)
	case TopicPercentages:
		return tryPercentOf(p.Question)
	case TopicMoney:
		return trySumPrices(p.Question)
	case TopicPatterns:
		return tryNextTerm(p.Question)
	case TopicCounting:
		if m := comesAfterRe.FindStringSubmatch(p.Question); m != nil {
			n, _ := strconv.Atoi(m[1])
			return float64(n + 1), nil
		}
		return tryNextTerm(p.Question)
	}
	return 0, errNotComputable
}

func tryBinaryArith(text string) (float64, error) {
	m := binaryArithRe.FindStringSubmatch(text)
	if m == nil {
		return 0, errNotComputable
	}
	a, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, err
	}
	b, err := strconv.ParseFloat(m[3], 64)
	if err != nil {
		return 0, err
	}

	switch m[2] {
	case "+":
		return roundTenths(a + b), nil
	case "-":
		return a - b, nil
	case "×":
		return a * b, nil
	case "÷":
		if b == 0 {
			return 0, fmt.Errorf("division by zero")
		}
		return a / b, nil
	}
	return 0, fmt.Errorf("unsupported operator: %s", m[2])
}

// tryFractionArith adds two fractions and reduces the result.
func tryFractionArith(text string) (float64, error) {
	m := fractionArithRe.FindStringSubmatch(text)
	if m == nil {
		return 0, errNotComputable
	}
	aN, _ := strconv.ParseInt(m[1], 10, 64)
	aD, _ := strconv.ParseInt(m[2], 10, 64)
	bN, _ := strconv.ParseInt(m[3], 10, 64)
	bD, _ := strconv.ParseInt(m[4], 10, 64)
	if aD == 0 || bD == 0 {
		return 0, fmt.Errorf("zero denominator")
	}

	rN := aN*bD + bN*aD
	rD := aD * bD
	g := gcd(abs(rN), rD)
	return float64(rN/g) / float64(rD/g), nil
}

func tryPercentOf(text string) (float64, error) {
	m := percentOfRe.FindStringSubmatch(text)
	if m == nil {
		return 0, errNotComputable
	}
	pct, _ := strconv.Atoi(m[1])
	base, _ := strconv.Atoi(m[2])
	return float64(pct*base) / 100, nil
}

func trySumPrices(text string) (float64, error) {
	matches := priceRe.FindAllStringSubmatch(text, -1)
	if len(matches) != 2 {
		return 0, errNotComputable
	}
	total := 0
	for _, m := range matches {
		n, _ := strconv.Atoi(m[1])
		total += n
	}
	return float64(total), nil
}

// tryNextTerm extends an arithmetic sequence "a, b, c, ?" by one term.
func tryNextTerm(text string) (float64, error) {
	m := sequenceRe.FindStringSubmatch(text)
	if m == nil {
		return 0, errNotComputable
	}
	var terms []int
	for _, s := range numberRe.FindAllString(m[1], -1) {
		n, _ := strconv.Atoi(s)
		terms = append(terms, n)
	}
	if len(terms) < 2 {
		return 0, errNotComputable
	}
	step := terms[1] - terms[0]
	for i := 2; i < len(terms); i++ {
		if terms[i]-terms[i-1] != step {
			return 0, fmt.Errorf("sequence %v is not arithmetic", terms)
		}
	}
	return float64(terms[len(terms)-1] + step), nil
}
