package problemgen

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// CheckAnswer compares the learner's input against the problem's answers.
// Returns true if the answer is correct.
//
// Normalization rules:
// - Whitespace is trimmed
// - Comparison is case-insensitive
// - Any entry of AcceptableAnswers is as good as the canonical answer
// - Numeric input equal to the canonical value is accepted ("7.0" for 7)
//
// The numeric fallback reads the leading number of the input, so "7 apples"
// counts as 7, and needs the canonical answer to have a numeric value.
// Input without a leading number never matches through it.
func CheckAnswer(problem *Problem, learnerAnswer string) bool {
	if problem == nil {
		return false
	}
	normalized := normalizeText(learnerAnswer)
	if normalized == "" {
		return false
	}

	if normalized == normalizeText(problem.Answer.String()) {
		return true
	}
	for _, alt := range problem.AcceptableAnswers {
		if normalized == normalizeText(alt.String()) {
			return true
		}
	}
	return numericMatch(normalized, problem.Answer)
}

// normalizeText trims whitespace and lowercases s.
func normalizeText(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// leadingNumberRe matches a decimal number at the start of the input:
// optional sign, digits with at most one point, optional exponent.
var leadingNumberRe = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

// leadingNumber parses the longest numeric prefix of s.
func leadingNumber(s string) (float64, bool) {
	m := leadingNumberRe.FindString(s)
	if m == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// numericMatch reports whether the leading number of input equals the
// answer's numeric value.
func numericMatch(input string, answer Answer) bool {
	want, ok := answer.Value()
	if !ok {
		return false
	}
	got, ok := leadingNumber(input)
	if !ok {
		return false
	}
	return got == want
}

// parseNumericText parses a plain number, a fraction "a/b" or a mixed
// number "q r/d". The second result is false for anything else.
func parseNumericText(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f, true
	}

	whole := int64(0)
	frac := s
	if i := strings.IndexByte(s, ' '); i > 0 {
		w, err := strconv.ParseInt(s[:i], 10, 64)
		if err != nil {
			return 0, false
		}
		whole = w
		frac = strings.TrimSpace(s[i+1:])
	}

	num, den, err := parseFraction(frac)
	if err != nil || den <= 0 || num < 0 {
		return 0, false
	}
	if whole < 0 {
		return float64(whole) - float64(num)/float64(den), true
	}
	return float64(whole) + float64(num)/float64(den), true
}

// parseFraction parses "a/b" into numerator and denominator.
func parseFraction(s string) (int64, int64, error) {
	parts := strings.SplitN(s, "/", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid fraction format: %q", s)
	}
	num, err := strconv.ParseInt(strings.TrimSpace(parts[0]), 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid numerator: %w", err)
	}
	den, err := strconv.ParseInt(strings.TrimSpace(parts[1]), 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid denominator: %w", err)
	}
	return num, den, nil
}

// gcd returns the greatest common divisor of a and b.
// Both a and b must be non-negative.
func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// abs returns the absolute value of n.
func abs(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}
