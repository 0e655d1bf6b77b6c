package problemgen

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// AnswerKind distinguishes numeric answers from formatted text answers.
type AnswerKind int

const (
	AnswerNumeric   AnswerKind = iota // e.g. 7, 4.3
	AnswerFormatted                   // e.g. "1 1/4", "3:30", "$15"
)

// Answer is either a number or a formatted string.
// The zero value is the numeric answer 0.
type Answer struct {
	kind AnswerKind
	num  float64
	text string
}

// Numeric returns a numeric answer.
func Numeric(v float64) Answer {
	return Answer{kind: AnswerNumeric, num: v}
}

// Formatted returns a text answer such as a mixed number or a clock time.
func Formatted(s string) Answer {
	return Answer{kind: AnswerFormatted, text: s}
}

// Kind reports whether the answer is numeric or formatted.
func (a Answer) Kind() AnswerKind { return a.kind }

// String returns the canonical display text. Numbers use the shortest
// representation that round-trips ("7", "4.3", "0.3333333333333333").
func (a Answer) String() string {
	if a.kind == AnswerNumeric {
		return formatNumber(a.num)
	}
	return a.text
}

// Value returns the numeric value of the answer. Formatted answers have a
// value only when the whole text is a number, a fraction "a/b" or a mixed
// number "q r/d"; clock times and currency strings have none.
func (a Answer) Value() (float64, bool) {
	if a.kind == AnswerNumeric {
		return a.num, true
	}
	return parseNumericText(a.text)
}

// MarshalJSON encodes numeric answers as JSON numbers and formatted answers
// as JSON strings.
func (a Answer) MarshalJSON() ([]byte, error) {
	if a.kind == AnswerNumeric {
		if math.IsNaN(a.num) || math.IsInf(a.num, 0) {
			return nil, fmt.Errorf("answer %v is not representable in JSON", a.num)
		}
		return []byte(formatNumber(a.num)), nil
	}
	return json.Marshal(a.text)
}

// UnmarshalJSON accepts either a JSON number or a JSON string.
func (a *Answer) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("decode answer: %w", err)
		}
		*a = Formatted(s)
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("answer must be a number or a string: %w", err)
	}
	*a = Numeric(f)
	return nil
}

// answers converts a mixed list of ints, floats and strings into Answers.
func answers(values ...any) []Answer {
	out := make([]Answer, 0, len(values))
	for _, v := range values {
		switch v := v.(type) {
		case Answer:
			out = append(out, v)
		case int:
			out = append(out, Numeric(float64(v)))
		case float64:
			out = append(out, Numeric(v))
		case string:
			out = append(out, Formatted(v))
		default:
			panic(fmt.Sprintf("problemgen: unsupported answer value %T", v))
		}
	}
	return out
}

// formatNumber renders f without trailing zeros.
func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// formatFixed renders f with exactly places decimal places.
func formatFixed(f float64, places int) string {
	return strconv.FormatFloat(f, 'f', places, 64)
}

// formatFractionSum renders num/den as a proper fraction when num < den,
// as a whole number when den divides num, and as a mixed number "q r/den"
// otherwise. The fraction is not reduced below den, matching the
// same-denominator addition it comes from.
func formatFractionSum(num, den int) string {
	if num < den {
		return fmt.Sprintf("%d/%d", num, den)
	}
	if num%den == 0 {
		return strconv.Itoa(num / den)
	}
	return fmt.Sprintf("%d %d/%d", num/den, num%den, den)
}

// roundTenths rounds half away from zero to one decimal place.
func roundTenths(f float64) float64 {
	return math.Round(f*10) / 10
}
