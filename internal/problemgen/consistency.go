package problemgen

import (
	"fmt"
	"math"
)

// AnswerConsistencyValidator checks that the canonical answer and every
// acceptable answer are accepted by CheckAnswer, and that every form with a
// numeric value agrees with the canonical value.
type AnswerConsistencyValidator struct{}

func (v *AnswerConsistencyValidator) Name() string { return "answer-consistency" }

func (v *AnswerConsistencyValidator) Validate(p *Problem) *ValidationError {
	if !CheckAnswer(p, p.Answer.String()) {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("canonical answer %q is rejected", p.Answer),
		}
	}

	want, hasValue := p.Answer.Value()
	for _, alt := range p.AcceptableAnswers {
		if !CheckAnswer(p, alt.String()) {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("acceptable answer %q is rejected", alt),
			}
		}
		got, ok := alt.Value()
		if !ok {
			continue
		}
		if !hasValue || !closeEnough(got, want) {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("acceptable answer %q does not equal canonical answer %q", alt, p.Answer),
			}
		}
	}
	return nil
}

// OperandValidator checks the answer against the exposed operands:
// subtraction never goes negative and division is always exact.
type OperandValidator struct{}

func (v *OperandValidator) Name() string { return "operands" }

func (v *OperandValidator) Validate(p *Problem) *ValidationError {
	n := p.Numbers
	if n == nil {
		return nil
	}
	fail := func(format string, args ...any) *ValidationError {
		return &ValidationError{Validator: v.Name(), Message: fmt.Sprintf(format, args...)}
	}

	var want int
	switch n.Operator {
	case "":
		want = n.Num1
	case OpAdd:
		want = n.Num1 + n.Num2
	case OpSubtract:
		if n.Num1 < n.Num2 {
			return fail("subtraction %d - %d goes negative", n.Num1, n.Num2)
		}
		want = n.Num1 - n.Num2
	case OpMultiply:
		want = n.Num1 * n.Num2
	case OpDivide:
		if n.Num2 == 0 {
			return fail("division by zero")
		}
		if n.Num1%n.Num2 != 0 {
			return fail("division %d ÷ %d leaves a remainder", n.Num1, n.Num2)
		}
		want = n.Num1 / n.Num2
	default:
		return fail("unknown operator %q", n.Operator)
	}

	got, ok := p.Answer.Value()
	if !ok || got != float64(want) {
		return fail("answer %q does not match %d %s %d = %d", p.Answer, n.Num1, n.Operator, n.Num2, want)
	}
	return nil
}

func closeEnough(a, b float64) bool {
	return math.Abs(a-b) <= 1e-9
}
