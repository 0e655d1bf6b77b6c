package problemgen

import (
	"fmt"
	"math"
)

// StructuralValidator checks that required fields are present and that the
// topic, year level and difficulty are in their domains.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(p *Problem) *ValidationError {
	fail := func(format string, args ...any) *ValidationError {
		return &ValidationError{Validator: v.Name(), Message: fmt.Sprintf(format, args...)}
	}

	if p.ID == "" {
		return fail("id is empty")
	}
	if !p.Topic.Valid() {
		return fail("unknown topic %q", p.Topic)
	}
	if p.YearLevel < MinYearLevel || p.YearLevel > MaxYearLevel {
		return fail("year level %d outside %d-%d", p.YearLevel, MinYearLevel, MaxYearLevel)
	}
	if !p.Difficulty.Valid() {
		return fail("unknown difficulty %q", p.Difficulty)
	}
	if p.Question == "" {
		return fail("question is empty")
	}
	if p.Answer.String() == "" {
		return fail("answer is empty")
	}
	if v, ok := p.Answer.Value(); ok && (math.IsNaN(v) || math.IsInf(v, 0)) {
		return fail("answer %v is not a finite number", v)
	}
	if p.Explanation == "" {
		return fail("explanation is empty")
	}
	if len(p.Steps) == 0 {
		return fail("steps are empty")
	}
	for i, s := range p.Steps {
		if s.Description == "" {
			return fail("step %d has no description", i+1)
		}
	}
	return nil
}
