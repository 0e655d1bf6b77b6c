package problemgen

import (
	"errors"
	"fmt"
)

// Validator checks a generated problem for internal consistency.
// Implementations should be stateless and safe for concurrent use.
type Validator interface {
	// Name returns a short identifier for this validator (for error messages
	// and logging), e.g. "structural", "math-check", "answer-consistency".
	Name() string

	// Validate checks the problem and returns nil if it passes.
	Validate(p *Problem) *ValidationError
}

// ValidationError describes why a problem failed validation.
type ValidationError struct {
	Validator string // Name of the validator that failed
	Message   string // Human-readable description of the failure
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}

// DefaultValidators returns the standard validator chain.
func DefaultValidators() []Validator {
	return []Validator{
		&StructuralValidator{},
		&AnswerConsistencyValidator{},
		&OperandValidator{},
		&MathCheckValidator{},
	}
}

// Validate runs every validator against p and joins their failures.
// Returns nil when p passes them all.
func Validate(p *Problem, validators ...Validator) error {
	if len(validators) == 0 {
		validators = DefaultValidators()
	}
	var errs []error
	for _, v := range validators {
		if verr := v.Validate(p); verr != nil {
			errs = append(errs, verr)
		}
	}
	return errors.Join(errs...)
}
