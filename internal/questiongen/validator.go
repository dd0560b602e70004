package questiongen

import "fmt"

// Validator checks one generated question. Implementations must be
// stateless and safe for concurrent use.
type Validator interface {
	Name() string
	Validate(q *Generated, req Request) *ValidationError
}

// ValidationError describes why a generated question was rejected.
type ValidationError struct {
	Validator string
	Message   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}

// Validate runs validators in order and returns the first failure.
func Validate(q *Generated, req Request, validators ...Validator) *ValidationError {
	for _, v := range validators {
		if err := v.Validate(q, req); err != nil {
			return err
		}
	}
	return nil
}
