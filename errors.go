package argon2

import "fmt"

// InvalidParamError is the one error kind this package raises (spec.md 7):
// a cost or input parameter was out of range. It is always returned before
// any memory is allocated.
type InvalidParamError struct {
	Field string
	Value interface{}
}

func (e *InvalidParamError) Error() string {
	return fmt.Sprintf("argon2: invalid parameter %s: %v", e.Field, e.Value)
}
