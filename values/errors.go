package values

import (
	"errors"
	"fmt"
)

// RuntimeError is a typed, recoverable failure surfaced to the evaluator:
// a stable short code, a one-line label, and a full message.
type RuntimeError struct {
	Code    string
	Label   string
	Message string
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Code, e.Label, e.Message)
}

// CV prefix = Critical Value operation
const (
	UnhashableCode     = "CV00"
	NotOrderableCode   = "CV01"
	NotConvertibleCode = "CV02"
	MutateFrozenCode   = "CV03"
)

func Unhashable(v Value) error {
	return &RuntimeError{
		Code:    UnhashableCode,
		Label:   "value is not hashable",
		Message: fmt.Sprintf("Value of type %s is not hashable", v.TypeName()),
	}
}

func NotOrderable(v Value) error {
	return &RuntimeError{
		Code:    NotOrderableCode,
		Label:   "value is not orderable",
		Message: fmt.Sprintf("Value of type %s does not support ordering", v.TypeName()),
	}
}

func NotConvertible(v Value, target string) error {
	return &RuntimeError{
		Code:    NotConvertibleCode,
		Label:   "value is not convertible",
		Message: fmt.Sprintf("Value of type %s cannot convert to %s", v.TypeName(), target),
	}
}

func MutateFrozen(v Value) error {
	return &RuntimeError{
		Code:    MutateFrozenCode,
		Label:   "value is frozen",
		Message: fmt.Sprintf("Value of type %s is frozen and cannot be mutated", v.TypeName()),
	}
}

// IsCode reports whether err carries the given error code.
func IsCode(err error, code string) bool {
	var re *RuntimeError
	if errors.As(err, &re) {
		return re.Code == code
	}
	return false
}
