package funcs

import (
	"fmt"

	"github.com/lumelang/lume/values"
)

// CF prefix = Critical Function call
const (
	NotEnoughParametersCode    = "CF00"
	ArgsKeyNotStringCode       = "CF01"
	ArgsNotIterableCode        = "CF02"
	KWArgsNotMappableCode      = "CF03"
	DuplicateNamedArgumentCode = "CF04"
	ExtraParameterCode         = "CF05"
	IncorrectParameterTypeCode = "CF06"
)

func notEnoughParameters(missing string, c Callable) error {
	return &values.RuntimeError{
		Code:    NotEnoughParametersCode,
		Label:   "Not enough parameters in function call",
		Message: fmt.Sprintf("Missing parameter %s for call to %s", missing, c.Repr()),
	}
}

func argsKeyNotString(key values.Value) error {
	return &values.RuntimeError{
		Code:    ArgsKeyNotStringCode,
		Label:   "**kwargs key is not a string",
		Message: fmt.Sprintf("The key %s provided in **kwargs is not a string", key.Repr()),
	}
}

func argsNotIterable() error {
	return &values.RuntimeError{
		Code:    ArgsNotIterableCode,
		Label:   "*args is not iterable",
		Message: "The argument provided for *args is not iterable",
	}
}

func kwargsNotMappable() error {
	return &values.RuntimeError{
		Code:    KWArgsNotMappableCode,
		Label:   "**kwargs is not mappable",
		Message: "The argument provided for **kwargs is not mappable",
	}
}

func duplicateNamedArgument(name string) error {
	return &values.RuntimeError{
		Code:    DuplicateNamedArgumentCode,
		Label:   "duplicate named argument",
		Message: fmt.Sprintf("Parameter %s was supplied more than once by name", name),
	}
}

func extraParameter() error {
	return &values.RuntimeError{
		Code:    ExtraParameterCode,
		Label:   "Extraneous parameter in function call",
		Message: "Extraneous parameter passed to function call",
	}
}

func incorrectParameterType(name string, index int, v values.Value, target string) error {
	var what string
	if name != "" {
		what = fmt.Sprintf("Parameter %s", name)
	} else {
		what = fmt.Sprintf("Parameter at position %d", index)
	}
	return &values.RuntimeError{
		Code:    IncorrectParameterTypeCode,
		Label:   "Incorrect parameter type",
		Message: fmt.Sprintf("%s of type %s cannot convert to %s", what, v.TypeName(), target),
	}
}
