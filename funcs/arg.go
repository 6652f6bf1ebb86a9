package funcs

import "github.com/lumelang/lume/values"

// Arg is one resolved parameter. Conversion to a natively-required type is
// narrow and explicit: a value either has the requested type or the
// conversion fails with IncorrectParameterType. Absent optional parameters
// skip conversion entirely through the Optional variants.
type Arg struct {
	param Parameter
	index int
	value values.Value
}

// Present reports whether the parameter was supplied or defaulted. Only
// Optional parameters can be absent.
func (a Arg) Present() bool { return a.value != nil }

// Value returns the bound value, or None for an absent optional parameter.
func (a Arg) Value() values.Value {
	if a.value == nil {
		return values.None
	}
	return a.value
}

func (a Arg) fail(target string) error {
	return incorrectParameterType(a.param.Name, a.index, a.Value(), target)
}

func (a Arg) Int() (int64, error) {
	v, ok := a.value.(values.Int)
	if !ok {
		return 0, a.fail("int")
	}
	return int64(v), nil
}

func (a Arg) String() (string, error) {
	v, ok := a.value.(values.String)
	if !ok {
		return "", a.fail("string")
	}
	return string(v), nil
}

// Bool is truthiness, defined for every kind; an absent optional parameter
// is false.
func (a Arg) Bool() bool {
	return a.Value().ToBool()
}

func (a Arg) List() (*values.List, error) {
	v, ok := a.value.(*values.List)
	if !ok {
		return nil, a.fail("list")
	}
	return v, nil
}

func (a Arg) Dict() (*values.Dict, error) {
	v, ok := a.value.(*values.Dict)
	if !ok {
		return nil, a.fail("dict")
	}
	return v, nil
}

func (a Arg) Callable() (Callable, error) {
	v, ok := a.value.(Callable)
	if !ok {
		return nil, a.fail("function")
	}
	return v, nil
}

func (a Arg) OptionalValue() (values.Value, bool) {
	if a.value == nil {
		return nil, false
	}
	return a.value, true
}

func (a Arg) OptionalInt() (int64, bool, error) {
	if a.value == nil {
		return 0, false, nil
	}
	v, err := a.Int()
	return v, err == nil, err
}

func (a Arg) OptionalString() (string, bool, error) {
	if a.value == nil {
		return "", false, nil
	}
	v, err := a.String()
	return v, err == nil, err
}
