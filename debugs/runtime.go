package debugs

import (
	"fmt"

	"github.com/lumelang/lume/funcs"
	"github.com/lumelang/lume/values"
	"go.starlark.net/starlark"
)

// toStarlark converts a runtime value to its starlark counterpart so the
// tap can inspect interpreter state. Callables become starlark builtins
// that go through the argument binder, so calls from the tap exercise the
// real calling convention.
func toStarlark(v values.Value) starlark.Value {
	switch v := v.(type) {

	case values.NoneType:
		return starlark.None

	case values.Bool:
		return starlark.Bool(v)

	case values.Int:
		return starlark.MakeInt64(int64(v))

	case values.String:
		return starlark.String(v)

	case *values.List:
		elems := make([]starlark.Value, 0, v.Len())
		for elem := range v.Iterate() {
			elems = append(elems, toStarlark(elem))
		}
		l := starlark.NewList(elems)
		if v.Frozen() {
			l.Freeze()
		}
		return l

	case *values.Dict:
		d := starlark.NewDict(v.Len())
		for key, value := range v.Items() {
			d.SetKey(toStarlark(key), toStarlark(value))
		}
		if v.Frozen() {
			d.Freeze()
		}
		return d

	case funcs.Callable:
		return starlark.NewBuiltin(v.Name(), callableAdapter(v))

	}

	panic(fmt.Errorf("unsupported runtime value: %s", v.TypeName()))
}

func callableAdapter(c funcs.Callable) func(*starlark.Thread, *starlark.Builtin, starlark.Tuple, []starlark.Tuple) (starlark.Value, error) {
	return func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		positional := make([]values.Value, len(args))
		for i, arg := range args {
			v, err := fromStarlark(arg)
			if err != nil {
				return nil, err
			}
			positional[i] = v
		}

		var named *values.Dict
		if len(kwargs) > 0 {
			named = values.NewDict()
			for _, pair := range kwargs {
				name, ok := starlark.AsString(pair[0])
				if !ok {
					return nil, fmt.Errorf("bad keyword: %s", pair[0])
				}
				v, err := fromStarlark(pair[1])
				if err != nil {
					return nil, err
				}
				if err := named.SetString(name, v); err != nil {
					return nil, err
				}
			}
		}

		res, err := c.Call(positional, named, nil, nil)
		if err != nil {
			return nil, err
		}
		if res == nil {
			return starlark.None, nil
		}
		return toStarlark(res), nil
	}
}

func fromStarlark(v starlark.Value) (values.Value, error) {
	switch v := v.(type) {

	case starlark.NoneType:
		return values.None, nil

	case starlark.Bool:
		return values.Bool(v), nil

	case starlark.Int:
		i, ok := v.Int64()
		if !ok {
			return nil, fmt.Errorf("int too large: %s", v)
		}
		return values.Int(i), nil

	case starlark.String:
		return values.String(v), nil

	case *starlark.List:
		elems := make([]values.Value, 0, v.Len())
		for elem := range v.Elements() {
			e, err := fromStarlark(elem)
			if err != nil {
				return nil, err
			}
			elems = append(elems, e)
		}
		return values.NewList(elems), nil

	case starlark.Tuple:
		elems := make([]values.Value, len(v))
		for i, elem := range v {
			e, err := fromStarlark(elem)
			if err != nil {
				return nil, err
			}
			elems[i] = e
		}
		return values.NewList(elems), nil

	case *starlark.Dict:
		d := values.NewDict()
		for key, value := range v.Entries() {
			k, err := fromStarlark(key)
			if err != nil {
				return nil, err
			}
			val, err := fromStarlark(value)
			if err != nil {
				return nil, err
			}
			if err := d.Set(k, val); err != nil {
				return nil, err
			}
		}
		return d, nil

	}

	return nil, fmt.Errorf("unsupported starlark value: %s", v.Type())
}
