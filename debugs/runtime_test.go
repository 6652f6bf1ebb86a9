package debugs

import (
	"testing"

	"github.com/lumelang/lume/funcs"
	"github.com/lumelang/lume/values"
	"go.starlark.net/starlark"
)

func TestToStarlark(t *testing.T) {
	d := values.NewDict()
	if err := d.SetString("x", values.Int(1)); err != nil {
		t.Fatal(err)
	}
	testCases := []struct {
		name     string
		input    values.Value
		expected starlark.Value
	}{
		{"none", values.None, starlark.None},
		{"bool", values.True, starlark.True},
		{"int", values.Int(42), starlark.MakeInt(42)},
		{"string", values.String("hello"), starlark.String("hello")},
		{"list", values.NewList([]values.Value{values.Int(1), values.String("a")}),
			starlark.NewList([]starlark.Value{starlark.MakeInt(1), starlark.String("a")})},
		{"dict", d, func() starlark.Value {
			sd := starlark.NewDict(1)
			sd.SetKey(starlark.String("x"), starlark.MakeInt(1))
			return sd
		}()},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual := toStarlark(tc.input)
			equal, err := starlark.Equal(actual, tc.expected)
			if err != nil {
				t.Fatal(err)
			}
			if !equal {
				t.Errorf("toStarlark(%s) = %v, want %v", tc.input.Repr(), actual, tc.expected)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	l := values.NewList([]values.Value{values.Int(1), values.True, values.None})
	back, err := fromStarlark(toStarlark(l))
	if err != nil {
		t.Fatal(err)
	}
	eq, err := values.Equal(l, back)
	if err != nil {
		t.Fatal(err)
	}
	if !eq {
		t.Fatalf("got %s", back.Repr())
	}
}

func TestCallableThroughTap(t *testing.T) {
	fn := funcs.NewNative(
		"add",
		funcs.NewSignature().Normal("a").Default("b", values.Int(1)).Build(),
		func(c *funcs.Cursor) (values.Value, error) {
			aArg, err := c.Next()
			if err != nil {
				return nil, err
			}
			a, err := aArg.Int()
			if err != nil {
				return nil, err
			}
			bArg, err := c.Next()
			if err != nil {
				return nil, err
			}
			b, err := bArg.Int()
			if err != nil {
				return nil, err
			}
			if err := c.Done(); err != nil {
				return nil, err
			}
			return values.Int(a + b), nil
		},
	)

	builtin := toStarlark(fn)
	thread := &starlark.Thread{Name: "test"}

	res, err := starlark.Call(thread, builtin,
		starlark.Tuple{starlark.MakeInt(41)},
		nil,
	)
	if err != nil {
		t.Fatal(err)
	}
	equal, err := starlark.Equal(res, starlark.MakeInt(42))
	if err != nil {
		t.Fatal(err)
	}
	if !equal {
		t.Fatalf("got %v", res)
	}

	// named argument routes through the binder
	res, err = starlark.Call(thread, builtin,
		starlark.Tuple{starlark.MakeInt(40)},
		[]starlark.Tuple{{starlark.String("b"), starlark.MakeInt(2)}},
	)
	if err != nil {
		t.Fatal(err)
	}
	equal, err = starlark.Equal(res, starlark.MakeInt(42))
	if err != nil {
		t.Fatal(err)
	}
	if !equal {
		t.Fatalf("got %v", res)
	}

	// missing required parameter surfaces the binder diagnostic
	_, err = starlark.Call(thread, builtin, nil, nil)
	if err == nil {
		t.Fatal("should error")
	}
}
