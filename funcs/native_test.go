package funcs

import (
	"testing"

	"github.com/lumelang/lume/values"
)

func TestRenderings(t *testing.T) {
	sig := NewSignature().
		Normal("a").
		Optional("b").
		Default("c", values.Int(10)).
		Args("args").
		KWArgs("kwargs").
		Build()
	fn := NewNative("f", sig, nil)

	if got := fn.Repr(); got != "<native function f>(a, ?b, c = 10, *args, **kwargs)" {
		t.Fatalf("got %s", got)
	}
	if got := fn.Str(); got != "f(a, b, c = 10, *args, **kwargs)" {
		t.Fatalf("got %s", got)
	}
}

func TestNativeValueContract(t *testing.T) {
	def := values.NewList([]values.Value{values.Int(1)})
	fn := NewNative("f", NewSignature().Default("a", def).Build(), nil)

	if fn.TypeName() != "function" {
		t.Fatalf("got %s", fn.TypeName())
	}
	if !fn.ToBool() {
		t.Fatal("function must be truthy")
	}
	if !fn.Frozen() {
		t.Fatal("native functions are immutable")
	}

	// owns its signature defaults
	var owned []values.Value
	for v := range fn.Children() {
		owned = append(owned, v)
	}
	if len(owned) != 1 || owned[0] != values.Value(def) {
		t.Fatalf("got %v", owned)
	}

	eq, err := values.Equal(fn, fn)
	if err != nil {
		t.Fatal(err)
	}
	if !eq {
		t.Fatal("function must equal itself")
	}
	other := NewNative("f", nil, nil)
	eq, err = values.Equal(fn, other)
	if err != nil {
		t.Fatal(err)
	}
	if eq {
		t.Fatal("distinct functions must not be equal")
	}
}

func TestBuilderPanics(t *testing.T) {
	for name, build := range map[string]func(){
		"duplicate name": func() {
			NewSignature().Normal("a").Optional("a")
		},
		"param after kwargs": func() {
			NewSignature().KWArgs("kwargs").Normal("a")
		},
		"second args": func() {
			NewSignature().Args("a").Args("b")
		},
	} {
		t.Run(name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Fatal("should panic")
				}
			}()
			build()
		})
	}
}
