package funcs

import (
	"testing"

	"github.com/lumelang/lume/values"
)

func TestBoundMethodPrependsReceiver(t *testing.T) {
	fn := collector("m", NewSignature().Normal("self").Normal("x").Build())
	method := Bind(values.String("recv"), fn)

	res, err := method.Call([]values.Value{values.Int(1)}, nil, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if res.Repr() != `["recv", 1]` {
		t.Fatalf("got %s", res.Repr())
	}
}

func TestBoundMethodIdentity(t *testing.T) {
	fn := collector("m", NewSignature().Normal("self").Build())
	method := Bind(values.None, fn)

	mid, ok := values.FuncIdent(method)
	if !ok {
		t.Fatal("no identity")
	}
	fid, ok := values.FuncIdent(fn)
	if !ok {
		t.Fatal("no identity")
	}
	if mid != fid {
		t.Fatal("bound method must report the wrapped function's identity")
	}

	eq, err := values.Equal(method, fn)
	if err != nil {
		t.Fatal(err)
	}
	if !eq {
		t.Fatal("bound method must equal its underlying function")
	}
}

func TestBoundMethodDelegatesRendering(t *testing.T) {
	fn := collector("m", NewSignature().Normal("self").Optional("x").Build())
	method := Bind(values.None, fn)

	if method.Repr() != fn.Repr() {
		t.Fatalf("got %s", method.Repr())
	}
	if method.Str() != fn.Str() {
		t.Fatalf("got %s", method.Str())
	}
}

func TestBoundMethodChildren(t *testing.T) {
	recv := values.NewList(nil)
	fn := collector("m", NewSignature().Normal("self").Build())
	method := Bind(recv, fn)

	var children []values.Value
	for v := range method.Children() {
		children = append(children, v)
	}
	if len(children) != 2 {
		t.Fatalf("got %d children", len(children))
	}
	if children[0] != values.Value(fn) || children[1] != values.Value(recv) {
		t.Fatalf("got %v", children)
	}

	method.Freeze()
	if !recv.Frozen() {
		t.Fatal("receiver not frozen")
	}
}

func TestBoundMethodNamedAndVariadic(t *testing.T) {
	fn := collector("m", NewSignature().Normal("self").Normal("a").KWArgs("kw").Build())
	method := Bind(values.Int(0), fn)

	res, err := method.Call(
		nil,
		namedDict(t, "a", values.Int(1), "b", values.Int(2)),
		nil, nil,
	)
	if err != nil {
		t.Fatal(err)
	}
	if res.Repr() != `[0, 1, {"b": 2}]` {
		t.Fatalf("got %s", res.Repr())
	}
}
