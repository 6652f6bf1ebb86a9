package funcs

import (
	"fmt"
	"iter"
	"reflect"

	"github.com/lumelang/lume/values"
)

// Callable is a value that can be called with the full calling convention:
// ordered positional values, named values, an optional *args iterable, an
// optional **kwargs mapping. named, args and kwargs may be nil.
type Callable interface {
	values.Value
	Name() string
	Call(positional []values.Value, named *values.Dict, args, kwargs values.Value) (values.Value, error)
}

// Body is a host-implemented function body. It must take exactly one
// argument per signature slot from the cursor, in declaration order, then
// call Done.
type Body func(*Cursor) (values.Value, error)

// Native is a host-implemented callable with a declared signature.
// Constructed once at registration time, immutable afterwards.
type Native struct {
	name string
	sig  Signature
	body Body
}

func NewNative(name string, sig Signature, body Body) *Native {
	return &Native{
		name: name,
		sig:  sig,
		body: body,
	}
}

func (n *Native) Name() string { return n.name }

func (n *Native) Signature() Signature { return n.sig }

func (*Native) TypeName() string { return "function" }

func (n *Native) Str() string {
	return fmt.Sprintf("%s(%s)", n.name, strSignature(n.sig))
}

func (n *Native) Repr() string {
	return fmt.Sprintf("<native function %s>(%s)", n.name, reprSignature(n.sig))
}

func (n *Native) ToBool() bool { return true }

func (n *Native) Hash() (uint64, error) {
	return uint64(n.FuncID()), nil
}

func (*Native) Freeze()      {}
func (*Native) Frozen() bool { return true }

// Children yields the default values held by the signature; they are the
// only values a native function owns.
func (n *Native) Children() iter.Seq[values.Value] {
	return func(yield func(values.Value) bool) {
		for _, p := range n.sig {
			if p.Default == nil {
				continue
			}
			if !yield(p.Default) {
				break
			}
		}
	}
}

func (n *Native) Equals(other values.Value) (bool, error) {
	o, ok := other.(values.HasFuncID)
	return ok && n.FuncID() == o.FuncID(), nil
}

func (n *Native) FuncID() values.FuncID {
	return values.FuncID(reflect.ValueOf(n).Pointer())
}

func (n *Native) Call(positional []values.Value, named *values.Dict, args, kwargs values.Value) (values.Value, error) {
	cursor, err := NewCursor(n, n.sig, positional, named, args, kwargs)
	if err != nil {
		return nil, err
	}
	return n.body(cursor)
}
