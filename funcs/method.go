package funcs

import (
	"iter"

	"github.com/lumelang/lume/values"
)

// BoundMethod pairs a receiver with an underlying callable. Calling it
// prepends the receiver to the positional arguments and delegates; the
// underlying signature is not copied. Its function identity is the
// underlying callable's, not a fresh one.
type BoundMethod struct {
	recv   values.Value
	method Callable
}

func Bind(recv values.Value, method Callable) *BoundMethod {
	return &BoundMethod{
		recv:   recv,
		method: method,
	}
}

func (m *BoundMethod) Name() string { return m.method.Name() }

func (m *BoundMethod) Receiver() values.Value { return m.recv }

func (*BoundMethod) TypeName() string { return "function" }

func (m *BoundMethod) Str() string  { return m.method.Str() }
func (m *BoundMethod) Repr() string { return m.method.Repr() }

func (m *BoundMethod) ToBool() bool { return true }

func (m *BoundMethod) Hash() (uint64, error) {
	return uint64(m.FuncID()), nil
}

func (m *BoundMethod) Freeze() {
	m.recv.Freeze()
	m.method.Freeze()
}

func (m *BoundMethod) Frozen() bool {
	return m.recv.Frozen() && m.method.Frozen()
}

func (m *BoundMethod) Children() iter.Seq[values.Value] {
	return func(yield func(values.Value) bool) {
		if !yield(m.method) {
			return
		}
		yield(m.recv)
	}
}

func (m *BoundMethod) Equals(other values.Value) (bool, error) {
	o, ok := other.(values.HasFuncID)
	return ok && m.FuncID() == o.FuncID(), nil
}

func (m *BoundMethod) FuncID() values.FuncID {
	if id, ok := values.FuncIdent(m.method); ok {
		return id
	}
	return 0
}

func (m *BoundMethod) Call(positional []values.Value, named *values.Dict, args, kwargs values.Value) (values.Value, error) {
	withRecv := make([]values.Value, 0, len(positional)+1)
	withRecv = append(withRecv, m.recv)
	withRecv = append(withRecv, positional...)
	return m.method.Call(withRecv, named, args, kwargs)
}
