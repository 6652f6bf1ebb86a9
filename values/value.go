package values

import (
	"iter"
	"strings"
)

// Value is the contract every runtime value kind implements. Handles are
// plain interface values: cheap to copy, shared by every holder. A value is
// either mutable or permanently frozen; Freeze is transitive and never
// reversed.
type Value interface {
	// TypeName is constant for the kind, not per instance.
	TypeName() string
	// Str is the human-facing form, Repr the literal-like form.
	Str() string
	Repr() string
	ToBool() bool
	Hash() (uint64, error)
	Freeze()
	Frozen() bool
	// Children yields every value this value directly owns a reference to.
	// The sequence is finite and restartable. Atomic kinds yield nothing.
	Children() iter.Seq[Value]
	// Equals is only defined between values of the same kind; use Equal for
	// arbitrary pairs.
	Equals(other Value) (bool, error)
}

// HasInt is implemented by kinds that convert to an integer.
type HasInt interface {
	Value
	ToInt() (int64, error)
}

// Orderable is implemented by kinds with an ordering among their own kind.
type Orderable interface {
	Value
	Compare(other Value) (int, error)
}

// Iterable is implemented by kinds that yield a sequence of values, in
// order.
type Iterable interface {
	Value
	Iterate() iter.Seq[Value]
}

// Mapping is implemented by kinds that yield key/value pairs in a stable
// order.
type Mapping interface {
	Value
	Items() iter.Seq2[Value, Value]
}

// FuncID is a stable identity token for callable values. Wrappers report
// the identity of the callable they wrap, so two handles compare equal when
// they lead to the same underlying function.
type FuncID uintptr

type HasFuncID interface {
	Value
	FuncID() FuncID
}

// FuncIdent reports the function identity of v, if it has one.
func FuncIdent(v Value) (FuncID, bool) {
	if h, ok := v.(HasFuncID); ok {
		return h.FuncID(), true
	}
	return 0, false
}

// Equal compares two values of any kinds. Values of different kinds are
// never equal.
func Equal(x, y Value) (bool, error) {
	if x.TypeName() != y.TypeName() {
		return false, nil
	}
	return x.Equals(y)
}

// Compare orders two values of any kinds. Values of different kinds order
// by type name; same-kind values order by the kind's own Compare, or fail
// with NotOrderable.
func Compare(x, y Value) (int, error) {
	if x.TypeName() != y.TypeName() {
		return strings.Compare(x.TypeName(), y.TypeName()), nil
	}
	if o, ok := x.(Orderable); ok {
		return o.Compare(y)
	}
	return 0, NotOrderable(x)
}

// ToInt converts v to an integer through the HasInt capability.
func ToInt(v Value) (int64, error) {
	if h, ok := v.(HasInt); ok {
		return h.ToInt()
	}
	return 0, NotConvertible(v, "int")
}

func noChildren(yield func(Value) bool) {}
