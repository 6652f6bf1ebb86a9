package values

import (
	"iter"
	"strings"
)

// List is an ordered, mutable sequence of values.
type List struct {
	elems  []Value
	frozen bool
}

func NewList(elems []Value) *List {
	return &List{elems: elems}
}

func (*List) TypeName() string { return "list" }

func (l *List) Len() int { return len(l.elems) }

func (l *List) Index(i int) Value { return l.elems[i] }

func (l *List) SetIndex(i int, v Value) error {
	if l.frozen {
		return MutateFrozen(l)
	}
	l.elems[i] = v
	return nil
}

func (l *List) Append(v Value) error {
	if l.frozen {
		return MutateFrozen(l)
	}
	l.elems = append(l.elems, v)
	return nil
}

func (l *List) Str() string { return l.Repr() }

func (l *List) Repr() string {
	var sb strings.Builder
	l.writeRepr(&sb, []Value{l})
	return sb.String()
}

func (l *List) writeRepr(sb *strings.Builder, path []Value) {
	sb.WriteString("[")
	for i, elem := range l.elems {
		if i > 0 {
			sb.WriteString(", ")
		}
		writeValue(sb, elem, path)
	}
	sb.WriteString("]")
}

func (l *List) ToBool() bool { return len(l.elems) > 0 }

func (l *List) Hash() (uint64, error) { return 0, Unhashable(l) }

func (l *List) Freeze() {
	if l.frozen {
		return
	}
	// set before recursing so cyclic structures terminate
	l.frozen = true
	for _, elem := range l.elems {
		elem.Freeze()
	}
}

func (l *List) Frozen() bool { return l.frozen }

func (l *List) Children() iter.Seq[Value] { return l.Iterate() }

func (l *List) Iterate() iter.Seq[Value] {
	return func(yield func(Value) bool) {
		for _, elem := range l.elems {
			if !yield(elem) {
				break
			}
		}
	}
}

func (l *List) Equals(other Value) (bool, error) {
	o, ok := other.(*List)
	if !ok {
		return false, nil
	}
	if len(l.elems) != len(o.elems) {
		return false, nil
	}
	for i, elem := range l.elems {
		eq, err := Equal(elem, o.elems[i])
		if err != nil {
			return false, err
		}
		if !eq {
			return false, nil
		}
	}
	return true, nil
}

func (l *List) Compare(other Value) (int, error) {
	o, ok := other.(*List)
	if !ok {
		return 0, NotOrderable(l)
	}
	for i := 0; i < len(l.elems) && i < len(o.elems); i++ {
		c, err := Compare(l.elems[i], o.elems[i])
		if err != nil {
			return 0, err
		}
		if c != 0 {
			return c, nil
		}
	}
	switch {
	case len(l.elems) < len(o.elems):
		return -1, nil
	case len(l.elems) > len(o.elems):
		return 1, nil
	}
	return 0, nil
}
