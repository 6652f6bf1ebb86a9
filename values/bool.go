package values

import "iter"

type Bool bool

const (
	True  Bool = true
	False Bool = false
)

func (Bool) TypeName() string { return "bool" }

func (b Bool) Str() string { return b.Repr() }

func (b Bool) Repr() string {
	if b {
		return "True"
	}
	return "False"
}

func (b Bool) ToInt() (int64, error) {
	if b {
		return 1, nil
	}
	return 0, nil
}

func (b Bool) ToBool() bool { return bool(b) }

func (b Bool) Hash() (uint64, error) {
	i, _ := b.ToInt()
	return uint64(i), nil
}

func (Bool) Freeze()      {}
func (Bool) Frozen() bool { return true }

func (Bool) Children() iter.Seq[Value] { return noChildren }

func (b Bool) Equals(other Value) (bool, error) {
	o, ok := other.(Bool)
	return ok && b == o, nil
}

func (b Bool) Compare(other Value) (int, error) {
	o, ok := other.(Bool)
	if !ok {
		return 0, NotOrderable(b)
	}
	x, _ := b.ToInt()
	y, _ := o.ToInt()
	switch {
	case x < y:
		return -1, nil
	case x > y:
		return 1, nil
	}
	return 0, nil
}
