package values

import (
	"iter"
	"strconv"
)

type Int int64

func (Int) TypeName() string { return "int" }

func (i Int) Str() string  { return strconv.FormatInt(int64(i), 10) }
func (i Int) Repr() string { return i.Str() }

func (i Int) ToInt() (int64, error) { return int64(i), nil }

func (i Int) ToBool() bool { return i != 0 }

func (i Int) Hash() (uint64, error) { return uint64(i), nil }

func (Int) Freeze()      {}
func (Int) Frozen() bool { return true }

func (Int) Children() iter.Seq[Value] { return noChildren }

func (i Int) Equals(other Value) (bool, error) {
	o, ok := other.(Int)
	return ok && i == o, nil
}

func (i Int) Compare(other Value) (int, error) {
	o, ok := other.(Int)
	if !ok {
		return 0, NotOrderable(i)
	}
	switch {
	case i < o:
		return -1, nil
	case i > o:
		return 1, nil
	}
	return 0, nil
}
