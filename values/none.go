package values

import "iter"

// NoneType has a single value, None: the designated result of absent
// optional parameters.
type NoneType struct{}

var None = NoneType{}

func (NoneType) TypeName() string { return "NoneType" }

func (NoneType) Str() string  { return "None" }
func (NoneType) Repr() string { return "None" }

func (NoneType) ToBool() bool { return false }

func (NoneType) Hash() (uint64, error) { return 0, nil }

func (NoneType) Freeze()      {}
func (NoneType) Frozen() bool { return true }

func (NoneType) Children() iter.Seq[Value] { return noChildren }

func (NoneType) Equals(other Value) (bool, error) {
	_, ok := other.(NoneType)
	return ok, nil
}
