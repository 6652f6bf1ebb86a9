package values

import (
	"hash/maphash"
	"iter"
	"strconv"
	"strings"
)

type String string

var stringSeed = maphash.MakeSeed()

func (String) TypeName() string { return "string" }

func (s String) Str() string  { return string(s) }
func (s String) Repr() string { return strconv.Quote(string(s)) }

func (s String) ToBool() bool { return len(s) > 0 }

func (s String) Hash() (uint64, error) {
	return maphash.String(stringSeed, string(s)), nil
}

func (String) Freeze()      {}
func (String) Frozen() bool { return true }

func (String) Children() iter.Seq[Value] { return noChildren }

func (s String) Equals(other Value) (bool, error) {
	o, ok := other.(String)
	return ok && s == o, nil
}

func (s String) Compare(other Value) (int, error) {
	o, ok := other.(String)
	if !ok {
		return 0, NotOrderable(s)
	}
	return strings.Compare(string(s), string(o)), nil
}
