package values

import (
	"iter"
	"strings"
)

// Dict is a mutable mapping preserving insertion order. Keys go through the
// value contract: they must be hashable, and lookup uses Equals.
type Dict struct {
	entries []dictEntry
	index   map[uint64][]int
	frozen  bool
}

type dictEntry struct {
	key   Value
	value Value
}

func NewDict() *Dict {
	return &Dict{
		index: make(map[uint64][]int),
	}
}

func (*Dict) TypeName() string { return "dict" }

func (d *Dict) Len() int { return len(d.entries) }

func (d *Dict) find(key Value) (int, uint64, error) {
	h, err := key.Hash()
	if err != nil {
		return -1, 0, err
	}
	for _, i := range d.index[h] {
		eq, err := Equal(d.entries[i].key, key)
		if err != nil {
			return -1, 0, err
		}
		if eq {
			return i, h, nil
		}
	}
	return -1, h, nil
}

func (d *Dict) Set(key, value Value) error {
	if d.frozen {
		return MutateFrozen(d)
	}
	i, h, err := d.find(key)
	if err != nil {
		return err
	}
	if i >= 0 {
		d.entries[i].value = value
		return nil
	}
	d.index[h] = append(d.index[h], len(d.entries))
	d.entries = append(d.entries, dictEntry{key: key, value: value})
	return nil
}

func (d *Dict) Get(key Value) (Value, bool, error) {
	i, _, err := d.find(key)
	if err != nil {
		return nil, false, err
	}
	if i < 0 {
		return nil, false, nil
	}
	return d.entries[i].value, true, nil
}

// Delete removes key and returns its value, preserving the order of the
// remaining entries.
func (d *Dict) Delete(key Value) (Value, bool, error) {
	if d.frozen {
		return nil, false, MutateFrozen(d)
	}
	i, _, err := d.find(key)
	if err != nil {
		return nil, false, err
	}
	if i < 0 {
		return nil, false, nil
	}
	value := d.entries[i].value
	d.entries = append(d.entries[:i], d.entries[i+1:]...)
	d.reindex()
	return value, true, nil
}

func (d *Dict) reindex() {
	d.index = make(map[uint64][]int, len(d.entries))
	for i, entry := range d.entries {
		h, _ := entry.key.Hash()
		d.index[h] = append(d.index[h], i)
	}
}

func (d *Dict) SetString(name string, value Value) error {
	return d.Set(String(name), value)
}

func (d *Dict) GetString(name string) (Value, bool) {
	v, ok, _ := d.Get(String(name))
	return v, ok
}

func (d *Dict) DeleteString(name string) (Value, bool) {
	v, ok, _ := d.Delete(String(name))
	return v, ok
}

func (d *Dict) Keys() []Value {
	keys := make([]Value, len(d.entries))
	for i, entry := range d.entries {
		keys[i] = entry.key
	}
	return keys
}

func (d *Dict) Str() string { return d.Repr() }

func (d *Dict) Repr() string {
	var sb strings.Builder
	d.writeRepr(&sb, []Value{d})
	return sb.String()
}

func (d *Dict) writeRepr(sb *strings.Builder, path []Value) {
	sb.WriteString("{")
	for i, entry := range d.entries {
		if i > 0 {
			sb.WriteString(", ")
		}
		writeValue(sb, entry.key, path)
		sb.WriteString(": ")
		writeValue(sb, entry.value, path)
	}
	sb.WriteString("}")
}

func (d *Dict) ToBool() bool { return len(d.entries) > 0 }

func (d *Dict) Hash() (uint64, error) { return 0, Unhashable(d) }

func (d *Dict) Freeze() {
	if d.frozen {
		return
	}
	d.frozen = true
	for _, entry := range d.entries {
		entry.key.Freeze()
		entry.value.Freeze()
	}
}

func (d *Dict) Frozen() bool { return d.frozen }

func (d *Dict) Children() iter.Seq[Value] {
	return func(yield func(Value) bool) {
		for _, entry := range d.entries {
			if !yield(entry.key) {
				return
			}
			if !yield(entry.value) {
				return
			}
		}
	}
}

// Iterate yields keys in insertion order.
func (d *Dict) Iterate() iter.Seq[Value] {
	return func(yield func(Value) bool) {
		for _, entry := range d.entries {
			if !yield(entry.key) {
				break
			}
		}
	}
}

func (d *Dict) Items() iter.Seq2[Value, Value] {
	return func(yield func(Value, Value) bool) {
		for _, entry := range d.entries {
			if !yield(entry.key, entry.value) {
				break
			}
		}
	}
}

func (d *Dict) Equals(other Value) (bool, error) {
	o, ok := other.(*Dict)
	if !ok {
		return false, nil
	}
	if len(d.entries) != len(o.entries) {
		return false, nil
	}
	for _, entry := range d.entries {
		ov, ok, err := o.Get(entry.key)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
		eq, err := Equal(entry.value, ov)
		if err != nil {
			return false, err
		}
		if !eq {
			return false, nil
		}
	}
	return true, nil
}
