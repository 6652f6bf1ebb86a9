package values

import "testing"

func TestFreezeTransitive(t *testing.T) {
	inner := NewList([]Value{Int(1)})
	d := NewDict()
	if err := d.SetString("inner", inner); err != nil {
		t.Fatal(err)
	}
	outer := NewList([]Value{d})

	outer.Freeze()

	for v := range Walk(outer) {
		if !v.Frozen() {
			t.Fatalf("%s not frozen", v.Repr())
		}
	}

	if err := inner.Append(Int(2)); !IsCode(err, MutateFrozenCode) {
		t.Fatalf("got %v", err)
	}
	if err := d.SetString("more", Int(3)); !IsCode(err, MutateFrozenCode) {
		t.Fatalf("got %v", err)
	}
	if err := outer.SetIndex(0, None); !IsCode(err, MutateFrozenCode) {
		t.Fatalf("got %v", err)
	}
}

func TestFreezeCycle(t *testing.T) {
	a := NewList(nil)
	b := NewList(nil)
	if err := a.Append(b); err != nil {
		t.Fatal(err)
	}
	if err := b.Append(a); err != nil {
		t.Fatal(err)
	}

	// must terminate
	a.Freeze()

	if !a.Frozen() || !b.Frozen() {
		t.Fatal("cycle not fully frozen")
	}
}

func TestWalkVisitsOnce(t *testing.T) {
	shared := NewList(nil)
	outer := NewList([]Value{shared, shared})

	n := 0
	for v := range Walk(outer) {
		if v == Value(shared) {
			n++
		}
	}
	if n != 1 {
		t.Fatalf("shared child visited %d times", n)
	}
}

func TestWalkCycle(t *testing.T) {
	l := NewList(nil)
	if err := l.Append(l); err != nil {
		t.Fatal(err)
	}
	n := 0
	for range Walk(l) {
		n++
	}
	if n != 1 {
		t.Fatalf("got %d values", n)
	}
}
