package values

import (
	"fmt"
	"testing"
)

func TestDictInsertionOrder(t *testing.T) {
	d := NewDict()
	for i := range 10 {
		if err := d.Set(String(fmt.Sprintf("k%d", i)), Int(i)); err != nil {
			t.Fatal(err)
		}
	}
	var keys []string
	for k := range d.Iterate() {
		keys = append(keys, k.Str())
	}
	if str := fmt.Sprintf("%v", keys); str != "[k0 k1 k2 k3 k4 k5 k6 k7 k8 k9]" {
		t.Fatalf("got %s", str)
	}
}

func TestDictSetGetDelete(t *testing.T) {
	d := NewDict()
	if err := d.Set(Int(1), String("one")); err != nil {
		t.Fatal(err)
	}
	if err := d.Set(Int(1), String("uno")); err != nil {
		t.Fatal(err)
	}
	if d.Len() != 1 {
		t.Fatalf("got %d", d.Len())
	}
	v, ok, err := d.Get(Int(1))
	if err != nil {
		t.Fatal(err)
	}
	if !ok || v.Str() != "uno" {
		t.Fatalf("got %v %v", ok, v)
	}

	v, ok, err = d.Delete(Int(1))
	if err != nil {
		t.Fatal(err)
	}
	if !ok || v.Str() != "uno" {
		t.Fatalf("got %v %v", ok, v)
	}
	if d.Len() != 0 {
		t.Fatalf("got %d", d.Len())
	}
	_, ok, err = d.Get(Int(1))
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatal("deleted key still present")
	}
}

func TestDictDeletePreservesOrder(t *testing.T) {
	d := NewDict()
	for _, name := range []string{"a", "b", "c", "d"} {
		if err := d.SetString(name, Int(0)); err != nil {
			t.Fatal(err)
		}
	}
	if _, ok := d.DeleteString("b"); !ok {
		t.Fatal("not deleted")
	}
	var keys []string
	for k := range d.Iterate() {
		keys = append(keys, k.Str())
	}
	if str := fmt.Sprintf("%v", keys); str != "[a c d]" {
		t.Fatalf("got %s", str)
	}
	// index still finds entries shifted by the removal
	if _, ok := d.GetString("d"); !ok {
		t.Fatal("d lost after delete")
	}
}

func TestDictUnhashableKey(t *testing.T) {
	d := NewDict()
	err := d.Set(NewList(nil), Int(1))
	if !IsCode(err, UnhashableCode) {
		t.Fatalf("got %v", err)
	}
}

func TestDictEquals(t *testing.T) {
	a := NewDict()
	b := NewDict()
	// same entries, different insertion order
	if err := a.SetString("x", Int(1)); err != nil {
		t.Fatal(err)
	}
	if err := a.SetString("y", Int(2)); err != nil {
		t.Fatal(err)
	}
	if err := b.SetString("y", Int(2)); err != nil {
		t.Fatal(err)
	}
	if err := b.SetString("x", Int(1)); err != nil {
		t.Fatal(err)
	}
	eq, err := Equal(a, b)
	if err != nil {
		t.Fatal(err)
	}
	if !eq {
		t.Fatal("dicts with same entries must be equal")
	}
}
