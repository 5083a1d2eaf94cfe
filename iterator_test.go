package pia_test

import (
	"reflect"
	"testing"
)

func TestValues(t *testing.T) {
	a := newArray(t, 3, 9)
	a.Set(2, 4)
	a.Set(4, 5)

	it := a.Values()
	a.Set(0, 7) // not observed, the iterator owns a snapshot

	var got []uint8
	for it.Next() {
		got = append(got, it.Value())
	}

	want := []uint8{0, 0, 4, 0, 5, 0, 0, 0, 0}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("iterated values mismatch:\nwant: %v\ngot:  %v", want, got)
	}
	if it.Next() {
		t.Error("exhausted iterator produced another value")
	}
}

func TestValuesEmpty(t *testing.T) {
	a := newArray(t, 3, 0)
	if a.Values().Next() {
		t.Error("iterator over an empty array produced a value")
	}
}
