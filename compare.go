package pia

import "bytes"

// Equal returns true if a and b hold the same number of items of the same
// bit width and their backing storage is identical.
//
// The packed layout is canonical for a given bit width and length, so
// comparing the raw bytes is equivalent to comparing every unpacked item.
func (a *Array) Equal(b *Array) bool {
	return a.bits == b.bits && a.length == b.length && bytes.Equal(a.data, b.data)
}

// EqualValues returns true if the unpacked items of a are the same as the
// given values, comparing item by item.
func (a *Array) EqualValues(values []uint8) bool {
	if len(values) != a.length {
		return false
	}
	for i, v := range values {
		if a.Get(i) != v {
			return false
		}
	}
	return true
}
