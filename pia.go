// Package pia implements packed integer arrays for mass storage of oddly
// sized unsigned integers.
//
// An Array holds a fixed number of items of uniform bit width between 1
// and 8, packed contiguously into the minimum number of bytes. Items are
// set with Array.Set, read back with Array.Get, and reset to zero with
// Array.Clear:
//
//	a, err := pia.New(5, 4) // 4 items of 5 bits each, packed in 3 bytes
//	if err != nil {
//		...
//	}
//	a.Set(1, 17)
//	v := a.Get(1)
//
// Array values are not safe for concurrent use; programs sharing an array
// between goroutines must synchronize access or give each goroutine its
// own copy.
package pia

import (
	"fmt"

	"github.com/pia-go/pia/internal/bitpack"
)

// Array is a packed integer array. It stores a fixed number of unsigned
// integer items of uniform bit width, packed most-significant bit first
// into ceil(bitWidth*length/8) bytes with no padding between items. An
// item may straddle two adjacent bytes but never more, because the bit
// width never exceeds 8.
//
// Use New to construct an Array; the zero value is an empty array with
// no items.
type Array struct {
	bits   uint
	length int
	data   []byte
	config *Config
}

// New constructs a zero-filled packed integer array holding length items
// of bitWidth bits each. The bit width must be in the range [1,8] and the
// length must not be negative.
func New(bitWidth, length int, options ...Option) (*Array, error) {
	config, err := NewConfig(options...)
	if err != nil {
		return nil, err
	}
	if bitWidth < 1 || bitWidth > 8 {
		return nil, fmt.Errorf("pia: invalid bit width: %d: must be in the range [1,8]", bitWidth)
	}
	if length < 0 {
		return nil, fmt.Errorf("pia: invalid length: %d: must not be negative", length)
	}
	return &Array{
		bits:   uint(bitWidth),
		length: length,
		data:   make([]byte, bitpack.ByteCount(uint(bitWidth)*uint(length))),
		config: config,
	}, nil
}

// Len returns the number of items held in the array.
func (a *Array) Len() int { return a.length }

// BitWidth returns the number of bits used by each item of the array.
func (a *Array) BitWidth() int { return int(a.bits) }

// Size returns the number of bytes of backing storage, which is always
// ceil(BitWidth*Len/8).
func (a *Array) Size() int { return len(a.data) }

// Bytes returns the backing storage of the array. The returned slice
// shares memory with the array, mutating it mutates the array.
func (a *Array) Bytes() []byte { return a.data }

// AppendBytes appends a copy of the backing storage of the array to dst
// and returns the extended slice.
func (a *Array) AppendBytes(dst []byte) []byte {
	return append(dst, a.data...)
}

// Clone returns a copy of the array with its own backing storage.
func (a *Array) Clone() *Array {
	return &Array{
		bits:   a.bits,
		length: a.length,
		data:   a.AppendBytes(nil),
		config: a.config,
	}
}

// Get returns the item stored at the given index, right-aligned in the
// low bits of the returned value.
//
// Like an access past the end of a regular slice, Get panics if index is
// out of range.
func (a *Array) Get(index int) uint8 {
	if index < 0 || index >= a.length {
		panic(boundsErrorMessage(index, a.length))
	}
	return bitpack.Load(a.data, a.bits, index)
}

// Set stores value as the item at the given index, leaving the bits of
// all other items untouched.
//
// If value does not fit in BitWidth bits, its high bits are discarded and
// only the low bits are stored; the truncation is reported to the
// truncation handler of the array (see OnTruncate) but the write still
// succeeds. Two distinct values can alias to the same stored item this
// way.
//
// Like an access past the end of a regular slice, Set panics if index is
// out of range.
func (a *Array) Set(index int, value uint8) {
	if max := uint(1) << a.bits; uint(value) >= max {
		a.onTruncate(index, value, value&byte(max-1))
	}
	if index < 0 || index >= a.length {
		panic(boundsErrorMessage(index, a.length))
	}
	bitpack.Store(a.data, a.bits, index, value)
}

// Clear resets the item at the given index to zero, leaving the bits of
// all other items untouched.
//
// Like an access past the end of a regular slice, Clear panics if index
// is out of range.
func (a *Array) Clear(index int) {
	if index < 0 || index >= a.length {
		panic(boundsErrorMessage(index, a.length))
	}
	bitpack.Clear(a.data, a.bits, index)
}

// Unpack returns the items of the array expanded into one byte each.
func (a *Array) Unpack() []uint8 {
	values := make([]uint8, a.length)
	if a.length > 0 {
		bitpack.Unpack(values, a.data, a.bits)
	}
	return values
}

// String returns a representation of the unpacked items of the array,
// in the same form the fmt package uses for a byte slice.
func (a *Array) String() string {
	return fmt.Sprint(a.Unpack())
}

func (a *Array) onTruncate(index int, value, stored uint8) {
	if a.config != nil {
		a.config.OnTruncate(index, value, stored)
	} else {
		logTruncate(index, value, stored)
	}
}

func boundsErrorMessage(index, length int) string {
	return fmt.Sprintf("pia: index out of range [%d] with length %d", index, length)
}
