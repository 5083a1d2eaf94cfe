// Package bitpack implements bit packing and unpacking routines for
// unsigned integers of bit widths between 1 and 8.
//
// Words are packed most-significant bit first: the word at index zero
// starts at the most-significant bit of the first byte, and each word
// follows the previous one with no padding in between. Because the bit
// width never exceeds 8, a word spans at most two adjacent bytes.
package bitpack

// ByteCount returns the number of bytes needed to hold the given bit count.
func ByteCount(bitCount uint) int {
	return int((bitCount + 7) / 8)
}

// Load returns the word of size bitWidth stored at the given word index in
// src, right-aligned in the low bits of the returned byte.
//
// The caller is responsible for bounds checking, the word must lie fully
// within src.
func Load(src []byte, bitWidth uint, index int) byte {
	i := (uint(index) * bitWidth) / 8
	j := (uint(index) * bitWidth) % 8

	value := (src[i] << j) >> (8 - bitWidth)
	if (j + bitWidth) > 8 {
		value |= src[i+1] >> (16 - (j + bitWidth))
	}
	return value
}

// Store writes the low bitWidth bits of value as the word at the given
// word index in dst, leaving the bits of all other words untouched. Bits
// of value beyond bitWidth are discarded.
func Store(dst []byte, bitWidth uint, index int, value byte) {
	Clear(dst, bitWidth, index)

	value &= byte(uint(1)<<bitWidth - 1)
	i := (uint(index) * bitWidth) / 8
	j := (uint(index) * bitWidth) % 8

	dst[i] |= (value << (8 - bitWidth)) >> j
	if (j + bitWidth) > 8 {
		dst[i+1] |= value << (16 - (j + bitWidth))
	}
}

// Clear zeroes the word of size bitWidth at the given word index in dst,
// leaving the bits of all other words untouched.
func Clear(dst []byte, bitWidth uint, index int) {
	i := (uint(index) * bitWidth) / 8
	j := (uint(index) * bitWidth) % 8

	if (j + bitWidth) > 8 {
		// The word straddles two bytes: the tail of dst[i] holds the
		// high bits of the word, the head of dst[i+1] holds the rest.
		dst[i] &^= byte(1)<<(8-j) - 1
		dst[i+1] &^= byte(0xFF) << (16 - (j + bitWidth))
	} else {
		dst[i] &^= (byte(1)<<bitWidth - 1) << (8 - j - bitWidth)
	}
}

// Unpack expands words of size bitWidth packed in src into one byte each
// in dst, returning the number of words that were unpacked. The number of
// words is limited by the length of dst and by the number of whole words
// held in src.
func Unpack(dst []byte, src []byte, bitWidth uint) int {
	wordCount := int((8 * uint(len(src))) / bitWidth)
	if wordCount > len(dst) {
		wordCount = len(dst)
	}
	for i := 0; i < wordCount; i++ {
		dst[i] = Load(src, bitWidth, i)
	}
	return wordCount
}
