package pia

import "github.com/cespare/xxhash/v2"

// Sum64 returns a 64-bit hash of the backing storage of the array.
//
// The hash is derived from the raw bytes only, so arrays that are Equal
// always hash to the same value.
func (a *Array) Sum64() uint64 {
	return xxhash.Sum64(a.data)
}
