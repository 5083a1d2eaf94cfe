package pia

import (
	"encoding"
	"fmt"

	"github.com/segmentio/encoding/json"
)

// MarshalBinary returns a copy of the backing storage of the array:
// exactly Size() bytes with no framing. Round-tripping the result through
// UnmarshalBinary on an array constructed with the same bit width and
// length reproduces an identical array.
func (a *Array) MarshalBinary() ([]byte, error) {
	return a.AppendBytes(nil), nil
}

// UnmarshalBinary replaces the backing storage of the array with the
// given bytes. The array keeps its bit width and length, so b must be
// exactly Size() bytes long.
func (a *Array) UnmarshalBinary(b []byte) error {
	if len(b) != len(a.data) {
		return fmt.Errorf("pia: cannot unmarshal %d bytes into an array of %d storage bytes", len(b), len(a.data))
	}
	copy(a.data, b)
	return nil
}

// MarshalJSON encodes the array as its backing storage, in the form the
// encoding/json package uses for a byte slice.
func (a *Array) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.data)
}

// UnmarshalJSON decodes a JSON byte-slice value into the backing storage
// of the array. Like UnmarshalBinary, the decoded storage must be exactly
// Size() bytes long.
func (a *Array) UnmarshalJSON(b []byte) error {
	var data []byte
	if err := json.Unmarshal(b, &data); err != nil {
		return err
	}
	return a.UnmarshalBinary(data)
}

var (
	_ encoding.BinaryMarshaler   = (*Array)(nil)
	_ encoding.BinaryUnmarshaler = (*Array)(nil)
)
