package pia_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/funvibe/funbit/pkg/funbit"
	"github.com/stretchr/testify/require"
)

// The packed layout must match Erlang-style bit syntax: big-endian,
// unsigned integers packed most-significant bit first. funbit implements
// that syntax independently, so it serves as an oracle for the storage
// format.
func TestPackingMatchesBitSyntax(t *testing.T) {
	const length = 25

	for bitWidth := 1; bitWidth <= 8; bitWidth++ {
		t.Run(fmt.Sprintf("bitWidth=%d", bitWidth), func(t *testing.T) {
			bitMask := uint8(1)<<bitWidth - 1

			prng := rand.New(rand.NewSource(0))
			a := newArray(t, bitWidth, length)
			builder := funbit.NewBuilder()

			for i := 0; i < length; i++ {
				v := uint8(prng.Uint32()) & bitMask
				a.Set(i, v)
				funbit.AddInteger(builder, int64(v), funbit.WithSize(uint(bitWidth)))
			}

			bs, err := funbit.Build(builder)
			require.NoError(t, err)
			require.Equal(t, bitWidth*length, int(bs.Length()))
			require.Equal(t, a.Bytes(), bs.ToBytes())
		})
	}
}
