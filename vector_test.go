package simdutf8

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestV16Prev(t *testing.T) {
	prev := v16{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}
	curr := v16{21, 22, 23, 24, 25, 26, 27, 28, 29, 30, 31, 32, 33, 34, 35, 36}

	t.Run("prev1", func(t *testing.T) {
		got := curr.prev(1, prev)
		want := v16{16, 21, 22, 23, 24, 25, 26, 27, 28, 29, 30, 31, 32, 33, 34, 35}
		require.Equal(t, want, got)
	})

	t.Run("prev2", func(t *testing.T) {
		got := curr.prev(2, prev)
		want := v16{15, 16, 21, 22, 23, 24, 25, 26, 27, 28, 29, 30, 31, 32, 33, 34}
		require.Equal(t, want, got)
	})

	t.Run("prev3", func(t *testing.T) {
		got := curr.prev(3, prev)
		want := v16{14, 15, 16, 21, 22, 23, 24, 25, 26, 27, 28, 29, 30, 31, 32, 33}
		require.Equal(t, want, got)
	})
}

func TestV16Shr4(t *testing.T) {
	v := v16{0xff, 0x80, 0x0f, 0x10, 0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}
	got := v.shr4()
	require.Equal(t, byte(0x0f), got[0])
	require.Equal(t, byte(0x08), got[1])
	require.Equal(t, byte(0x00), got[2])
	require.Equal(t, byte(0x01), got[3])
}

func TestV16Lookup16(t *testing.T) {
	var table v16
	for i := range table {
		table[i] = byte(i * 10)
	}

	idx := v16{0, 1, 15, 16, 17, 255, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}
	got := idx.lookup16(table)

	require.Equal(t, byte(0), got[0])
	require.Equal(t, byte(10), got[1])
	require.Equal(t, byte(150), got[2])
	require.Equal(t, byte(0), got[3], "index 16 must map to zero, not wrap")
	require.Equal(t, byte(0), got[4], "index 17 must map to zero, not wrap")
	require.Equal(t, byte(0), got[5], "index 255 must map to zero, not wrap")
}

func TestV16SaturatingSub(t *testing.T) {
	a := v16{0, 5, 10, 255, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}
	b := v16{5, 5, 3, 10, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}
	got := a.saturatingSub(b)
	require.Equal(t, byte(0), got[0], "must clamp at zero, not wrap")
	require.Equal(t, byte(0), got[1])
	require.Equal(t, byte(7), got[2])
	require.Equal(t, byte(245), got[3])
}

func TestV16BooleanOps(t *testing.T) {
	a := broadcast(0b1100)
	b := broadcast(0b1010)

	require.True(t, a.and(b) == broadcast(0b1000))
	require.True(t, a.or(b) == broadcast(0b1110))
	require.True(t, a.xor(b) == broadcast(0b0110))

	acc := broadcast(0)
	acc.orAssign(a)
	require.True(t, acc == a)
}

func TestV16IsZero(t *testing.T) {
	require.True(t, broadcast(0).isZero())
	require.False(t, broadcast(1).isZero())

	var v v16
	v[15] = 1
	require.False(t, v.isZero())
}
