package core

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllocator(t *testing.T) {
	a := NewAllocator(0x100)
	require.Equal(t, Handle(0x100), a.Seed())

	seen := make(map[Handle]bool)
	prev := Handle(0)
	for i := 0; i < 1000; i++ {
		h := a.Next()
		require.False(t, seen[h], "handle %s reused", h)
		require.Greater(t, h, prev)
		seen[h] = true
		prev = h
	}
	// Seed 始终大于已分配的最大句柄
	require.Equal(t, prev+1, a.Seed())
}

func TestHandleString(t *testing.T) {
	assert.Equal(t, "1", Handle(1).String())
	assert.Equal(t, "1a", Handle(0x1a).String())
	assert.Equal(t, "100", Handle(0x100).String())
	assert.Equal(t, "abcdef", Handle(0xABCDEF).String())
}

func TestParseHandle(t *testing.T) {
	h, err := ParseHandle(" 1F ")
	require.NoError(t, err)
	require.Equal(t, Handle(0x1f), h)

	_, err = ParseHandle("")
	require.ErrorIs(t, err, ErrInvalidHandle)

	_, err = ParseHandle("xyz")
	require.ErrorIs(t, err, ErrInvalidHandle)
}

func TestFormatFloat(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0.0"},
		{math.Copysign(0, -1), "0.0"},
		{1, "1.0"},
		{-3, "-3.0"},
		{2.5, "2.5"},
		{0.1, "0.1"},
		{297, "297.0"},
		{1e21, "1000000000000000000000.0"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, FormatFloat(c.in), "FormatFloat(%v)", c.in)
	}
}
