package jep106

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllOrdered(t *testing.T) {
	var prev ID
	first := true
	count := 0
	for id, name := range All() {
		require.NotEmpty(t, name)
		require.True(t, id.Valid(), "%s", id)
		if !first {
			less := id.Bank > prev.Bank || (id.Bank == prev.Bank && id.Code > prev.Code)
			require.True(t, less, "%s yielded after %s", id, prev)
		}
		prev, first = id, false
		count++
	}

	total := 0
	for b := 0; b < GetBankLimit(); b++ {
		total += Assigned(uint8(b))
	}
	assert.Equal(t, total, count)
}

func TestAllStopsEarly(t *testing.T) {
	n := 0
	for range All() {
		n++
		if n == 3 {
			break
		}
	}
	assert.Equal(t, 3, n)
}

func TestBank(t *testing.T) {
	entries := Bank(0)
	require.Len(t, entries, BankSize)
	assert.Equal(t, Entry{ID: ID{Bank: 0, Code: 0x01}, Name: "AMD"}, entries[0])
	assert.Equal(t, uint8(0x7E), entries[len(entries)-1].Code)

	last := uint8(GetBankLimit() - 1)
	assert.Len(t, Bank(last), Assigned(last))
	assert.Less(t, Assigned(last), BankSize)

	assert.Nil(t, Bank(uint8(GetBankLimit())))
	assert.Zero(t, Assigned(255))
}

func TestSearch(t *testing.T) {
	matches := Search("gigadevice")
	require.Len(t, matches, 2)
	assert.Equal(t, ID{Bank: 6, Code: 0x48}, matches[0].ID)
	assert.Equal(t, ID{Bank: 7, Code: 0x51}, matches[1].ID)

	matches = Search("  MACRONIX ")
	require.Len(t, matches, 1)
	assert.Equal(t, "Macronix", matches[0].Name)

	assert.Nil(t, Search(""))
	assert.Nil(t, Search("   "))
	assert.Empty(t, Search("no such vendor anywhere"))
}

func TestSuggest(t *testing.T) {
	got := Suggest("Macronx", 3)
	require.Len(t, got, 3)
	assert.Equal(t, "Macronix", got[0].Name)
	assert.Equal(t, "Micron Technology", got[1].Name)

	got = Suggest("kingstn", 5)
	require.Len(t, got, 1)
	assert.Equal(t, ID{Bank: 1, Code: 0x18}, got[0].ID)

	assert.Nil(t, Suggest("", 5))
	assert.Nil(t, Suggest("xilinx", 0))
	assert.Empty(t, Suggest("qqqqqqqqqqqq", 5))
}

func TestParity(t *testing.T) {
	tests := []struct {
		code uint8
		wire byte
	}{
		{code: 0x01, wire: 0x01},
		{code: 0x09, wire: 0x89},
		{code: 0x1F, wire: 0x1F},
		{code: 0x20, wire: 0x20},
		{code: 0x42, wire: 0xC2},
		{code: 0x5A, wire: 0xDA},
		{code: 0x7F, wire: 0x7F},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.wire, WithParity(tt.code), "WithParity(0x%02X)", tt.code)

		code, ok := StripParity(tt.wire)
		assert.True(t, ok, "0x%02X should have odd parity", tt.wire)
		assert.Equal(t, tt.code, code)
	}

	code, ok := StripParity(0x42)
	assert.False(t, ok)
	assert.Equal(t, uint8(0x42), code)
}

func TestParseByte(t *testing.T) {
	for in, want := range map[string]uint8{"66": 66, "0x42": 0x42, "0X7e": 0x7E, "0o17": 15, "0b101": 5, " 255 ": 255} {
		got, err := ParseByte(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	for _, in := range []string{"", "256", "-1", "0x100", "abc"} {
		_, err := ParseByte(in)
		assert.Error(t, err, in)
	}
}
