package audiodesc_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gen2brain/audiodesc"
)

func TestFourCCString(t *testing.T) {
	testCases := map[uint32]string{
		0x6C70636D: "'lpcm'",
		0x61616320: "'aac '",
		0x2E6D7033: "'.mp3'",
		0x20202020: "'    '",
		0x7E7E7E7E: "'~~~~'",
		0x6D730011: "0x6D730011",
		0x00000000: "0x00000000",
		0xFFFFFFFF: "0xFFFFFFFF",
		0x7F616263: "0x7F616263",
		0x61626380: "0x61626380",
		0x0000002A: "0x0000002A",
	}

	for code, expected := range testCases {
		t.Run(expected, func(t *testing.T) {
			assert.Equal(t, expected, audiodesc.FourCC(code).String())
		})
	}
}

func TestFourCCStringShape(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 10000; i++ {
		c := audiodesc.FourCC(rng.Uint32())
		s := c.String()

		if c.IsPrintable() {
			require.Len(t, s, 6, "code %#x", uint32(c))
			assert.True(t, s[0] == '\'' && s[5] == '\'', "code %#x rendered as %q", uint32(c), s)
		} else {
			require.Len(t, s, 10, "code %#x", uint32(c))
			assert.True(t, strings.HasPrefix(s, "0x"))
			assert.Equal(t, strings.ToUpper(s[2:]), s[2:])
		}

		assert.Equal(t, s, c.String(), "rendering must be deterministic")
	}
}

func TestFourCCBytes(t *testing.T) {
	assert.Equal(t, [4]byte{'a', 'l', 'a', 'c'}, audiodesc.FormatAppleLossless.Bytes())
	assert.Equal(t, [4]byte{'m', 's', 0x00, 0x11}, audiodesc.FormatDVIIntelIMA.Bytes())
}

func TestHex32(t *testing.T) {
	assert.Equal(t, "0x00000000", audiodesc.Hex32(0))
	assert.Equal(t, "0x0000ABCD", audiodesc.Hex32(0xabcd))
	assert.Equal(t, "0x6170706C", audiodesc.Hex32(uint32(audiodesc.ManufacturerApple)))
}

func TestParseFourCC(t *testing.T) {
	testCases := []struct {
		in   string
		want audiodesc.FourCC
	}{
		{"lpcm", audiodesc.FormatLinearPCM},
		{"'aac '", audiodesc.FormatMPEG4AAC},
		{"0x6D730011", audiodesc.FormatDVIIntelIMA},
		{"0X6d730031", audiodesc.FormatMicrosoftGSM},
		{"def ", audiodesc.UnitSubTypeDefaultOutput},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := audiodesc.ParseFourCC(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	for _, bad := range []string{"", "abc", "abcde", "0x", "0x1FFFFFFFF", "ab\x01c", "'abc'"} {
		_, err := audiodesc.ParseFourCC(bad)
		assert.ErrorIs(t, err, audiodesc.ErrInvalidFourCC, "input %q", bad)
	}
}
