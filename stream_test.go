package audiodesc_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gen2brain/audiodesc"
)

var (
	signed16Mono = audiodesc.StreamDescription{
		SampleRate:       44100,
		FormatID:         audiodesc.FormatLinearPCM,
		FormatFlags:      audiodesc.FormatFlagIsSignedInteger | audiodesc.FormatFlagIsPacked,
		BytesPerPacket:   2,
		FramesPerPacket:  1,
		BytesPerFrame:    2,
		ChannelsPerFrame: 1,
		BitsPerChannel:   16,
	}

	aacStereo = audiodesc.StreamDescription{
		SampleRate:       44100,
		FormatID:         audiodesc.FormatMPEG4AAC,
		FramesPerPacket:  1024,
		ChannelsPerFrame: 2,
	}
)

func TestStreamDescriptionString(t *testing.T) {
	testCases := []struct {
		name string
		desc audiodesc.StreamDescription
		want string
	}{
		{
			name: "signed 16-bit mono",
			desc: signed16Mono,
			want: "1 Ch @ 44100 Hz, Format: LinearPCM, 16-bit little-endian, signed integer, interleaved",
		},
		{
			name: "20 bits in 2 bytes",
			desc: func() audiodesc.StreamDescription {
				d := signed16Mono
				d.BitsPerChannel = 20
				return d
			}(),
			want: "1 Ch @ 44100 Hz, Format: LinearPCM, 20-bit little-endian, signed integer, packed in 2 bytes, low-aligned, interleaved",
		},
		{
			name: "big-endian float non-interleaved",
			desc: audiodesc.StreamDescription{
				SampleRate: 48000,
				FormatID:   audiodesc.FormatLinearPCM,
				FormatFlags: audiodesc.FormatFlagIsFloat | audiodesc.FormatFlagIsBigEndian |
					audiodesc.FormatFlagIsPacked | audiodesc.FormatFlagIsNonInterleaved,
				BytesPerPacket:   4,
				FramesPerPacket:  1,
				BytesPerFrame:    4,
				ChannelsPerFrame: 2,
				BitsPerChannel:   32,
			},
			want: "2 Ch @ 48000 Hz, Format: LinearPCM, 32-bit big-endian, floating-point, non-interleaved",
		},
		{
			name: "8.24 fixed point",
			desc: audiodesc.StreamDescription{
				SampleRate: 44100,
				FormatID:   audiodesc.FormatLinearPCM,
				FormatFlags: audiodesc.FormatFlagIsSignedInteger | audiodesc.FormatFlagIsPacked |
					audiodesc.FormatFlagIsNonInterleaved | 24<<audiodesc.LinearPCMSampleFractionShift,
				BytesPerPacket:   4,
				FramesPerPacket:  1,
				BytesPerFrame:    4,
				ChannelsPerFrame: 2,
				BitsPerChannel:   32,
			},
			want: "2 Ch @ 44100 Hz, Format: LinearPCM, 8.24-bit little-endian, signed integer, non-interleaved",
		},
		{
			name: "24 bits high in 4 bytes",
			desc: audiodesc.StreamDescription{
				SampleRate:       96000,
				FormatID:         audiodesc.FormatLinearPCM,
				FormatFlags:      audiodesc.FormatFlagIsSignedInteger | audiodesc.FormatFlagIsAlignedHigh,
				BytesPerPacket:   8,
				FramesPerPacket:  1,
				BytesPerFrame:    8,
				ChannelsPerFrame: 2,
				BitsPerChannel:   24,
			},
			want: "2 Ch @ 96000 Hz, Format: LinearPCM, 24-bit little-endian, signed integer, unpacked in 4 bytes, high-aligned, interleaved",
		},
		{
			name: "unsigned 8-bit",
			desc: audiodesc.StreamDescription{
				SampleRate:       8000,
				FormatID:         audiodesc.FormatLinearPCM,
				FormatFlags:      audiodesc.FormatFlagIsPacked,
				BytesPerPacket:   1,
				FramesPerPacket:  1,
				BytesPerFrame:    1,
				ChannelsPerFrame: 1,
				BitsPerChannel:   8,
			},
			want: "1 Ch @ 8000 Hz, Format: LinearPCM, 8-bit, unsigned integer, interleaved",
		},
		{
			name: "zero linear PCM",
			desc: audiodesc.StreamDescription{FormatID: audiodesc.FormatLinearPCM},
			want: "0 Ch @ 0 Hz, Format: LinearPCM, 0-bit, unsigned integer, interleaved",
		},
		{
			name: "fraction wider than sample",
			desc: audiodesc.StreamDescription{
				FormatID:       audiodesc.FormatLinearPCM,
				FormatFlags:    8 << audiodesc.LinearPCMSampleFractionShift,
				BitsPerChannel: 4,
			},
			want: "0 Ch @ 0 Hz, Format: LinearPCM, 4294967292.8-bit, unsigned integer, interleaved",
		},
		{
			name: "apple lossless 24-bit",
			desc: audiodesc.StreamDescription{
				SampleRate:       44100,
				FormatID:         audiodesc.FormatAppleLossless,
				FormatFlags:      audiodesc.AppleLossless24BitSourceData,
				FramesPerPacket:  4096,
				ChannelsPerFrame: 2,
			},
			want: "2 Ch @ 44100 Hz, Format: AppleLossless, 24-bit source data, 4096frames/packet",
		},
		{
			name: "apple lossless unknown flags",
			desc: audiodesc.StreamDescription{
				SampleRate:       44100,
				FormatID:         audiodesc.FormatAppleLossless,
				FormatFlags:      audiodesc.AppleLossless16BitSourceData | 0x100,
				FramesPerPacket:  4096,
				ChannelsPerFrame: 1,
			},
			want: "1 Ch @ 44100 Hz, Format: AppleLossless, ??-bit source data, 4096frames/packet",
		},
		{
			name: "aac",
			desc: aacStereo,
			want: "2 Ch @ 44100 Hz, Format: MPEG4AAC, 0bits/channel, 0bytes/packet, 1024frames/packet, 0bytes/frame",
		},
		{
			name: "unknown format ignores flags",
			desc: audiodesc.StreamDescription{
				SampleRate:       1e6,
				FormatID:         0x00000001,
				FormatFlags:      0xFFFFFFFF,
				BytesPerPacket:   3,
				FramesPerPacket:  5,
				BytesPerFrame:    7,
				ChannelsPerFrame: 9,
				BitsPerChannel:   11,
			},
			want: "9 Ch @ 1e+06 Hz, Format: 0x00000001, 11bits/channel, 3bytes/packet, 5frames/packet, 7bytes/frame",
		},
		{
			name: "fractional sample rate",
			desc: audiodesc.StreamDescription{
				SampleRate:       22050.5,
				FormatID:         audiodesc.FormatULaw,
				BytesPerPacket:   1,
				FramesPerPacket:  1,
				BytesPerFrame:    1,
				ChannelsPerFrame: 1,
				BitsPerChannel:   8,
			},
			want: "1 Ch @ 22050.5 Hz, Format: ULaw, 8bits/channel, 1bytes/packet, 1frames/packet, 1bytes/frame",
		},
		{
			name: "nan sample rate",
			desc: audiodesc.StreamDescription{SampleRate: math.NaN(), FormatID: audiodesc.FormatAC3, ChannelsPerFrame: 6},
			want: "6 Ch @ nan Hz, Format: AC3, 0bits/channel, 0bytes/packet, 0frames/packet, 0bytes/frame",
		},
		{
			name: "infinite sample rate",
			desc: audiodesc.StreamDescription{SampleRate: math.Inf(1), FormatID: audiodesc.FormatAC3, ChannelsPerFrame: 6},
			want: "6 Ch @ inf Hz, Format: AC3, 0bits/channel, 0bytes/packet, 0frames/packet, 0bytes/frame",
		},
		{
			name: "negative infinite sample rate",
			desc: audiodesc.StreamDescription{SampleRate: math.Inf(-1), FormatID: audiodesc.FormatAC3, ChannelsPerFrame: 6},
			want: "6 Ch @ -inf Hz, Format: AC3, 0bits/channel, 0bytes/packet, 0frames/packet, 0bytes/frame",
		},
		{
			name: "small and large sample rates",
			desc: audiodesc.StreamDescription{SampleRate: 1.23456789e8, FormatID: audiodesc.FormatAC3},
			want: "0 Ch @ 1.23457e+08 Hz, Format: AC3, 0bits/channel, 0bytes/packet, 0frames/packet, 0bytes/frame",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.desc.String())
			assert.Equal(t, tc.desc.String(), tc.desc.String())
			assert.NotContains(t, tc.desc.String(), ", ,")
		})
	}
}

func TestAppleLosslessSourceDepth(t *testing.T) {
	testCases := []struct {
		flags uint32
		want  string
	}{
		{audiodesc.AppleLossless16BitSourceData, "16-bit source data"},
		{audiodesc.AppleLossless20BitSourceData, "20-bit source data"},
		{audiodesc.AppleLossless24BitSourceData, "24-bit source data"},
		{audiodesc.AppleLossless32BitSourceData, "32-bit source data"},
		{0, "??-bit source data"},
		{5, "??-bit source data"},
	}

	for _, tc := range testCases {
		t.Run(tc.want, func(t *testing.T) {
			d := audiodesc.StreamDescription{
				SampleRate:       48000,
				FormatID:         audiodesc.FormatAppleLossless,
				FormatFlags:      tc.flags,
				FramesPerPacket:  4096,
				ChannelsPerFrame: 2,
			}

			assert.Equal(t, "2 Ch @ 48000 Hz, Format: AppleLossless, "+tc.want+", 4096frames/packet", d.String())
		})
	}
}

func TestStreamDescriptionPackedness(t *testing.T) {
	s := signed16Mono.String()
	assert.Contains(t, s, "16-bit")
	assert.Contains(t, s, "signed integer")
	assert.Contains(t, s, "interleaved")
	assert.NotContains(t, s, "packed")
	assert.False(t, signed16Mono.PackednessIsSignificant())

	wide := signed16Mono
	wide.BitsPerChannel = 20
	assert.True(t, wide.PackednessIsSignificant())
	assert.Contains(t, wide.String(), "packed in 2 bytes")

	wide.FormatFlags &^= audiodesc.FormatFlagIsPacked
	assert.Contains(t, wide.String(), "unpacked in 2 bytes")
}

func TestStreamDescriptionDerived(t *testing.T) {
	nonInterleaved := signed16Mono
	nonInterleaved.ChannelsPerFrame = 6
	nonInterleaved.FormatFlags |= audiodesc.FormatFlagIsNonInterleaved

	assert.True(t, signed16Mono.IsPCM())
	assert.True(t, signed16Mono.IsInterleaved())
	assert.True(t, signed16Mono.IsSignedInteger())
	assert.False(t, signed16Mono.IsFloat())
	assert.Equal(t, uint32(1), signed16Mono.InterleavedChannels())
	assert.Equal(t, uint32(2), signed16Mono.SampleWordSize())

	assert.False(t, nonInterleaved.IsInterleaved())
	assert.Equal(t, uint32(1), nonInterleaved.InterleavedChannels())
	assert.Equal(t, uint32(6), nonInterleaved.ChannelStreams())
	assert.Equal(t, uint32(2), nonInterleaved.SampleWordSize())

	// Only linear PCM honours the non-interleaved flag.
	aac := aacStereo
	aac.FormatFlags = audiodesc.FormatFlagIsNonInterleaved | audiodesc.FormatFlagIsSignedInteger
	assert.True(t, aac.IsInterleaved())
	assert.Equal(t, uint32(1), aac.ChannelStreams())
	assert.Equal(t, uint32(0), aac.SampleWordSize())
	assert.False(t, aac.IsSignedInteger())
	assert.False(t, aac.PackednessIsSignificant())

	odd := signed16Mono
	odd.BitsPerChannel = 12
	odd.BytesPerFrame = 0
	assert.Equal(t, uint32(0), odd.SampleWordSize())
	assert.True(t, odd.AlignmentIsSignificant())
	assert.NotContains(t, odd.String(), "aligned")

	fixed := signed16Mono
	fixed.FormatFlags |= 12 << audiodesc.LinearPCMSampleFractionShift
	assert.Equal(t, uint32(12), fixed.FractionBits())
	assert.Contains(t, fixed.String(), "4.12-bit little-endian")
}

func TestStreamDescriptionNativeEndian(t *testing.T) {
	native := signed16Mono
	native.FormatFlags |= audiodesc.FormatFlagsNativeEndian
	assert.True(t, native.IsNativeEndian())

	native.FormatFlags ^= audiodesc.FormatFlagIsBigEndian
	assert.False(t, native.IsNativeEndian())
}
