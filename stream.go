package audiodesc

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// StreamDescription describes the layout of an audio stream.
// Its fields mirror AudioStreamBasicDescription and may hold arbitrary bit patterns.
type StreamDescription struct {
	SampleRate       float64
	FormatID         FourCC
	FormatFlags      uint32
	BytesPerPacket   uint32
	FramesPerPacket  uint32
	BytesPerFrame    uint32
	ChannelsPerFrame uint32
	BitsPerChannel   uint32
	Reserved         uint32
}

// IsPCM reports whether the stream is linear PCM.
func (d StreamDescription) IsPCM() bool {
	return d.FormatID == FormatLinearPCM
}

// IsInterleaved reports whether all channels share a single buffer.
// Only linear PCM can be non-interleaved.
func (d StreamDescription) IsInterleaved() bool {
	return !d.IsPCM() || d.FormatFlags&FormatFlagIsNonInterleaved == 0
}

// InterleavedChannels returns the number of channels in each buffer.
func (d StreamDescription) InterleavedChannels() uint32 {
	if d.IsInterleaved() {
		return d.ChannelsPerFrame
	}

	return 1
}

// ChannelStreams returns the number of separate buffers a stream of this format uses.
func (d StreamDescription) ChannelStreams() uint32 {
	if d.IsInterleaved() {
		return 1
	}

	return d.ChannelsPerFrame
}

// SampleWordSize returns the size in bytes of a single sample container, or 0 if it cannot be derived.
func (d StreamDescription) SampleWordSize() uint32 {
	channels := d.InterleavedChannels()
	if d.BytesPerFrame == 0 || channels == 0 {
		return 0
	}

	return d.BytesPerFrame / channels
}

// PackednessIsSignificant reports whether the sample container is wider than the sample bits.
func (d StreamDescription) PackednessIsSignificant() bool {
	return d.IsPCM() && d.SampleWordSize()<<3 != d.BitsPerChannel
}

// AlignmentIsSignificant reports whether the sample bits can sit high or low within the container.
func (d StreamDescription) AlignmentIsSignificant() bool {
	return d.PackednessIsSignificant() || d.BitsPerChannel&7 != 0
}

// IsSignedInteger reports whether linear PCM samples are signed integers.
func (d StreamDescription) IsSignedInteger() bool {
	return d.IsPCM() && d.FormatFlags&FormatFlagIsSignedInteger != 0
}

// IsFloat reports whether linear PCM samples are floating-point.
func (d StreamDescription) IsFloat() bool {
	return d.IsPCM() && d.FormatFlags&FormatFlagIsFloat != 0
}

// IsNativeEndian reports whether the samples are stored in the byte order of the host.
func (d StreamDescription) IsNativeEndian() bool {
	return d.FormatFlags&FormatFlagIsBigEndian == FormatFlagsNativeEndian
}

// FractionBits returns the number of fractional bits of a fixed-point linear PCM sample.
func (d StreamDescription) FractionBits() uint32 {
	return (d.FormatFlags & LinearPCMSampleFractionMask) >> LinearPCMSampleFractionShift
}

// String returns a single-line description such as
// "2 Ch @ 44100 Hz, Format: LinearPCM, 16-bit little-endian, signed integer, interleaved".
func (d StreamDescription) String() string {
	clauses := []string{
		fmt.Sprintf("%d Ch @ %s Hz", d.ChannelsPerFrame, formatSampleRate(d.SampleRate)),
		"Format: " + DefaultRegistry().Formats.Name(uint32(d.FormatID)),
	}

	switch d.FormatID {
	case FormatAppleLossless:
		clauses = append(clauses,
			appleLosslessSourceDepth(d.FormatFlags)+"-bit source data",
			fmt.Sprintf("%dframes/packet", d.FramesPerPacket),
		)
	case FormatLinearPCM:
		clauses = d.appendLinearPCM(clauses)
	default:
		clauses = append(clauses,
			fmt.Sprintf("%dbits/channel", d.BitsPerChannel),
			fmt.Sprintf("%dbytes/packet", d.BytesPerPacket),
			fmt.Sprintf("%dframes/packet", d.FramesPerPacket),
			fmt.Sprintf("%dbytes/frame", d.BytesPerFrame),
		)
	}

	return strings.Join(clauses, ", ")
}

func (d StreamDescription) appendLinearPCM(clauses []string) []string {
	flags := d.FormatFlags
	wordSize := d.SampleWordSize()

	var depth string
	if frac := d.FractionBits(); frac > 0 {
		// Unsigned subtraction wraps when the fraction exceeds the bit depth.
		depth = fmt.Sprintf("%d.%d-bit", d.BitsPerChannel-frac, frac)
	} else {
		depth = fmt.Sprintf("%d-bit", d.BitsPerChannel)
	}

	if wordSize > 1 {
		if flags&FormatFlagIsBigEndian != 0 {
			depth += " big-endian"
		} else {
			depth += " little-endian"
		}
	}

	clauses = append(clauses, depth)

	switch {
	case flags&FormatFlagIsFloat != 0:
		clauses = append(clauses, "floating-point")
	case flags&FormatFlagIsSignedInteger != 0:
		clauses = append(clauses, "signed integer")
	default:
		clauses = append(clauses, "unsigned integer")
	}

	if wordSize > 0 && d.PackednessIsSignificant() {
		packed := "packed"
		if flags&FormatFlagIsPacked == 0 {
			packed = "unpacked"
		}

		clauses = append(clauses, fmt.Sprintf("%s in %d bytes", packed, wordSize))
	}

	if wordSize > 0 && d.AlignmentIsSignificant() {
		if flags&FormatFlagIsAlignedHigh != 0 {
			clauses = append(clauses, "high-aligned")
		} else {
			clauses = append(clauses, "low-aligned")
		}
	}

	if flags&FormatFlagIsNonInterleaved != 0 {
		clauses = append(clauses, "non-interleaved")
	} else {
		clauses = append(clauses, "interleaved")
	}

	return clauses
}

// appleLosslessSourceDepth matches the whole flags word, so any extra bit yields "??".
func appleLosslessSourceDepth(flags uint32) string {
	switch flags {
	case AppleLossless16BitSourceData:
		return "16"
	case AppleLossless20BitSourceData:
		return "20"
	case AppleLossless24BitSourceData:
		return "24"
	case AppleLossless32BitSourceData:
		return "32"
	default:
		return "??"
	}
}

// formatSampleRate prints at most six significant digits, switching to exponent form for large values.
// Non-finite rates print as nan, inf and -inf.
func formatSampleRate(rate float64) string {
	switch {
	case math.IsNaN(rate):
		return "nan"
	case math.IsInf(rate, 1):
		return "inf"
	case math.IsInf(rate, -1):
		return "-inf"
	}

	return strconv.FormatFloat(rate, 'g', 6, 64)
}
