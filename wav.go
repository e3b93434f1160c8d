package audiodesc

import (
	"fmt"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// WAVE format tags.
const (
	wavFormatPCM        = 0x0001
	wavFormatIEEEFloat  = 0x0003
	wavFormatALaw       = 0x0006
	wavFormatMuLaw      = 0x0007
	wavFormatExtensible = 0xFFFE
)

// WAVFormatID returns the format ID for a WAVE format tag. Tags without a Core Audio
// equivalent map to 'ms' followed by the 16-bit tag, e.g. 0x6D730011 for IMA ADPCM.
// WAVE_FORMAT_EXTENSIBLE maps to linear PCM and FromWAV describes it as integer samples:
// go-audio/wav does not expose the subformat GUID, so extensible float files are not detected.
func WAVFormatID(tag uint16) FourCC {
	switch tag {
	case wavFormatPCM, wavFormatIEEEFloat, wavFormatExtensible:
		return FormatLinearPCM
	case wavFormatALaw:
		return FormatALaw
	case wavFormatMuLaw:
		return FormatULaw
	default:
		return FourCC('m')<<24 | FourCC('s')<<16 | FourCC(tag)
	}
}

// FromWAV describes the stream of a WAV file. Header information is read if the decoder has not done so yet.
func FromWAV(d *wav.Decoder) (StreamDescription, error) {
	if d.SampleRate == 0 {
		d.ReadInfo()
		if err := d.Err(); err != nil {
			return StreamDescription{}, fmt.Errorf("reading WAV header: %w", err)
		}
	}

	f := d.Format()
	if f == nil || f.NumChannels <= 0 {
		return StreamDescription{}, fmt.Errorf("invalid WAV header: %d channels", d.NumChans)
	}

	channels := uint32(f.NumChannels)
	bits := uint32(d.BitDepth)

	desc := StreamDescription{
		SampleRate:       float64(f.SampleRate),
		FormatID:         WAVFormatID(d.WavAudioFormat),
		ChannelsPerFrame: channels,
		BitsPerChannel:   bits,
		FramesPerPacket:  1,
	}

	switch desc.FormatID {
	case FormatLinearPCM:
		container := (bits + 7) / 8
		desc.BytesPerFrame = container * channels
		desc.BytesPerPacket = desc.BytesPerFrame

		switch {
		case d.WavAudioFormat == wavFormatIEEEFloat:
			desc.FormatFlags = FormatFlagsCanonicalFloat
		case bits <= 8:
			// 8-bit WAV samples are unsigned.
			desc.FormatFlags = FormatFlagIsPacked
		default:
			desc.FormatFlags = FormatFlagsCanonicalInteger
		}

		if container*8 != bits {
			desc.FormatFlags &^= FormatFlagIsPacked
			desc.FormatFlags |= FormatFlagIsAlignedHigh
		}
	case FormatALaw, FormatULaw:
		desc.BytesPerFrame = channels
		desc.BytesPerPacket = channels
	default:
		desc.FramesPerPacket = 0
	}

	return desc, nil
}

// FromAudioFormat describes interleaved, packed, native-endian signed integer PCM with the given bit depth.
func FromAudioFormat(f *audio.Format, bitDepth int) StreamDescription {
	if f == nil || bitDepth <= 0 {
		return StreamDescription{FormatID: FormatLinearPCM}
	}

	channels := uint32(max(f.NumChannels, 0))
	bytesPerFrame := uint32(bitDepth+7) / 8 * channels

	return StreamDescription{
		SampleRate:       float64(f.SampleRate),
		FormatID:         FormatLinearPCM,
		FormatFlags:      FormatFlagsCanonicalInteger | FormatFlagsNativeEndian,
		BytesPerPacket:   bytesPerFrame,
		FramesPerPacket:  1,
		BytesPerFrame:    bytesPerFrame,
		ChannelsPerFrame: channels,
		BitsPerChannel:   uint32(bitDepth),
	}
}
