package audiodesc

import (
	"errors"
	"fmt"
)

// ErrUnsupportedALSAFormat is returned for ALSA formats that have no stream description.
var ErrUnsupportedALSAFormat = errors.New("unsupported ALSA sample format")

// ALSAFormat is an ALSA PCM sample format.
// These values correspond to the SNDRV_PCM_FORMAT_* constants in the ALSA kernel headers.
type ALSAFormat int32

const (
	ALSAFormatInvalid          ALSAFormat = -1
	ALSAFormatS8               ALSAFormat = 0
	ALSAFormatU8               ALSAFormat = 1
	ALSAFormatS16LE            ALSAFormat = 2
	ALSAFormatS16BE            ALSAFormat = 3
	ALSAFormatU16LE            ALSAFormat = 4
	ALSAFormatU16BE            ALSAFormat = 5
	ALSAFormatS24LE            ALSAFormat = 6
	ALSAFormatS24BE            ALSAFormat = 7
	ALSAFormatU24LE            ALSAFormat = 8
	ALSAFormatU24BE            ALSAFormat = 9
	ALSAFormatS32LE            ALSAFormat = 10
	ALSAFormatS32BE            ALSAFormat = 11
	ALSAFormatU32LE            ALSAFormat = 12
	ALSAFormatU32BE            ALSAFormat = 13
	ALSAFormatFloatLE          ALSAFormat = 14
	ALSAFormatFloatBE          ALSAFormat = 15
	ALSAFormatFloat64LE        ALSAFormat = 16
	ALSAFormatFloat64BE        ALSAFormat = 17
	ALSAFormatIEC958SubframeLE ALSAFormat = 18
	ALSAFormatIEC958SubframeBE ALSAFormat = 19
	ALSAFormatMuLaw            ALSAFormat = 20
	ALSAFormatALaw             ALSAFormat = 21
	ALSAFormatIMAADPCM         ALSAFormat = 22
	ALSAFormatMPEG             ALSAFormat = 23
	ALSAFormatGSM              ALSAFormat = 24
	ALSAFormatSpecial          ALSAFormat = 31
	ALSAFormatS24_3LE          ALSAFormat = 32
	ALSAFormatS24_3BE          ALSAFormat = 33
	ALSAFormatU24_3LE          ALSAFormat = 34
	ALSAFormatU24_3BE          ALSAFormat = 35
	ALSAFormatS20_3LE          ALSAFormat = 36
	ALSAFormatS20_3BE          ALSAFormat = 37
	ALSAFormatU20_3LE          ALSAFormat = 38
	ALSAFormatU20_3BE          ALSAFormat = 39
	ALSAFormatS18_3LE          ALSAFormat = 40
	ALSAFormatS18_3BE          ALSAFormat = 41
	ALSAFormatU18_3LE          ALSAFormat = 42
	ALSAFormatU18_3BE          ALSAFormat = 43
)

// ALSAFormatNames provides the ALSA names of the sample formats.
var ALSAFormatNames = map[ALSAFormat]string{
	ALSAFormatS8:               "S8",
	ALSAFormatU8:               "U8",
	ALSAFormatS16LE:            "S16_LE",
	ALSAFormatS16BE:            "S16_BE",
	ALSAFormatU16LE:            "U16_LE",
	ALSAFormatU16BE:            "U16_BE",
	ALSAFormatS24LE:            "S24_LE",
	ALSAFormatS24BE:            "S24_BE",
	ALSAFormatU24LE:            "U24_LE",
	ALSAFormatU24BE:            "U24_BE",
	ALSAFormatS32LE:            "S32_LE",
	ALSAFormatS32BE:            "S32_BE",
	ALSAFormatU32LE:            "U32_LE",
	ALSAFormatU32BE:            "U32_BE",
	ALSAFormatFloatLE:          "FLOAT_LE",
	ALSAFormatFloatBE:          "FLOAT_BE",
	ALSAFormatFloat64LE:        "FLOAT64_LE",
	ALSAFormatFloat64BE:        "FLOAT64_BE",
	ALSAFormatIEC958SubframeLE: "IEC958_SUBFRAME_LE",
	ALSAFormatIEC958SubframeBE: "IEC958_SUBFRAME_BE",
	ALSAFormatMuLaw:            "MU_LAW",
	ALSAFormatALaw:             "A_LAW",
	ALSAFormatIMAADPCM:         "IMA_ADPCM",
	ALSAFormatMPEG:             "MPEG",
	ALSAFormatGSM:              "GSM",
	ALSAFormatSpecial:          "SPECIAL",
	ALSAFormatS24_3LE:          "S24_3LE",
	ALSAFormatS24_3BE:          "S24_3BE",
	ALSAFormatU24_3LE:          "U24_3LE",
	ALSAFormatU24_3BE:          "U24_3BE",
	ALSAFormatS20_3LE:          "S20_3LE",
	ALSAFormatS20_3BE:          "S20_3BE",
	ALSAFormatU20_3LE:          "U20_3LE",
	ALSAFormatU20_3BE:          "U20_3BE",
	ALSAFormatS18_3LE:          "S18_3LE",
	ALSAFormatS18_3BE:          "S18_3BE",
	ALSAFormatU18_3LE:          "U18_3LE",
	ALSAFormatU18_3BE:          "U18_3BE",
}

// String returns the ALSA name of the format.
func (f ALSAFormat) String() string {
	if name, ok := ALSAFormatNames[f]; ok {
		return name
	}

	return fmt.Sprintf("ALSAFormat(%d)", int32(f))
}

// alsaLinear describes the sample layout of a linear ALSA format.
type alsaLinear struct {
	bits      uint32 // significant bits
	width     uint32 // container bytes
	signed    bool
	float     bool
	bigEndian bool
}

var alsaLinearFormats = map[ALSAFormat]alsaLinear{
	ALSAFormatS8:        {bits: 8, width: 1, signed: true},
	ALSAFormatU8:        {bits: 8, width: 1},
	ALSAFormatS16LE:     {bits: 16, width: 2, signed: true},
	ALSAFormatS16BE:     {bits: 16, width: 2, signed: true, bigEndian: true},
	ALSAFormatU16LE:     {bits: 16, width: 2},
	ALSAFormatU16BE:     {bits: 16, width: 2, bigEndian: true},
	ALSAFormatS24LE:     {bits: 24, width: 4, signed: true},
	ALSAFormatS24BE:     {bits: 24, width: 4, signed: true, bigEndian: true},
	ALSAFormatU24LE:     {bits: 24, width: 4},
	ALSAFormatU24BE:     {bits: 24, width: 4, bigEndian: true},
	ALSAFormatS32LE:     {bits: 32, width: 4, signed: true},
	ALSAFormatS32BE:     {bits: 32, width: 4, signed: true, bigEndian: true},
	ALSAFormatU32LE:     {bits: 32, width: 4},
	ALSAFormatU32BE:     {bits: 32, width: 4, bigEndian: true},
	ALSAFormatFloatLE:   {bits: 32, width: 4, float: true},
	ALSAFormatFloatBE:   {bits: 32, width: 4, float: true, bigEndian: true},
	ALSAFormatFloat64LE: {bits: 64, width: 8, float: true},
	ALSAFormatFloat64BE: {bits: 64, width: 8, float: true, bigEndian: true},
	ALSAFormatS24_3LE:   {bits: 24, width: 3, signed: true},
	ALSAFormatS24_3BE:   {bits: 24, width: 3, signed: true, bigEndian: true},
	ALSAFormatU24_3LE:   {bits: 24, width: 3},
	ALSAFormatU24_3BE:   {bits: 24, width: 3, bigEndian: true},
	ALSAFormatS20_3LE:   {bits: 20, width: 3, signed: true},
	ALSAFormatS20_3BE:   {bits: 20, width: 3, signed: true, bigEndian: true},
	ALSAFormatU20_3LE:   {bits: 20, width: 3},
	ALSAFormatU20_3BE:   {bits: 20, width: 3, bigEndian: true},
	ALSAFormatS18_3LE:   {bits: 18, width: 3, signed: true},
	ALSAFormatS18_3BE:   {bits: 18, width: 3, signed: true, bigEndian: true},
	ALSAFormatU18_3LE:   {bits: 18, width: 3},
	ALSAFormatU18_3BE:   {bits: 18, width: 3, bigEndian: true},
}

// ALSAFormatPhysicalBits returns the container size of a sample in bits, or 0 for non-linear formats.
func ALSAFormatPhysicalBits(f ALSAFormat) uint32 {
	if l, ok := alsaLinearFormats[f]; ok {
		return l.width * 8
	}

	switch f {
	case ALSAFormatIEC958SubframeLE, ALSAFormatIEC958SubframeBE:
		return 32
	case ALSAFormatMuLaw, ALSAFormatALaw:
		return 8
	default:
		return 0
	}
}

// FromALSAFormat describes an interleaved ALSA stream with the given format, channel count and rate.
// Samples narrower than their container are stored in the low bits, as ALSA does.
func FromALSAFormat(f ALSAFormat, channels, rate uint32) (StreamDescription, error) {
	desc := StreamDescription{
		SampleRate:       float64(rate),
		ChannelsPerFrame: channels,
		FramesPerPacket:  1,
	}

	if l, ok := alsaLinearFormats[f]; ok {
		desc.FormatID = FormatLinearPCM
		desc.BitsPerChannel = l.bits
		desc.BytesPerFrame = l.width * channels
		desc.BytesPerPacket = desc.BytesPerFrame

		switch {
		case l.float:
			desc.FormatFlags |= FormatFlagIsFloat
		case l.signed:
			desc.FormatFlags |= FormatFlagIsSignedInteger
		}

		if l.bigEndian {
			desc.FormatFlags |= FormatFlagIsBigEndian
		}

		if l.width*8 == l.bits {
			desc.FormatFlags |= FormatFlagIsPacked
		}

		return desc, nil
	}

	switch f {
	case ALSAFormatMuLaw, ALSAFormatALaw:
		desc.FormatID = FormatULaw
		if f == ALSAFormatALaw {
			desc.FormatID = FormatALaw
		}

		desc.BitsPerChannel = 8
		desc.BytesPerFrame = channels
		desc.BytesPerPacket = channels
	case ALSAFormatIEC958SubframeLE, ALSAFormatIEC958SubframeBE:
		desc.FormatID = FormatAES3
		desc.BitsPerChannel = 32
		desc.BytesPerFrame = 4 * channels
		desc.BytesPerPacket = desc.BytesPerFrame
	case ALSAFormatIMAADPCM:
		desc.FormatID = FormatDVIIntelIMA
		desc.FramesPerPacket = 0
	case ALSAFormatGSM:
		desc.FormatID = FormatMicrosoftGSM
		desc.FramesPerPacket = 0
	case ALSAFormatMPEG:
		desc.FormatID = FormatMPEGLayer3
		desc.FramesPerPacket = 0
	default:
		return StreamDescription{}, fmt.Errorf("%w: %s", ErrUnsupportedALSAFormat, f)
	}

	return desc, nil
}
