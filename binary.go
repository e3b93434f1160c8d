package audiodesc

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"golang.org/x/sys/cpu"
)

// Sizes of the in-memory C structs.
const (
	StreamDescriptionSize    = 40 // AudioStreamBasicDescription
	ComponentDescriptionSize = 20 // AudioComponentDescription
)

// ErrShortDescription is returned when a buffer is smaller than the record it should hold.
var ErrShortDescription = errors.New("description buffer too short")

// FormatFlagsNativeEndian is FormatFlagIsBigEndian on big-endian hosts and 0 otherwise.
var FormatFlagsNativeEndian = nativeEndianFlags()

func nativeEndianFlags() uint32 {
	if cpu.IsBigEndian {
		return FormatFlagIsBigEndian
	}

	return 0
}

// NativeByteOrder returns the byte order of the host, which is the order
// Core Audio structs use in memory.
func NativeByteOrder() binary.ByteOrder {
	if cpu.IsBigEndian {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

// ParseStreamDescription decodes an AudioStreamBasicDescription from its 40-byte memory layout.
// Bytes past the record are ignored.
func ParseStreamDescription(b []byte, order binary.ByteOrder) (StreamDescription, error) {
	if len(b) < StreamDescriptionSize {
		return StreamDescription{}, fmt.Errorf("%w: got %d bytes, need %d", ErrShortDescription, len(b), StreamDescriptionSize)
	}

	return StreamDescription{
		SampleRate:       math.Float64frombits(order.Uint64(b[0:8])),
		FormatID:         FourCC(order.Uint32(b[8:12])),
		FormatFlags:      order.Uint32(b[12:16]),
		BytesPerPacket:   order.Uint32(b[16:20]),
		FramesPerPacket:  order.Uint32(b[20:24]),
		BytesPerFrame:    order.Uint32(b[24:28]),
		ChannelsPerFrame: order.Uint32(b[28:32]),
		BitsPerChannel:   order.Uint32(b[32:36]),
		Reserved:         order.Uint32(b[36:40]),
	}, nil
}

// AppendStreamDescription appends the 40-byte memory layout of d to b.
func AppendStreamDescription(b []byte, d StreamDescription, order binary.ByteOrder) []byte {
	var buf [StreamDescriptionSize]byte

	order.PutUint64(buf[0:8], math.Float64bits(d.SampleRate))
	order.PutUint32(buf[8:12], uint32(d.FormatID))
	order.PutUint32(buf[12:16], d.FormatFlags)
	order.PutUint32(buf[16:20], d.BytesPerPacket)
	order.PutUint32(buf[20:24], d.FramesPerPacket)
	order.PutUint32(buf[24:28], d.BytesPerFrame)
	order.PutUint32(buf[28:32], d.ChannelsPerFrame)
	order.PutUint32(buf[32:36], d.BitsPerChannel)
	order.PutUint32(buf[36:40], d.Reserved)

	return append(b, buf[:]...)
}

// ParseComponentDescription decodes an AudioComponentDescription from its 20-byte memory layout.
func ParseComponentDescription(b []byte, order binary.ByteOrder) (ComponentDescription, error) {
	if len(b) < ComponentDescriptionSize {
		return ComponentDescription{}, fmt.Errorf("%w: got %d bytes, need %d", ErrShortDescription, len(b), ComponentDescriptionSize)
	}

	return ComponentDescription{
		Type:         FourCC(order.Uint32(b[0:4])),
		SubType:      FourCC(order.Uint32(b[4:8])),
		Manufacturer: FourCC(order.Uint32(b[8:12])),
		Flags:        order.Uint32(b[12:16]),
		FlagsMask:    order.Uint32(b[16:20]),
	}, nil
}

// AppendComponentDescription appends the 20-byte memory layout of c to b.
func AppendComponentDescription(b []byte, c ComponentDescription, order binary.ByteOrder) []byte {
	var buf [ComponentDescriptionSize]byte

	order.PutUint32(buf[0:4], uint32(c.Type))
	order.PutUint32(buf[4:8], uint32(c.SubType))
	order.PutUint32(buf[8:12], uint32(c.Manufacturer))
	order.PutUint32(buf[12:16], c.Flags)
	order.PutUint32(buf[16:20], c.FlagsMask)

	return append(b, buf[:]...)
}
