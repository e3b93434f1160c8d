package audiodesc

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

var (
	// ErrNotCAF is returned when the input does not start with a CAF file header.
	ErrNotCAF = errors.New("not a CAF file")
	// ErrMissingDescription is returned when the first CAF chunk is not an audio description.
	ErrMissingDescription = errors.New("CAF audio description chunk not found")
)

var (
	cafFileType = [4]byte{'c', 'a', 'f', 'f'}
	cafDescType = [4]byte{'d', 'e', 's', 'c'}
)

// Linear PCM flags as stored in a CAF file. They differ from the in-memory flags.
const (
	cafLinearPCMIsFloat        = 1 << 0
	cafLinearPCMIsLittleEndian = 1 << 1
)

type cafFileHeader struct {
	FileType    [4]byte
	FileVersion uint16
	FileFlags   uint16
}

type cafChunkHeader struct {
	ChunkType [4]byte
	ChunkSize int64
}

// cafAudioDescription is the payload of the 'desc' chunk.
type cafAudioDescription struct {
	SampleRate       float64
	FormatID         uint32
	FormatFlags      uint32
	BytesPerPacket   uint32
	FramesPerPacket  uint32
	ChannelsPerFrame uint32
	BitsPerChannel   uint32
}

// ReadCAFDescription reads the CAF file header and the audio description chunk that must follow it.
func ReadCAFDescription(r io.Reader) (StreamDescription, error) {
	var hdr cafFileHeader
	if err := binary.Read(r, binary.BigEndian, &hdr); err != nil {
		return StreamDescription{}, fmt.Errorf("reading CAF header: %w", err)
	}

	if hdr.FileType != cafFileType {
		return StreamDescription{}, fmt.Errorf("%w: file type %s", ErrNotCAF, FourCC(binary.BigEndian.Uint32(hdr.FileType[:])))
	}

	if hdr.FileVersion != 1 {
		return StreamDescription{}, fmt.Errorf("%w: unsupported version %d", ErrNotCAF, hdr.FileVersion)
	}

	var chunk cafChunkHeader
	if err := binary.Read(r, binary.BigEndian, &chunk); err != nil {
		return StreamDescription{}, fmt.Errorf("reading CAF chunk header: %w", err)
	}

	if chunk.ChunkType != cafDescType || chunk.ChunkSize < int64(binary.Size(cafAudioDescription{})) {
		return StreamDescription{}, fmt.Errorf("%w: first chunk %s, %d bytes",
			ErrMissingDescription, FourCC(binary.BigEndian.Uint32(chunk.ChunkType[:])), chunk.ChunkSize)
	}

	var desc cafAudioDescription
	if err := binary.Read(r, binary.BigEndian, &desc); err != nil {
		return StreamDescription{}, fmt.Errorf("reading CAF audio description: %w", err)
	}

	return desc.streamDescription(), nil
}

// streamDescription converts the file form to the in-memory form.
// Linear PCM flags are translated and the bytes per frame derived from the packet size.
func (c cafAudioDescription) streamDescription() StreamDescription {
	d := StreamDescription{
		SampleRate:       c.SampleRate,
		FormatID:         FourCC(c.FormatID),
		FormatFlags:      c.FormatFlags,
		BytesPerPacket:   c.BytesPerPacket,
		FramesPerPacket:  c.FramesPerPacket,
		ChannelsPerFrame: c.ChannelsPerFrame,
		BitsPerChannel:   c.BitsPerChannel,
	}

	if d.FormatID != FormatLinearPCM {
		return d
	}

	if c.FramesPerPacket > 0 {
		d.BytesPerFrame = c.BytesPerPacket / c.FramesPerPacket
	}

	var flags uint32
	if c.FormatFlags&cafLinearPCMIsFloat != 0 {
		flags |= FormatFlagIsFloat
	} else {
		flags |= FormatFlagIsSignedInteger
	}

	if c.FormatFlags&cafLinearPCMIsLittleEndian == 0 {
		flags |= FormatFlagIsBigEndian
	}

	if d.BytesPerFrame*8 == d.BitsPerChannel*d.ChannelsPerFrame {
		flags |= FormatFlagIsPacked
	}

	d.FormatFlags = flags

	return d
}

// WriteCAFHeader writes a CAF file header followed by the audio description chunk for d.
func WriteCAFHeader(w io.Writer, d StreamDescription) error {
	desc := cafAudioDescription{
		SampleRate:       d.SampleRate,
		FormatID:         uint32(d.FormatID),
		FormatFlags:      d.FormatFlags,
		BytesPerPacket:   d.BytesPerPacket,
		FramesPerPacket:  d.FramesPerPacket,
		ChannelsPerFrame: d.ChannelsPerFrame,
		BitsPerChannel:   d.BitsPerChannel,
	}

	if d.IsPCM() {
		desc.FormatFlags = 0
		if d.FormatFlags&FormatFlagIsFloat != 0 {
			desc.FormatFlags |= cafLinearPCMIsFloat
		}

		if d.FormatFlags&FormatFlagIsBigEndian == 0 {
			desc.FormatFlags |= cafLinearPCMIsLittleEndian
		}
	}

	parts := []any{
		cafFileHeader{FileType: cafFileType, FileVersion: 1},
		cafChunkHeader{ChunkType: cafDescType, ChunkSize: int64(binary.Size(desc))},
		desc,
	}

	for _, p := range parts {
		if err := binary.Write(w, binary.BigEndian, p); err != nil {
			return fmt.Errorf("writing CAF header: %w", err)
		}
	}

	return nil
}
