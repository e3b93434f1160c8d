package main

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"

	"github.com/gen2brain/audiodesc"
)

// audioSource abstracts the container formats asbdinfo can inspect.
type audioSource interface {
	// Description returns the stream description of the encoded data.
	Description() (audiodesc.StreamDescription, error)
	// Decoded returns the description of the decoded PCM, if the source is compressed.
	Decoded() (audiodesc.StreamDescription, bool)
	// Duration returns the total duration, or 0 if unknown.
	Duration() time.Duration
}

// openSource selects a source by file extension.
func openSource(path string, r io.ReadSeeker) (audioSource, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav", ".wave":
		return &wavSource{decoder: wav.NewDecoder(r)}, nil
	case ".caf":
		return &cafSource{r: r}, nil
	case ".mp3":
		return newMp3Source(r)
	default:
		return nil, fmt.Errorf("unsupported file type %q", filepath.Ext(path))
	}
}

type wavSource struct {
	decoder *wav.Decoder
}

func (w *wavSource) Description() (audiodesc.StreamDescription, error) {
	if !w.decoder.IsValidFile() {
		return audiodesc.StreamDescription{}, errors.New("invalid WAV file")
	}

	return audiodesc.FromWAV(w.decoder)
}

func (w *wavSource) Decoded() (audiodesc.StreamDescription, bool) {
	return audiodesc.StreamDescription{}, false
}

func (w *wavSource) Duration() time.Duration {
	d, err := w.decoder.Duration()
	if err != nil {
		return 0
	}

	return d
}

type cafSource struct {
	r io.Reader
}

func (c *cafSource) Description() (audiodesc.StreamDescription, error) {
	return audiodesc.ReadCAFDescription(c.r)
}

func (c *cafSource) Decoded() (audiodesc.StreamDescription, bool) {
	return audiodesc.StreamDescription{}, false
}

// Duration is not known without reading the packet table.
func (c *cafSource) Duration() time.Duration {
	return 0
}

// mp3Source describes an MPEG Layer 3 stream and the PCM go-mp3 decodes it to.
type mp3Source struct {
	sampleRate int
	length     int64 // Total decoded size in bytes
}

const (
	mp3FramesPerPacket = 1152
	mp3DecodedChannels = 2  // always decodes to stereo
	mp3DecodedBits     = 16 // always decodes to 16-bit
)

func newMp3Source(r io.Reader) (audioSource, error) {
	decoder, err := mp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("invalid MP3 file: %w", err)
	}

	return &mp3Source{sampleRate: decoder.SampleRate(), length: decoder.Length()}, nil
}

func (m *mp3Source) Description() (audiodesc.StreamDescription, error) {
	return audiodesc.StreamDescription{
		SampleRate:      float64(m.sampleRate),
		FormatID:        audiodesc.FormatMPEGLayer3,
		FramesPerPacket: mp3FramesPerPacket,
		// go-mp3 does not report the encoded channel count.
	}, nil
}

func (m *mp3Source) Decoded() (audiodesc.StreamDescription, bool) {
	bytesPerFrame := uint32(mp3DecodedChannels * mp3DecodedBits / 8)

	return audiodesc.StreamDescription{
		SampleRate:       float64(m.sampleRate),
		FormatID:         audiodesc.FormatLinearPCM,
		FormatFlags:      audiodesc.FormatFlagsCanonicalInteger,
		BytesPerPacket:   bytesPerFrame,
		FramesPerPacket:  1,
		BytesPerFrame:    bytesPerFrame,
		ChannelsPerFrame: mp3DecodedChannels,
		BitsPerChannel:   mp3DecodedBits,
	}, true
}

func (m *mp3Source) Duration() time.Duration {
	if m.sampleRate == 0 || m.length < 0 {
		return 0
	}

	totalFrames := m.length / (mp3DecodedChannels * mp3DecodedBits / 8)
	seconds := float64(totalFrames) / float64(m.sampleRate)

	return time.Duration(seconds * float64(time.Second))
}
