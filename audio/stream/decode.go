package stream

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

var ErrUnknownFormat = errors.New("failed to detect audio file format")

type Format uint8

const (
	FormatUnknown Format = iota
	FormatWav
	FormatVorbis
	FormatMp3
)

func (f Format) String() string {
	switch f {
	case FormatWav:
		return "wav"
	case FormatVorbis:
		return "vorbis"
	case FormatMp3:
		return "mp3"
	default:
		return "unknown"
	}
}

// DetectFormat detects the audio format by looking at the first bytes of the data.
func DetectFormat(header []byte) Format {
	if len(header) < 12 {
		return FormatUnknown
	}

	switch {
	case bytes.Equal([]byte("OggS"), header[:4]):
		return FormatVorbis

	case bytes.Equal([]byte("RIFF"), header[0:4]) && bytes.Equal([]byte("WAVE"), header[8:12]):
		return FormatWav

	case bytes.Equal([]byte("ID3"), header[:3]):
		return FormatMp3

	case header[0] == 0xff && (header[1] == 0xFB || header[1] == 0xF3 || header[1] == 0xF2):
		return FormatMp3
	}

	return FormatUnknown
}

// Open detects the format of the data and returns a decoding stream of stereo float32 samples.
func Open(fp io.ReadSeeker) (Stream[float32], error) {
	var buf [12]byte

	if _, err := io.ReadFull(fp, buf[:]); err != nil {
		return nil, fmt.Errorf("detecting file format: %w", err)
	}

	_, err := fp.Seek(0, io.SeekStart)
	if err != nil {
		return nil, fmt.Errorf("reset reader: %w", err)
	}

	switch DetectFormat(buf[:]) {
	case FormatVorbis:
		return VorbisStream(fp)
	case FormatMp3:
		return Mp3Stream(fp)
	case FormatWav:
		return WavStream(fp)
	}

	return nil, ErrUnknownFormat
}

func VorbisStream(fp io.ReadSeeker) (Stream[float32], error) {
	s, err := vorbis.DecodeF32(fp)
	if err != nil {
		return nil, fmt.Errorf("open vorbis stream: %w", err)
	}

	return Adapt[float32](s), nil
}

func Mp3Stream(fp io.ReadSeeker) (Stream[float32], error) {
	s, err := mp3.DecodeF32(fp)
	if err != nil {
		return nil, fmt.Errorf("open mp3 stream: %w", err)
	}

	return Adapt[float32](s), nil
}

func WavStream(fp io.ReadSeeker) (Stream[float32], error) {
	s, err := wav.DecodeF32(fp)
	if err != nil {
		return nil, fmt.Errorf("open wav stream: %w", err)
	}

	return Adapt[float32](s), nil
}

// Decode fully decodes the given audio file data into memory.
func Decode(buf []byte) (Config, []float32, error) {
	stream, err := Open(bytes.NewReader(buf))
	if err != nil {
		return Config{}, nil, err
	}

	config := stream.Config()

	samples, err := ReadAll(stream)
	if err != nil {
		return Config{}, nil, fmt.Errorf("decoding stream: %w", err)
	}

	config.ChannelSampleCount = len(samples) / config.Channels

	return config, samples, nil
}
