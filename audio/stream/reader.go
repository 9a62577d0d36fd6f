package stream

import (
	"errors"
	"fmt"
	"io"
)

type decodedStream interface {
	io.ReadSeeker
	Length() int64
	SampleRate() int
}

// readerStream reads samples from a byte stream of native endian samples.
type readerStream[S Sample] struct {
	reader io.ReadSeeker
	config Config
}

// Adapt adapts a decoded ebiten stream of stereo samples.
func Adapt[S Sample](r decodedStream) Stream[S] {
	st := &readerStream[S]{
		reader: r,
		config: Config{
			SampleRate: r.SampleRate(),
			Channels:   2,
		},
	}

	byteCount := int(r.Length())
	if byteCount > 0 {
		st.config.ChannelSampleCount = byteCount / sampleSizeOf[S]() / st.config.Channels
	}

	return st
}

func (r *readerStream[S]) Read(samples []S) (int, error) {
	buf := SamplesAsBytes(samples)

	n, err := io.ReadFull(r.reader, buf)
	if errors.Is(err, io.ErrUnexpectedEOF) {
		// a short read at the end of the stream
		err = nil
	}

	return max(0, n) / sampleSizeOf[S](), err
}

func (r *readerStream[S]) Seek(offset int64, whence int) (int64, error) {
	sampleSize := int64(sampleSizeOf[S]())

	n, err := r.reader.Seek(offset*sampleSize, whence)
	return n / sampleSize, err
}

func (r *readerStream[S]) Config() Config {
	return r.config
}

// ToReadSeeker exposes the stream as a byte stream of native endian samples,
// as expected by the ebiten audio players.
func ToReadSeeker[S Sample](stream Stream[S]) io.ReadSeeker {
	if stream, ok := stream.(*readerStream[S]); ok {
		return stream.reader
	}

	return &toReadSeeker[S]{stream: stream}
}

type toReadSeeker[S Sample] struct {
	stream Stream[S]
}

func (a *toReadSeeker[S]) Read(p []byte) (int, error) {
	sampleSize := sampleSizeOf[S]()

	// round down to a full sample
	p = p[:len(p)-len(p)%sampleSize]
	samples := BytesAsSamples[S](p)

	n, err := a.stream.Read(samples)
	return n * sampleSize, err
}

func (a *toReadSeeker[S]) Seek(offset int64, whence int) (int64, error) {
	sampleSize := int64(sampleSizeOf[S]())

	if offset%sampleSize != 0 {
		return 0, fmt.Errorf("seek %d not aligned with sample size %d", offset, sampleSize)
	}

	n, err := a.stream.Seek(offset/sampleSize, whence)
	return n * sampleSize, err
}
