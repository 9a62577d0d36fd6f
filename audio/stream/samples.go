package stream

import (
	"bytes"
	"errors"
	"io"
)

// ReadAll reads all samples of a finite stream into memory.
func ReadAll[S Sample](stream Stream[S]) ([]S, error) {
	sampleCount := max(0, stream.Config().SampleCount())
	samples := make([]S, 0, sampleCount)

	var buf [4096]S

	for {
		n, err := stream.Read(buf[:])
		if n > 0 {
			samples = append(samples, buf[:n]...)
		}

		if err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}

		if n == 0 || errors.Is(err, io.EOF) {
			return samples, nil
		}
	}
}

// FromSamples creates a new stream reading the given samples. The samples are
// not copied, multiple streams can share the same buffer.
func FromSamples[S Sample](config Config, samples []S) Stream[S] {
	config.ChannelSampleCount = len(samples) / max(1, config.Channels)

	return &readerStream[S]{
		reader: bytes.NewReader(SamplesAsBytes(samples)),
		config: config,
	}
}
