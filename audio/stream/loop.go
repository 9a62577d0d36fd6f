package stream

import (
	"errors"
	"io"
)

type loopStream[S Sample] struct {
	stream Stream[S]
}

// Loop restarts the stream at its beginning every time it reaches its end.
// The stream must be seekable.
func Loop[S Sample](stream Stream[S]) Stream[S] {
	return &loopStream[S]{stream}
}

func (l *loopStream[S]) Read(samples []S) (int, error) {
	n, err := l.stream.Read(samples)
	switch {
	case errors.Is(err, io.EOF), n == 0 && len(samples) > 0:
		if n > 0 {
			// deliver what we have, next read wraps around
			return n, nil
		}

		// try to seek back
		_, errSeek := l.stream.Seek(0, io.SeekStart)
		if errSeek != nil {
			return n, errors.Join(err, errSeek)
		}

		// try to read a second time
		n, err = l.stream.Read(samples)
		if errors.Is(err, io.EOF) && n > 0 {
			err = nil
		}
	}

	return n, err
}

func (l *loopStream[S]) Seek(offset int64, whence int) (int64, error) {
	sampleCount := int64(l.stream.Config().SampleCount())
	if sampleCount == 0 {
		return 0, errors.ErrUnsupported
	}

	return l.stream.Seek(offset%sampleCount, whence)
}

func (l *loopStream[S]) Config() Config {
	conf := l.stream.Config()
	conf.ChannelSampleCount = 0
	return conf
}
