package stream

import (
	"io"
	"sync"
	"time"
)

// Fader applies a gain to a stream. Changes of the gain are applied linearly
// over a given duration. Fader is safe for concurrent use, the stream is
// usually read by the audio mixer goroutine.
type Fader struct {
	stream Stream[float32]
	config Config

	mu sync.Mutex

	gain   float64
	target float64

	// per frame gain increment while fading
	step      float64
	remaining int

	// stop once the current fade has finished
	stopAfterFade bool
	stopped       bool
}

func NewFader(stream Stream[float32], gain float64) *Fader {
	return &Fader{
		stream: stream,
		config: stream.Config(),
		gain:   gain,
		target: gain,
	}
}

// FadeTo changes the gain to the target value over the given duration.
// A duration of zero changes the gain immediately.
func (f *Fader) FadeTo(target float64, duration time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.fadeTo(target, duration)
}

// FadeOut fades the gain to zero and ends the stream afterwards.
func (f *Fader) FadeOut(duration time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.fadeTo(0, duration)
	f.stopAfterFade = true

	if f.remaining == 0 {
		f.stopped = true
	}
}

func (f *Fader) fadeTo(target float64, duration time.Duration) {
	f.target = target

	frames := f.config.FramesOf(duration)
	if frames <= 0 {
		f.gain = target
		f.step = 0
		f.remaining = 0
		return
	}

	f.step = (target - f.gain) / float64(frames)
	f.remaining = frames
}

// Gain returns the current gain.
func (f *Fader) Gain() float64 {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.gain
}

// Target returns the gain the fader is fading towards.
func (f *Fader) Target() float64 {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.target
}

// FadingOut returns true after FadeOut was called.
func (f *Fader) FadingOut() bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.stopAfterFade
}

// Stopped returns true once a FadeOut has finished.
func (f *Fader) Stopped() bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.stopped
}

func (f *Fader) Read(samples []float32) (int, error) {
	f.mu.Lock()
	if f.stopped {
		f.mu.Unlock()
		return 0, io.EOF
	}
	f.mu.Unlock()

	n, err := f.stream.Read(samples)

	f.mu.Lock()
	defer f.mu.Unlock()

	channels := max(1, f.config.Channels)

	for frame := 0; frame*channels < n; frame++ {
		for ch := range channels {
			idx := frame*channels + ch
			if idx >= n {
				break
			}

			samples[idx] = float32(float64(samples[idx]) * f.gain)
		}

		if f.remaining > 0 {
			f.remaining -= 1
			f.gain += f.step

			if f.remaining == 0 {
				f.gain = f.target

				if f.stopAfterFade {
					f.stopped = true

					// silence everything after the fade has ended
					end := min(n, (frame+1)*channels)
					clear(samples[end:n])
					return end, io.EOF
				}
			}
		}
	}

	return n, err
}

func (f *Fader) Seek(offset int64, whence int) (int64, error) {
	return f.stream.Seek(offset, whence)
}

func (f *Fader) Config() Config {
	return f.config
}
