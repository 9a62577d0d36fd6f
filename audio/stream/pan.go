package stream

import (
	"sync"
)

// Panner distributes a stereo stream between the left and the right channel.
// A pan of -1 is fully left, 0 is centered and 1 is fully right.
// Streams with other than two channels are passed through.
type Panner struct {
	stream Stream[float32]
	config Config

	mu  sync.Mutex
	pan float64
}

func NewPanner(stream Stream[float32], pan float64) *Panner {
	return &Panner{
		stream: stream,
		config: stream.Config(),
		pan:    clampPan(pan),
	}
}

func (p *Panner) SetPan(pan float64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.pan = clampPan(pan)
}

func (p *Panner) Pan() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.pan
}

// Gains returns the gain of the left and right channel for the given pan value.
func Gains(pan float64) (left, right float64) {
	pan = clampPan(pan)
	return min(1, 1-pan), min(1, 1+pan)
}

func (p *Panner) Read(samples []float32) (int, error) {
	n, err := p.stream.Read(samples)

	if p.config.Channels != 2 {
		return n, err
	}

	left, right := Gains(p.Pan())
	if left == 1 && right == 1 {
		return n, err
	}

	for idx := 0; idx+1 < n; idx += 2 {
		samples[idx] = float32(float64(samples[idx]) * left)
		samples[idx+1] = float32(float64(samples[idx+1]) * right)
	}

	return n, err
}

func (p *Panner) Seek(offset int64, whence int) (int64, error) {
	return p.stream.Seek(offset, whence)
}

func (p *Panner) Config() Config {
	return p.config
}

func clampPan(pan float64) float64 {
	return max(-1, min(1, pan))
}
