package stream

// Resample converts interleaved samples to the target sample rate using linear interpolation.
// The samples are returned unchanged if the sample rates already match.
func Resample(config Config, samples []float32, sampleRate int) (Config, []float32) {
	if config.SampleRate == sampleRate || config.SampleRate <= 0 || sampleRate <= 0 {
		return config, samples
	}

	channels := max(1, config.Channels)
	srcFrames := len(samples) / channels
	if srcFrames == 0 {
		config.SampleRate = sampleRate
		return config, nil
	}

	dstFrames := int(int64(srcFrames) * int64(sampleRate) / int64(config.SampleRate))
	result := make([]float32, dstFrames*channels)

	ratio := float64(config.SampleRate) / float64(sampleRate)

	for frame := range dstFrames {
		pos := float64(frame) * ratio

		idx := int(pos)
		next := min(idx+1, srcFrames-1)
		frac := float32(pos - float64(idx))

		for ch := range channels {
			a := samples[idx*channels+ch]
			b := samples[next*channels+ch]
			result[frame*channels+ch] = a + (b-a)*frac
		}
	}

	config.SampleRate = sampleRate
	config.ChannelSampleCount = dstFrames

	return config, result
}
