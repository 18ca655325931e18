package window

import (
	"time"
)

const (
	TONE_FREQUENCY = 440                    // Beep pitch, in Hz.
	TONE_LENGTH    = 100 * time.Millisecond // Beep duration.
	TONE_VOLUME    = 32                     // Peak amplitude of a signed 8 bit sample.
	SAMPLE_RATE    = 22050                  // Audio samples per second.
)

// squareWave renders a square wave of signed 8 bit samples.
func squareWave(rate int, frequency int, length time.Duration, volume int8) (samples []byte) {
	if rate <= 0 || frequency <= 0 || length <= 0 {
		return
	}

	count := int(int64(rate) * int64(length) / int64(time.Second))
	period := rate / frequency
	if period < 2 {
		period = 2
	}

	samples = make([]byte, count)
	for n := range samples {
		level := volume
		if n%period >= period/2 {
			level = -volume
		}
		samples[n] = byte(level)
	}

	return
}
