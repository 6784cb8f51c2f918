package assets

import (
	"encoding/binary"
	"math"
)

const (
	popDuration = 0.09
	popStartHz  = 880.0
	popEndHz    = 440.0
	popDecay    = 40.0
	popGain     = 0.5
)

// PopPCM synthesizes a short falling blip as signed 16-bit little-endian
// stereo, the layout audio.Context.NewPlayerFromBytes expects.
func PopPCM(sampleRate int) []byte {
	if sampleRate <= 0 {
		return nil
	}
	frames := int(float64(sampleRate) * popDuration)
	out := make([]byte, frames*4)

	phase := 0.0
	for i := 0; i < frames; i++ {
		t := float64(i) / float64(sampleRate)
		progress := float64(i) / float64(frames)
		hz := popStartHz + (popEndHz-popStartHz)*progress
		phase += 2 * math.Pi * hz / float64(sampleRate)

		amp := popGain * math.Exp(-popDecay*t)
		v := int16(math.Sin(phase) * amp * math.MaxInt16)

		binary.LittleEndian.PutUint16(out[i*4:], uint16(v))
		binary.LittleEndian.PutUint16(out[i*4+2:], uint16(v))
	}
	return out
}
