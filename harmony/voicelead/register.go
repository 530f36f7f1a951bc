package voicelead

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Default register constants shared by the voicing pipeline. The sweet zone
// runs roughly C3-F#4 with A3 as the gravity center; the playable register is
// E1-C6.
const (
	DefaultRegisterLow   = 28
	DefaultRegisterHigh  = 84
	DefaultSweetLow      = 48
	DefaultSweetHigh     = 66
	DefaultGravityCenter = 57
	DefaultMaxSpread     = 19
)

// ApplyRegisterGravity shifts an entire voicing by whole octaves toward the
// gravity center when its mean pitch drifts out of the sweet zone. Repeated
// voice-led key changes otherwise walk the whole chord out of a comfortable
// register.
func ApplyRegisterGravity(notes []int, sweetLow, sweetHigh, center int) []int {
	if len(notes) == 0 {
		return notes
	}

	mean := meanOf(notes)
	if mean >= float64(sweetLow) && mean <= float64(sweetHigh) {
		return notes
	}

	octaves := int(math.Round((float64(center) - mean) / 12.0))
	if octaves == 0 {
		return notes
	}

	shifted := make([]int, len(notes))
	for i, note := range notes {
		shifted[i] = note + octaves*12
	}
	return shifted
}

// TightenSpread raises the bass one octave when the gap between the bass and
// the next-lowest voice exceeds maxSpread, as long as the raised bass stays
// below that voice. Notes must be sorted ascending.
func TightenSpread(notes []int, maxSpread int) []int {
	if len(notes) < 2 {
		return notes
	}
	if notes[1]-notes[0] > maxSpread && notes[0]+12 < notes[1] {
		notes[0] += 12
	}
	return notes
}

// ClampToRegister wraps each note by octaves into [low, high]. Octave
// arithmetic always succeeds, so out-of-range notes are re-wrapped rather
// than rejected.
func ClampToRegister(notes []int, low, high int) []int {
	for i, note := range notes {
		for note < low {
			note += 12
		}
		for note > high {
			note -= 12
		}
		notes[i] = note
	}
	return notes
}

// Spread returns the interval between the lowest and highest note of a voicing
func Spread(notes []int) int {
	if len(notes) == 0 {
		return 0
	}
	values := make([]float64, len(notes))
	for i, note := range notes {
		values[i] = float64(note)
	}
	return int(floats.Max(values) - floats.Min(values))
}

func meanOf(notes []int) float64 {
	values := make([]float64, len(notes))
	for i, note := range notes {
		values[i] = float64(note)
	}
	return stat.Mean(values, nil)
}
