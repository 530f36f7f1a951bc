package theory

// Chord describes a concrete chord: a root pitch class, a quality, and the
// pitch-class set they imply. Chords are value types recomputed on demand.
type Chord struct {
	Root         int     `json:"root"`          // Root pitch class (0=C, 1=C#, ..., 11=B)
	Quality      Quality `json:"quality"`       // Chord quality
	PitchClasses []int   `json:"pitch_classes"` // (root + interval) mod 12, template order
	Name         string  `json:"name"`          // Display name, e.g. "Dm7"
}

var noteNames = []string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// NoteName returns the display name of a pitch class
func NoteName(pitchClass int) string {
	return noteNames[((pitchClass%12)+12)%12]
}

// NewChord builds a chord descriptor from a root pitch class and a quality.
// Unrecognized qualities fall back to a plain major triad.
func NewChord(root int, quality Quality) Chord {
	root = ((root % 12) + 12) % 12
	intervals := IntervalsOrMajor(quality)

	pcs := make([]int, len(intervals))
	for i, interval := range intervals {
		pcs[i] = (root + interval) % 12
	}

	return Chord{
		Root:         root,
		Quality:      quality,
		PitchClasses: pcs,
		Name:         NoteName(root) + GetQualityName(quality),
	}
}

// Contains reports whether a pitch class belongs to the chord
func (c Chord) Contains(pitchClass int) bool {
	pitchClass = ((pitchClass % 12) + 12) % 12
	for _, pc := range c.PitchClasses {
		if pc == pitchClass {
			return true
		}
	}
	return false
}
