package theory

// Mode represents one of the seven diatonic modes
type Mode int

// Modes are ordered brightest to darkest; each adjacent pair differs
// by exactly one scale tone.
const (
	ModeLydian Mode = iota
	ModeIonian
	ModeMixolydian
	ModeDorian
	ModeAeolian
	ModePhrygian
	ModeLocrian
)

// TriadFamily classifies the diatonic triad built on a scale degree
type TriadFamily int

const (
	TriadMajor TriadFamily = iota
	TriadMinor
	TriadDiminished
	TriadAugmented
)

// modeIntervals maps each mode to its seven semitone offsets from the tonic
var modeIntervals = map[Mode][7]int{
	ModeLydian:     {0, 2, 4, 6, 7, 9, 11},
	ModeIonian:     {0, 2, 4, 5, 7, 9, 11},
	ModeMixolydian: {0, 2, 4, 5, 7, 9, 10},
	ModeDorian:     {0, 2, 3, 5, 7, 9, 10},
	ModeAeolian:    {0, 2, 3, 5, 7, 8, 10},
	ModePhrygian:   {0, 1, 3, 5, 7, 8, 10},
	ModeLocrian:    {0, 1, 3, 5, 6, 8, 10},
}

// ModeIntervals returns the seven semitone offsets of a mode from its tonic.
// Unknown modes fall back to Ionian.
func ModeIntervals(mode Mode) [7]int {
	if intervals, ok := modeIntervals[mode]; ok {
		return intervals
	}
	return modeIntervals[ModeIonian]
}

// DegreePitchClass returns the pitch class of a scale degree (0-6) of a mode
// transposed to a key.
func DegreePitchClass(key int, mode Mode, degree int) int {
	intervals := ModeIntervals(mode)
	degree = ((degree % 7) + 7) % 7
	return ((key+intervals[degree])%12 + 12) % 12
}

// DiatonicTriad returns the triad family built by stacking scale thirds
// on a degree of a mode.
func DiatonicTriad(mode Mode, degree int) TriadFamily {
	intervals := ModeIntervals(mode)
	degree = ((degree % 7) + 7) % 7

	root := intervals[degree]
	third := intervals[(degree+2)%7]
	fifth := intervals[(degree+4)%7]

	thirdInterval := ((third-root)%12 + 12) % 12
	fifthInterval := ((fifth-root)%12 + 12) % 12

	switch {
	case thirdInterval == 4 && fifthInterval == 7:
		return TriadMajor
	case thirdInterval == 3 && fifthInterval == 7:
		return TriadMinor
	case thirdInterval == 3 && fifthInterval == 6:
		return TriadDiminished
	case thirdInterval == 4 && fifthInterval == 8:
		return TriadAugmented
	}

	// Suspended or otherwise irregular stacks read as major for grid purposes
	if thirdInterval >= 4 {
		return TriadMajor
	}
	return TriadMinor
}

// DiatonicSeventh returns the seventh-chord quality built by stacking scale
// thirds on a degree of a mode.
func DiatonicSeventh(mode Mode, degree int) Quality {
	intervals := ModeIntervals(mode)
	degree = ((degree % 7) + 7) % 7

	root := intervals[degree]
	seventh := intervals[(degree+6)%7]
	seventhInterval := ((seventh-root)%12 + 12) % 12

	switch DiatonicTriad(mode, degree) {
	case TriadMajor:
		if seventhInterval == 11 {
			return QualityMaj7
		}
		return QualityDom7
	case TriadMinor:
		if seventhInterval == 11 {
			return QualityMinMaj7
		}
		return QualityMin7
	case TriadDiminished:
		if seventhInterval == 9 {
			return QualityDim7
		}
		return QualityHalfDim7
	case TriadAugmented:
		return QualityAug7
	}
	return QualityMaj7
}

// IsMajorFamilyMode reports whether a mode carries a major third above its
// tonic. Major-family modes borrow from Aeolian; the rest borrow from Ionian.
func IsMajorFamilyMode(mode Mode) bool {
	intervals := ModeIntervals(mode)
	return intervals[2] == 4
}

// GetModeName returns the human-readable name for a mode
func GetModeName(mode Mode) string {
	names := map[Mode]string{
		ModeLydian:     "lydian",
		ModeIonian:     "ionian",
		ModeMixolydian: "mixolydian",
		ModeDorian:     "dorian",
		ModeAeolian:    "aeolian",
		ModePhrygian:   "phrygian",
		ModeLocrian:    "locrian",
	}

	if name, exists := names[mode]; exists {
		return name
	}
	return "unknown"
}

// GetSupportedModes returns the list of supported mode names, brightest first
func GetSupportedModes() []string {
	return []string{
		"lydian", "ionian", "mixolydian", "dorian",
		"aeolian", "phrygian", "locrian",
	}
}
