package voicelead

// Default bass register, roughly E2-C4
const (
	DefaultBassLow  = 40
	DefaultBassHigh = 60
)

// Idiomatic bass motion bonuses. Root motion by fourth or fifth is the
// strongest move, steps are next, and staying put beats everything.
const (
	bonusFourthOrFifth = 3
	bonusStepwise      = 2
	bonusCommonTone    = 4
)

// LeadBass places a new root pitch class against the previous bass note.
// The bass is deliberately not voice-led like the upper voices: every valid
// placement inside the bass register is scored by total motion minus bonuses
// for fourth/fifth motion, stepwise motion and the oblique common tone, and
// the lowest score wins.
func LeadBass(rootPC, prevBass, low, high int) int {
	rootPC = ((rootPC % 12) + 12) % 12

	bestNote := -1
	bestScore := 1 << 30

	for note := low; note <= high; note++ {
		if ((note%12)+12)%12 != rootPC {
			continue
		}

		motion := absInt(note - prevBass)
		score := motion

		switch {
		case motion == 0:
			score -= bonusCommonTone
		case motion%12 == 5 || motion%12 == 7:
			score -= bonusFourthOrFifth
		}
		if motion > 0 && motion <= 2 {
			score -= bonusStepwise
		}

		if score < bestScore {
			bestScore = score
			bestNote = note
		}
	}

	if bestNote < 0 {
		// Register too narrow to hold the pitch class; wrap it in directly.
		bestNote = low + ((rootPC-low)%12+12)%12
	}
	return bestNote
}
