package analysis

import (
	"github.com/RyanBlaney/sonido-voicing/harmony/theory"
)

// SecondaryDominant returns the dominant seventh that resolves into a target
// root: a dom7 rooted a perfect fifth above it.
func SecondaryDominant(targetRoot int) theory.Chord {
	return theory.NewChord(targetRoot+7, theory.QualityDom7)
}

// TritoneSub returns the tritone substitution of a dominant chord: another
// dominant seventh rooted six semitones away, sharing the same guide tones.
func TritoneSub(dominantRoot int) theory.Chord {
	return theory.NewChord(dominantRoot+6, theory.QualityDom7)
}

// Parallel applies the Neo-Riemannian P transform: same root, flipped
// major/minor quality.
func Parallel(root int, minor bool) theory.Chord {
	if minor {
		return theory.NewChord(root, theory.QualityMajor)
	}
	return theory.NewChord(root, theory.QualityMinor)
}

// Relative applies the Neo-Riemannian R transform: a major chord moves down a
// minor third to its relative minor, a minor chord moves up a minor third to
// its relative major.
func Relative(root int, minor bool) theory.Chord {
	if minor {
		return theory.NewChord(root+3, theory.QualityMajor)
	}
	return theory.NewChord(root+9, theory.QualityMinor)
}

// Leading applies the Neo-Riemannian L transform: a major chord moves up a
// major third into a minor chord, a minor chord moves down a major third
// (up a minor sixth) into a major chord.
func Leading(root int, minor bool) theory.Chord {
	if minor {
		return theory.NewChord(root+8, theory.QualityMajor)
	}
	return theory.NewChord(root+4, theory.QualityMinor)
}

// ChromaticMediants returns the four chromatic-mediant neighbors of a chord:
// roots a major or minor third above and below, keeping the chord's
// major/minor color.
func ChromaticMediants(root int, quality theory.Quality) []theory.Chord {
	triad := theory.TriadOf(quality)
	if triad != theory.QualityMajor && triad != theory.QualityMinor {
		triad = theory.QualityMajor
	}

	offsets := []int{4, 8, 3, 9}
	mediants := make([]theory.Chord, 0, len(offsets))
	for _, offset := range offsets {
		mediants = append(mediants, theory.NewChord(root+offset, triad))
	}
	return mediants
}
