package analysis

import (
	"github.com/RyanBlaney/sonido-voicing/harmony/theory"
)

// BorrowedChord is a modal-interchange candidate: a diatonic chord from the
// current mode's opposite-brightness partner whose degree differs from the
// current mode.
type BorrowedChord struct {
	Degree int          `json:"degree"` // Scale degree (0-6) the chord is borrowed for
	Chord  theory.Chord `json:"chord"`  // The borrowed chord
}

// InterchangePartner returns the mode a given mode borrows from: major-family
// modes borrow from Aeolian, everything else borrows from Ionian.
func InterchangePartner(mode theory.Mode) theory.Mode {
	if theory.IsMajorFamilyMode(mode) {
		return theory.ModeAeolian
	}
	return theory.ModeIonian
}

// ModalInterchange compares each degree of the current mode against the same
// degree of its opposite-brightness partner and offers the partner's diatonic
// seventh chord wherever the scale interval differs.
func ModalInterchange(key int, mode theory.Mode) []BorrowedChord {
	partner := InterchangePartner(mode)
	own := theory.ModeIntervals(mode)
	other := theory.ModeIntervals(partner)

	var borrowed []BorrowedChord
	for degree := 0; degree < 7; degree++ {
		if own[degree] == other[degree] {
			continue
		}
		root := theory.DegreePitchClass(key, partner, degree)
		quality := theory.DiatonicSeventh(partner, degree)
		borrowed = append(borrowed, BorrowedChord{
			Degree: degree,
			Chord:  theory.NewChord(root, quality),
		})
	}
	return borrowed
}
