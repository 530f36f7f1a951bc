package suggest

import (
	"github.com/RyanBlaney/sonido-voicing/harmony/analysis"
	"github.com/RyanBlaney/sonido-voicing/harmony/theory"
)

// Quadrant classifies a suggested next chord by harmonic intent
type Quadrant int

const (
	QuadrantResolve Quadrant = iota
	QuadrantColor
	QuadrantTension
	QuadrantPortal
)

// ContextChord is one "next move" candidate with its harmonic intent
type ContextChord struct {
	Chord    theory.Chord `json:"chord"`
	Quadrant Quadrant     `json:"quadrant"`
	Role     string       `json:"role"`  // Descriptive tag, e.g. "tritone_sub"
	Label    string       `json:"label"` // Display label, e.g. "Db7"
}

// Suggestion holds three deliberately distinct next-chord candidates
type Suggestion struct {
	Safe     ContextChord `json:"safe"`
	Color    ContextChord `json:"color"`
	Surprise ContextChord `json:"surprise"`
}

// Suggestions produces three next-chord candidates for the current chord:
// safe follows strict functional logic, color draws from modal interchange
// and chromatic mediants (steered away from recently played roots), and
// surprise reaches for the tritone substitution of the dominant.
func Suggestions(currentRoot int, currentQuality theory.Quality, key int, mode theory.Mode, recentRoots []int) Suggestion {
	currentRoot = ((currentRoot % 12) + 12) % 12
	key = ((key % 12) + 12) % 12

	return Suggestion{
		Safe:     safeSuggestion(currentRoot, key, mode),
		Color:    colorSuggestion(currentRoot, currentQuality, key, mode, recentRoots),
		Surprise: surpriseSuggestion(currentRoot, currentQuality, key, mode),
	}
}

// safeSuggestion follows functional harmony: V resolves to I, ii moves to V,
// I opens to IV, other diatonic degrees descend the circle of fifths, and a
// non-diatonic chord falls by semitones to its nearest diatonic neighbor.
func safeSuggestion(currentRoot, key int, mode theory.Mode) ContextChord {
	degree, diatonic := degreeOf(currentRoot, key, mode)

	if !diatonic {
		root := currentRoot
		for i := 0; i < 12; i++ {
			root = ((root-1)%12 + 12) % 12
			if d, ok := degreeOf(root, key, mode); ok {
				return contextChord(diatonicChord(key, mode, d), QuadrantResolve, "nearest_diatonic")
			}
		}
		return contextChord(theory.NewChord(key, theory.QualityMaj7), QuadrantResolve, "tonic")
	}

	switch degree {
	case 4: // V -> I
		return contextChord(diatonicChord(key, mode, 0), QuadrantResolve, "resolution")
	case 1: // ii -> V
		root := theory.DegreePitchClass(key, mode, 4)
		return contextChord(theory.NewChord(root, theory.QualityDom7), QuadrantResolve, "dominant")
	case 0: // I -> IV
		return contextChord(diatonicChord(key, mode, 3), QuadrantResolve, "subdominant")
	default: // circle-of-fifths descent
		root := (currentRoot + 5) % 12
		if d, ok := degreeOf(root, key, mode); ok {
			return contextChord(diatonicChord(key, mode, d), QuadrantResolve, "fifths_descent")
		}
		return contextChord(theory.NewChord(root, theory.QualityDom7), QuadrantResolve, "fifths_descent")
	}
}

// colorSuggestion picks deterministically from the union of modal-interchange
// and chromatic-mediant candidates, skipping recently played roots for
// variety when that leaves anything to choose from.
func colorSuggestion(currentRoot int, currentQuality theory.Quality, key int, mode theory.Mode, recentRoots []int) ContextChord {
	var pool []theory.Chord
	for _, borrowed := range analysis.ModalInterchange(key, mode) {
		pool = append(pool, borrowed.Chord)
	}
	pool = append(pool, analysis.ChromaticMediants(currentRoot, currentQuality)...)

	recent := make(map[int]bool, len(recentRoots))
	for _, root := range recentRoots {
		recent[((root%12)+12)%12] = true
	}

	var fresh []theory.Chord
	for _, chord := range pool {
		if !recent[chord.Root] {
			fresh = append(fresh, chord)
		}
	}
	if len(fresh) > 0 {
		pool = fresh
	}
	if len(pool) == 0 {
		pool = append(pool, theory.NewChord(key+8, theory.QualityMaj7))
	}

	return contextChord(pool[currentRoot%len(pool)], QuadrantColor, "color")
}

// surpriseSuggestion prefers the tritone substitution of the primary
// dominant, then the secondary dominant of the current root, then a
// whole-step slide.
func surpriseSuggestion(currentRoot int, currentQuality theory.Quality, key int, mode theory.Mode) ContextChord {
	primaryV := theory.DegreePitchClass(key, mode, 4)

	sub := analysis.TritoneSub(primaryV)
	if sub.Root != currentRoot || sub.Quality != currentQuality {
		return contextChord(sub, QuadrantTension, "tritone_sub")
	}

	secondary := analysis.SecondaryDominant(currentRoot)
	if secondary.Root != currentRoot || secondary.Quality != currentQuality {
		return contextChord(secondary, QuadrantTension, "secondary_dominant")
	}

	return contextChord(theory.NewChord(currentRoot+2, currentQuality), QuadrantTension, "whole_step")
}

// degreeOf returns the scale degree of a pitch class in a key/mode
func degreeOf(root, key int, mode theory.Mode) (int, bool) {
	for degree := 0; degree < 7; degree++ {
		if theory.DegreePitchClass(key, mode, degree) == root {
			return degree, true
		}
	}
	return 0, false
}

// diatonicChord builds the stacked-thirds seventh chord on a scale degree
func diatonicChord(key int, mode theory.Mode, degree int) theory.Chord {
	root := theory.DegreePitchClass(key, mode, degree)
	return theory.NewChord(root, theory.DiatonicSeventh(mode, degree))
}

func contextChord(chord theory.Chord, quadrant Quadrant, role string) ContextChord {
	return ContextChord{
		Chord:    chord,
		Quadrant: quadrant,
		Role:     role,
		Label:    chord.Name,
	}
}

// GetQuadrantName returns the human-readable name for a quadrant
func GetQuadrantName(quadrant Quadrant) string {
	names := map[Quadrant]string{
		QuadrantResolve: "resolve",
		QuadrantColor:   "color",
		QuadrantTension: "tension",
		QuadrantPortal:  "portal",
	}
	if name, exists := names[quadrant]; exists {
		return name
	}
	return "unknown"
}
