package suggest

import (
	"github.com/RyanBlaney/sonido-voicing/harmony/analysis"
	"github.com/RyanBlaney/sonido-voicing/harmony/theory"
)

// ContextChordCount is the fixed size of the context set: four quadrants of
// four chords each.
const ContextChordCount = 16

// ContextChords builds the fixed 16-entry, quadrant-organized context set for
// the current chord: resolve (functional landings), color (Neo-Riemannian
// transforms and the strongest modal borrow), tension (secondary dominants
// and substitutions), portal (distant jumps that open a new key area). Any
// shortfall is padded with deterministic filler dominants.
func ContextChords(currentRoot int, currentQuality theory.Quality, key int, mode theory.Mode) [ContextChordCount]ContextChord {
	currentRoot = ((currentRoot % 12) + 12) % 12
	key = ((key % 12) + 12) % 12

	entries := make([]ContextChord, 0, ContextChordCount)
	entries = append(entries, resolveQuadrant(currentRoot, currentQuality, key, mode)...)
	entries = append(entries, colorQuadrant(currentRoot, currentQuality, key, mode)...)
	entries = append(entries, tensionQuadrant(currentRoot, key, mode)...)
	entries = append(entries, portalQuadrant(currentRoot, currentQuality)...)

	// Deterministic dominant-seventh filler keeps the surface full even if a
	// quadrant came up short.
	var result [ContextChordCount]ContextChord
	for i := 0; i < ContextChordCount; i++ {
		if i < len(entries) {
			result[i] = entries[i]
			continue
		}
		filler := theory.NewChord(key+7*(i+1), theory.QualityDom7)
		result[i] = contextChord(filler, Quadrant(i/4), "filler")
	}
	return result
}

// resolveQuadrant: strongest functional resolution, IV, vi (or iii), I (or ii, V)
func resolveQuadrant(currentRoot int, currentQuality theory.Quality, key int, mode theory.Mode) []ContextChord {
	entries := make([]ContextChord, 0, 4)

	// The strongest landing: a dominant resolves a fourth up; anything else
	// is pulled home by the primary dominant.
	if theory.IsDominantFamily(currentQuality) {
		target := (currentRoot + 5) % 12
		chord := theory.NewChord(target, theory.QualityMaj7)
		if degree, ok := degreeOf(target, key, mode); ok {
			chord = diatonicChord(key, mode, degree)
		}
		entries = append(entries, contextChord(chord, QuadrantResolve, "resolution"))
	} else {
		root := theory.DegreePitchClass(key, mode, 4)
		entries = append(entries, contextChord(theory.NewChord(root, theory.QualityDom7), QuadrantResolve, "dominant"))
	}

	entries = append(entries, contextChord(diatonicChord(key, mode, 3), QuadrantResolve, "subdominant"))

	vi := diatonicChord(key, mode, 5)
	if vi.Root == currentRoot {
		vi = diatonicChord(key, mode, 2)
	}
	entries = append(entries, contextChord(vi, QuadrantResolve, "relative_minor"))

	tonic := diatonicChord(key, mode, 0)
	if tonic.Root == currentRoot {
		tonic = diatonicChord(key, mode, 1)
		if tonic.Root == currentRoot {
			tonic = diatonicChord(key, mode, 4)
		}
	}
	entries = append(entries, contextChord(tonic, QuadrantResolve, "tonic"))

	return entries
}

// colorQuadrant: the three Neo-Riemannian transforms plus the strongest
// available modal borrow.
func colorQuadrant(currentRoot int, currentQuality theory.Quality, key int, mode theory.Mode) []ContextChord {
	minor := theory.IsMinorFamily(currentQuality)

	entries := []ContextChord{
		contextChord(analysis.Parallel(currentRoot, minor), QuadrantColor, "parallel"),
		contextChord(analysis.Relative(currentRoot, minor), QuadrantColor, "relative"),
		contextChord(analysis.Leading(currentRoot, minor), QuadrantColor, "leading"),
	}

	if borrowed := analysis.ModalInterchange(key, mode); len(borrowed) > 0 {
		entries = append(entries, contextChord(borrowed[0].Chord, QuadrantColor, "borrowed"))
	} else {
		entries = append(entries, contextChord(theory.NewChord(key+8, theory.QualityMaj7), QuadrantColor, "borrowed"))
	}
	return entries
}

// tensionQuadrant: secondary dominant of the current chord, tritone sub of
// the primary dominant (or of the current chord's secondary dominant), the
// secondary dominant of ii (or of vi), and the next dominant in a
// circle-of-fifths chain.
func tensionQuadrant(currentRoot, key int, mode theory.Mode) []ContextChord {
	entries := make([]ContextChord, 0, 4)

	secondary := analysis.SecondaryDominant(currentRoot)
	entries = append(entries, contextChord(secondary, QuadrantTension, "secondary_dominant"))

	primaryV := theory.DegreePitchClass(key, mode, 4)
	sub := analysis.TritoneSub(primaryV)
	if sub.Root == currentRoot {
		sub = analysis.TritoneSub(secondary.Root)
	}
	entries = append(entries, contextChord(sub, QuadrantTension, "tritone_sub"))

	vOfII := analysis.SecondaryDominant(theory.DegreePitchClass(key, mode, 1))
	if vOfII.Root == currentRoot {
		vOfII = analysis.SecondaryDominant(theory.DegreePitchClass(key, mode, 5))
	}
	entries = append(entries, contextChord(vOfII, QuadrantTension, "applied_dominant"))

	chain := theory.NewChord(currentRoot+2, theory.QualityDom7)
	entries = append(entries, contextChord(chain, QuadrantTension, "fifths_chain"))

	return entries
}

// portalQuadrant: major-third jumps up and down, the chromatic slide up, and
// the diminished-seventh bridge a semitone below.
func portalQuadrant(currentRoot int, currentQuality theory.Quality) []ContextChord {
	quality := currentQuality
	if _, ok := theory.Intervals(quality); !ok {
		quality = theory.QualityMajor
	}

	return []ContextChord{
		contextChord(theory.NewChord(currentRoot+4, quality), QuadrantPortal, "third_up"),
		contextChord(theory.NewChord(currentRoot+8, quality), QuadrantPortal, "third_down"),
		contextChord(theory.NewChord(currentRoot+1, quality), QuadrantPortal, "slide"),
		contextChord(theory.NewChord(currentRoot+11, theory.QualityDim7), QuadrantPortal, "dim_bridge"),
	}
}
