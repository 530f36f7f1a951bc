package analysis

import (
	"github.com/RyanBlaney/sonido-voicing/harmony/theory"
)

// MaxGlow caps the per-cell glow level
const MaxGlow = 3

// GlowGrid is the 8x8 heat map of shared-tone counts between a reference
// chord and every grid chord, each cell clamped to [0, MaxGlow].
type GlowGrid [theory.GridRows][theory.GridCols]int

// SharedNotes counts the pitch classes common to two pitch-class sets.
// It is commutative and ignores duplicates within a set.
func SharedNotes(a, b []int) int {
	inA := make(map[int]bool, len(a))
	for _, pc := range a {
		inA[((pc%12)+12)%12] = true
	}

	seen := make(map[int]bool, len(b))
	count := 0
	for _, pc := range b {
		pc = ((pc % 12) + 12) % 12
		if inA[pc] && !seen[pc] {
			count++
			seen[pc] = true
		}
	}
	return count
}

// ComputeGlowGrid evaluates every grid chord against a reference pitch-class
// set and records min(shared, MaxGlow) per cell, a coarse harmonic-distance
// heat map for the performance surface.
func ComputeGlowGrid(referencePCs []int, key int, mode theory.Mode, chromaticOverride *int) GlowGrid {
	var grid GlowGrid
	for row := 0; row < theory.GridRows; row++ {
		for col := 0; col < theory.GridCols; col++ {
			chord := theory.GridChord(row, col, key, mode, chromaticOverride)
			shared := SharedNotes(referencePCs, chord.PitchClasses)
			if shared > MaxGlow {
				shared = MaxGlow
			}
			grid[row][col] = shared
		}
	}
	return grid
}
