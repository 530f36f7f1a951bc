package modulation

import (
	"github.com/RyanBlaney/sonido-voicing/harmony/theory"
)

// Confidence grades a detected modulation
type Confidence int

const (
	ConfidenceStrong Confidence = iota
	ConfidenceModerate
)

// Result reports a detected key change
type Result struct {
	NewKey     int        `json:"new_key"`    // Pitch class of the discovered key
	Confidence Confidence `json:"confidence"` // Strong for ii-V, moderate for IV-V
}

// Detect inspects a two-chord history and decides whether a ii-V or IV-V
// pattern targeting a different key has occurred. The current chord must be
// dominant-family; the key it resolves into is a perfect fourth above its
// root. A nil result means no modulation.
//
// The previous chord's function is checked against all seven mode tables so a
// performer playing in any mode can land the pattern: a diatonic ii match
// (minor-family) is strong, a IV match (major-family) is moderate.
func Detect(prevRoot int, prevQuality theory.Quality, curRoot int, curQuality theory.Quality, curKey int, mode theory.Mode) *Result {
	if !theory.IsDominantFamily(curQuality) {
		return nil
	}

	curRoot = ((curRoot % 12) + 12) % 12
	prevRoot = ((prevRoot % 12) + 12) % 12
	curKey = ((curKey % 12) + 12) % 12

	targetKey := (curRoot + 5) % 12
	if targetKey == curKey {
		return nil
	}

	if theory.IsMinorFamily(prevQuality) && matchesDegree(prevRoot, targetKey, 1) {
		return &Result{NewKey: targetKey, Confidence: ConfidenceStrong}
	}
	if theory.IsMajorFamily(prevQuality) && matchesDegree(prevRoot, targetKey, 3) {
		return &Result{NewKey: targetKey, Confidence: ConfidenceModerate}
	}
	return nil
}

// matchesDegree reports whether root sits on the given degree of targetKey in
// any of the seven modes.
func matchesDegree(root, targetKey, degree int) bool {
	for mode := theory.ModeLydian; mode <= theory.ModeLocrian; mode++ {
		if theory.DegreePitchClass(targetKey, mode, degree) == root {
			return true
		}
	}
	return false
}

// GetConfidenceName returns the human-readable name for a confidence grade
func GetConfidenceName(confidence Confidence) string {
	switch confidence {
	case ConfidenceStrong:
		return "strong"
	case ConfidenceModerate:
		return "moderate"
	}
	return "unknown"
}
