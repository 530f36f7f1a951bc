package voicelead

import (
	"gonum.org/v1/gonum/stat"
)

// tendencyResolutions maps a voice's interval above the previous chord's root
// to its idiomatic resolution in semitones: sevenths, tritones and flat nines
// fall, raised fifths rise.
var tendencyResolutions = map[int]int{
	10: -1, // b7
	11: -1, // maj7
	6:  -1, // tritone / b5
	1:  -1, // b9
	8:  +1, // #5 / b13
}

// LeadVoices maps a previous voicing onto a target pitch-class set using three
// ordered phases: common-tone retention, tendency-tone resolution, then greedy
// stepwise assignment. Every previous voice yields an output note; target
// pitch classes left over when the new chord is larger are placed near the
// previous voicing's centroid. The result is unsorted and may repeat notes.
func LeadVoices(targetPCs []int, prev []int, prevRoot int) []int {
	if len(prev) == 0 || len(targetPCs) == 0 {
		return nil
	}

	prevRoot = ((prevRoot % 12) + 12) % 12

	inTarget := make(map[int]bool, len(targetPCs))
	for _, pc := range targetPCs {
		inTarget[((pc%12)+12)%12] = true
	}

	result := make([]int, len(prev))
	assigned := make([]bool, len(prev))
	covered := make(map[int]bool, len(targetPCs))

	// Phase 1: common-tone retention. A previous voice already sounding a
	// target pitch class keeps its exact MIDI value.
	for i, note := range prev {
		pc := ((note % 12) + 12) % 12
		if inTarget[pc] {
			result[i] = note
			assigned[i] = true
			covered[pc] = true
		}
	}

	// Phase 2: tendency-tone resolution against the previous chord's root.
	for i, note := range prev {
		if assigned[i] {
			continue
		}
		interval := ((note-prevRoot)%12 + 12) % 12
		delta, isTendency := tendencyResolutions[interval]
		if !isTendency {
			continue
		}
		resolved := note + delta
		pc := ((resolved % 12) + 12) % 12
		if inTarget[pc] && !covered[pc] {
			result[i] = resolved
			assigned[i] = true
			covered[pc] = true
		}
	}

	// Phase 3: greedy stepwise assignment of the remaining target pitch
	// classes to the remaining voices, minimizing absolute MIDI motion.
	var remaining []int
	for _, pc := range targetPCs {
		pc = ((pc % 12) + 12) % 12
		if !covered[pc] {
			remaining = append(remaining, pc)
			covered[pc] = true
		}
	}

	taken := make([]bool, len(remaining))
	for {
		bestVoice, bestTarget, bestNote := -1, -1, 0
		bestDist := 1 << 30
		for i := range prev {
			if assigned[i] {
				continue
			}
			for j, pc := range remaining {
				if taken[j] {
					continue
				}
				note := nearestPlacement(pc, prev[i])
				dist := absInt(note - prev[i])
				if dist < bestDist {
					bestDist = dist
					bestVoice, bestTarget, bestNote = i, j, note
				}
			}
		}
		if bestVoice < 0 {
			break
		}
		result[bestVoice] = bestNote
		assigned[bestVoice] = true
		taken[bestTarget] = true
	}

	// Voices with no target left repeat their previous note rather than
	// dropping out.
	for i := range prev {
		if !assigned[i] {
			result[i] = prev[i]
		}
	}

	// Leftover target pitch classes land near the previous centroid.
	prevFloat := make([]float64, len(prev))
	for i, note := range prev {
		prevFloat[i] = float64(note)
	}
	centroid := int(stat.Mean(prevFloat, nil) + 0.5)
	for j, pc := range remaining {
		if !taken[j] {
			result = append(result, nearestPlacement(pc, centroid))
		}
	}

	return result
}

// nearestPlacement returns the MIDI note of pitch class pc closest to anchor,
// checking the three nearest octave placements.
func nearestPlacement(pc, anchor int) int {
	pc = ((pc % 12) + 12) % 12
	base := anchor - ((anchor%12)-pc+12)%12 // placement at or below anchor
	best := base
	bestDist := absInt(base - anchor)
	for _, candidate := range []int{base - 12, base + 12} {
		if d := absInt(candidate - anchor); d < bestDist {
			best = candidate
			bestDist = d
		}
	}
	return best
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
