package voicing

import (
	"sort"

	"github.com/RyanBlaney/sonido-voicing/harmony/voicelead"
)

// The eight voicing constructions. Each returns raw, possibly unsorted notes;
// the VoiceChord pipeline applies register gravity, spread tightening, octave
// offset and clamping afterwards.

// closeVoicing stacks the chord tones in close position. From scratch the
// stack sits near the default register center; against a previous voicing the
// bass is led independently and the remaining tones are voice-led over the
// full previous voicing, so sounding common tones stay under the fingers.
func (e *Engine) closeVoicing(pcs, prev []int, prevRoot int) []int {
	if len(pcs) == 0 {
		return nil
	}
	if len(prev) == 0 {
		return e.stackFromScratch(pcs)
	}

	reg := e.cfg.Register
	bass := voicelead.LeadBass(pcs[0], prev[0], reg.BassLow, reg.BassHigh)
	notes := voicelead.LeadVoices(pcs, prev, prevRoot)
	return append(notes, bass)
}

// dropVoicing builds a four-note close-position chord, then moves the
// 2nd-from-top (drop2) or 3rd-from-top (drop3) note down an octave. With a
// previous voicing the stack is anchored near the previous centroid and the
// resulting bass voice is led independently.
func (e *Engine) dropVoicing(pcs, prev []int, prevRoot, drop int) []int {
	if len(pcs) < 4 {
		// Not enough tones to drop from; close position covers it.
		return e.closeVoicing(pcs, prev, prevRoot)
	}

	notes := e.stackFromScratch(pcs[:4])
	if len(prev) > 0 {
		notes = shiftTowardAnchor(notes, centroid(prev))
	}

	index := len(notes) - drop
	if index >= 0 && index < len(notes) {
		notes[index] -= 12
	}
	sort.Ints(notes)

	if len(prev) > 0 {
		reg := e.cfg.Register
		bassPC := ((notes[0] % 12) + 12) % 12
		notes[0] = voicelead.LeadBass(bassPC, prev[0], reg.BassLow, reg.BassHigh)
	}
	return notes
}

// openVoicing spreads up to five notes: an independently-led bass and upper
// voices target-centered roughly a fifth apart through the alto-soprano
// register. When bass and soprano would move in parallel against the previous
// voicing, the soprano is octave-shifted the other way; if that would collide
// with the alto, the bass is octave-shifted against its motion instead.
func (e *Engine) openVoicing(pcs, prev []int) []int {
	if len(pcs) == 0 {
		return nil
	}

	reg := e.cfg.Register
	var bass int
	if len(prev) > 0 {
		bass = voicelead.LeadBass(pcs[0], prev[0], reg.BassLow, reg.BassHigh)
	} else {
		bass = placeNear(pcs[0], reg.BassLow+5)
	}

	uppers := pcs[1:]
	if len(uppers) > 4 {
		uppers = uppers[:4]
	}

	notes := []int{bass}
	center := e.cfg.OpenAltoCenter
	for _, pc := range uppers {
		notes = append(notes, placeNear(pc, center))
		center += e.cfg.OpenVoiceSpacing
	}

	// Prefer contrary or oblique motion between the outer voices.
	if len(prev) >= 2 && len(notes) >= 2 {
		prevBass, prevSoprano := prev[0], prev[len(prev)-1]
		soprano := notes[len(notes)-1]
		bassDir := sign(bass - prevBass)
		sopranoDir := sign(soprano - prevSoprano)
		if bassDir != 0 && bassDir == sopranoDir {
			shifted := soprano - 12*sopranoDir
			if len(notes) < 3 || shifted > notes[len(notes)-2] {
				notes[len(notes)-1] = shifted
			} else if shiftedBass := bass - 12*bassDir; shiftedBass >= reg.Low && shiftedBass < notes[1] {
				notes[0] = shiftedBass
			}
		}
	}
	return notes
}

// rootlessVoicing omits the root and voices the upper structure as 3-5-7-9
// (form A) or 7-9-3-5 (form B). Chords with fewer than four tones fall back
// to close position. A missing ninth is synthesized a whole step above the
// root.
func (e *Engine) rootlessVoicing(root int, pcs, prev []int, prevRoot int, formB bool) []int {
	if len(pcs) < 4 {
		return e.closeVoicing(pcs, prev, prevRoot)
	}

	third, fifth, seventh := pcs[1], pcs[2], pcs[3]
	ninth := (root + 2) % 12
	if len(pcs) >= 5 {
		ninth = pcs[4]
	}

	order := []int{third, fifth, seventh, ninth}
	if formB {
		order = []int{seventh, ninth, third, fifth}
	}

	if len(prev) > 0 {
		return voicelead.LeadVoices(order, prev, prevRoot)
	}
	return e.stackInOrder(order)
}

// quartalVoicing stacks three voices above an independently-led bass, each
// targeted a perfect fourth above the last and snapped to the nearest chord
// tone.
func (e *Engine) quartalVoicing(pcs, prev []int) []int {
	if len(pcs) == 0 {
		return nil
	}

	reg := e.cfg.Register
	var bass int
	if len(prev) > 0 {
		bass = voicelead.LeadBass(pcs[0], prev[0], reg.BassLow, reg.BassHigh)
	} else {
		bass = placeNear(pcs[0], reg.BassLow+5)
	}

	notes := []int{bass}
	last := bass
	for i := 0; i < 3; i++ {
		target := last + e.cfg.QuartalSpacing
		voice := snapToChordTone(target, pcs)
		for voice <= last {
			voice += 12
		}
		notes = append(notes, voice)
		last = voice
	}
	return notes
}

// stackFromScratch places the first pitch class just above the sweet-zone
// floor and stacks the remaining tones strictly ascending, landing the chord
// near the default register center.
func (e *Engine) stackFromScratch(pcs []int) []int {
	notes := make([]int, 0, len(pcs))
	note := e.cfg.Register.SweetLow + ((pcs[0]%12)+12)%12
	notes = append(notes, note)
	for _, pc := range pcs[1:] {
		step := ((pc-note)%12 + 12) % 12
		if step == 0 {
			step = 12
		}
		note += step
		notes = append(notes, note)
	}
	return notes
}

// stackInOrder stacks pitch classes strictly ascending in the given order,
// anchored near the default register center.
func (e *Engine) stackInOrder(pcs []int) []int {
	notes := make([]int, 0, len(pcs))
	note := placeNear(pcs[0], e.cfg.Register.DefaultCenter-4)
	notes = append(notes, note)
	for _, pc := range pcs[1:] {
		step := ((pc-note)%12 + 12) % 12
		if step == 0 {
			step = 12
		}
		note += step
		notes = append(notes, note)
	}
	return notes
}

// shiftTowardAnchor moves a whole voicing by octaves until its centroid is as
// close to the anchor as an octave shift allows.
func shiftTowardAnchor(notes []int, anchor int) []int {
	if len(notes) == 0 {
		return notes
	}
	octaves := (anchor - centroid(notes)) / 12
	if (anchor-centroid(notes))%12 > 6 {
		octaves++
	} else if (anchor-centroid(notes))%12 < -6 {
		octaves--
	}
	if octaves == 0 {
		return notes
	}
	for i := range notes {
		notes[i] += octaves * 12
	}
	return notes
}

func centroid(notes []int) int {
	sum := 0
	for _, note := range notes {
		sum += note
	}
	return sum / len(notes)
}

// placeNear returns the placement of a pitch class nearest to an anchor note
func placeNear(pc, anchor int) int {
	pc = ((pc % 12) + 12) % 12
	base := anchor - ((anchor%12)-pc+12)%12
	if anchor-base > 6 {
		base += 12
	}
	return base
}

// snapToChordTone returns the chord tone nearest to a target note
func snapToChordTone(target int, pcs []int) int {
	best := target
	bestDist := 1 << 30
	for _, pc := range pcs {
		note := placeNear(pc, target)
		dist := note - target
		if dist < 0 {
			dist = -dist
		}
		if dist < bestDist {
			bestDist = dist
			best = note
		}
	}
	return best
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
