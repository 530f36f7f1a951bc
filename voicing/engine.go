package voicing

import (
	"sort"

	"github.com/RyanBlaney/sonido-voicing/harmony/analysis"
	"github.com/RyanBlaney/sonido-voicing/harmony/modulation"
	"github.com/RyanBlaney/sonido-voicing/harmony/suggest"
	"github.com/RyanBlaney/sonido-voicing/harmony/theory"
	"github.com/RyanBlaney/sonido-voicing/harmony/voicelead"
	"github.com/RyanBlaney/sonido-voicing/logging"
	"github.com/RyanBlaney/sonido-voicing/voicing/config"
)

// Engine is the harmonic voicing and voice-leading engine. It holds only
// static tables and configuration; all per-session mutable state lives in a
// caller-owned Context, so multiple independent performance surfaces can
// share one Engine safely.
type Engine struct {
	cfg    *config.EngineConfig
	logger logging.Logger
}

// NewEngine creates a new engine with the given configuration.
// A nil configuration selects the defaults.
func NewEngine(cfg *config.EngineConfig) *Engine {
	if cfg == nil {
		cfg = config.DefaultEngineConfig()
	}
	return &Engine{
		cfg: cfg,
		logger: logging.WithFields(logging.Fields{
			"component": "voicing_engine",
		}),
	}
}

// VoiceChord turns a chord request into a concrete voicing: an ascending list
// of MIDI notes inside the playable register. prev is the previous voicing
// (empty to build from scratch) and prevRoot is the previous chord's root
// pitch class; a nil prevRoot falls back to 0 (C), which matters because a
// literal root of 0 is itself legitimate.
//
// The only empty result is a quality with no interval template.
func (e *Engine) VoiceChord(root int, quality theory.Quality, voicingType Type, prev []int, octaveOffset int, prevRoot *int) []int {
	intervals, ok := theory.Intervals(quality)
	if !ok {
		e.logger.Warn("unknown chord quality", logging.Fields{
			"function": "VoiceChord",
			"quality":  int(quality),
		})
		return []int{}
	}

	root = ((root % 12) + 12) % 12
	pcs := make([]int, len(intervals))
	for i, interval := range intervals {
		pcs[i] = (root + interval) % 12
	}

	previousRoot := 0
	if prevRoot != nil {
		previousRoot = ((*prevRoot % 12) + 12) % 12
	}

	prevSorted := append([]int(nil), prev...)
	sort.Ints(prevSorted)

	var notes []int
	switch voicingType {
	case TypeDrop2:
		notes = e.dropVoicing(pcs, prevSorted, previousRoot, 2)
	case TypeDrop3:
		notes = e.dropVoicing(pcs, prevSorted, previousRoot, 3)
	case TypeOpen:
		notes = e.openVoicing(pcs, prevSorted)
	case TypeRootlessA:
		notes = e.rootlessVoicing(root, pcs, prevSorted, previousRoot, false)
	case TypeRootlessB:
		notes = e.rootlessVoicing(root, pcs, prevSorted, previousRoot, true)
	case TypeQuartal:
		notes = e.quartalVoicing(pcs, prevSorted)
	case TypeTriad:
		triadIntervals := theory.IntervalsOrMajor(theory.TriadOf(quality))
		triadPCs := make([]int, len(triadIntervals))
		for i, interval := range triadIntervals {
			triadPCs[i] = (root + interval) % 12
		}
		notes = e.closeVoicing(triadPCs, prevSorted, previousRoot)
	default:
		notes = e.closeVoicing(pcs, prevSorted, previousRoot)
	}

	reg := e.cfg.Register
	notes = voicelead.ApplyRegisterGravity(notes, reg.SweetLow, reg.SweetHigh, reg.GravityCenter)

	sort.Ints(notes)
	notes = dedupSorted(notes)
	notes = voicelead.TightenSpread(notes, reg.MaxSpread)

	for i := range notes {
		notes[i] += octaveOffset * 12
	}
	notes = voicelead.ClampToRegister(notes, reg.Low, reg.High)

	sort.Ints(notes)
	notes = dedupSorted(notes)

	e.logger.Debug("voiced chord", logging.Fields{
		"function":     "VoiceChord",
		"root":         root,
		"quality":      theory.GetQualityName(quality),
		"voicing_type": GetTypeName(voicingType),
		"notes":        notes,
	})
	return notes
}

// GridChord resolves a grid cell to a chord descriptor
func (e *Engine) GridChord(row, col, key int, mode theory.Mode, chromaticOverride *int) theory.Chord {
	return theory.GridChord(row, col, key, mode, chromaticOverride)
}

// GlowGrid refreshes the shared-tone heat map for a reference chord
func (e *Engine) GlowGrid(referencePCs []int, key int, mode theory.Mode, chromaticOverride *int) analysis.GlowGrid {
	return analysis.ComputeGlowGrid(referencePCs, key, mode, chromaticOverride)
}

// Suggestions produces the safe/color/surprise next-chord candidates
func (e *Engine) Suggestions(currentRoot int, currentQuality theory.Quality, key int, mode theory.Mode, recentRoots []int) suggest.Suggestion {
	return suggest.Suggestions(currentRoot, currentQuality, key, mode, recentRoots)
}

// ContextChords builds the 16-entry quadrant-organized context set
func (e *Engine) ContextChords(currentRoot int, currentQuality theory.Quality, key int, mode theory.Mode) [suggest.ContextChordCount]suggest.ContextChord {
	return suggest.ContextChords(currentRoot, currentQuality, key, mode)
}

// DetectModulation inspects the previous and current chord for a ii-V or
// IV-V pattern targeting a different key. A nil result means no modulation.
func (e *Engine) DetectModulation(prevRoot int, prevQuality theory.Quality, curRoot int, curQuality theory.Quality, curKey int, mode theory.Mode) *modulation.Result {
	result := modulation.Detect(prevRoot, prevQuality, curRoot, curQuality, curKey, mode)
	if result != nil {
		e.logger.Debug("modulation detected", logging.Fields{
			"function":   "DetectModulation",
			"new_key":    result.NewKey,
			"confidence": modulation.GetConfidenceName(result.Confidence),
		})
	}
	return result
}

// dedupSorted removes repeated notes from a sorted voicing so the result is
// strictly ascending.
func dedupSorted(notes []int) []int {
	if len(notes) < 2 {
		return notes
	}
	out := notes[:1]
	for _, note := range notes[1:] {
		if note != out[len(out)-1] {
			out = append(out, note)
		}
	}
	return out
}
