package config

// RegisterConfig bounds the registers the voicing pipeline works in.
// All values are MIDI note numbers.
type RegisterConfig struct {
	Low           int `json:"low"`            // Playable register floor
	High          int `json:"high"`           // Playable register ceiling
	SweetLow      int `json:"sweet_low"`      // Register-gravity zone floor (~C3)
	SweetHigh     int `json:"sweet_high"`     // Register-gravity zone ceiling (~F#4)
	GravityCenter int `json:"gravity_center"` // Octave-shift target (~A3)
	DefaultCenter int `json:"default_center"` // From-scratch anchor (~F#3)
	BassLow       int `json:"bass_low"`       // Bass register floor (~E2)
	BassHigh      int `json:"bass_high"`      // Bass register ceiling (~C4)
	MaxSpread     int `json:"max_spread"`     // Bass-to-tenor gap before tightening
}

// EngineConfig holds all static tuning for the voicing engine
type EngineConfig struct {
	Register RegisterConfig `json:"register"`

	// Open-voicing upper voices are target-centered this far apart,
	// starting from the alto center.
	OpenVoiceSpacing int `json:"open_voice_spacing"`
	OpenAltoCenter   int `json:"open_alto_center"`

	// Quartal voices are targeted this many semitones above the previous
	// voice before snapping to a chord tone.
	QuartalSpacing int `json:"quartal_spacing"`
}

// DefaultEngineConfig returns sensible defaults for the voicing engine
func DefaultEngineConfig() *EngineConfig {
	return &EngineConfig{
		Register: RegisterConfig{
			Low:           28,
			High:          84,
			SweetLow:      48, // C3
			SweetHigh:     66, // F#4
			GravityCenter: 57, // A3
			DefaultCenter: 54, // F#3
			BassLow:       40, // E2
			BassHigh:      60, // C4
			MaxSpread:     19, // octave + fifth
		},
		OpenVoiceSpacing: 7,
		OpenAltoCenter:   55,
		QuartalSpacing:   5,
	}
}
