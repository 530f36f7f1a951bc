package voicelead

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeadVoicesCommonToneRetention(t *testing.T) {
	// Cmaj7 close voicing to Dm7: the shared C stays at its exact MIDI value
	// and every other voice moves by at most a third.
	prev := []int{48, 52, 55, 59}
	got := LeadVoices([]int{2, 5, 9, 0}, prev, 0)

	require.Len(t, got, 4)
	assert.Equal(t, []int{48, 53, 57, 62}, got)
}

func TestLeadVoicesTendencyResolution(t *testing.T) {
	// Bb over a C root is a b7; it resolves down a semitone to A when the
	// target chord contains that pitch class.
	got := LeadVoices([]int{9}, []int{58}, 0)
	require.Len(t, got, 1)
	assert.Equal(t, 57, got[0])
}

func TestLeadVoicesNeverDropsVoices(t *testing.T) {
	// Four voices onto a two-pitch-class target: the uncovered voices repeat
	// their previous notes instead of dropping out.
	prev := []int{48, 52, 55, 59}
	got := LeadVoices([]int{2, 7}, prev, 0)

	require.Len(t, got, 4)
	assert.Equal(t, []int{50, 52, 55, 59}, got)
}

func TestLeadVoicesGrowsNearCentroid(t *testing.T) {
	// One voice onto a triad: the two leftover pitch classes land near the
	// previous centroid instead of defaulting to a fixed octave.
	got := LeadVoices([]int{0, 4, 7}, []int{60}, 0)

	require.Len(t, got, 3)
	sort.Ints(got)
	assert.Equal(t, []int{55, 60, 64}, got)
	for _, note := range got {
		assert.LessOrEqual(t, absInt(note-60), 7)
	}
}

func TestLeadVoicesEmptyInputs(t *testing.T) {
	assert.Nil(t, LeadVoices(nil, []int{60}, 0))
	assert.Nil(t, LeadVoices([]int{0}, nil, 0))
}

func TestLeadBass(t *testing.T) {
	tests := []struct {
		name     string
		rootPC   int
		prevBass int
		want     int
	}{
		{name: "common tone stays put", rootPC: 0, prevBass: 48, want: 48},
		{name: "fifth motion goes down", rootPC: 7, prevBass: 48, want: 43},
		{name: "fourth motion goes up", rootPC: 5, prevBass: 48, want: 53},
		{name: "stepwise beats the leap", rootPC: 2, prevBass: 48, want: 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LeadBass(tt.rootPC, tt.prevBass, DefaultBassLow, DefaultBassHigh)
			assert.Equal(t, tt.want, got)
			assert.GreaterOrEqual(t, got, DefaultBassLow)
			assert.LessOrEqual(t, got, DefaultBassHigh)
		})
	}
}

func TestLeadBassNarrowRegisterFallback(t *testing.T) {
	got := LeadBass(6, 48, 40, 41)
	assert.Equal(t, 6, ((got%12)+12)%12)
}

func TestApplyRegisterGravity(t *testing.T) {
	high := ApplyRegisterGravity([]int{76, 79, 83}, DefaultSweetLow, DefaultSweetHigh, DefaultGravityCenter)
	assert.Equal(t, []int{52, 55, 59}, high, "high voicing pulled down by whole octaves")

	comfortable := ApplyRegisterGravity([]int{48, 52, 55}, DefaultSweetLow, DefaultSweetHigh, DefaultGravityCenter)
	assert.Equal(t, []int{48, 52, 55}, comfortable, "sweet-zone voicing untouched")
}

func TestTightenSpread(t *testing.T) {
	wide := TightenSpread([]int{30, 55, 58}, DefaultMaxSpread)
	assert.Equal(t, []int{42, 55, 58}, wide)

	narrow := TightenSpread([]int{48, 55, 59}, DefaultMaxSpread)
	assert.Equal(t, []int{48, 55, 59}, narrow)
}

func TestClampToRegister(t *testing.T) {
	got := ClampToRegister([]int{20, 90}, DefaultRegisterLow, DefaultRegisterHigh)
	assert.Equal(t, []int{32, 78}, got)
}

func TestSpread(t *testing.T) {
	assert.Equal(t, 19, Spread([]int{40, 52, 59}))
	assert.Equal(t, 0, Spread(nil))
}
