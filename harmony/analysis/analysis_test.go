package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RyanBlaney/sonido-voicing/harmony/theory"
)

func TestSharedNotes(t *testing.T) {
	tests := []struct {
		name string
		a    []int
		b    []int
		want int
	}{
		{name: "identical sets", a: []int{0, 4, 7, 10}, b: []int{0, 4, 7, 10}, want: 4},
		{name: "tritone sub guide tones", a: []int{7, 11, 2, 5}, b: []int{1, 5, 8, 11}, want: 2},
		{name: "disjoint", a: []int{0, 4, 7}, b: []int{1, 5, 8}, want: 0},
		{name: "duplicates ignored", a: []int{0, 12, 24}, b: []int{0}, want: 1},
		{name: "negative pitch classes wrap", a: []int{-5}, b: []int{7}, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SharedNotes(tt.a, tt.b))
			assert.Equal(t, SharedNotes(tt.a, tt.b), SharedNotes(tt.b, tt.a), "must be commutative")
		})
	}
}

func TestComputeGlowGrid(t *testing.T) {
	// Reference chord C7 against the C ionian grid: the cell that reproduces
	// it exactly glows at full level, an unrelated distant cell stays dark.
	grid := ComputeGlowGrid([]int{0, 4, 7, 10}, 0, theory.ModeIonian, nil)

	assert.Equal(t, MaxGlow, grid[2][0], "the C7 cell itself")
	assert.Equal(t, 0, grid[1][6], "Bm7 shares nothing with C7")

	for row := 0; row < theory.GridRows; row++ {
		for col := 0; col < theory.GridCols; col++ {
			assert.GreaterOrEqual(t, grid[row][col], 0)
			assert.LessOrEqual(t, grid[row][col], MaxGlow)
		}
	}
}

func TestSecondaryDominant(t *testing.T) {
	chord := SecondaryDominant(0)
	assert.Equal(t, 7, chord.Root)
	assert.Equal(t, theory.QualityDom7, chord.Quality)
}

func TestTritoneSub(t *testing.T) {
	sub := TritoneSub(7)
	assert.Equal(t, 1, sub.Root)
	assert.Equal(t, theory.QualityDom7, sub.Quality)

	// Guide tones (3rd and 7th) are shared between a dominant and its sub.
	original := theory.NewChord(7, theory.QualityDom7)
	assert.GreaterOrEqual(t, SharedNotes(original.PitchClasses, sub.PitchClasses), 2)
}

func TestNeoRiemannianTransforms(t *testing.T) {
	tests := []struct {
		name        string
		got         theory.Chord
		wantRoot    int
		wantQuality theory.Quality
	}{
		{name: "P of C major", got: Parallel(0, false), wantRoot: 0, wantQuality: theory.QualityMinor},
		{name: "P of C minor", got: Parallel(0, true), wantRoot: 0, wantQuality: theory.QualityMajor},
		{name: "R of C major", got: Relative(0, false), wantRoot: 9, wantQuality: theory.QualityMinor},
		{name: "R of A minor", got: Relative(9, true), wantRoot: 0, wantQuality: theory.QualityMajor},
		{name: "L of C major", got: Leading(0, false), wantRoot: 4, wantQuality: theory.QualityMinor},
		{name: "L of E minor", got: Leading(4, true), wantRoot: 0, wantQuality: theory.QualityMajor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantRoot, tt.got.Root)
			assert.Equal(t, tt.wantQuality, tt.got.Quality)
		})
	}
}

func TestChromaticMediants(t *testing.T) {
	mediants := ChromaticMediants(0, theory.QualityMaj7)
	require.Len(t, mediants, 4)

	wantRoots := []int{4, 8, 3, 9}
	for i, mediant := range mediants {
		assert.Equal(t, wantRoots[i], mediant.Root)
		assert.Equal(t, theory.QualityMajor, mediant.Quality, "major color kept")
	}

	minorMediants := ChromaticMediants(0, theory.QualityMin9)
	for _, mediant := range minorMediants {
		assert.Equal(t, theory.QualityMinor, mediant.Quality, "minor color kept")
	}
}

func TestModalInterchange(t *testing.T) {
	// C ionian borrows from C aeolian: degrees 2, 5 and 6 differ,
	// yielding Ebmaj7, Abmaj7 and Bb7.
	borrowed := ModalInterchange(0, theory.ModeIonian)
	require.Len(t, borrowed, 3)

	assert.Equal(t, 2, borrowed[0].Degree)
	assert.Equal(t, 3, borrowed[0].Chord.Root)
	assert.Equal(t, theory.QualityMaj7, borrowed[0].Chord.Quality)

	assert.Equal(t, 5, borrowed[1].Degree)
	assert.Equal(t, 8, borrowed[1].Chord.Root)
	assert.Equal(t, theory.QualityMaj7, borrowed[1].Chord.Quality)

	assert.Equal(t, 6, borrowed[2].Degree)
	assert.Equal(t, 10, borrowed[2].Chord.Root)
	assert.Equal(t, theory.QualityDom7, borrowed[2].Chord.Quality)
}

func TestInterchangePartner(t *testing.T) {
	assert.Equal(t, theory.ModeAeolian, InterchangePartner(theory.ModeIonian))
	assert.Equal(t, theory.ModeAeolian, InterchangePartner(theory.ModeLydian))
	assert.Equal(t, theory.ModeIonian, InterchangePartner(theory.ModeAeolian))
	assert.Equal(t, theory.ModeIonian, InterchangePartner(theory.ModeDorian))
}
