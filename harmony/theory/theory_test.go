package theory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModeBrightnessChain(t *testing.T) {
	// Adjacent modes in the brightest-to-darkest ordering differ by exactly
	// one scale tone.
	for mode := ModeLydian; mode < ModeLocrian; mode++ {
		brighter := ModeIntervals(mode)
		darker := ModeIntervals(mode + 1)

		diffs := 0
		for degree := 0; degree < 7; degree++ {
			if brighter[degree] != darker[degree] {
				diffs++
			}
		}
		assert.Equal(t, 1, diffs, "modes %s and %s should differ in one degree",
			GetModeName(mode), GetModeName(mode+1))
	}
}

func TestDiatonicSeventhIonian(t *testing.T) {
	expected := []Quality{
		QualityMaj7, QualityMin7, QualityMin7, QualityMaj7,
		QualityDom7, QualityMin7, QualityHalfDim7,
	}
	for degree, want := range expected {
		assert.Equal(t, want, DiatonicSeventh(ModeIonian, degree), "degree %d", degree)
	}
}

func TestNewChord(t *testing.T) {
	tests := []struct {
		name     string
		root     int
		quality  Quality
		wantPCs  []int
		wantName string
	}{
		{
			name:     "C major 7th",
			root:     0,
			quality:  QualityMaj7,
			wantPCs:  []int{0, 4, 7, 11},
			wantName: "Cmaj7",
		},
		{
			name:     "D minor 7th",
			root:     2,
			quality:  QualityMin7,
			wantPCs:  []int{2, 5, 9, 0},
			wantName: "Dm7",
		},
		{
			name:     "A flat dominant 9th",
			root:     8,
			quality:  QualityDom9,
			wantPCs:  []int{8, 0, 3, 6, 10},
			wantName: "G#9",
		},
		{
			name:     "negative root wraps",
			root:     -3,
			quality:  QualityMinor,
			wantPCs:  []int{9, 0, 4},
			wantName: "Am",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chord := NewChord(tt.root, tt.quality)
			assert.Equal(t, tt.wantPCs, chord.PitchClasses)
			assert.Equal(t, tt.wantName, chord.Name)
		})
	}
}

func TestNewChordUnknownQualityFallsBackToMajor(t *testing.T) {
	chord := NewChord(0, QualityUnknown)
	assert.Equal(t, []int{0, 4, 7}, chord.PitchClasses)
}

func TestGridChordFixedRows(t *testing.T) {
	// Row 2 is the dom7 row; column 0 is the tonic degree.
	chord := GridChord(2, 0, 0, ModeIonian, nil)
	require.Equal(t, 0, chord.Root)
	require.Equal(t, QualityDom7, chord.Quality)
	assert.Equal(t, []int{0, 4, 7, 10}, chord.PitchClasses)
}

func TestGridChordDiatonicColumns(t *testing.T) {
	// Row 0 (maj7) across the diatonic columns of C ionian.
	wantRoots := []int{0, 2, 4, 5, 7, 9, 11}
	for col, want := range wantRoots {
		chord := GridChord(0, col, 0, ModeIonian, nil)
		assert.Equal(t, want, chord.Root, "column %d", col)
		assert.Equal(t, QualityMaj7, chord.Quality)
	}
}

func TestGridChordChromaticColumn(t *testing.T) {
	chord := GridChord(0, 7, 0, ModeIonian, nil)
	assert.Equal(t, 1, chord.Root, "defaults to flat-II")

	override := 6
	chord = GridChord(0, 7, 0, ModeIonian, &override)
	assert.Equal(t, 6, chord.Root)
}

func TestGridChordContextRow(t *testing.T) {
	tests := []struct {
		name string
		col  int
		want Quality
	}{
		{name: "major degree gets sus2", col: 0, want: QualitySus2},
		{name: "minor degree gets dim7", col: 1, want: QualityDim7},
		{name: "diminished degree gets altered dominant", col: 6, want: QualityAltered},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chord := GridChord(7, tt.col, 0, ModeIonian, nil)
			assert.Equal(t, tt.want, chord.Quality)
		})
	}
}

func TestTriadOf(t *testing.T) {
	assert.Equal(t, QualityMajor, TriadOf(QualityDom13))
	assert.Equal(t, QualityMinor, TriadOf(QualityMin9))
	assert.Equal(t, QualityDiminished, TriadOf(QualityHalfDim7))
	assert.Equal(t, QualityAugmented, TriadOf(QualityAug7))
	assert.Equal(t, QualityMajor, TriadOf(QualityUnknown))
}

func TestQualityFamilies(t *testing.T) {
	assert.True(t, IsDominantFamily(QualityDom7))
	assert.True(t, IsDominantFamily(QualityAltered))
	assert.False(t, IsDominantFamily(QualityMaj7))

	assert.True(t, IsMinorFamily(QualityMin11))
	assert.False(t, IsMinorFamily(QualityDom7))

	assert.True(t, IsMajorFamily(QualityMaj9))
	assert.False(t, IsMajorFamily(QualityMin7))
}

func TestIntervalsUnknownQuality(t *testing.T) {
	_, ok := Intervals(QualityUnknown)
	assert.False(t, ok)
}
