package theory

// Grid dimensions for the performance surface
const (
	GridRows = 8
	GridCols = 8
)

// rowQualities maps grid rows 0-6 to their fixed chord qualities.
// Row 7 is context-sensitive; see GridChord.
var rowQualities = [7]Quality{
	QualityMaj7,
	QualityMin7,
	QualityDom7,
	QualityHalfDim7,
	QualityMaj9,
	QualityMin9,
	QualityDom9,
}

// GridChord resolves a grid cell to a chord descriptor.
//
// Columns 0-6 are the diatonic degrees of mode transposed by key. Column 7 is
// chromatic: it defaults to a semitone above the key (flat-II) unless
// chromaticOverride is non-nil. Rows 0-6 select fixed qualities; row 7 derives
// its quality from the diatonic triad that naturally occurs at the column, so
// the tension row stays harmonically plausible: major-family degrees get sus2,
// minor-family degrees get dim7, diminished degrees get an altered dominant,
// anything else gets sus4.
func GridChord(row, col, key int, mode Mode, chromaticOverride *int) Chord {
	row = ((row % GridRows) + GridRows) % GridRows
	col = ((col % GridCols) + GridCols) % GridCols
	key = ((key % 12) + 12) % 12

	var root int
	if col == 7 {
		if chromaticOverride != nil {
			root = ((*chromaticOverride % 12) + 12) % 12
		} else {
			root = (key + 1) % 12
		}
	} else {
		root = DegreePitchClass(key, mode, col)
	}

	if row < 7 {
		return NewChord(root, rowQualities[row])
	}

	// Row 7: quality follows the column's diatonic triad. The chromatic
	// column has no diatonic triad; read it as diminished so it lands on the
	// altered dominant.
	family := TriadDiminished
	if col < 7 {
		family = DiatonicTriad(mode, col)
	}

	switch family {
	case TriadMajor:
		return NewChord(root, QualitySus2)
	case TriadMinor:
		return NewChord(root, QualityDim7)
	case TriadDiminished:
		return NewChord(root, QualityAltered)
	default:
		return NewChord(root, QualitySus4)
	}
}
