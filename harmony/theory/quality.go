package theory

// Quality represents the quality/type of a chord
type Quality int

const (
	QualityMajor Quality = iota
	QualityMinor
	QualityDiminished
	QualityAugmented
	QualitySus2
	QualitySus4
	QualityMaj6
	QualityMin6
	QualityMaj7
	QualityMin7
	QualityDom7
	QualityHalfDim7
	QualityDim7
	QualityMinMaj7
	QualityAug7
	QualityAdd9
	QualityMaj9
	QualityMin9
	QualityDom9
	QualityDom7Flat9
	QualityDom7Sharp9
	QualityDom7Flat5
	QualityMin11
	QualityMaj7Sharp11
	QualityDom13
	QualityMaj13
	QualityMin13
	QualityAltered
	QualityPower // root and fifth only
	QualityUnknown
)

// qualityIntervals maps each quality to its ordered interval template.
// Intervals are semitones from the root reduced mod 12; order is chord-tone
// order (root, third, fifth, seventh, extensions) and drives voicing layout.
var qualityIntervals = map[Quality][]int{
	QualityMajor:       {0, 4, 7},
	QualityMinor:       {0, 3, 7},
	QualityDiminished:  {0, 3, 6},
	QualityAugmented:   {0, 4, 8},
	QualitySus2:        {0, 2, 7},
	QualitySus4:        {0, 5, 7},
	QualityMaj6:        {0, 4, 7, 9},
	QualityMin6:        {0, 3, 7, 9},
	QualityMaj7:        {0, 4, 7, 11},
	QualityMin7:        {0, 3, 7, 10},
	QualityDom7:        {0, 4, 7, 10},
	QualityHalfDim7:    {0, 3, 6, 10},
	QualityDim7:        {0, 3, 6, 9},
	QualityMinMaj7:     {0, 3, 7, 11},
	QualityAug7:        {0, 4, 8, 10},
	QualityAdd9:        {0, 4, 7, 2},
	QualityMaj9:        {0, 4, 7, 11, 2},
	QualityMin9:        {0, 3, 7, 10, 2},
	QualityDom9:        {0, 4, 7, 10, 2},
	QualityDom7Flat9:   {0, 4, 7, 10, 1},
	QualityDom7Sharp9:  {0, 4, 7, 10, 3},
	QualityDom7Flat5:   {0, 4, 6, 10},
	QualityMin11:       {0, 3, 7, 10, 2, 5},
	QualityMaj7Sharp11: {0, 4, 7, 11, 6},
	QualityDom13:       {0, 4, 7, 10, 2, 9},
	QualityMaj13:       {0, 4, 7, 11, 2, 9},
	QualityMin13:       {0, 3, 7, 10, 2, 9},
	QualityAltered:     {0, 4, 10, 1, 8},
	QualityPower:       {0, 7},
}

// triadReduction maps every quality to its base three-note triad
var triadReduction = map[Quality]Quality{
	QualityMajor:       QualityMajor,
	QualityMinor:       QualityMinor,
	QualityDiminished:  QualityDiminished,
	QualityAugmented:   QualityAugmented,
	QualitySus2:        QualitySus2,
	QualitySus4:        QualitySus4,
	QualityMaj6:        QualityMajor,
	QualityMin6:        QualityMinor,
	QualityMaj7:        QualityMajor,
	QualityMin7:        QualityMinor,
	QualityDom7:        QualityMajor,
	QualityHalfDim7:    QualityDiminished,
	QualityDim7:        QualityDiminished,
	QualityMinMaj7:     QualityMinor,
	QualityAug7:        QualityAugmented,
	QualityAdd9:        QualityMajor,
	QualityMaj9:        QualityMajor,
	QualityMin9:        QualityMinor,
	QualityDom9:        QualityMajor,
	QualityDom7Flat9:   QualityMajor,
	QualityDom7Sharp9:  QualityMajor,
	QualityDom7Flat5:   QualityDiminished,
	QualityMin11:       QualityMinor,
	QualityMaj7Sharp11: QualityMajor,
	QualityDom13:       QualityMajor,
	QualityMaj13:       QualityMajor,
	QualityMin13:       QualityMinor,
	QualityAltered:     QualityMajor,
	QualityPower:       QualityMajor,
}

// Intervals returns the ordered interval template for a quality.
// The second return value is false for qualities with no template.
func Intervals(quality Quality) ([]int, bool) {
	intervals, ok := qualityIntervals[quality]
	return intervals, ok
}

// IntervalsOrMajor returns the interval template for a quality, falling back
// to a plain major triad for unrecognized qualities.
func IntervalsOrMajor(quality Quality) []int {
	if intervals, ok := qualityIntervals[quality]; ok {
		return intervals
	}
	return qualityIntervals[QualityMajor]
}

// TriadOf reduces any extended quality to its base three-note triad.
// Unrecognized qualities reduce to a major triad.
func TriadOf(quality Quality) Quality {
	if triad, ok := triadReduction[quality]; ok {
		return triad
	}
	return QualityMajor
}

// IsDominantFamily reports whether a quality functions as a dominant
func IsDominantFamily(quality Quality) bool {
	switch quality {
	case QualityDom7, QualityDom9, QualityDom13,
		QualityDom7Flat9, QualityDom7Sharp9, QualityDom7Flat5,
		QualityAltered, QualityAug7:
		return true
	}
	return false
}

// IsMinorFamily reports whether a quality carries a minor third
func IsMinorFamily(quality Quality) bool {
	switch quality {
	case QualityMinor, QualityMin6, QualityMin7, QualityMin9,
		QualityMin11, QualityMin13, QualityMinMaj7, QualityHalfDim7:
		return true
	}
	return false
}

// IsMajorFamily reports whether a quality carries a major third and no
// dominant seventh
func IsMajorFamily(quality Quality) bool {
	switch quality {
	case QualityMajor, QualityMaj6, QualityMaj7, QualityMaj9,
		QualityMaj13, QualityMaj7Sharp11, QualityAdd9:
		return true
	}
	return false
}

// GetQualityName returns the human-readable name for a chord quality
func GetQualityName(quality Quality) string {
	names := map[Quality]string{
		QualityMajor:       "",
		QualityMinor:       "m",
		QualityDiminished:  "dim",
		QualityAugmented:   "aug",
		QualitySus2:        "sus2",
		QualitySus4:        "sus4",
		QualityMaj6:        "6",
		QualityMin6:        "m6",
		QualityMaj7:        "maj7",
		QualityMin7:        "m7",
		QualityDom7:        "7",
		QualityHalfDim7:    "m7b5",
		QualityDim7:        "dim7",
		QualityMinMaj7:     "mMaj7",
		QualityAug7:        "aug7",
		QualityAdd9:        "add9",
		QualityMaj9:        "maj9",
		QualityMin9:        "m9",
		QualityDom9:        "9",
		QualityDom7Flat9:   "7b9",
		QualityDom7Sharp9:  "7#9",
		QualityDom7Flat5:   "7b5",
		QualityMin11:       "m11",
		QualityMaj7Sharp11: "maj7#11",
		QualityDom13:       "13",
		QualityMaj13:       "maj13",
		QualityMin13:       "m13",
		QualityAltered:     "7alt",
		QualityPower:       "5",
	}

	if name, exists := names[quality]; exists {
		return name
	}
	return "unknown"
}

// GetSupportedQualities returns a list of supported chord quality names
func GetSupportedQualities() []string {
	return []string{
		"major", "minor", "diminished", "augmented", "sus2", "sus4",
		"6", "m6", "maj7", "m7", "7", "m7b5", "dim7", "mMaj7", "aug7",
		"add9", "maj9", "m9", "9", "7b9", "7#9", "7b5",
		"m11", "maj7#11", "13", "maj13", "m13", "7alt", "5",
	}
}
