package constants

import "os"

// DLen is the number of tones in a diatonic scale.
const DLen = 7

// CLen is the number of tones in a chromatic scale.
const CLen = 12

func GetServeAddr() string {
	addr := os.Getenv("TONALGO_ADDR")
	if addr != "" {
		return addr
	}
	return ":8080"
}

// QualityBase says whether a scale degree is perfect or major/minor.
// Perfect degrees diminish directly; major degrees pass through minor first.
type QualityBase int

const (
	Perfect    QualityBase = 0
	MajorMinor QualityBase = 1
)

// Diatone describes one degree of the major scale.
type Diatone struct {
	D          int         // diatonic value, zero indexed
	C          int         // chromatic value, zero indexed
	Quality    QualityBase // perfect or major/minor
	Interval   string      // "unison", "second", ...
	Letter     string      // letter name in C major
	Solfege    [3]string   // moveable-do syllables, indexed modifier+1
	Function   string      // "tonic", "dominant", ...
	Dissonance int
}

// MajorScale holds the seven degrees of the diatonic major scale.
// Everything else (accidentals, qualities, spellings) is an offset
// from one of these.
var MajorScale = [DLen]Diatone{
	{0, 0, Perfect, "unison", "c", [3]string{"de", "do", "di"}, "tonic", 0},
	{1, 2, MajorMinor, "second", "d", [3]string{"ra", "re", "ri"}, "subtonic", 2},
	{2, 4, MajorMinor, "third", "e", [3]string{"me", "mi", "ma"}, "mediant", 1},
	{3, 5, Perfect, "fourth", "f", [3]string{"fe", "fa", "fi"}, "subdominant", 2},
	{4, 7, Perfect, "fifth", "g", [3]string{"se", "so", "si"}, "dominant", 0},
	{5, 9, MajorMinor, "sixth", "a", [3]string{"le", "la", "li"}, "submediant", 1},
	{6, 11, MajorMinor, "seventh", "b", [3]string{"te", "ti", "to"}, "leading tone", 3},
}

// Accidental describes how to render a chromatic offset from a natural.
type Accidental struct {
	Offset   int    // half-steps from natural; positive is sharp
	Verbose  string // "flat", "double sharp", ...
	Unicode  string
	ASCII    string
	Lilypond string
}

// Accidentals maps half-step offsets to their renderings,
// from quadruple flat to quadruple sharp.
var Accidentals = map[int]Accidental{
	-4: {-4, "quadruple flat", "\U0001D12B\U0001D12B", "bbbb", "eseseses"},
	-3: {-3, "triple flat", "\U0001D12B♭", "bbb", "eseses"},
	-2: {-2, "double flat", "\U0001D12B", "bb", "eses"},
	-1: {-1, "flat", "♭", "b", "es"},
	0:  {0, "natural", "♮", "", ""},
	1:  {1, "sharp", "♯", "#", "is"},
	2:  {2, "double sharp", "\U0001D12A", "##", "isis"},
	3:  {3, "triple sharp", "\U0001D12A♯", "###", "isisis"},
	4:  {4, "quadruple sharp", "\U0001D12A\U0001D12A", "####", "isisisis"},
}
