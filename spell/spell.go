// Package spell translates between tonal vectors and conventional
// pitch and interval names. It consumes the vector package as a black
// box; nothing in the core depends on it.
//
// Octave designations follow the vector convention of middle C as C0.
// The C4 variants render and parse the MIDI-style convention where
// middle C is C4.
package spell

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/openmusickit/tonalgo/constants"
	"github.com/openmusickit/tonalgo/quality"
	"github.com/openmusickit/tonalgo/util"
	"github.com/openmusickit/tonalgo/vector"
)

// modifier returns the half-step distance between the named pitch and
// the natural version of its letter, resolving chromatic wrap the same
// way quality classification does.
func modifier(v vector.Vector) int {
	base := constants.MajorScale[v.D].C
	m := v.C - base
	if util.Abs(m) > 4 {
		baseC := base
		if v.C < base {
			baseC -= constants.CLen
		}
		if v.C > base {
			baseC += constants.CLen
		}
		m = v.C - baseC
	}
	return m
}

// accidental looks up the rendering for v's alteration. Spellings past
// a quadruple accidental have no conventional name.
func accidental(v vector.Vector) (constants.Accidental, error) {
	m := modifier(v)
	ac, ok := constants.Accidentals[m]
	if !ok {
		return constants.Accidental{}, fmt.Errorf("no accidental for %v half-step alteration", m)
	}
	return ac, nil
}

func render(v vector.Vector, midC int, symbol func(constants.Accidental) string) (string, error) {
	v = vector.Normalize(v)
	ac, err := accidental(v)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString(strings.ToUpper(constants.MajorScale[v.D].Letter))
	if ac.Offset != 0 {
		sb.WriteString(symbol(ac))
	}
	if v.Pitched {
		sb.WriteString(strconv.Itoa(v.Oct + midC))
	}
	return sb.String(), nil
}

// Unicode renders a pitch name with Unicode accidentals: "C♯", "D♭0".
func Unicode(v vector.Vector) (string, error) {
	return render(v, 0, func(ac constants.Accidental) string { return ac.Unicode })
}

// UnicodeC4 is Unicode with middle C written as C4: "D♭4".
func UnicodeC4(v vector.Vector) (string, error) {
	return render(v, 4, func(ac constants.Accidental) string { return ac.Unicode })
}

// ASCII renders a pitch name with ASCII accidentals: "C#", "Db0".
func ASCII(v vector.Vector) (string, error) {
	return render(v, 0, func(ac constants.Accidental) string { return ac.ASCII })
}

// ASCIIC4 is ASCII with middle C written as C4: "Db4".
func ASCIIC4(v vector.Vector) (string, error) {
	return render(v, 4, func(ac constants.Accidental) string { return ac.ASCII })
}

// Verbose renders the spelled-out form: "Csharp1", "Dflat".
func Verbose(v vector.Vector) (string, error) {
	v = vector.Normalize(v)
	ac, err := accidental(v)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString(strings.ToUpper(constants.MajorScale[v.D].Letter))
	if ac.Offset != 0 {
		sb.WriteString(strings.ReplaceAll(ac.Verbose, " ", ""))
	}
	if v.Pitched {
		sb.WriteString(strconv.Itoa(v.Oct))
	}
	return sb.String(), nil
}

// Lilypond renders the LilyPond note name without an octave mark:
// "cis" for C sharp, "bes" for B flat.
func Lilypond(v vector.Vector) (string, error) {
	v = vector.Normalize(v)
	ac, err := accidental(v)
	if err != nil {
		return "", err
	}
	return constants.MajorScale[v.D].Letter + ac.Lilypond, nil
}

// LilypondAbs renders the LilyPond note name with absolute octave
// marks relative to the octave of middle C: "c'" one octave up,
// "bes,," two octaves down. Interval vectors render without marks.
func LilypondAbs(v vector.Vector) (string, error) {
	v = vector.Normalize(v)
	name, err := Lilypond(v)
	if err != nil {
		return "", err
	}
	if !v.Pitched || v.Oct == 0 {
		return name, nil
	}

	mark := "'"
	if v.Oct < 0 {
		mark = ","
	}
	return name + strings.Repeat(mark, util.Abs(v.Oct)), nil
}

// Solfege returns the moveable-do syllable: "do" for (0,0), "ri" for
// the augmented second. Only single alterations have syllables.
func Solfege(v vector.Vector) (string, error) {
	v = vector.Normalize(v)
	m := modifier(v)
	if m < -1 || m > 1 {
		return "", fmt.Errorf("no solfege syllable for %v half-step alteration", m)
	}
	return constants.MajorScale[v.D].Solfege[m+1], nil
}

// IntervalName renders the long interval name: "perfect 1",
// "augmented 4". Octave designations are ignored; the name covers the
// interval class.
func IntervalName(v vector.Vector) (string, error) {
	v = vector.Normalize(v)
	q, err := quality.FromVector(v)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%v %d", q, v.D+1), nil
}

// IntervalAbbr renders the short interval name with any octave
// displacement appended: "per1", "aug4+1", "min3-2".
func IntervalAbbr(v vector.Vector) (string, error) {
	v = vector.Normalize(v)
	q, err := quality.FromVector(v)
	if err != nil {
		return "", err
	}

	oct := ""
	if v.Pitched && v.Oct > 0 {
		oct = "+" + strconv.Itoa(v.Oct)
	} else if v.Pitched && v.Oct < 0 {
		oct = strconv.Itoa(v.Oct)
	}
	return fmt.Sprintf("%v%d%v", q.Abbr(), v.D+1, oct), nil
}

var letterIndex = map[rune]int{'c': 0, 'd': 1, 'e': 2, 'f': 3, 'g': 4, 'a': 5, 'b': 6}

// Parse reads a pitch name like "C#", "Db4", "E𝄫-1" into a canonical
// vector. A trailing signed integer is an octave designation (middle C
// is C0) and yields a pitch vector; without one the result is an
// interval vector.
func Parse(s string) (vector.Vector, error) {
	rs := []rune(strings.TrimSpace(s))
	if len(rs) == 0 {
		return vector.Vector{}, errors.New("empty pitch name")
	}

	d, ok := letterIndex[unicode.ToLower(rs[0])]
	if !ok {
		return vector.Vector{}, fmt.Errorf("bad letter name in %q", s)
	}

	offset := 0
	i := 1
accidentals:
	for i < len(rs) {
		switch rs[i] {
		case '#', '♯':
			offset++
		case 'b', '♭':
			offset--
		case 'x', '𝄪':
			offset += 2
		case '𝄫':
			offset -= 2
		case '♮':
			// explicit natural
		default:
			break accidentals
		}
		i++
	}

	c := constants.MajorScale[d].C + offset
	if i == len(rs) {
		return vector.Normalize(vector.Interval(d, c)), nil
	}

	oct, err := strconv.Atoi(string(rs[i:]))
	if err != nil {
		return vector.Vector{}, fmt.Errorf("bad octave designation in %q", s)
	}
	return vector.Normalize(vector.Pitch(d, c, oct)), nil
}

// ParseC4 is Parse for names using the MIDI-style convention where
// middle C is C4.
func ParseC4(s string) (vector.Vector, error) {
	v, err := Parse(s)
	if err != nil {
		return vector.Vector{}, err
	}
	if v.Pitched {
		v.Oct -= 4
	}
	return v, nil
}
