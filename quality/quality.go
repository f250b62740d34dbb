// Package quality classifies interval vectors as perfect, major,
// minor, diminished, augmented and their multiples.
//
// Qualities sit on a ladder relative to the major scale: perfect and
// major degrees are the anchors, each half-step of chromatic
// alteration moves one rung. Perfect degrees diminish directly while
// major degrees pass through minor first, so the ladder positions are
// half-integral; they are held doubled to stay in integers.
package quality

import (
	"fmt"
	"strings"

	"github.com/openmusickit/tonalgo/constants"
	"github.com/openmusickit/tonalgo/util"
	"github.com/openmusickit/tonalgo/vector"
)

type Quality struct {
	name     string
	relTwice int // ladder position, doubled
}

var (
	Perfect = Quality{"perfect", 0}
	Major   = Quality{"major", 1}
	Minor   = Quality{"minor", -1}
)

// Even positions descend from perfect degrees, odd from major/minor.
var byRelTwice = map[int]Quality{
	-9: {"quad diminished", -9},
	-8: {"quad diminished", -8},
	-7: {"trpl diminished", -7},
	-6: {"trpl diminished", -6},
	-5: {"dbl diminished", -5},
	-4: {"dbl diminished", -4},
	-3: {"diminished", -3},
	-2: {"diminished", -2},
	-1: Minor,
	0:  Perfect,
	1:  Major,
	2:  {"augmented", 2},
	3:  {"augmented", 3},
	4:  {"dbl augmented", 4},
	5:  {"dbl augmented", 5},
	6:  {"trpl augmented", 6},
	7:  {"trpl augmented", 7},
	8:  {"quad augmented", 8},
	9:  {"quad augmented", 9},
}

// FromVector returns the quality of the interval named by v, resolved
// against the major-scale base value of its diatonic degree. Spellings
// altered beyond a quadruple accidental have no quality and fail.
func FromVector(v vector.Vector) (Quality, error) {
	v = vector.Normalize(v)
	base := constants.MajorScale[v.D]

	modifier := v.C - base.C

	// past a triple alteration the spelling has wrapped the chromatic
	// octave; resolve against the base value one octave over
	if util.Abs(modifier) > 4 {
		baseC := base.C
		if v.C < base.C {
			baseC -= constants.CLen
		}
		if v.C > base.C {
			baseC += constants.CLen
		}
		modifier = v.C - baseC
	}

	q, ok := byRelTwice[2*modifier+int(base.Quality)]
	if !ok {
		return Quality{}, fmt.Errorf("no interval quality for %v", v)
	}
	return q, nil
}

// Augment returns the quality raised by the given number of
// half-steps: a perfect interval augments to augmented, a minor one to
// major. Fails when the ladder runs out past quadruple.
func (q Quality) Augment(halfsteps int) (Quality, error) {
	next, ok := byRelTwice[q.relTwice+2*halfsteps]
	if !ok {
		return Quality{}, fmt.Errorf("cannot augment %v by %v half-steps", q, halfsteps)
	}
	return next, nil
}

// Diminish returns the quality lowered by the given number of half-steps.
func (q Quality) Diminish(halfsteps int) (Quality, error) {
	return q.Augment(-halfsteps)
}

// ChromaticModifier returns the half-steps of alteration from the
// major-scale base: 0 for major and perfect, -1 for minor, -2 for
// diminished off a major degree.
func (q Quality) ChromaticModifier() int {
	r := q.relTwice / 2
	if q.relTwice%2 != 0 && q.relTwice < 0 {
		r--
	}
	return r
}

func (q Quality) String() string {
	return q.name
}

// Abbr returns the short form: "per", "maj", "dbl aug".
func (q Quality) Abbr() string {
	words := strings.Fields(q.name)
	for i, w := range words {
		if len(w) > 3 {
			words[i] = w[:3]
		}
	}
	return strings.Join(words, " ")
}
