// Package midi maps tonal vectors onto the MIDI key space and pulls
// pitch vectors out of standard MIDI files. MIDI collapses enharmonic
// spelling, so vector -> key is lossy by nature and key -> vector
// picks a spelling convention (sharps or flats).
package midi

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/openmusickit/tonalgo/vector"
)

// MiddleC is the MIDI key of middle C, vector origin (0, 0, 0).
const MiddleC = 60

// sharpSpellings and flatSpellings give the (d, c) pair for each of
// the twelve pitch classes under the two common spelling conventions.
var sharpSpellings = [12][2]int{
	{0, 0}, {0, 1}, {1, 2}, {1, 3}, {2, 4}, {3, 5},
	{3, 6}, {4, 7}, {4, 8}, {5, 9}, {5, 10}, {6, 11},
}

var flatSpellings = [12][2]int{
	{0, 0}, {1, 1}, {1, 2}, {2, 3}, {2, 4}, {3, 5},
	{4, 6}, {4, 7}, {5, 8}, {5, 9}, {6, 10}, {6, 11},
}

// Key returns the MIDI key of a pitch vector. Interval vectors carry
// no register and cannot be placed on the keyboard.
func Key(v vector.Vector) (uint8, error) {
	if !v.Pitched {
		return 0, errors.New("an abstract tonal value has no MIDI key; anchor it to an octave first")
	}
	key := vector.Semitones(v) + MiddleC
	if key < 0 || key > 127 {
		return 0, fmt.Errorf("pitch %v is outside the MIDI key range", v)
	}
	return uint8(key), nil
}

// FromKey returns the pitch vector for a MIDI key, spelled with sharps
// by default or flats when useFlats is set.
func FromKey(key uint8, useFlats bool) vector.Vector {
	spellings := &sharpSpellings
	if useFlats {
		spellings = &flatSpellings
	}

	pc := int(key) % 12
	oct := (int(key) - MiddleC) / 12
	if (int(key)-MiddleC)%12 < 0 {
		oct--
	}
	return vector.Pitch(spellings[pc][0], spellings[pc][1], oct)
}

// ReadMidiFile parses a standard MIDI file from disk.
func ReadMidiFile(filepath string) (s *smf.SMF, e error) {
	var blank smf.SMF

	// the smf parser panics on some malformed files
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if r, ok := recover().(string); ok {
			e = errors.New(r)
		}
	}()

	dat, err := os.ReadFile(filepath)
	if err != nil {
		return &blank, fmt.Errorf("error reading midi file... %v", err)
	}

	res, err := smf.ReadFrom(bytes.NewReader(dat))
	if err != nil {
		return &blank, fmt.Errorf("error parsing midi file... %v", err)
	}
	return res, nil
}

// NotesInFile returns a pitch vector for every note-on in the file,
// in track order then time order within each track.
func NotesInFile(filepath string, useFlats bool) ([]vector.Vector, error) {
	parsed, err := ReadMidiFile(filepath)
	if err != nil {
		return nil, err
	}

	var res []vector.Vector
	for _, events := range parsed.Tracks {
		for _, event := range events {
			var channel uint8
			var key uint8
			var velocity uint8
			if event.Message.GetNoteOn(&channel, &key, &velocity) {
				res = append(res, FromKey(key, useFlats))
			}
		}
	}
	return res, nil
}
