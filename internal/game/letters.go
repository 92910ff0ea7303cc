// Package game implements the hangman session state machine: letter types,
// guess validation, and the insert-only state that advances toward a
// terminal won or lost status.
package game

import "sort"

// Letter is a single validated uppercase ASCII letter, 'A' through 'Z'.
// Code that holds a Letter can rely on it being in range; ValidateGuess is
// the only way raw input becomes one.
type Letter byte

// Valid returns true if the letter is in 'A'..'Z'.
func (l Letter) Valid() bool {
	return l >= 'A' && l <= 'Z'
}

// String returns the letter as a one-character string.
func (l Letter) String() string {
	return string(rune(l))
}

// LetterSet is an insert-only set of validated letters. There is no removal
// operation: a session's guessed letters only ever grow.
type LetterSet struct {
	members map[Letter]bool
}

// NewLetterSet creates an empty LetterSet.
func NewLetterSet() *LetterSet {
	return &LetterSet{members: make(map[Letter]bool)}
}

// Add inserts a letter into the set. Adding a letter that is already present
// is a no-op.
func (s *LetterSet) Add(l Letter) {
	s.members[l] = true
}

// Has returns true if the letter is in the set.
func (s *LetterSet) Has(l Letter) bool {
	return s.members[l]
}

// Len returns the number of letters in the set.
func (s *LetterSet) Len() int {
	return len(s.members)
}

// Sorted returns the set's letters in ascending order.
func (s *LetterSet) Sorted() []Letter {
	out := make([]Letter, 0, len(s.members))
	for l := range s.members {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
