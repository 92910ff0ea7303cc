package game

import (
	"errors"
	"fmt"
)

// Status represents the derived outcome of a session.
type Status string

const (
	// StatusInProgress indicates the session has letters left to guess and
	// misses to spare.
	StatusInProgress Status = "in_progress"
	// StatusWon indicates every letter of the target word has been guessed.
	StatusWon Status = "won"
	// StatusLost indicates the incorrect-guess limit was reached first.
	StatusLost Status = "lost"
)

// Terminal returns true for the won and lost statuses.
func (s Status) Terminal() bool {
	return s == StatusWon || s == StatusLost
}

// ErrEmptyTarget is returned when a session is created with no target word.
var ErrEmptyTarget = errors.New("target word is empty")

// State holds one session's mutable data. It is created fresh per session,
// owned by a single loop, and mutated only through ApplyGuess.
type State struct {
	target       string
	guessed      *LetterSet
	incorrect    int
	maxIncorrect int
}

// NewState creates session state for the given uppercase target word.
// maxIncorrect is the number of misses that loses the game, derived by the
// caller from the gallows stage table.
func NewState(target string, maxIncorrect int) (*State, error) {
	if len(target) == 0 {
		return nil, ErrEmptyTarget
	}
	for _, r := range target {
		if r < 'A' || r > 'Z' {
			return nil, fmt.Errorf("target word %q: character %q is not A-Z", target, r)
		}
	}
	if maxIncorrect < 1 {
		return nil, fmt.Errorf("max incorrect guesses must be at least 1, got %d", maxIncorrect)
	}
	return &State{
		target:       target,
		guessed:      NewLetterSet(),
		maxIncorrect: maxIncorrect,
	}, nil
}

// ApplyGuess records a validated letter. The letter must have come from
// ValidateGuess against this state's guessed set, so it is in range and not
// a duplicate. Returns true if the letter occurs in the target word; a miss
// increments the incorrect-guess counter by exactly one.
func (st *State) ApplyGuess(l Letter) bool {
	st.guessed.Add(l)
	if st.containsLetter(l) {
		return true
	}
	st.incorrect++
	return false
}

// containsLetter reports whether the target word contains the letter.
func (st *State) containsLetter(l Letter) bool {
	for i := 0; i < len(st.target); i++ {
		if Letter(st.target[i]) == l {
			return true
		}
	}
	return false
}

// Status derives the session outcome from the current state. Won takes
// precedence over Lost when the final guess completes the word.
func (st *State) Status() Status {
	won := true
	for i := 0; i < len(st.target); i++ {
		if !st.guessed.Has(Letter(st.target[i])) {
			won = false
			break
		}
	}
	if won {
		return StatusWon
	}
	if st.incorrect >= st.maxIncorrect {
		return StatusLost
	}
	return StatusInProgress
}

// Target returns the session's target word.
func (st *State) Target() string {
	return st.target
}

// Guessed returns the set of letters guessed so far.
func (st *State) Guessed() *LetterSet {
	return st.guessed
}

// IncorrectCount returns the number of misses so far.
func (st *State) IncorrectCount() int {
	return st.incorrect
}

// MaxIncorrect returns the miss limit for this session.
func (st *State) MaxIncorrect() int {
	return st.maxIncorrect
}

// Remaining returns how many more misses the session can absorb.
func (st *State) Remaining() int {
	return st.maxIncorrect - st.incorrect
}
