package game

import (
	"errors"
	"strings"
)

var (
	// ErrInvalidLength indicates the input was not exactly one character.
	ErrInvalidLength = errors.New("guess must be exactly one character")
	// ErrNotALetter indicates the input character is not in A-Z.
	ErrNotALetter = errors.New("guess must be a letter A-Z")
	// ErrAlreadyGuessed indicates the letter was guessed earlier this session.
	ErrAlreadyGuessed = errors.New("letter was already guessed")
)

// ValidateGuess checks raw input against the guess rules, in order:
// uppercase-normalize, exactly one character, within 'A'..'Z', not already
// guessed. On success it returns the accepted uppercase letter. It never
// mutates guessed; the caller feeds the accepted letter into State.
func ValidateGuess(raw string, guessed *LetterSet) (Letter, error) {
	normalized := []rune(strings.ToUpper(raw))
	if len(normalized) != 1 {
		return 0, ErrInvalidLength
	}
	r := normalized[0]
	if r < 'A' || r > 'Z' {
		return 0, ErrNotALetter
	}
	l := Letter(r)
	if guessed.Has(l) {
		return 0, ErrAlreadyGuessed
	}
	return l, nil
}
