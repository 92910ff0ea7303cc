// Package words provides the word corpus a game session draws from.
// It supports the built-in retro word list, user-supplied YAML word files,
// and uniform random selection with injectable randomness for tests.
package words

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrEmptyCorpus is returned when a corpus contains no words.
var ErrEmptyCorpus = errors.New("word corpus is empty")

// Corpus is an ordered list of candidate target words. Words are uppercase
// ASCII letters with no embedded whitespace; Validate enforces this.
type Corpus []string

// Default returns the built-in corpus.
func Default() Corpus {
	return Corpus{
		"PYTHON", "PROGRAMMING", "COMPUTER", "DEVELOPER", "ALGORITHM",
		"TERMINAL", "SCANLINE", "RETRO", "HANGMAN", "KEYBOARD",
		"MONITOR", "ELECTRONIC", "VINTAGE", "CONSOLE", "PIXEL",
	}
}

// Validate checks the corpus invariants: at least one word, and every word
// non-empty and composed only of the letters A-Z.
func (c Corpus) Validate() error {
	if len(c) == 0 {
		return ErrEmptyCorpus
	}
	for i, w := range c {
		if len(w) == 0 {
			return fmt.Errorf("word at index %d is empty", i)
		}
		for _, r := range w {
			if r < 'A' || r > 'Z' {
				return fmt.Errorf("word %q at index %d: character %q is not A-Z", w, i, r)
			}
		}
	}
	return nil
}

// wordsFile is the YAML shape of a user-supplied word list.
type wordsFile struct {
	Words []string `yaml:"words"`
}

// LoadFile reads a YAML word list, normalizes each entry to uppercase, and
// validates the result. The file format is:
//
//	words:
//	  - cathode
//	  - raster
func LoadFile(path string) (Corpus, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading word file: %w", err)
	}

	var wf wordsFile
	dec := yaml.NewDecoder(strings.NewReader(string(data)))
	dec.KnownFields(true)
	if err := dec.Decode(&wf); err != nil {
		return nil, fmt.Errorf("parsing word file %s: %w", path, err)
	}

	corpus := make(Corpus, 0, len(wf.Words))
	for _, w := range wf.Words {
		corpus = append(corpus, strings.ToUpper(strings.TrimSpace(w)))
	}

	if err := corpus.Validate(); err != nil {
		return nil, fmt.Errorf("word file %s: %w", path, err)
	}
	return corpus, nil
}

// Selector picks target words uniformly at random from a corpus.
type Selector struct {
	corpus Corpus
	rng    *rand.Rand
}

// NewSelector creates a Selector over a validated corpus, seeded from the
// current time.
func NewSelector(c Corpus) (*Selector, error) {
	return NewSeededSelector(c, time.Now().UnixNano())
}

// NewSeededSelector creates a Selector with an explicit seed, for
// deterministic tests.
func NewSeededSelector(c Corpus, seed int64) (*Selector, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &Selector{
		corpus: c,
		rng:    rand.New(rand.NewSource(seed)),
	}, nil
}

// Pick returns one word chosen uniformly from the corpus.
func (s *Selector) Pick() string {
	return s.corpus[s.rng.Intn(len(s.corpus))]
}

// Corpus returns the selector's underlying word list.
func (s *Selector) Corpus() Corpus {
	return s.corpus
}
