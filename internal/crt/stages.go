// Package crt renders game state as a CRT-styled terminal screen: a fixed
// bordered frame composed from state, green-phosphor styling, and a
// scanline reveal that emits the frame line by line.
package crt

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrNoStages is returned when a stage table has fewer than two entries.
// One entry would leave no room for a single incorrect guess.
var ErrNoStages = errors.New("stage table needs at least two stages")

// StageTable is the ordered gallows art, one entry per incorrect-guess
// count from zero to the loss threshold. The miss limit for a session is
// the highest stage index, len(stages)-1.
type StageTable struct {
	stages [][]string
}

// defaultStageArt is the classic seven-stage gallows, from empty scaffold
// to the complete figure.
var defaultStageArt = []string{
	`       -----
       |   |
           |
           |
           |
           |
    ---------`,
	`       -----
       |   |
       O   |
           |
           |
           |
    ---------`,
	`       -----
       |   |
       O   |
       |   |
           |
           |
    ---------`,
	`       -----
       |   |
       O   |
      /|   |
           |
           |
    ---------`,
	`       -----
       |   |
       O   |
      /|\  |
           |
           |
    ---------`,
	`       -----
       |   |
       O   |
      /|\  |
      /    |
           |
    ---------`,
	`       -----
       |   |
       O   |
      /|\  |
      / \  |
           |
    ---------`,
}

// DefaultStages returns the built-in seven-stage table (miss limit 6).
func DefaultStages() *StageTable {
	t, err := NewStageTable(defaultStageArt)
	if err != nil {
		panic(fmt.Sprintf("built-in stage table invalid: %v", err))
	}
	return t
}

// NewStageTable builds a StageTable from multi-line art strings, one per
// stage, splitting each into its constituent lines.
func NewStageTable(art []string) (*StageTable, error) {
	if len(art) < 2 {
		return nil, ErrNoStages
	}
	stages := make([][]string, len(art))
	for i, a := range art {
		stages[i] = strings.Split(strings.Trim(a, "\n"), "\n")
	}
	return &StageTable{stages: stages}, nil
}

// stagesFile is the YAML shape of a user-supplied stage table.
type stagesFile struct {
	Stages []string `yaml:"stages"`
}

// LoadStagesFile reads a YAML stage table. The file format is:
//
//	stages:
//	  - |
//	    (art for zero misses)
//	  - |
//	    (art for one miss)
func LoadStagesFile(path string) (*StageTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading stage file: %w", err)
	}

	var sf stagesFile
	dec := yaml.NewDecoder(strings.NewReader(string(data)))
	dec.KnownFields(true)
	if err := dec.Decode(&sf); err != nil {
		return nil, fmt.Errorf("parsing stage file %s: %w", path, err)
	}

	t, err := NewStageTable(sf.Stages)
	if err != nil {
		return nil, fmt.Errorf("stage file %s: %w", path, err)
	}
	return t, nil
}

// MaxIncorrect returns the miss limit implied by the table: the highest
// stage index.
func (t *StageTable) MaxIncorrect() int {
	return len(t.stages) - 1
}

// Stage returns the art lines for the given incorrect-guess count. Counts
// past the last stage return the last stage.
func (t *StageTable) Stage(incorrect int) []string {
	if incorrect < 0 {
		incorrect = 0
	}
	if incorrect >= len(t.stages) {
		incorrect = len(t.stages) - 1
	}
	return t.stages[incorrect]
}

// MaxHeight returns the line count of the tallest stage.
func (t *StageTable) MaxHeight() int {
	max := 0
	for _, s := range t.stages {
		if len(s) > max {
			max = len(s)
		}
	}
	return max
}

// MaxWidth returns the column count of the widest stage line.
func (t *StageTable) MaxWidth() int {
	max := 0
	for _, s := range t.stages {
		for _, line := range s {
			if len(line) > max {
				max = len(line)
			}
		}
	}
	return max
}
