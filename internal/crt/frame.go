package crt

import (
	"fmt"
	"strings"

	"github.com/ShayCichocki/phosphor/internal/game"
)

const (
	// DefaultWidth is the standard CRT frame width in columns.
	DefaultWidth = 80
	// DefaultHeight is the standard CRT frame height in rows.
	DefaultHeight = 24

	// borderOverheadX is the columns consumed per row by the two border
	// characters and the two interior spaces.
	borderOverheadX = 4
	// borderOverheadY is the rows consumed by the top and bottom borders.
	borderOverheadY = 2

	// fixedContentLines is the number of non-art interior lines the
	// composer always emits: title, word, guessed, remaining, status,
	// prompt placeholder, and four blanks.
	fixedContentLines = 10

	title = "               --- HANGMAN CRT EDITION ---"
)

// Frame is one composed screen: an ordered list of fixed-width lines,
// produced fresh per render and never mutated afterwards. The first and
// last lines are the border rows.
type Frame struct {
	lines []string
}

// Lines returns the frame's rows, top to bottom.
func (f Frame) Lines() []string {
	return f.lines
}

// Composer turns game state and a status message into a bordered frame.
type Composer struct {
	width  int
	height int
	stages *StageTable
}

// NewComposer creates a Composer for the given frame dimensions and stage
// table. It fails if the tallest stage plus the fixed interior lines cannot
// fit the frame, or if any stage line is wider than the interior.
func NewComposer(width, height int, stages *StageTable) (*Composer, error) {
	interiorWidth := width - borderOverheadX
	interiorHeight := height - borderOverheadY
	if stages.MaxHeight()+fixedContentLines > interiorHeight {
		return nil, fmt.Errorf("stage art of %d lines plus %d fixed lines exceeds interior height %d",
			stages.MaxHeight(), fixedContentLines, interiorHeight)
	}
	if stages.MaxWidth() > interiorWidth {
		return nil, fmt.Errorf("stage art width %d exceeds interior width %d",
			stages.MaxWidth(), interiorWidth)
	}
	return &Composer{width: width, height: height, stages: stages}, nil
}

// Width returns the frame width in columns.
func (c *Composer) Width() int { return c.width }

// MaxIncorrect returns the miss limit implied by the composer's stage table.
func (c *Composer) MaxIncorrect() int { return c.stages.MaxIncorrect() }

// Height returns the frame height in rows.
func (c *Composer) Height() int { return c.height }

// Compose builds the full frame for the given state and status message:
// title, gallows art for the current miss count, masked word, sorted
// guessed letters, remaining misses, the message, and a prompt placeholder,
// padded to the interior size and wrapped in the border.
func (c *Composer) Compose(st *game.State, message string) Frame {
	content := make([]string, 0, c.height-borderOverheadY)
	content = append(content, title, "")
	content = append(content, c.stages.Stage(st.IncorrectCount())...)
	content = append(content,
		"",
		" Word: "+MaskWord(st),
		" Guessed Letters: "+guessedList(st),
		fmt.Sprintf(" Incorrect Guesses Left: %d", st.Remaining()),
		"",
		" Status: "+message,
		"",
		" >_ ",
	)
	return c.wrap(content)
}

// MaskWord renders the target word with guessed letters revealed and the
// rest as underscores, one space between positions: "C _ _".
func MaskWord(st *game.State) string {
	var b strings.Builder
	target := st.Target()
	for i := 0; i < len(target); i++ {
		if i > 0 {
			b.WriteByte(' ')
		}
		l := game.Letter(target[i])
		if st.Guessed().Has(l) {
			b.WriteByte(byte(l))
		} else {
			b.WriteByte('_')
		}
	}
	return b.String()
}

// guessedList renders the guessed letters sorted ascending, comma-space
// separated: "A, C, Q".
func guessedList(st *game.State) string {
	letters := st.Guessed().Sorted()
	parts := make([]string, len(letters))
	for i, l := range letters {
		parts[i] = l.String()
	}
	return strings.Join(parts, ", ")
}

// wrap pads content lines to the interior size and surrounds them with the
// border, yielding exactly height lines of exactly width characters.
func (c *Composer) wrap(content []string) Frame {
	interiorWidth := c.width - borderOverheadX
	interiorHeight := c.height - borderOverheadY
	if len(content) > interiorHeight {
		content = content[:interiorHeight]
	}

	lines := make([]string, 0, c.height)
	horizontal := "+" + strings.Repeat("-", c.width-2) + "+"
	lines = append(lines, horizontal)
	for _, line := range content {
		lines = append(lines, "| "+pad(line, interiorWidth)+" |")
	}
	for len(lines) < c.height-1 {
		lines = append(lines, "| "+pad("", interiorWidth)+" |")
	}
	lines = append(lines, horizontal)
	return Frame{lines: lines}
}

// pad right-pads a line with spaces to the given width, clipping anything
// longer so the frame width invariant holds for every input.
func pad(line string, width int) string {
	if len(line) > width {
		return line[:width]
	}
	return line + strings.Repeat(" ", width-len(line))
}
