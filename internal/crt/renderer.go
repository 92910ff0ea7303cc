package crt

import (
	"fmt"
	"io"
	"time"
)

// clearSequence erases the display and homes the cursor before each frame.
const clearSequence = "\x1b[2J\x1b[H"

// Renderer writes composed frames to the display device. The writer and
// the sleep function are injectable so tests can capture output and run
// with no real delay.
type Renderer struct {
	out       io.Writer
	styles    Styles
	scanDelay time.Duration
	sleep     func(time.Duration)
}

// NewRenderer creates a Renderer that writes to out with the given styles
// and inter-line scan delay.
func NewRenderer(out io.Writer, styles Styles, scanDelay time.Duration) *Renderer {
	return &Renderer{
		out:       out,
		styles:    styles,
		scanDelay: scanDelay,
		sleep:     time.Sleep,
	}
}

// SetSleep replaces the sleep function, for tests.
func (r *Renderer) SetSleep(sleep func(time.Duration)) {
	r.sleep = sleep
}

// Clear erases the display and homes the cursor.
func (r *Renderer) Clear() {
	fmt.Fprint(r.out, clearSequence)
}

// Render clears the display and emits the frame. Progressive mode writes
// one line at a time with the scan delay between lines, sweeping the frame
// top to bottom. Non-progressive mode writes the whole frame at once for
// rapid intermediate updates.
func (r *Renderer) Render(f Frame, progressive bool) {
	r.Clear()
	lines := f.Lines()
	last := len(lines) - 1
	for i, line := range lines {
		style := r.styles.Content
		if i == 0 || i == last {
			style = r.styles.Border
		}
		fmt.Fprintln(r.out, style.Render(line))
		if progressive {
			r.sleep(r.scanDelay)
		}
	}
}
