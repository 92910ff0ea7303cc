package crt

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func composeTestFrame(t *testing.T) Frame {
	t.Helper()
	c := newTestComposer(t)
	return c.Compose(newTestState(t, "CAT"), "Guess a letter.")
}

func TestRenderClearsFirst(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, PlainStyles(), 0)
	r.SetSleep(func(time.Duration) {})

	r.Render(composeTestFrame(t), false)

	if !strings.HasPrefix(buf.String(), clearSequence) {
		t.Error("output does not start with the clear sequence")
	}
}

func TestRenderEmitsEveryLine(t *testing.T) {
	frame := composeTestFrame(t)

	for _, progressive := range []bool{true, false} {
		var buf bytes.Buffer
		r := NewRenderer(&buf, PlainStyles(), 0)
		r.SetSleep(func(time.Duration) {})

		r.Render(frame, progressive)

		out := strings.TrimPrefix(buf.String(), clearSequence)
		lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
		if len(lines) != DefaultHeight {
			t.Fatalf("progressive=%v: emitted %d lines, want %d", progressive, len(lines), DefaultHeight)
		}
		for i, line := range lines {
			if line != frame.Lines()[i] {
				t.Fatalf("progressive=%v: line %d = %q, want %q", progressive, i, line, frame.Lines()[i])
			}
		}
	}
}

func TestRenderProgressiveSleepsPerLine(t *testing.T) {
	frame := composeTestFrame(t)

	var buf bytes.Buffer
	r := NewRenderer(&buf, PlainStyles(), 5*time.Millisecond)

	var sleeps []time.Duration
	r.SetSleep(func(d time.Duration) { sleeps = append(sleeps, d) })

	r.Render(frame, true)
	if len(sleeps) != DefaultHeight {
		t.Errorf("progressive render slept %d times, want %d", len(sleeps), DefaultHeight)
	}
	for _, d := range sleeps {
		if d != 5*time.Millisecond {
			t.Errorf("slept %v, want 5ms", d)
		}
	}
}

func TestRenderInstantNeverSleeps(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, PlainStyles(), 5*time.Millisecond)

	calls := 0
	r.SetSleep(func(time.Duration) { calls++ })

	r.Render(composeTestFrame(t), false)
	if calls != 0 {
		t.Errorf("instant render slept %d times", calls)
	}
}

func TestPlainStylesPreserveWidth(t *testing.T) {
	frame := composeTestFrame(t)

	var buf bytes.Buffer
	r := NewRenderer(&buf, PlainStyles(), 0)
	r.SetSleep(func(time.Duration) {})
	r.Render(frame, false)

	out := strings.TrimPrefix(buf.String(), clearSequence)
	for i, line := range strings.Split(strings.TrimSuffix(out, "\n"), "\n") {
		if len(line) != DefaultWidth {
			t.Errorf("line %d width = %d, want %d", i, len(line), DefaultWidth)
		}
	}
}
