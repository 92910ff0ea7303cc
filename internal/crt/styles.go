package crt

import "github.com/charmbracelet/lipgloss"

// Styles holds the two looks applied to a frame. Styling wraps whole lines
// in escape sequences and never changes the visible character width.
type Styles struct {
	// Content is applied to the interior rows of the frame.
	Content lipgloss.Style
	// Border is applied to the top and bottom border rows.
	Border lipgloss.Style
}

// CRTStyles returns the green-phosphor look: bright green on black for
// content, dim green on black for the border.
func CRTStyles() Styles {
	return Styles{
		Content: lipgloss.NewStyle().
			Foreground(lipgloss.Color("10")).
			Background(lipgloss.Color("0")).
			Bold(true),
		Border: lipgloss.NewStyle().
			Foreground(lipgloss.Color("2")).
			Background(lipgloss.Color("0")).
			Faint(true),
	}
}

// PlainStyles returns pass-through styles for no-color output and tests.
func PlainStyles() Styles {
	return Styles{
		Content: lipgloss.NewStyle(),
		Border:  lipgloss.NewStyle(),
	}
}
