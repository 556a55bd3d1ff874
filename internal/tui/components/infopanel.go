package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
)

// InfoPanel is the scrollable text region that displays raw command output
// (diffs, logs, remote detail, operation results).
type InfoPanel struct {
	title string
	text  string
	vp    viewport.Model
}

// NewInfoPanel creates an empty info panel.
func NewInfoPanel() *InfoPanel {
	return &InfoPanel{title: "Info"}
}

// Title returns the current panel title.
func (p *InfoPanel) Title() string { return p.title }

// Text returns the current raw text content.
func (p *InfoPanel) Text() string { return p.text }

// SetText replaces the panel content and title and resets the scroll
// position.
func (p *InfoPanel) SetText(title, text string) {
	p.title = title
	p.text = text
	p.vp.SetContent(text)
	p.vp.GotoTop()
}

// Prepend pushes a line on top of the existing content, keeping the title.
// Used for rolling activity logs.
func (p *InfoPanel) Prepend(line string) {
	if p.text == "" {
		p.text = line
	} else {
		p.text = line + "\n" + p.text
	}
	p.vp.SetContent(p.text)
	p.vp.GotoTop()
}

// SetSize resizes the backing viewport.
func (p *InfoPanel) SetSize(width, height int) {
	p.vp.Width = width
	p.vp.Height = height
	p.vp.SetContent(p.text)
}

// ScrollDown scrolls the content down by n lines.
func (p *InfoPanel) ScrollDown(n int) { p.vp.LineDown(n) }

// ScrollUp scrolls the content up by n lines.
func (p *InfoPanel) ScrollUp(n int) { p.vp.LineUp(n) }

// PageDown scrolls one page down.
func (p *InfoPanel) PageDown() { p.vp.PageDown() }

// PageUp scrolls one page up.
func (p *InfoPanel) PageUp() { p.vp.PageUp() }

// View renders the viewport content.
func (p *InfoPanel) View() string {
	if strings.TrimSpace(p.text) == "" {
		return "(nothing to show)"
	}
	return p.vp.View()
}
