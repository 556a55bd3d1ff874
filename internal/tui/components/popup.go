package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// PopupKind distinguishes the modal popup variants.
type PopupKind int

const (
	PopupError PopupKind = iota
	PopupMessage
	PopupWarning
	PopupMenu
)

// Popup is a transient modal surface: a result/error notice or a choice
// menu. Exactly one popup is visible at a time; it captures all key input
// until dismissed.
type Popup struct {
	Kind    PopupKind
	Title   string
	Body    string
	Choices []string
	index   int
}

// NewError creates an error popup.
func NewError(title, body string) *Popup {
	return &Popup{Kind: PopupError, Title: title, Body: body}
}

// NewMessage creates an informational popup.
func NewMessage(title, body string) *Popup {
	return &Popup{Kind: PopupMessage, Title: title, Body: body}
}

// NewWarning creates a warning popup.
func NewWarning(title, body string) *Popup {
	return &Popup{Kind: PopupWarning, Title: title, Body: body}
}

// NewMenu creates a choice-menu popup.
func NewMenu(title string, choices []string) *Popup {
	return &Popup{Kind: PopupMenu, Title: title, Choices: choices}
}

// MoveSelection moves the menu cursor by delta, clamped into range.
func (p *Popup) MoveSelection(delta int) {
	if p.Kind != PopupMenu || len(p.Choices) == 0 {
		return
	}
	p.index += delta
	if p.index < 0 {
		p.index = 0
	}
	if p.index >= len(p.Choices) {
		p.index = len(p.Choices) - 1
	}
}

// Choice returns the highlighted menu entry.
func (p *Popup) Choice() (string, bool) {
	if p.Kind != PopupMenu || len(p.Choices) == 0 {
		return "", false
	}
	return p.Choices[p.index], true
}

const maxBodyLines = 12

// Render renders the popup as overlay lines above the status bar.
func (p *Popup) Render(width int) []string {
	lines := make([]string, 0, 4+maxBodyLines)
	lines = append(lines, strings.Repeat("─", width))

	var title string
	switch p.Kind {
	case PopupError:
		title = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.Color("196")).
			Render(p.Title + " (enter/esc: close)")
	case PopupWarning:
		title = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.Color("214")).
			Render(p.Title + " (enter/esc: close)")
	case PopupMenu:
		title = lipgloss.NewStyle().Bold(true).
			Render(p.Title + " (enter: select, esc: close)")
	default:
		title = lipgloss.NewStyle().Bold(true).
			Render(p.Title + " (enter/esc: close)")
	}
	lines = append(lines, title)

	if p.Kind == PopupMenu {
		for i, c := range p.Choices {
			cur := "  "
			if i == p.index {
				cur = "> "
			}
			lines = append(lines, fmt.Sprintf("%s%s", cur, c))
		}
		return lines
	}

	body := strings.Split(strings.TrimRight(p.Body, "\n"), "\n")
	for i, l := range body {
		if i >= maxBodyLines {
			lines = append(lines, lipgloss.NewStyle().Faint(true).Render("… and more"))
			break
		}
		lines = append(lines, l)
	}
	return lines
}
