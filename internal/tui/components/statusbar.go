package components

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// StatusBar manages the bottom status bar.
type StatusBar struct {
	lastRefresh time.Time
	branch      string
	busyLabel   string
}

// NewStatusBar creates a new status bar.
func NewStatusBar() *StatusBar {
	return &StatusBar{}
}

// SetLastRefresh updates the refresh timestamp.
func (s *StatusBar) SetLastRefresh(t time.Time) {
	s.lastRefresh = t
}

// SetBranch updates the displayed current branch.
func (s *StatusBar) SetBranch(name string) {
	s.branch = name
}

// SetBusy sets the busy label shown while a remote operation runs. An empty
// label clears it.
func (s *StatusBar) SetBusy(label string) {
	s.busyLabel = label
}

// Render renders the status bar at the given width.
func (s *StatusBar) Render(width int) string {
	leftText := "?: help"
	if s.busyLabel != "" {
		leftText = s.busyLabel
	}
	if s.branch != "" {
		leftText += "  |  on " + s.branch
	}

	leftStyled := lipgloss.NewStyle().Faint(true).Render(leftText)
	right := lipgloss.NewStyle().Faint(true).
		Render("refreshed: " + s.lastRefresh.Format("15:04:05"))

	// Ensure right part is always visible
	rightW := lipgloss.Width(right)
	if rightW >= width {
		return ansi.Truncate(right, width, "…")
	}

	avail := width - rightW - 1
	leftRendered := leftStyled
	if lipgloss.Width(leftRendered) > avail {
		leftRendered = ansi.Truncate(leftRendered, avail, "…")
	} else if lipgloss.Width(leftRendered) < avail {
		leftRendered = leftRendered + strings.Repeat(" ", avail-lipgloss.Width(leftRendered))
	}

	return leftRendered + " " + right
}
