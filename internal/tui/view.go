package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/interpretive-systems/gitdeck/internal/logging"
	"github.com/interpretive-systems/gitdeck/internal/tui/components"
)

func (m *Program) View() string {
	if m.state.Width == 0 || m.state.Height == 0 {
		return "Loading..."
	}
	width := m.state.Width

	overlay := m.overlayLines(width)
	overlayH := len(overlay)

	// header + top rule + bottom rule + status bar
	contentHeight := m.state.Height - 4 - overlayH
	if contentHeight < 1 {
		contentHeight = 1
	}

	leftW := m.leftWidth()
	rightW := width - leftW - 1
	if rightW < 1 {
		rightW = 1
	}
	m.state.Info.SetSize(rightW, infoBodyHeight(contentHeight))

	header := m.theme.TitleText("gitdeck") + " — " + m.state.RepoRoot
	hr := m.theme.DividerText(strings.Repeat("─", width))
	sep := m.theme.DividerText("│")

	leftLines := m.leftColumnLines(leftW, contentHeight)
	rightLines := m.rightColumnLines(rightW, contentHeight)

	var b strings.Builder
	b.WriteString(padToWidth(header, width))
	b.WriteByte('\n')
	b.WriteString(hr)
	b.WriteByte('\n')
	for i := 0; i < contentHeight; i++ {
		var l, r string
		if i < len(leftLines) {
			l = leftLines[i]
		}
		if i < len(rightLines) {
			r = rightLines[i]
		}
		b.WriteString(padToWidth(l, leftW))
		b.WriteString(sep)
		b.WriteString(padToWidth(r, rightW))
		b.WriteByte('\n')
	}
	for _, line := range overlay {
		b.WriteString(padToWidth(line, width))
		b.WriteByte('\n')
	}
	b.WriteString(strings.Repeat("─", width))
	b.WriteByte('\n')

	if m.busy {
		m.state.StatusBar.SetBusy(m.spin.View() + m.busyLabel + "…")
	} else {
		m.state.StatusBar.SetBusy("")
	}
	b.WriteString(m.state.StatusBar.Render(width))
	return b.String()
}

func (m *Program) leftWidth() int {
	w := m.state.Width / 3
	if w < 24 {
		w = 24
	}
	max := m.state.Width - 20
	if max < 20 {
		max = 20
	}
	if w > max {
		w = max
	}
	return w
}

func infoBodyHeight(contentHeight int) int {
	// title line + commit input line take two rows of the right column
	h := contentHeight - 2
	if h < 1 {
		h = 1
	}
	return h
}

// leftColumnLines stacks the four list panels into the left column.
func (m *Program) leftColumnLines(width, height int) []string {
	panels := []struct {
		panel *components.ListPanel
		id    panelID
	}{
		{m.state.Branches, panelBranches},
		{m.state.Remotes, panelRemotes},
		{m.state.Files, panelFiles},
		{m.state.Commits, panelCommits},
	}

	base := height / len(panels)
	if base < 2 {
		base = 2
	}
	lines := make([]string, 0, height)
	for i, p := range panels {
		section := base
		if i == len(panels)-1 {
			section = height - base*(len(panels)-1)
			if section < 2 {
				section = 2
			}
		}
		seg := make([]string, 0, section)
		title := fmt.Sprintf("%s (%d)", p.panel.Name(), p.panel.Len())
		if m.focus == p.id {
			seg = append(seg, m.theme.FocusTitle(title))
		} else {
			seg = append(seg, m.theme.TitleText(title))
		}
		seg = append(seg, p.panel.Render(section-1, m.focus == p.id)...)
		for len(seg) < section {
			seg = append(seg, "")
		}
		lines = append(lines, seg[:section]...)
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	return lines
}

// rightColumnLines renders the info panel plus the commit message box.
func (m *Program) rightColumnLines(width, height int) []string {
	lines := make([]string, 0, height)
	title := "Info — " + m.state.Info.Title()
	if m.focus == panelInfo {
		lines = append(lines, m.theme.FocusTitle(title))
	} else {
		lines = append(lines, m.theme.TitleText(title))
	}
	body := strings.Split(m.state.Info.View(), "\n")
	for i := 0; i < infoBodyHeight(height); i++ {
		if i < len(body) {
			lines = append(lines, body[i])
		} else {
			lines = append(lines, "")
		}
	}
	label := "Commit:"
	if m.commitFocus {
		label = m.theme.FocusTitle(label)
	} else {
		label = m.theme.TitleText(label)
	}
	lines = append(lines, label+" "+m.commitInput.View())
	if len(lines) > height {
		lines = lines[:height]
	}
	return lines
}

// overlayLines collects whichever transient surface is active, rendered
// right above the bottom rule the way all modal content is shown.
func (m *Program) overlayLines(width int) []string {
	if m.popup != nil {
		return m.popup.Render(width)
	}
	if m.prompt != nil {
		return m.prompt.Render(width)
	}
	if m.showSettings {
		return m.settingsOverlayLines(width)
	}
	if m.showHelp {
		return m.helpOverlayLines(width)
	}
	return nil
}

func (m *Program) settingsOverlayLines(width int) []string {
	traceState := "OFF"
	if logging.TraceEnabled() {
		traceState = "ON"
	}
	editor := m.state.Settings.Editor
	if editor == "" {
		editor = "(unset)"
	}
	entries := []string{
		fmt.Sprintf("Trace logging: %s — %s", traceState, logging.Path()),
		"Set log file path",
		"External editor: " + editor,
	}
	lines := []string{
		strings.Repeat("─", width),
		lipgloss.NewStyle().Bold(true).Render("Settings (enter: select, esc: close)"),
	}
	for i, e := range entries {
		cur := "  "
		if i == m.settingsIdx {
			cur = "> "
		}
		lines = append(lines, cur+e)
	}
	return lines
}

func (m *Program) helpOverlayLines(width int) []string {
	lines := []string{
		strings.Repeat("─", width),
		lipgloss.NewStyle().Bold(true).Render("Help — press '?' or Esc to close"),
	}
	for _, b := range m.keys.helpEntries() {
		h := b.Help()
		lines = append(lines, fmt.Sprintf("%-12s %s", h.Key, h.Desc))
	}
	return lines
}

func padToWidth(s string, w int) string {
	width := lipgloss.Width(s)
	if width == w {
		return s
	}
	if width < w {
		return s + strings.Repeat(" ", w-width)
	}
	return ansi.Truncate(s, w, "…")
}

// resizeInfoPanel keeps the info viewport sized to the current layout when
// content changes outside of View.
func (m *Program) resizeInfoPanel() {
	if m.state.Width == 0 || m.state.Height == 0 {
		return
	}
	contentHeight := m.state.Height - 4
	if contentHeight < 1 {
		contentHeight = 1
	}
	rightW := m.state.Width - m.leftWidth() - 1
	if rightW < 1 {
		rightW = 1
	}
	m.state.Info.SetSize(rightW, infoBodyHeight(contentHeight))
}
