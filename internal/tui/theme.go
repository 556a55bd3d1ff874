package tui

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines customizable colors for rendering.
type Theme struct {
	TitleColor   string `json:"titleColor"`
	FocusColor   string `json:"focusColor"`
	ErrorColor   string `json:"errorColor"`
	OkColor      string `json:"okColor"`
	DividerColor string `json:"dividerColor"`
}

func defaultTheme() Theme {
	return Theme{
		TitleColor:   "63",
		FocusColor:   "170",
		ErrorColor:   "196",
		OkColor:      "34",
		DividerColor: "240",
	}
}

// loadThemeFromRepo tries .gitdeck/theme.json at repoRoot, merging over the
// defaults so partial files work.
func loadThemeFromRepo(repoRoot string) Theme {
	t := defaultTheme()
	path := filepath.Join(repoRoot, ".gitdeck", "theme.json")
	b, err := os.ReadFile(path)
	if err != nil {
		return t
	}
	var u Theme
	if err := json.Unmarshal(b, &u); err != nil {
		return t
	}
	if u.TitleColor != "" {
		t.TitleColor = u.TitleColor
	}
	if u.FocusColor != "" {
		t.FocusColor = u.FocusColor
	}
	if u.ErrorColor != "" {
		t.ErrorColor = u.ErrorColor
	}
	if u.OkColor != "" {
		t.OkColor = u.OkColor
	}
	if u.DividerColor != "" {
		t.DividerColor = u.DividerColor
	}
	return t
}

func (t Theme) TitleText(s string) string {
	return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(t.TitleColor)).Render(s)
}

func (t Theme) FocusTitle(s string) string {
	return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(t.FocusColor)).Render(s)
}

func (t Theme) ErrText(s string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(t.ErrorColor)).Render(s)
}

func (t Theme) OkText(s string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(t.OkColor)).Render(s)
}

func (t Theme) DividerText(s string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(t.DividerColor)).Render(s)
}
