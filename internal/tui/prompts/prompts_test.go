package prompts

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func keyEnter() tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyEnter} }
func keyEsc() tea.KeyMsg   { return tea.KeyMsg{Type: tea.KeyEscape} }

func TestChain_TwoStepsCollectInOrder(t *testing.T) {
	c := New(
		Step{Title: "Remote name"},
		Step{Title: "Remote URL"},
	)

	_, done, cancel := c.Update(keyRunes("origin"))
	assert.False(t, done)
	assert.False(t, cancel)

	_, done, _ = c.Update(keyEnter())
	assert.False(t, done, "first submit advances, does not finish")

	c.Update(keyRunes("https://example.com/r.git"))
	_, done, cancel = c.Update(keyEnter())
	assert.True(t, done)
	assert.False(t, cancel)

	assert.Equal(t, []string{"origin", "https://example.com/r.git"}, c.Values())
	assert.Equal(t, "origin", c.Value(0))
	assert.Equal(t, "", c.Value(5))
}

func TestChain_SingleStep(t *testing.T) {
	c := New(Step{Title: "New branch name"})
	c.Update(keyRunes("feature"))
	_, done, _ := c.Update(keyEnter())
	assert.True(t, done)
	assert.Equal(t, "feature", c.Value(0))
}

func TestChain_EscapeCancels(t *testing.T) {
	c := New(Step{Title: "Username"}, Step{Title: "Token", Secret: true})
	c.Update(keyRunes("user"))
	_, done, cancel := c.Update(keyEsc())
	assert.False(t, done)
	assert.True(t, cancel)
}

func TestChain_RenderShowsStepCounter(t *testing.T) {
	c := New(Step{Title: "Username"}, Step{Title: "Token", Secret: true})
	lines := c.Render(20)
	assert.Len(t, lines, 3)
	assert.Contains(t, lines[1], "Username (1/2)")

	c.Update(keyEnter())
	lines = c.Render(20)
	assert.Contains(t, lines[1], "Token (2/2)")

	// Single-step chains omit the counter.
	s := New(Step{Title: "Commit message"})
	assert.Contains(t, s.Render(20)[1], "Commit message (enter")
	assert.NotContains(t, s.Render(20)[1], "(1/1)")
}
