// Package prompts implements the transient input chains the dashboard uses
// to capture one or more text values before completing a pending operation
// (new remote name + URL, credentials, branch names, settings values).
package prompts

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Step describes a single text prompt in a chain.
type Step struct {
	Title       string
	Placeholder string
	Secret      bool
}

// Chain collects the answers to an ordered sequence of prompts. The caller
// shows it until Update reports done, then consumes Values exactly once.
type Chain struct {
	steps  []Step
	values []string
	input  textinput.Model
	step   int
}

// New builds a chain from one or more steps and focuses the first input.
func New(steps ...Step) *Chain {
	c := &Chain{steps: steps, values: make([]string, 0, len(steps))}
	c.input = newInput(steps[0])
	return c
}

func newInput(s Step) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = s.Placeholder
	ti.Prompt = "> "
	if s.Secret {
		ti.EchoMode = textinput.EchoPassword
		ti.EchoCharacter = '•'
	}
	ti.Focus()
	return ti
}

// Update feeds a message to the active input. It reports done when the last
// step was submitted and cancel when the user dismissed the chain; captured
// values are discarded on cancel.
func (c *Chain) Update(msg tea.Msg) (cmd tea.Cmd, done, cancel bool) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		c.input, cmd = c.input.Update(msg)
		return cmd, false, false
	}
	switch key.String() {
	case "esc":
		return nil, false, true
	case "enter":
		c.values = append(c.values, c.input.Value())
		c.step++
		if c.step >= len(c.steps) {
			return nil, true, false
		}
		c.input = newInput(c.steps[c.step])
		return nil, false, false
	}
	c.input, cmd = c.input.Update(key)
	return cmd, false, false
}

// Values returns the captured answers in step order.
func (c *Chain) Values() []string { return c.values }

// Value returns the answer at index i, or "" when out of range.
func (c *Chain) Value(i int) string {
	if i < 0 || i >= len(c.values) {
		return ""
	}
	return c.values[i]
}

// Render renders the active prompt as overlay lines.
func (c *Chain) Render(width int) []string {
	step := c.steps[c.step]
	title := step.Title
	if len(c.steps) > 1 {
		title = fmt.Sprintf("%s (%d/%d)", title, c.step+1, len(c.steps))
	}
	return []string{
		strings.Repeat("─", width),
		lipgloss.NewStyle().Bold(true).Render(title + " (enter: submit, esc: cancel)"),
		c.input.View(),
	}
}
