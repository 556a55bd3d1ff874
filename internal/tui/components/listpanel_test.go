package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListPanel_SetItemsKeepsSelectionInRange(t *testing.T) {
	p := NewListPanel("Branches")
	assert.Equal(t, -1, p.Selected())

	p.SetItems([]string{"a", "b", "c"})
	assert.Equal(t, 0, p.Selected())

	p.Select(2)
	p.SetItems([]string{"x", "y", "z", "w"})
	assert.Equal(t, 2, p.Selected())

	item, ok := p.SelectedItem()
	assert.True(t, ok)
	assert.Equal(t, "z", item)
}

func TestListPanel_SetItemsClampsWhenListShrinks(t *testing.T) {
	p := NewListPanel("Changes")
	p.SetItems([]string{"a", "b", "c", "d"})
	p.Select(3)

	p.SetItems([]string{"a", "b"})
	assert.Equal(t, 1, p.Selected())
}

func TestListPanel_SetItemsUnselectsWhenEmpty(t *testing.T) {
	p := NewListPanel("Remotes")
	p.SetItems([]string{"origin"})
	assert.Equal(t, 0, p.Selected())

	p.SetItems(nil)
	assert.Equal(t, -1, p.Selected())
	_, ok := p.SelectedItem()
	assert.False(t, ok)

	// Repopulating from empty lands on the first entry.
	p.SetItems([]string{"origin", "upstream"})
	assert.Equal(t, 0, p.Selected())
}

func TestListPanel_MoveSelectionClamps(t *testing.T) {
	p := NewListPanel("Commits")
	assert.False(t, p.MoveSelection(1))

	p.SetItems([]string{"a", "b", "c"})
	assert.True(t, p.MoveSelection(1))
	assert.Equal(t, 1, p.Selected())

	assert.True(t, p.MoveSelection(10))
	assert.Equal(t, 2, p.Selected())
	assert.False(t, p.MoveSelection(1))

	assert.True(t, p.MoveSelection(-10))
	assert.Equal(t, 0, p.Selected())
	assert.False(t, p.MoveSelection(-1))
}

func TestListPanel_RenderMarkersAndScroll(t *testing.T) {
	p := NewListPanel("Branches")
	assert.Equal(t, []string{"  (empty)"}, p.Render(3, true))

	p.SetItems([]string{"a", "b", "c", "d", "e"})
	p.Select(1)
	assert.Equal(t, []string{"  a", "> b", "  c"}, p.Render(3, true))
	assert.Equal(t, []string{"  a", "· b", "  c"}, p.Render(3, false))

	// Selecting past the window scrolls it down.
	p.Select(4)
	assert.Equal(t, []string{"  c", "  d", "> e"}, p.Render(3, true))
}
