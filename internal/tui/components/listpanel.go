package components

import (
	"fmt"
)

// ListPanel is a named, ordered, selectable list backed by a refresh
// operation. Items are replaced wholesale on refresh; the selected index is
// only ever mutated here or by key-driven moves.
type ListPanel struct {
	name     string
	items    []string
	selected int
	offset   int
}

// NewListPanel creates an empty panel with the given display name.
func NewListPanel(name string) *ListPanel {
	return &ListPanel{name: name, selected: -1}
}

// Name returns the panel's display name.
func (p *ListPanel) Name() string { return p.name }

// Items returns the current item list in display order.
func (p *ListPanel) Items() []string { return p.items }

// Len returns the number of items.
func (p *ListPanel) Len() int { return len(p.items) }

// Selected returns the selected index, or -1 when the panel is empty.
func (p *ListPanel) Selected() int {
	if len(p.items) == 0 {
		return -1
	}
	return p.selected
}

// SelectedItem returns the selected item, if any.
func (p *ListPanel) SelectedItem() (string, bool) {
	if len(p.items) == 0 || p.selected < 0 || p.selected >= len(p.items) {
		return "", false
	}
	return p.items[p.selected], true
}

// Select moves the selection to index i, clamped into range.
func (p *ListPanel) Select(i int) {
	if len(p.items) == 0 {
		p.selected = -1
		return
	}
	if i < 0 {
		i = 0
	}
	if i >= len(p.items) {
		i = len(p.items) - 1
	}
	p.selected = i
}

// MoveSelection moves the selection by delta, clamped into range. Reports
// whether the selection changed.
func (p *ListPanel) MoveSelection(delta int) bool {
	if len(p.items) == 0 {
		return false
	}
	prev := p.selected
	p.Select(p.selected + delta)
	return p.selected != prev
}

// SetItems replaces the panel content, keeping the cursor on the same index
// when it is still in range, clamping to the last item when the list shrank
// past it, and unselecting when the new list is empty.
func (p *ListPanel) SetItems(items []string) {
	prev := p.selected
	p.items = items
	p.offset = 0
	switch {
	case len(items) == 0:
		p.selected = -1
	case prev < 0:
		p.selected = 0
	case prev < len(items):
		p.selected = prev
	default:
		p.selected = len(items) - 1
	}
}

// ensureVisible adjusts the scroll offset so the selection stays on screen.
func (p *ListPanel) ensureVisible(visible int) {
	if len(p.items) == 0 || visible <= 0 {
		p.offset = 0
		return
	}
	maxStart := len(p.items) - visible
	if maxStart < 0 {
		maxStart = 0
	}
	if p.offset > maxStart {
		p.offset = maxStart
	}
	if p.selected >= 0 && p.selected < p.offset {
		p.offset = p.selected
	} else if p.selected >= p.offset+visible {
		p.offset = p.selected - visible + 1
	}
	if p.offset < 0 {
		p.offset = 0
	}
}

// Render renders the panel body as at most height lines.
func (p *ListPanel) Render(height int, focused bool) []string {
	lines := make([]string, 0, height)
	if height <= 0 {
		return lines
	}
	if len(p.items) == 0 {
		return append(lines, "  (empty)")
	}
	p.ensureVisible(height)
	end := p.offset + height
	if end > len(p.items) {
		end = len(p.items)
	}
	for i := p.offset; i < end; i++ {
		marker := "  "
		if i == p.selected && focused {
			marker = "> "
		} else if i == p.selected {
			marker = "· "
		}
		lines = append(lines, fmt.Sprintf("%s%s", marker, p.items[i]))
	}
	return lines
}
