package gitcmd

import "strings"

// Lines splits newline-delimited command output into records, preserving the
// order git returned them. Blank records are dropped.
func Lines(output string) []string {
	raw := strings.Split(strings.TrimRight(output, "\n"), "\n")
	out := make([]string, 0, len(raw))
	for _, l := range raw {
		if strings.TrimSpace(l) == "" {
			continue
		}
		out = append(out, l)
	}
	return out
}

// IsCurrentBranch reports whether a `git branch` line carries the
// currently-checked-out marker.
func IsCurrentBranch(line string) bool {
	return strings.HasPrefix(line, "*")
}

// BranchName strips the two-character marker column from a branch list line.
func BranchName(line string) string {
	if len(line) <= 2 {
		return strings.TrimSpace(line)
	}
	return line[2:]
}

// CurrentBranchIndex scans an ordered branch list for the entry bearing the
// current marker. Defaults to 0 when no entry carries one.
func CurrentBranchIndex(lines []string) int {
	for i, l := range lines {
		if IsCurrentBranch(l) {
			return i
		}
	}
	return 0
}

// ChangeKind classifies a file's working-tree status.
type ChangeKind int

const (
	KindUnknown ChangeKind = iota
	KindUntracked
	KindModified // changed in the working tree, not staged
	KindStaged
)

// StatusEntry is one decoded line of short-format status output.
type StatusEntry struct {
	Kind ChangeKind
	Path string
}

// ParseStatusLine decodes a short-status line ("XY path"). The first column
// is the index state, the second the working tree state; anything already in
// the index counts as staged.
func ParseStatusLine(line string) StatusEntry {
	if len(line) < 4 {
		return StatusEntry{Kind: KindUnknown, Path: strings.TrimSpace(line)}
	}
	entry := StatusEntry{Path: line[3:]}
	switch line[0] {
	case '?':
		entry.Kind = KindUntracked
	case ' ':
		entry.Kind = KindModified
	default:
		entry.Kind = KindStaged
	}
	return entry
}

// Stageable reports whether invoking add/revert on this entry should stage
// it; entries already in the index get unstaged instead.
func (e StatusEntry) Stageable() bool {
	return e.Kind == KindUntracked || e.Kind == KindModified
}
