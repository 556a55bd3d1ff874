package tui

import (
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/interpretive-systems/gitdeck/internal/gitcmd"
)

// refreshAll re-fetches every independently backed panel. Each fetch runs as
// its own command so one failing panel never blocks the others; the derived
// commits panel is requested once the branch list lands.
func (m *Program) refreshAll() tea.Cmd {
	r := m.state.Runner
	return tea.Batch(loadBranches(r), loadRemotes(r), loadFiles(r))
}

func loadBranches(r Commander) tea.Cmd {
	return func() tea.Msg {
		return branchesMsg{res: r.Branches()}
	}
}

func loadRemotes(r Commander) tea.Cmd {
	return func() tea.Msg {
		return remotesMsg{res: r.Remotes()}
	}
}

func loadFiles(r Commander) tea.Cmd {
	return func() tea.Msg {
		return filesMsg{res: r.StatusShort()}
	}
}

func loadCommits(r Commander, branch string) tea.Cmd {
	return func() tea.Msg {
		return commitsMsg{branch: branch, res: r.RecentCommits(branch)}
	}
}

func loadRemoteInfo(r Commander, remote string) tea.Cmd {
	return func() tea.Msg {
		return remoteInfoMsg{remote: remote, res: r.RemoteInfo(remote)}
	}
}

// pushBranch runs the network push off the update loop. The closure only
// computes a result; all state mutation happens in the pushResultMsg
// handler.
func pushBranch(r Commander, branch, remote string, creds gitcmd.Credentials) tea.Cmd {
	return func() tea.Msg {
		return pushResultMsg{branch: branch, remote: remote, res: r.PushBranch(branch, remote, creds)}
	}
}

func copyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		return clipboardMsg{err: clipboard.WriteAll(text)}
	}
}
