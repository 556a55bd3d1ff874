package tui

import (
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/interpretive-systems/gitdeck/internal/config"
	"github.com/interpretive-systems/gitdeck/internal/gitcmd"
	"github.com/interpretive-systems/gitdeck/internal/logging"
	"github.com/interpretive-systems/gitdeck/internal/tui/components"
	"github.com/interpretive-systems/gitdeck/internal/tui/prompts"
)

// The operation dispatcher. Every user action follows the same three phases:
// check preconditions (panel selection, credentials), execute through the
// Command Runner, then report via popup and refresh the affected panels.
// Local operations run inline and block only for the duration of the call;
// the network push goes through the async path in startPush.

func controlMenuChoices() []string {
	return []string{"Add Remote", "Add All", "Push Branch", "Pull Branch"}
}

func (m *Program) dispatchMenuChoice(choice string) tea.Cmd {
	switch choice {
	case "Add Remote":
		m.startPrompt(opAddRemote,
			prompts.Step{Title: "New remote name", Placeholder: "origin"},
			prompts.Step{Title: "New remote url", Placeholder: "https://..."})
		return nil
	case "Add All":
		return m.stageAll()
	case "Push Branch":
		return m.startPush()
	case "Pull Branch":
		return m.startPull()
	default:
		m.popup = components.NewWarning("Warning - Not supported",
			"This menu item has not yet been implemented.")
		return nil
	}
}

// completePrompt consumes a finished prompt chain exactly once.
func (m *Program) completePrompt(kind opKind, values []string) tea.Cmd {
	switch kind {
	case opAddRemote:
		return m.addRemote(value(values, 0), value(values, 1))
	case opCreateBranch:
		return m.createBranch(value(values, 0))
	case opCredsPush, opCredsPull:
		m.state.Creds = gitcmd.Credentials{
			Username: value(values, 0),
			Token:    value(values, 1),
		}
		m.state.CredsEntered = true
		if kind == opCredsPush {
			return m.startPush()
		}
		return m.startPull()
	case opSetEditor:
		return m.setEditor(value(values, 0))
	case opSetLogFile:
		return m.setLogFile(value(values, 0))
	}
	return nil
}

func value(values []string, i int) string {
	if i < 0 || i >= len(values) {
		return ""
	}
	return values[i]
}

// addRemote registers a new remote. The remote panel only refreshes on
// success, so a failure leaves the previous list visible.
func (m *Program) addRemote(name, url string) tea.Cmd {
	res := m.state.Runner.AddRemote(name, url)
	if !res.Ok() {
		m.popup = components.NewError("Failed to add remote", res.Output)
		return nil
	}
	return m.refreshAll()
}

// addRevertSelectedFile stages the selected file when it is untracked or
// modified-unstaged, and unstages it otherwise. A refresh follows regardless
// of the outcome since the index may have partially changed.
func (m *Program) addRevertSelectedFile() tea.Cmd {
	entry, ok := m.state.SelectedFile()
	if !ok {
		return nil
	}
	var res gitcmd.Result
	if entry.Stageable() {
		res = m.state.Runner.AddFile(entry.Path)
	} else {
		res = m.state.Runner.ResetFile(entry.Path)
	}
	if !res.Ok() {
		m.popup = components.NewError("Cannot add/revert file "+entry.Path, res.Output)
	}
	return m.refreshAll()
}

// stageAll stages every change. No refresh on failure.
func (m *Program) stageAll() tea.Cmd {
	res := m.state.Runner.AddAll()
	if !res.Ok() {
		m.popup = components.NewError("Git Add Error", res.Output)
		return nil
	}
	return m.refreshAll()
}

// commitFromInput commits with the message box content. The box is cleared
// after every attempt, success or failure.
func (m *Program) commitFromInput() tea.Cmd {
	message := m.commitInput.Value()
	m.commitInput.SetValue("")

	res := m.state.Runner.Commit(message)
	logging.Trace("commit", map[string]interface{}{"status": res.Status})
	if !res.Ok() {
		m.popup = components.NewError("Commit failed!", res.Output)
		return nil
	}
	m.popup = components.NewMessage("Success", "Committed: "+message)
	logCmd := m.showLog()
	return tea.Batch(m.refreshAll(), logCmd)
}

// startPush begins the push flow: prompt for credentials when the session
// has none, otherwise run the push in the background with a busy indicator.
func (m *Program) startPush() tea.Cmd {
	branch, okB := m.state.CurrentBranch()
	remote, okR := m.state.SelectedRemote()
	if !okB || !okR {
		m.popup = components.NewWarning("Cannot push",
			"Select a branch and a remote before pushing.")
		return nil
	}
	if !m.state.CredsEntered {
		m.askCredentials(opCredsPush)
		return nil
	}
	m.busy = true
	m.busyLabel = "Pushing"
	logging.Trace("push.start", map[string]interface{}{"branch": branch, "remote": remote})
	return tea.Batch(m.spin.Tick,
		pushBranch(m.state.Runner, branch, remote, m.state.Creds))
}

// startPull runs the pull flow. The pull itself is a local blocking call; a
// refresh always follows, and only success updates the info panel.
func (m *Program) startPull() tea.Cmd {
	branch, okB := m.state.CurrentBranch()
	remote, okR := m.state.SelectedRemote()
	if !okB || !okR {
		m.popup = components.NewWarning("Cannot pull",
			"Select a branch and a remote before pulling.")
		return nil
	}
	if !m.state.CredsEntered {
		m.askCredentials(opCredsPull)
		return nil
	}
	res := m.state.Runner.PullBranch(branch, remote, m.state.Creds)
	logging.Trace("pull", map[string]interface{}{
		"branch": branch, "remote": remote, "status": res.Status,
	})
	if res.Ok() {
		m.setInfo("Pull — "+remote+"/"+branch, res.Output)
		m.popup = components.NewMessage("Pulled branch",
			"Successfully pulled branch "+branch+" from remote "+remote)
	} else {
		m.popup = components.NewError("Failed to pull from remote", res.Output)
	}
	return m.refreshAll()
}

func (m *Program) askCredentials(kind opKind) {
	m.startPrompt(kind,
		prompts.Step{Title: "Remote username", Placeholder: "username"},
		prompts.Step{Title: "Remote password or token", Placeholder: "token", Secret: true})
}

// createBranch validates the name before any command is invoked. A refresh
// follows even when the command fails.
func (m *Program) createBranch(name string) tea.Cmd {
	if len(strings.TrimSpace(name)) == 0 {
		m.popup = components.NewError("ERROR - Illegal branchname",
			"Please enter a valid branchname.")
		return nil
	}
	res := m.state.Runner.CreateBranch(name)
	if !res.Ok() {
		m.popup = components.NewError("Failed to create branch", res.Output)
	}
	return m.refreshAll()
}

// checkoutSelectedBranch switches to the selected branch; silently does
// nothing when no branch is selected. A refresh follows regardless of
// status since checkout can partially switch.
func (m *Program) checkoutSelectedBranch() tea.Cmd {
	branch, ok := m.state.CurrentBranch()
	if !ok {
		return nil
	}
	res := m.state.Runner.CheckoutBranch(branch)
	if res.Ok() {
		m.popup = components.NewMessage("Checkout Successful", "Checked out branch "+branch)
	} else {
		m.popup = components.NewError("Failed to checkout branch", res.Output)
	}
	return m.refreshAll()
}

// showDiff populates the info panel with the repo-wide diff.
func (m *Program) showDiff() tea.Cmd {
	res := m.state.Runner.Diff()
	if res.Status < 0 {
		m.popup = components.NewError("Unable to show git diff repo.", res.Output)
		return nil
	}
	m.setInfo("Git Diff", res.Output)
	return nil
}

// showDiffFile populates the info panel with the selected file's diff.
func (m *Program) showDiffFile() tea.Cmd {
	entry, ok := m.state.SelectedFile()
	if !ok {
		return nil
	}
	res := m.state.Runner.DiffFile(entry.Path)
	if res.Status < 0 {
		m.popup = components.NewError("Unable to show git diff for file "+entry.Path, res.Output)
		return nil
	}
	m.setInfo("Git Diff — "+entry.Path, res.Output)
	return nil
}

// showLog populates the info panel with the selected branch's log; silently
// does nothing when no branch is selected.
func (m *Program) showLog() tea.Cmd {
	branch, ok := m.state.CurrentBranch()
	if !ok {
		return nil
	}
	res := m.state.Runner.Log(branch)
	if res.Status < 0 {
		m.popup = components.NewError("Unable to show git log for branch "+branch+".", res.Output)
		return nil
	}
	m.setInfo("Git Log — "+branch, res.Output)
	return nil
}

// showRemoteInfo requests remote detail for the info panel; silently does
// nothing when no remote is selected.
func (m *Program) showRemoteInfo() tea.Cmd {
	remote, ok := m.state.SelectedRemote()
	if !ok {
		return nil
	}
	return loadRemoteInfo(m.state.Runner, remote)
}

// openEditor launches the configured external editor on the repository
// directory. The selected file's path is resolved but the editor always
// opens on the directory; per-file opening is not wired up.
func (m *Program) openEditor() tea.Cmd {
	if strings.TrimSpace(m.state.Settings.Editor) == "" {
		m.popup = components.NewError("Error", "No default editor specified.")
		return nil
	}
	dir := m.state.RepoRoot
	if entry, ok := m.state.SelectedFile(); ok {
		_ = filepath.Join(dir, entry.Path)
	}
	res := m.state.Runner.OpenEditor(m.state.Settings.Editor, dir)
	if !res.Ok() {
		m.popup = components.NewError("Failed to open editor.", res.Output)
		return nil
	}
	m.popup = components.NewMessage("Opened "+dir,
		"Opened "+m.state.Settings.Editor+" editor in external window")
	return nil
}

// --- Settings overlay actions ---

const settingsEntryCount = 3

func (m *Program) handleSettingsKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc", "S", "q":
		m.showSettings = false
	case "j", "down":
		if m.settingsIdx < settingsEntryCount-1 {
			m.settingsIdx++
		}
	case "k", "up":
		if m.settingsIdx > 0 {
			m.settingsIdx--
		}
	case "enter":
		switch m.settingsIdx {
		case 0:
			m.toggleTrace()
		case 1:
			m.startPrompt(opSetLogFile,
				prompts.Step{Title: "New log file path", Placeholder: logging.Path()})
		case 2:
			m.startPrompt(opSetEditor,
				prompts.Step{Title: "External editor command", Placeholder: "vim"})
		}
	}
	return nil
}

func (m *Program) toggleTrace() {
	enabled := !logging.TraceEnabled()
	logging.SetTraceEnabled(enabled)
	if err := config.SaveTrace(m.state.RepoRoot, enabled); err != nil {
		m.popup = components.NewError("Failed to save setting", err.Error())
		return
	}
	m.state.Settings.Trace = enabled
	m.state.Info.Prepend("Toggled trace logging")
}

func (m *Program) setEditor(editor string) tea.Cmd {
	if err := config.SaveEditor(m.state.RepoRoot, editor); err != nil {
		m.popup = components.NewError("Failed to save editor", err.Error())
		return nil
	}
	m.state.Settings.Editor = editor
	m.state.Info.Prepend("Updated default editor to: " + editor)
	return nil
}

func (m *Program) setLogFile(path string) tea.Cmd {
	if err := config.SaveLogFile(m.state.RepoRoot, path); err != nil {
		m.popup = components.NewError("Permission Error", err.Error())
		return nil
	}
	logging.Configure(path)
	m.state.Settings.LogFile = path
	m.state.Info.Prepend("Updated log file path: " + path)
	return nil
}
