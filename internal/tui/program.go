package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/interpretive-systems/gitdeck/internal/config"
	"github.com/interpretive-systems/gitdeck/internal/gitcmd"
	"github.com/interpretive-systems/gitdeck/internal/logging"
	"github.com/interpretive-systems/gitdeck/internal/tui/components"
	"github.com/interpretive-systems/gitdeck/internal/tui/prompts"
)

// opKind tags the pending operation a prompt chain is collecting inputs for.
type opKind int

const (
	opNone opKind = iota
	opAddRemote
	opCreateBranch
	opCredsPush
	opCredsPull
	opSetEditor
	opSetLogFile
)

// Program is the bubbletea model driving the dashboard.
type Program struct {
	state *State
	keys  keyMap
	theme Theme

	focus panelID

	popup      *components.Popup
	prompt     *prompts.Chain
	promptKind opKind

	commitInput textinput.Model
	commitFocus bool

	showHelp     bool
	showSettings bool
	settingsIdx  int

	busy      bool
	busyLabel string
	spin      spinner.Model
}

// Run instantiates and runs the dashboard for the given repository.
func Run(repoRoot string, settings config.Settings) error {
	runner := &gitcmd.Runner{RepoRoot: repoRoot}
	p := tea.NewProgram(newProgram(NewState(repoRoot, runner, settings)), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func newProgram(state *State) *Program {
	ti := textinput.New()
	ti.Placeholder = "Commit message"
	ti.Prompt = "> "

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return &Program{
		state:       state,
		keys:        defaultKeyMap(),
		theme:       loadThemeFromRepo(state.RepoRoot),
		commitInput: ti,
		spin:        sp,
	}
}

func (m *Program) Init() tea.Cmd {
	return m.refreshAll()
}

func (m *Program) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		m.resizeInfoPanel()
		return m, nil

	case spinner.TickMsg:
		if !m.busy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case branchesMsg:
		return m, m.handleBranches(msg.res)

	case remotesMsg:
		if msg.res.Status < 0 {
			m.popup = components.NewError("Cannot get git remotes", msg.res.Output)
			return m, nil
		}
		m.state.Remotes.SetItems(gitcmd.Lines(msg.res.Output))
		return m, nil

	case filesMsg:
		if msg.res.Status < 0 {
			m.popup = components.NewError("Cannot get git status", msg.res.Output)
			return m, nil
		}
		m.state.Files.SetItems(gitcmd.Lines(msg.res.Output))
		return m, nil

	case commitsMsg:
		if msg.res.Status < 0 {
			m.popup = components.NewError("Cannot get recent commits", msg.res.Output)
			return m, nil
		}
		// Ignore stale results for a branch that is no longer selected.
		if cur, ok := m.state.CurrentBranch(); !ok || cur != msg.branch {
			return m, nil
		}
		m.state.Commits.SetItems(gitcmd.Lines(msg.res.Output))
		return m, nil

	case remoteInfoMsg:
		if msg.res.Status < 0 {
			m.popup = components.NewError("Cannot get remote info", msg.res.Output)
			return m, nil
		}
		m.setInfo(msg.remote+" remote info", msg.res.Output)
		return m, nil

	case pushResultMsg:
		return m, m.handlePushResult(msg)

	case clipboardMsg:
		if msg.err != nil {
			m.popup = components.NewError("Clipboard export failed", msg.err.Error())
		} else {
			m.popup = components.NewMessage("Copied", "Info panel content copied to clipboard")
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

// handleBranches replaces the branch panel and forces the selection onto the
// currently checked-out entry; branch identity, not position, drives this
// panel. The derived commits panel is reloaded afterwards.
func (m *Program) handleBranches(res gitcmd.Result) tea.Cmd {
	if res.Status < 0 {
		m.popup = components.NewError("Cannot get git branches", res.Output)
		return nil
	}
	lines := gitcmd.Lines(res.Output)
	m.state.Branches.SetItems(lines)
	m.state.Branches.Select(gitcmd.CurrentBranchIndex(lines))

	m.state.LastRefresh = time.Now()
	m.state.StatusBar.SetLastRefresh(m.state.LastRefresh)

	name, ok := m.state.CurrentBranch()
	if !ok {
		m.state.StatusBar.SetBranch("")
		m.state.Commits.SetItems(nil)
		return nil
	}
	m.state.StatusBar.SetBranch(name)
	return loadCommits(m.state.Runner, name)
}

func (m *Program) handlePushResult(msg pushResultMsg) tea.Cmd {
	m.busy = false
	m.busyLabel = ""
	m.setInfo("Push — "+msg.remote+"/"+msg.branch, msg.res.Output)
	if msg.res.Ok() {
		m.popup = components.NewMessage("Pushed successfully", msg.res.Output)
	} else {
		m.popup = components.NewError("Unable to push to remote", msg.res.Output)
	}
	logging.Trace("push.done", map[string]interface{}{
		"branch": msg.branch,
		"remote": msg.remote,
		"status": msg.res.Status,
	})
	// Refresh regardless of status: the remote operation may have partially
	// changed repository state before failing.
	return m.refreshAll()
}

func (m *Program) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// One remote operation at a time: while busy the dashboard only quits.
	if m.busy {
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		return m, nil
	}
	if m.popup != nil {
		return m, m.handlePopupKey(msg)
	}
	if m.prompt != nil {
		return m, m.handlePromptKey(msg)
	}
	if m.commitFocus {
		return m, m.handleCommitKey(msg)
	}
	if m.showHelp {
		switch msg.String() {
		case "?", "esc", "q":
			m.showHelp = false
		}
		return m, nil
	}
	if m.showSettings {
		return m, m.handleSettingsKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
	case key.Matches(msg, m.keys.Refresh):
		return m, m.refreshAll()
	case key.Matches(msg, m.keys.NextPanel):
		m.focus = (m.focus + 1) % 5
	case key.Matches(msg, m.keys.PrevPanel):
		m.focus = (m.focus + 4) % 5
	case key.Matches(msg, m.keys.Down):
		return m, m.moveSelection(1)
	case key.Matches(msg, m.keys.Up):
		return m, m.moveSelection(-1)
	case key.Matches(msg, m.keys.Enter):
		return m, m.actOnSelection()
	case key.Matches(msg, m.keys.Commit):
		m.commitFocus = true
		return m, m.commitInput.Focus()
	case key.Matches(msg, m.keys.NewBranch):
		m.startPrompt(opCreateBranch,
			prompts.Step{Title: "New branch name", Placeholder: "branch name"})
	case key.Matches(msg, m.keys.StageAll):
		return m, m.stageAll()
	case key.Matches(msg, m.keys.AddRemote):
		m.startPrompt(opAddRemote,
			prompts.Step{Title: "New remote name", Placeholder: "origin"},
			prompts.Step{Title: "New remote url", Placeholder: "https://..."})
	case key.Matches(msg, m.keys.Diff):
		return m, m.showDiff()
	case key.Matches(msg, m.keys.DiffFile):
		return m, m.showDiffFile()
	case key.Matches(msg, m.keys.Log):
		return m, m.showLog()
	case key.Matches(msg, m.keys.RemoteInfo):
		return m, m.showRemoteInfo()
	case key.Matches(msg, m.keys.Push):
		return m, m.startPush()
	case key.Matches(msg, m.keys.Pull):
		return m, m.startPull()
	case key.Matches(msg, m.keys.Editor):
		return m, m.openEditor()
	case key.Matches(msg, m.keys.Menu):
		m.popup = components.NewMenu("Full Control Menu", controlMenuChoices())
	case key.Matches(msg, m.keys.Settings):
		m.showSettings = true
		m.settingsIdx = 0
	case key.Matches(msg, m.keys.Copy):
		return m, copyToClipboard(m.state.Info.Text())
	}
	return m, nil
}

func (m *Program) handlePopupKey(msg tea.KeyMsg) tea.Cmd {
	if m.popup.Kind == components.PopupMenu {
		switch msg.String() {
		case "j", "down":
			m.popup.MoveSelection(1)
		case "k", "up":
			m.popup.MoveSelection(-1)
		case "enter":
			choice, ok := m.popup.Choice()
			m.popup = nil
			if ok {
				return m.dispatchMenuChoice(choice)
			}
		case "esc", "q":
			m.popup = nil
		}
		return nil
	}
	switch msg.String() {
	case "enter", "esc", "q", " ":
		m.popup = nil
	}
	return nil
}

func (m *Program) handlePromptKey(msg tea.KeyMsg) tea.Cmd {
	cmd, done, cancel := m.prompt.Update(msg)
	if cancel {
		m.prompt = nil
		m.promptKind = opNone
		return nil
	}
	if done {
		values := m.prompt.Values()
		kind := m.promptKind
		m.prompt = nil
		m.promptKind = opNone
		return m.completePrompt(kind, values)
	}
	return cmd
}

func (m *Program) handleCommitKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		m.commitFocus = false
		m.commitInput.Blur()
		return nil
	case "enter":
		m.commitFocus = false
		m.commitInput.Blur()
		return m.commitFromInput()
	}
	var cmd tea.Cmd
	m.commitInput, cmd = m.commitInput.Update(msg)
	return cmd
}

// startPrompt opens a prompt chain for the given pending operation kind.
func (m *Program) startPrompt(kind opKind, steps ...prompts.Step) {
	m.prompt = prompts.New(steps...)
	m.promptKind = kind
}

// moveSelection moves the cursor in the focused panel. Branch and remote
// moves recompute their derived panels with the newly selected name.
func (m *Program) moveSelection(delta int) tea.Cmd {
	switch m.focus {
	case panelInfo:
		if delta > 0 {
			m.state.Info.ScrollDown(delta)
		} else {
			m.state.Info.ScrollUp(-delta)
		}
	case panelBranches:
		if m.state.Branches.MoveSelection(delta) {
			if name, ok := m.state.CurrentBranch(); ok {
				return loadCommits(m.state.Runner, name)
			}
		}
	case panelRemotes:
		if m.state.Remotes.MoveSelection(delta) {
			if remote, ok := m.state.SelectedRemote(); ok {
				return loadRemoteInfo(m.state.Runner, remote)
			}
		}
	case panelFiles:
		m.state.Files.MoveSelection(delta)
	case panelCommits:
		m.state.Commits.MoveSelection(delta)
	}
	return nil
}

// actOnSelection runs the focused panel's primary action.
func (m *Program) actOnSelection() tea.Cmd {
	switch m.focus {
	case panelBranches:
		return m.checkoutSelectedBranch()
	case panelRemotes:
		return m.showRemoteInfo()
	case panelFiles:
		return m.addRevertSelectedFile()
	}
	return nil
}

func (m *Program) setInfo(title, text string) {
	m.state.Info.SetText(title, text)
	m.resizeInfoPanel()
}
