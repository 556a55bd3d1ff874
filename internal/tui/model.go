package tui

import (
	"time"

	"github.com/interpretive-systems/gitdeck/internal/config"
	"github.com/interpretive-systems/gitdeck/internal/gitcmd"
	"github.com/interpretive-systems/gitdeck/internal/tui/components"
)

// Commander is the command-runner surface the dashboard consumes. Satisfied
// by *gitcmd.Runner; tests substitute a scripted fake.
type Commander interface {
	StatusShort() gitcmd.Result
	Remotes() gitcmd.Result
	Branches() gitcmd.Result
	RemoteInfo(remote string) gitcmd.Result
	RecentCommits(branch string) gitcmd.Result
	Log(branch string) gitcmd.Result
	Diff() gitcmd.Result
	DiffFile(path string) gitcmd.Result
	AddRemote(name, url string) gitcmd.Result
	AddFile(path string) gitcmd.Result
	ResetFile(path string) gitcmd.Result
	AddAll() gitcmd.Result
	Commit(message string) gitcmd.Result
	PullBranch(branch, remote string, creds gitcmd.Credentials) gitcmd.Result
	PushBranch(branch, remote string, creds gitcmd.Credentials) gitcmd.Result
	CreateBranch(name string) gitcmd.Result
	CheckoutBranch(name string) gitcmd.Result
	OpenEditor(editor, dir string) gitcmd.Result
}

// panelID identifies the focusable regions of the dashboard.
type panelID int

const (
	panelBranches panelID = iota
	panelRemotes
	panelFiles
	panelCommits
	panelInfo
)

// State holds all application state shared between the update loop and the
// operation dispatcher.
type State struct {
	RepoRoot string
	Runner   Commander
	Settings config.Settings

	// Session-scoped remote credentials, entered at most once.
	Creds        gitcmd.Credentials
	CredsEntered bool

	Branches  *components.ListPanel
	Remotes   *components.ListPanel
	Files     *components.ListPanel
	Commits   *components.ListPanel
	Info      *components.InfoPanel
	StatusBar *components.StatusBar

	Width       int
	Height      int
	LastRefresh time.Time
}

// NewState creates the initial application state.
func NewState(repoRoot string, runner Commander, settings config.Settings) *State {
	return &State{
		RepoRoot:  repoRoot,
		Runner:    runner,
		Settings:  settings,
		Branches:  components.NewListPanel("Branches"),
		Remotes:   components.NewListPanel("Remotes"),
		Files:     components.NewListPanel("Changes"),
		Commits:   components.NewListPanel("Commits"),
		Info:      components.NewInfoPanel(),
		StatusBar: components.NewStatusBar(),
	}
}

// CurrentBranch returns the decoded name of the selected branch entry.
func (s *State) CurrentBranch() (string, bool) {
	line, ok := s.Branches.SelectedItem()
	if !ok {
		return "", false
	}
	return gitcmd.BranchName(line), true
}

// SelectedRemote returns the selected remote name.
func (s *State) SelectedRemote() (string, bool) {
	return s.Remotes.SelectedItem()
}

// SelectedFile returns the decoded status entry under the cursor in the
// changed-files panel.
func (s *State) SelectedFile() (gitcmd.StatusEntry, bool) {
	line, ok := s.Files.SelectedItem()
	if !ok {
		return gitcmd.StatusEntry{}, false
	}
	return gitcmd.ParseStatusLine(line), true
}
