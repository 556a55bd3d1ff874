package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/interpretive-systems/gitdeck/internal/config"
	"github.com/interpretive-systems/gitdeck/internal/gitcmd"
	"github.com/interpretive-systems/gitdeck/internal/tui/components"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ok(output string) gitcmd.Result   { return gitcmd.Result{Output: output} }
func fail(output string) gitcmd.Result { return gitcmd.Result{Output: output, Status: 1} }
func lost(output string) gitcmd.Result { return gitcmd.Result{Output: output, Status: -1} }

// fakeRunner is a scripted Commander: every method returns its configured
// result and counts the call.
type fakeRunner struct {
	statusRes     gitcmd.Result
	remotesRes    gitcmd.Result
	branchesRes   gitcmd.Result
	remoteInfoRes gitcmd.Result
	commitsRes    gitcmd.Result
	logRes        gitcmd.Result
	diffRes       gitcmd.Result
	diffFileRes   gitcmd.Result
	addRemoteRes  gitcmd.Result
	addFileRes    gitcmd.Result
	resetFileRes  gitcmd.Result
	addAllRes     gitcmd.Result
	commitRes     gitcmd.Result
	pullRes       gitcmd.Result
	pushRes       gitcmd.Result
	createRes     gitcmd.Result
	checkoutRes   gitcmd.Result
	editorRes     gitcmd.Result

	calls map[string]int
}

func newFakeRunner() *fakeRunner {
	return &fakeRunner{calls: map[string]int{}}
}

func (f *fakeRunner) count(name string) { f.calls[name]++ }

func (f *fakeRunner) StatusShort() gitcmd.Result { f.count("StatusShort"); return f.statusRes }
func (f *fakeRunner) Remotes() gitcmd.Result     { f.count("Remotes"); return f.remotesRes }
func (f *fakeRunner) Branches() gitcmd.Result    { f.count("Branches"); return f.branchesRes }
func (f *fakeRunner) RemoteInfo(string) gitcmd.Result {
	f.count("RemoteInfo")
	return f.remoteInfoRes
}
func (f *fakeRunner) RecentCommits(string) gitcmd.Result {
	f.count("RecentCommits")
	return f.commitsRes
}
func (f *fakeRunner) Log(string) gitcmd.Result         { f.count("Log"); return f.logRes }
func (f *fakeRunner) Diff() gitcmd.Result              { f.count("Diff"); return f.diffRes }
func (f *fakeRunner) DiffFile(string) gitcmd.Result    { f.count("DiffFile"); return f.diffFileRes }
func (f *fakeRunner) AddRemote(_, _ string) gitcmd.Result {
	f.count("AddRemote")
	return f.addRemoteRes
}
func (f *fakeRunner) AddFile(string) gitcmd.Result   { f.count("AddFile"); return f.addFileRes }
func (f *fakeRunner) ResetFile(string) gitcmd.Result { f.count("ResetFile"); return f.resetFileRes }
func (f *fakeRunner) AddAll() gitcmd.Result          { f.count("AddAll"); return f.addAllRes }
func (f *fakeRunner) Commit(string) gitcmd.Result    { f.count("Commit"); return f.commitRes }
func (f *fakeRunner) PullBranch(_, _ string, _ gitcmd.Credentials) gitcmd.Result {
	f.count("PullBranch")
	return f.pullRes
}
func (f *fakeRunner) PushBranch(_, _ string, _ gitcmd.Credentials) gitcmd.Result {
	f.count("PushBranch")
	return f.pushRes
}
func (f *fakeRunner) CreateBranch(string) gitcmd.Result { f.count("CreateBranch"); return f.createRes }
func (f *fakeRunner) CheckoutBranch(string) gitcmd.Result {
	f.count("CheckoutBranch")
	return f.checkoutRes
}
func (f *fakeRunner) OpenEditor(_, _ string) gitcmd.Result { f.count("OpenEditor"); return f.editorRes }

func newTestProgram(f *fakeRunner) *Program {
	return newProgram(NewState("/repo", f, config.Settings{}))
}

// runCmd executes a command tree and returns the produced messages,
// flattening batches.
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, isBatch := msg.(tea.BatchMsg); isBatch {
		var msgs []tea.Msg
		for _, sub := range batch {
			msgs = append(msgs, runCmd(sub)...)
		}
		return msgs
	}
	return []tea.Msg{msg}
}

func TestBranchRefreshSelectsCurrentMarker(t *testing.T) {
	f := newFakeRunner()
	f.commitsRes = ok("abc123 first\ndef456 second")
	m := newTestProgram(f)

	cmd := m.handleBranches(ok("  main\n* dev"))
	assert.Equal(t, 1, m.state.Branches.Selected())
	name, okB := m.state.CurrentBranch()
	require.True(t, okB)
	assert.Equal(t, "dev", name)

	// The derived commits panel is reloaded for the marked branch.
	msgs := runCmd(cmd)
	require.Len(t, msgs, 1)
	cm, isCommits := msgs[0].(commitsMsg)
	require.True(t, isCommits)
	assert.Equal(t, "dev", cm.branch)

	m.Update(cm)
	assert.Equal(t, 2, m.state.Commits.Len())
}

func TestBranchRefreshMarkerOverridesPriorSelection(t *testing.T) {
	f := newFakeRunner()
	m := newTestProgram(f)

	m.handleBranches(ok("* main\n  dev\n  feature"))
	m.state.Branches.Select(2)

	m.handleBranches(ok("* main\n  dev\n  feature"))
	assert.Equal(t, 0, m.state.Branches.Selected(), "marker wins over the remembered index")
}

func TestStaleCommitsResultIgnored(t *testing.T) {
	f := newFakeRunner()
	m := newTestProgram(f)
	m.handleBranches(ok("* main\n  dev"))
	m.state.Commits.SetItems([]string{"abc123 first"})

	m.Update(commitsMsg{branch: "dev", res: ok("zzz999 other")})
	assert.Equal(t, []string{"abc123 first"}, m.state.Commits.Items())
}

func TestRemotesRefreshPreservesSelection(t *testing.T) {
	f := newFakeRunner()
	m := newTestProgram(f)

	m.Update(remotesMsg{res: ok("origin\nupstream\nfork")})
	m.state.Remotes.Select(2)

	// Same length: index kept.
	m.Update(remotesMsg{res: ok("a\nb\nc")})
	assert.Equal(t, 2, m.state.Remotes.Selected())

	// Shrank past the cursor: clamped to the last entry.
	m.Update(remotesMsg{res: ok("origin\nupstream")})
	assert.Equal(t, 1, m.state.Remotes.Selected())

	// Emptied: unselected.
	m.Update(remotesMsg{res: ok("")})
	assert.Equal(t, -1, m.state.Remotes.Selected())
}

func TestFailedQueryLeavesPanelUntouched(t *testing.T) {
	f := newFakeRunner()
	m := newTestProgram(f)
	m.Update(remotesMsg{res: ok("origin\nupstream")})

	m.Update(remotesMsg{res: lost("fatal: not a git repository")})
	assert.Equal(t, 2, m.state.Remotes.Len())
	require.NotNil(t, m.popup)
	assert.Equal(t, components.PopupError, m.popup.Kind)
}

func TestRemoteInfoFailureLeavesInfoPanel(t *testing.T) {
	f := newFakeRunner()
	m := newTestProgram(f)
	m.setInfo("Git Diff", "old content")

	m.Update(remoteInfoMsg{remote: "origin", res: lost("fatal: no such remote")})
	assert.Equal(t, "old content", m.state.Info.Text())
	require.NotNil(t, m.popup)
	assert.Equal(t, components.PopupError, m.popup.Kind)
}

func TestCommitClearsInputOnSuccessAndFailure(t *testing.T) {
	f := newFakeRunner()
	f.commitRes = ok("1 file changed")
	m := newTestProgram(f)
	m.state.Branches.SetItems([]string{"* main"})

	m.commitInput.SetValue("feat: add thing")
	cmd := m.commitFromInput()
	assert.Equal(t, "", m.commitInput.Value())
	assert.NotNil(t, cmd)
	require.NotNil(t, m.popup)
	assert.Equal(t, components.PopupMessage, m.popup.Kind)

	f.commitRes = fail("nothing to commit")
	m.commitInput.SetValue("feat: again")
	cmd = m.commitFromInput()
	assert.Equal(t, "", m.commitInput.Value(), "box is cleared even when the commit fails")
	assert.Nil(t, cmd)
	assert.Equal(t, components.PopupError, m.popup.Kind)
	assert.Equal(t, "Commit failed!", m.popup.Title)
}

func TestPushPromptsForCredentialsOnce(t *testing.T) {
	f := newFakeRunner()
	f.pushRes = ok("Everything up-to-date")
	m := newTestProgram(f)
	m.state.Branches.SetItems([]string{"* main"})
	m.state.Remotes.SetItems([]string{"origin"})

	cmd := m.startPush()
	assert.Nil(t, cmd)
	require.NotNil(t, m.prompt, "push without session credentials opens the prompt chain")
	assert.Equal(t, opCredsPush, m.promptKind)
	assert.Zero(t, f.calls["PushBranch"])

	// Completing the chain stores the credentials and re-dispatches the push.
	cmd = m.completePrompt(opCredsPush, []string{"user", "tok"})
	assert.True(t, m.state.CredsEntered)
	assert.True(t, m.busy)

	msgs := runCmd(cmd)
	assert.Equal(t, 1, f.calls["PushBranch"])
	var result pushResultMsg
	found := false
	for _, msg := range msgs {
		if pr, isPush := msg.(pushResultMsg); isPush {
			result = pr
			found = true
		}
	}
	require.True(t, found)

	_, refresh := m.Update(result)
	assert.False(t, m.busy)
	require.NotNil(t, m.popup)
	assert.Equal(t, components.PopupMessage, m.popup.Kind)
	assert.NotNil(t, refresh, "panels refresh after a push")

	// Second push reuses the session credentials without prompting again.
	m.popup = nil
	m.startPush()
	assert.Nil(t, m.prompt)
	assert.True(t, m.busy)
}

func TestPushWithoutSelectionWarns(t *testing.T) {
	f := newFakeRunner()
	m := newTestProgram(f)

	cmd := m.startPush()
	assert.Nil(t, cmd)
	require.NotNil(t, m.popup)
	assert.Equal(t, components.PopupWarning, m.popup.Kind)
	assert.Zero(t, f.calls["PushBranch"])
}

func TestBusyBlocksEverythingButQuit(t *testing.T) {
	f := newFakeRunner()
	m := newTestProgram(f)
	m.busy = true

	_, cmd := m.handleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	assert.Nil(t, cmd)
	assert.Zero(t, f.calls["Branches"])

	_, cmd = m.handleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestPullReportsAndAlwaysRefreshes(t *testing.T) {
	f := newFakeRunner()
	f.pullRes = ok("Already up to date.")
	m := newTestProgram(f)
	m.state.Branches.SetItems([]string{"* main"})
	m.state.Remotes.SetItems([]string{"origin"})
	m.state.Creds = gitcmd.Credentials{Username: "u", Token: "t"}
	m.state.CredsEntered = true

	cmd := m.startPull()
	assert.Equal(t, 1, f.calls["PullBranch"])
	assert.NotNil(t, cmd)
	assert.Equal(t, components.PopupMessage, m.popup.Kind)
	assert.Contains(t, m.state.Info.Title(), "Pull")

	m.popup = nil
	f.pullRes = fail("merge conflict")
	cmd = m.startPull()
	assert.NotNil(t, cmd, "refresh still runs after a failed pull")
	assert.Equal(t, components.PopupError, m.popup.Kind)
	assert.Contains(t, m.state.Info.Title(), "Pull", "failed pull leaves the previous info content")
}

func TestAddRevertDispatchesOnStatusKind(t *testing.T) {
	f := newFakeRunner()
	f.addFileRes = ok("")
	f.resetFileRes = ok("")
	m := newTestProgram(f)

	m.state.Files.SetItems([]string{" M modified.txt"})
	cmd := m.addRevertSelectedFile()
	assert.Equal(t, 1, f.calls["AddFile"])
	assert.Zero(t, f.calls["ResetFile"])
	assert.NotNil(t, cmd)

	m.state.Files.SetItems([]string{"M  staged.txt"})
	cmd = m.addRevertSelectedFile()
	assert.Equal(t, 1, f.calls["ResetFile"])
	assert.NotNil(t, cmd)

	// Failure still refreshes: the index may have partially changed.
	m.state.Files.SetItems([]string{"?? new.txt"})
	f.addFileRes = fail("pathspec error")
	cmd = m.addRevertSelectedFile()
	assert.NotNil(t, cmd)
	assert.Equal(t, components.PopupError, m.popup.Kind)
}

func TestCreateBranchRejectsBlankName(t *testing.T) {
	f := newFakeRunner()
	m := newTestProgram(f)

	cmd := m.createBranch("   ")
	assert.Nil(t, cmd)
	assert.Zero(t, f.calls["CreateBranch"], "no command runs for an invalid name")
	require.NotNil(t, m.popup)
	assert.Equal(t, "ERROR - Illegal branchname", m.popup.Title)

	// A failing create still refreshes.
	m.popup = nil
	f.createRes = fail("branch exists")
	cmd = m.createBranch("main")
	assert.Equal(t, 1, f.calls["CreateBranch"])
	assert.NotNil(t, cmd)
	assert.Equal(t, components.PopupError, m.popup.Kind)
}

func TestCheckoutNoSelectionIsSilent(t *testing.T) {
	f := newFakeRunner()
	m := newTestProgram(f)

	cmd := m.checkoutSelectedBranch()
	assert.Nil(t, cmd)
	assert.Nil(t, m.popup)
	assert.Zero(t, f.calls["CheckoutBranch"])
}

func TestMenuDispatch(t *testing.T) {
	f := newFakeRunner()
	f.addAllRes = ok("")
	m := newTestProgram(f)

	m.popup = components.NewMenu("Full Control Menu", controlMenuChoices())
	m.handlePopupKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	cmd := m.handlePopupKey(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, 1, f.calls["AddAll"], "second menu entry stages all changes")
	assert.NotNil(t, cmd)
	assert.Nil(t, m.popup)
}

func TestOpenEditorRequiresConfiguredCommand(t *testing.T) {
	f := newFakeRunner()
	m := newTestProgram(f)

	cmd := m.openEditor()
	assert.Nil(t, cmd)
	require.NotNil(t, m.popup)
	assert.Contains(t, m.popup.Body, "No default editor specified.")
	assert.Zero(t, f.calls["OpenEditor"])

	m.popup = nil
	m.state.Settings.Editor = "vim"
	f.editorRes = ok("")
	m.openEditor()
	assert.Equal(t, 1, f.calls["OpenEditor"])
	assert.Equal(t, components.PopupMessage, m.popup.Kind)
}

func TestShowDiffPopulatesInfoPanel(t *testing.T) {
	f := newFakeRunner()
	f.diffRes = ok("+added line")
	m := newTestProgram(f)

	cmd := m.showDiff()
	assert.Nil(t, cmd)
	assert.Equal(t, "Git Diff", m.state.Info.Title())
	assert.Equal(t, "+added line", m.state.Info.Text())

	f.diffRes = lost("fatal")
	m.showDiff()
	assert.Equal(t, "+added line", m.state.Info.Text(), "failed query keeps previous content")
	assert.Equal(t, components.PopupError, m.popup.Kind)
}
