package tui

import "github.com/interpretive-systems/gitdeck/internal/gitcmd"

// branchesMsg carries refreshed branch list output.
type branchesMsg struct {
	res gitcmd.Result
}

// remotesMsg carries refreshed remote list output.
type remotesMsg struct {
	res gitcmd.Result
}

// filesMsg carries refreshed short-status output.
type filesMsg struct {
	res gitcmd.Result
}

// commitsMsg carries recent commits for the branch they were requested for.
type commitsMsg struct {
	branch string
	res    gitcmd.Result
}

// remoteInfoMsg carries remote detail for the info panel.
type remoteInfoMsg struct {
	remote string
	res    gitcmd.Result
}

// pushResultMsg is delivered when the background push finishes.
type pushResultMsg struct {
	branch string
	remote string
	res    gitcmd.Result
}

// clipboardMsg reports the outcome of a clipboard export.
type clipboardMsg struct {
	err error
}
