package gitcmd

import (
	"errors"
	"net/url"
	"os/exec"
	"strings"
)

// Result is the normalized outcome of a repository operation. Status 0 means
// success. A negative status marks a failed query (state unchanged, caller
// should keep last-known-good content). A positive status is the exit code of
// a failed mutating command, whose side effects may have partially applied.
type Result struct {
	Output string
	Status int
}

// Ok reports whether the operation succeeded.
func (r Result) Ok() bool { return r.Status == 0 }

// Credentials hold remote authentication for the current session. They are
// entered at most once and never persisted.
type Credentials struct {
	Username string
	Token    string
}

// Filled reports whether both fields have been supplied.
func (c Credentials) Filled() bool {
	return c.Username != "" && c.Token != ""
}

// Runner executes git operations against a single repository.
type Runner struct {
	RepoRoot string
}

// RepoRoot resolves the repository root from a given path (or current dir).
func RepoRoot(path string) (string, error) {
	if path == "" {
		path = "."
	}
	out, err := exec.Command("git", "-C", path, "rev-parse", "--show-toplevel").Output()
	if err != nil {
		return "", err
	}
	root := strings.TrimSpace(string(out))
	if root == "" {
		return "", errors.New("empty git root")
	}
	return root, nil
}

// query runs a read-only git command. Any failure is reported as status -1.
func (r *Runner) query(args ...string) Result {
	out, code := r.git(args...)
	if code != 0 {
		return Result{Output: out, Status: -1}
	}
	return Result{Output: out, Status: 0}
}

// action runs a mutating git command. Failures keep the command's exit code.
func (r *Runner) action(args ...string) Result {
	out, code := r.git(args...)
	return Result{Output: out, Status: code}
}

func (r *Runner) git(args ...string) (string, int) {
	full := append([]string{"-C", r.RepoRoot}, args...)
	cmd := exec.Command("git", full...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		if ee, ok := err.(*exec.ExitError); ok {
			code := ee.ExitCode()
			if code <= 0 {
				code = 1
			}
			return string(out), code
		}
		return err.Error(), 1
	}
	return string(out), 0
}

// StatusShort returns the short-format working tree status.
func (r *Runner) StatusShort() Result {
	return r.query("status", "-s")
}

// Remotes lists the configured remote names.
func (r *Runner) Remotes() Result {
	return r.query("remote")
}

// Branches lists local branches, the current one marked with '*'.
func (r *Runner) Branches() Result {
	return r.query("branch")
}

// RemoteInfo returns detail for a single remote.
func (r *Runner) RemoteInfo(remote string) Result {
	return r.query("remote", "show", remote)
}

// RecentCommits returns one-line summaries of the latest commits on a branch.
func (r *Runner) RecentCommits(branch string) Result {
	return r.query("log", branch, "--oneline", "-n", "25")
}

// Log returns the full log for a branch.
func (r *Runner) Log(branch string) Result {
	return r.query("log", branch)
}

// Diff returns the repo-wide unstaged diff.
func (r *Runner) Diff() Result {
	return r.query("diff", "--no-color")
}

// DiffFile returns the unstaged diff for one file.
func (r *Runner) DiffFile(path string) Result {
	return r.query("diff", "--no-color", "--", path)
}

// AddRemote registers a new remote.
func (r *Runner) AddRemote(name, url string) Result {
	return r.action("remote", "add", name, url)
}

// AddFile stages a single file.
func (r *Runner) AddFile(path string) Result {
	return r.action("add", "--", path)
}

// ResetFile unstages a single file.
func (r *Runner) ResetFile(path string) Result {
	return r.action("reset", "--", path)
}

// AddAll stages every change in the working tree.
func (r *Runner) AddAll() Result {
	return r.action("add", "-A")
}

// Commit records staged changes with the given message.
func (r *Runner) Commit(message string) Result {
	return r.action("commit", "-m", message)
}

// PullBranch pulls a branch from a remote, authenticating with the session
// credentials when they are present.
func (r *Runner) PullBranch(branch, remote string, creds Credentials) Result {
	target, res := r.remoteTarget(remote, creds)
	if res != nil {
		return *res
	}
	return r.action("pull", target, branch)
}

// PushBranch pushes a branch to a remote, authenticating with the session
// credentials when they are present.
func (r *Runner) PushBranch(branch, remote string, creds Credentials) Result {
	target, res := r.remoteTarget(remote, creds)
	if res != nil {
		return *res
	}
	return r.action("push", target, branch)
}

// CreateBranch creates and checks out a new branch.
func (r *Runner) CreateBranch(name string) Result {
	return r.action("checkout", "-b", name)
}

// CheckoutBranch switches the working tree to an existing branch.
func (r *Runner) CheckoutBranch(name string) Result {
	return r.action("checkout", name)
}

// OpenEditor launches the configured editor command on a directory.
func (r *Runner) OpenEditor(editor, dir string) Result {
	fields := strings.Fields(editor)
	if len(fields) == 0 {
		return Result{Output: "no editor command configured", Status: 1}
	}
	args := append(fields[1:], dir)
	out, err := exec.Command(fields[0], args...).CombinedOutput()
	if err != nil {
		if ee, ok := err.(*exec.ExitError); ok && ee.ExitCode() > 0 {
			return Result{Output: string(out), Status: ee.ExitCode()}
		}
		return Result{Output: err.Error(), Status: 1}
	}
	return Result{Output: string(out), Status: 0}
}

// remoteTarget decides what to hand git as the push/pull target: the plain
// remote name, or its URL rewritten with basic auth when credentials exist.
// Returns a failed Result when the remote URL cannot be resolved.
func (r *Runner) remoteTarget(remote string, creds Credentials) (string, *Result) {
	if !creds.Filled() {
		return remote, nil
	}
	out, code := r.git("remote", "get-url", remote)
	if code != 0 {
		res := Result{Output: out, Status: code}
		return "", &res
	}
	return withCredentials(strings.TrimSpace(out), creds), nil
}

// withCredentials embeds basic auth into an http(s) remote URL. Other
// schemes (ssh, file) are returned unchanged since they carry their own
// authentication.
func withCredentials(remoteURL string, creds Credentials) string {
	u, err := url.Parse(remoteURL)
	if err != nil {
		return remoteURL
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return remoteURL
	}
	u.User = url.UserPassword(creds.Username, creds.Token)
	return u.String()
}
