package config

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Settings are the persisted dashboard settings.
type Settings struct {
	Editor     string // external editor command, empty when unset
	LogFile    string // trace log destination
	Trace      bool   // whether trace logging is enabled
	TraceSet   bool
	EditorSet  bool
	LogFileSet bool
}

const (
	keyEditor  = "gitdeck.editor"
	keyLogFile = "gitdeck.logFile"
	keyTrace   = "gitdeck.trace"
)

// Load reads settings from git local config.
func Load(repoRoot string) Settings {
	var s Settings
	if v, ok := get(repoRoot, keyEditor); ok {
		s.EditorSet = true
		s.Editor = v
	}
	if v, ok := get(repoRoot, keyLogFile); ok {
		s.LogFileSet = true
		s.LogFile = v
	}
	if v, ok := get(repoRoot, keyTrace); ok {
		s.TraceSet = true
		s.Trace = parseBool(v)
	}
	return s
}

// SaveEditor persists the external editor command.
func SaveEditor(repoRoot, editor string) error {
	if strings.TrimSpace(editor) == "" {
		return fmt.Errorf("empty editor command")
	}
	return set(repoRoot, keyEditor, editor)
}

// SaveLogFile persists the trace log path after checking the target
// directory exists and is writable.
func SaveLogFile(repoRoot, path string) error {
	dir := filepath.Dir(path)
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("log directory does not exist: %s", dir)
	}
	probe, err := os.CreateTemp(dir, ".gitdeck-probe-*")
	if err != nil {
		return fmt.Errorf("log directory not writable: %s", dir)
	}
	probe.Close()
	os.Remove(probe.Name())
	return set(repoRoot, keyLogFile, path)
}

// SaveTrace persists the trace logging toggle.
func SaveTrace(repoRoot string, v bool) error {
	return set(repoRoot, keyTrace, boolStr(v))
}

func get(repoRoot, key string) (string, bool) {
	cmd := exec.Command("git", "-C", repoRoot, "config", "--get", key)
	b, err := cmd.Output()
	if err != nil {
		return "", false
	}
	return strings.TrimSpace(string(b)), true
}

func set(repoRoot, key, value string) error {
	cmd := exec.Command("git", "-C", repoRoot, "config", "--local", key, value)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("git config %s: %w: %s", key, err, string(out))
	}
	return nil
}

func parseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}

func boolStr(v bool) string {
	if v {
		return "true"
	}
	return "false"
}
