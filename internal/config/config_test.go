package config

import (
	"os/exec"
	"path/filepath"
	"testing"
)

func initRepo(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	cmd := exec.Command("git", "init", "-q")
	cmd.Dir = dir
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("git init failed: %v\n%s", err, out)
	}
	return dir
}

func TestSaveAndLoad(t *testing.T) {
	dir := initRepo(t)

	s := Load(dir)
	if s.EditorSet || s.LogFileSet || s.TraceSet {
		t.Fatalf("expected no settings in a fresh repo, got %+v", s)
	}

	if err := SaveEditor(dir, "vim"); err != nil {
		t.Fatal(err)
	}
	logPath := filepath.Join(dir, "trace.log")
	if err := SaveLogFile(dir, logPath); err != nil {
		t.Fatal(err)
	}
	if err := SaveTrace(dir, true); err != nil {
		t.Fatal(err)
	}

	s = Load(dir)
	if !s.EditorSet || s.Editor != "vim" {
		t.Fatalf("unexpected editor: %+v", s)
	}
	if !s.LogFileSet || s.LogFile != logPath {
		t.Fatalf("unexpected log file: %+v", s)
	}
	if !s.TraceSet || !s.Trace {
		t.Fatalf("unexpected trace: %+v", s)
	}

	if err := SaveTrace(dir, false); err != nil {
		t.Fatal(err)
	}
	if s = Load(dir); s.Trace {
		t.Fatal("expected trace disabled")
	}
}

func TestSaveEditorRejectsEmpty(t *testing.T) {
	dir := initRepo(t)
	if err := SaveEditor(dir, "   "); err == nil {
		t.Fatal("expected error for blank editor command")
	}
}

func TestSaveLogFileRejectsMissingDir(t *testing.T) {
	dir := initRepo(t)
	bad := filepath.Join(dir, "no", "such", "dir", "trace.log")
	if err := SaveLogFile(dir, bad); err == nil {
		t.Fatal("expected error for missing log directory")
	}
	if s := Load(dir); s.LogFileSet {
		t.Fatal("rejected path must not be persisted")
	}
}
