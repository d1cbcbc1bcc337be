package env

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeEnv(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte(content), 0o644); err != nil {
		t.Fatalf("write .env: %v", err)
	}
	return dir
}

func TestLoadFromDir(t *testing.T) {
	dir := writeEnv(t, "THINK_CENTER_LOG_LEVEL=debug\n# comment\nexport THINK_CENTER_FOCUS_COMMAND=\"code --reuse-window\"\nDATABASE_URL=postgres://secret\n")
	t.Setenv("THINK_CENTER_LOG_LEVEL", "")
	os.Unsetenv("THINK_CENTER_LOG_LEVEL")
	t.Setenv("THINK_CENTER_FOCUS_COMMAND", "")
	os.Unsetenv("THINK_CENTER_FOCUS_COMMAND")
	t.Setenv("DATABASE_URL", "")
	os.Unsetenv("DATABASE_URL")

	set, err := LoadFromDir(dir)
	if err != nil {
		t.Fatalf("LoadFromDir: %v", err)
	}
	if diff := cmp.Diff([]string{"THINK_CENTER_LOG_LEVEL", "THINK_CENTER_FOCUS_COMMAND"}, set); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
	if got := os.Getenv("THINK_CENTER_FOCUS_COMMAND"); got != "code --reuse-window" {
		t.Fatalf("unexpected focus command %q", got)
	}
	if _, ok := os.LookupEnv("DATABASE_URL"); ok {
		t.Fatalf("keys without the prefix must not be imported")
	}
}

func TestLoadDoesNotOverwrite(t *testing.T) {
	dir := writeEnv(t, "THINK_CENTER_LOG_LEVEL=debug\n")
	t.Setenv("THINK_CENTER_LOG_LEVEL", "error")
	set, err := LoadFromDir(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(set) != 0 || os.Getenv("THINK_CENTER_LOG_LEVEL") != "error" {
		t.Fatalf("expected existing value preserved, set=%v", set)
	}
}

func TestLoadMissingFile(t *testing.T) {
	set, err := Load(filepath.Join(t.TempDir(), ".env"))
	if err != nil || set != nil {
		t.Fatalf("expected no-op, got %v %v", set, err)
	}
}

func TestParseLine(t *testing.T) {
	tests := []struct {
		line, key, val string
		ok             bool
	}{
		{"A=1", "A", "1", true},
		{"A = 'quoted # kept'", "A", "quoted # kept", true},
		{"A=plain # trailing", "A", "plain", true},
		{"novalue", "", "", false},
		{"=x", "", "", false},
		{"   # note", "", "", false},
	}
	for _, tt := range tests {
		key, val, ok := parseLine(tt.line)
		if key != tt.key || val != tt.val || ok != tt.ok {
			t.Fatalf("%q: got %q %q %v", tt.line, key, val, ok)
		}
	}
}
