package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/garghimanshu0786/think-center-vscode/pkg/analyzer"
	"github.com/garghimanshu0786/think-center-vscode/pkg/chat"
	"github.com/garghimanshu0786/think-center-vscode/pkg/delivery"
)

type fakeClipboard struct {
	text string
	err  error
}

func (f *fakeClipboard) WriteAll(text string) error {
	if f.err != nil {
		return f.err
	}
	f.text = text
	return nil
}

// setup isolates a test from the user's config and returns a workspace root.
func setup(t *testing.T, cb *fakeClipboard) string {
	t.Helper()
	color.NoColor = true
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("THINK_CENTER_CONFIG", filepath.Join(dir, "missing-config.yaml"))
	t.Setenv("THINK_CENTER_WORKSPACE", "")
	t.Setenv("THINK_CENTER_FOCUS_COMMAND", "")
	t.Setenv("THINK_CENTER_LOG_LEVEL", "error")
	t.Setenv("THINK_CENTER_LOG_FORMAT", "")

	prev := clipboardFactory
	clipboardFactory = func() delivery.Clipboard { return cb }
	t.Cleanup(func() { clipboardFactory = prev })

	ws := filepath.Join(dir, "ws")
	if err := os.MkdirAll(ws, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	return ws
}

func execute(t *testing.T, stdin io.Reader, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	if stdin == nil {
		stdin = strings.NewReader("")
	}
	cmd.SetIn(stdin)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestAskPrint(t *testing.T) {
	ws := setup(t, &fakeClipboard{})
	out, _, err := execute(t, nil, "--workspace", ws, "--print", "ask", "weaver", "How", "to", "split?")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.HasPrefix(out, "**🧵 Weaver** analysis requested:") || !strings.Contains(out, "**Question**: How to split?") {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestAskUnknownPerspective(t *testing.T) {
	ws := setup(t, &fakeClipboard{})
	_, _, err := execute(t, nil, "--workspace", ws, "ask", "weavr", "question")
	if err == nil || !strings.Contains(err.Error(), "did you mean weaver") {
		t.Fatalf("expected suggestion error, got %v", err)
	}
}

func TestShortcutUsesCustomPrompt(t *testing.T) {
	ws := setup(t, &fakeClipboard{})
	path := filepath.Join(ws, ".vscode", "think-center-prompts.md")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte("## O/G\nThink about onboarding."), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	out, _, err := execute(t, nil, "--workspace", ws, "--print", "og", "Is this clear?")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(out, "**🔍 Observer/Guardian**") || !strings.Contains(out, "Think about onboarding.") {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestInitCopiesSystemPrompt(t *testing.T) {
	cb := &fakeClipboard{}
	ws := setup(t, cb)
	out, _, err := execute(t, nil, "--workspace", ws, "init")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if cb.text != chat.DefaultSystemPrompt {
		t.Fatalf("expected system prompt on clipboard, got %q", cb.text)
	}
	if !strings.Contains(out, "Think Center initialization copied to clipboard!") {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestClipboardFailureShowsPrompt(t *testing.T) {
	ws := setup(t, &fakeClipboard{err: errors.New("no clipboard")})
	out, stderr, err := execute(t, nil, "--workspace", ws, "council", "Caching")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(out, "Think Center Prompt:") || !strings.Contains(out, "**Topic**: Caching") {
		t.Fatalf("expected prompt in output, got %q", out)
	}
	if !strings.Contains(stderr, "Clipboard unavailable") {
		t.Fatalf("expected clipboard warning, got %q", stderr)
	}
}

func TestAnalyzeSelectionFromStdin(t *testing.T) {
	ws := setup(t, &fakeClipboard{})
	out, _, err := execute(t, strings.NewReader("x := 1"), "--workspace", ws, "--language", "go", "--print", "analyze-selection")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(out, "```go\nx := 1\n```") {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestAnalyzeSelectionEmpty(t *testing.T) {
	ws := setup(t, &fakeClipboard{})
	out, stderr, err := execute(t, nil, "--workspace", ws, "analyze-selection")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if out != "" || !strings.Contains(stderr, "Please select some code to analyze") {
		t.Fatalf("unexpected output %q / %q", out, stderr)
	}
}

func TestAnalyzeFileMissingIsReported(t *testing.T) {
	ws := setup(t, &fakeClipboard{})
	_, stderr, err := execute(t, nil, "--workspace", ws, "analyze-file", filepath.Join(ws, "missing.go"))
	if err != nil {
		t.Fatalf("command errors should be reported, not returned: %v", err)
	}
	if !strings.Contains(stderr, "Think Center file analysis error") {
		t.Fatalf("unexpected stderr %q", stderr)
	}
}

func TestAnalyzeFile(t *testing.T) {
	ws := setup(t, &fakeClipboard{})
	path := filepath.Join(ws, "main.go")
	if err := os.WriteFile(path, []byte("package main\n\nfunc main() {}\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	out, _, err := execute(t, nil, "--workspace", ws, "--print", "analyze-file", path)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(out, "File Analysis: main.go**") || !strings.Contains(out, "```go\npackage main") {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestPromptTemplate(t *testing.T) {
	ws := setup(t, &fakeClipboard{})
	out, _, err := execute(t, nil, "--workspace", ws, "--selection", "func add(a, b int) int", "--print", "prompt", "weaver", "architecture-review")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.HasPrefix(out, "As the Weaver perspective, review the architecture of this code:\n\nfunc add(a, b int) int") {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestPromptUnknownTemplate(t *testing.T) {
	ws := setup(t, &fakeClipboard{})
	_, stderr, err := execute(t, nil, "--workspace", ws, "prompt", "maker", "nope")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(stderr, `unknown prompt "nope"`) {
		t.Fatalf("unexpected stderr %q", stderr)
	}
}

func TestCreateConfigAndEnhance(t *testing.T) {
	ws := setup(t, &fakeClipboard{})
	out, _, err := execute(t, nil, "--workspace", ws, "create-config")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if strings.Count(out, "Created ") != 2 {
		t.Fatalf("expected two files created, got %q", out)
	}
	out, _, _ = execute(t, nil, "--workspace", ws, "create-config")
	if !strings.Contains(out, "already exist") {
		t.Fatalf("expected already-exist message, got %q", out)
	}
	out, _, _ = execute(t, nil, "--workspace", ws, "enhance-instructions")
	if !strings.Contains(out, "already contains Think Center sections") {
		t.Fatalf("unexpected enhance output %q", out)
	}
}

func TestContextJSON(t *testing.T) {
	ws := setup(t, &fakeClipboard{})
	if err := os.WriteFile(filepath.Join(ws, "package.json"), []byte(`{"dependencies":{"react":"18"}}`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	out, _, err := execute(t, nil, "--workspace", ws, "--file", "src/App.tsx", "context", "--json")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	var res analyzer.AnalysisResult
	if err := json.Unmarshal([]byte(out), &res); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	if res.Context.ProjectType != "react" || res.Context.Language != "typescriptreact" {
		t.Fatalf("unexpected context %+v", res.Context)
	}
}

func TestPerspectivesTree(t *testing.T) {
	ws := setup(t, &fakeClipboard{})
	out, _, err := execute(t, nil, "--workspace", ws, "perspectives")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	for _, want := range []string{"Think Center", "weaver", "explorer-exploiter", "Architecture Review"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in %q", want, out)
		}
	}
}
