package analyzer

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/garghimanshu0786/think-center-vscode/pkg/exec"
)

type fakeRunner struct {
	calls  [][]string
	result *exec.Result
	err    error
}

func (f *fakeRunner) Run(ctx context.Context, name string, args ...string) (*exec.Result, error) {
	f.calls = append(f.calls, append([]string{name}, args...))
	return f.result, f.err
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestDetectPackageJSONFrameworks(t *testing.T) {
	tests := []struct {
		manifest string
		want     string
	}{
		{`{"dependencies":{"react":"^18","express":"4"}}`, "react"},
		{`{"dependencies":{"@angular/core":"17"}}`, "angular"},
		{`{"devDependencies":{"vue":"3"}}`, "vue"},
		{`{"dependencies":{"express":"4"}}`, "nodejs"},
		{`{"dependencies":{"next":"14"}}`, "nextjs"},
		{`{"dependencies":{"lodash":"4"}}`, "javascript"},
		{`{}`, "javascript"},
	}
	for _, tt := range tests {
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "package.json"), tt.manifest)
		p, ok := DetectProject(dir)
		if !ok {
			t.Fatalf("%s: expected project", tt.manifest)
		}
		if p.Type != tt.want {
			t.Fatalf("%s: want %q, got %q", tt.manifest, tt.want, p.Type)
		}
	}
}

func TestDetectPackageJSONDependencies(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "package.json"), `{"dependencies":{"b":"1","a":"1"},"devDependencies":{"a":"2","c":"1"}}`)
	p, ok := DetectProject(dir)
	if !ok {
		t.Fatalf("expected project")
	}
	if diff := cmp.Diff([]string{"a", "b", "c"}, p.Dependencies); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
}

func TestDetectInvalidPackageJSONIsAbsent(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "package.json"), `{not json`)
	if p, ok := DetectProject(dir); ok {
		t.Fatalf("expected no project, got %+v", p)
	}

	writeFile(t, filepath.Join(dir, "requirements.txt"), "flask\n")
	if p, ok := DetectProject(dir); ok {
		t.Fatalf("broken package.json should hide other manifests, got %+v", p)
	}
}

func TestDetectInvalidGoModIsAbsent(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "go.mod"), "module\n")
	writeFile(t, filepath.Join(dir, "manage.py"), "")
	if p, ok := DetectProject(dir); ok {
		t.Fatalf("expected no project, got %+v", p)
	}
}

func TestDetectGoMod(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "go.mod"), "module example.com/x\n\ngo 1.22\n\nrequire (\n\tgithub.com/spf13/cobra v1.8.0\n\tgopkg.in/yaml.v3 v3.0.1\n)\n")
	p, ok := DetectProject(dir)
	if !ok || p.Type != "go" {
		t.Fatalf("expected go project, got %+v", p)
	}
	if diff := cmp.Diff([]string{"github.com/spf13/cobra", "gopkg.in/yaml.v3"}, p.Dependencies); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
}

func TestDetectPythonProjects(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "requirements.txt"), "# deps\nDjango>=4.2\nrequests==2.31\n")
	p, _ := DetectProject(dir)
	if p.Type != "django" {
		t.Fatalf("expected django from requirements, got %q", p.Type)
	}

	dir = t.TempDir()
	writeFile(t, filepath.Join(dir, "requirements.txt"), "flask\n")
	p, _ = DetectProject(dir)
	if p.Type != "python" {
		t.Fatalf("expected python, got %q", p.Type)
	}

	dir = t.TempDir()
	writeFile(t, filepath.Join(dir, "manage.py"), "")
	p, _ = DetectProject(dir)
	if p.Type != "django" || p.Manifest != "manage.py" {
		t.Fatalf("expected django from manage.py, got %+v", p)
	}
}

func TestGatherBuildsContext(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "package.json"), `{"dependencies":{"react":"18"}}`)
	if err := os.Mkdir(filepath.Join(dir, ".git"), 0o755); err != nil {
		t.Fatalf("mkdir .git: %v", err)
	}

	runner := &fakeRunner{result: &exec.Result{Stdout: "fix bug\n\nadd feature\n"}}
	g := NewGatherer(runner)
	c := g.Gather(context.Background(), Request{
		File:          "src/App.tsx",
		Selection:     "const x = 1",
		Line:          12,
		WorkspaceRoot: dir,
	})

	want := CodeContext{
		ActiveFile:    filepath.Join(dir, "src", "App.tsx"),
		SelectedText:  "const x = 1",
		Language:      "typescriptreact",
		LineNumber:    12,
		WorkspaceRoot: dir,
		GitRepository: dir,
		ProjectType:   "react",
		Dependencies:  []string{"react"},
		RecentChanges: []string{"fix bug", "add feature"},
	}
	if diff := cmp.Diff(want, c); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
	if len(runner.calls) != 1 || runner.calls[0][0] != "git" {
		t.Fatalf("expected one git call, got %v", runner.calls)
	}
}

func TestGatherToleratesRunnerFailure(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, ".git"), 0o755); err != nil {
		t.Fatalf("mkdir .git: %v", err)
	}
	g := NewGatherer(&fakeRunner{err: errors.New("no git")})
	c := g.Gather(context.Background(), Request{WorkspaceRoot: dir, Language: "go"})
	if c.RecentChanges != nil {
		t.Fatalf("expected no recent changes, got %v", c.RecentChanges)
	}
	if c.Language != "go" || c.ProjectType != "" {
		t.Fatalf("unexpected context %+v", c)
	}
}

func TestLanguageForFile(t *testing.T) {
	for path, want := range map[string]string{
		"main.go":        "go",
		"x/APP.TS":       "typescript",
		"Dockerfile":     "dockerfile",
		"notes":          "",
		"component.view": "",
	} {
		if got := LanguageForFile(path); got != want {
			t.Fatalf("%s: want %q, got %q", path, want, got)
		}
	}
}
