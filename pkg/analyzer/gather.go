package analyzer

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/garghimanshu0786/think-center-vscode/pkg/exec"
)

// Request carries what the caller knows about the active editor.
type Request struct {
	File          string
	Language      string
	Selection     string
	Line          int
	WorkspaceRoot string
}

// Runner runs a bounded external command.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (*exec.Result, error)
}

const recentChangeLimit = "5"

// Gatherer assembles a CodeContext from a Request and the workspace on disk.
type Gatherer struct {
	runner Runner
	logger *slog.Logger
}

// NewGatherer returns a Gatherer. runner may be nil, in which case recent
// changes are never looked up.
func NewGatherer(runner Runner) *Gatherer {
	return &Gatherer{runner: runner}
}

func (g *Gatherer) SetLogger(logger *slog.Logger) {
	g.logger = logger
}

// Gather never fails; every lookup that errors leaves its field absent.
func (g *Gatherer) Gather(ctx context.Context, req Request) CodeContext {
	c := CodeContext{
		SelectedText: req.Selection,
		LineNumber:   req.Line,
	}

	root := req.WorkspaceRoot
	if root != "" {
		if abs, err := filepath.Abs(root); err == nil {
			root = abs
		}
		c.WorkspaceRoot = root
	}

	if req.File != "" {
		c.ActiveFile = resolveFile(root, req.File)
		c.Language = req.Language
		if c.Language == "" {
			c.Language = LanguageForFile(c.ActiveFile)
		}
	} else {
		c.Language = req.Language
	}

	if root != "" {
		if project, ok := DetectProject(root); ok {
			c.ProjectType = project.Type
			c.Dependencies = project.Dependencies
			g.logDebug("project_detected", "manifest", project.Manifest, "type", project.Type, "dependencies", len(project.Dependencies))
		}
	}

	start := root
	if start == "" && c.ActiveFile != "" {
		start = filepath.Dir(c.ActiveFile)
	}
	if repo, ok := FindGitRepository(start); ok {
		c.GitRepository = repo
		c.RecentChanges = g.recentChanges(ctx, repo)
	}
	return c
}

func (g *Gatherer) recentChanges(ctx context.Context, repo string) []string {
	if g.runner == nil {
		return nil
	}
	res, err := g.runner.Run(ctx, "git", "-C", repo, "log", "-n", recentChangeLimit, "--format=%s")
	if err != nil || res.Code != 0 {
		g.logDebug("recent_changes_unavailable", "repo", repo, "error", err)
		return nil
	}
	var out []string
	for _, line := range strings.Split(res.Stdout, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}

// FindGitRepository returns the nearest ancestor of dir that contains .git.
func FindGitRepository(dir string) (string, bool) {
	if dir == "" {
		return "", false
	}
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", false
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, ".git")); err == nil {
			return dir, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

func resolveFile(root, file string) string {
	if filepath.IsAbs(file) {
		return filepath.Clean(file)
	}
	if root != "" {
		return filepath.Join(root, file)
	}
	if abs, err := filepath.Abs(file); err == nil {
		return abs
	}
	return file
}

// languageByExt maps file extensions to editor language ids.
var languageByExt = map[string]string{
	".ts":    "typescript",
	".tsx":   "typescriptreact",
	".js":    "javascript",
	".jsx":   "javascriptreact",
	".mjs":   "javascript",
	".cjs":   "javascript",
	".py":    "python",
	".java":  "java",
	".cs":    "csharp",
	".cpp":   "cpp",
	".cc":    "cpp",
	".cxx":   "cpp",
	".hpp":   "cpp",
	".c":     "c",
	".h":     "c",
	".rs":    "rust",
	".go":    "go",
	".rb":    "ruby",
	".php":   "php",
	".swift": "swift",
	".kt":    "kotlin",
	".md":    "markdown",
	".json":  "json",
	".yaml":  "yaml",
	".yml":   "yaml",
	".html":  "html",
	".css":   "css",
	".scss":  "scss",
	".sh":    "shellscript",
	".sql":   "sql",
	".txt":   "plaintext",
}

// LanguageForFile infers an editor language id from the file extension.
func LanguageForFile(path string) string {
	if strings.EqualFold(filepath.Base(path), "dockerfile") {
		return "dockerfile"
	}
	return languageByExt[strings.ToLower(filepath.Ext(path))]
}

func (g *Gatherer) logDebug(msg string, args ...any) {
	if g.logger != nil {
		g.logger.Debug(msg, args...)
	}
}
