package workspace

import (
	"os"
	"path/filepath"
)

// Backing files, relative to the workspace root, in lookup order.
var (
	InstructionFiles = []string{
		".github/instructions/.instructions.md",
	}
	PromptFiles = []string{
		".vscode/think-center-prompts.md",
		".vscode/prompts.md",
		"think-center-prompts.md",
		"prompts.md",
	}
	ProjectContextFiles = []string{
		"README.md",
		"docs/README.md",
		"PROJECT.md",
	}
)

// Files written by CreateTemplateFiles.
const (
	DefaultInstructionsFile = ".github/instructions/.instructions.md"
	DefaultPromptsFile      = ".vscode/think-center-prompts.md"
)

// Resolve returns the workspace root: THINK_CENTER_WORKSPACE or the working directory.
func Resolve() string {
	if ws := os.Getenv("THINK_CENTER_WORKSPACE"); ws != "" {
		return ws
	}
	pwd, _ := os.Getwd()
	return pwd
}

func HomeDir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".thinkcenter")
}

// TrackedFiles lists every backing file the loader may read.
func TrackedFiles() []string {
	out := make([]string, 0, len(InstructionFiles)+len(PromptFiles)+len(ProjectContextFiles))
	out = append(out, InstructionFiles...)
	out = append(out, PromptFiles...)
	out = append(out, ProjectContextFiles...)
	return out
}

// Path joins rel, a slash-separated path, onto the workspace root.
func (l *Loader) Path(rel string) string {
	return filepath.Join(l.root, filepath.FromSlash(rel))
}
