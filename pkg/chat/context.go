// Package chat composes the ad-hoc prompts handed to the chat surface:
// perspective questions, council meetings, code, file and debug analysis.
package chat

import (
	"fmt"
	"strings"

	"github.com/garghimanshu0786/think-center-vscode/pkg/analyzer"
)

const unknown = "unknown"

// ProjectContext is the condensed view of an analysis used in prompt headers.
type ProjectContext struct {
	ProjectType  string
	Language     string
	Framework    string
	CurrentFile  string
	SelectedCode string
	RelatedFiles []string
	GitBranch    string
	Diagnostics  int
}

// FromAnalysis converts an analysis into a ProjectContext.
func FromAnalysis(res analyzer.AnalysisResult) ProjectContext {
	c := res.Context
	return ProjectContext{
		ProjectType:  orUnknown(c.ProjectType),
		Language:     orUnknown(c.Language),
		Framework:    c.ProjectType,
		CurrentFile:  c.ActiveFile,
		SelectedCode: c.SelectedText,
		RelatedFiles: c.Dependencies,
		GitBranch:    c.GitRepository,
	}
}

// FormatContext renders the one-line context summary.
func FormatContext(c ProjectContext) string {
	var parts []string
	if c.ProjectType != "" && c.ProjectType != unknown {
		parts = append(parts, c.ProjectType+" project")
	}
	if c.Framework != "" {
		parts = append(parts, c.Framework)
	}
	if c.Language != "" {
		parts = append(parts, c.Language)
	}
	if name := baseName(c.CurrentFile); name != "" {
		parts = append(parts, name)
	}
	if c.Diagnostics > 0 {
		parts = append(parts, fmt.Sprintf("%d diagnostic(s)", c.Diagnostics))
	}
	if len(parts) == 0 {
		return "Development context"
	}
	return strings.Join(parts, " | ")
}

// baseName returns the last path segment, treating both separators alike.
func baseName(file string) string {
	return file[strings.LastIndexAny(file, "/\\")+1:]
}

func orUnknown(s string) string {
	if s == "" {
		return unknown
	}
	return s
}
