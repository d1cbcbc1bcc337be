package workspace

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
)

// Enhancement reports the outcome of EnhanceExistingInstructions.
type Enhancement struct {
	Enhanced bool
	Path     string
	Message  string
}

const noInstructionsMessage = "No existing instructions file found. Create new configuration files instead."

// CreateTemplateFiles writes the default instructions and prompts files when
// they do not exist yet. Existing files are never touched. It returns the
// paths it created.
func (l *Loader) CreateTemplateFiles() ([]string, error) {
	defer l.Invalidate()

	files := []struct {
		rel     string
		content string
	}{
		{DefaultInstructionsFile, DefaultInstructionsMD},
		{DefaultPromptsFile, DefaultPromptsMD},
	}

	var created []string
	for _, f := range files {
		path := l.Path(f.rel)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return created, fmt.Errorf("create %s: %w", filepath.Dir(f.rel), err)
		}
		if _, err := os.Stat(path); err == nil {
			continue
		}
		if err := writeNew(path, f.content); err != nil {
			return created, fmt.Errorf("write %s: %w", f.rel, err)
		}
		created = append(created, path)
	}
	return created, nil
}

// writeNew creates path exclusively so a file that appeared since the
// existence check is left alone.
func writeNew(path, content string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if os.IsExist(err) {
			return nil
		}
		return err
	}
	if _, err := f.WriteString(content); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

var thinkCenterMarkers = []*regexp.Regexp{
	regexp.MustCompile(`(?i)# Think Center`),
	regexp.MustCompile(`(?i)## Think Center`),
	regexp.MustCompile(`(?i)### Weaver`),
	regexp.MustCompile(`(?i)### Maker`),
	regexp.MustCompile(`(?i)### Checker`),
	regexp.MustCompile(`(?i)### Observer/Guardian`),
	regexp.MustCompile(`(?i)### Explorer/Exploiter`),
	regexp.MustCompile(`(?i)## Perspective Guidelines`),
}

// HasThinkCenterSections reports whether content already carries any Think Center heading.
func HasThinkCenterSections(content string) bool {
	for _, marker := range thinkCenterMarkers {
		if marker.MatchString(content) {
			return true
		}
	}
	return false
}

// EnhanceExistingInstructions appends the Think Center section to the first
// existing instructions file unless it already has one. A file that cannot be
// read is skipped; a failed write is returned as an error.
func (l *Loader) EnhanceExistingInstructions() (Enhancement, error) {
	for _, rel := range InstructionFiles {
		path := l.Path(rel)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			l.logDebug("instructions_unreadable", "path", path, "error", err)
			continue
		}
		content := string(data)
		if HasThinkCenterSections(content) {
			return Enhancement{
				Path:    path,
				Message: fmt.Sprintf("%s already contains Think Center sections", rel),
			}, nil
		}
		if err := os.WriteFile(path, []byte(content+integrationSection), 0o644); err != nil {
			return Enhancement{Path: path, Message: fmt.Sprintf("Failed to enhance %s", rel)}, fmt.Errorf("write %s: %w", rel, err)
		}
		l.Invalidate()
		return Enhancement{
			Enhanced: true,
			Path:     path,
			Message:  fmt.Sprintf("Enhanced %s with Think Center sections", rel),
		}, nil
	}
	return Enhancement{Message: noInstructionsMessage}, nil
}
