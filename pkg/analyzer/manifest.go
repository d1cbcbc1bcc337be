package analyzer

import (
	"bufio"
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/mod/modfile"
)

// Project describes what the workspace manifest says about the project.
type Project struct {
	Type         string
	Manifest     string
	Dependencies []string
}

// manifestRule inspects one manifest file. Only a missing file lets the next
// rule try; ok is false when the file exists but cannot be read or parsed.
type manifestRule struct {
	file   string
	detect func(root string) (Project, bool)
}

var manifestRules = []manifestRule{
	{file: "package.json", detect: detectPackageJSON},
	{file: "go.mod", detect: detectGoMod},
	{file: "manage.py", detect: detectDjango},
	{file: "requirements.txt", detect: detectRequirements},
}

// packageFrameworks maps package.json dependency keys to project types, first match wins.
var packageFrameworks = []struct {
	keys        []string
	projectType string
}{
	{[]string{"react"}, "react"},
	{[]string{"angular", "@angular/core"}, "angular"},
	{[]string{"vue"}, "vue"},
	{[]string{"express"}, "nodejs"},
	{[]string{"next"}, "nextjs"},
}

const genericPackageType = "javascript"

// DetectProject walks the manifest rules in order and stops at the first
// manifest present in root. A present but unusable manifest leaves the
// project absent.
func DetectProject(root string) (Project, bool) {
	if root == "" {
		return Project{}, false
	}
	for _, rule := range manifestRules {
		if _, err := os.Stat(filepath.Join(root, rule.file)); err != nil {
			continue
		}
		p, ok := rule.detect(root)
		if !ok {
			return Project{}, false
		}
		p.Manifest = rule.file
		return p, true
	}
	return Project{}, false
}

func detectPackageJSON(root string) (Project, bool) {
	data, err := os.ReadFile(filepath.Join(root, "package.json"))
	if err != nil {
		return Project{}, false
	}
	var manifest struct {
		Dependencies    map[string]json.RawMessage `json:"dependencies"`
		DevDependencies map[string]json.RawMessage `json:"devDependencies"`
	}
	if err := json.Unmarshal(data, &manifest); err != nil {
		return Project{}, false
	}

	deps := make(map[string]bool, len(manifest.Dependencies)+len(manifest.DevDependencies))
	for k := range manifest.Dependencies {
		deps[k] = true
	}
	for k := range manifest.DevDependencies {
		deps[k] = true
	}

	p := Project{Type: genericPackageType, Dependencies: sortedKeys(deps)}
	for _, fw := range packageFrameworks {
		if anyKey(deps, fw.keys) {
			p.Type = fw.projectType
			break
		}
	}
	return p, true
}

func detectGoMod(root string) (Project, bool) {
	path := filepath.Join(root, "go.mod")
	data, err := os.ReadFile(path)
	if err != nil {
		return Project{}, false
	}
	f, err := modfile.Parse(path, data, nil)
	if err != nil {
		return Project{}, false
	}
	deps := make([]string, 0, len(f.Require))
	for _, req := range f.Require {
		deps = append(deps, req.Mod.Path)
	}
	return Project{Type: "go", Dependencies: deps}, true
}

func detectDjango(root string) (Project, bool) {
	if _, err := os.Stat(filepath.Join(root, "manage.py")); err != nil {
		return Project{}, false
	}
	deps, _ := readRequirements(filepath.Join(root, "requirements.txt"))
	return Project{Type: "django", Dependencies: deps}, true
}

func detectRequirements(root string) (Project, bool) {
	deps, err := readRequirements(filepath.Join(root, "requirements.txt"))
	if err != nil {
		return Project{}, false
	}
	p := Project{Type: "python", Dependencies: deps}
	for _, d := range deps {
		if strings.EqualFold(d, "django") {
			p.Type = "django"
			break
		}
	}
	return p, true
}

func readRequirements(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var deps []string
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "-") {
			continue
		}
		if idx := strings.IndexAny(line, "=<>~![; "); idx >= 0 {
			line = line[:idx]
		}
		if line != "" {
			deps = append(deps, line)
		}
	}
	return deps, scanner.Err()
}

func anyKey(m map[string]bool, keys []string) bool {
	for _, k := range keys {
		if m[k] {
			return true
		}
	}
	return false
}

func sortedKeys(m map[string]bool) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
