package workspace

import (
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	shortInstructionsLimit = 1000
	projectContextLines    = 10
	projectContextChars    = 500
)

// Loader reads the optional override files of one workspace root. Results
// are cached until Invalidate is called.
type Loader struct {
	root   string
	cache  configCache
	logger *slog.Logger
}

func NewLoader(root string) *Loader {
	return &Loader{root: filepath.Clean(root)}
}

func (l *Loader) SetLogger(logger *slog.Logger) {
	l.logger = logger
}

func (l *Loader) Root() string {
	return l.root
}

// Load returns the workspace config, reading the files on first use only.
// It never fails: unreadable files leave their field absent.
func (l *Loader) Load() *Config {
	cfg, ok, gen := l.cache.get()
	if ok {
		return cfg
	}
	cfg = &Config{
		Instructions:   l.loadInstructions(),
		CustomPrompts:  l.loadCustomPrompts(),
		ProjectContext: l.loadProjectContext(),
	}
	l.cache.set(cfg, gen)
	return cfg
}

// Invalidate drops the cached config so the next Load rereads the files.
func (l *Loader) Invalidate() {
	l.cache.invalidate()
}

func (l *Loader) loadInstructions() string {
	content, ok := l.readFirst(InstructionFiles)
	if !ok {
		return ""
	}
	return ExtractInstructions(content)
}

func (l *Loader) loadCustomPrompts() *CustomPrompts {
	content, ok := l.readFirst(PromptFiles)
	if !ok {
		return nil
	}
	return ParseCustomPrompts(content)
}

func (l *Loader) loadProjectContext() string {
	content, ok := l.readFirst(ProjectContextFiles)
	if !ok {
		return ""
	}
	return ProjectExcerpt(content)
}

// readFirst returns the content of the first candidate that exists. A file
// that exists but cannot be read is logged and the next candidate is tried.
func (l *Loader) readFirst(candidates []string) (string, bool) {
	for _, rel := range candidates {
		path := l.Path(rel)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			l.logDebug("workspace_file_unreadable", "path", path, "error", err)
			continue
		}
		return string(data), true
	}
	return "", false
}

// instructionSections locate a Think Center section; the body runs from the
// line after the heading up to the stop marker or the end of the file.
var instructionSections = []struct {
	heading *regexp.Regexp
	stop    string
}{
	{regexp.MustCompile(`(?is)# Think Center.*?\n`), "\n#"},
	{regexp.MustCompile(`(?is)## Think Center.*?\n`), "\n##"},
	{regexp.MustCompile(`(?is)<!-- Think Center.*?-->\n`), "\n<!--"},
}

// ExtractInstructions returns the Think Center section of an instructions
// file, the whole file when it is short, or "" otherwise.
func ExtractInstructions(content string) string {
	for _, section := range instructionSections {
		loc := section.heading.FindStringIndex(content)
		if loc == nil {
			continue
		}
		body := content[loc[1]:]
		if end := strings.Index(body, section.stop); end >= 0 {
			body = body[:end]
		}
		if body != "" {
			return strings.TrimSpace(body)
		}
	}
	if utf8.RuneCountInString(content) < shortInstructionsLimit {
		return strings.TrimSpace(content)
	}
	return ""
}

var sectionSplit = regexp.MustCompile(`(?m)^##\s+`)

// promptClassifiers map a lower-cased section title to a CustomPrompts field, first match wins.
var promptClassifiers = []struct {
	keywords []string
	assign   func(*CustomPrompts, string)
}{
	{[]string{"system", "main"}, func(c *CustomPrompts, v string) { c.System = v }},
	{[]string{"weaver"}, func(c *CustomPrompts, v string) { c.Weaver = v }},
	{[]string{"maker"}, func(c *CustomPrompts, v string) { c.Maker = v }},
	{[]string{"checker"}, func(c *CustomPrompts, v string) { c.Checker = v }},
	{[]string{"observer", "guardian", "o/g"}, func(c *CustomPrompts, v string) { c.ObserverGuardian = v }},
	{[]string{"explorer", "exploiter", "e/e"}, func(c *CustomPrompts, v string) { c.ExplorerExploiter = v }},
	{[]string{"council"}, func(c *CustomPrompts, v string) { c.Council = v }},
}

// ParseCustomPrompts splits content on level-two headings and keeps the
// sections whose titles name a prompt. It returns nil when none match.
func ParseCustomPrompts(content string) *CustomPrompts {
	prompts := &CustomPrompts{}
	for _, section := range sectionSplit.Split(content, -1) {
		title, body, _ := strings.Cut(section, "\n")
		title = strings.ToLower(strings.TrimSpace(title))
		body = strings.TrimSpace(body)
		if title == "" || body == "" {
			continue
		}
		for _, cl := range promptClassifiers {
			if containsAny(title, cl.keywords) {
				cl.assign(prompts, body)
				break
			}
		}
	}
	if prompts.empty() {
		return nil
	}
	return prompts
}

// ProjectExcerpt keeps the first lines of a README-like file, capped in length.
func ProjectExcerpt(content string) string {
	lines := strings.Split(content, "\n")
	if len(lines) > projectContextLines {
		lines = lines[:projectContextLines]
	}
	excerpt := strings.Join(lines, "\n")
	if utf8.RuneCountInString(excerpt) > projectContextChars {
		excerpt = string([]rune(excerpt)[:projectContextChars])
	}
	return excerpt
}

func containsAny(s string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}

func (l *Loader) logDebug(msg string, args ...any) {
	if l.logger != nil {
		l.logger.Debug(msg, args...)
	}
}
