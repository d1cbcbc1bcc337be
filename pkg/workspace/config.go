package workspace

import (
	"strings"
	"sync"
)

// Config is the workspace-specific enrichment layered over built-in prompts.
// Empty strings and a nil CustomPrompts mean absent.
type Config struct {
	Instructions   string         `json:"instructions,omitempty"`
	CustomPrompts  *CustomPrompts `json:"customPrompts,omitempty"`
	ProjectContext string         `json:"projectContext,omitempty"`
}

// CustomPrompts replace the default paragraph of the matching prompt.
type CustomPrompts struct {
	System            string `json:"systemPrompt,omitempty"`
	Weaver            string `json:"weaverPrompt,omitempty"`
	Maker             string `json:"makerPrompt,omitempty"`
	Checker           string `json:"checkerPrompt,omitempty"`
	ObserverGuardian  string `json:"ogPrompt,omitempty"`
	ExplorerExploiter string `json:"eePrompt,omitempty"`
	Council           string `json:"councilPrompt,omitempty"`
}

// ForPerspective returns the override for a perspective alias or id
// (weaver, maker, checker, og, ee and their long forms).
func (c *CustomPrompts) ForPerspective(key string) string {
	if c == nil {
		return ""
	}
	switch strings.ToLower(key) {
	case "weaver":
		return c.Weaver
	case "maker":
		return c.Maker
	case "checker":
		return c.Checker
	case "og", "observer-guardian":
		return c.ObserverGuardian
	case "ee", "explorer-exploiter":
		return c.ExplorerExploiter
	}
	return ""
}

func (c *CustomPrompts) empty() bool {
	return *c == CustomPrompts{}
}

// configCache holds the loaded Config until invalidated. The watcher
// invalidates from its own goroutine, hence the mutex. gen counts
// invalidations so a Load that started before one cannot store its result.
type configCache struct {
	mu     sync.Mutex
	value  *Config
	cached bool
	gen    uint64
}

func (c *configCache) get() (*Config, bool, uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value, c.cached, c.gen
}

// set stores cfg only if no invalidation happened since gen was read.
func (c *configCache) set(cfg *Config, gen uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen {
		return
	}
	c.value, c.cached = cfg, true
}

func (c *configCache) invalidate() {
	c.mu.Lock()
	c.value, c.cached = nil, false
	c.gen++
	c.mu.Unlock()
}
