package perspective

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/xlab/treeprint"
)

// Provider serves the perspective catalog and composes catalog prompts.
type Provider struct {
	perspectives []Perspective
	byID         map[string]int
}

func NewProvider() *Provider {
	return newProvider(Catalog())
}

func newProvider(perspectives []Perspective) *Provider {
	p := &Provider{perspectives: perspectives, byID: make(map[string]int, len(perspectives))}
	for i, item := range perspectives {
		p.byID[item.ID] = i
	}
	return p
}

func (p *Provider) List() []*Perspective {
	out := make([]*Perspective, 0, len(p.perspectives))
	for i := range p.perspectives {
		out = append(out, &p.perspectives[i])
	}
	return out
}

func (p *Provider) Get(id string) (*Perspective, bool) {
	idx, ok := p.byID[id]
	if !ok {
		return nil, false
	}
	return &p.perspectives[idx], true
}

// Resolve matches key against ids, aliases and display names, ignoring case.
func (p *Provider) Resolve(key string) (*Perspective, bool) {
	key = strings.TrimSpace(key)
	if key == "" {
		return nil, false
	}
	for i := range p.perspectives {
		item := &p.perspectives[i]
		if strings.EqualFold(item.ID, key) || strings.EqualFold(item.Alias, key) || strings.EqualFold(item.Name, key) {
			return item, true
		}
	}
	return nil, false
}

// Suggest returns perspective ids that fuzzily match key, best first.
func (p *Provider) Suggest(key string) []string {
	targets := make([]string, 0, len(p.perspectives)*2)
	owner := make(map[string]string, len(p.perspectives)*2)
	for _, item := range p.perspectives {
		for _, t := range []string{item.ID, item.Alias} {
			if _, dup := owner[t]; dup {
				continue
			}
			owner[t] = item.ID
			targets = append(targets, t)
		}
	}

	ranks := fuzzy.RankFindFold(strings.TrimSpace(key), targets)
	sort.Sort(ranks)

	var out []string
	seen := map[string]bool{}
	for _, r := range ranks {
		id := owner[r.Target]
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

// PromptWithContext substitutes vars into the template identified by perspectiveID and promptID.
// The boolean is false when either id is unknown.
func (p *Provider) PromptWithContext(perspectiveID, promptID string, vars map[string]string) (string, bool) {
	item, ok := p.Get(perspectiveID)
	if !ok {
		return "", false
	}
	prompt, ok := item.Prompt(promptID)
	if !ok {
		return "", false
	}
	return Substitute(prompt.Template, vars), true
}

// Tree renders perspectives and their prompts as a text tree.
func (p *Provider) Tree() string {
	tree := treeprint.NewWithRoot("Think Center")
	for _, item := range p.perspectives {
		branch := tree.AddMetaBranch(item.ID, item.Name+" - "+item.Description)
		for _, prompt := range item.Prompts {
			branch.AddMetaNode(prompt.ID, prompt.Title)
		}
	}
	return tree.String()
}
