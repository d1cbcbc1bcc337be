package analyzer

import (
	"strings"
	"unicode/utf8"
)

// relevanceRule credits a perspective when any of its markers is present.
// File markers match the lower-cased active file path; text markers match the
// selection as written.
type relevanceRule struct {
	perspective string
	fileMarkers []string
	textMarkers []string
	languages   []string
}

var codeLanguages = []string{"typescript", "javascript", "python", "java", "csharp", "cpp", "rust", "go"}

var relevanceRules = []relevanceRule{
	{
		perspective: NameWeaver,
		fileMarkers: []string{".md", ".txt", "config", "package.json", "tsconfig.json"},
		textMarkers: []string{"class ", "interface ", "architecture", "design"},
	},
	{
		perspective: NameMaker,
		textMarkers: []string{"function ", "const ", "def "},
		languages:   codeLanguages,
	},
	{
		perspective: NameChecker,
		fileMarkers: []string{"test", "spec", ".test.", ".spec."},
		textMarkers: []string{"test", "expect", "assert"},
	},
	{
		perspective: NameObserverGuardian,
		fileMarkers: []string{"component", "view", "page", "ui", "ux"},
		textMarkers: []string{"user", "UI", "interface"},
	},
	{
		perspective: NameExplorerExploiter,
		textMarkers: []string{"performance", "optimize", "efficient", "cache", "memory"},
	},
}

func (r relevanceRule) matches(c CodeContext) bool {
	if c.ActiveFile != "" && containsAny(strings.ToLower(c.ActiveFile), r.fileMarkers) {
		return true
	}
	if c.Language != "" && contains(r.languages, c.Language) {
		return true
	}
	return c.SelectedText != "" && containsAny(c.SelectedText, r.textMarkers)
}

// complexityRule adds the points of the first tier whose predicate holds.
type complexityRule struct {
	name  string
	tiers []complexityTier
}

type complexityTier struct {
	points int
	match  func(CodeContext) bool
}

var (
	complexLanguages = []string{"typescript", "javascript", "python", "java", "csharp", "cpp", "rust"}
	frameworkTypes   = []string{"react", "angular", "vue", "nodejs", "django"}
)

var complexityRules = []complexityRule{
	{
		name: "selection",
		tiers: []complexityTier{
			{points: 2, match: func(c CodeContext) bool { return utf8.RuneCountInString(c.SelectedText) > 1000 }},
			{points: 1, match: func(c CodeContext) bool { return utf8.RuneCountInString(c.SelectedText) > 100 }},
		},
	},
	{
		name: "language",
		tiers: []complexityTier{
			{points: 1, match: func(c CodeContext) bool { return contains(complexLanguages, c.Language) }},
		},
	},
	{
		name: "framework",
		tiers: []complexityTier{
			{points: 1, match: func(c CodeContext) bool { return contains(frameworkTypes, c.ProjectType) }},
		},
	},
	{
		name: "dependencies",
		tiers: []complexityTier{
			{points: 2, match: func(c CodeContext) bool { return len(c.Dependencies) > 20 }},
			{points: 1, match: func(c CodeContext) bool { return len(c.Dependencies) > 10 }},
		},
	},
}

func (r complexityRule) score(c CodeContext) int {
	for _, tier := range r.tiers {
		if tier.match(c) {
			return tier.points
		}
	}
	return 0
}

const (
	highThreshold   = 4
	mediumThreshold = 2
)

// suggestionTable is fixed text per perspective, independent of the template catalog.
var suggestionTable = []struct {
	perspective string
	prompts     []string
}{
	{NameWeaver, []string{
		"Analyze the architecture and design patterns in this code",
		"Review the overall structure and suggest improvements",
	}},
	{NameMaker, []string{
		"Help implement this feature step by step",
		"Refactor this code for better maintainability",
	}},
	{NameChecker, []string{
		"Review this code for potential bugs and issues",
		"Suggest comprehensive test cases for this functionality",
	}},
	{NameObserverGuardian, []string{
		"Evaluate the user experience of this feature",
		"Analyze requirements and edge cases",
	}},
	{NameExplorerExploiter, []string{
		"Identify performance optimization opportunities",
		"Explore alternative approaches and trade-offs",
	}},
}

func containsAny(s string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}

func contains(list []string, v string) bool {
	if v == "" {
		return false
	}
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
