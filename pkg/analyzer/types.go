package analyzer

// CodeContext holds the signals gathered from the active editing session.
// Zero values mean the signal is absent.
type CodeContext struct {
	ActiveFile    string   `json:"activeFile,omitempty"`
	SelectedText  string   `json:"selectedText,omitempty"`
	Language      string   `json:"language,omitempty"`
	LineNumber    int      `json:"lineNumber,omitempty"`
	WorkspaceRoot string   `json:"workspaceRoot,omitempty"`
	GitRepository string   `json:"gitRepository,omitempty"`
	ProjectType   string   `json:"projectType,omitempty"`
	Dependencies  []string `json:"dependencies,omitempty"`
	RecentChanges []string `json:"recentChanges,omitempty"`
}

type Complexity string

const (
	ComplexityLow    Complexity = "low"
	ComplexityMedium Complexity = "medium"
	ComplexityHigh   Complexity = "high"
)

// AnalysisResult is derived from a single CodeContext.
type AnalysisResult struct {
	Context              CodeContext `json:"context"`
	RelevantPerspectives []string    `json:"relevantPerspectives"`
	SuggestedPrompts     []string    `json:"suggestedPrompts"`
	Complexity           Complexity  `json:"complexity"`
}

// Perspective display names as reported in RelevantPerspectives.
const (
	NameWeaver            = "Weaver"
	NameMaker             = "Maker"
	NameChecker           = "Checker"
	NameObserverGuardian  = "Observer/Guardian"
	NameExplorerExploiter = "Explorer/Exploiter"
)

// AllPerspectives lists every perspective name in table order.
func AllPerspectives() []string {
	return []string{NameWeaver, NameMaker, NameChecker, NameObserverGuardian, NameExplorerExploiter}
}
