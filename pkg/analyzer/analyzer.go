// Package analyzer classifies the active editing context: which perspectives
// are relevant, how complex the work looks, and which prompts to suggest.
package analyzer

// Analyzer is a pure function of a CodeContext and the static rule tables.
type Analyzer struct{}

func New() *Analyzer {
	return &Analyzer{}
}

// Analyze never fails; absent fields simply fail their predicates.
func (a *Analyzer) Analyze(c CodeContext) AnalysisResult {
	relevant := a.RelevantPerspectives(c)
	return AnalysisResult{
		Context:              c,
		RelevantPerspectives: relevant,
		SuggestedPrompts:     a.SuggestedPrompts(relevant),
		Complexity:           a.Complexity(c),
	}
}

// RelevantPerspectives is never empty: when no rule fires every perspective is returned.
func (a *Analyzer) RelevantPerspectives(c CodeContext) []string {
	var out []string
	for _, rule := range relevanceRules {
		if rule.matches(c) {
			out = append(out, rule.perspective)
		}
	}
	if len(out) == 0 {
		return AllPerspectives()
	}
	return out
}

func (a *Analyzer) Score(c CodeContext) int {
	score := 0
	for _, rule := range complexityRules {
		score += rule.score(c)
	}
	return score
}

func (a *Analyzer) Complexity(c CodeContext) Complexity {
	switch score := a.Score(c); {
	case score >= highThreshold:
		return ComplexityHigh
	case score >= mediumThreshold:
		return ComplexityMedium
	default:
		return ComplexityLow
	}
}

func (a *Analyzer) SuggestedPrompts(perspectives []string) []string {
	var out []string
	for _, row := range suggestionTable {
		if contains(perspectives, row.perspective) {
			out = append(out, row.prompts...)
		}
	}
	return out
}
