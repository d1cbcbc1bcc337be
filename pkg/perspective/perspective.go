package perspective

// Perspective is one of the fixed analytical personas used to frame a prompt.
type Perspective struct {
	ID                  string           `json:"id"`
	Name                string           `json:"name"`
	Description         string           `json:"description"`
	Icon                string           `json:"icon"`
	Color               string           `json:"color"`
	Alias               string           `json:"alias"`
	Prompts             []PromptTemplate `json:"prompts"`
	ContextualQuestions []string         `json:"contextualQuestions"`
}

// PromptTemplate is a prompt with {name} placeholders owned by a Perspective.
type PromptTemplate struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Template    string `json:"template"`
}

// Placeholder names filled from the active editing context.
const (
	VarSelectedCode = "selectedCode"
	VarActiveFile   = "activeFile"
	VarLanguage     = "language"
	VarProjectType  = "projectType"
)

// Prompt returns the template with the given id.
func (p *Perspective) Prompt(id string) (*PromptTemplate, bool) {
	for i := range p.Prompts {
		if p.Prompts[i].ID == id {
			return &p.Prompts[i], true
		}
	}
	return nil, false
}
