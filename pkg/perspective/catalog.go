package perspective

// Perspective ids.
const (
	Weaver            = "weaver"
	Maker             = "maker"
	Checker           = "checker"
	ObserverGuardian  = "observer-guardian"
	ExplorerExploiter = "explorer-exploiter"
)

// Catalog returns a fresh copy of the five built-in perspectives in table order.
func Catalog() []Perspective {
	return []Perspective{
		{
			ID:          Weaver,
			Name:        "Weaver",
			Description: "Architecture and Design Perspective",
			Icon:        "symbol-structure",
			Color:       "#4A90E2",
			Alias:       "weaver",
			Prompts: []PromptTemplate{
				{
					ID:          "architecture-review",
					Title:       "Architecture Review",
					Description: "Analyze the overall architecture and design patterns",
					Template:    "As the Weaver perspective, review the architecture of this code:\n\n{selectedCode}\n\nFocus on:\n- Design patterns and architectural decisions\n- Component relationships and dependencies\n- Scalability and maintainability considerations\n- Potential structural improvements",
				},
				{
					ID:          "design-patterns",
					Title:       "Design Patterns Analysis",
					Description: "Identify and evaluate design patterns",
					Template:    "From the Weaver perspective, analyze the design patterns in:\n\n{selectedCode}\n\nIdentify:\n- Current design patterns used\n- Pattern effectiveness and appropriateness\n- Missing patterns that could improve the design\n- Recommendations for pattern implementation",
				},
				{
					ID:          "structure-optimization",
					Title:       "Structure Optimization",
					Description: "Suggest structural improvements and refactoring",
					Template:    "As the Weaver, examine this code structure:\n\n{selectedCode}\n\nProvide recommendations for:\n- Code organization and module structure\n- Separation of concerns\n- Abstraction levels\n- Interface design",
				},
			},
			ContextualQuestions: []string{
				"How does this fit into the overall system architecture?",
				"What design patterns would be most appropriate here?",
				"How can we improve the structural integrity of this code?",
				"What are the long-term maintainability implications?",
			},
		},
		{
			ID:          Maker,
			Name:        "Maker",
			Description: "Implementation and Development Perspective",
			Icon:        "tools",
			Color:       "#7ED321",
			Alias:       "maker",
			Prompts: []PromptTemplate{
				{
					ID:          "implementation-plan",
					Title:       "Implementation Plan",
					Description: "Create a step-by-step implementation strategy",
					Template:    "As the Maker perspective, create an implementation plan for:\n\n{selectedCode}\n\nProvide:\n- Step-by-step implementation approach\n- Required dependencies and tools\n- Code structure and organization\n- Implementation milestones and checkpoints",
				},
				{
					ID:          "code-review",
					Title:       "Code Review",
					Description: "Review implementation details and suggest improvements",
					Template:    "From the Maker perspective, review this implementation:\n\n{selectedCode}\n\nFocus on:\n- Code quality and best practices\n- Error handling and edge cases\n- Performance considerations\n- Code readability and documentation",
				},
				{
					ID:          "refactoring-suggestions",
					Title:       "Refactoring Suggestions",
					Description: "Propose specific refactoring improvements",
					Template:    "As the Maker, analyze this code for refactoring opportunities:\n\n{selectedCode}\n\nSuggest:\n- Specific refactoring techniques\n- Code simplification opportunities\n- Performance improvements\n- Maintainability enhancements",
				},
			},
			ContextualQuestions: []string{
				"What is the most efficient way to implement this?",
				"How can we make this code more maintainable?",
				"What tools and libraries would be most helpful?",
				"What are the implementation risks and how can we mitigate them?",
			},
		},
		{
			ID:          Checker,
			Name:        "Checker",
			Description: "Quality Assurance and Testing Perspective",
			Icon:        "check",
			Color:       "#F5A623",
			Alias:       "checker",
			Prompts: []PromptTemplate{
				{
					ID:          "quality-assessment",
					Title:       "Quality Assessment",
					Description: "Comprehensive quality and reliability analysis",
					Template:    "As the Checker perspective, assess the quality of:\n\n{selectedCode}\n\nEvaluate:\n- Code correctness and potential bugs\n- Error handling and edge cases\n- Security considerations\n- Performance implications",
				},
				{
					ID:          "test-strategy",
					Title:       "Test Strategy",
					Description: "Design comprehensive testing approach",
					Template:    "From the Checker perspective, design tests for:\n\n{selectedCode}\n\nInclude:\n- Unit test cases and scenarios\n- Integration test considerations\n- Edge cases and error conditions\n- Test data and mock requirements",
				},
				{
					ID:          "bug-analysis",
					Title:       "Bug Analysis",
					Description: "Identify potential issues and vulnerabilities",
					Template:    "As the Checker, analyze this code for potential issues:\n\n{selectedCode}\n\nIdentify:\n- Potential bugs and logical errors\n- Security vulnerabilities\n- Performance bottlenecks\n- Reliability concerns",
				},
			},
			ContextualQuestions: []string{
				"What could go wrong with this implementation?",
				"How can we ensure this code is reliable and secure?",
				"What test cases are needed to validate this functionality?",
				"Are there any edge cases we haven't considered?",
			},
		},
		{
			ID:          ObserverGuardian,
			Name:        "Observer/Guardian",
			Description: "User Experience and Requirements Perspective",
			Icon:        "account",
			Color:       "#BD10E0",
			Alias:       "og",
			Prompts: []PromptTemplate{
				{
					ID:          "user-experience-review",
					Title:       "User Experience Review",
					Description: "Evaluate from the user's perspective",
					Template:    "As the Observer/Guardian perspective, evaluate the user experience of:\n\n{selectedCode}\n\nConsider:\n- User interaction and interface design\n- Accessibility and usability\n- User journey and workflow\n- Feedback and error messaging",
				},
				{
					ID:          "requirements-analysis",
					Title:       "Requirements Analysis",
					Description: "Analyze requirements fulfillment and gaps",
					Template:    "From the Observer/Guardian perspective, analyze requirements for:\n\n{selectedCode}\n\nEvaluate:\n- Requirement coverage and completeness\n- User needs and expectations\n- Business value and objectives\n- Compliance and regulatory considerations",
				},
				{
					ID:          "stakeholder-impact",
					Title:       "Stakeholder Impact",
					Description: "Assess impact on different stakeholders",
					Template:    "As the Observer/Guardian, assess stakeholder impact of:\n\n{selectedCode}\n\nAnalyze impact on:\n- End users and their workflows\n- Business stakeholders and objectives\n- Development and maintenance teams\n- System administrators and operators",
				},
			},
			ContextualQuestions: []string{
				"How will this affect the end user experience?",
				"Does this meet the actual requirements and needs?",
				"What are the broader implications for stakeholders?",
				"How can we ensure this adds real value?",
			},
		},
		{
			ID:          ExplorerExploiter,
			Name:        "Explorer/Exploiter",
			Description: "Innovation and Optimization Perspective",
			Icon:        "rocket",
			Color:       "#50E3C2",
			Alias:       "ee",
			Prompts: []PromptTemplate{
				{
					ID:          "optimization-analysis",
					Title:       "Optimization Analysis",
					Description: "Identify performance and efficiency improvements",
					Template:    "As the Explorer/Exploiter perspective, analyze optimization opportunities in:\n\n{selectedCode}\n\nExplore:\n- Performance optimization techniques\n- Resource utilization improvements\n- Algorithmic enhancements\n- Caching and efficiency strategies",
				},
				{
					ID:          "alternative-approaches",
					Title:       "Alternative Approaches",
					Description: "Explore different solutions and methodologies",
					Template:    "From the Explorer/Exploiter perspective, explore alternatives for:\n\n{selectedCode}\n\nConsider:\n- Different algorithmic approaches\n- Alternative technologies and frameworks\n- Innovative solutions and patterns\n- Trade-offs and benefits analysis",
				},
				{
					ID:          "innovation-opportunities",
					Title:       "Innovation Opportunities",
					Description: "Identify areas for innovation and improvement",
					Template:    "As the Explorer/Exploiter, identify innovation opportunities in:\n\n{selectedCode}\n\nLook for:\n- Emerging technologies that could be applied\n- Creative solutions to current limitations\n- Automation and enhancement possibilities\n- Future-proofing considerations",
				},
			},
			ContextualQuestions: []string{
				"How can we make this more efficient or performant?",
				"What alternative approaches should we consider?",
				"Where are the opportunities for innovation?",
				"How can we future-proof this solution?",
			},
		},
	}
}
