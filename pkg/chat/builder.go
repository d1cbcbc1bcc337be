package chat

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/garghimanshu0786/think-center-vscode/pkg/workspace"
)

const (
	fileContentLimit = 2000
	truncatedMarker  = "\n... (truncated)"
)

// Builder composes ad-hoc prompts, layering workspace overrides over the
// built-in text. A nil config means built-in defaults only.
type Builder struct {
	cfg *workspace.Config
}

func NewBuilder(cfg *workspace.Config) *Builder {
	if cfg == nil {
		cfg = &workspace.Config{}
	}
	return &Builder{cfg: cfg}
}

// SystemPrompt returns the chat initialisation prompt.
func (b *Builder) SystemPrompt() string {
	var buf strings.Builder
	buf.WriteString(b.custom().System)
	if buf.Len() == 0 {
		buf.WriteString(DefaultSystemPrompt)
	}
	if b.cfg.ProjectContext != "" {
		buf.WriteString("\n\n**Project Context**:\n")
		buf.WriteString(b.cfg.ProjectContext)
	}
	b.writeInstructions(&buf)
	return buf.String()
}

// Ask frames a question for a single perspective.
func (b *Builder) Ask(perspective, question string, ctx ProjectContext) string {
	name := DisplayName(perspective)

	var buf strings.Builder
	fmt.Fprintf(&buf, "**%s %s** analysis requested:\n\n", Emoji(perspective), name)
	fmt.Fprintf(&buf, "**Context**: %s\n", FormatContext(ctx))
	fmt.Fprintf(&buf, "**Question**: %s\n\n", question)
	if guidance := b.custom().ForPerspective(perspective); guidance != "" {
		buf.WriteString(guidance)
	} else {
		fmt.Fprintf(&buf, "Please analyze this from the %s perspective, focusing on %s.", name, Focus(perspective))
	}
	b.writeInstructions(&buf)
	return buf.String()
}

// Council addresses every perspective at once.
func (b *Builder) Council(topic string, ctx ProjectContext) string {
	var buf strings.Builder
	buf.WriteString("**🏛️ Think Center Council Meeting**\n\n")
	fmt.Fprintf(&buf, "**Context**: %s\n", FormatContext(ctx))
	fmt.Fprintf(&buf, "**Topic**: %s\n\n", topic)
	if council := b.custom().Council; council != "" {
		buf.WriteString(council)
	} else {
		buf.WriteString(councilAssembly)
	}
	buf.WriteString("\n\nEach perspective will analyze this topic and contribute their unique insights. Let the Council begin:")
	b.writeInstructions(&buf)
	return buf.String()
}

// Code asks for a multi-perspective review of a code selection.
func (b *Builder) Code(code string, ctx ProjectContext) string {
	var buf strings.Builder
	buf.WriteString("**🔍 Think Center Code Analysis**\n\n")
	fmt.Fprintf(&buf, "**Context**: %s\n\n", FormatContext(ctx))
	buf.WriteString("**Code to Analyze**:\n")
	writeFence(&buf, ctx.Language, code)
	buf.WriteString("\n\n")
	buf.WriteString(analysisChecklist)
	buf.WriteString("\n\nProvide insights from each relevant perspective:")
	b.writeInstructions(&buf)
	return buf.String()
}

// File asks for an analysis of a whole file; content beyond 2000 characters is cut.
func (b *Builder) File(content string, ctx ProjectContext) string {
	name := baseName(ctx.CurrentFile)
	if name == "" {
		name = "file"
	}

	var buf strings.Builder
	fmt.Fprintf(&buf, "**📁 Think Center File Analysis: %s**\n\n", name)
	fmt.Fprintf(&buf, "**Context**: %s\n\n", FormatContext(ctx))
	fmt.Fprintf(&buf, "**File Overview**: Analyzing %s (%d lines)\n\n", name, strings.Count(content, "\n")+1)
	buf.WriteString("**Multi-Perspective Analysis**:\n")
	buf.WriteString("Please analyze this file from the perspective of Weaver (architecture), Checker (quality), and O/G (maintainability):\n\n")
	writeFence(&buf, ctx.Language, Truncate(content, fileContentLimit))
	b.writeInstructions(&buf)
	return buf.String()
}

// Debug frames a bug report for the debugging perspectives.
func (b *Builder) Debug(problem string, ctx ProjectContext) string {
	var buf strings.Builder
	buf.WriteString("**🐛 Think Center Debug Session**\n\n")
	fmt.Fprintf(&buf, "**Context**: %s\n", FormatContext(ctx))
	fmt.Fprintf(&buf, "**Problem**: %s\n\n", problem)
	buf.WriteString(debugStrategy)
	buf.WriteString("\n\nLet's debug this step-by-step with multiple perspectives:")
	b.writeInstructions(&buf)
	return buf.String()
}

// Truncate keeps the first limit characters of s and marks the cut.
func Truncate(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	return string([]rune(s)[:limit]) + truncatedMarker
}

func (b *Builder) custom() *workspace.CustomPrompts {
	if b.cfg.CustomPrompts == nil {
		return &workspace.CustomPrompts{}
	}
	return b.cfg.CustomPrompts
}

func (b *Builder) writeInstructions(buf *strings.Builder) {
	if b.cfg.Instructions == "" {
		return
	}
	buf.WriteString("\n\n**Workspace Instructions**:\n")
	buf.WriteString(b.cfg.Instructions)
}

func writeFence(buf *strings.Builder, language, body string) {
	buf.WriteString("```")
	buf.WriteString(language)
	buf.WriteString("\n")
	buf.WriteString(body)
	buf.WriteString("\n```")
}
