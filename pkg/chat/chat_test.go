package chat

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/garghimanshu0786/think-center-vscode/pkg/analyzer"
	"github.com/garghimanshu0786/think-center-vscode/pkg/workspace"
)

func TestFormatContext(t *testing.T) {
	tests := []struct {
		name string
		ctx  ProjectContext
		want string
	}{
		{"empty", ProjectContext{}, "Development context"},
		{"unknown project type", ProjectContext{ProjectType: "unknown"}, "Development context"},
		{
			"full",
			ProjectContext{ProjectType: "react", Framework: "react", Language: "typescript", CurrentFile: "/src/App.tsx", Diagnostics: 2},
			"react project | react | typescript | App.tsx | 2 diagnostic(s)",
		},
		{"windows path", ProjectContext{CurrentFile: `C:\src\main.go`}, "main.go"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatContext(tt.ctx); got != tt.want {
				t.Fatalf("want %q, got %q", tt.want, got)
			}
		})
	}
}

func TestFromAnalysis(t *testing.T) {
	res := analyzer.AnalysisResult{Context: analyzer.CodeContext{
		ActiveFile:   "/w/main.go",
		SelectedText: "x := 1",
	}}
	want := ProjectContext{
		ProjectType:  "unknown",
		Language:     "unknown",
		CurrentFile:  "/w/main.go",
		SelectedCode: "x := 1",
	}
	if diff := cmp.Diff(want, FromAnalysis(res)); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
}

func TestPersonaFallbacks(t *testing.T) {
	if Emoji("OG") != "🔍" || DisplayName("explorer-exploiter") != "Explorer/Exploiter" {
		t.Fatalf("unexpected persona lookup")
	}
	if Emoji("nobody") != "🧠" || DisplayName("nobody") != "nobody" || Focus("nobody") != "multi-perspective analysis" {
		t.Fatalf("unexpected fallback")
	}
}

func TestSystemPromptDefaults(t *testing.T) {
	if got := NewBuilder(nil).SystemPrompt(); got != DefaultSystemPrompt {
		t.Fatalf("expected default system prompt, got %q", got)
	}
}

func TestSystemPromptOverrides(t *testing.T) {
	b := NewBuilder(&workspace.Config{
		Instructions:   "Use tabs.",
		CustomPrompts:  &workspace.CustomPrompts{System: "Custom system."},
		ProjectContext: "A CLI tool.",
	})
	want := "Custom system.\n\n**Project Context**:\nA CLI tool.\n\n**Workspace Instructions**:\nUse tabs."
	if got := b.SystemPrompt(); got != want {
		t.Fatalf("want %q, got %q", want, got)
	}
}

func TestAsk(t *testing.T) {
	got := NewBuilder(nil).Ask("weaver", "How to split this?", ProjectContext{Language: "go"})
	want := "**🧵 Weaver** analysis requested:\n\n" +
		"**Context**: go\n" +
		"**Question**: How to split this?\n\n" +
		"Please analyze this from the Weaver perspective, focusing on architecture patterns and system design."
	if got != want {
		t.Fatalf("want %q, got %q", want, got)
	}
}

func TestAskCustomGuidance(t *testing.T) {
	b := NewBuilder(&workspace.Config{
		Instructions:  "Be brief.",
		CustomPrompts: &workspace.CustomPrompts{Checker: "Think about races."},
	})
	got := b.Ask("checker", "Is this safe?", ProjectContext{})
	if strings.Contains(got, "Please analyze this") {
		t.Fatalf("custom guidance should replace default: %q", got)
	}
	if !strings.HasSuffix(got, "Think about races.\n\n**Workspace Instructions**:\nBe brief.") {
		t.Fatalf("unexpected tail: %q", got)
	}
}

func TestCouncil(t *testing.T) {
	got := NewBuilder(nil).Council("Caching", ProjectContext{})
	if !strings.HasPrefix(got, "**🏛️ Think Center Council Meeting**\n\n**Context**: Development context\n**Topic**: Caching\n\n"+councilAssembly) {
		t.Fatalf("unexpected council prompt: %q", got)
	}
	if !strings.HasSuffix(got, "Let the Council begin:") {
		t.Fatalf("unexpected ending: %q", got)
	}

	custom := NewBuilder(&workspace.Config{CustomPrompts: &workspace.CustomPrompts{Council: "Our council."}}).Council("x", ProjectContext{})
	if strings.Contains(custom, "Council Assembly") || !strings.Contains(custom, "Our council.") {
		t.Fatalf("custom council not applied: %q", custom)
	}
}

func TestCode(t *testing.T) {
	got := NewBuilder(nil).Code("fmt.Println()", ProjectContext{Language: "go"})
	if !strings.Contains(got, "**Code to Analyze**:\n```go\nfmt.Println()\n```\n\n"+analysisChecklist) {
		t.Fatalf("unexpected code prompt: %q", got)
	}
}

func TestFileTruncates(t *testing.T) {
	content := strings.Repeat("a", 2500)
	got := NewBuilder(nil).File(content, ProjectContext{CurrentFile: "/w/big.txt"})
	if !strings.HasPrefix(got, "**📁 Think Center File Analysis: big.txt**") {
		t.Fatalf("unexpected header: %q", got[:60])
	}
	if !strings.Contains(got, "Analyzing big.txt (1 lines)") {
		t.Fatalf("missing line count")
	}
	if !strings.Contains(got, strings.Repeat("a", 2000)+"\n... (truncated)\n```") {
		t.Fatalf("expected truncated content")
	}
	if strings.Contains(got, strings.Repeat("a", 2001)) {
		t.Fatalf("content was not cut at 2000 characters")
	}
}

func TestFileWithoutName(t *testing.T) {
	got := NewBuilder(nil).File("a\nb\nc", ProjectContext{})
	if !strings.Contains(got, "File Analysis: file**") || !strings.Contains(got, "(3 lines)") {
		t.Fatalf("unexpected prompt: %q", got)
	}
}

func TestDebug(t *testing.T) {
	got := NewBuilder(nil).Debug("nil pointer", ProjectContext{})
	if !strings.HasPrefix(got, "**🐛 Think Center Debug Session**") || !strings.Contains(got, "**Problem**: nil pointer") {
		t.Fatalf("unexpected debug prompt: %q", got)
	}
}

func TestTruncateCountsCharacters(t *testing.T) {
	s := strings.Repeat("é", 5)
	if Truncate(s, 5) != s {
		t.Fatalf("string at limit should be unchanged")
	}
	if got := Truncate(s, 3); got != "ééé"+truncatedMarker {
		t.Fatalf("unexpected truncation %q", got)
	}
}
