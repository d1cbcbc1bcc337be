package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/garghimanshu0786/think-center-vscode/pkg/chat"
	"github.com/garghimanshu0786/think-center-vscode/pkg/perspective"
)

func initCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Copy the Think Center system prompt for a new chat",
		Args:  cobra.NoArgs,
		RunE: run(opts, "Think Center initialization error", func(ctx context.Context, a *app, args []string) error {
			a.deliver(ctx, a.builder().SystemPrompt(), "initialization", "🧠 Think Center initialization copied to clipboard!")
			return nil
		}),
	}
}

func askCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "ask <perspective> <question>",
		Short: "Ask one perspective a question",
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.MinimumNArgs(2)(cmd, args); err != nil {
				return err
			}
			_, err := resolvePerspective(perspective.NewProvider(), args[0])
			return err
		},
		RunE: run(opts, "Think Center error", func(ctx context.Context, a *app, args []string) error {
			item, err := resolvePerspective(a.perspectives, args[0])
			if err != nil {
				return err
			}
			askPerspective(ctx, a, item.Alias, strings.Join(args[1:], " "))
			return nil
		}),
	}
}

// shortcutCmd is ask with the perspective fixed, e.g. "thinkcenter weaver <question>".
func shortcutCmd(opts *options, key string) *cobra.Command {
	return &cobra.Command{
		Use:   key + " <question>",
		Short: "Ask " + chat.DisplayName(key),
		Args:  cobra.MinimumNArgs(1),
		RunE: run(opts, "Think Center error", func(ctx context.Context, a *app, args []string) error {
			askPerspective(ctx, a, key, strings.Join(args, " "))
			return nil
		}),
	}
}

func askPerspective(ctx context.Context, a *app, key, question string) {
	if strings.TrimSpace(question) == "" {
		a.warn("Please enter a question")
		return
	}
	res := a.analyze(ctx, a.request())
	prompt := a.builder().Ask(key, question, chat.FromAnalysis(res))
	ready := fmt.Sprintf("%s %s prompt ready! Paste in Copilot Chat.", chat.Emoji(key), chat.DisplayName(key))
	a.deliver(ctx, prompt, key, ready)
}

func councilCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "council <topic>",
		Short: "Convene every perspective on a topic",
		Args:  cobra.MinimumNArgs(1),
		RunE: run(opts, "Think Center council meeting error", func(ctx context.Context, a *app, args []string) error {
			topic := strings.Join(args, " ")
			if strings.TrimSpace(topic) == "" {
				a.warn("Please enter a topic")
				return nil
			}
			res := a.analyze(ctx, a.request())
			a.deliver(ctx, a.builder().Council(topic, chat.FromAnalysis(res)), "council", "🏛️ Council Meeting prompt ready! Paste in Copilot Chat.")
			return nil
		}),
	}
}

func analyzeSelectionCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "analyze-selection",
		Short: "Analyze the selected code (--selection or stdin)",
		Args:  cobra.NoArgs,
		RunE: run(opts, "Think Center analysis error", func(ctx context.Context, a *app, args []string) error {
			selection := a.opts.selection
			if selection == "" {
				var err error
				if selection, err = readPiped(a.in); err != nil {
					return fmt.Errorf("read selection: %w", err)
				}
			}
			if strings.TrimSpace(selection) == "" {
				a.warn("Please select some code to analyze")
				return nil
			}
			req := a.request()
			req.Selection = selection
			res := a.analyze(ctx, req)
			deliverAnalysis(ctx, a, a.builder().Code(selection, chat.FromAnalysis(res)), "Code Analysis")
			return nil
		}),
	}
}

func analyzeFileCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "analyze-file <path>",
		Short: "Analyze a whole file",
		Args:  cobra.ExactArgs(1),
		RunE: run(opts, "Think Center file analysis error", func(ctx context.Context, a *app, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			req := a.request()
			req.File = args[0]
			res := a.analyze(ctx, req)
			deliverAnalysis(ctx, a, a.builder().File(string(data), chat.FromAnalysis(res)), "File Analysis")
			return nil
		}),
	}
}

func debugCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "debug <problem>",
		Short: "Debug a problem with multiple perspectives",
		Args:  cobra.MinimumNArgs(1),
		RunE: run(opts, "Think Center debug error", func(ctx context.Context, a *app, args []string) error {
			problem := strings.Join(args, " ")
			if strings.TrimSpace(problem) == "" {
				a.warn("Please describe the problem")
				return nil
			}
			res := a.analyze(ctx, a.request())
			deliverAnalysis(ctx, a, a.builder().Debug(problem, chat.FromAnalysis(res)), "Debug Session")
			return nil
		}),
	}
}

func deliverAnalysis(ctx context.Context, a *app, prompt, label string) {
	a.deliver(ctx, prompt, label, fmt.Sprintf("🧠 Think Center %s prompt ready! Paste in Copilot Chat.", label))
}

// promptCmd fills a catalog template with the current context.
func promptCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "prompt <perspective> <prompt>",
		Short: "Use a perspective prompt template",
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.ExactArgs(2)(cmd, args); err != nil {
				return err
			}
			_, err := resolvePerspective(perspective.NewProvider(), args[0])
			return err
		},
		RunE: run(opts, "Failed to generate prompt", func(ctx context.Context, a *app, args []string) error {
			item, err := resolvePerspective(a.perspectives, args[0])
			if err != nil {
				return err
			}
			res := a.analyze(ctx, a.request())
			vars := map[string]string{
				perspective.VarSelectedCode: res.Context.SelectedText,
				perspective.VarActiveFile:   res.Context.ActiveFile,
				perspective.VarLanguage:     res.Context.Language,
				perspective.VarProjectType:  res.Context.ProjectType,
			}
			text, ok := a.perspectives.PromptWithContext(item.ID, args[1], vars)
			if !ok {
				ids := make([]string, 0, len(item.Prompts))
				for _, p := range item.Prompts {
					ids = append(ids, p.ID)
				}
				return fmt.Errorf("unknown prompt %q for %s (available: %s)", args[1], item.Name, strings.Join(ids, ", "))
			}
			if missing := perspective.Unresolved(text); len(missing) > 0 {
				a.logger.Debug("prompt_placeholders_unresolved", "perspective", item.ID, "prompt", args[1], "placeholders", missing)
			}
			tmpl, _ := item.Prompt(args[1])
			a.deliver(ctx, text, item.ID+"/"+tmpl.ID, fmt.Sprintf("%s %s prompt ready! Paste in Copilot Chat.", item.Name, tmpl.Title))
			return nil
		}),
	}
}

func resolvePerspective(p *perspective.Provider, key string) (*perspective.Perspective, error) {
	if item, ok := p.Resolve(key); ok {
		return item, nil
	}
	if suggestions := p.Suggest(key); len(suggestions) > 0 {
		return nil, fmt.Errorf("unknown perspective %q (did you mean %s?)", key, strings.Join(suggestions, ", "))
	}
	return nil, fmt.Errorf("unknown perspective %q", key)
}

// readPiped returns stdin when it is not an interactive terminal.
func readPiped(in io.Reader) (string, error) {
	if in == nil {
		return "", nil
	}
	if f, ok := in.(*os.File); ok {
		info, err := f.Stat()
		if err != nil {
			return "", err
		}
		if info.Mode()&os.ModeCharDevice != 0 {
			return "", nil
		}
	}
	data, err := io.ReadAll(in)
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return string(data), nil
}
