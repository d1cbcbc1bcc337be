package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	osexec "os/exec"
	"os/signal"
	"strings"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/garghimanshu0786/think-center-vscode/pkg/analyzer"
	"github.com/garghimanshu0786/think-center-vscode/pkg/system"
	"github.com/garghimanshu0786/think-center-vscode/pkg/version"
	"github.com/garghimanshu0786/think-center-vscode/pkg/workspace"
)

func createConfigCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "create-config",
		Short: "Create the workspace instructions and prompts files",
		Args:  cobra.NoArgs,
		RunE: run(opts, "Failed to create configuration files", func(ctx context.Context, a *app, args []string) error {
			created, err := a.loader.CreateTemplateFiles()
			for _, path := range created {
				a.success("Created " + path)
			}
			if err != nil {
				return err
			}
			if len(created) == 0 {
				a.info("Think Center configuration files already exist")
			}
			return nil
		}),
	}
}

func enhanceInstructionsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "enhance-instructions",
		Short: "Append Think Center sections to the existing instructions file",
		Args:  cobra.NoArgs,
		RunE: run(opts, "Failed to enhance instructions", func(ctx context.Context, a *app, args []string) error {
			res, err := a.loader.EnhanceExistingInstructions()
			if err != nil {
				return err
			}
			if res.Enhanced {
				a.success(res.Message)
			} else {
				a.info(res.Message)
			}
			return nil
		}),
	}
}

func perspectivesCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "perspectives",
		Short: "List perspectives and their prompts",
		Args:  cobra.NoArgs,
		RunE: run(opts, "Think Center error", func(ctx context.Context, a *app, args []string) error {
			fmt.Fprint(a.out, a.perspectives.Tree())
			return nil
		}),
	}
}

func contextCmd(opts *options) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "context",
		Short: "Show the analysed editing context",
		Args:  cobra.NoArgs,
		RunE: run(opts, "Failed to analyze context", func(ctx context.Context, a *app, args []string) error {
			res := a.analyze(ctx, a.request())
			if asJSON {
				enc := json.NewEncoder(a.out)
				enc.SetIndent("", "  ")
				return enc.Encode(res)
			}
			printContext(a, res)
			return nil
		}),
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the analysis as JSON")
	return cmd
}

func printContext(a *app, res analyzer.AnalysisResult) {
	heading := color.New(color.Bold)
	c := res.Context

	heading.Fprintln(a.out, "Current Context")
	fmt.Fprintf(a.out, "File: %s\n", orNone(c.ActiveFile))
	fmt.Fprintf(a.out, "Language: %s\n", orNone(c.Language))
	if c.LineNumber > 0 {
		fmt.Fprintf(a.out, "Line: %d\n", c.LineNumber)
	}
	fmt.Fprintf(a.out, "Project: %s\n", orNone(c.ProjectType))
	fmt.Fprintf(a.out, "Workspace: %s\n", orNone(c.WorkspaceRoot))
	fmt.Fprintf(a.out, "Git repository: %s\n", orNone(c.GitRepository))
	if len(c.Dependencies) > 0 {
		fmt.Fprintf(a.out, "Dependencies: %s\n", strings.Join(c.Dependencies, ", "))
	}
	fmt.Fprintf(a.out, "Complexity: %s\n", res.Complexity)

	fmt.Fprintln(a.out)
	heading.Fprintln(a.out, "Relevant Perspectives")
	for _, name := range res.RelevantPerspectives {
		fmt.Fprintf(a.out, "  %s\n", name)
	}

	fmt.Fprintln(a.out)
	heading.Fprintln(a.out, "Suggested Prompts")
	for _, prompt := range res.SuggestedPrompts {
		fmt.Fprintf(a.out, "  %s\n", prompt)
	}

	if len(c.RecentChanges) > 0 {
		fmt.Fprintln(a.out)
		heading.Fprintln(a.out, "Recent Changes")
		for _, change := range c.RecentChanges {
			fmt.Fprintf(a.out, "  %s\n", change)
		}
	}
}

func watchCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Reload workspace configuration as its files change",
		Args:  cobra.NoArgs,
		RunE: run(opts, "Think Center watch error", func(ctx context.Context, a *app, args []string) error {
			ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			watcher := workspace.NewWatcher(a.loader)
			watcher.SetLogger(a.logger)
			watcher.OnChange(func(path string) {
				cfg := a.loader.Load()
				a.info(fmt.Sprintf("Reloaded workspace configuration (%s): %s", path, summarize(cfg)))
			})

			a.info(fmt.Sprintf("Watching %s: %s", a.loader.Root(), summarize(a.loader.Load())))
			if err := watcher.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		}),
	}
}

func summarize(cfg *workspace.Config) string {
	var parts []string
	if cfg.Instructions != "" {
		parts = append(parts, "instructions")
	}
	if cfg.CustomPrompts != nil {
		parts = append(parts, "custom prompts")
	}
	if cfg.ProjectContext != "" {
		parts = append(parts, "project context")
	}
	if len(parts) == 0 {
		return "built-in defaults"
	}
	return strings.Join(parts, ", ")
}

func doctorCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Show system info and workspace status",
		Args:  cobra.NoArgs,
		RunE: run(opts, "Think Center doctor error", func(ctx context.Context, a *app, args []string) error {
			profile, err := system.Detect()
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "OS: %s\nDistro: %s %s\nArch: %s\nShell: %s\n",
				profile.OS, profile.Distro, profile.Version, profile.Arch, profile.Shell)
			fmt.Fprintf(a.out, "Clipboard helpers: %s\n", orNone(strings.Join(profile.ClipboardBins, ", ")))
			if profile.ClipboardReady() {
				a.success("Clipboard: ready")
			} else {
				a.warn("Clipboard: unavailable, prompts will be printed instead")
			}

			focus := a.cfg.Chat.FocusCommand
			switch {
			case focus == "":
				fmt.Fprintln(a.out, "Chat focus: not configured")
			default:
				if _, err := osexec.LookPath(focus); err != nil {
					a.warn(fmt.Sprintf("Chat focus: %s not found on PATH", focus))
				} else {
					fmt.Fprintf(a.out, "Chat focus: %s %s\n", focus, strings.Join(a.cfg.Chat.FocusArgs, " "))
				}
			}

			fmt.Fprintf(a.out, "Workspace: %s\n", a.loader.Root())
			for _, rel := range workspace.TrackedFiles() {
				if _, err := os.Stat(a.loader.Path(rel)); err == nil {
					fmt.Fprintf(a.out, "  found %s\n", rel)
				}
			}
			fmt.Fprintf(a.out, "Configuration: %s\n", summarize(a.loader.Load()))
			return nil
		}),
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}
