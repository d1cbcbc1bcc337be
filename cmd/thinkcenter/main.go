package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/garghimanshu0786/think-center-vscode/pkg/analyzer"
	"github.com/garghimanshu0786/think-center-vscode/pkg/chat"
	"github.com/garghimanshu0786/think-center-vscode/pkg/config"
	"github.com/garghimanshu0786/think-center-vscode/pkg/delivery"
	"github.com/garghimanshu0786/think-center-vscode/pkg/env"
	"github.com/garghimanshu0786/think-center-vscode/pkg/exec"
	"github.com/garghimanshu0786/think-center-vscode/pkg/logging"
	"github.com/garghimanshu0786/think-center-vscode/pkg/perspective"
	"github.com/garghimanshu0786/think-center-vscode/pkg/version"
	"github.com/garghimanshu0786/think-center-vscode/pkg/workspace"
)

const (
	gitTimeout   = 2 * time.Second
	gitMaxOutput = 64 * 1024
)

// options holds the persistent flags shared by every command.
type options struct {
	configPath string
	workspace  string
	file       string
	language   string
	selection  string
	line       int
	print      bool
}

var clipboardFactory = func() delivery.Clipboard { return delivery.SystemClipboard{} }

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:          "thinkcenter",
		Short:        "Multi-perspective prompts for GitHub Copilot Chat",
		Version:      version.Version,
		SilenceUsage: true,
	}
	root.SetVersionTemplate(version.String() + "\n")

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "config file (default: ~/.thinkcenter/config.yaml)")
	flags.StringVar(&opts.workspace, "workspace", "", "workspace root (default: $THINK_CENTER_WORKSPACE or the working directory)")
	flags.StringVar(&opts.file, "file", "", "active file")
	flags.StringVar(&opts.language, "language", "", "language of the active file (default: from the file extension)")
	flags.IntVar(&opts.line, "line", 0, "cursor line in the active file")
	flags.StringVar(&opts.selection, "selection", "", "selected text")
	flags.BoolVar(&opts.print, "print", false, "print prompts instead of copying them and focusing the chat")

	root.AddCommand(
		initCmd(opts),
		askCmd(opts),
		councilCmd(opts),
		analyzeSelectionCmd(opts),
		analyzeFileCmd(opts),
		debugCmd(opts),
		promptCmd(opts),
		createConfigCmd(opts),
		enhanceInstructionsCmd(opts),
		perspectivesCmd(opts),
		contextCmd(opts),
		watchCmd(opts),
		doctorCmd(opts),
		versionCmd(),
	)
	for _, key := range []string{"weaver", "maker", "checker", "og", "ee"} {
		root.AddCommand(shortcutCmd(opts, key))
	}
	return root
}

// app carries the components one command invocation needs.
type app struct {
	opts         *options
	cfg          *config.Config
	logger       *slog.Logger
	loader       *workspace.Loader
	gatherer     *analyzer.Gatherer
	analyzer     *analyzer.Analyzer
	perspectives *perspective.Provider
	deliverer    *delivery.Deliverer
	in           io.Reader
	out          io.Writer
	errOut       io.Writer
}

func newApp(cmd *cobra.Command, opts *options) (*app, error) {
	imported, err := loadDotenv(opts)
	if err != nil {
		return nil, err
	}
	cfg, err := config.LoadConfig(opts.configPath)
	if err != nil {
		return nil, err
	}
	logger := logging.New(cfg.LogLevel, cfg.LogFormat, cmd.ErrOrStderr())
	if len(imported) > 0 {
		logger.Debug("dotenv_loaded", "keys", imported)
	}

	root := opts.workspace
	if root == "" {
		root = cfg.Workspace
	}
	if root == "" {
		root = workspace.Resolve()
	}

	loader := workspace.NewLoader(root)
	loader.SetLogger(logger)

	gatherer := analyzer.NewGatherer(&exec.Runner{Timeout: gitTimeout, MaxOutput: gitMaxOutput})
	gatherer.SetLogger(logger)

	var host delivery.Host = delivery.NoHost{}
	if cfg.Chat.FocusCommand != "" {
		host = delivery.NewCommandHost(cfg.Chat.FocusCommand, cfg.Chat.FocusArgs, cfg.Chat.FocusTimeout)
	}
	deliverer := delivery.NewDeliverer(clipboardFactory(), host, cmd.OutOrStdout())
	deliverer.SetLogger(logger)

	return &app{
		opts:         opts,
		cfg:          cfg,
		logger:       logger,
		loader:       loader,
		gatherer:     gatherer,
		analyzer:     analyzer.New(),
		perspectives: perspective.NewProvider(),
		deliverer:    deliverer,
		in:           cmd.InOrStdin(),
		out:          cmd.OutOrStdout(),
		errOut:       cmd.ErrOrStderr(),
	}, nil
}

// loadDotenv imports THINK_CENTER_ keys from ~/.thinkcenter/.env and the
// workspace .env before the config reads the environment.
func loadDotenv(opts *options) ([]string, error) {
	root := opts.workspace
	if root == "" {
		root = workspace.Resolve()
	}
	var imported []string
	for _, dir := range []string{root, workspace.HomeDir()} {
		keys, err := env.LoadFromDir(dir)
		if err != nil {
			return imported, fmt.Errorf("load %s: %w", filepath.Join(dir, ".env"), err)
		}
		imported = append(imported, keys...)
	}
	return imported, nil
}

// run builds the app and reports any failure of fn as a message prefixed by
// label. Only argument errors, which cobra checks before run, exit non-zero.
func run(opts *options, label string, fn func(ctx context.Context, a *app, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd, opts)
		if err == nil {
			err = fn(cmd.Context(), a, args)
		}
		if err != nil {
			color.New(color.FgRed).Fprintf(cmd.ErrOrStderr(), "%s: %v\n", label, err)
			if a != nil {
				a.logger.Error("command_failed", "command", cmd.Name(), "error", err)
			}
		}
		return nil
	}
}

func (a *app) request() analyzer.Request {
	return analyzer.Request{
		File:          a.opts.file,
		Language:      a.opts.language,
		Selection:     a.opts.selection,
		Line:          a.opts.line,
		WorkspaceRoot: a.loader.Root(),
	}
}

func (a *app) analyze(ctx context.Context, req analyzer.Request) analyzer.AnalysisResult {
	return a.analyzer.Analyze(a.gatherer.Gather(ctx, req))
}

func (a *app) builder() *chat.Builder {
	return chat.NewBuilder(a.loader.Load())
}

// deliver hands prompt to the chat surface, or prints it under --print.
func (a *app) deliver(ctx context.Context, prompt, label, ready string) {
	if a.opts.print {
		fmt.Fprintln(a.out, prompt)
		return
	}
	receipt := a.deliverer.Deliver(ctx, prompt, label)
	if !receipt.Copied {
		a.warn("Clipboard unavailable. Copy the prompt above into Copilot Chat.")
		return
	}
	a.success(ready)
	if !receipt.Focused {
		a.info("Please open GitHub Copilot Chat manually")
	}
}

func (a *app) success(msg string) {
	color.New(color.FgGreen).Fprintln(a.out, msg)
}

func (a *app) info(msg string) {
	color.New(color.FgCyan).Fprintln(a.out, msg)
}

func (a *app) warn(msg string) {
	color.New(color.FgYellow).Fprintln(a.errOut, msg)
}
