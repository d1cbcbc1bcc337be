// Package delivery hands composed prompts to the chat surface: it focuses the
// chat panel when a host command is configured and places the prompt on the
// clipboard, printing it instead when the clipboard is unavailable.
package delivery

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/google/uuid"

	"github.com/garghimanshu0786/think-center-vscode/pkg/exec"
)

var ErrHostUnavailable = errors.New("chat host unavailable")

type Clipboard interface {
	WriteAll(text string) error
}

// SystemClipboard writes to the OS clipboard.
type SystemClipboard struct{}

func (SystemClipboard) WriteAll(text string) error {
	if clipboard.Unsupported {
		return errors.New("clipboard unsupported on this system")
	}
	return clipboard.WriteAll(text)
}

// Host brings the chat panel to the foreground.
type Host interface {
	FocusChat(ctx context.Context) error
}

type NoHost struct{}

func (NoHost) FocusChat(context.Context) error {
	return ErrHostUnavailable
}

// CommandRunner is satisfied by *exec.Runner.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) (*exec.Result, error)
}

// CommandHost focuses the chat panel by running an external command.
type CommandHost struct {
	Runner  CommandRunner
	Command string
	Args    []string
}

func NewCommandHost(command string, args []string, timeout time.Duration) *CommandHost {
	return &CommandHost{
		Runner:  &exec.Runner{Timeout: timeout, MaxOutput: 4096},
		Command: command,
		Args:    args,
	}
}

func (h *CommandHost) FocusChat(ctx context.Context) error {
	if h.Command == "" {
		return ErrHostUnavailable
	}
	res, err := h.Runner.Run(ctx, h.Command, h.Args...)
	if err != nil {
		return fmt.Errorf("focus chat: %w", err)
	}
	if res.Code != 0 {
		return fmt.Errorf("focus chat: %s exited %d: %s", h.Command, res.Code, strings.TrimSpace(res.Stderr))
	}
	return nil
}

// Receipt records what happened to one delivered prompt.
type Receipt struct {
	ID        string
	Label     string
	Focused   bool
	Copied    bool
	Displayed bool
}

type Deliverer struct {
	clipboard Clipboard
	host      Host
	out       io.Writer
	logger    *slog.Logger
}

// NewDeliverer wires a clipboard and host. A nil host means NoHost.
func NewDeliverer(cb Clipboard, host Host, out io.Writer) *Deliverer {
	if host == nil {
		host = NoHost{}
	}
	return &Deliverer{clipboard: cb, host: host, out: out}
}

func (d *Deliverer) SetLogger(logger *slog.Logger) {
	d.logger = logger
}

// Deliver focuses the chat panel and copies prompt to the clipboard. It never
// fails: a clipboard error prints the prompt to the output writer instead.
func (d *Deliverer) Deliver(ctx context.Context, prompt, label string) Receipt {
	receipt := Receipt{ID: uuid.NewString(), Label: label}

	if err := d.host.FocusChat(ctx); err != nil {
		if errors.Is(err, ErrHostUnavailable) {
			d.logDebug("chat_focus_skipped", "id", receipt.ID)
		} else {
			d.logError("chat_focus_failed", "id", receipt.ID, "error", err)
		}
	} else {
		receipt.Focused = true
	}

	if d.clipboard != nil {
		if err := d.clipboard.WriteAll(prompt); err != nil {
			d.logError("clipboard_write_failed", "id", receipt.ID, "error", err)
		} else {
			receipt.Copied = true
		}
	}
	if !receipt.Copied {
		ShowPrompt(d.out, prompt)
		receipt.Displayed = true
	}

	d.logInfo("prompt_delivered", "id", receipt.ID, "label", label, "focused", receipt.Focused, "copied", receipt.Copied)
	return receipt
}

// ShowPrompt writes prompt framed for manual copying.
func ShowPrompt(w io.Writer, prompt string) {
	if w == nil {
		return
	}
	rule := strings.Repeat("=", 50)
	fmt.Fprintln(w, "Think Center Prompt:")
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, prompt)
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "Copy this prompt and paste it in GitHub Copilot Chat")
}

func (d *Deliverer) logDebug(msg string, args ...any) {
	if d.logger != nil {
		d.logger.Debug(msg, args...)
	}
}

func (d *Deliverer) logInfo(msg string, args ...any) {
	if d.logger != nil {
		d.logger.Info(msg, args...)
	}
}

func (d *Deliverer) logError(msg string, args ...any) {
	if d.logger != nil {
		d.logger.Error(msg, args...)
	}
}
