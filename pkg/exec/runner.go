package exec

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

const waitDelay = 100 * time.Millisecond

type Result struct {
	Stdout string
	Stderr string
	Code   int
}

// OutputTruncatedError reports that stdout or stderr hit MaxOutput.
type OutputTruncatedError struct {
	Limit int
}

func (e OutputTruncatedError) Error() string {
	return fmt.Sprintf("output truncated at %d bytes", e.Limit)
}

// Runner runs short external helpers (git, the chat focus command) with a
// deadline and an output cap.
type Runner struct {
	Timeout   time.Duration
	MaxOutput int
	Blocklist []string
}

func (r *Runner) Run(ctx context.Context, name string, args ...string) (*Result, error) {
	if name == "" {
		return nil, errors.New("command is required")
	}
	if r.isBlocked(name) {
		return nil, fmt.Errorf("command blocked: %s", name)
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}

	command := exec.CommandContext(ctx, name, args...)
	stdoutBuf := &limitedBuffer{limit: r.MaxOutput}
	stderrBuf := &limitedBuffer{limit: r.MaxOutput}
	command.Stdout = stdoutBuf
	command.Stderr = stderrBuf
	command.WaitDelay = waitDelay

	err := command.Run()
	if ctx.Err() != nil {
		return nil, fmt.Errorf("run %s: %w", name, ctx.Err())
	}
	exitCode := 0
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return nil, fmt.Errorf("run %s: %w", name, err)
		}
		exitCode = exitErr.ExitCode()
	}

	res := &Result{Stdout: stdoutBuf.String(), Stderr: stderrBuf.String(), Code: exitCode}
	if stdoutBuf.truncated || stderrBuf.truncated {
		return res, OutputTruncatedError{Limit: r.MaxOutput}
	}
	return res, nil
}

func (r *Runner) isBlocked(name string) bool {
	base := filepath.Base(name)
	for _, blocked := range r.Blocklist {
		if strings.EqualFold(blocked, name) || strings.EqualFold(blocked, base) {
			return true
		}
	}
	return false
}

type limitedBuffer struct {
	buf       bytes.Buffer
	limit     int
	truncated bool
}

func (l *limitedBuffer) Write(p []byte) (int, error) {
	if l.limit <= 0 {
		return l.buf.Write(p)
	}
	remaining := l.limit - l.buf.Len()
	if remaining <= 0 {
		l.truncated = true
		return len(p), nil
	}
	if len(p) > remaining {
		l.truncated = true
		_, _ = l.buf.Write(p[:remaining])
		return len(p), nil
	}
	return l.buf.Write(p)
}

func (l *limitedBuffer) String() string {
	return l.buf.String()
}

var _ io.Writer = (*limitedBuffer)(nil)
