package stage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/kurochkinivan/scan_analyzer/internal/domain"
)

const maxLoggedStderr = 8 << 10

// Request describes one invocation of an external analysis stage.
type Request struct {
	Args  []string
	Stdin string
}

// Invoker runs an opaque analysis stage and returns its standard output.
type Invoker interface {
	Invoke(ctx context.Context, req Request) (string, error)
}

// Command runs an external program. Output written to stderr is treated as
// diagnostics: it is logged and never returned to the caller.
type Command struct {
	log  *slog.Logger
	name string
	args []string
	dir  string
	env  []string
}

func NewCommand(log *slog.Logger, command []string, dir string) (*Command, error) {
	if len(command) == 0 || command[0] == "" {
		return nil, errors.New("stage command is empty")
	}

	return &Command{
		log:  log,
		name: command[0],
		args: command[1:],
		dir:  dir,
		env:  append(os.Environ(), "PYTHONIOENCODING=utf-8"),
	}, nil
}

func (c *Command) Invoke(ctx context.Context, req Request) (string, error) {
	args := append(append([]string{}, c.args...), req.Args...)

	cmd := exec.CommandContext(ctx, c.name, args...)
	cmd.Dir = c.dir
	cmd.Env = c.env
	if req.Stdin != "" {
		cmd.Stdin = strings.NewReader(req.Stdin)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	log := c.log.With(
		slog.String("cmd", c.name),
		slog.String("args", strings.Join(args, " ")),
	)

	start := time.Now()
	err := cmd.Run()
	duration := time.Since(start)

	if stderr.Len() > 0 {
		log.Warn("stage wrote diagnostics",
			slog.String("stderr", truncate(stderr.String(), maxLoggedStderr)),
		)
	}

	if err != nil {
		log.Error("stage failed",
			slog.Int64("duration_ms", duration.Milliseconds()),
			slog.String("err", err.Error()),
		)

		return "", fmt.Errorf("%w: %s: %w", domain.ErrStageInvocation, c.name, err)
	}

	log.Debug("stage finished",
		slog.Int64("duration_ms", duration.Milliseconds()),
		slog.Int("stdout_bytes", stdout.Len()),
	)

	return ValidateOutput(stdout.Bytes())
}

// ValidateOutput rejects output that a stage cannot meaningfully have produced.
func ValidateOutput(out []byte) (string, error) {
	if !utf8.Valid(out) {
		return "", fmt.Errorf("%w: output is not valid UTF-8", domain.ErrStageInvocation)
	}

	text := strings.TrimSpace(string(out))
	if text == "" {
		return "", fmt.Errorf("%w: empty output", domain.ErrStageInvocation)
	}

	return text, nil
}

// Func adapts a function to the Invoker interface.
type Func func(ctx context.Context, req Request) (string, error)

func (f Func) Invoke(ctx context.Context, req Request) (string, error) {
	return f(ctx, req)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "...(truncated)"
}
