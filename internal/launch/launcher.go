// Package launch hands a confirmed task to the task runner through a shell.
package launch

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/charmbracelet/log"

	"taskmenu/internal/model"
)

// ErrSpawn is returned when the shell itself could not be started.
var ErrSpawn = errors.New("failed to start task runner")

// TaskError reports a task that ran but exited non-zero.
type TaskError struct {
	Task string
	Code int
}

func (e *TaskError) Error() string {
	return fmt.Sprintf("task %q exited with status %d", e.Task, e.Code)
}

// Launcher runs a task by name.
type Launcher interface {
	Launch(ctx context.Context, name string, global bool) error
}

// ShellLauncher runs `<Program> <name> [-g]` through Shell and waits for it.
type ShellLauncher struct {
	Program string // empty means model.DefaultTaskProgram
	Shell   Shell

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	Logger *log.Logger
}

// CommandLine is the line handed to the shell.
func (l *ShellLauncher) CommandLine(name string, global bool) string {
	program := l.Program
	if program == "" {
		program = model.DefaultTaskProgram
	}
	line := program + " " + l.Shell.Quote(name)
	if global {
		line += " -g"
	}
	return line
}

// Launch blocks until the task finishes. A task that exits non-zero yields a
// *TaskError; a shell that cannot start yields ErrSpawn.
func (l *ShellLauncher) Launch(ctx context.Context, name string, global bool) error {
	line := l.CommandLine(name, global)
	args := l.Shell.Args(line)

	logger := l.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	logger.Info("launching task", "task", name, "shell", l.Shell.Name(), "command", line)

	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	cmd.Stdin = cmp.Or[io.Reader](l.Stdin, os.Stdin)
	cmd.Stdout = cmp.Or[io.Writer](l.Stdout, os.Stdout)
	cmd.Stderr = cmp.Or[io.Writer](l.Stderr, os.Stderr)

	err := cmd.Run()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		logger.Warn("task exited with failure", "task", name, "code", exitErr.ExitCode())
		return &TaskError{Task: name, Code: exitErr.ExitCode()}
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrSpawn, args[0], err)
	}

	logger.Debug("task finished", "task", name)
	return nil
}
