package toolchain

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"time"

	"github.com/charmbracelet/log"
)

// DefaultTimeout bounds a single step when Runner.Timeout is zero.
const DefaultTimeout = 10 * time.Minute

// waitDelay bounds how long a killed step may hold its output pipes open.
const waitDelay = 5 * time.Second

// StepError reports a step that could not be started or exited unsuccessfully.
type StepError struct {
	Step Step
	Dir  string
	// ExitCode is -1 when the process did not exit normally.
	ExitCode int
	Err      error
}

func (e *StepError) Error() string {
	if e.ExitCode > 0 {
		return fmt.Sprintf("%s failed in %s: non-zero exit code: %d", e.Step, e.Dir, e.ExitCode)
	}
	return fmt.Sprintf("%s failed in %s: %v", e.Step, e.Dir, e.Err)
}

func (e *StepError) Unwrap() error { return e.Err }

// Runner executes build steps. The zero value streams to os.Stdout and
// os.Stderr with DefaultTimeout per step.
type Runner struct {
	// Stdout and Stderr receive the child process output.
	Stdout  io.Writer
	Stderr  io.Writer
	Timeout time.Duration
	Logger  *log.Logger
}

// Run executes steps in order inside dir, stopping at the first failure.
func (r *Runner) Run(ctx context.Context, dir string, steps []Step) error {
	for _, step := range steps {
		if err := r.run(ctx, dir, step); err != nil {
			return err
		}
	}
	return nil
}

func (r *Runner) run(ctx context.Context, dir string, step Step) error {
	bin, err := exec.LookPath(step.Command)
	if err != nil {
		return &StepError{Step: step, Dir: dir, ExitCode: -1, Err: err}
	}

	timeout := r.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if r.Logger != nil {
		r.Logger.Info("running", "cmd", step.String(), "dir", dir)
	}

	cmd := exec.CommandContext(ctx, bin, step.Args...)
	cmd.Dir = dir
	cmd.WaitDelay = waitDelay
	cmd.Stdout = r.Stdout
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	cmd.Stderr = r.Stderr
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}

	if err := cmd.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return &StepError{Step: step, Dir: dir, ExitCode: -1, Err: ctxErr}
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &StepError{Step: step, Dir: dir, ExitCode: exitErr.ExitCode(), Err: err}
		}
		return &StepError{Step: step, Dir: dir, ExitCode: -1, Err: err}
	}
	return nil
}
