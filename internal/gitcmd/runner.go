// SPDX-License-Identifier: AGPL-3.0-or-later
package gitcmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Runner spawns git with a fixed argument vector. It exists so the
// orchestrator can be exercised against a fake instead of a real
// repository.
type Runner interface {
	// Output runs git and captures its stdout. A non-zero exit is
	// returned as an error carrying the process's stderr.
	Output(ctx context.Context, args ...string) ([]byte, error)

	// Run runs git with stdout and stderr inherited from this
	// process, so git's own progress output reaches the user.
	Run(ctx context.Context, args ...string) error
}

// ExecRunner runs a real git binary via os/exec.
type ExecRunner struct {
	// Git is the executable name or path. Empty means "git".
	Git string

	// Dir is the working directory for spawned processes. Empty
	// means inherit the current directory.
	Dir string
}

func (r ExecRunner) git() string {
	if r.Git == "" {
		return "git"
	}
	return r.Git
}

func (r ExecRunner) Output(ctx context.Context, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, r.git(), args...)
	cmd.Dir = r.Dir

	out, err := cmd.Output()
	if err != nil {
		return nil, decorateExitError(err)
	}
	return out, nil
}

func (r ExecRunner) Run(ctx context.Context, args ...string) error {
	cmd := exec.CommandContext(ctx, r.git(), args...)
	cmd.Dir = r.Dir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return decorateExitError(err)
	}
	return nil
}

// decorateExitError folds captured stderr into the error message, so
// "exit status 128" becomes actionable.
func decorateExitError(err error) error {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if msg := strings.TrimSpace(string(exitErr.Stderr)); msg != "" {
			return fmt.Errorf("%w: %s", err, msg)
		}
	}
	return err
}
