// SPDX-License-Identifier: AGPL-3.0-or-later
package checkout

import (
	"errors"
	"fmt"
)

// ErrNoCommit means the rev-list lookup succeeded but matched nothing:
// no commit exists before the requested time.
var ErrNoCommit = errors.New("no commit found before the given time")

// ExecError reports a git invocation that exited non-zero. Step names
// the git subcommand that failed.
type ExecError struct {
	Step string
	Err  error
}

func (e *ExecError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("git %s failed", e.Step)
	}
	return fmt.Sprintf("git %s failed: %v", e.Step, e.Err)
}

// Unwrap enables errors.Is/As to traverse the underlying cause.
func (e *ExecError) Unwrap() error { return e.Err }

// DecodeError reports captured git output that could not be read as
// text (not valid UTF-8), so no commit id can be extracted from it.
type DecodeError struct {
	Step string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("git %s output is not valid text", e.Step)
}
