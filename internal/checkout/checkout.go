// SPDX-License-Identifier: AGPL-3.0-or-later

// Package checkout moves the working tree to the most recent commit
// before a given point in time.
package checkout

import (
	"context"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"

	"github.com/temporalgit/checkout-ago/internal/gitcmd"
)

var (
	headLabel   = color.New(color.FgCyan)
	targetLabel = color.New(color.FgGreen)
	returnLabel = color.New(color.FgYellow)
)

// Options controls a single jump.
type Options struct {
	// Ago is the user's time expression ("2 days", "2d", ...).
	Ago string

	// Ref is where the lookup walks back from. Empty means HEAD.
	Ref string

	// PrintOnly reports the target without touching the working tree.
	PrintOnly bool

	// GitName is the executable name shown in the "To return" hint.
	// Empty means "git".
	GitName string

	// Verbose, when non-nil, receives each git invocation before it
	// runs. Point it at stderr.
	Verbose io.Writer
}

// Jump resolves the most recent commit before the requested time and,
// unless Options.PrintOnly is set, checks it out. The report lines,
// including the command that undoes the jump, are written to out
// before any mutation happens.
func Jump(ctx context.Context, git gitcmd.Runner, out io.Writer, opts Options) error {
	ref := opts.Ref
	if ref == "" {
		ref = "HEAD"
	}
	gitName := opts.GitName
	if gitName == "" {
		gitName = "git"
	}

	head, err := capture(ctx, git, opts.Verbose, gitName, "rev-parse", gitcmd.RevParseHeadArgs())
	if err != nil {
		return err
	}

	target, err := capture(ctx, git, opts.Verbose, gitName, "rev-list", gitcmd.RevListArgs(opts.Ago, ref))
	if err != nil {
		return err
	}
	if target == "" {
		return ErrNoCommit
	}

	fmt.Fprintf(out, "%s %s\n", headLabel.Sprint("Current HEAD:"), head)
	fmt.Fprintf(out, "%s %s\n", targetLabel.Sprint("Target commit:"), target)
	fmt.Fprintf(out, "%s %s checkout %s\n", returnLabel.Sprint("To return:"), gitName, head)

	if opts.PrintOnly {
		return nil
	}

	fmt.Fprintln(out)
	args := gitcmd.CheckoutArgs(target)
	echo(opts.Verbose, gitName, args)
	if err := git.Run(ctx, args...); err != nil {
		return &ExecError{Step: "checkout", Err: err}
	}
	return nil
}

// capture runs a git invocation, validates its output as text and
// returns it trimmed.
func capture(ctx context.Context, git gitcmd.Runner, verbose io.Writer, gitName, step string, args []string) (string, error) {
	echo(verbose, gitName, args)

	out, err := git.Output(ctx, args...)
	if err != nil {
		return "", &ExecError{Step: step, Err: err}
	}
	if !utf8.Valid(out) {
		return "", &DecodeError{Step: step}
	}
	return strings.TrimSpace(string(out)), nil
}

func echo(w io.Writer, gitName string, args []string) {
	if w == nil {
		return
	}
	fmt.Fprintf(w, "+ %s %s\n", gitName, strings.Join(args, " "))
}
