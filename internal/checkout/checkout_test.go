// SPDX-License-Identifier: AGPL-3.0-or-later
package checkout

import (
	"bytes"
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/temporalgit/checkout-ago/internal/testutil/golden"
)

const (
	headID   = "8f3a1c9d2b4e5f60718293a4b5c6d7e8f9012345"
	targetID = "3e1d2c3b4a5968778695a4b3c2d1e0f123456789"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

// fakeGit implements gitcmd.Runner, dispatching on the git subcommand
// and recording every invocation.
type fakeGit struct {
	head       []byte
	headErr    error
	revList    []byte
	revListErr error
	runErr     error

	outputCalls [][]string
	runCalls    [][]string
}

func (f *fakeGit) Output(_ context.Context, args ...string) ([]byte, error) {
	f.outputCalls = append(f.outputCalls, args)
	switch args[0] {
	case "rev-parse":
		return f.head, f.headErr
	case "rev-list":
		return f.revList, f.revListErr
	}
	return nil, errors.New("unexpected subcommand: " + args[0])
}

func (f *fakeGit) Run(_ context.Context, args ...string) error {
	f.runCalls = append(f.runCalls, args)
	return f.runErr
}

func happyGit() *fakeGit {
	return &fakeGit{
		head:    []byte(headID + "\n"),
		revList: []byte(targetID + "\n"),
	}
}

func TestJump_DryRun(t *testing.T) {
	git := happyGit()
	out := &bytes.Buffer{}

	err := Jump(context.Background(), git, out, Options{Ago: "2d", PrintOnly: true})
	require.NoError(t, err)

	golden.Check(t, golden.TestdataDir(t), "report_dry_run", out.String())
	assert.Empty(t, git.runCalls, "dry run must not touch the working tree")
}

func TestJump_Checkout(t *testing.T) {
	git := happyGit()
	out := &bytes.Buffer{}

	err := Jump(context.Background(), git, out, Options{Ago: "2 days"})
	require.NoError(t, err)

	require.Len(t, git.runCalls, 1)
	assert.Equal(t, []string{"checkout", targetID}, git.runCalls[0])

	// Report, then a blank line before git's own checkout output.
	assert.True(t, strings.HasSuffix(out.String(), "checkout "+headID+"\n\n"), "output: %q", out.String())
}

func TestJump_ShorthandReachesRevList(t *testing.T) {
	git := happyGit()

	err := Jump(context.Background(), git, &bytes.Buffer{}, Options{Ago: "2d", PrintOnly: true})
	require.NoError(t, err)

	require.Len(t, git.outputCalls, 2)
	assert.Equal(t, []string{"rev-parse", "HEAD"}, git.outputCalls[0])
	assert.Equal(t, []string{"rev-list", "-n", "1", "--before=2 days ago", "HEAD"}, git.outputCalls[1])
}

func TestJump_RefThreadsIntoLookupOnly(t *testing.T) {
	git := happyGit()

	err := Jump(context.Background(), git, &bytes.Buffer{}, Options{Ago: "3h", Ref: "origin/main", PrintOnly: true})
	require.NoError(t, err)

	require.Len(t, git.outputCalls, 2)
	assert.Equal(t, []string{"rev-parse", "HEAD"}, git.outputCalls[0], "capture always records HEAD")
	assert.Equal(t, "origin/main", git.outputCalls[1][4])
}

func TestJump_NoCommitFound(t *testing.T) {
	git := happyGit()
	git.revList = []byte("\n")

	err := Jump(context.Background(), git, &bytes.Buffer{}, Options{Ago: "2d"})
	require.ErrorIs(t, err, ErrNoCommit)
	assert.Empty(t, git.runCalls, "no checkout after a failed lookup")
}

func TestJump_RevParseFails(t *testing.T) {
	git := happyGit()
	git.headErr = errors.New("exit status 128")

	err := Jump(context.Background(), git, &bytes.Buffer{}, Options{Ago: "2d"})

	var execErr *ExecError
	require.ErrorAs(t, err, &execErr)
	assert.Equal(t, "rev-parse", execErr.Step)
}

func TestJump_RevListFails(t *testing.T) {
	git := happyGit()
	git.revListErr = errors.New("exit status 128")

	err := Jump(context.Background(), git, &bytes.Buffer{}, Options{Ago: "2d"})

	var execErr *ExecError
	require.ErrorAs(t, err, &execErr)
	assert.Equal(t, "rev-list", execErr.Step)
	assert.Empty(t, git.runCalls)
}

func TestJump_CheckoutFailsAfterReport(t *testing.T) {
	git := happyGit()
	git.runErr = errors.New("exit status 1")
	out := &bytes.Buffer{}

	err := Jump(context.Background(), git, out, Options{Ago: "2d"})

	var execErr *ExecError
	require.ErrorAs(t, err, &execErr)
	assert.Equal(t, "checkout", execErr.Step)

	// The escape hatch was printed before the mutation was attempted.
	assert.Contains(t, out.String(), "To return: git checkout "+headID)
}

func TestJump_InvalidOutputIsDecodeError(t *testing.T) {
	git := happyGit()
	git.head = []byte{0xff, 0xfe, 0xfd}

	err := Jump(context.Background(), git, &bytes.Buffer{}, Options{Ago: "2d"})

	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, "rev-parse", decodeErr.Step)
}

func TestJump_CustomGitNameInReturnHint(t *testing.T) {
	git := happyGit()
	out := &bytes.Buffer{}

	err := Jump(context.Background(), git, out, Options{Ago: "2d", PrintOnly: true, GitName: "/usr/local/bin/git"})
	require.NoError(t, err)

	assert.Contains(t, out.String(), "To return: /usr/local/bin/git checkout "+headID)
}

func TestJump_VerboseEchoesInvocations(t *testing.T) {
	git := happyGit()
	verbose := &bytes.Buffer{}
	out := &bytes.Buffer{}

	err := Jump(context.Background(), git, out, Options{Ago: "2d", Verbose: verbose})
	require.NoError(t, err)

	assert.Contains(t, verbose.String(), "+ git rev-parse HEAD\n")
	assert.Contains(t, verbose.String(), "+ git rev-list -n 1 --before=2 days ago HEAD\n")
	assert.Contains(t, verbose.String(), "+ git checkout "+targetID+"\n")
	assert.NotContains(t, out.String(), "+ git", "verbose lines stay off stdout")
}
