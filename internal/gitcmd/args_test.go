// SPDX-License-Identifier: AGPL-3.0-or-later
package gitcmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRevListArgs(t *testing.T) {
	args := RevListArgs("2 days", "HEAD")
	assert.Equal(t, []string{"rev-list", "-n", "1", "--before=2 days ago", "HEAD"}, args)
}

func TestRevListArgs_Shorthand(t *testing.T) {
	// Normalization is applied inside the builder.
	args := RevListArgs("2d", "HEAD")
	assert.Equal(t, []string{"rev-list", "-n", "1", "--before=2 days ago", "HEAD"}, args)
}

func TestRevListArgs_Ref(t *testing.T) {
	args := RevListArgs("3h", "origin/main")
	assert.Equal(t, []string{"rev-list", "-n", "1", "--before=3 hours ago", "origin/main"}, args)
}

func TestRevListArgs_EmptyAgo(t *testing.T) {
	// Documented passthrough: an empty expression is embedded as-is,
	// not rejected here.
	args := RevListArgs("", "HEAD")
	assert.Equal(t, "--before= ago", args[3])
}

func TestCheckoutArgs(t *testing.T) {
	assert.Equal(t, []string{"checkout", "abc123"}, CheckoutArgs("abc123"))
}

func TestRevParseHeadArgs(t *testing.T) {
	assert.Equal(t, []string{"rev-parse", "HEAD"}, RevParseHeadArgs())
}
