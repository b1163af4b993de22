// SPDX-License-Identifier: AGPL-3.0-or-later

// Package gitcmd builds git argument vectors and runs git.
package gitcmd

import "github.com/temporalgit/checkout-ago/internal/timeexpr"

// RevParseHeadArgs returns the invocation that resolves the current
// HEAD to a commit id.
func RevParseHeadArgs() []string {
	return []string{"rev-parse", "HEAD"}
}

// RevListArgs returns the invocation that finds the single most recent
// commit reachable from ref whose timestamp precedes now minus ago.
// The ago string is normalized first, then embedded as "<ago> ago"
// whether or not normalization changed it; an empty ago produces
// "--before= ago", which git rejects on its own.
func RevListArgs(ago, ref string) []string {
	ago = timeexpr.Normalize(ago)
	return []string{"rev-list", "-n", "1", "--before=" + ago + " ago", ref}
}

// CheckoutArgs returns the invocation that switches the working tree
// to the given commit.
func CheckoutArgs(commit string) []string {
	return []string{"checkout", commit}
}
