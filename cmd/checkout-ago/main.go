// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/temporalgit/checkout-ago/cmd/checkout-ago/commands"
	"github.com/temporalgit/checkout-ago/cmd/checkout-ago/internal/clierr"
)

func main() {
	if err := commands.NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", color.New(color.FgRed).Sprint("error:"), err)
		os.Exit(clierr.ExitCodeOf(err))
	}
}
