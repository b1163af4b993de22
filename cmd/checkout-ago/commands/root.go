// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Checkout-ago - check out the most recent git commit before a given time.
It resolves where your working tree would have been "2 days" (or 2d, 3h,
1w) ago, reports the jump and the command that undoes it, then delegates
the actual checkout to git.

Copyright (C) 2026  checkout-ago contributors

This program is free software licensed under the terms of the GNU AGPL v3 or later.

See https://www.gnu.org/licenses/ for license details.

*/

package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/temporalgit/checkout-ago/cmd/checkout-ago/internal/clierr"
	"github.com/temporalgit/checkout-ago/internal/checkout"
	"github.com/temporalgit/checkout-ago/internal/config"
	"github.com/temporalgit/checkout-ago/internal/gitcmd"
)

const usageExamples = `  checkout-ago "2 days"
  checkout-ago 2d
  checkout-ago 3h --print`

// NewRootCmd constructs the checkout-ago root Cobra command.
func NewRootCmd() *cobra.Command {
	return newRootCmd(nil)
}

// newRootCmd wires the command tree. A nil git runner means "spawn the
// real git binary from the effective config"; tests inject a fake.
func newRootCmd(git gitcmd.Runner) *cobra.Command {
	version := os.Getenv("CHECKOUT_AGO_VERSION")
	if version == "" {
		version = "0.0.0-dev"
	}

	var (
		printOnly  bool
		ref        string
		configPath string
	)

	cmd := &cobra.Command{
		Use:     "checkout-ago <time>",
		Short:   "Check out the most recent git commit before a given time",
		Long:    "Checkout-ago resolves the most recent commit before a relative time\n(\"2 days\", 2d, 3h, 1w), prints the command that brings you back, and\nchecks the commit out unless --print is given.",
		Example: usageExamples,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return clierr.Newf(1, "expected exactly one <time> argument\n\nExamples:\n%s", usageExamples)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}

			opts := checkout.Options{
				Ago:       args[0],
				Ref:       cfg.Ref,
				PrintOnly: cfg.Print,
				GitName:   cfg.Git,
			}
			// Flags win over config values.
			if cmd.Flags().Changed("print") {
				opts.PrintOnly = printOnly
			}
			if cmd.Flags().Changed("ref") {
				opts.Ref = ref
			}
			if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
				opts.Verbose = cmd.ErrOrStderr()
			}

			runner := git
			if runner == nil {
				runner = gitcmd.ExecRunner{Git: cfg.Git}
			}
			return checkout.Jump(cmd.Context(), runner, cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().BoolVarP(&printOnly, "print", "p", false, "only print where you are and where you would jump to")
	cmd.Flags().StringVar(&ref, "ref", "", "resolve the target walking back from this ref instead of HEAD")
	cmd.Flags().StringVar(&configPath, "config", "", "path to a config file (default $XDG_CONFIG_HOME/checkout-ago/config.yaml)")
	cmd.Flags().SetNormalizeFunc(normalizeFlagAliases)

	// Global flags
	cmd.PersistentFlags().BoolP("verbose", "v", false, "echo each git invocation to stderr")

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number of checkout-ago",
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "checkout-ago version %s\n", version)
		},
	})

	return cmd
}

// normalizeFlagAliases makes --show behave as --print.
func normalizeFlagAliases(f *pflag.FlagSet, name string) pflag.NormalizedName {
	if name == "show" {
		name = "print"
	}
	return pflag.NormalizedName(name)
}

// loadConfig resolves the effective config: an explicit path must
// exist, the default location may be absent.
func loadConfig(path string) (config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	return config.LoadDefault()
}
