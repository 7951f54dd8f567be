// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "text" | "yaml"

	logger *slog.Logger
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "yaml"}

// Logger returns the logger configured for this invocation. Diagnostics go
// to stderr so yaml output on stdout stays parseable.
func (o *RootOptions) Logger() *slog.Logger {
	if o.logger == nil {
		o.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return o.logger
}

// NewRootCommand creates the root command for the lvlsofa CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "lvlsofa",
		Short: "lvlsofa - IAU celestial-to-terrestrial transformations",
		Long: `Evaluate the IAU 2000/2006 precession-nutation models, Earth rotation
and polar motion, and compose the GCRS-to-ITRS rotation matrix.

Dates are two-part Julian Dates (date1 + date2). Pole coordinates are
given in arcseconds.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return NewExitError(ExitCommandError,
					fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}

			level := slog.LevelInfo
			if opts.Verbose {
				level = slog.LevelDebug
			}
			opts.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
				Level: level,
			}))

			return nil
		},
	}

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return WrapExitError(ExitCommandError, "invalid flags", err)
	})

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (text|yaml)")

	cmd.AddCommand(NewModelsCommand(opts))
	cmd.AddCommand(NewNutationCommand(opts))
	cmd.AddCommand(NewEraCommand(opts))
	cmd.AddCommand(NewC2tCommand(opts))
	cmd.AddCommand(NewBatchCommand(opts))

	return cmd
}

func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}

	return false
}
