// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/soniakeys/unit"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlsofa/sidereal"
)

// EraOptions holds flags for the era command.
type EraOptions struct {
	*RootOptions
	At   string
	Date dateFlags
}

// EraResult is the Earth rotation angle at one UT1 date.
type EraResult struct {
	Date [2]float64 `yaml:"date,flow"`
	ERA  float64    `yaml:"era"`
}

// Text implements the text output format.
func (r EraResult) Text() string {
	return fmt.Sprintf("date  %.1f + %.6f\nera   %.12f rad  %.9f deg\n",
		r.Date[0], r.Date[1], r.ERA, unit.Angle(r.ERA).Deg())
}

// NewEraCommand creates the era command.
func NewEraCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &EraOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "era",
		Short: "Evaluate the Earth rotation angle",
		Long: `Evaluate the IAU 2000 Earth rotation angle at a UT1 date.

Example:
  lvlsofa era --date1 2400000.5 --date2 54388`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEra(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.At, "at", "", "RFC 3339 timestamp (read as UT1), overrides --date1/--date2")
	opts.Date.bind(cmd, "date", "UT1")

	return cmd
}

func runEra(opts *EraOptions, cmd *cobra.Command) error {
	d := opts.Date.date()
	if opts.At != "" {
		var err error
		if d, err = parseAt(opts.At); err != nil {
			return err
		}
	}
	opts.Logger().Debug("evaluating ERA", "date1", d.D1, "date2", d.D2)

	f := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}

	return f.Success(EraResult{Date: epochPair(d), ERA: sidereal.Era00(d)})
}
