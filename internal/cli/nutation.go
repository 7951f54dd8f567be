// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/soniakeys/unit"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlsofa/nutation"
)

// NutationOptions holds flags for the nutation command.
type NutationOptions struct {
	*RootOptions
	Model string
	At    string
	Date  dateFlags
}

// NutationResult is the nutation at one TT date.
type NutationResult struct {
	Model string     `yaml:"model"`
	Date  [2]float64 `yaml:"date,flow"`
	Dpsi  float64    `yaml:"dpsi"`
	Deps  float64    `yaml:"deps"`
}

// Text implements the text output format.
func (r NutationResult) Text() string {
	return fmt.Sprintf("model  %s\ndate   %.1f + %.6f\ndpsi   %+.10e rad  %+.6f arcsec\ndeps   %+.10e rad  %+.6f arcsec\n",
		r.Model, r.Date[0], r.Date[1],
		r.Dpsi, unit.Angle(r.Dpsi).Sec(),
		r.Deps, unit.Angle(r.Deps).Sec())
}

// NewNutationCommand creates the nutation command.
func NewNutationCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &NutationOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "nutation",
		Short: "Evaluate nutation in longitude and obliquity",
		Long: `Evaluate Δψ and Δε for a nutation model at a TT date.

Example:
  lvlsofa nutation --model 2006A --date1 2400000.5 --date2 53736
  lvlsofa nutation --model 2000B --at 2006-01-01T00:00:00Z --format yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNutation(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Model, "model", nutation.IAU2006A.String(), "nutation model (2000A|2000B|2006A)")
	cmd.Flags().StringVar(&opts.At, "at", "", "RFC 3339 timestamp, overrides --date1/--date2")
	opts.Date.bind(cmd, "date", "TT")

	return cmd
}

func runNutation(opts *NutationOptions, cmd *cobra.Command) error {
	log := opts.Logger()

	m, err := parseModel(opts.Model, "--model")
	if err != nil {
		return err
	}
	d := opts.Date.date()
	if opts.At != "" {
		if d, err = parseAt(opts.At); err != nil {
			return err
		}
	}
	warnTruncated(opts.RootOptions, m)

	log.Debug("evaluating nutation", "model", m, "date1", d.D1, "date2", d.D2)
	a, err := nutation.Compute(m, d)
	if err != nil {
		return WrapExitError(ExitCommandError, "nutation", err)
	}

	f := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}

	return f.Success(NutationResult{
		Model: m.String(),
		Date:  epochPair(d),
		Dpsi:  a.Dpsi,
		Deps:  a.Deps,
	})
}

// warnTruncated logs once per command when a 2000A-based model runs on
// truncated series tables.
func warnTruncated(opts *RootOptions, m nutation.Model) {
	if m == nutation.IAU2000B || nutation.Complete() {
		return
	}
	ls, pl := nutation.TermCounts()
	opts.Logger().Warn("2000A series tables are truncated",
		"model", m, "lunisolar_terms", ls, "planetary_terms", pl)
}
