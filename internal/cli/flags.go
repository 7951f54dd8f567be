// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlsofa/epoch"
	"github.com/katalvlaran/lvlsofa/nutation"
	"github.com/katalvlaran/lvlsofa/terrestrial"
)

// dateFlags binds a two-part Julian Date to --<prefix>1 and --<prefix>2.
type dateFlags struct {
	d1, d2 float64
}

func (d *dateFlags) bind(cmd *cobra.Command, prefix, what string) {
	cmd.Flags().Float64Var(&d.d1, prefix+"1", epoch.MJDZero, "first part of the "+what+" Julian Date")
	cmd.Flags().Float64Var(&d.d2, prefix+"2", epoch.MJDJ2000, "second part of the "+what+" Julian Date")
}

func (d *dateFlags) date() epoch.Date {
	return epoch.New(d.d1, d.d2)
}

// epochPair is the yaml form of a Date.
func epochPair(d epoch.Date) [2]float64 {
	return [2]float64{d.D1, d.D2}
}

// parseAt converts an RFC 3339 timestamp into a Date. The time scale of
// the result is whatever the caller means by the timestamp.
func parseAt(s string) (epoch.Date, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return epoch.Date{}, WrapExitError(ExitCommandError, fmt.Sprintf("invalid --at %q", s), err)
	}

	return epoch.FromTime(t), nil
}

// parseModel and parseMethod name the offending input as label in the
// error, e.g. "--model" for a flag or "model" for a batch field.
func parseModel(s, label string) (nutation.Model, error) {
	m, err := nutation.ParseModel(s)
	if err != nil {
		return 0, WrapExitError(ExitCommandError, "invalid "+label, err)
	}

	return m, nil
}

func parseMethod(s, label string) (terrestrial.Method, error) {
	m, err := terrestrial.ParseMethod(s)
	if err != nil {
		return 0, WrapExitError(ExitCommandError, "invalid "+label, err)
	}

	return m, nil
}
