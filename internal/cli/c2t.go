// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"strings"

	"github.com/soniakeys/unit"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlsofa/epoch"
	"github.com/katalvlaran/lvlsofa/nutation"
	"github.com/katalvlaran/lvlsofa/polar"
	"github.com/katalvlaran/lvlsofa/rotation"
	"github.com/katalvlaran/lvlsofa/terrestrial"
)

// C2tOptions holds flags for the c2t command.
type C2tOptions struct {
	*RootOptions
	Model  string
	Method string
	At     string
	TT     dateFlags
	UT1    dateFlags
	Xp, Yp float64 // arcsec
	NoTIO  bool
}

// C2tResult is one celestial-to-terrestrial matrix with its inputs.
type C2tResult struct {
	Name   string       `yaml:"name,omitempty"`
	Model  string       `yaml:"model"`
	Method string       `yaml:"method"`
	TT     [2]float64   `yaml:"tt,flow"`
	UT1    [2]float64   `yaml:"ut1,flow"`
	Xp     float64      `yaml:"xp"`
	Yp     float64      `yaml:"yp"`
	TIO    bool         `yaml:"tio"`
	Matrix [][3]float64 `yaml:"matrix,omitempty"`
	Error  string       `yaml:"error,omitempty"`
}

// Text implements the text output format.
func (r C2tResult) Text() string {
	var sb strings.Builder
	if r.Name != "" {
		fmt.Fprintf(&sb, "name    %s\n", r.Name)
	}
	fmt.Fprintf(&sb, "model   %s\nmethod  %s\n", r.Model, r.Method)
	if r.Error != "" {
		fmt.Fprintf(&sb, "error   %s\n", r.Error)
		return sb.String()
	}
	sb.WriteString("matrix\n")
	for _, row := range r.Matrix {
		fmt.Fprintf(&sb, "  % .12f  % .12f  % .12f\n", row[0], row[1], row[2])
	}

	return sb.String()
}

// c2tRequest is one fully parsed evaluation.
type c2tRequest struct {
	name   string
	model  nutation.Model
	method terrestrial.Method
	tt     epoch.Date
	ut1    epoch.Date
	xp, yp float64 // arcsec
	tio    bool
}

// evaluate runs the pipeline for q. A failure is recorded in the result
// rather than returned so batch output keeps one entry per request.
func (q c2tRequest) evaluate() C2tResult {
	res := C2tResult{
		Name:   q.name,
		Model:  q.model.String(),
		Method: q.method.String(),
		TT:     epochPair(q.tt),
		UT1:    epochPair(q.ut1),
		Xp:     q.xp,
		Yp:     q.yp,
		TIO:    q.tio,
	}
	pole := polar.Motion{
		Xp: unit.AngleFromSec(q.xp).Rad(),
		Yp: unit.AngleFromSec(q.yp).Rad(),
	}
	r, err := terrestrial.Matrix(q.tt, q.ut1, pole,
		terrestrial.WithModel(q.model),
		terrestrial.WithMethod(q.method),
		terrestrial.WithTIOLocator(q.tio))
	if err != nil {
		res.Error = err.Error()
		return res
	}
	res.Matrix = rows(r)

	return res
}

func rows(r rotation.Matrix) [][3]float64 {
	return [][3]float64{r[0], r[1], r[2]}
}

// NewC2tCommand creates the c2t command.
func NewC2tCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &C2tOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "c2t",
		Short: "Compose the celestial-to-terrestrial matrix",
		Long: `Compose the GCRS-to-ITRS rotation matrix W·R·Q.

Example:
  lvlsofa c2t --model 2006A --method cio --tt1 2400000.5 --tt2 53736 \
    --ut1 2400000.5 --ut2 53736 --xp 0.0526 --yp 0.3837`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runC2t(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Model, "model", terrestrial.DefaultModel.String(), "nutation model (2000A|2000B|2006A)")
	cmd.Flags().StringVar(&opts.Method, "method", terrestrial.DefaultMethod.String(), "rotation method (cio|equinox)")
	cmd.Flags().StringVar(&opts.At, "at", "", "RFC 3339 timestamp used for both TT and UT1")
	opts.TT.bind(cmd, "tt", "TT")
	opts.UT1.bind(cmd, "ut", "UT1")
	cmd.Flags().Float64Var(&opts.Xp, "xp", 0, "pole coordinate xp (arcsec)")
	cmd.Flags().Float64Var(&opts.Yp, "yp", 0, "pole coordinate yp (arcsec)")
	cmd.Flags().BoolVar(&opts.NoTIO, "no-tio", false, "omit the TIO locator s'")

	return cmd
}

func runC2t(opts *C2tOptions, cmd *cobra.Command) error {
	log := opts.Logger()

	m, err := parseModel(opts.Model, "--model")
	if err != nil {
		return err
	}
	meth, err := parseMethod(opts.Method, "--method")
	if err != nil {
		return err
	}
	q := c2tRequest{
		model:  m,
		method: meth,
		tt:     opts.TT.date(),
		ut1:    opts.UT1.date(),
		xp:     opts.Xp,
		yp:     opts.Yp,
		tio:    !opts.NoTIO,
	}
	if opts.At != "" {
		d, err := parseAt(opts.At)
		if err != nil {
			return err
		}
		q.tt, q.ut1 = d, d
	}
	warnTruncated(opts.RootOptions, m)

	log.Debug("composing c2t", "model", m, "method", meth, "tio", q.tio)
	res := q.evaluate()
	if res.Error != "" {
		return NewExitError(ExitCommandError, res.Error)
	}

	f := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}

	return f.Success(res)
}
