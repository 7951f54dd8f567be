// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvlsofa/epoch"
	"github.com/katalvlaran/lvlsofa/terrestrial"
)

// BatchOptions holds flags for the batch command.
type BatchOptions struct {
	*RootOptions
	File string
}

// BatchRequest is one entry of a batch input file. Omitted fields take the
// c2t defaults; an omitted ut1 equals tt.
type BatchRequest struct {
	Name   string      `yaml:"name"`
	Model  string      `yaml:"model"`
	Method string      `yaml:"method"`
	TT     [2]float64  `yaml:"tt"`
	UT1    *[2]float64 `yaml:"ut1"`
	Xp     float64     `yaml:"xp"`
	Yp     float64     `yaml:"yp"`
	TIO    *bool       `yaml:"tio"`
}

// BatchResult is the ordered list of results, one per request.
type BatchResult []C2tResult

// Text implements the text output format.
func (b BatchResult) Text() string {
	parts := make([]string, len(b))
	for i, r := range b {
		parts[i] = r.Text()
	}

	return strings.Join(parts, "\n")
}

// NewBatchCommand creates the batch command.
func NewBatchCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &BatchOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Compose celestial-to-terrestrial matrices for a list of requests",
		Long: `Read a yaml list of requests and compose one matrix per entry.

Each entry accepts name, model, method, tt, ut1, xp, yp (arcsec) and tio.
Entries that fail are reported in place; the exit code is then 1.

Example:
  lvlsofa batch --file epochs.yaml --format yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(opts, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.File, "file", "f", "", "path to the yaml request list (required)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func runBatch(opts *BatchOptions, cmd *cobra.Command) error {
	log := opts.Logger()

	data, err := os.ReadFile(opts.File)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to read batch file", err)
	}
	var reqs []BatchRequest
	if err := yaml.Unmarshal(data, &reqs); err != nil {
		return WrapExitError(ExitCommandError, "failed to parse batch file", err)
	}
	log.Info("batch loaded", "file", opts.File, "requests", len(reqs))

	out := make(BatchResult, 0, len(reqs))
	failed := 0
	for i, r := range reqs {
		res := r.resolve(i).evaluateOrReport(r)
		if res.Error != "" {
			failed++
			log.Warn("request failed", "index", i, "name", res.Name, "error", res.Error)
		} else {
			log.Debug("request done", "index", i, "name", res.Name)
		}
		out = append(out, res)
	}

	f := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
	if err := f.Success(out); err != nil {
		return WrapExitError(ExitCommandError, "failed to write output", err)
	}
	if failed > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d of %d requests failed", failed, len(reqs)))
	}

	return nil
}

// resolvedRequest is a request after defaults and parsing; err is set when
// the model or method cannot be parsed.
type resolvedRequest struct {
	c2tRequest
	err error
}

func (r BatchRequest) resolve(i int) resolvedRequest {
	q := c2tRequest{
		name:   r.Name,
		model:  terrestrial.DefaultModel,
		method: terrestrial.DefaultMethod,
		tt:     epoch.New(r.TT[0], r.TT[1]),
		xp:     r.Xp,
		yp:     r.Yp,
		tio:    terrestrial.DefaultTIOLocator,
	}
	if q.name == "" {
		q.name = fmt.Sprintf("#%d", i+1)
	}
	q.ut1 = q.tt
	if r.UT1 != nil {
		q.ut1 = epoch.New(r.UT1[0], r.UT1[1])
	}
	if r.TIO != nil {
		q.tio = *r.TIO
	}

	var err error
	if r.Model != "" {
		if q.model, err = parseModel(r.Model, "model"); err != nil {
			return resolvedRequest{c2tRequest: q, err: err}
		}
	}
	if r.Method != "" {
		if q.method, err = parseMethod(r.Method, "method"); err != nil {
			return resolvedRequest{c2tRequest: q, err: err}
		}
	}

	return resolvedRequest{c2tRequest: q}
}

func (q resolvedRequest) evaluateOrReport(r BatchRequest) C2tResult {
	if q.err == nil {
		return q.evaluate()
	}

	return C2tResult{
		Name:   q.name,
		Model:  orDefault(r.Model, q.model.String()),
		Method: orDefault(r.Method, q.method.String()),
		TT:     epochPair(q.tt),
		UT1:    epochPair(q.ut1),
		Xp:     q.xp,
		Yp:     q.yp,
		TIO:    q.tio,
		Error:  q.err.Error(),
	}
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}

	return s
}
