// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlsofa/nutation"
	"github.com/katalvlaran/lvlsofa/terrestrial"
)

// Entry names one selectable strategy.
type Entry struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// ModelsResult lists the nutation models and rotation methods.
type ModelsResult struct {
	Models  []Entry `yaml:"models"`
	Methods []Entry `yaml:"methods"`
}

var modelDescriptions = map[nutation.Model]string{
	nutation.IAU2000A: "IAU 2000A nutation, IAU 2000 precession",
	nutation.IAU2000B: "IAU 2000B truncated nutation, IAU 2000 precession",
	nutation.IAU2006A: "IAU 2000A nutation adjusted for IAU 2006 precession",
}

var methodDescriptions = map[terrestrial.Method]string{
	terrestrial.CIOBased:     "celestial intermediate origin and Earth rotation angle",
	terrestrial.EquinoxBased: "true equinox and Greenwich apparent sidereal time",
}

// Text implements the text output format.
func (r ModelsResult) Text() string {
	var sb strings.Builder
	sb.WriteString("Nutation models:\n")
	for _, e := range r.Models {
		fmt.Fprintf(&sb, "  %-8s %s\n", e.Name, e.Description)
	}
	sb.WriteString("Methods:\n")
	for _, e := range r.Methods {
		fmt.Fprintf(&sb, "  %-8s %s\n", e.Name, e.Description)
	}

	return sb.String()
}

// NewModelsCommand creates the models command.
func NewModelsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "models",
		Short: "List nutation models and rotation methods",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res := ModelsResult{}
			for _, m := range nutation.Models {
				res.Models = append(res.Models, Entry{Name: m.String(), Description: modelDescriptions[m]})
			}
			for _, m := range terrestrial.Methods {
				res.Methods = append(res.Methods, Entry{Name: m.String(), Description: methodDescriptions[m]})
			}

			f := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}

			return f.Success(res)
		},
	}
}
