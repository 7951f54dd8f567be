// SPDX-License-Identifier: MIT

// Command lvlsofa evaluates IAU precession-nutation, Earth rotation and
// polar motion, and composes the celestial-to-terrestrial matrix.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/lvlsofa/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "lvlsofa:", err)
		os.Exit(cli.GetExitCode(err))
	}
}
