// SPDX-License-Identifier: MIT
// Command aigfm is the CLI front-end for the aigfm pipeline. The library
// surface lives in the root aigfm package; this binary only wires it to
// flags, config, and logging.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
