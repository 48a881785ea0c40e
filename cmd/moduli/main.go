// Package main provides the moduli CLI: sampling algebraic curve
// families and computing sheaf-cohomology invariants on them.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/mesh-intelligence/moduli/pkg/types"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		if errors.Is(err, types.ErrInternalConsistency) {
			// A failed structural identity is an engine bug, not bad input.
			os.Exit(exitSysError)
		}
		os.Exit(exitUserError)
	}
}
