// Version command for the moduli CLI.
package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/moduli/pkg/moduli"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	RunE: func(cmd *cobra.Command, args []string) error {
		if flagJSON {
			return printJSON(map[string]string{
				"version":    moduli.Version,
				"go_version": runtime.Version(),
				"platform":   runtime.GOOS + "/" + runtime.GOARCH,
			})
		}
		fmt.Printf("moduli %s (%s, %s/%s)\n",
			moduli.Version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
		return nil
	},
}
