// Validate command: check a parameter file without sampling.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/moduli/internal/jsonio"
)

var validateCmd = &cobra.Command{
	Use:   "validate <params-file>",
	Short: "Validate a family parameter file",
	Long: `Validate parses a JSON parameter file and checks it against the
constraint rules of its curve family. Nothing is sampled; a valid file
exits 0, an invalid one exits 1 with the first violation.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		params, err := jsonio.LoadParams(args[0])
		if err != nil {
			return err
		}

		if flagJSON {
			return printJSON(params)
		}
		fmt.Printf("%s: valid %s parameters (strategy %s, %d samples, seed %d)\n",
			args[0], params.FamilyType, params.Sampling.Strategy,
			params.Sampling.NSamplesDefault, params.Sampling.Seed)
		return nil
	},
}
