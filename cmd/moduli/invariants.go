// Invariants command: validate and summarize a saved family.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/moduli/internal/jsonio"
	"github.com/mesh-intelligence/moduli/pkg/invariants"
)

var invariantsCmd = &cobra.Command{
	Use:   "invariants <family-file>",
	Short: "Recheck invariants of a saved family and write results.json",
	Long: `Invariants loads a previously sampled family.json, re-runs the
Riemann-Roch and Serre duality checks on every record, and writes the
summary to results.json. Any failed check is an engine bug and exits 2.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		records, err := jsonio.LoadFamily(args[0])
		if err != nil {
			return err
		}

		summary := invariants.Summarize(records)

		outputDir, err := resolveOutputDir()
		if err != nil {
			return err
		}
		if _, err := jsonio.SaveResults(outputDir, jsonio.Results{
			FamilyFile: args[0],
			Summary:    summary,
			Records:    records,
		}); err != nil {
			return err
		}

		if flagJSON {
			if err := printJSON(summary); err != nil {
				return err
			}
		} else {
			printSummary(os.Stdout, summary)
		}

		if len(summary.Failures) > 0 {
			family := ""
			if len(records) > 0 {
				family = records[0].FamilyType
			}
			return reportFailures(family, summary.Failures)
		}
		return nil
	},
}
