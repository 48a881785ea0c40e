// Sample command: draw a curve family and persist it.
package main

import (
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/moduli/internal/jsonio"
)

var (
	flagSampleSeed int64
	flagSampleN    int
)

var sampleCmd = &cobra.Command{
	Use:   "sample <params-file>",
	Short: "Sample a curve family and write family.json",
	Long: `Sample draws curves for the family described by the parameter file,
computes the configured invariants for each, and writes family.json and
metadata.json to the output directory. --seed and --n override the
configured seed and sample count.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		params, err := jsonio.LoadParams(args[0])
		if err != nil {
			return err
		}

		var seed *int64
		if cmd.Flags().Changed("seed") {
			seed = &flagSampleSeed
		}

		records, err := sampleRecords(params, seed, flagSampleN)
		if err != nil {
			return err
		}
		if seed != nil {
			params.Sampling.Seed = *seed
		}

		outputDir, err := resolveOutputDir()
		if err != nil {
			return err
		}

		familyPath, err := jsonio.SaveFamily(outputDir, records)
		if err != nil {
			return err
		}
		log.Info().Str("path", familyPath).Msg("family written")

		meta, err := buildMetadata("sample", args[0], params, len(records))
		if err != nil {
			return err
		}
		if err := jsonio.SaveJSON(filepath.Join(outputDir, jsonio.MetadataFileName), meta); err != nil {
			return err
		}

		if err := persistRun(outputDir, meta, records); err != nil {
			return err
		}

		if flagJSON {
			return printJSON(records)
		}
		fmt.Printf("Sampled %d curves into %s\n", len(records), familyPath)
		return nil
	},
}

func init() {
	sampleCmd.Flags().Int64Var(&flagSampleSeed, "seed", 0, "override the configured random seed")
	sampleCmd.Flags().IntVar(&flagSampleN, "n", 0, "override the configured sample count")
}
