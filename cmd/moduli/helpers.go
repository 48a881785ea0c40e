// Shared helpers for the moduli subcommands.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/mesh-intelligence/moduli/internal/runmeta"
	"github.com/mesh-intelligence/moduli/internal/store"
	"github.com/mesh-intelligence/moduli/pkg/invariants"
	"github.com/mesh-intelligence/moduli/pkg/sampling"
	"github.com/mesh-intelligence/moduli/pkg/types"
)

// printJSON writes v as indented JSON to stdout.
func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

// sampleRecords runs the sampling stage for a parameter file and turns
// the samples into invariant records. Seed and count overrides come
// from command flags; a seed override replaces the configured seed in
// both the sampler and the records' provenance.
//
// Exhaustion is non-fatal: the partial sequence is kept and a warning
// logged. Any other error aborts the run.
func sampleRecords(params types.FamilyParams, seedOverride *int64, n int) ([]types.InvariantRecord, error) {
	if seedOverride != nil {
		params.Sampling.Seed = *seedOverride
	}

	sampler := sampling.New(params, rand.New(rand.NewSource(params.Sampling.Seed)))

	log.Info().
		Str("family", params.FamilyType).
		Str("strategy", params.Sampling.Strategy).
		Int64("seed", params.Sampling.Seed).
		Msg("sampling family")

	samples, err := sampler.SampleFamily(n)
	if err != nil {
		var exhaustion *types.ExhaustionError
		if !errors.As(err, &exhaustion) {
			return nil, err
		}
		log.Warn().
			Int("requested", exhaustion.Requested).
			Int("produced", exhaustion.Produced).
			Int("attempts", exhaustion.Attempts).
			Msg("sampling exhausted its attempt budget; continuing with partial family")
	}

	records, err := invariants.Records(samples, params)
	if err != nil {
		return nil, err
	}

	log.Info().Int("curves", len(records)).Msg("computed invariants")
	return records, nil
}

// buildMetadata assembles the provenance record for a run.
func buildMetadata(command, paramsPath string, params types.FamilyParams, nRecords int) (runmeta.Metadata, error) {
	meta := runmeta.New(command)
	meta.ParamsFile = paramsPath
	meta.FamilyType = params.FamilyType
	meta.Strategy = params.Sampling.Strategy
	meta.Seed = params.Sampling.Seed
	meta.NSamples = nRecords
	meta.Invariants = params.Invariants.Compute

	hash, err := runmeta.HashParams(params)
	if err != nil {
		return meta, fmt.Errorf("hash params: %w", err)
	}
	meta.ParamsHash = hash
	return meta, nil
}

// persistRun writes the run into results.db when the config enables the
// sqlite store. With store "none" it does nothing.
func persistRun(outputDir string, meta runmeta.Metadata, records []types.InvariantRecord) error {
	if configStore != storeSQLite {
		return nil
	}

	db, err := store.Open(outputDir)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.SaveRun(meta, records); err != nil {
		return fmt.Errorf("persist run: %w", err)
	}
	log.Info().Str("run_id", meta.RunID).Msg("run stored in results.db")
	return nil
}

// reportFailures logs every consistency failure and returns the fatal
// error subcommands propagate when the validator finds any.
func reportFailures(family string, failures []types.CheckFailure) error {
	for _, f := range failures {
		log.Error().
			Int("curve_index", f.CurveIndex).
			Str("check", f.Check).
			Int("degree", f.Degree).
			Int("left", f.Left).
			Int("right", f.Right).
			Msg("consistency check failed")
	}
	first := failures[0]
	return &types.InternalConsistencyError{
		Check:  first.Check,
		Family: family,
		Degree: first.Degree,
		Left:   first.Left,
		Right:  first.Right,
	}
}

// printSummary renders a family summary as plain text.
func printSummary(out *os.File, summary types.FamilySummary) {
	fmt.Fprintf(out, "Curves:          %d\n", summary.TotalCurves)
	fmt.Fprintf(out, "Smooth:          %d (%.1f%%)\n", summary.SmoothCurves, 100*summary.SmoothFraction)
	fmt.Fprintf(out, "Genus range:     [%d, %d]\n", summary.GenusMin, summary.GenusMax)
	for name, s := range summary.Invariants {
		fmt.Fprintf(out, "%-16s min=%d max=%d mean=%.3f\n", name+":", s.Min, s.Max, s.Mean)
	}
	if len(summary.Failures) == 0 {
		fmt.Fprintln(out, "Consistency:     all checks passed")
	} else {
		fmt.Fprintf(out, "Consistency:     %d FAILURES\n", len(summary.Failures))
	}
}
