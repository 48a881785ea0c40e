// Package jsonio loads parameter files and persists run artifacts
// (family records, results, metadata) as JSON. It is the persistence
// collaborator around the core: the core itself never touches files.
package jsonio

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mesh-intelligence/moduli/pkg/types"
)

// Artifact file names inside the output directory.
const (
	FamilyFileName   = "family.json"
	ResultsFileName  = "results.json"
	MetadataFileName = "metadata.json"
)

// LoadParams reads and validates a parameter file. All failure modes
// here are configuration errors: missing file, malformed JSON, or a
// parameter set that violates its family's constraint rules.
func LoadParams(path string) (types.FamilyParams, error) {
	var params types.FamilyParams

	data, err := os.ReadFile(path)
	if err != nil {
		return params, fmt.Errorf("read params file: %w", err)
	}
	if err := json.Unmarshal(data, &params); err != nil {
		return params, fmt.Errorf("parse params file %s: %w", path, err)
	}
	if err := params.Validate(); err != nil {
		return params, fmt.Errorf("validate params file %s: %w", path, err)
	}
	return params, nil
}

// SaveJSON writes v as indented JSON to path, creating parent
// directories as needed.
func SaveJSON(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", filepath.Base(path), err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// SaveFamily writes the ordered record sequence to family.json in the
// output directory and returns the file path.
func SaveFamily(outputDir string, records []types.InvariantRecord) (string, error) {
	path := filepath.Join(outputDir, FamilyFileName)
	if err := SaveJSON(path, records); err != nil {
		return "", err
	}
	return path, nil
}

// LoadFamily reads a previously saved record sequence.
func LoadFamily(path string) ([]types.InvariantRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read family file: %w", err)
	}
	var records []types.InvariantRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse family file %s: %w", path, err)
	}
	return records, nil
}

// Results bundles a run's records with its summary for results.json.
type Results struct {
	FamilyFile string                  `json:"family_file,omitempty"`
	Summary    types.FamilySummary     `json:"summary"`
	Records    []types.InvariantRecord `json:"records"`
}

// SaveResults writes results.json to the output directory and returns
// the file path.
func SaveResults(outputDir string, results Results) (string, error) {
	path := filepath.Join(outputDir, ResultsFileName)
	if err := SaveJSON(path, results); err != nil {
		return "", err
	}
	return path, nil
}
