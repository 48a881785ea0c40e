// Package runmeta captures per-run provenance: a unique run ID, the
// toolchain and platform, git state when run inside a repository, and a
// content hash of the parameter file. Saved next to the run artifacts
// so any output can be traced back to its exact inputs.
package runmeta

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"os/exec"
	"runtime"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mesh-intelligence/moduli/pkg/moduli"
)

// GitInfo describes the enclosing git repository, when there is one.
type GitInfo struct {
	CommitHash string `json:"commit_hash"`
	Branch     string `json:"branch"`
	Clean      bool   `json:"working_directory_clean"`
}

// Metadata is the provenance record written as metadata.json.
type Metadata struct {
	RunID      string   `json:"run_id"`
	Timestamp  string   `json:"timestamp"`
	Command    string   `json:"command"`
	Version    string   `json:"version"`
	GoVersion  string   `json:"go_version"`
	Platform   string   `json:"platform"`
	Git        *GitInfo `json:"git,omitempty"`
	ParamsFile string   `json:"params_file,omitempty"`
	ParamsHash string   `json:"params_hash,omitempty"`
	FamilyType string   `json:"family_type,omitempty"`
	Strategy   string   `json:"sampling_strategy,omitempty"`
	Seed       int64    `json:"seed"`
	NSamples   int      `json:"n_samples"`
	Invariants []string `json:"invariants_computed,omitempty"`
}

// New builds a Metadata record with a fresh run ID and the current
// environment captured.
func New(command string) Metadata {
	return Metadata{
		RunID:     uuid.NewString(),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Command:   command,
		Version:   moduli.Version,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
		Git:       gitInfo(),
	}
}

// HashParams returns the SHA-256 hex digest of the canonical (sorted
// keys, no insignificant whitespace) JSON encoding of v. Two parameter
// files with the same content hash identically regardless of key order
// in the source file.
func HashParams(v any) (string, error) {
	// encoding/json sorts map keys; re-encoding through a generic map
	// canonicalizes struct field order differences away.
	raw, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	var generic any
	if err := json.Unmarshal(raw, &generic); err != nil {
		return "", err
	}
	canonical, err := json.Marshal(generic)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(canonical)
	return hex.EncodeToString(sum[:]), nil
}

// gitInfo shells out to git. A missing binary or a directory outside
// any repository yields nil rather than an error; provenance is best
// effort.
func gitInfo() *GitInfo {
	commit, err := gitOutput("rev-parse", "HEAD")
	if err != nil {
		return nil
	}
	branch, err := gitOutput("rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return nil
	}
	status, err := gitOutput("status", "--porcelain")
	if err != nil {
		return nil
	}
	return &GitInfo{
		CommitHash: commit,
		Branch:     branch,
		Clean:      status == "",
	}
}

func gitOutput(args ...string) (string, error) {
	out, err := exec.Command("git", args...).Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}
