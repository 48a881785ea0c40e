package runmeta

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/moduli/pkg/moduli"
	"github.com/mesh-intelligence/moduli/pkg/types"
)

func TestNew(t *testing.T) {
	meta := New("sample")
	_, err := uuid.Parse(meta.RunID)
	assert.NoError(t, err)
	assert.Equal(t, "sample", meta.Command)
	assert.Equal(t, moduli.Version, meta.Version)
	assert.Contains(t, meta.Platform, "/")
	assert.NotEmpty(t, meta.GoVersion)
	assert.NotEmpty(t, meta.Timestamp)
}

func TestNewRunIDsAreUnique(t *testing.T) {
	assert.NotEqual(t, New("a").RunID, New("b").RunID)
}

func TestHashParamsDeterministic(t *testing.T) {
	params := types.FamilyParams{
		FamilyType:  types.FamilyP1,
		Constraints: types.Constraints{DegreeRange: &types.Range{Min: -5, Max: 5}},
		Sampling:    types.Sampling{Strategy: types.StrategyGrid, NSamplesDefault: 10, Seed: 42},
		Invariants:  types.Invariants{Compute: []string{types.InvariantGenus}},
	}

	a, err := HashParams(params)
	require.NoError(t, err)
	b, err := HashParams(params)
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Len(t, a, 64) // sha256 hex

	params.Sampling.Seed = 43
	c, err := HashParams(params)
	require.NoError(t, err)
	assert.NotEqual(t, a, c)
}

func TestHashParamsIgnoresMapInsertionOrder(t *testing.T) {
	a, err := HashParams(map[string]int{"a": 1, "b": 2, "c": 3})
	require.NoError(t, err)
	b, err := HashParams(map[string]int{"c": 3, "b": 2, "a": 1})
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
