package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/moduli/pkg/types"
)

func TestP1(t *testing.T) {
	c := P1{}
	assert.Equal(t, types.FamilyP1, c.FamilyType())
	assert.Equal(t, 0, c.Genus())
	assert.Equal(t, -2, c.CanonicalDegree())
	assert.True(t, c.IsSmooth())
	assert.Equal(t, types.CurveData{}, c.Data())
}

func TestEllipticDiscriminant(t *testing.T) {
	tests := []struct {
		name       string
		a, b       int
		wantDisc   int64
		wantSmooth bool
	}{
		{"a=1 b=2", 1, 2, -1792, true},
		{"a=0 b=0", 0, 0, 0, false},
		{"a=-3 b=2", -3, 2, 0, false},
		{"a=0 b=1", 0, 1, -432, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Elliptic{A: tt.a, B: tt.b}
			assert.Equal(t, tt.wantDisc, c.Discriminant())
			assert.Equal(t, tt.wantSmooth, c.IsSmooth())
			assert.Equal(t, 1, c.Genus())
			assert.Equal(t, 0, c.CanonicalDegree())
		})
	}
}

func TestEllipticData(t *testing.T) {
	data := Elliptic{A: 1, B: 2}.Data()
	require.NotNil(t, data.A)
	require.NotNil(t, data.B)
	require.NotNil(t, data.Discriminant)
	assert.Equal(t, 1, *data.A)
	assert.Equal(t, 2, *data.B)
	assert.Equal(t, int64(-1792), *data.Discriminant)
}

func TestHyperellipticGenus(t *testing.T) {
	tests := []struct {
		name      string
		coeffs    []int
		wantGenus int
	}{
		{"quintic genus 2", []int{1, -1, 0, 2, 0, 1}, 2},
		{"cubic genus 1", []int{1, 0, 0, -1}, 1},
		{"quadratic genus 0", []int{1, 0, -1}, 0},
		{"septic genus 3", []int{1, 0, 0, 0, 0, 0, -1, 0}, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Hyperelliptic{Coefficients: tt.coeffs}
			assert.Equal(t, tt.wantGenus, c.Genus())
			assert.Equal(t, 2*tt.wantGenus-2, c.CanonicalDegree())
		})
	}
}

func TestHyperellipticSmooth(t *testing.T) {
	tests := []struct {
		name   string
		coeffs []int
		want   bool
	}{
		{"x^5 - x", []int{1, 0, 0, 0, -1, 0}, true},
		{"x^5", []int{1, 0, 0, 0, 0, 0}, false},
		{"(x-1)^2", []int{1, -2, 1}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Hyperelliptic{Coefficients: tt.coeffs}
			assert.Equal(t, tt.want, c.IsSmooth())
		})
	}
}

func TestPlaneCurveGenus(t *testing.T) {
	tests := []struct {
		degree    int
		wantGenus int
	}{
		{1, 0},
		{2, 0},
		{3, 1},
		{4, 3},
		{5, 6},
	}
	for _, tt := range tests {
		c := PlaneCurve{Degree: tt.degree}
		assert.Equal(t, tt.wantGenus, c.Genus(), "degree %d", tt.degree)
		assert.Equal(t, 2*tt.wantGenus-2, c.CanonicalDegree(), "degree %d", tt.degree)
	}
}

func TestPlaneCurveSmooth(t *testing.T) {
	tests := []struct {
		name   string
		degree int
		coeffs map[string]int
		want   bool
	}{
		{
			name:   "fermat cubic",
			degree: 3,
			coeffs: map[string]int{"x^3": 1, "y^3": 1, "z^3": 1},
			want:   true,
		},
		{
			name:   "cuspidal cubic",
			degree: 3,
			coeffs: map[string]int{"x^3": -1, "y^2*z^1": 1},
			want:   false,
		},
		{
			name:   "zero polynomial",
			degree: 3,
			coeffs: map[string]int{"x^3": 0, "y^3": 0},
			want:   false,
		},
		{
			name:   "empty coefficient map",
			degree: 3,
			coeffs: map[string]int{},
			want:   false,
		},
		{
			name:   "inhomogeneous monomial",
			degree: 3,
			coeffs: map[string]int{"x^2": 1},
			want:   false,
		},
		{
			name:   "unparseable monomial",
			degree: 3,
			coeffs: map[string]int{"w^3": 1},
			want:   false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := PlaneCurve{Degree: tt.degree, Coefficients: tt.coeffs}
			assert.Equal(t, tt.want, c.IsSmooth())
		})
	}
}

func TestParsePlaneCoefficients(t *testing.T) {
	tests := []struct {
		name    string
		degree  int
		coeffs  map[string]int
		wantErr bool
	}{
		{"valid cubic", 3, map[string]int{"x^3": 1, "x^1*y^2": -2}, false},
		{"implicit exponent", 2, map[string]int{"x^1*y^1": 1, "x^1*z^1": 3}, false},
		{"wrong degree", 3, map[string]int{"x^2": 1}, true},
		{"unknown variable", 3, map[string]int{"w^3": 1}, true},
		{"bad exponent", 3, map[string]int{"x^a": 1}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ParsePlaneCoefficients(tt.degree, tt.coeffs)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
