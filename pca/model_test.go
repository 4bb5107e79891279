package pca_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/dimred/pca"
)

// TestModel_RoundTrip verifies Save/Load restores an engine whose every
// observable behavior matches the original.
func TestModel_RoundTrip(t *testing.T) {
	x := testMatrix(12, 4, 31)

	e := pca.New()
	require.NoError(t, e.Fit(x, 3))

	var buf bytes.Buffer
	require.NoError(t, e.Save(&buf))

	loaded, err := pca.Load(&buf)
	require.NoError(t, err)
	require.True(t, loaded.Fitted(), "loaded engine must be fitted")

	f1, k1 := e.Dims()
	f2, k2 := loaded.Dims()
	assert.Equal(t, f1, f2, "feature dimension must survive the round trip")
	assert.Equal(t, k1, k2, "latent dimension must survive the round trip")

	z1, err := e.Transform(x)
	require.NoError(t, err)
	z2, err := loaded.Transform(x)
	require.NoError(t, err)
	assert.True(t, mat.EqualApprox(z1, z2, tol), "projections must match after the round trip")

	r1, err := e.InverseTransform(z1)
	require.NoError(t, err)
	r2, err := loaded.InverseTransform(z2)
	require.NoError(t, err)
	assert.True(t, mat.EqualApprox(r1, r2, tol), "reconstructions must match after the round trip")

	b1, err := e.LatentBounds()
	require.NoError(t, err)
	b2, err := loaded.LatentBounds()
	require.NoError(t, err)
	assert.Equal(t, b1, b2, "latent bounds must survive the round trip")

	v1, err := e.ExplainedVarianceRatio()
	require.NoError(t, err)
	v2, err := loaded.ExplainedVarianceRatio()
	require.NoError(t, err)
	assert.InDeltaSlice(t, v1, v2, tol, "variance ratios must survive the round trip")
}

// TestModel_NotFitted verifies extraction requires a fitted engine.
func TestModel_NotFitted(t *testing.T) {
	e := pca.New()
	_, err := e.Model()
	assert.ErrorIs(t, err, pca.ErrNotFitted, "model of an unfitted engine must error")

	var buf bytes.Buffer
	assert.ErrorIs(t, e.Save(&buf), pca.ErrNotFitted, "save of an unfitted engine must error")
}

// TestFromModel_Validation walks the shape-consistency checks.
func TestFromModel_Validation(t *testing.T) {
	_, err := pca.FromModel(nil)
	assert.ErrorIs(t, err, pca.ErrBadModel, "nil record must error")

	valid := func() *pca.Model {
		return &pca.Model{
			Features:   2,
			Latent:     1,
			Mean:       []float64{1, 1},
			Components: []float64{0.7, 0.7},
			Variances:  []float64{1},
			LatentMin:  []float64{-1},
			LatentMax:  []float64{1},
		}
	}

	m := valid()
	_, err = pca.FromModel(m)
	assert.NoError(t, err, "consistent record must load")

	m = valid()
	m.Latent = 3
	_, err = pca.FromModel(m)
	assert.ErrorIs(t, err, pca.ErrBadModel, "latent > features must error")

	m = valid()
	m.Mean = []float64{1}
	_, err = pca.FromModel(m)
	assert.ErrorIs(t, err, pca.ErrBadModel, "short mean must error")

	m = valid()
	m.Components = []float64{0.7}
	_, err = pca.FromModel(m)
	assert.ErrorIs(t, err, pca.ErrBadModel, "short components must error")

	m = valid()
	m.Variances = nil
	_, err = pca.FromModel(m)
	assert.ErrorIs(t, err, pca.ErrBadModel, "missing variances must error")

	m = valid()
	m.LatentMin = []float64{2}
	_, err = pca.FromModel(m)
	assert.ErrorIs(t, err, pca.ErrBadModel, "min above max must error")
}

// TestLoad_MalformedJSON verifies decode failures surface as errors.
func TestLoad_MalformedJSON(t *testing.T) {
	_, err := pca.Load(strings.NewReader("{not json"))
	assert.Error(t, err, "malformed JSON must error")
}
