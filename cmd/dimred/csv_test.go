package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// TestCSV_RoundTrip verifies a matrix written by writeMatrix is read back
// identically by readMatrix.
func TestCSV_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv")

	want := mat.NewDense(3, 2, []float64{
		0, 0.5,
		1.25, -3,
		2, 42,
	})
	require.NoError(t, writeMatrix(path, want))

	got, err := readMatrix(path, false)
	require.NoError(t, err)
	assert.True(t, mat.Equal(want, got), "round trip must preserve every entry")
}

// TestReadMatrix_Header verifies header=true skips the first row.
func TestReadMatrix_Header(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(path, []byte("a,b\n1,2\n3,4\n"), 0o644))

	got, err := readMatrix(path, true)
	require.NoError(t, err)

	rows, cols := got.Dims()
	assert.Equal(t, 2, rows, "header row must be skipped")
	assert.Equal(t, 2, cols, "both data columns must be kept")
	assert.Equal(t, 1.0, got.At(0, 0), "first data row must follow the header")
}

// TestReadMatrix_Errors verifies missing files, ragged rows, and
// non-numeric fields are rejected.
func TestReadMatrix_Errors(t *testing.T) {
	_, err := readMatrix(filepath.Join(t.TempDir(), "absent.csv"), false)
	assert.Error(t, err, "missing file must error")

	ragged := filepath.Join(t.TempDir(), "ragged.csv")
	require.NoError(t, os.WriteFile(ragged, []byte("1,2\n3\n"), 0o644))
	_, err = readMatrix(ragged, false)
	assert.Error(t, err, "ragged rows must error")

	bad := filepath.Join(t.TempDir(), "bad.csv")
	require.NoError(t, os.WriteFile(bad, []byte("1,x\n"), 0o644))
	_, err = readMatrix(bad, false)
	assert.Error(t, err, "non-numeric field must error")

	empty := filepath.Join(t.TempDir(), "empty.csv")
	require.NoError(t, os.WriteFile(empty, []byte("a,b\n"), 0o644))
	_, err = readMatrix(empty, true)
	assert.Error(t, err, "header-only file must error")
}
