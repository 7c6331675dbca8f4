package npy

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spec.npy")
	m := mat.NewDense(3, 4, []float64{
		-1, -0.5, 0, 0.5,
		1, 0.25, -0.25, 0.75,
		0, 0, 1, -1,
	})
	require.NoError(t, Save(path, m))

	shape, err := Shape(path)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 4}, shape)

	back, err := Load(path)
	require.NoError(t, err)
	assert.True(t, mat.Equal(m, back))
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.npy"))
	assert.Error(t, err)

	_, err = Shape(filepath.Join(t.TempDir(), "missing.npy"))
	assert.Error(t, err)
}
