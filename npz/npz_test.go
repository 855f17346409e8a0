package npz_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/numgo-ml/npyz/ndarray"
	"github.com/numgo-ml/npyz/npz"
)

func TestPublicArchiveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.npz")

	warning, err := npz.WriteFile(path, map[string]any{
		"x": []float64{1, 1, 1},
		"y": int64(3),
	})
	require.NoError(t, err)
	assert.Empty(t, warning)

	values, err := npz.ReadFile(path)
	require.NoError(t, err)
	require.Len(t, values, 2)
	assert.Equal(t, []float64{1, 1, 1}, values["x"].(*ndarray.Array).AsFloat64())
	assert.Equal(t, int64(3), values["y"])

	only, err := npz.ReadFile(path, "y")
	require.NoError(t, err)
	assert.Len(t, only, 1)
}

func TestPublicEmptyArchiveWarning(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.npz")

	warning, err := npz.WriteFile(path, nil)
	require.NoError(t, err)
	assert.Equal(t, npz.WarnEmptyArchive, warning)
}
