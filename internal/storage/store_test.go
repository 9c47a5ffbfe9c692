package storage

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/targets/internal/targets"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDonut(t *testing.T) targets.Target {
	t.Helper()
	d, err := targets.NewDonut(4, 2, 0.4, "Viridis")
	require.NoError(t, err)
	return d
}

func TestStoreSaveLoad(t *testing.T) {
	st := New(t.TempDir())
	require.NoError(t, st.Init())

	d := newDonut(t)
	id, err := st.Save(d)
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	meta, err := st.Load(id)
	require.NoError(t, err)
	assert.Equal(t, "donut", meta.Target)
	assert.Equal(t, 4.0, meta.Size)
	assert.Equal(t, "Viridis", meta.Cmap)
	assert.Equal(t, targets.GridSize, meta.GridSize)
	assert.Equal(t, 0.4, meta.Params["variance"])
	assert.Greater(t, meta.Max, meta.Min)

	surface, err := st.LoadSurface(id)
	require.NoError(t, err)
	want := d.Surface()
	assert.Equal(t, want.X, surface.X)
	assert.Equal(t, want.Y, surface.Y)
	assert.Equal(t, want.Z[57][131], surface.Z[57][131])
}

func TestStoreList(t *testing.T) {
	dir := t.TempDir()
	st := New(dir)
	require.NoError(t, st.Init())

	runs, err := st.List()
	require.NoError(t, err)
	assert.Empty(t, runs)

	r, err := targets.NewRosenbrock(2, 0, 20, "Rosenblues")
	require.NoError(t, err)
	_, err = st.Save(newDonut(t))
	require.NoError(t, err)
	_, err = st.Save(r)
	require.NoError(t, err)

	// Stray directories without metadata are skipped.
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "junk"), 0755))

	runs, err = st.List()
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "donut", runs[0].Target)
	assert.Equal(t, "rosenbrock", runs[1].Target)
}

func TestStoreList_MissingDir(t *testing.T) {
	runs, err := New(filepath.Join(t.TempDir(), "absent")).List()
	require.NoError(t, err)
	assert.Empty(t, runs)
}

func TestLoadSurface_Truncated(t *testing.T) {
	st := New(t.TempDir())
	id, err := st.Save(newDonut(t))
	require.NoError(t, err)

	path := filepath.Join(st.baseDir, id, surfaceFile)
	require.NoError(t, os.WriteFile(path, []byte("x,y,z\n0,0,1\n"), 0644))

	_, err = st.LoadSurface(id)
	assert.Error(t, err)
}

func TestExportJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ExportJSON(&buf, newDonut(t)))

	var got map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	for _, key := range []string{"target", "size", "cmap", "params", "x", "y", "z"} {
		assert.Contains(t, got, key)
	}

	var z [][]float64
	require.NoError(t, json.Unmarshal(got["z"], &z))
	assert.Len(t, z, targets.GridSize)
}
