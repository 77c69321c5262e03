package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type doc struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func TestFileStoreMissingFileIsEmptyCollection(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	var docs []doc
	err = store.Load("nothing_here", &docs)

	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestFileStoreRoundTrip(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	in := []doc{{ID: 1, Name: "first"}, {ID: 2, Name: "second"}}
	require.NoError(t, store.Save("docs", in))

	var out []doc
	require.NoError(t, store.Load("docs", &out))
	assert.Equal(t, in, out)
}

func TestFileStoreSaveReplacesWholeCollection(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Save("docs", []doc{{ID: 1}, {ID: 2}, {ID: 3}}))
	require.NoError(t, store.Save("docs", []doc{{ID: 7}}))

	var out []doc
	require.NoError(t, store.Load("docs", &out))
	assert.Equal(t, []doc{{ID: 7}}, out)
}

func TestFileStoreWritesValidJSONFile(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir)
	require.NoError(t, err)

	require.NoError(t, store.Save("docs", []doc{{ID: 1, Name: "x"}}))

	raw, err := os.ReadFile(filepath.Join(dir, "docs.json"))
	require.NoError(t, err)
	assert.True(t, json.Valid(raw))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temp files left behind")
}

func TestFileStoreCreatesDataDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")

	_, err := NewFileStore(dir)

	require.NoError(t, err)
	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestFileStoreCorruptFileIsUnavailable(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "docs.json"), []byte("{not json"), 0o644))

	var out []doc
	err = store.Load("docs", &out)
	assert.ErrorIs(t, err, ErrUnavailable)
}
