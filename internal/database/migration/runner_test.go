package migration

import (
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEmbedded(t *testing.T) {
	src, err := fs.Sub(embedded, "sql")
	require.NoError(t, err)

	migs, err := Load(src)
	require.NoError(t, err)
	require.NotEmpty(t, migs)
	assert.Equal(t, int64(1), migs[0].Version)
	assert.Equal(t, "init", migs[0].Name)
	assert.Contains(t, migs[0].SQL, "job_matches")
	assert.Len(t, migs[0].Checksum, 64)
}

func TestLoadSortsAndSkipsForeignFiles(t *testing.T) {
	src := fstest.MapFS{
		"V10__later.sql":  {Data: []byte("SELECT 10;")},
		"V2__second.sql":  {Data: []byte("SELECT 2;")},
		"README.md":       {Data: []byte("notes")},
		"V3_bad_name.sql": {Data: []byte("SELECT 3;")},
	}

	migs, err := Load(src)
	require.NoError(t, err)
	require.Len(t, migs, 2)
	assert.Equal(t, int64(2), migs[0].Version)
	assert.Equal(t, int64(10), migs[1].Version)
}

func TestLoadRejectsBadFiles(t *testing.T) {
	_, err := Load(fstest.MapFS{"V1__empty.sql": {Data: []byte("  \n")}})
	assert.ErrorContains(t, err, "empty migration")

	_, err = Load(fstest.MapFS{
		"V1__a.sql":  {Data: []byte("SELECT 1;")},
		"V01__b.sql": {Data: []byte("SELECT 1;")},
	})
	assert.ErrorContains(t, err, "duplicate migration version")
}
