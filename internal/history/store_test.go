// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package history

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/extract-css/pkg/types"
)

func testStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "state", "history.db")
	store, err := NewStore(path)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store, path
}

func TestNewStore_CreatesDirectory(t *testing.T) {
	_, path := testStore(t)
	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestRecordAndList(t *testing.T) {
	store, _ := testStore(t)
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	for i, out := range []string{"css/a.css", "css/b.css", "css/a.css"} {
		id, err := store.Record(ctx, types.Run{
			Input:        "index.html",
			Output:       out,
			RawChars:     100 + i,
			BytesWritten: 90 + i,
			SHA256:       "abc",
			RanAt:        base.Add(time.Duration(i) * time.Minute),
		})
		require.NoError(t, err)
		assert.Equal(t, int64(i+1), id)
	}

	runs, err := store.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, runs, 3)
	assert.Equal(t, int64(3), runs[0].ID, "newest first")
	assert.Equal(t, 102, runs[0].RawChars)
	assert.True(t, base.Add(2*time.Minute).Equal(runs[0].RanAt))

	limited, err := store.List(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}

func TestLatest(t *testing.T) {
	store, _ := testStore(t)
	ctx := context.Background()

	none, err := store.Latest(ctx, "css/styles.css")
	require.NoError(t, err)
	assert.Nil(t, none)

	_, err = store.Record(ctx, types.Run{Input: "index.html", Output: "css/styles.css", SHA256: "first"})
	require.NoError(t, err)
	_, err = store.Record(ctx, types.Run{Input: "other.html", Output: "css/other.css", SHA256: "other"})
	require.NoError(t, err)
	_, err = store.Record(ctx, types.Run{Input: "index.html", Output: "css/styles.css", SHA256: "second"})
	require.NoError(t, err)

	latest, err := store.Latest(ctx, "css/styles.css")
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, "second", latest.SHA256)
	assert.False(t, latest.RanAt.IsZero())
}

func TestStorePersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")
	ctx := context.Background()

	store, err := NewStore(path)
	require.NoError(t, err)
	_, err = store.Record(ctx, types.Run{Input: "index.html", Output: "css/styles.css", SHA256: "x"})
	require.NoError(t, err)
	require.NoError(t, store.Close())

	reopened, err := NewStore(path)
	require.NoError(t, err)
	defer reopened.Close()

	runs, err := reopened.List(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, runs, 1)
}
