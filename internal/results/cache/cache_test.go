package cache

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pitwall/internal/results"
)

func TestRoundCachePersistsAcrossOpens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rounds.db")
	ctx := context.Background()

	store, err := Open(path)
	require.NoError(t, err)

	rows := []results.Row{
		{Driver: "Lando Norris", Team: "McLaren", Position: 1, Points: 25},
		{Driver: "Max Verstappen", Team: "Red Bull Racing", Position: 2, Points: 18},
	}
	require.NoError(t, store.Put(ctx, 2025, 1, rows))

	reopened, err := Open(path)
	require.NoError(t, err)

	got, ok, err := reopened.Get(ctx, 2025, 1)
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, got, 2)
	assert.Equal(t, "Lando Norris", got[0].Driver)
	assert.Equal(t, 1, got[0].Round)
}

func TestRoundCacheMiss(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "rounds.db"))
	require.NoError(t, err)

	rows, ok, err := store.Get(context.Background(), 2025, 9)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, rows)
}

func TestRoundCachePutReplaces(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "rounds.db"))
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, 2025, 1, []results.Row{
		{Driver: "A", Team: "T", Position: 1, Points: 25},
	}))
	require.NoError(t, store.Put(ctx, 2025, 1, []results.Row{
		{Driver: "B", Team: "T", Position: 1, Points: 26},
	}))

	got, ok, err := store.Get(ctx, 2025, 1)
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, got, 1)
	assert.Equal(t, "B", got[0].Driver)
}

func TestOpenRejectsEmptyPath(t *testing.T) {
	_, err := Open("  ")
	require.Error(t, err)
}
