package statefile

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriter_PersistAndRead(t *testing.T) {
	w := NewWriter(filepath.Join(t.TempDir(), "nested", "last_query"))

	got, err := w.Read()
	require.NoError(t, err)
	require.Empty(t, got)

	require.NoError(t, w.Persist(context.Background(), "state=SP&rating=4"))
	require.NoError(t, w.Persist(context.Background(), "state=RJ"))

	got, err = w.Read()
	require.NoError(t, err)
	require.Equal(t, "state=RJ", got)
}

func TestWriter_CanceledContext(t *testing.T) {
	w := NewWriter(filepath.Join(t.TempDir(), "last_query"))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.ErrorIs(t, w.Persist(ctx, "state=SP"), context.Canceled)
	got, err := w.Read()
	require.NoError(t, err)
	require.Empty(t, got)
}
