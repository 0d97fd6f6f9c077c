package vault

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPlainFile_MissingFileIsEmpty(t *testing.T) {
	p := NewPlainFile(filepath.Join(t.TempDir(), "store.txt"))

	text, err := p.Load(context.Background(), nil)
	require.NoError(t, err)
	require.Empty(t, text)
	require.False(t, p.NeedsPassphrase())

	ok, err := p.Exists(context.Background())
	require.NoError(t, err)
	require.False(t, ok)
}

func TestPlainFile_SaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "store.txt")
	p := NewPlainFile(path)
	ctx := context.Background()

	const text = "github\tme\tpw\t2024/01/02\n"
	require.NoError(t, p.Save(ctx, text, nil))

	got, err := p.Load(ctx, nil)
	require.NoError(t, err)
	require.Equal(t, text, got)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, text, string(raw), "plain backend writes text as-is")

	ok, err := p.Exists(ctx)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestPlainFile_CanceledContext(t *testing.T) {
	p := NewPlainFile(filepath.Join(t.TempDir(), "store.txt"))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.ErrorIs(t, p.Save(ctx, "x", nil), context.Canceled)
	_, err := p.Load(ctx, nil)
	require.ErrorIs(t, err, context.Canceled)
}
