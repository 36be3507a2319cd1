package notify

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderOrderWritesArtifact(t *testing.T) {
	outDir := t.TempDir()
	renderer := NewPDFRenderer(outDir, "")

	order := testOrder()
	order.CustomerEmail = "customer@example.com"
	order.Notes = "בלי בצל"

	path, err := renderer.RenderOrder(context.Background(), order)
	require.NoError(t, err)

	assert.Equal(t, outDir, filepath.Dir(path))
	assert.Contains(t, filepath.Base(path), order.ID)
	assert.Contains(t, filepath.Base(path), ".pdf")

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestRenderOrderRespectsCancelledContext(t *testing.T) {
	outDir := t.TempDir()
	renderer := NewPDFRenderer(outDir, "")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := renderer.RenderOrder(ctx, testOrder())
	require.Error(t, err)

	entries, err := os.ReadDir(outDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
